package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/sokopay/sokotrack/internal/core/domain"
	"github.com/sokopay/sokotrack/internal/core/port"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.TrackingService
}

func NewOrderHandler(service port.TrackingService, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type createOrderReq struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	SellerName  string  `json:"seller_name"`
	SellerPhone string  `json:"seller_phone"`
}

type createOrderResp struct {
	OrderID     string `json:"order_id"`
	PaymentLink string `json:"payment_link"`
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	var req createOrderReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	price, err := decimal.NewFromFloat64(req.Price)
	if err != nil {
		oh.handleError(ctx, domain.ErrValidation)
		return
	}

	listing := &domain.ProductListing{
		Name:        req.Name,
		Price:       price,
		Description: req.Description,
		Category:    req.Category,
		SellerName:  req.SellerName,
		SellerPhone: req.SellerPhone,
	}

	receipt, err := oh.service.CreateOrder(ctx, listing)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, createOrderResp{
		OrderID:     string(receipt.OrderID),
		PaymentLink: receipt.PaymentLink,
	}, http.StatusCreated)
}

func (oh *OrderHandler) OpenView(ctx *gin.Context) {
	id := domain.OrderID(ctx.Param("id"))

	if err := oh.service.OpenView(ctx, id); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

func (oh *OrderHandler) CloseView(ctx *gin.Context) {
	id := domain.OrderID(ctx.Param("id"))

	if err := oh.service.CloseView(id); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

type orderResp struct {
	ID                 string           `json:"id"`
	ProductName        string           `json:"product_name"`
	ProductDescription string           `json:"product_description"`
	ProductCategory    string           `json:"product_category"`
	Price              *decimal.Decimal `json:"price"`
	SellerName         string           `json:"seller_name"`
	SellerPhone        string           `json:"seller_phone"`
	BuyerName          string           `json:"buyer_name,omitempty"`
	BuyerPhone         string           `json:"buyer_phone,omitempty"`
	Status             string           `json:"status"`
	PaymentLink        string           `json:"payment_link,omitempty"`
	RiskScore          *int             `json:"risk_score,omitempty"`
	RiskLevel          string           `json:"risk_level,omitempty"`
	SellerPayout       *decimal.Decimal `json:"seller_payout,omitempty"`
	PlatformFee        *decimal.Decimal `json:"platform_fee,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	PaidAt             *time.Time       `json:"paid_at,omitempty"`
	ShippedAt          *time.Time       `json:"shipped_at,omitempty"`
	DeliveredAt        *time.Time       `json:"delivered_at,omitempty"`
}

type viewResp struct {
	Order            *orderResp `json:"order,omitempty"`
	MutationInFlight bool       `json:"mutation_in_flight"`
	AwaitingPayment  bool       `json:"awaiting_payment"`
	LastError        string     `json:"last_error,omitempty"`
	LoadError        string     `json:"load_error,omitempty"`
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	id := domain.OrderID(ctx.Param("id"))

	snap, err := oh.service.Snapshot(id)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	resp := viewResp{
		MutationInFlight: snap.MutationInFlight,
		AwaitingPayment:  snap.AwaitingPayment,
	}
	if snap.LastError != nil {
		resp.LastError = snap.LastError.Error()
	}
	if snap.LoadError != nil {
		resp.LoadError = snap.LoadError.Error()
	}
	if snap.Order != nil {
		resp.Order = newOrderResp(snap.Order)
	}

	oh.handleSuccess(ctx, resp)
}

func newOrderResp(o *domain.OrderRecord) *orderResp {
	price := o.Price
	r := &orderResp{
		ID:                 string(o.ID),
		ProductName:        o.ProductName,
		ProductDescription: o.ProductDescription,
		ProductCategory:    o.ProductCategory,
		Price:              &price,
		SellerName:         o.SellerName,
		SellerPhone:        o.SellerPhone,
		BuyerName:          o.BuyerName,
		BuyerPhone:         o.BuyerPhone,
		Status:             string(o.Status),
		PaymentLink:        o.PaymentLink,
		RiskScore:          o.RiskScore,
		RiskLevel:          string(domain.EffectiveRiskLevel(o.RiskScore, o.RiskLevel)),
		CreatedAt:          o.CreatedAt,
		PaidAt:             o.PaidAt,
		ShippedAt:          o.ShippedAt,
		DeliveredAt:        o.DeliveredAt,
	}

	if payout, fee, err := domain.PayoutPreview(o.Price); err == nil {
		r.SellerPayout = &payout
		r.PlatformFee = &fee
	}

	return r
}

type payReq struct {
	BuyerPhone string `json:"buyer_phone"`
	BuyerName  string `json:"buyer_name"`
}

func (oh *OrderHandler) Pay(ctx *gin.Context) {
	id := domain.OrderID(ctx.Param("id"))

	var req payReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	err := oh.service.Pay(ctx, id, &domain.PaymentDetails{
		BuyerPhone: req.BuyerPhone,
		BuyerName:  req.BuyerName,
	})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusAccepted)
}

type confirmationReq struct {
	Action string `json:"action"`
}

type confirmationResp struct {
	ConfirmToken string `json:"confirm_token"`
}

// RequestConfirmation is the first half of the two-phase destructive-action
// flow: the user's explicit acknowledgement mints a short-lived token that
// the ship / confirm-delivery endpoints demand.
func (oh *OrderHandler) RequestConfirmation(ctx *gin.Context) {
	id := domain.OrderID(ctx.Param("id"))

	var req confirmationReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	token, err := oh.service.RequestConfirmation(id, domain.Action(req.Action))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, confirmationResp{ConfirmToken: token})
}

type confirmedActionReq struct {
	ConfirmToken string `json:"confirm_token"`
}

func (oh *OrderHandler) MarkShipped(ctx *gin.Context) {
	id := domain.OrderID(ctx.Param("id"))

	var req confirmedActionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	if err := oh.service.MarkShipped(ctx, id, req.ConfirmToken); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusAccepted)
}

func (oh *OrderHandler) ConfirmDelivery(ctx *gin.Context) {
	id := domain.OrderID(ctx.Param("id"))

	var req confirmedActionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	if err := oh.service.ConfirmDelivery(ctx, id, req.ConfirmToken); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusAccepted)
}

type disputeReq struct {
	Reason   string `json:"reason"`
	Evidence string `json:"evidence"`
}

func (oh *OrderHandler) RaiseDispute(ctx *gin.Context) {
	id := domain.OrderID(ctx.Param("id"))

	var req disputeReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	err := oh.service.RaiseDispute(ctx, id, &domain.DisputeClaim{
		Reason:   req.Reason,
		Evidence: req.Evidence,
	})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusAccepted)
}
