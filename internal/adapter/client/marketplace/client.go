package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/sokopay/sokotrack/internal/adapter/config"
	"github.com/sokopay/sokotrack/internal/core/domain"
	"go.uber.org/zap"
)

// Client talks to the Soko Pay marketplace REST API. It is the only place
// that knows the wire shapes; everything above it sees domain types and the
// sentinel error taxonomy.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(cfg *config.Marketplace, log *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("marketplace address is not configured")
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: http.DefaultClient,
		logger:     log,
	}, nil
}

type orderResponse struct {
	ID                 string  `json:"id"`
	ProductName        string  `json:"product_name"`
	ProductPrice       float64 `json:"product_price"`
	ProductDescription string  `json:"product_description"`
	ProductCategory    string  `json:"product_category"`
	SellerPhone        string  `json:"seller_phone"`
	SellerName         string  `json:"seller_name"`
	BuyerPhone         string  `json:"buyer_phone"`
	BuyerName          string  `json:"buyer_name"`
	Status             string  `json:"status"`
	PaymentLink        string  `json:"payment_link"`
	PaymentRef         string  `json:"payhero_ref"`
	FraudRiskScore     *int    `json:"fraud_risk_score"`
	FraudRiskLevel     *string `json:"fraud_risk_level"`
	CreatedAt          string  `json:"created_at"`
	PaidAt             *string `json:"paid_at"`
	ShippedAt          *string `json:"shipped_at"`
	DeliveredAt        *string `json:"delivered_at"`
}

type createOrderRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	SellerPhone string  `json:"seller_phone"`
	SellerName  string  `json:"seller_name"`
}

type createOrderResponse struct {
	OrderID     string `json:"order_id"`
	PaymentLink string `json:"payment_link"`
	Message     string `json:"message"`
}

type payRequest struct {
	BuyerPhone string `json:"buyer_phone"`
	BuyerName  string `json:"buyer_name"`
	ClientRef  string `json:"client_ref,omitempty"`
}

type disputeRequest struct {
	Reason   string `json:"reason"`
	Evidence string `json:"evidence,omitempty"`
}

func (c *Client) FetchOrder(ctx context.Context, id domain.OrderID) (*domain.OrderRecord, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/track/"+string(id), nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := c.checkStatus(resp); err != nil {
		return nil, err
	}

	var body orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: error on response decode: %v", domain.ErrTransport, err)
	}

	return body.toDomain()
}

func (c *Client) CreateOrder(ctx context.Context, listing *domain.ProductListing) (*domain.OrderReceipt, error) {
	price, ok := listing.Price.Float64()
	if !ok {
		return nil, fmt.Errorf("%w: price out of range", domain.ErrValidation)
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/create-payment-link", &createOrderRequest{
		Name:        listing.Name,
		Price:       price,
		Description: listing.Description,
		Category:    listing.Category,
		SellerPhone: listing.SellerPhone,
		SellerName:  listing.SellerName,
	})
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := c.checkStatus(resp); err != nil {
		return nil, err
	}

	var body createOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: error on response decode: %v", domain.ErrTransport, err)
	}

	return &domain.OrderReceipt{
		OrderID:     domain.OrderID(body.OrderID),
		PaymentLink: body.PaymentLink,
	}, nil
}

func (c *Client) SubmitPayment(ctx context.Context, id domain.OrderID, details *domain.PaymentDetails) error {
	return c.mutate(ctx, "/api/pay/"+string(id), &payRequest{
		BuyerPhone: details.BuyerPhone,
		BuyerName:  details.BuyerName,
		ClientRef:  details.ClientRef,
	})
}

func (c *Client) MarkShipped(ctx context.Context, id domain.OrderID) error {
	return c.mutate(ctx, "/api/ship/"+string(id), struct{}{})
}

func (c *Client) ConfirmDelivery(ctx context.Context, id domain.OrderID) error {
	return c.mutate(ctx, "/api/confirm-delivery/"+string(id), struct{}{})
}

func (c *Client) RaiseDispute(ctx context.Context, id domain.OrderID, claim *domain.DisputeClaim) error {
	return c.mutate(ctx, "/api/dispute/"+string(id), &disputeRequest{
		Reason:   claim.Reason,
		Evidence: claim.Evidence,
	})
}

func (c *Client) mutate(ctx context.Context, path string, payload any) error {
	resp, err := c.do(ctx, http.MethodPost, path, payload)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	return c.checkStatus(resp)
}

func (c *Client) do(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	var body *bytes.Buffer
	if payload != nil {
		body = new(bytes.Buffer)
		if err := json.NewEncoder(body).Encode(payload); err != nil {
			return nil, fmt.Errorf("error encoding request for %s: %w", path, err)
		}
	}

	requestStr := c.baseURL + path
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, requestStr, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, requestStr, http.NoBody)
	}
	if err != nil {
		return nil, fmt.Errorf("error on %s : %w", requestStr, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	c.logger.Debug("fire marketplace request",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request %s: %v", domain.ErrTransport, requestStr, err)
	}
	return resp, nil
}

// checkStatus maps the marketplace status codes onto the sentinel taxonomy.
// The server reports state conflicts as 400 and input validation as 422.
func (c *Client) checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrOrderNotFound
	case resp.StatusCode == http.StatusBadRequest:
		return domain.ErrStateConflict
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return domain.ErrValidation
	default:
		c.logger.Error("unexpected status for request",
			zap.String("url", resp.Request.URL.Path),
			zap.Int("status", resp.StatusCode))
		return fmt.Errorf("%w: bad response %v", domain.ErrTransport, resp.StatusCode)
	}
}

func (o *orderResponse) toDomain() (*domain.OrderRecord, error) {
	status := domain.OrderStatus(o.Status)
	if !domain.IsKnownStatus(status) {
		return nil, fmt.Errorf("%w: unknown order status %q", domain.ErrTransport, o.Status)
	}

	price, err := decimal.NewFromFloat64(o.ProductPrice)
	if err != nil {
		return nil, fmt.Errorf("%w: error on price decode: %v", domain.ErrTransport, err)
	}

	record := &domain.OrderRecord{
		ID:                 domain.OrderID(o.ID),
		ProductName:        o.ProductName,
		ProductDescription: o.ProductDescription,
		ProductCategory:    o.ProductCategory,
		Price:              price,
		SellerName:         o.SellerName,
		SellerPhone:        o.SellerPhone,
		BuyerName:          o.BuyerName,
		BuyerPhone:         o.BuyerPhone,
		Status:             status,
		PaymentLink:        o.PaymentLink,
		PaymentRef:         o.PaymentRef,
		RiskScore:          o.FraudRiskScore,
	}
	if o.FraudRiskLevel != nil {
		record.RiskLevel = domain.RiskLevel(*o.FraudRiskLevel)
	}

	record.CreatedAt = parseTimestamp(o.CreatedAt)
	record.PaidAt = parseTimestampPtr(o.PaidAt)
	record.ShippedAt = parseTimestampPtr(o.ShippedAt)
	record.DeliveredAt = parseTimestampPtr(o.DeliveredAt)

	return record, nil
}

// The marketplace emits ISO-8601 timestamps, with and without an offset.
func parseTimestamp(s string) time.Time {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	t, _ := time.Parse("2006-01-02T15:04:05.999999", s)
	return t
}

func parseTimestampPtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t := parseTimestamp(*s)
	return &t
}
