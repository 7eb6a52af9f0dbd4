package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusDisputed  OrderStatus = "disputed"
	OrderStatusRefunded  OrderStatus = "refunded"
	OrderStatusFlagged   OrderStatus = "flagged"
)

// OrderID is assigned by the marketplace on listing creation and is opaque
// to the client.
type OrderID string

// OrderRecord is one snapshot of an escrow transaction as reported by the
// marketplace. The client never mutates a record, it only fetches successive
// snapshots.
type OrderRecord struct {
	ID                 OrderID
	ProductName        string
	ProductDescription string
	ProductCategory    string
	Price              decimal.Decimal
	SellerName         string
	SellerPhone        string
	BuyerName          string
	BuyerPhone         string
	Status             OrderStatus
	PaymentLink        string
	PaymentRef         string
	RiskScore          *int
	RiskLevel          RiskLevel
	CreatedAt          time.Time
	PaidAt             *time.Time
	ShippedAt          *time.Time
	DeliveredAt        *time.Time
}

// OrderReceipt is returned by the marketplace on listing creation.
type OrderReceipt struct {
	OrderID     OrderID
	PaymentLink string
}

var phonePattern = regexp.MustCompile(`^254[0-9]{9}$`)

const (
	productNameMinLen = 3
	productNameMaxLen = 200
	descriptionMaxLen = 1000
	personNameMinLen  = 2
	disputeReasonMin  = 10
	defaultCategory   = "Other"
)

// ProductListing is the seller-side creation payload.
type ProductListing struct {
	Name        string
	Price       decimal.Decimal
	Description string
	Category    string
	SellerName  string
	SellerPhone string
}

func (p *ProductListing) Validate() error {
	if n := utf8.RuneCountInString(strings.TrimSpace(p.Name)); n < productNameMinLen || n > productNameMaxLen {
		return fmt.Errorf("%w: product name must be %d-%d characters", ErrValidation, productNameMinLen, productNameMaxLen)
	}
	if p.Price.Sign() <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	if utf8.RuneCountInString(p.Description) > descriptionMaxLen {
		return fmt.Errorf("%w: description is longer than %d characters", ErrValidation, descriptionMaxLen)
	}
	if utf8.RuneCountInString(strings.TrimSpace(p.SellerName)) < personNameMinLen {
		return fmt.Errorf("%w: seller name must be at least %d characters", ErrValidation, personNameMinLen)
	}
	if !phonePattern.MatchString(p.SellerPhone) {
		return fmt.Errorf("%w: seller phone must match 254XXXXXXXXX", ErrValidation)
	}
	if p.Category == "" {
		p.Category = defaultCategory
	}
	return nil
}

// PaymentDetails is the buyer-side payment payload.
type PaymentDetails struct {
	BuyerPhone string
	BuyerName  string
	// ClientRef correlates the submission with the payment gateway callback.
	ClientRef string
}

func (p *PaymentDetails) Validate() error {
	if !phonePattern.MatchString(p.BuyerPhone) {
		return fmt.Errorf("%w: phone must match 254XXXXXXXXX", ErrValidation)
	}
	if utf8.RuneCountInString(strings.TrimSpace(p.BuyerName)) < personNameMinLen {
		return fmt.Errorf("%w: name must be at least %d characters", ErrValidation, personNameMinLen)
	}
	return nil
}

type DisputeClaim struct {
	Reason   string
	Evidence string
}

func (d *DisputeClaim) Validate() error {
	if utf8.RuneCountInString(d.Reason) < disputeReasonMin {
		return fmt.Errorf("%w: dispute reason must be at least %d characters", ErrValidation, disputeReasonMin)
	}
	return nil
}
