package request

import (
	"strings"

	"payment_init/internal/domain/entities"
)

type LineItemRequest struct {
	Title    string  `json:"title" binding:"required"`
	Price    float64 `json:"price" binding:"gte=0"`
	Quantity int     `json:"quantity" binding:"gte=0"`
}

// PaymentInitRequest is the payload of POST /v1/payments/initialize.
// Amount and item prices are in the currency's minor unit.
type PaymentInitRequest struct {
	OrderID       string            `json:"orderId" binding:"required"`
	PaymentMethod string            `json:"paymentMethod" binding:"required"`
	Amount        float64           `json:"amount" binding:"gt=0"`
	Items         []LineItemRequest `json:"items" binding:"omitempty,dive"`
}

func (r PaymentInitRequest) ResolveOrderID() string {
	return strings.TrimSpace(r.OrderID)
}

// ResolvePaymentMethod trims the tag but keeps its case; tags are matched exactly.
func (r PaymentInitRequest) ResolvePaymentMethod() entities.PaymentMethod {
	return entities.PaymentMethod(strings.TrimSpace(r.PaymentMethod))
}

func (r PaymentInitRequest) ToLineItems() []entities.LineItem {
	return toLineItems(r.Items)
}

// HostedCheckoutRequest is the payload of POST /v1/payments/checkout.
type HostedCheckoutRequest struct {
	OrderID string            `json:"orderId" binding:"required"`
	Amount  float64           `json:"amount" binding:"gt=0"`
	Items   []LineItemRequest `json:"items" binding:"omitempty,dive"`
}

func (r HostedCheckoutRequest) ResolveOrderID() string {
	return strings.TrimSpace(r.OrderID)
}

func (r HostedCheckoutRequest) ToLineItems() []entities.LineItem {
	return toLineItems(r.Items)
}

func toLineItems(in []LineItemRequest) []entities.LineItem {
	if len(in) == 0 {
		return nil
	}
	out := make([]entities.LineItem, 0, len(in))
	for _, it := range in {
		out = append(out, entities.LineItem{
			Title:    it.Title,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}
	return out
}
