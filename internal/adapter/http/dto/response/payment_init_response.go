package response

import "payment_init/internal/domain/entities"

type PaymentInitResponse struct {
	OrderID         string  `json:"orderId"`
	PaymentMethod   string  `json:"paymentMethod"`
	Amount          float64 `json:"amount"`
	CheckoutURL     string  `json:"checkoutUrl,omitempty"`
	ClientSecret    string  `json:"clientSecret,omitempty"`
	ApprovalURL     string  `json:"approvalUrl,omitempty"`
	PaymentIntentID string  `json:"paymentIntentId,omitempty"`
	SessionID       string  `json:"sessionId,omitempty"`
	Status          string  `json:"status"`
}

type PaymentMethodsResponse struct {
	Methods []string `json:"methods"`
}

func FromPaymentInit(p entities.PaymentInitResponse) PaymentInitResponse {
	return PaymentInitResponse{
		OrderID:         p.OrderID,
		PaymentMethod:   string(p.PaymentMethod),
		Amount:          p.Amount,
		CheckoutURL:     p.CheckoutURL,
		ClientSecret:    p.ClientSecret,
		ApprovalURL:     p.ApprovalURL,
		PaymentIntentID: p.PaymentIntentID,
		SessionID:       p.SessionID,
		Status:          string(p.Status),
	}
}

func FromPaymentMethods(methods []entities.PaymentMethod) PaymentMethodsResponse {
	out := make([]string, 0, len(methods))
	for _, m := range methods {
		out = append(out, string(m))
	}
	return PaymentMethodsResponse{Methods: out}
}
