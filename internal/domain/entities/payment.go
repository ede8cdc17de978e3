package entities

// PaymentMethod selects the provider integration used to initialize a payment.
type PaymentMethod string

const (
	// PaymentMethodStripe is the hosted-checkout method.
	PaymentMethodStripe      PaymentMethod = "STRIPE"
	PaymentMethodMercadoPago PaymentMethod = "MERCADOPAGO"
)

// PaymentInitStatus is the outcome reported for a payment initialization.
//
// Hosted checkout providers report initialized. pending is meant for methods
// that confirm asynchronously and failed for providers that report a soft
// failure instead of returning an error.
type PaymentInitStatus string

const (
	PaymentInitStatusInitialized PaymentInitStatus = "initialized"
	PaymentInitStatusPending     PaymentInitStatus = "pending"
	PaymentInitStatusFailed      PaymentInitStatus = "failed"
)

// LineItem is supplied by the caller and handed to the provider unchanged.
type LineItem struct {
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CheckoutSession is a provider-hosted payment page.
type CheckoutSession struct {
	CheckoutURL string `json:"checkoutUrl"`
	SessionID   string `json:"sessionId"`
}

// ProviderInitResult is what a provider reports for one initialization. Only
// the fields meaningful for that provider are set.
type ProviderInitResult struct {
	CheckoutURL     string
	SessionID       string
	ClientSecret    string
	ApprovalURL     string
	PaymentIntentID string
	Status          PaymentInitStatus
}

// PaymentInitResponse is the normalized initialization result. It is built
// per call and never persisted.
type PaymentInitResponse struct {
	OrderID         string            `json:"orderId"`
	PaymentMethod   PaymentMethod     `json:"paymentMethod"`
	Amount          float64           `json:"amount"`
	CheckoutURL     string            `json:"checkoutUrl,omitempty"`
	ClientSecret    string            `json:"clientSecret,omitempty"`
	ApprovalURL     string            `json:"approvalUrl,omitempty"`
	PaymentIntentID string            `json:"paymentIntentId,omitempty"`
	SessionID       string            `json:"sessionId,omitempty"`
	Status          PaymentInitStatus `json:"status"`
}
