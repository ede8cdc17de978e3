package interfaces

import (
	"context"
	"errors"
	"fmt"

	"payment_init/internal/domain/entities"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_interface_mock.go -package=mock_interfaces

// ErrPaymentProvider marks failures reported by an external payment provider.
// Gateways wrap SDK errors with it so callers can tell them apart from local
// failures without depending on the SDK.
var (
	ErrPaymentProvider = errors.New("payment provider error")

	ErrPaymentProviderRejected     = fmt.Errorf("%w: request rejected", ErrPaymentProvider)
	ErrPaymentProviderUnauthorized = fmt.Errorf("%w: unauthorized", ErrPaymentProvider)
)

// ICheckoutSessionGateway abstracts providers with a hosted payment page
// (e.g. Stripe Checkout, Mercado Pago Checkout Pro).
//
// Implementations must return an error instead of a session missing its URL
// or identifier.
type ICheckoutSessionGateway interface {
	CreateCheckoutSession(ctx context.Context, orderID string, amount float64, items []entities.LineItem) (entities.CheckoutSession, error)
}

// IPaymentProvider is the general provider contract. Providers that confirm
// asynchronously or report soft failures set ProviderInitResult.Status
// themselves; hard failures are returned as errors.
type IPaymentProvider interface {
	InitializePayment(ctx context.Context, orderID string, amount float64, items []entities.LineItem) (entities.ProviderInitResult, error)
}
