package usecase

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strings"

	"payment_init/internal/domain/entities"
	"payment_init/internal/usecase/interfaces"
	"payment_init/pkg"
)

//go:generate mockgen -source=payment_usecase.go -destination=../adapter/http/handlers/mocks/payment_usecase_mock.go -package=mocks

var (
	ErrOrderNotFound             = pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	ErrPaymentMethodNotSupported = pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Invalid payment method", http.StatusBadRequest)

	ErrPaymentGatewayNotConfigured  = errors.New("payment gateway not configured")
	ErrOrderRepositoryNotConfigured = errors.New("order repository not configured")
)

// hostedCheckoutMethod is the method served by the gateway passed to
// NewPaymentUseCase.
const hostedCheckoutMethod = entities.PaymentMethodStripe

// IPaymentUseCase initializes payments for existing orders and normalizes the
// provider answers into entities.PaymentInitResponse.
type IPaymentUseCase interface {
	InitializePayment(ctx context.Context, orderID string, method entities.PaymentMethod, amount float64, items []entities.LineItem) (entities.PaymentInitResponse, error)
	InitializeHostedCheckout(ctx context.Context, orderID string, amount float64, items []entities.LineItem) (entities.PaymentInitResponse, error)
	ProviderAdapter() interfaces.ICheckoutSessionGateway
	SupportedMethods() []entities.PaymentMethod
}

// PaymentUseCase holds no per-call state. The provider registry is filled at
// construction and only read afterwards, so one instance serves concurrent
// requests.
type PaymentUseCase struct {
	orderRepo interfaces.IOrderRepository
	checkout  interfaces.ICheckoutSessionGateway
	providers map[entities.PaymentMethod]interfaces.IPaymentProvider
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

type PaymentUseCaseOption func(*PaymentUseCase)

// WithProvider registers a provider for a payment method, replacing any
// provider already registered for it.
func WithProvider(method entities.PaymentMethod, provider interfaces.IPaymentProvider) PaymentUseCaseOption {
	return func(u *PaymentUseCase) {
		if provider == nil {
			return
		}
		u.providers[method] = provider
	}
}

// WithHostedCheckout registers a hosted checkout gateway for a payment method.
func WithHostedCheckout(method entities.PaymentMethod, gateway interfaces.ICheckoutSessionGateway) PaymentUseCaseOption {
	return func(u *PaymentUseCase) {
		if gateway == nil {
			return
		}
		u.providers[method] = hostedCheckoutProvider{gateway: gateway}
	}
}

// NewPaymentUseCase builds the orchestrator. checkout, when not nil, serves
// InitializeHostedCheckout and is registered for the STRIPE method.
func NewPaymentUseCase(orderRepo interfaces.IOrderRepository, checkout interfaces.ICheckoutSessionGateway, opts ...PaymentUseCaseOption) *PaymentUseCase {
	u := &PaymentUseCase{
		orderRepo: orderRepo,
		checkout:  checkout,
		providers: make(map[entities.PaymentMethod]interfaces.IPaymentProvider),
	}
	if checkout != nil {
		u.providers[hostedCheckoutMethod] = hostedCheckoutProvider{gateway: checkout}
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// InitializePayment checks that the order exists, then dispatches to the
// provider registered for method. Errors from the order store and from the
// provider are returned unchanged.
func (u *PaymentUseCase) InitializePayment(ctx context.Context, orderID string, method entities.PaymentMethod, amount float64, items []entities.LineItem) (entities.PaymentInitResponse, error) {
	if strings.TrimSpace(orderID) == "" {
		return entities.PaymentInitResponse{}, ErrOrderNotFound
	}
	if u.orderRepo == nil {
		return entities.PaymentInitResponse{}, ErrOrderRepositoryNotConfigured
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.PaymentInitResponse{}, err
	}
	if order.ID == "" {
		return entities.PaymentInitResponse{}, ErrOrderNotFound
	}

	provider, ok := u.providers[method]
	if !ok {
		return entities.PaymentInitResponse{}, ErrPaymentMethodNotSupported
	}

	result, err := provider.InitializePayment(ctx, orderID, amount, items)
	if err != nil {
		return entities.PaymentInitResponse{}, err
	}
	return newPaymentInitResponse(orderID, method, amount, result), nil
}

// InitializeHostedCheckout creates a hosted checkout session without looking
// the order up. Callers either validated the order already or rely on the
// provider to reject it.
func (u *PaymentUseCase) InitializeHostedCheckout(ctx context.Context, orderID string, amount float64, items []entities.LineItem) (entities.PaymentInitResponse, error) {
	if u.checkout == nil {
		return entities.PaymentInitResponse{}, ErrPaymentGatewayNotConfigured
	}

	result, err := hostedCheckoutProvider{gateway: u.checkout}.InitializePayment(ctx, orderID, amount, items)
	if err != nil {
		return entities.PaymentInitResponse{}, err
	}
	return newPaymentInitResponse(orderID, hostedCheckoutMethod, amount, result), nil
}

// ProviderAdapter exposes the hosted checkout gateway for provider specific
// operations (e.g. webhook signature checks). It is nil when none is configured.
func (u *PaymentUseCase) ProviderAdapter() interfaces.ICheckoutSessionGateway {
	return u.checkout
}

// SupportedMethods lists the registered payment methods in lexical order.
func (u *PaymentUseCase) SupportedMethods() []entities.PaymentMethod {
	methods := make([]entities.PaymentMethod, 0, len(u.providers))
	for m := range u.providers {
		methods = append(methods, m)
	}
	sort.Slice(methods, func(i, j int) bool { return methods[i] < methods[j] })
	return methods
}

// hostedCheckoutProvider adapts a checkout session gateway to the general
// provider contract. A created session is always reported as initialized.
type hostedCheckoutProvider struct {
	gateway interfaces.ICheckoutSessionGateway
}

func (p hostedCheckoutProvider) InitializePayment(ctx context.Context, orderID string, amount float64, items []entities.LineItem) (entities.ProviderInitResult, error) {
	session, err := p.gateway.CreateCheckoutSession(ctx, orderID, amount, items)
	if err != nil {
		return entities.ProviderInitResult{}, err
	}
	return entities.ProviderInitResult{
		CheckoutURL: session.CheckoutURL,
		SessionID:   session.SessionID,
		Status:      entities.PaymentInitStatusInitialized,
	}, nil
}

func newPaymentInitResponse(orderID string, method entities.PaymentMethod, amount float64, r entities.ProviderInitResult) entities.PaymentInitResponse {
	return entities.PaymentInitResponse{
		OrderID:         orderID,
		PaymentMethod:   method,
		Amount:          amount,
		CheckoutURL:     r.CheckoutURL,
		ClientSecret:    r.ClientSecret,
		ApprovalURL:     r.ApprovalURL,
		PaymentIntentID: r.PaymentIntentID,
		SessionID:       r.SessionID,
		Status:          r.Status,
	}
}
