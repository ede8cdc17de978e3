package payments

import (
	"context"
	"errors"
	"fmt"
	"math"

	"payment_init/internal/config"
	"payment_init/internal/domain/entities"
	"payment_init/internal/usecase/interfaces"
	"payment_init/pkg/logger"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
)

var (
	ErrMissingStripeSecretKey     = errors.New("missing STRIPE_SECRET_KEY")
	ErrMissingStripeWebhookSecret = errors.New("missing STRIPE_WEBHOOK_SECRET")
	ErrStripeGatewayNotConfigured = errors.New("stripe gateway not configured")
	ErrIncompleteCheckoutSession  = errors.New("checkout session missing url or id")
)

// StripeCheckoutGateway creates Stripe Checkout sessions (hosted payment page).
//
// Amounts and line item prices are in the currency's minor unit (cents).
// The gateway owns its session client, so several gateways with different keys
// can live in one process without touching stripe.Key.
type StripeCheckoutGateway struct {
	sessions      session.Client
	webhookSecret string
	currency      string
	successURL    string
	cancelURL     string
	mockMode      bool
}

var _ interfaces.ICheckoutSessionGateway = (*StripeCheckoutGateway)(nil)

func NewStripeCheckoutGateway(cfg config.StripeConfig, mockMode bool) (*StripeCheckoutGateway, error) {
	g := &StripeCheckoutGateway{
		webhookSecret: cfg.WebhookSecret,
		currency:      cfg.Currency,
		successURL:    cfg.SuccessURL,
		cancelURL:     cfg.CancelURL,
	}

	if mockMode {
		logger.Infof("[payment][stripe] mock mode enabled")
		g.mockMode = true
		return g, nil
	}

	if cfg.SecretKey == "" {
		logger.Warningf("[payment][stripe] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}

	backendCfg := &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
	}
	if cfg.APIURL != "" {
		backendCfg.URL = stripe.String(cfg.APIURL)
	}
	g.sessions = session.Client{
		B:   stripe.GetBackendWithConfig(stripe.APIBackend, backendCfg),
		Key: cfg.SecretKey,
	}
	logger.Infof("[payment][stripe] checkout client initialized currency=%s", g.currency)

	return g, nil
}

func (g *StripeCheckoutGateway) CreateCheckoutSession(ctx context.Context, orderID string, amount float64, items []entities.LineItem) (entities.CheckoutSession, error) {
	if g != nil && g.mockMode {
		id := "cs_mock_" + uuid.NewString()
		logger.Infof("[payment][stripe] mock session created order_id=%s session_id=%s", orderID, id)
		return entities.CheckoutSession{
			CheckoutURL: "https://checkout.stripe.com/c/pay/" + id,
			SessionID:   id,
		}, nil
	}

	if g == nil || g.sessions.B == nil {
		logger.Errorf("[payment][stripe] gateway not configured order_id=%s", orderID)
		return entities.CheckoutSession{}, ErrStripeGatewayNotConfigured
	}
	logger.Infof("[payment][stripe] create session start order_id=%s amount=%.0f items=%d", orderID, amount, len(items))

	params := g.checkoutSessionParams(orderID, amount, items)
	params.Context = ctx

	s, err := g.sessions.New(params)
	if err != nil {
		logger.Errorf("[payment][stripe] create session failed order_id=%s err=%v", orderID, err)
		return entities.CheckoutSession{}, stripeProviderError(err)
	}
	if s == nil || s.ID == "" || s.URL == "" {
		logger.Errorf("[payment][stripe] incomplete session order_id=%s", orderID)
		return entities.CheckoutSession{}, fmt.Errorf("%w: %w", interfaces.ErrPaymentProvider, ErrIncompleteCheckoutSession)
	}
	logger.Infof("[payment][stripe] create session success order_id=%s session_id=%s", orderID, s.ID)

	return entities.CheckoutSession{CheckoutURL: s.URL, SessionID: s.ID}, nil
}

// VerifyWebhookSignature checks the Stripe-Signature header of a webhook
// delivery against the configured endpoint secret and decodes the event.
func (g *StripeCheckoutGateway) VerifyWebhookSignature(payload []byte, signatureHeader string) (stripe.Event, error) {
	if g == nil || g.webhookSecret == "" {
		return stripe.Event{}, ErrMissingStripeWebhookSecret
	}

	event, err := webhook.ConstructEvent(payload, signatureHeader, g.webhookSecret)
	if err != nil {
		logger.Warningf("[payment][stripe] webhook signature rejected err=%v", err)
		return stripe.Event{}, err
	}
	return event, nil
}

func (g *StripeCheckoutGateway) checkoutSessionParams(orderID string, amount float64, items []entities.LineItem) *stripe.CheckoutSessionParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, it := range items {
		lineItems = append(lineItems, g.lineItem(it.Title, it.Price, int64(it.Quantity)))
	}
	// Checkout needs at least one line item; charge the order total as one.
	if len(lineItems) == 0 {
		lineItems = append(lineItems, g.lineItem(fmt.Sprintf("Order %s", orderID), amount, 1))
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(orderID),
		SuccessURL:        stripe.String(g.successURL),
		CancelURL:         stripe.String(g.cancelURL),
		LineItems:         lineItems,
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{"order_id": orderID},
		},
	}
	params.AddMetadata("order_id", orderID)
	return params
}

func (g *StripeCheckoutGateway) lineItem(title string, unitAmount float64, quantity int64) *stripe.CheckoutSessionLineItemParams {
	return &stripe.CheckoutSessionLineItemParams{
		PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency: stripe.String(g.currency),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String(title),
			},
			UnitAmount: stripe.Int64(int64(math.Round(unitAmount))),
		},
		Quantity: stripe.Int64(quantity),
	}
}
