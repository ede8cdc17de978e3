package payments

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"payment_init/internal/config"
	"payment_init/internal/domain/entities"
	"payment_init/internal/usecase/interfaces"
	"payment_init/pkg/logger"

	"github.com/google/uuid"
	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

// MercadoPagoGateway opens Checkout Pro preferences. The preference init point
// is the hosted payment page and the preference id is the session id.
type MercadoPagoGateway struct {
	client   preferenceCreator
	cfg      config.MercadoPagoConfig
	sandbox  bool
	mockMode bool
}

var _ interfaces.ICheckoutSessionGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg config.MercadoPagoConfig, mockMode bool) (*MercadoPagoGateway, error) {
	if mockMode {
		logger.Infof("[payment][mercadopago] mock mode enabled")
		return &MercadoPagoGateway{cfg: cfg, mockMode: true}, nil
	}

	if cfg.AccessToken == "" {
		logger.Warningf("[payment][mercadopago] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := mpconfig.New(cfg.AccessToken)
	if err != nil {
		logger.Errorf("[payment][mercadopago] failed creating sdk config err=%v", err)
		return nil, err
	}
	logger.Infof("[payment][mercadopago] client initialized currency=%s", cfg.CurrencyID)

	return &MercadoPagoGateway{
		client:  preference.NewClient(sdkCfg),
		cfg:     cfg,
		sandbox: strings.HasPrefix(cfg.AccessToken, "TEST-"),
	}, nil
}

func (g *MercadoPagoGateway) CreateCheckoutSession(ctx context.Context, orderID string, amount float64, items []entities.LineItem) (entities.CheckoutSession, error) {
	if g != nil && g.mockMode {
		id := "pref_mock_" + uuid.NewString()
		logger.Infof("[payment][mercadopago] mock preference created order_id=%s preference_id=%s", orderID, id)
		return entities.CheckoutSession{
			CheckoutURL: "https://www.mercadopago.com/checkout/v1/redirect?pref_id=" + id,
			SessionID:   id,
		}, nil
	}

	if g == nil || g.client == nil {
		logger.Errorf("[payment][mercadopago] gateway not configured order_id=%s", orderID)
		return entities.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}
	logger.Infof("[payment][mercadopago] create preference start order_id=%s amount=%.0f items=%d", orderID, amount, len(items))

	resp, err := g.client.Create(ctx, g.preferenceRequest(orderID, amount, items))
	if err != nil {
		logger.Errorf("[payment][mercadopago] sdk create failed order_id=%s err=%v", orderID, err)
		return entities.CheckoutSession{}, mercadoPagoProviderError(err)
	}
	if resp == nil {
		return entities.CheckoutSession{}, fmt.Errorf("%w: %w", interfaces.ErrPaymentProvider, ErrIncompleteCheckoutSession)
	}

	initPoint := resp.InitPoint
	if g.sandbox && resp.SandboxInitPoint != "" {
		initPoint = resp.SandboxInitPoint
	}
	if resp.ID == "" || initPoint == "" {
		logger.Errorf("[payment][mercadopago] incomplete preference order_id=%s", orderID)
		return entities.CheckoutSession{}, fmt.Errorf("%w: %w", interfaces.ErrPaymentProvider, ErrIncompleteCheckoutSession)
	}
	logger.Infof("[payment][mercadopago] create preference success order_id=%s preference_id=%s", orderID, resp.ID)

	return entities.CheckoutSession{CheckoutURL: initPoint, SessionID: resp.ID}, nil
}

func (g *MercadoPagoGateway) preferenceRequest(orderID string, amount float64, items []entities.LineItem) preference.Request {
	reqItems := make([]preference.ItemRequest, 0, len(items))
	for _, it := range items {
		reqItems = append(reqItems, g.item(it.Title, it.Price, it.Quantity))
	}
	if len(reqItems) == 0 {
		reqItems = append(reqItems, g.item(fmt.Sprintf("Order %s", orderID), amount, 1))
	}

	req := preference.Request{
		Items:             reqItems,
		ExternalReference: orderID,
		NotificationURL:   g.cfg.NotificationURL,
		BackURLs: &preference.BackURLsRequest{
			Success: g.cfg.SuccessURL,
			Failure: g.cfg.FailureURL,
			Pending: g.cfg.PendingURL,
		},
	}
	if g.cfg.SuccessURL != "" {
		req.AutoReturn = "approved"
	}
	return req
}

// item converts a minor-unit price into the decimal unit price Mercado Pago expects.
func (g *MercadoPagoGateway) item(title string, minorUnits float64, quantity int) preference.ItemRequest {
	return preference.ItemRequest{
		Title:      title,
		Quantity:   quantity,
		UnitPrice:  math.Round(minorUnits) / 100,
		CurrencyID: g.cfg.CurrencyID,
	}
}
