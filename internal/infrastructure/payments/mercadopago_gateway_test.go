package payments

import (
	"context"
	"errors"
	"strings"
	"testing"

	"payment_init/internal/config"
	"payment_init/internal/domain/entities"
	"payment_init/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/preference"
)

type fakePreferenceClient struct {
	got  preference.Request
	resp *preference.Response
	err  error
}

func (f *fakePreferenceClient) Create(_ context.Context, request preference.Request) (*preference.Response, error) {
	f.got = request
	return f.resp, f.err
}

func testMercadoPagoConfig() config.MercadoPagoConfig {
	return config.MercadoPagoConfig{
		AccessToken:     "APP_USR-123",
		CurrencyID:      "BRL",
		SuccessURL:      "https://shop.test/success",
		FailureURL:      "https://shop.test/failure",
		PendingURL:      "https://shop.test/pending",
		NotificationURL: "https://api.shop.test/webhooks/mercadopago",
	}
}

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing access token", func(t *testing.T) {
		cfg := testMercadoPagoConfig()
		cfg.AccessToken = ""

		if _, err := NewMercadoPagoGateway(cfg, false); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("sandbox token", func(t *testing.T) {
		cfg := testMercadoPagoConfig()
		cfg.AccessToken = "TEST-123"

		g, err := NewMercadoPagoGateway(cfg, false)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !g.sandbox || g.client == nil {
			t.Fatalf("expected sandbox client, got %+v", g)
		}
	})
}

func TestMercadoPagoGateway_CreateCheckoutSession(t *testing.T) {
	t.Run("builds preference from items", func(t *testing.T) {
		fake := &fakePreferenceClient{resp: &preference.Response{
			ID:        "pref_1",
			InitPoint: "https://www.mercadopago.com.br/checkout/v1/redirect?pref_id=pref_1",
		}}
		g := &MercadoPagoGateway{client: fake, cfg: testMercadoPagoConfig()}

		got, err := g.CreateCheckoutSession(context.Background(), "ord_123", 4999, []entities.LineItem{
			{Title: "Widget", Price: 2000, Quantity: 2},
			{Title: "Shipping", Price: 999, Quantity: 1},
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.SessionID != "pref_1" || got.CheckoutURL != fake.resp.InitPoint {
			t.Fatalf("unexpected session: %+v", got)
		}

		req := fake.got
		if req.ExternalReference != "ord_123" {
			t.Fatalf("expected external reference ord_123, got %q", req.ExternalReference)
		}
		if len(req.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(req.Items))
		}
		if req.Items[0].Title != "Widget" || req.Items[0].Quantity != 2 || req.Items[0].UnitPrice != 20 || req.Items[0].CurrencyID != "BRL" {
			t.Fatalf("unexpected first item: %+v", req.Items[0])
		}
		if req.Items[1].UnitPrice != 9.99 {
			t.Fatalf("expected unit price 9.99, got %v", req.Items[1].UnitPrice)
		}
		if req.BackURLs == nil || req.BackURLs.Success != "https://shop.test/success" || req.BackURLs.Pending != "https://shop.test/pending" {
			t.Fatalf("unexpected back urls: %+v", req.BackURLs)
		}
		if req.AutoReturn != "approved" {
			t.Fatalf("expected auto return approved, got %q", req.AutoReturn)
		}
		if req.NotificationURL != "https://api.shop.test/webhooks/mercadopago" {
			t.Fatalf("unexpected notification url %q", req.NotificationURL)
		}
	})

	t.Run("empty items charge the amount as one item", func(t *testing.T) {
		fake := &fakePreferenceClient{resp: &preference.Response{ID: "pref_2", InitPoint: "https://mp.test/pref_2"}}
		g := &MercadoPagoGateway{client: fake, cfg: testMercadoPagoConfig()}

		if _, err := g.CreateCheckoutSession(context.Background(), "ord_7", 1250, nil); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(fake.got.Items) != 1 || fake.got.Items[0].Title != "Order ord_7" || fake.got.Items[0].UnitPrice != 12.5 || fake.got.Items[0].Quantity != 1 {
			t.Fatalf("unexpected fallback items: %+v", fake.got.Items)
		}
	})

	t.Run("sandbox uses sandbox init point", func(t *testing.T) {
		fake := &fakePreferenceClient{resp: &preference.Response{
			ID:               "pref_3",
			InitPoint:        "https://mp.test/live",
			SandboxInitPoint: "https://mp.test/sandbox",
		}}
		g := &MercadoPagoGateway{client: fake, cfg: testMercadoPagoConfig(), sandbox: true}

		got, err := g.CreateCheckoutSession(context.Background(), "ord_1", 100, nil)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.CheckoutURL != "https://mp.test/sandbox" {
			t.Fatalf("expected sandbox init point, got %q", got.CheckoutURL)
		}
	})

	t.Run("sdk error is wrapped", func(t *testing.T) {
		sdkErr := errors.New("invalid access token")
		g := &MercadoPagoGateway{client: &fakePreferenceClient{err: sdkErr}, cfg: testMercadoPagoConfig()}

		_, err := g.CreateCheckoutSession(context.Background(), "ord_1", 100, nil)
		if !errors.Is(err, interfaces.ErrPaymentProvider) || !errors.Is(err, sdkErr) {
			t.Fatalf("expected wrapped provider error, got %v", err)
		}
	})

	t.Run("sdk errors are classified", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			want error
		}{
			{"unauthorized", errors.New(`{"message":"invalid access token","error":"unauthorized","status":401}`), interfaces.ErrPaymentProviderUnauthorized},
			{"bad request", errors.New(`{"message":"invalid back_urls","error":"bad_request","status":400}`), interfaces.ErrPaymentProviderRejected},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				g := &MercadoPagoGateway{client: &fakePreferenceClient{err: tc.err}, cfg: testMercadoPagoConfig()}

				_, err := g.CreateCheckoutSession(context.Background(), "ord_1", 100, nil)
				if !errors.Is(err, tc.want) || !errors.Is(err, interfaces.ErrPaymentProvider) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("preference without init point is rejected", func(t *testing.T) {
		g := &MercadoPagoGateway{client: &fakePreferenceClient{resp: &preference.Response{ID: "pref_4"}}, cfg: testMercadoPagoConfig()}

		_, err := g.CreateCheckoutSession(context.Background(), "ord_1", 100, nil)
		if !errors.Is(err, ErrIncompleteCheckoutSession) {
			t.Fatalf("expected ErrIncompleteCheckoutSession, got %v", err)
		}
	})

	t.Run("mock mode", func(t *testing.T) {
		g, err := NewMercadoPagoGateway(config.MercadoPagoConfig{}, true)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}

		got, err := g.CreateCheckoutSession(context.Background(), "ord_1", 100, nil)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !strings.HasPrefix(got.SessionID, "pref_mock_") || !strings.HasSuffix(got.CheckoutURL, got.SessionID) {
			t.Fatalf("unexpected mock session: %+v", got)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		g := &MercadoPagoGateway{}
		if _, err := g.CreateCheckoutSession(context.Background(), "ord_1", 100, nil); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
			t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
		}
	})
}
