// Package config loads the service configuration. Values come, in increasing
// order of precedence, from built-in defaults, an optional TOML file named by
// CONFIG_FILE, and the process environment (keys are the lower-cased variable
// names, e.g. STRIPE_SECRET_KEY -> stripe_secret_key).
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
)

const (
	OrderStoreDynamoDB = "dynamodb"
	OrderStorePostgres = "postgres"
)

type Config struct {
	Port        int
	OrderStore  string
	DynamoDB    DynamoDBConfig
	DatabaseURL string
	Stripe      StripeConfig
	MercadoPago MercadoPagoConfig

	// GatewayMock makes every payment gateway fabricate sessions locally.
	GatewayMock bool
}

type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	OrdersTable     string
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	Currency      string
	SuccessURL    string
	CancelURL     string
	// APIURL overrides the Stripe API base URL (stripe-mock, tests).
	APIURL string
}

type MercadoPagoConfig struct {
	AccessToken     string
	CurrencyID      string
	SuccessURL      string
	FailureURL      string
	PendingURL      string
	NotificationURL string
}

var defaults = map[string]interface{}{
	"port":                    8080,
	"order_store":             OrderStoreDynamoDB,
	"orders_table":            "orders",
	"aws_region":              "us-east-1",
	"aws_access_key_id":       "local",
	"aws_secret_access_key":   "local",
	"stripe_currency":         "usd",
	"stripe_success_url":      "http://localhost:3000/payment/success?session_id={CHECKOUT_SESSION_ID}",
	"stripe_cancel_url":       "http://localhost:3000/payment/cancel",
	"mercadopago_currency_id": "BRL",
	"mercadopago_success_url": "http://localhost:3000/payment/success",
	"mercadopago_failure_url": "http://localhost:3000/payment/failure",
	"mercadopago_pending_url": "http://localhost:3000/payment/pending",
}

// Load reads the configuration. It fails only when the config file cannot be
// parsed or a value is invalid.
func Load() (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return Config{}, fmt.Errorf("error loading config defaults: %w", err)
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return Config{}, fmt.Errorf("error loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return Config{}, fmt.Errorf("error loading environment: %w", err)
	}

	cfg := Config{
		Port:       k.Int("port"),
		OrderStore: strings.ToLower(strings.TrimSpace(k.String("order_store"))),
		DynamoDB: DynamoDBConfig{
			Region:          k.String("aws_region"),
			AccessKeyID:     k.String("aws_access_key_id"),
			SecretAccessKey: k.String("aws_secret_access_key"),
			Endpoint:        k.String("dynamodb_endpoint"),
			OrdersTable:     k.String("orders_table"),
		},
		DatabaseURL: k.String("database_url"),
		Stripe: StripeConfig{
			SecretKey:     strings.TrimSpace(k.String("stripe_secret_key")),
			WebhookSecret: strings.TrimSpace(k.String("stripe_webhook_secret")),
			Currency:      strings.ToLower(k.String("stripe_currency")),
			SuccessURL:    k.String("stripe_success_url"),
			CancelURL:     k.String("stripe_cancel_url"),
			APIURL:        k.String("stripe_api_url"),
		},
		MercadoPago: MercadoPagoConfig{
			AccessToken:     strings.TrimSpace(k.String("mercadopago_access_token")),
			CurrencyID:      strings.ToUpper(k.String("mercadopago_currency_id")),
			SuccessURL:      k.String("mercadopago_success_url"),
			FailureURL:      k.String("mercadopago_failure_url"),
			PendingURL:      k.String("mercadopago_pending_url"),
			NotificationURL: k.String("mercadopago_notification_url"),
		},
		GatewayMock: isMockEnabled(k.String("payment_gateway_mock")) || isMockEnabled(k.String("mercadopago_mock")),
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}
	switch cfg.OrderStore {
	case OrderStoreDynamoDB:
	case OrderStorePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("order_store %q requires DATABASE_URL", cfg.OrderStore)
		}
	default:
		return Config{}, fmt.Errorf("unknown order_store %q", cfg.OrderStore)
	}

	return cfg, nil
}

func isMockEnabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
