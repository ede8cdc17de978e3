package payments

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"payment_init/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v76"
)

func stripeProviderError(err error) error {
	var se *stripe.Error
	if errors.As(err, &se) {
		switch se.HTTPStatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %w", interfaces.ErrPaymentProviderUnauthorized, err)
		case http.StatusBadRequest, http.StatusPaymentRequired:
			return fmt.Errorf("%w: %w", interfaces.ErrPaymentProviderRejected, err)
		}
	}
	return fmt.Errorf("%w: %w", interfaces.ErrPaymentProvider, err)
}

// mercadoPagoProviderError classifies SDK errors by the API body the SDK
// embeds in the error message.
func mercadoPagoProviderError(err error) error {
	switch {
	case isGatewayUnauthorized(err):
		return fmt.Errorf("%w: %w", interfaces.ErrPaymentProviderUnauthorized, err)
	case isGatewayBadRequest(err):
		return fmt.Errorf("%w: %w", interfaces.ErrPaymentProviderRejected, err)
	}
	return fmt.Errorf("%w: %w", interfaces.ErrPaymentProvider, err)
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
