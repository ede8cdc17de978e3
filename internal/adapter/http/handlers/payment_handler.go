package handlers

import (
	"errors"
	"net/http"

	request "payment_init/internal/adapter/http/dto/request"
	response "payment_init/internal/adapter/http/dto/response"
	"payment_init/internal/usecase"
	"payment_init/internal/usecase/interfaces"
	"payment_init/pkg"
	"payment_init/pkg/logger"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// PaymentHandler handles HTTP requests for payment initialization.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// InitializePayment godoc
// @Summary      Initialize a payment for an order
// @Description  Checks that the order exists and starts a payment with the provider selected by paymentMethod.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payload  body      request.PaymentInitRequest  true  "Payment initialization"
// @Success      200      {object}  response.PaymentInitResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /payments/initialize [post]
func (h *PaymentHandler) InitializePayment(c *gin.Context) {
	var payload request.PaymentInitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		logger.Warningf("[payment][handler] invalid payload err=%v", err)
		c.JSON(errInvalidPaymentRequest.HTTPStatus, errInvalidPaymentRequest.ToHTTPError())
		return
	}

	orderID := payload.ResolveOrderID()
	method := payload.ResolvePaymentMethod()
	logger.Infof("[payment][handler] initialize start order_id=%s method=%s", orderID, method)

	res, err := h.usecase.InitializePayment(c.Request.Context(), orderID, method, payload.Amount, payload.ToLineItems())
	if err != nil {
		logger.Warningf("[payment][handler] initialize failed order_id=%s method=%s err=%v", orderID, method, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logger.Infof("[payment][handler] initialize success order_id=%s method=%s session_id=%s status=%s", orderID, method, res.SessionID, res.Status)

	c.JSON(http.StatusOK, response.FromPaymentInit(res))
}

// InitializeHostedCheckout godoc
// @Summary      Create a hosted checkout session
// @Description  Creates a checkout session with the hosted checkout provider without looking the order up.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payload  body      request.HostedCheckoutRequest  true  "Hosted checkout"
// @Success      200      {object}  response.PaymentInitResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /payments/checkout [post]
func (h *PaymentHandler) InitializeHostedCheckout(c *gin.Context) {
	var payload request.HostedCheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		logger.Warningf("[payment][handler] invalid checkout payload err=%v", err)
		c.JSON(errInvalidPaymentRequest.HTTPStatus, errInvalidPaymentRequest.ToHTTPError())
		return
	}

	orderID := payload.ResolveOrderID()
	logger.Infof("[payment][handler] checkout start order_id=%s", orderID)

	res, err := h.usecase.InitializeHostedCheckout(c.Request.Context(), orderID, payload.Amount, payload.ToLineItems())
	if err != nil {
		logger.Warningf("[payment][handler] checkout failed order_id=%s err=%v", orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logger.Infof("[payment][handler] checkout success order_id=%s session_id=%s", orderID, res.SessionID)

	c.JSON(http.StatusOK, response.FromPaymentInit(res))
}

// ListPaymentMethods godoc
// @Summary  List the payment methods this instance can initialize
// @Tags     payments
// @Produce  json
// @Success  200  {object}  response.PaymentMethodsResponse
// @Router   /payments/methods [get]
func (h *PaymentHandler) ListPaymentMethods(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromPaymentMethods(h.usecase.SupportedMethods()))
}

func mapPaymentError(err error) *pkg.AppError {
	if appErr, ok := pkg.AsAppError(err); ok {
		return appErr
	}

	switch {
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, interfaces.ErrPaymentProviderRejected):
		return pkg.NewDomainError("PAYMENT_PROVIDER_REJECTED", "Payment provider rejected the request", err, http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrPaymentProviderUnauthorized):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", err, http.StatusBadGateway)
	case errors.Is(err, interfaces.ErrPaymentProvider):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider error", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
