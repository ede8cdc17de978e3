package routes

import (
	"payment_init/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/initialize", paymentHandler.InitializePayment)
		payments.POST("/checkout", paymentHandler.InitializeHostedCheckout)
		payments.GET("/methods", paymentHandler.ListPaymentMethods)
	}
}
