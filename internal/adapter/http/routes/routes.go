package routes

import (
	"context"
	"net/http"
	"strconv"

	_ "payment_init/docs" // This will be auto-generated
	"payment_init/internal/adapter/http/handlers"
	"payment_init/internal/adapter/persistence/repository"
	"payment_init/internal/config"
	"payment_init/internal/domain/entities"
	"payment_init/internal/infrastructure/database"
	"payment_init/internal/infrastructure/payments"
	"payment_init/internal/usecase"
	"payment_init/internal/usecase/interfaces"
	"payment_init/pkg/logger"
	"payment_init/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const serviceName = "payment_init"

// Run will start the server
func Run() {
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	paymentUseCase, err := newPaymentUseCase(context.Background(), cfg)
	if err != nil {
		logger.Fatalf("Failed to wire dependencies: %v", err)
	}

	router := NewRouter(paymentUseCase, metrics.NewServerMetrics(serviceName))

	err = router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		logger.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter builds the HTTP engine around an already wired use case.
func NewRouter(paymentUseCase usecase.IPaymentUseCase, m *metrics.ServerMetrics) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, m)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(m.Handler()))

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)

	return router
}

func newPaymentUseCase(ctx context.Context, cfg config.Config) (*usecase.PaymentUseCase, error) {
	orderRepo, err := newOrderRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var checkout interfaces.ICheckoutSessionGateway
	stripeGateway, err := payments.NewStripeCheckoutGateway(cfg.Stripe, cfg.GatewayMock)
	if err != nil {
		logger.Warningf("Stripe gateway not configured: %v", err)
	} else {
		checkout = stripeGateway
	}

	var opts []usecase.PaymentUseCaseOption
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago, cfg.GatewayMock)
	if err != nil {
		logger.Warningf("Mercado Pago gateway not configured: %v", err)
	} else {
		opts = append(opts, usecase.WithHostedCheckout(entities.PaymentMethodMercadoPago, mpGateway))
	}

	uc := usecase.NewPaymentUseCase(orderRepo, checkout, opts...)
	logger.Infof("payment methods enabled: %v", uc.SupportedMethods())

	return uc, nil
}

func newOrderRepository(ctx context.Context, cfg config.Config) (interfaces.IOrderRepository, error) {
	switch cfg.OrderStore {
	case config.OrderStorePostgres:
		db, err := database.ConnectPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		logger.Infof("order store: postgres table=%s", cfg.DynamoDB.OrdersTable)
		return repository.NewOrderGormRepository(db, cfg.DynamoDB.OrdersTable), nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		logger.Infof("order store: dynamodb table=%s", cfg.DynamoDB.OrdersTable)
		return repository.NewOrderDynamoRepository(ddb, cfg.DynamoDB.OrdersTable), nil
	}
}

func setMiddlewares(router *gin.Engine, m *metrics.ServerMetrics) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(requestID())
	router.Use(m.Middleware())
}
