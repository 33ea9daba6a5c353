package routes

import (
	"context"
	"strconv"
	"time"

	_ "buildbid/docs" // generated by swag init
	"buildbid/internal/adapter/http/handlers"
	"buildbid/internal/adapter/http/middleware"
	"buildbid/internal/adapter/persistence/repository"
	"buildbid/internal/config"
	"buildbid/internal/infrastructure/database"
	"buildbid/internal/infrastructure/logger"
	"buildbid/internal/infrastructure/metrics"
	"buildbid/internal/infrastructure/payments"
	"buildbid/internal/usecase"
	"buildbid/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const connectTimeout = 10 * time.Second

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Quote        *handlers.QuoteHandler
	Comparison   *handlers.ComparisonHandler
	Distribution *handlers.DistributionHandler
	Payment      *handlers.MilestonePaymentHandler
}

// Run wires the service and blocks serving HTTP on cfg.Port.
func Run(cfg config.Config, log *logger.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	ddb, err := database.ConnectDynamoDB(ctx, log)
	if err != nil {
		return err
	}

	m := metrics.New(prometheus.NewRegistry())
	router := NewRouter(cfg, log, m, getHandlers(cfg, log, repository.NewDynamoDocumentStore(ddb, cfg.QuotesTable), m))

	log.Info("Starting HTTP server", "port", cfg.Port, "env", cfg.Env)
	return router.Run(":" + strconv.Itoa(cfg.Port))
}

// NewRouter mounts middlewares, operational endpoints and the /v1 API.
func NewRouter(cfg config.Config, log *logger.Logger, m *metrics.Metrics, h Handlers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	setMiddlewares(router, cfg, log, m)

	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}
	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, h)
	return router
}

func getHandlers(cfg config.Config, log *logger.Logger, store interfaces.IDocumentStore, m *metrics.Metrics) Handlers {
	quoteRepo := repository.NewQuoteRepository(store)
	sowRepo := repository.NewScopeOfWorkRepository(store)
	distributionRepo := repository.NewDistributionRepository(store)
	paymentRepo := repository.NewMilestonePaymentRepository(store)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(payments.Options{
		AccessToken:     cfg.MercadoPagoToken,
		Currency:        cfg.PaymentCurrency,
		Mock:            cfg.PaymentGatewayMock,
		TestPayerEmail:  cfg.TestPayerEmail,
		TestPayerUserID: cfg.TestPayerUserID,
	}, log)
	if err != nil {
		log.Warn("Mercado Pago gateway not configured", "err", err)
	} else {
		paymentGateway = mpGateway
	}

	distributionUseCase := usecase.NewDistributionUseCase(distributionRepo, sowRepo, log)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, sowRepo, distributionUseCase, m, log)
	comparisonUseCase := usecase.NewQuoteComparisonUseCase(quoteRepo, sowRepo, m, log)
	paymentUseCase := usecase.NewMilestonePaymentUseCase(paymentRepo, quoteRepo, paymentGateway, log)

	return Handlers{
		Quote:        handlers.NewQuoteHandler(quoteUseCase, log),
		Comparison:   handlers.NewComparisonHandler(comparisonUseCase, log),
		Distribution: handlers.NewDistributionHandler(distributionUseCase, log),
		Payment:      handlers.NewMilestonePaymentHandler(paymentUseCase, log),
	}
}

func setMiddlewares(router *gin.Engine, cfg config.Config, log *logger.Logger, m *metrics.Metrics) {
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	router.Use(middleware.RequestLogger(log))
	if m != nil {
		router.Use(middleware.Metrics(m))
	}
}
