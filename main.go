package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sagashealth/config"
	"sagashealth/handlers"
	"sagashealth/middleware"
	"sagashealth/routes"
	"sagashealth/services/booking"
	"sagashealth/services/catalog"
	"sagashealth/services/certification"
	"sagashealth/services/geo"
	"sagashealth/services/payment"
	"sagashealth/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()
	utils.InitGeoCache()
	utils.StartHealthMonitor([]*redis.Client{
		utils.GetSessionCacheClient(),
		utils.GetGeoCacheClient(),
	})

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.GeolocationMiddleware())
	router.Use(middleware.SessionMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// services.
	catalogService := catalog.NewDefaultCatalogService()
	recordStore := booking.NewRedisRecordStore(
		utils.GetSessionCacheClient(),
		time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute,
		logger,
	)
	flowService := &booking.DefaultFlowService{
		Store:   recordStore,
		Catalog: catalogService,
		Logger:  logger,
	}
	paymentService := payment.NewPaymentService(logger)
	lmnService := &certification.DefaultLMNService{
		Delay:  time.Duration(config.AppConfig.LMNGenerationDelaySeconds) * time.Second,
		Logger: logger,
	}
	geocoder := geo.NewGoogleGeocoder(config.AppConfig.GoogleAPIKey, utils.GetGeoCacheClient(), logger)

	// handlers.
	catalogHandler := handlers.NewCatalogHandler(catalogService, geocoder, logger)
	questionnaireHandler := handlers.NewQuestionnaireHandler(flowService, logger)
	checkoutHandler := handlers.NewCheckoutHandler(flowService, paymentService, logger)
	confirmationHandler := handlers.NewConfirmationHandler(flowService, logger)
	certificationHandler := handlers.NewCertificationHandler(flowService, lmnService, logger)

	handlerBundle := handlers.NewHandlerBundle(
		catalogHandler,
		questionnaireHandler,
		checkoutHandler,
		confirmationHandler,
		certificationHandler,
	)

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
