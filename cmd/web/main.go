package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/viebus/viebus/internal/pkg/config"
	"github.com/viebus/viebus/internal/pkg/database"
	"github.com/viebus/viebus/internal/pkg/events"
	"github.com/viebus/viebus/internal/pkg/logger"
	"github.com/viebus/viebus/internal/pkg/middleware"
	"github.com/viebus/viebus/internal/pkg/storage"
	"github.com/viebus/viebus/services/api"
	authHandler "github.com/viebus/viebus/services/auth/handler/http"
	authUC "github.com/viebus/viebus/services/auth/usecase"
	bookingHandler "github.com/viebus/viebus/services/booking/handler/http"
	bookingUC "github.com/viebus/viebus/services/booking/usecase"
	notificationHandler "github.com/viebus/viebus/services/notification/handler/http"
	notificationUC "github.com/viebus/viebus/services/notification/usecase"
	paymentHandler "github.com/viebus/viebus/services/payment/handler/http"
	paymentUC "github.com/viebus/viebus/services/payment/usecase"
	"github.com/viebus/viebus/services/trips"
	tripHandler "github.com/viebus/viebus/services/trips/handler/http"
	"github.com/viebus/viebus/services/trips/repository"
	tripUC "github.com/viebus/viebus/services/trips/usecase"
)

func main() {
	appName := "viebus-web"
	configs := config.InitConfig(".env")

	zapLogger, err := logger.NewZapLogger(logger.ZapConfig{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
	})
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	// Persisted session state
	store, err := storage.NewFileStore(configs.Storage.Dir)
	if err != nil {
		logger.Fatal("Failed to open session storage", logger.Err(err))
	}

	// Optional redis-backed trip-search cache
	var searchCache trips.SearchCache
	if configs.Redis.Enabled {
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		defer redisClient.Close()
		searchCache = repository.NewRedisSearchCache(redisClient)
	}

	// Typed client for the booking API
	apiClient := api.NewClient(configs.API, store)

	// In-process event bus (login/logout signals)
	bus := events.NewBus()

	// Usecases
	session := authUC.NewSession(apiClient, store, bus)
	tripsSvc := tripUC.NewTripUC(apiClient, apiClient, searchCache)
	bookings := bookingUC.NewBookingUC(apiClient, session)
	payments := paymentUC.NewHandoff(apiClient)
	notifier := notificationUC.NewNotifier(apiClient, bus)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.RequestLoggerMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	registerRoutes(e,
		authHandler.NewAuthHandler(session),
		tripHandler.NewTripHandler(tripsSvc),
		bookingHandler.NewBookingHandler(bookings),
		paymentHandler.NewPaymentHandler(payments),
		notificationHandler.NewNotificationHandler(notifier),
	)

	addr := fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)
	go func() {
		logger.Info("Starting server",
			logger.String("app", appName),
			logger.String("addr", addr))
		if err := e.Start(addr); err != nil {
			logger.Info("Server stopped", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("Shutting down server", logger.String("app", appName))
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", logger.Err(err))
	}
}
