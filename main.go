// File: medibook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook/clients/appointments"
	"medibook/clients/directory"
	"medibook/config"
	"medibook/handlers"
	"medibook/middleware"
	"medibook/routes"
	"medibook/services/booking"
	"medibook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// External collaborators.
	upstreamTimeout := config.UpstreamTimeout()
	storeClient := appointments.NewClient(config.AppConfig.AppointmentStoreURL, upstreamTimeout)
	directoryClient := directory.NewClient(config.AppConfig.DoctorDirectoryURL, upstreamTimeout)

	// Session store.
	sessionStore := booking.NewRedisSessionStore(utils.GetSessionCacheClient())

	// Services.
	grid := booking.DefaultGrid()
	guard := &booking.DuplicateBookingGuard{Store: storeClient}

	wizardService := &booking.DefaultWizardService{
		Directory:   directoryClient,
		Store:       storeClient,
		Guard:       guard,
		Sessions:    sessionStore,
		Grid:        grid,
		HorizonDays: config.AppConfig.AvailabilityHorizon,
		SessionTTL:  config.SessionTTL(),
		FallbackFee: config.AppConfig.ConsultationFeeDefault,
	}
	lifecycleService := &booking.DefaultLifecycleService{Store: storeClient}
	rescheduleService := &booking.DefaultRescheduleService{
		Store:       storeClient,
		Sessions:    sessionStore,
		Grid:        grid,
		HorizonDays: config.AppConfig.AvailabilityHorizon,
		SessionTTL:  config.SessionTTL(),
	}

	// Handlers and routes.
	wizardHandler := handlers.NewWizardHandler(wizardService)
	appointmentHandler := handlers.NewAppointmentHandler(lifecycleService, rescheduleService)
	availabilityHandler := handlers.NewAvailabilityHandler(grid, config.AppConfig.AvailabilityHorizon)

	routes.RegisterBookingRoutes(router, wizardHandler)
	routes.RegisterAppointmentRoutes(router, appointmentHandler)
	routes.RegisterAvailabilityRoutes(router, availabilityHandler)

	utils.StartHealthMonitor(utils.GetSessionCacheClient(),
		config.AppConfig.AppointmentStoreURL, config.AppConfig.DoctorDirectoryURL)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("Starting server on %s...", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: forced shutdown: %v", err)
	}
	logger.Info("Server exited")
}
