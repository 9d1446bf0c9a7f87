package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cooptaxi/config"
	"cooptaxi/database"
	"cooptaxi/database/kv"
	conversationsRepo "cooptaxi/database/repository/conversations"
	servicesRepo "cooptaxi/database/repository/services"
	settingsRepo "cooptaxi/database/repository/settings"
	"cooptaxi/handlers"
	"cooptaxi/middleware"
	"cooptaxi/routes"
	"cooptaxi/services/assistant"
	"cooptaxi/services/fleet"
	"cooptaxi/services/session"
	"cooptaxi/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	db, err := database.Open(config.AppConfig.DataDir)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to open local store: %v", err)
	}
	defer db.Close()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	store := kv.NewStore(db)
	settings := settingsRepo.NewKVRepo(store)
	conversations := conversationsRepo.NewKVLog(store)

	driverEmail := config.AppConfig.DriverEmail
	localBackend := servicesRepo.NewLocalBackend(store, driverEmail)
	webhookBackend := servicesRepo.NewWebhookBackend(func() string {
		current, err := settings.Get(context.Background())
		if err != nil {
			return ""
		}
		return current.RemoteBackendURL
	}, driverEmail)

	// services.
	fleetService := &fleet.DefaultDataService{
		Local:      localBackend,
		Remote:     webhookBackend,
		Settings:   settings,
		OwnerEmail: driverEmail,
		Logger:     logger,
	}
	assistantService := &assistant.DefaultAssistant{
		Settings:    settings,
		Fleet:       fleetService,
		Log:         conversations,
		Completions: assistant.NewCompletionClient(logger),
		OwnerEmail:  driverEmail,
		Logger:      logger,
	}
	sessionService := &session.DefaultService{}

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		Auth:      handlers.NewAuthHandler(sessionService, logger),
		Fleet:     handlers.NewFleetHandler(fleetService, logger),
		Assistant: handlers.NewAssistantHandler(assistantService, logger),
		Settings:  handlers.NewSettingsHandler(settings, logger),
	}
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
