package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Saijayaranjan/among-the-space/internal/config"
	"github.com/Saijayaranjan/among-the-space/internal/database"
	"github.com/Saijayaranjan/among-the-space/internal/handlers"
	"github.com/Saijayaranjan/among-the-space/internal/middleware"
	"github.com/Saijayaranjan/among-the-space/internal/migrations"
	"github.com/Saijayaranjan/among-the-space/internal/models"
	"github.com/Saijayaranjan/among-the-space/internal/routes"
	"github.com/Saijayaranjan/among-the-space/internal/services"
	"github.com/Saijayaranjan/among-the-space/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// 0. Load Config & Initialize Logger
	config.LoadConfig()

	// Environment-based logger initialization (production = JSON, development = pretty)
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	logger.Info().Str("environment", env).Msg("Starting Among The Space backend...")

	// Set Gin mode based on environment
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 1. Connect the passport store and the optional cache
	database.Connect()
	database.InitRedis()

	logger.Info().Msg("Running database migrations...")
	if err := database.DB.AutoMigrate(&models.Passport{}); err != nil {
		logger.Fatal().Err(err).Msg("Failed to migrate passport table")
	}
	if err := migrations.NewMigrator(database.DB).Run(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run migrations")
	}
	logger.Info().Msg("Database migrations complete")

	// 2. Build services and handlers. The passport service is the single
	// owner of the passport record; everything that mutates progression
	// goes through it.
	passportSvc := services.NewPassportService(database.DB)
	eventsSvc := services.NewEventsService(config.AppConfig.WikipediaBaseURL)
	issSvc := services.NewISSService(config.AppConfig.ISSAPIURL)

	passportHandler := handlers.NewPassportHandler(passportSvc)
	realmsHandler := handlers.NewRealmsHandler(passportSvc)
	eventsHandler := handlers.NewEventsHandler(eventsSvc)
	issHandler := handlers.NewISSHandler(issSvc)

	// 3. Setup Router
	r := gin.New()

	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// 4. Register Routes
	api := r.Group("/api")
	{
		routes.RegisterPassportRoutes(api, passportHandler)
		routes.RegisterRealmRoutes(api, realmsHandler)
		routes.RegisterFeedRoutes(api, eventsHandler, issHandler)
	}

	// Health check with store and cache status
	r.GET("/health", func(c *gin.Context) {
		dbStatus := "ok"
		redisStatus := "ok"

		sqlDB, err := database.DB.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "error"
		}

		if database.Redis != nil {
			if _, err := database.Redis.Ping(context.Background()).Result(); err != nil {
				redisStatus = "error"
			}
		} else {
			redisStatus = "not configured"
		}

		status := "ok"
		if dbStatus != "ok" || (redisStatus != "ok" && redisStatus != "not configured") {
			status = "degraded"
		}

		c.JSON(200, gin.H{
			"status":  status,
			"message": "Among The Space backend is running 🚀",
			"checks": gin.H{
				"database": dbStatus,
				"redis":    redisStatus,
			},
		})
	})

	// 5. Start Server with graceful shutdown
	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", port).Str("env", env).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server gracefully...")

	// Give outstanding requests 10 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited gracefully")
}
