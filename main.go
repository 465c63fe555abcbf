// File: canteen/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"canteen/config"
	"canteen/database"
	feedbackRepo "canteen/database/repository/feedback"
	submissionRepo "canteen/database/repository/submission"
	"canteen/handlers"
	"canteen/middleware"
	"canteen/routes"
	"canteen/services/admin"
	"canteen/services/feedback"
	"canteen/services/submission"
	"canteen/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("main: %v", err)
	}

	logger, err := utils.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("main: failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	loc, err := cfg.Location()
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	if cfg.AdminKey == "" {
		logger.Sugar().Warn("main: ADMIN_KEY is not set; feedback deletion is disabled")
	}

	mongoClient, err := database.Connect(cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	defer database.Disconnect(mongoClient)
	logger.Sugar().Infof("Connected to MongoDB database %q", cfg.DatabaseName)
	db := mongoClient.Database(cfg.DatabaseName)

	redisClient, err := utils.NewRedisClient(cfg)
	if err != nil {
		logger.Sugar().Warnf("main: submission throttle disabled: %v", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// repositories.
	fbRepo := feedbackRepo.NewMongoFeedbackRepo(db)
	subRepo := submissionRepo.NewMongoSubmissionRepo(db)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	if err := fbRepo.EnsureIndexes(startupCtx); err != nil {
		logger.Warn("main: failed to ensure feedback indexes", zap.Error(err))
	}
	if err := subRepo.EnsureIndexes(startupCtx); err != nil {
		logger.Warn("main: failed to ensure submission indexes", zap.Error(err))
	}
	cancelStartup()

	// services.
	feedbackService := &feedback.DefaultFeedbackService{
		Repo:     fbRepo,
		Gate:     admin.NewGate(cfg.AdminKey),
		Location: loc,
	}
	submissionService := &submission.DefaultSubmissionService{
		Repo: subRepo,
	}

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	var redisPinger utils.Pinger
	if redisClient != nil {
		redisPinger = utils.RedisPinger{Client: redisClient}
	}
	health := utils.NewHealthMonitor(utils.MongoPinger{Client: mongoClient}, redisPinger)
	health.Start(monitorCtx, 60*time.Second)

	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)

	handlerBundle := &handlers.HandlerBundle{
		SubmitFormHandler: submissionHandler.SubmitFormHandler,

		SubmitFeedbackHandler: feedbackHandler.SubmitFeedbackHandler,
		AverageRatingHandler:  feedbackHandler.AverageRatingHandler,
		MealBreakdownHandler:  feedbackHandler.MealBreakdownHandler,
		ListFeedbackHandler:   feedbackHandler.ListFeedbackHandler,

		AdminHandler: handlers.NewAdminHandler(feedbackService),

		HealthHandler: handlers.HealthHandler(health),
	}

	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle, routes.Options{
		AllowedOrigins: cfg.Origins(),
		Redis:          redisClient,
		SubmitLimit:    cfg.SubmitLimitPerHr,
	})

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
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
