package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"trivia/config"
	"trivia/handlers"
	"trivia/routes"
	"trivia/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	logger := config.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := config.Bootstrap(db, cfg.SeedCategories); err != nil {
		logger.Fatal("failed to bootstrap database", zap.Error(err))
	}

	var categoryCache services.CategoryCache
	redisClient, err := config.InitRedis(cfg)
	switch {
	case errors.Is(err, config.ErrRedisDisabled):
		logger.Info("redis not configured, category cache disabled")
	case err != nil:
		logger.Fatal("failed to initialise redis", zap.Error(err))
	default:
		defer redisClient.Close()
		categoryCache = services.NewRedisCategoryCache(redisClient, cfg.CategoryCacheTTL)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub := services.NewHub(logger)
	go hub.Run(ctx)

	categoryService := services.NewCategoryService(db, categoryCache, logger)
	questionService := services.NewQuestionService(db, hub, logger)
	quizService := services.NewQuizService(questionService, logger)

	questionHandler := handlers.NewQuestionHandler(questionService, categoryService, cfg.QuestionsPerPage, logger)
	categoryHandler := handlers.NewCategoryHandler(categoryService, questionService, cfg.QuestionsPerPage, logger)
	quizHandler := handlers.NewQuizHandler(quizService, logger)

	router := routes.NewRouter(logger)
	routes.SetupRoutes(router, questionHandler, categoryHandler, quizHandler, hub, logger)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
