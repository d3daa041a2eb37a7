package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/singhkartik1407/skillforge-ai/internal/config"
	"github.com/singhkartik1407/skillforge-ai/internal/database"
	"github.com/singhkartik1407/skillforge-ai/internal/handler"
	"github.com/singhkartik1407/skillforge-ai/internal/middleware"
	"github.com/singhkartik1407/skillforge-ai/internal/models"
	"github.com/singhkartik1407/skillforge-ai/internal/repository"
	"github.com/singhkartik1407/skillforge-ai/internal/router"
	"github.com/singhkartik1407/skillforge-ai/internal/service"
	"github.com/singhkartik1407/skillforge-ai/pkg/ai"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.ScoreRecord{}, &models.EvaluationRecord{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	cache, err := connectCache(cfg, logger)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	if cache != nil {
		defer cache.Close()
	}

	generator, err := ai.NewGeminiClient(ai.GeminiConfig{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
		Timeout: cfg.AITimeout,
		Logger:  logger,
	})
	if err != nil {
		log.Fatalf("failed to create gemini client: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	scoreRepo := repository.NewScoreRepository(db)
	evaluationRepo := repository.NewEvaluationRepository(db)

	evaluationService := service.NewEvaluationService(generator, evaluationRepo, validate, logger)
	scoreService := service.NewScoreService(scoreRepo, cache, cfg.ScoreCacheTTL, validate, logger)

	evaluationHandler := handler.NewEvaluationHandler(evaluationService, logger)
	scoreHandler := handler.NewScoreHandler(scoreService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		EvaluationHandler: evaluationHandler,
		ScoreHandler:      scoreHandler,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

// connectCache returns nil when no redis URL is configured; the score service
// then serves history straight from the datastore.
func connectCache(cfg config.Config, logger zerolog.Logger) (*redis.Client, error) {
	if cfg.RedisURL == "" {
		logger.Warn().Msg("redis url not configured, score history cache disabled")
		return nil, nil
	}

	return database.ConnectRedis(cfg.RedisURL)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
