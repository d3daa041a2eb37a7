package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/singhkartik1407/skillforge-ai/internal/config"
	"github.com/singhkartik1407/skillforge-ai/internal/handler"
	"github.com/singhkartik1407/skillforge-ai/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	EvaluationHandler *handler.EvaluationHandler
	ScoreHandler      *handler.ScoreHandler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	if deps.EvaluationHandler != nil {
		deps.EvaluationHandler.Register(api)
	}

	if deps.ScoreHandler != nil {
		deps.ScoreHandler.Register(api)
	}
}
