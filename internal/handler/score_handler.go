package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/singhkartik1407/skillforge-ai/internal/dto"
	"github.com/singhkartik1407/skillforge-ai/internal/service"
	"github.com/singhkartik1407/skillforge-ai/internal/utils"
)

// ScoreHandler exposes the score persistence endpoints backing the dashboard.
type ScoreHandler struct {
	service service.ScoreService
	logger  zerolog.Logger
}

// NewScoreHandler constructs the handler.
func NewScoreHandler(service service.ScoreService, logger zerolog.Logger) *ScoreHandler {
	return &ScoreHandler{
		service: service,
		logger:  logger.With().Str("component", "score_handler").Logger(),
	}
}

// Register wires the handler endpoints into the router group.
func (h *ScoreHandler) Register(router fiber.Router) {
	router.Post("/save-scores", h.save)
	router.Get("/get-scores", h.list)
}

func (h *ScoreHandler) save(c *fiber.Ctx) error {
	var payload dto.SaveScoresRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if _, err := h.service.Save(c.UserContext(), payload); err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, "missing required fields")
		}

		requestLogger(h.logger, c).Error().Err(err).Msg("failed to save scores")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to save scores")
	}

	return utils.SendSuccess(c, "", nil)
}

func (h *ScoreHandler) list(c *fiber.Ctx) error {
	records, err := h.service.History(c.UserContext())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to fetch scores")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch scores")
	}

	return c.JSON(records)
}
