package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/singhkartik1407/skillforge-ai/internal/dto"
	"github.com/singhkartik1407/skillforge-ai/internal/service"
	"github.com/singhkartik1407/skillforge-ai/internal/utils"
)

// EvaluationHandler exposes the four AI evaluation endpoints. A missing
// required field is the only caller-visible failure; degraded results still
// arrive with a success status so the UI always has something to render.
type EvaluationHandler struct {
	service service.EvaluationService
	logger  zerolog.Logger
}

// NewEvaluationHandler constructs the handler.
func NewEvaluationHandler(service service.EvaluationService, logger zerolog.Logger) *EvaluationHandler {
	return &EvaluationHandler{
		service: service,
		logger:  logger.With().Str("component", "evaluation_handler").Logger(),
	}
}

// Register wires the handler endpoints into the router group.
func (h *EvaluationHandler) Register(router fiber.Router) {
	router.Post("/evaluate-code", h.evaluateCode)
	router.Post("/evaluate-aptitude", h.evaluateAptitude)
	router.Post("/evaluate-communication", h.evaluateCommunication)
	router.Post("/generate-insight", h.generateInsight)
	router.Get("/evaluations", h.auditTrail)
}

func (h *EvaluationHandler) evaluateCode(c *fiber.Ctx) error {
	var payload dto.CodeEvaluationRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.service.EvaluateCode(c.UserContext(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(result)
}

func (h *EvaluationHandler) evaluateAptitude(c *fiber.Ctx) error {
	var payload dto.AptitudeEvaluationRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.service.EvaluateAptitude(c.UserContext(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(result)
}

func (h *EvaluationHandler) evaluateCommunication(c *fiber.Ctx) error {
	var payload dto.CommunicationEvaluationRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.service.EvaluateCommunication(c.UserContext(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(result)
}

func (h *EvaluationHandler) generateInsight(c *fiber.Ctx) error {
	var payload dto.InsightRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.service.GenerateInsight(c.UserContext(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(result)
}

func (h *EvaluationHandler) auditTrail(c *fiber.Ctx) error {
	records, err := h.service.AuditTrail(c.UserContext(), c.Query("kind"), c.QueryInt("limit"))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to fetch evaluation audit trail")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch evaluations")
	}

	return c.JSON(records)
}

func (h *EvaluationHandler) handleError(c *fiber.Ctx, err error) error {
	if isValidationError(err) {
		return utils.SendError(c, fiber.StatusBadRequest, "missing required fields")
	}

	requestLogger(h.logger, c).Error().Err(err).Msg("evaluation request failed")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
