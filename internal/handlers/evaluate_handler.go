package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"atspass/internal/middleware"
	"atspass/internal/models"
	"atspass/internal/services"
	"atspass/internal/validation"
)

type EvaluateHandler struct {
	evaluator services.EvaluatorService
	logger    *zap.Logger
}

func NewEvaluateHandler(evaluator services.EvaluatorService, logger *zap.Logger) *EvaluateHandler {
	return &EvaluateHandler{
		evaluator: evaluator,
		logger:    logger,
	}
}

// HandleEvaluate handles POST /evaluate. Access control has already run; the
// handler validates the body, runs the pipeline, and always answers with a
// fixed-shape result once validation passes.
//
// Resume and job posting text stay in memory for the duration of the request
// and are never logged.
func (h *EvaluateHandler) HandleEvaluate(c *fiber.Ctx) error {
	if h.evaluator == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gemini API key not configured",
		})
	}

	var body models.EvaluateRequestBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := validation.ValidateInput(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	input := validation.ExtractInput(&body)
	if input == nil {
		// Unreachable after validation; a nil here means the boundary's own
		// invariant was broken.
		h.logger.Error("input extraction failed after validation passed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to evaluate resume. Please try again.",
		})
	}

	result := h.evaluator.Evaluate(c.Context(), *input)

	if remaining, ok := c.Locals(middleware.LocalRateLimitRemaining).(int); ok {
		c.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
	}

	return c.JSON(result)
}
