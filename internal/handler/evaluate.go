package handler

import (
	"lingo-practice/internal/domain"
	"lingo-practice/internal/dto"
	"lingo-practice/internal/middleware"
	"lingo-practice/internal/service"

	"github.com/gofiber/fiber/v2"
)

// EvaluationHandler handles answer-evaluation HTTP requests
type EvaluationHandler struct {
	service service.EvaluationService
}

// NewEvaluationHandler creates a new EvaluationHandler instance
func NewEvaluationHandler(service service.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{
		service: service,
	}
}

// Evaluate handles POST /api/evaluate for typed translations and dictations.
// The body has already been parsed by middleware.ValidateEvaluateBody.
func (h *EvaluationHandler) Evaluate(c *fiber.Ctx) error {
	req, ok := c.Locals(middleware.ValidatedEvaluateKey).(*dto.EvaluateRequest)
	if !ok {
		return domain.NewInternalError("Validated request missing from context", nil)
	}

	resp, err := h.service.CheckAnswer(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// EvaluateWordBubbles handles POST /api/evaluate/word-bubbles
func (h *EvaluationHandler) EvaluateWordBubbles(c *fiber.Ctx) error {
	req, ok := c.Locals(middleware.ValidatedWordBubblesKey).(*dto.WordBubblesRequest)
	if !ok {
		return domain.NewInternalError("Validated request missing from context", nil)
	}

	resp, err := h.service.CheckWordBubbles(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
