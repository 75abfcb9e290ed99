package middleware

import (
	"lingo-practice/internal/domain"
	"lingo-practice/internal/dto"
	"lingo-practice/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys for validated request bodies
const (
	ValidatedEvaluateKey    = "validated_evaluate_request"
	ValidatedWordBubblesKey = "validated_word_bubbles_request"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateEvaluateBody parses and validates the body of POST /api/evaluate
func (vm *ValidationMiddleware) ValidateEvaluateBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.EvaluateRequest
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("Invalid request body")
		}

		if errors := vm.validator.ValidateEvaluateRequest(req.ExerciseType, req.UserAnswer, req.ExpectedAnswer); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		c.Locals(ValidatedEvaluateKey, &req)
		return c.Next()
	}
}

// ValidateWordBubblesBody parses and validates the body of
// POST /api/evaluate/word-bubbles
func (vm *ValidationMiddleware) ValidateWordBubblesBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.WordBubblesRequest
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("Invalid request body")
		}

		if errors := vm.validator.ValidateWordBubblesRequest(req.Selected, req.ExpectedAnswer); len(errors) > 0 {
			return errors
		}

		c.Locals(ValidatedWordBubblesKey, &req)
		return c.Next()
	}
}
