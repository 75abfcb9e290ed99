package handler

import (
	"time"

	"lingo-practice/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/timeout"
)

// RegisterRoutes mounts the API under /api. Evaluations are given
// requestTimeout to finish; past it the pending evaluation is cancelled and
// the client gets 408. A zero requestTimeout sets no deadline.
func RegisterRoutes(app *fiber.App, evaluation *EvaluationHandler, health *HealthHandler, requestTimeout time.Duration) {
	validator := middleware.NewValidationMiddleware()

	withDeadline := func(h fiber.Handler) fiber.Handler {
		if requestTimeout <= 0 {
			return h
		}
		return timeout.NewWithContext(h, requestTimeout)
	}

	api := app.Group("/api")
	api.Get("/health", health.Health)
	api.Post("/evaluate", validator.ValidateEvaluateBody(), withDeadline(evaluation.Evaluate))
	api.Post("/evaluate/word-bubbles", validator.ValidateWordBubblesBody(), withDeadline(evaluation.EvaluateWordBubbles))
}
