package handler

import (
	"context"
	"time"

	"lingo-practice/internal/domain"
	"lingo-practice/internal/dto"
	"lingo-practice/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthHandler reports service health. cache may be nil when the verdict
// cache is disabled.
type HealthHandler struct {
	cache domain.Cache
}

func NewHealthHandler(cache domain.Cache) *HealthHandler {
	return &HealthHandler{cache: cache}
}

// Health handles GET /api/health
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{Status: "ok", Checks: map[string]string{}}

	if h.cache == nil {
		resp.Checks["cache"] = "disabled"
		return c.JSON(resp)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := h.cache.Ping(ctx); err != nil {
		logger.Get().Warn("Health check: cache ping failed", zap.Error(err))
		resp.Status = "degraded"
		resp.Checks["cache"] = "unreachable"
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	resp.Checks["cache"] = "ok"
	return c.JSON(resp)
}
