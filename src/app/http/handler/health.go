package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapi/src/core/usecase"
)

// HealthHandler handles the health check endpoint used by orchestrator
// liveness and readiness probes.
type HealthHandler struct {
	healthService *usecase.HealthService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(healthService *usecase.HealthService) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
	}
}

// Health returns the health status of the application: 200 when the
// database round trip succeeds, 503 when it does not. The process keeps
// answering either way.
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	status, healthy := h.healthService.Check(c.Request.Context())
	code := http.StatusOK
	if !healthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
