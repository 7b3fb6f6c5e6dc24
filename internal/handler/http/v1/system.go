package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	healthCheckTimeout = 2 * time.Second

	healthStatusOK       = "ok"
	healthStatusDegraded = "degraded"
)

// @Summary Get application health status
// @Description Ping PostgreSQL and Redis
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse "All dependencies are reachable"
// @Failure 503 {object} HealthResponse "At least one dependency is unreachable"
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{
		Status: healthStatusOK,
		Checks: make(map[string]string, len(h.healthChecks)),
	}
	for name, check := range h.healthChecks {
		if err := check(ctx); err != nil {
			h.logger.WithField("dependency", name).WithError(err).Warn("Health check failed")
			resp.Checks[name] = err.Error()
			resp.Status = healthStatusDegraded
			continue
		}
		resp.Checks[name] = healthStatusOK
	}

	code := http.StatusOK
	if resp.Status != healthStatusOK {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, resp)
}
