package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"debt-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	cache services.ResultCacheInterface
}

// NewHealthCheckHandler creates a new health check handler. cache may be
// nil when result caching is disabled.
func NewHealthCheckHandler(cache services.ResultCacheInterface) *HealthCheckHandler {
	return &HealthCheckHandler{cache: cache}
}

// HealthCheck reports API liveness and the result cache state. A failing
// cache reports "degraded" with 200; analyses still run without it.
//
// Method: GET /health
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	status := "ok"
	cacheStatus := "disabled"

	if h.cache != nil {
		cacheStatus = "ok"
		if err := h.cache.Healthy(c.Request().Context()); err != nil {
			slog.Warn("result cache unhealthy",
				"trace_id", getTraceID(c),
				"client_ip", c.RealIP(),
				"error", err.Error(),
			)
			status = "degraded"
			cacheStatus = "unavailable"
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": status,
		"cache":  cacheStatus,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
