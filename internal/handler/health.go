package handler

import (
	"net/http"
	"slices"
	"time"

	"github.com/deppfellow/go-shops/internal/middleware"
	"github.com/deppfellow/go-shops/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler serves the /status endpoint used by load balancers and
// uptime monitors.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// HealthCheck is the result of a single dependency check.
type HealthCheck struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time,omitempty"`
	Error        string `json:"error,omitempty"`
}

// HealthResponse is the /status body.
type HealthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Backend     string                 `json:"backend"`
	Checks      map[string]HealthCheck `json:"checks"`
}

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// CheckHealth reports the storage backend and, for postgres, pings the
// pool within the configured timeout. It answers 503 when a check fails.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	cfg := h.server.Config

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := HealthResponse{
		Status:      statusHealthy,
		Timestamp:   start.UTC(),
		Environment: cfg.Primary.Env,
		Backend:     cfg.Storage.Backend,
		Checks:      map[string]HealthCheck{},
	}

	checks := cfg.Observability.HealthChecks
	if checks.Enabled && h.server.DB != nil && slices.Contains(checks.Checks, "database") {
		dbStart := time.Now()
		err := h.server.DB.Ping(c.Request().Context(), checks.Timeout)
		elapsed := time.Since(dbStart)

		if err != nil {
			response.Status = statusUnhealthy
			response.Checks["database"] = HealthCheck{
				Status:       statusUnhealthy,
				ResponseTime: elapsed.String(),
				Error:        err.Error(),
			}

			logger.Error().Err(err).Dur("response_time", elapsed).Msg("database health check failed")
			h.recordFailure("database", elapsed, err)
		} else {
			response.Checks["database"] = HealthCheck{
				Status:       statusHealthy,
				ResponseTime: elapsed.String(),
			}
		}
	} else {
		response.Checks["storage"] = HealthCheck{Status: statusHealthy}
	}

	if response.Status != statusHealthy {
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("health check failed")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().Dur("total_duration", time.Since(start)).Msg("health check passed")
	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) recordFailure(check string, elapsed time.Duration, err error) {
	app := h.server.LoggerService.GetApplication()
	if app == nil {
		return
	}

	app.RecordCustomEvent("HealthCheckError", map[string]any{
		"check_type":       check,
		"operation":        "health_check",
		"error_type":       check + "_unhealthy",
		"response_time_ms": elapsed.Milliseconds(),
		"error_message":    err.Error(),
	})
}
