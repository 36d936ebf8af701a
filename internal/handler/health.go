package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/portfolio-api/internal/middleware"
	"github.com/deppfellow/portfolio-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// HealthHandler reports liveness and dependency status for monitors and
// load balancers.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

type check struct {
	Status       string           `json:"status"`
	ResponseTime string           `json:"response_time,omitempty"`
	Error        string           `json:"error,omitempty"`
	Pool         map[string]int32 `json:"pool,omitempty"`
}

// CheckHealth probes the configured dependencies.
//
// The database is required: a failed ping turns the response into 503.
// Redis is optional and only reported. The notification worker is listed
// as enabled or disabled.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	obs := h.server.Config.Observability

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := map[string]check{}
	healthy := true

	if obs.HasCheck("database") {
		res, err := h.probe(c.Request().Context(), h.server.DB.Ping)
		if h.server.DB != nil {
			res.Pool = h.server.DB.Stats()
		}
		checks["database"] = res
		if err != nil {
			healthy = false
			h.recordFailure(&logger, "database", err, res.ResponseTime)
		}
	}

	if obs.HasCheck("redis") {
		if h.server.Redis == nil {
			checks["redis"] = check{Status: "disabled"}
		} else {
			res, err := h.probe(c.Request().Context(), func(ctx context.Context) error {
				return h.server.Redis.Ping(ctx).Err()
			})
			checks["redis"] = res
			if err != nil {
				h.recordFailure(&logger, "redis", err, res.ResponseTime)
			}
		}
	}

	jobs := "enabled"
	if h.server.Job == nil {
		jobs = "disabled"
	}
	checks["notifications"] = check{Status: jobs}

	status := "healthy"
	code := http.StatusOK
	if !healthy {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("health check failed")
	} else {
		logger.Debug().Dur("total_duration", time.Since(start)).Msg("health check passed")
	}

	response := map[string]interface{}{
		"status":      status,
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	if err := c.JSON(code, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}
	return nil
}

func (h *HealthHandler) probe(ctx context.Context, ping func(context.Context) error) (check, error) {
	ctx, cancel := context.WithTimeout(ctx, h.server.Config.Observability.HealthChecks.Timeout)
	defer cancel()

	start := time.Now()
	err := ping(ctx)
	res := check{Status: "healthy", ResponseTime: time.Since(start).String()}
	if err != nil {
		res.Status = "unhealthy"
		res.Error = err.Error()
	}
	return res, err
}

func (h *HealthHandler) recordFailure(logger *zerolog.Logger, name string, err error, responseTime string) {
	logger.Error().Err(err).Str("check", name).Str("response_time", responseTime).Msg("health check failed")

	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
			"check_type":    name,
			"operation":     "health_check",
			"error_type":    name + "_unhealthy",
			"error_message": err.Error(),
		})
	}
}
