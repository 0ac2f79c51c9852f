package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/request-params/internal/config"
	"github.com/deppfellow/request-params/internal/middleware"
	"github.com/deppfellow/request-params/internal/model"
	"github.com/deppfellow/request-params/internal/server"
	"github.com/deppfellow/request-params/internal/service"
)

var errCatalogEmpty = errors.New("catalog is empty")

type HealthHandler struct {
	Handler
	catalog *service.CatalogService
}

func NewHealthHandler(s *server.Server, catalog *service.CatalogService) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		catalog: catalog,
	}
}

// Root is the constant liveness probe on GET /.
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, model.Status{Status: "active"})
}

// CheckHealth reports the configured checks on GET /status and answers 503
// when any of them fails.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	obs := h.server.Config.Observability

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]interface{})
	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"uptime":      time.Since(h.server.StartedAt).Round(time.Second).String(),
		"checks":      checks,
	}

	isHealthy := true

	if obs.HasCheck(config.CheckCatalog) {
		ctx, cancel := context.WithTimeout(c.Request().Context(), obs.HealthChecks.Timeout)
		defer cancel()

		checkStart := time.Now()
		size, err := h.catalog.CatalogSize(ctx)
		if err == nil && size == 0 {
			err = errCatalogEmpty
		}

		if err != nil {
			isHealthy = false
			checks[config.CheckCatalog] = map[string]interface{}{
				"status":        "unhealthy",
				"response_time": time.Since(checkStart).String(),
				"error":         err.Error(),
			}

			logger.Error().
				Err(err).
				Dur("response_time", time.Since(checkStart)).
				Msg("catalog health check failed")

			h.recordHealthCheckError(config.CheckCatalog, err)
		} else {
			checks[config.CheckCatalog] = map[string]interface{}{
				"status":        "healthy",
				"response_time": time.Since(checkStart).String(),
				"items":         size,
			}
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

func (h *HealthHandler) recordHealthCheckError(check string, err error) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}

	h.server.LoggerService.GetApplication().RecordCustomEvent(
		"HealthCheckError",
		map[string]interface{}{
			"check_type":    check,
			"operation":     "health_check",
			"error_type":    check + "_unhealthy",
			"error_message": err.Error(),
		},
	)
}
