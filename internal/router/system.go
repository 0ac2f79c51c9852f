package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/deppfellow/request-params/internal/handler"
	"github.com/deppfellow/request-params/internal/server"
)

func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.Metrics, promhttp.HandlerOpts{})))

	r.GET(handler.OpenAPISpecPath, h.OpenAPI.ServeSpec)

	r.GET("/docs", func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, handler.DocsPath)
	})
	r.GET(handler.DocsPath+"*", h.OpenAPI.ServeUI)
}
