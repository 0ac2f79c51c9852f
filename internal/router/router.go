// Package router builds the Echo instance: middleware order, error handler,
// system routes and API routes.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/request-params/internal/handler"
	"github.com/deppfellow/request-params/internal/lib/serializer"
	"github.com/deppfellow/request-params/internal/middleware"
	"github.com/deppfellow/request-params/internal/server"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.JSONSerializer = serializer.JSON{}
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// RequestID, tracing and the context logger come first so everything
	// after them, including rate limit denials, is logged with the request
	// id and counted in metrics.
	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Metrics.Collect(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, s, h)
	registerParamsRoutes(router, h)

	return router
}
