package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/request-params/internal/handler"
)

func registerParamsRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Health.Root)

	r.GET("/items/", handler.Handle(h.Catalog.Handler, h.Catalog.GetItem, http.StatusOK))
	r.GET("/search/", handler.Handle(h.Catalog.Handler, h.Catalog.Search, http.StatusOK))

	r.POST("/users/", handler.Handle(h.User.Handler, h.User.CreateUser, http.StatusOK))
	r.GET("/validate/", handler.Handle(h.User.Handler, h.User.ValidateUsername, http.StatusOK))

	r.POST("/reports/:report_id", handler.Handle(h.Report.Handler, h.Report.CreateReport, http.StatusOK))
}
