package handler

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/swaggest/swgui/v5emb"

	"github.com/deppfellow/request-params/internal/server"
)

const (
	OpenAPISpecPath = "/static/openapi.json"
	DocsPath        = "/docs/"
)

//go:embed static/openapi.json
var openAPISpec []byte

type OpenAPIHandler struct {
	Handler
	ui http.Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
		ui:      v5emb.New("Request Params API", OpenAPISpecPath, DocsPath),
	}
}

// ServeSpec serves the embedded OpenAPI document.
func (h *OpenAPIHandler) ServeSpec(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, openAPISpec)
}

// ServeUI serves Swagger UI and its assets under DocsPath.
func (h *OpenAPIHandler) ServeUI(c echo.Context) error {
	h.ui.ServeHTTP(c.Response(), c.Request())
	return nil
}
