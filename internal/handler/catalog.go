package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/request-params/internal/model"
	"github.com/deppfellow/request-params/internal/server"
	"github.com/deppfellow/request-params/internal/service"
)

type CatalogHandler struct {
	Handler
	catalog *service.CatalogService
}

func NewCatalogHandler(s *server.Server, catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		Handler: NewHandler(s),
		catalog: catalog,
	}
}

// GetItem echoes the item described by the query string.
func (h *CatalogHandler) GetItem(c echo.Context, q *model.ItemQuery) (*model.ItemQuery, error) {
	return q, nil
}

func (h *CatalogHandler) Search(c echo.Context, req *model.SearchRequest) (*model.SearchResult, error) {
	return h.catalog.Search(c.Request().Context(), req)
}
