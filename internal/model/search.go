package model

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/request-params/internal/validation"
)

const (
	DefaultPage = 1
	DefaultSize = 5
)

// SearchRequest is the query string of GET /search/. Page and size are not
// range checked; a window that starts before the first item or has no width
// is simply empty.
type SearchRequest struct {
	Query string `query:"query"`
	Page  int    `query:"page"`
	Size  int    `query:"size"`
}

func (r *SearchRequest) Bind(c echo.Context) error {
	r.Page = DefaultPage
	r.Size = DefaultSize

	b := echo.QueryParamsBinder(c).FailFast(false)
	b.String("query", &r.Query).
		Int("page", &r.Page).
		Int("size", &r.Size)

	return errors.Join(b.BindErrors()...)
}

func (r *SearchRequest) Validate() error {
	return validation.Struct(r)
}

// SearchResult is one page of matching catalog items. Items is never nil so
// an empty page serializes as [].
type SearchResult struct {
	Items       []CatalogItem `json:"items"`
	TotalFruits int           `json:"total_fruits"`
	Page        int           `json:"page"`
	Size        int           `json:"size"`
}
