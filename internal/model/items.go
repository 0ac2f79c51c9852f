package model

import (
	"errors"
	"math"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/request-params/internal/validation"
)

// ItemQuery is read from the query string of GET /items/ and echoed back
// as-is. Name and category must be present but may be empty.
type ItemQuery struct {
	Name     string  `query:"name" json:"name"`
	Category string  `query:"category" json:"category"`
	Price    float64 `query:"price" json:"price"`
}

func (q *ItemQuery) Bind(c echo.Context) error {
	b := echo.QueryParamsBinder(c).FailFast(false)
	b.String("name", &q.Name).
		String("category", &q.Category).
		MustFloat64("price", &q.Price)

	return errors.Join(append(b.BindErrors(), validation.RequireQueryParams(c, "name", "category"))...)
}

func (q *ItemQuery) Validate() error {
	if err := validation.Struct(q); err != nil {
		return err
	}

	// strconv accepts "NaN" and "Inf", neither of which can be encoded as JSON.
	if math.IsNaN(q.Price) || math.IsInf(q.Price, 0) {
		return validation.CustomValidationErrors{
			{Field: "price", Message: "must be a finite number"},
		}
	}

	return nil
}
