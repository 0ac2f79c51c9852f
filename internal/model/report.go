package model

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/request-params/internal/validation"
)

// Report is the JSON body of a report request. Like Address, a missing key
// is an error and an empty string is not.
type Report struct {
	Title   *string `json:"title" validate:"required"`
	Content *string `json:"content" validate:"required"`
}

// CreateReportRequest gathers the three input sources of
// POST /reports/:report_id. The dates are not checked against each other.
type CreateReportRequest struct {
	ReportID  int    `param:"report_id" validate:"gt=0"`
	StartDate Date   `query:"start_date"`
	EndDate   Date   `query:"end_date"`
	Report    Report `validate:"-"`
}

func (r *CreateReportRequest) Bind(c echo.Context) error {
	path := echo.PathParamsBinder(c).FailFast(false)
	path.MustInt("report_id", &r.ReportID)

	query := echo.QueryParamsBinder(c).FailFast(false)
	query.MustBindUnmarshaler("start_date", &r.StartDate).
		MustBindUnmarshaler("end_date", &r.EndDate)

	bindErrs := append(path.BindErrors(), query.BindErrors()...)
	if err := (&echo.DefaultBinder{}).BindBody(c, &r.Report); err != nil {
		bindErrs = append(bindErrs, err)
	}

	return errors.Join(bindErrs...)
}

// Validate checks the path value and the body separately so body fields are
// reported as "title" and "content", the way they appear in the request.
func (r *CreateReportRequest) Validate() error {
	return errors.Join(validation.Struct(r), validation.Struct(&r.Report))
}

// ReportSummary echoes every input of a report request.
type ReportSummary struct {
	ReportID  int    `json:"report_id"`
	StartDate Date   `json:"start_date"`
	EndDate   Date   `json:"end_date"`
	Report    Report `json:"report"`
}
