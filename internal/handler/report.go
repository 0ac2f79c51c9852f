package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/request-params/internal/model"
	"github.com/deppfellow/request-params/internal/server"
)

type ReportHandler struct {
	Handler
}

func NewReportHandler(s *server.Server) *ReportHandler {
	return &ReportHandler{
		Handler: NewHandler(s),
	}
}

func (h *ReportHandler) CreateReport(c echo.Context, r *model.CreateReportRequest) (*model.ReportSummary, error) {
	return &model.ReportSummary{
		ReportID:  r.ReportID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Report:    r.Report,
	}, nil
}
