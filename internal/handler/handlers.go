package handler

import (
	"github.com/deppfellow/request-params/internal/server"
	"github.com/deppfellow/request-params/internal/service"
)

type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Catalog *CatalogHandler
	User    *UserHandler
	Report  *ReportHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s, services.Catalog),
		OpenAPI: NewOpenAPIHandler(s),
		Catalog: NewCatalogHandler(s, services.Catalog),
		User:    NewUserHandler(s),
		Report:  NewReportHandler(s),
	}
}
