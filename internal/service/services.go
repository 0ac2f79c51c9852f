package service

import (
	"github.com/deppfellow/request-params/internal/repository"
	"github.com/deppfellow/request-params/internal/server"
)

type Services struct {
	Catalog *CatalogService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Catalog: NewCatalogService(s, repos.Catalog),
	}, nil
}
