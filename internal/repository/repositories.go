package repository

import (
	"github.com/deppfellow/request-params/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Catalog *CatalogRepository
}

// NewRepositories constructs the repository container.
//
// The catalog is seeded here, once per process.
func NewRepositories(s *server.Server) *Repositories {
	catalog := NewCatalogRepository(SeedCatalog())

	s.Logger.Debug().
		Int("catalog_items", catalog.Count()).
		Msg("catalog loaded")

	return &Repositories{
		Catalog: catalog,
	}
}
