package repository

import (
	"context"

	"github.com/deppfellow/request-params/internal/model"
)

var seedCatalog = [...]model.CatalogItem{
	{Name: "Star Apple", Category: "Fruit", Price: 0.5},
	{Name: "Apple", Category: "Fruit", Price: 0.9},
	{Name: "Banana", Category: "Fruit", Price: 0.3},
	{Name: "Strawberry", Category: "Fruit", Price: 0.7},
	{Name: "Orange", Category: "Fruit", Price: 0.6},
	{Name: "Grapes", Category: "Fruit", Price: 1.2},
}

// SeedCatalog returns a fresh copy of the built-in fruit catalog, in its
// canonical order.
func SeedCatalog() []model.CatalogItem {
	items := make([]model.CatalogItem, len(seedCatalog))
	copy(items, seedCatalog[:])
	return items
}

// CatalogRepository is a read-only, order preserving list of catalog items.
// It is safe for concurrent use because nothing mutates it after
// construction.
type CatalogRepository struct {
	items []model.CatalogItem
}

// NewCatalogRepository copies items, so later changes to the argument are not
// observed.
func NewCatalogRepository(items []model.CatalogItem) *CatalogRepository {
	owned := make([]model.CatalogItem, len(items))
	copy(owned, items)

	return &CatalogRepository{items: owned}
}

// List returns every item in catalog order. The returned slice is the
// caller's to keep.
func (r *CatalogRepository) List(ctx context.Context) ([]model.CatalogItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	items := make([]model.CatalogItem, len(r.items))
	copy(items, r.items)
	return items, nil
}

func (r *CatalogRepository) Count() int {
	return len(r.items)
}
