package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/request-params/internal/model"
	"github.com/deppfellow/request-params/internal/repository"
)

func TestSeedCatalog(t *testing.T) {
	items := repository.SeedCatalog()

	require.Len(t, items, 6)

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
		assert.Equal(t, "Fruit", item.Category)
	}
	assert.Equal(t, []string{"Star Apple", "Apple", "Banana", "Strawberry", "Orange", "Grapes"}, names)
	assert.Equal(t, 1.2, items[5].Price)
}

func TestCatalogRepository_ListReturnsCopies(t *testing.T) {
	repo := repository.NewCatalogRepository(repository.SeedCatalog())

	first, err := repo.List(context.Background())
	require.NoError(t, err)
	first[0].Name = "Durian"

	second, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Star Apple", second[0].Name)

	seed := repository.SeedCatalog()
	seed[1].Price = 100
	assert.Equal(t, 0.9, repository.SeedCatalog()[1].Price)
}

func TestCatalogRepository_EmptyAndCancelled(t *testing.T) {
	repo := repository.NewCatalogRepository(nil)
	assert.Equal(t, 0, repo.Count())

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.CatalogItem{}, items)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = repo.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
