package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/deppfellow/request-params/internal/model"
	"github.com/deppfellow/request-params/internal/repository"
	"github.com/deppfellow/request-params/internal/server"
)

type CatalogService struct {
	server *server.Server
	repo   *repository.CatalogRepository
}

func NewCatalogService(s *server.Server, repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{
		server: s,
		repo:   repo,
	}
}

// Search filters the catalog by a case-insensitive substring of the item
// name and returns one page of the result.
//
// An empty query matches every item. TotalFruits always counts the whole
// filtered set, not just the page. The window [(page-1)*size, page*size) is
// clamped to the filtered set, so a page past the end, a page below 1 or a
// size below 1 yields no items rather than an error. Negative values never
// count back from the end of the list: page=-1 or size=-1 is an empty page,
// not the last items.
func (s *CatalogService) Search(ctx context.Context, req *model.SearchRequest) (*model.SearchResult, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing catalog: %w", err)
	}

	filtered := filterByName(items, req.Query)
	start, end := pageWindow(len(filtered), req.Page, req.Size)

	page := make([]model.CatalogItem, end-start)
	copy(page, filtered[start:end])

	return &model.SearchResult{
		Items:       page,
		TotalFruits: len(filtered),
		Page:        req.Page,
		Size:        req.Size,
	}, nil
}

// CatalogSize is used by the health check.
func (s *CatalogService) CatalogSize(ctx context.Context) (int, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing catalog: %w", err)
	}
	return len(items), nil
}

func filterByName(items []model.CatalogItem, query string) []model.CatalogItem {
	if query == "" {
		return items
	}

	// A Caser keeps state between calls, so each search gets its own.
	fold := cases.Fold()
	needle := fold.String(query)

	filtered := make([]model.CatalogItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(fold.String(item.Name), needle) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// pageWindow returns the bounds of page within n items. The bounds are
// always valid slice indices; start == end means the page is empty.
func pageWindow(n, page, size int) (start, end int) {
	if n == 0 || page < 1 || size < 1 {
		return 0, 0
	}

	// (page-1)*size < n  <=>  page-1 <= (n-1)/size, without overflowing.
	if page-1 > (n-1)/size {
		return n, n
	}

	start = (page - 1) * size
	end = n
	if size < n-start {
		end = start + size
	}
	return start, end
}
