// Package catalog serves the public storefront reads: paginated listing of
// active products and the detail lookup.
package catalog

import (
	"context"

	"github.com/zuqiartcraft/Product-Website/internal/domain"
	productrepo "github.com/zuqiartcraft/Product-Website/internal/repository/product"
)

// PageSize is the fixed storefront page size.
const PageSize = 12

// Page is one catalog page plus the true total, so pagination controls stay
// correct past the first page.
type Page struct {
	Products   []domain.Product
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// List returns the requested page of active products, newest first. Pages
// are 1-based; out-of-range values clamp to the first page.
func (s *Service) List(ctx context.Context, page int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * PageSize

	total, err := s.repo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.repo.ListActive(ctx, PageSize, offset)
	if err != nil {
		return nil, err
	}

	totalPages := (total + PageSize - 1) / PageSize
	return &Page{
		Products:   products,
		Page:       page,
		PageSize:   PageSize,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// Get returns an active product by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetActive(ctx, id)
}
