// Package admin implements the authenticated product management operations.
// Validation happens here so every transport surfaces the same rules.
package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zuqiartcraft/Product-Website/internal/domain"
	"github.com/zuqiartcraft/Product-Website/internal/imagelist"
	productrepo "github.com/zuqiartcraft/Product-Website/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// ProductInput mirrors the admin form payload. Images accepts both the
// array form and the legacy single-URL string.
type ProductInput struct {
	Name             string          `json:"name"`
	ShortDescription string          `json:"short_description"`
	LongDescription  string          `json:"long_description"`
	Size             string          `json:"size"`
	Images           any             `json:"images"`
	Price            decimal.Decimal `json:"price"`
}

func (in ProductInput) toProduct() (domain.Product, error) {
	p := domain.Product{
		Name:             strings.TrimSpace(in.Name),
		ShortDescription: strings.TrimSpace(in.ShortDescription),
		LongDescription:  strings.TrimSpace(in.LongDescription),
		Size:             strings.TrimSpace(in.Size),
		Images:           imagelist.NormalizeValue(in.Images),
		Price:            in.Price,
	}
	switch {
	case p.Name == "":
		return p, fmt.Errorf("%w: name is required", domain.ErrValidation)
	case p.ShortDescription == "":
		return p, fmt.Errorf("%w: short description is required", domain.ErrValidation)
	case p.LongDescription == "":
		return p, fmt.Errorf("%w: long description is required", domain.ErrValidation)
	case len(p.Images) == 0:
		return p, fmt.Errorf("%w: at least one image is required", domain.ErrValidation)
	case p.Price.IsNegative():
		return p, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	return p, nil
}

// List returns every product, including inactive ones, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListAll(ctx)
}

// Create validates the input and inserts a new product. New products always
// start active.
func (s *Service) Create(ctx context.Context, in ProductInput) (*domain.Product, error) {
	p, err := in.toProduct()
	if err != nil {
		return nil, err
	}
	p.IsActive = true
	return s.repo.Create(ctx, p)
}

// Update validates the input and replaces every editable field of an
// existing product. The active flag is managed separately via SetActive.
func (s *Service) Update(ctx context.Context, id string, in ProductInput) (*domain.Product, error) {
	p, err := in.toProduct()
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, p)
}

// SetActive flips a product's catalog visibility.
func (s *Service) SetActive(ctx context.Context, id string, active bool) (*domain.Product, error) {
	return s.repo.SetActive(ctx, id, active)
}

// Delete removes a product permanently.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
