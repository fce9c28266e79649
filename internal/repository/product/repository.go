package product

import (
	"context"

	"github.com/zuqiartcraft/Product-Website/internal/domain"
)

// Repository is the storage contract for products. Catalog reads see only
// active rows; the admin operations see everything.
type Repository interface {
	ListActive(ctx context.Context, limit, offset int) ([]domain.Product, error)
	CountActive(ctx context.Context) (int, error)
	GetActive(ctx context.Context, id string) (*domain.Product, error)

	ListAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, p domain.Product) (*domain.Product, error)
	SetActive(ctx context.Context, id string, active bool) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
