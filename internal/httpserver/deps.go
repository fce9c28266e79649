package httpserver

import (
	"context"
	"io"

	"github.com/zuqiartcraft/Product-Website/internal/checkout"
	"github.com/zuqiartcraft/Product-Website/internal/domain"
	adminsvc "github.com/zuqiartcraft/Product-Website/internal/service/admin"
	catalogsvc "github.com/zuqiartcraft/Product-Website/internal/service/catalog"
)

// CatalogService serves the public storefront reads.
type CatalogService interface {
	List(ctx context.Context, page int) (*catalogsvc.Page, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
}

// AdminService manages products on behalf of an authenticated admin.
type AdminService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, in adminsvc.ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in adminsvc.ProductInput) (*domain.Product, error)
	SetActive(ctx context.Context, id string, active bool) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// Authenticator issues and validates admin bearer tokens.
type Authenticator interface {
	IssueToken(username, password string) (string, error)
	ValidateToken(token string) bool
}

// Uploader stores an uploaded image and returns its public URL.
type Uploader interface {
	Save(originalName string, r io.Reader) (string, error)
	Dir() string
}

// Deps bundles everything the router needs.
type Deps struct {
	CatalogSvc CatalogService
	AdminSvc   AdminService
	Auth       Authenticator
	Checkout   *checkout.Store
	Uploads    Uploader
}
