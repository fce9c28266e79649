package admin

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/zuqiartcraft/Product-Website/internal/domain"
)

type stubRepo struct {
	created *domain.Product
	updated *domain.Product
}

func (s *stubRepo) ListActive(_ context.Context, _, _ int) ([]domain.Product, error) {
	return nil, nil
}
func (s *stubRepo) CountActive(_ context.Context) (int, error) { return 0, nil }
func (s *stubRepo) GetActive(_ context.Context, _ string) (*domain.Product, error) {
	return nil, domain.ErrNotFound
}
func (s *stubRepo) ListAll(_ context.Context) ([]domain.Product, error) { return nil, nil }
func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Product, error) {
	return nil, domain.ErrNotFound
}

func (s *stubRepo) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.created = &p
	return &p, nil
}

func (s *stubRepo) Update(_ context.Context, _ string, p domain.Product) (*domain.Product, error) {
	s.updated = &p
	return &p, nil
}

func (s *stubRepo) SetActive(_ context.Context, _ string, _ bool) (*domain.Product, error) {
	return nil, domain.ErrNotFound
}
func (s *stubRepo) Delete(_ context.Context, _ string) error { return nil }

func validInput() ProductInput {
	return ProductInput{
		Name:             "Clay Vase",
		ShortDescription: "Terracotta vase",
		LongDescription:  "Wheel-thrown terracotta vase.",
		Images:           []any{"a.jpg", "b.jpg"},
		Price:            decimal.RequireFromString("49.99"),
	}
}

func TestCreate_ForcesActive(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	p, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !p.IsActive {
		t.Fatalf("new products must start active")
	}
	if !reflect.DeepEqual(p.Images, []string{"a.jpg", "b.jpg"}) {
		t.Fatalf("unexpected images %v", p.Images)
	}
}

func TestCreate_Validation(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	cases := []struct {
		name   string
		mutate func(*ProductInput)
	}{
		{"missing name", func(in *ProductInput) { in.Name = "  " }},
		{"missing short description", func(in *ProductInput) { in.ShortDescription = "" }},
		{"missing long description", func(in *ProductInput) { in.LongDescription = "" }},
		{"no images", func(in *ProductInput) { in.Images = nil }},
		{"negative price", func(in *ProductInput) { in.Price = decimal.RequireFromString("-1") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if repo.created != nil {
				t.Fatalf("invalid input must not reach the repository")
			}
		})
	}
}

func TestCreate_LegacySingleImageString(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	in := validInput()
	in.Images = "single.jpg"
	p, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !reflect.DeepEqual(p.Images, []string{"single.jpg"}) {
		t.Fatalf("expected single-image normalization, got %v", p.Images)
	}
}

func TestUpdate_PreservesImageOrder(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	in := validInput()
	in.Images = []any{"b.jpg", "a.jpg"}
	p, err := svc.Update(context.Background(), "p1", in)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !reflect.DeepEqual(p.Images, []string{"b.jpg", "a.jpg"}) {
		t.Fatalf("image order must be preserved, got %v", p.Images)
	}
	if p.MainImage() != "b.jpg" {
		t.Fatalf("expected b.jpg as new main image, got %q", p.MainImage())
	}
}

func TestCreate_ZeroPriceAllowed(t *testing.T) {
	svc := New(&stubRepo{})
	in := validInput()
	in.Price = decimal.Zero
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("zero price is a valid non-negative price: %v", err)
	}
}
