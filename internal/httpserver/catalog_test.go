package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/zuqiartcraft/Product-Website/internal/domain"
	catalogsvc "github.com/zuqiartcraft/Product-Website/internal/service/catalog"
)

func TestListProducts_ReportsTrueTotal(t *testing.T) {
	d := defaultTestDeps()
	d.catalog.page = &catalogsvc.Page{
		Products: []domain.Product{
			{ID: "p1", Name: "Vase", Images: []string{"a.jpg", "b.jpg"}, Price: decimal.RequireFromString("49.99"), IsActive: true},
		},
		Page:       2,
		PageSize:   catalogsvc.PageSize,
		Total:      25,
		TotalPages: 3,
	}
	router := testRouter(t, d, Options{})

	req := httptest.NewRequest(http.MethodGet, "/api/products?page=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	var resp productListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 25 || resp.TotalPages != 3 || resp.Page != 2 {
		t.Fatalf("pagination must come from the count query, got %+v", resp)
	}
	if len(resp.Products) != 1 || resp.Products[0].MainImage() != "a.jpg" {
		t.Fatalf("unexpected products %+v", resp.Products)
	}
}

func TestListProducts_EmptyPageIsArray(t *testing.T) {
	router := testRouter(t, defaultTestDeps(), Options{})

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !json.Valid(rec.Body.Bytes()) {
		t.Fatalf("invalid json: %s", rec.Body.String())
	}
	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(resp["products"]) != "[]" {
		t.Fatalf("expected empty array, got %s", resp["products"])
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	d := defaultTestDeps()
	d.catalog.err = domain.ErrNotFound
	router := testRouter(t, d, Options{})

	req := httptest.NewRequest(http.MethodGet, "/api/products/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetProduct_Success(t *testing.T) {
	d := defaultTestDeps()
	d.catalog.prod = &domain.Product{ID: "p1", Name: "Vase", Images: []string{"single.jpg"}, IsActive: true}
	router := testRouter(t, d, Options{})

	req := httptest.NewRequest(http.MethodGet, "/api/products/p1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"images":["single.jpg"]`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
