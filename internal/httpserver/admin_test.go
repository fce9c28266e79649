package httpserver

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/zuqiartcraft/Product-Website/internal/auth"
	"github.com/zuqiartcraft/Product-Website/internal/domain"
)

func adminRequest(method, path, body, token string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestLogin_Success(t *testing.T) {
	d := defaultTestDeps()
	d.auth.token = "issued-token"
	router := testRouter(t, d, Options{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminRequest(http.MethodPost, "/api/admin/login", `{"username":"admin","password":"pw"}`, ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"token":"issued-token"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	d := defaultTestDeps()
	d.auth.issueErr = auth.ErrInvalidCredentials
	router := testRouter(t, d, Options{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminRequest(http.MethodPost, "/api/admin/login", `{"username":"admin","password":"bad"}`, ""))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdminRoutes_RequireBearer(t *testing.T) {
	d := defaultTestDeps()
	d.auth.valid = false
	router := testRouter(t, d, Options{})

	cases := []struct {
		method, path string
	}{
		{http.MethodGet, "/api/admin/products"},
		{http.MethodPost, "/api/admin/products"},
		{http.MethodPut, "/api/admin/products/p1"},
		{http.MethodPatch, "/api/admin/products/p1"},
		{http.MethodDelete, "/api/admin/products/p1"},
		{http.MethodPost, "/api/admin/upload"},
	}
	for _, tc := range cases {
		// No header at all.
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, adminRequest(tc.method, tc.path, "", ""))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s without token: expected 401, got %d", tc.method, tc.path, rec.Code)
		}
		// Invalid token.
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, adminRequest(tc.method, tc.path, "", "stale"))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s with invalid token: expected 401, got %d", tc.method, tc.path, rec.Code)
		}
	}
}

func TestAdminCreate_ValidationError(t *testing.T) {
	d := defaultTestDeps()
	d.admin.err = fmt.Errorf("%w: name is required", domain.ErrValidation)
	router := testRouter(t, d, Options{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminRequest(http.MethodPost, "/api/admin/products", `{"name":""}`, "tok"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "name is required") {
		t.Fatalf("validation detail must be surfaced inline: %s", rec.Body.String())
	}
}

func TestAdminCreate_Success(t *testing.T) {
	d := defaultTestDeps()
	d.admin.prod = &domain.Product{ID: "p1", Name: "Vase", Images: []string{"a.jpg"}, IsActive: true}
	router := testRouter(t, d, Options{})

	body := `{"name":"Vase","short_description":"s","long_description":"l","images":["a.jpg"],"price":10}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminRequest(http.MethodPost, "/api/admin/products", body, "tok"))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"is_active":true`) {
		t.Fatalf("created product must be active: %s", rec.Body.String())
	}
}

func TestAdminToggle(t *testing.T) {
	d := defaultTestDeps()
	d.admin.prod = &domain.Product{ID: "p1", IsActive: false}
	router := testRouter(t, d, Options{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminRequest(http.MethodPatch, "/api/admin/products/p1", `{"is_active":false}`, "tok"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if len(d.admin.setActive) != 1 || d.admin.setActive[0] != false {
		t.Fatalf("expected SetActive(false), got %v", d.admin.setActive)
	}
}

func TestAdminToggle_MissingFlag(t *testing.T) {
	router := testRouter(t, defaultTestDeps(), Options{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminRequest(http.MethodPatch, "/api/admin/products/p1", `{}`, "tok"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAdminDelete_NotFound(t *testing.T) {
	d := defaultTestDeps()
	d.admin.err = domain.ErrNotFound
	router := testRouter(t, d, Options{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminRequest(http.MethodDelete, "/api/admin/products/missing", "", "tok"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

type stubUploader struct {
	url string
	err error
}

func (s *stubUploader) Save(_ string, _ io.Reader) (string, error) {
	return s.url, s.err
}

func (s *stubUploader) Dir() string { return "testdata" }

func TestAdminUpload(t *testing.T) {
	d := defaultTestDeps()
	gin.SetMode(gin.TestMode)
	router, err := buildRouter(logDiscard(), nil, Deps{
		CatalogSvc: d.catalog,
		AdminSvc:   d.admin,
		Auth:       d.auth,
		Checkout:   d.checkout,
		Uploads:    &stubUploader{url: "https://shop.example.com/uploads/x.jpg"},
	}, Options{})
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", "photo.jpg")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	part.Write([]byte("fake-image-bytes"))
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"url":"https://shop.example.com/uploads/x.jpg"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
