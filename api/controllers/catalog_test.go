package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/montluxe/storefront/internal/catalog"
	pkgerrors "github.com/montluxe/storefront/pkg/errors"
)

type stubCatalogService struct {
	products   *catalog.ProductListResult
	product    *catalog.ProductDTO
	categories *catalog.CategoryListResult
	err        error

	lastInput catalog.ListProductsInput
}

func (s *stubCatalogService) ListProducts(ctx context.Context, input catalog.ListProductsInput) (*catalog.ProductListResult, error) {
	s.lastInput = input
	return s.products, s.err
}

func (s *stubCatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*catalog.ProductDTO, error) {
	return s.product, s.err
}

func (s *stubCatalogService) ListCategories(ctx context.Context) (*catalog.CategoryListResult, error) {
	return s.categories, s.err
}

func TestProductsListReturnsCatalog(t *testing.T) {
	svc := &stubCatalogService{products: &catalog.ProductListResult{
		Products: []catalog.ProductDTO{
			{
				ID:       uuid.New(),
				Name:     "Alpine Elegance",
				Price:    "1299.99",
				ImageURL: "/images/alpine-elegance.jpg",
				Href:     "/products/alpine-elegance",
			},
		},
	}}
	handler := ProductsList(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/products?category=Genesis&limit=10&cursor=abc", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastInput.Category != "Genesis" {
		t.Fatalf("expected category filter forwarded, got %q", svc.lastInput.Category)
	}
	if svc.lastInput.Limit != 10 || svc.lastInput.Cursor != "abc" {
		t.Fatalf("expected page inputs forwarded, got %+v", svc.lastInput)
	}

	var envelope struct {
		Data catalog.ProductListResult `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Products) != 1 || envelope.Data.Products[0].Name != "Alpine Elegance" {
		t.Fatalf("unexpected payload: %+v", envelope.Data)
	}
}

func TestProductsListRejectsBadLimit(t *testing.T) {
	handler := ProductsList(&stubCatalogService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/products?limit=nope", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestProductGetRejectsBadID(t *testing.T) {
	handler := ProductGet(&stubCatalogService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/products/not-a-uuid", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCategoriesListServiceFailure(t *testing.T) {
	svc := &stubCatalogService{err: pkgerrors.New(pkgerrors.CodeInternal, "boom")}
	handler := CategoriesList(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
}
