package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calderasoft/erp-backend/internal/inventory"
	"github.com/calderasoft/erp-backend/pkg/db/models"
)

type stubInventoryService struct {
	list        *inventory.ProductList
	lastFilters inventory.ProductFilters
	movements   []inventory.MovementRow
	lastCreate  inventory.CreateProductInput
}

func (s *stubInventoryService) ListProducts(_ context.Context, filters inventory.ProductFilters) (*inventory.ProductList, error) {
	s.lastFilters = filters
	return s.list, nil
}

func (s *stubInventoryService) CreateProduct(_ context.Context, input inventory.CreateProductInput) (*models.Product, error) {
	s.lastCreate = input
	return &models.Product{ID: uuid.New(), SKU: input.SKU, Name: input.Name}, nil
}

func (s *stubInventoryService) ListMovements(context.Context, inventory.MovementFilters) ([]inventory.MovementRow, error) {
	return s.movements, nil
}

func (s *stubInventoryService) Consume(context.Context, *gorm.DB, inventory.ConsumeInput) error {
	panic("unimplemented")
}

func (s *stubInventoryService) Restock(context.Context, *gorm.DB, inventory.RestockInput) error {
	panic("unimplemented")
}

func TestInventoryListProductsPassesFilters(t *testing.T) {
	stub := &stubInventoryService{list: &inventory.ProductList{}}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory/products?category=Widgets&lowStock=true", nil)
	rec := httptest.NewRecorder()
	InventoryListProducts(stub, testLogg()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.lastFilters.Category != "Widgets" || !stub.lastFilters.LowStock {
		t.Fatalf("filters not forwarded: %+v", stub.lastFilters)
	}
}

func TestInventoryListProductsDegradedMarker(t *testing.T) {
	stub := &stubInventoryService{list: &inventory.ProductList{
		Products: []models.Product{{ID: uuid.New(), SKU: "P001", Name: "Fallback"}},
		Degraded: true,
	}}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory/products", nil)
	rec := httptest.NewRecorder()
	InventoryListProducts(stub, testLogg()).ServeHTTP(rec, req)

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if string(envelope["degraded"]) != "true" {
		t.Fatalf("expected degraded marker, got %s", rec.Body.String())
	}
}

func TestInventoryCreateProductValidation(t *testing.T) {
	t.Run("missing sku", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory/products", strings.NewReader(`{"name":"Widget"}`))
		rec := httptest.NewRecorder()
		InventoryCreateProduct(&stubInventoryService{}, testLogg()).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for missing sku, got %d", rec.Code)
		}
	})

	t.Run("negative stock", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory/products", strings.NewReader(`{"sku":"SKU-001","name":"Widget","stock_quantity":-4}`))
		rec := httptest.NewRecorder()
		InventoryCreateProduct(&stubInventoryService{}, testLogg()).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for negative stock, got %d", rec.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory/products", strings.NewReader(`{"sku":"SKU-001","name":"Widget","unit_price":"9.99","stock_quantity":10}`))
		rec := httptest.NewRecorder()
		InventoryCreateProduct(&stubInventoryService{}, testLogg()).ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	})
}

func TestInventoryCreateProductSanitizesText(t *testing.T) {
	stub := &stubInventoryService{}
	body := `{"sku":"SKU-002","name":"  Widget  ","category":" Fasteners ","description":"  padded  "}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory/products", strings.NewReader(body))
	rec := httptest.NewRecorder()
	InventoryCreateProduct(stub, testLogg()).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if stub.lastCreate.Name != "Widget" || stub.lastCreate.Category != "Fasteners" {
		t.Fatalf("text not trimmed: %+v", stub.lastCreate)
	}
	if stub.lastCreate.Description == nil || *stub.lastCreate.Description != "padded" {
		t.Fatalf("description not trimmed: %v", stub.lastCreate.Description)
	}
}

func TestInventoryListMovementsRejectsBadProductID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory/movements?productId=abc", nil)
	rec := httptest.NewRecorder()
	InventoryListMovements(&stubInventoryService{}, testLogg()).ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
