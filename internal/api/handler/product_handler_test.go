package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"github.com/vinylshop/record-store/internal/core/domain"
	"github.com/vinylshop/record-store/internal/core/ports"
)

type stubProductService struct {
	createFn func(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error)
	getFn    func(ctx context.Context, id string) (*domain.Product, error)
	listFn   func(ctx context.Context, in ports.ListProductsInput) (*ports.ListProductsResult, error)
}

func (s *stubProductService) CreateProduct(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, in)
}

func (s *stubProductService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductService) ListProducts(ctx context.Context, in ports.ListProductsInput) (*ports.ListProductsResult, error) {
	return s.listFn(ctx, in)
}

func TestProductHandler_Create(t *testing.T) {
	stub := &stubProductService{
		createFn: func(_ context.Context, in ports.CreateProductInput) (*domain.Product, error) {
			if in.Price == nil || *in.Price != 29.99 || len(in.Genre) != 2 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Product{ID: "p1", Artist: in.Artist, AlbumName: in.AlbumName, Genre: in.Genre, Price: *in.Price}, nil
		},
	}
	h := NewProductHandler(stub, zerolog.Nop())

	c, rec := jsonContext(http.MethodPost, "/products",
		`{"artist":"Can","albumName":"Tago Mago","description":"1971","genre":["krautrock","experimental"],"price":29.99}`)
	if err := h.Create(c, &domain.User{ID: "admin", Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp productResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != "p1" || resp.AlbumName != "Tago Mago" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestProductHandler_List_Query(t *testing.T) {
	stub := &stubProductService{
		listFn: func(_ context.Context, in ports.ListProductsInput) (*ports.ListProductsResult, error) {
			if in.Page != 2 || in.Limit != 5 || in.Genre != "jazz" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.ListProductsResult{
				Items: []*domain.Product{{ID: "p1"}},
				Total: 6, Page: 2, Limit: 5, TotalPages: 2,
			}, nil
		},
	}
	h := NewProductHandler(stub, zerolog.Nop())

	c, rec := jsonContext(http.MethodGet, "/products?page=2&limit=5&genre=jazz", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp listProductsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 1 || resp.Pagination.TotalPages != 2 || resp.Pagination.Total != 6 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestProductHandler_List_RejectsBadLimit(t *testing.T) {
	h := NewProductHandler(&stubProductService{}, zerolog.Nop())

	c, _ := jsonContext(http.MethodGet, "/products?limit=1000", "")
	if err := h.List(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestProductHandler_List_RejectsHugePage(t *testing.T) {
	h := NewProductHandler(&stubProductService{}, zerolog.Nop())

	c, _ := jsonContext(http.MethodGet, "/products?page=4611686018427387904&limit=100", "")
	if err := h.List(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	stub := &stubProductService{
		getFn: func(context.Context, string) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	h := NewProductHandler(stub, zerolog.Nop())

	c, _ := jsonContext(http.MethodGet, "/products/nope", "")
	c.SetParamNames("id")
	c.SetParamValues("nope")
	if err := h.Get(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
