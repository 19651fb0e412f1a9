package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/vinylshop/record-store/internal/core/domain"
	"github.com/vinylshop/record-store/internal/core/ports"
)

type stubProductRepo struct {
	products   []*domain.Product
	lastFilter ports.ListProductsFilter
	err        error
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, existing := range r.products {
		if existing.AlbumName == p.AlbumName || existing.Description == p.Description {
			return nil, domain.ErrProductExists
		}
	}
	clone := *p
	clone.ID = fmt.Sprintf("%024x", len(r.products)+1)
	r.products = append(r.products, &clone)
	out := clone
	return &out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) List(_ context.Context, f ports.ListProductsFilter) ([]*domain.Product, int64, error) {
	r.lastFilter = f
	if r.err != nil {
		return nil, 0, r.err
	}
	return r.products, int64(len(r.products)), nil
}

func floatPtr(v float64) *float64 { return &v }

func albumInput(name string) ports.CreateProductInput {
	return ports.CreateProductInput{
		Artist:      " Nina Simone ",
		AlbumName:   name,
		Description: "Description of " + name,
		Genre:       []string{" soul ", "jazz"},
		Price:       floatPtr(24.5),
	}
}

func TestProductService_Create_Success(t *testing.T) {
	repo := &stubProductRepo{}
	svc := NewProductService(repo, zerolog.Nop())

	p, err := svc.CreateProduct(context.Background(), albumInput("Pastel Blues"))
	if err != nil {
		t.Fatalf("CreateProduct returned error: %v", err)
	}
	if p.ID == "" {
		t.Fatalf("expected ID")
	}
	if p.Artist != "Nina Simone" {
		t.Fatalf("expected trimmed artist, got %q", p.Artist)
	}
	if p.Genre[0] != "soul" {
		t.Fatalf("expected trimmed genre, got %q", p.Genre[0])
	}
	if p.Stock != 0 {
		t.Fatalf("expected stock to default to 0, got %d", p.Stock)
	}
	if p.Details == nil {
		t.Fatalf("expected empty details slice, got nil")
	}
	if p.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt to be set")
	}
}

func TestProductService_Create_GenreLimit(t *testing.T) {
	repo := &stubProductRepo{}
	svc := NewProductService(repo, zerolog.Nop())

	in := albumInput("Exactly Five")
	in.Genre = []string{"a", "b", "c", "d", "e"}
	if _, err := svc.CreateProduct(context.Background(), in); err != nil {
		t.Fatalf("expected 5 genres to be accepted, got %v", err)
	}

	in = albumInput("Too Many")
	in.Genre = []string{"a", "b", "c", "d", "e", "f"}
	_, err := svc.CreateProduct(context.Background(), in)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if !strings.Contains(err.Error(), "5 genres only allowed.") {
		t.Fatalf("unexpected message: %v", err)
	}
	if len(repo.products) != 1 {
		t.Fatalf("expected only the valid product to be stored, got %d", len(repo.products))
	}
}

func TestProductService_Create_TrimsBeforeValidating(t *testing.T) {
	svc := NewProductService(&stubProductRepo{}, zerolog.Nop())

	in := albumInput("   ")
	if _, err := svc.CreateProduct(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected blank album name to be rejected, got %v", err)
	}
}

func TestProductService_Create_Duplicate(t *testing.T) {
	svc := NewProductService(&stubProductRepo{}, zerolog.Nop())

	if _, err := svc.CreateProduct(context.Background(), albumInput("Wild Is the Wind")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreateProduct(context.Background(), albumInput("Wild Is the Wind")); !errors.Is(err, domain.ErrProductExists) {
		t.Fatalf("expected ErrProductExists, got %v", err)
	}
}

func TestProductService_Get_NotFound(t *testing.T) {
	svc := NewProductService(&stubProductRepo{}, zerolog.Nop())
	if _, err := svc.GetProduct(context.Background(), "nope"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_List_Pagination(t *testing.T) {
	tests := []struct {
		name      string
		in        ports.ListProductsInput
		wantPage  int
		wantLimit int
	}{
		{"defaults", ports.ListProductsInput{}, 1, defaultPageSize},
		{"explicit", ports.ListProductsInput{Page: 3, Limit: 5}, 3, 5},
		{"capped", ports.ListProductsInput{Page: 1, Limit: 1000}, 1, maxPageSize},
		{"negative", ports.ListProductsInput{Page: -2, Limit: -1}, 1, defaultPageSize},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubProductRepo{}
			svc := NewProductService(repo, zerolog.Nop())

			res, err := svc.ListProducts(context.Background(), tc.in)
			if err != nil {
				t.Fatalf("ListProducts returned error: %v", err)
			}
			if repo.lastFilter.Page != tc.wantPage || repo.lastFilter.Limit != tc.wantLimit {
				t.Fatalf("unexpected filter: %+v", repo.lastFilter)
			}
			if res.Page != tc.wantPage || res.Limit != tc.wantLimit {
				t.Fatalf("unexpected result paging: %+v", res)
			}
		})
	}
}

func TestProductService_List_TotalPages(t *testing.T) {
	repo := &stubProductRepo{}
	svc := NewProductService(repo, zerolog.Nop())
	for i := 0; i < 7; i++ {
		if _, err := svc.CreateProduct(context.Background(), albumInput(fmt.Sprintf("Album %d", i))); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	res, err := svc.ListProducts(context.Background(), ports.ListProductsInput{Limit: 3, Genre: " jazz "})
	if err != nil {
		t.Fatalf("ListProducts returned error: %v", err)
	}
	if res.Total != 7 || res.TotalPages != 3 {
		t.Fatalf("expected 7 items over 3 pages, got total=%d pages=%d", res.Total, res.TotalPages)
	}
	if repo.lastFilter.Genre != "jazz" {
		t.Fatalf("expected trimmed genre filter, got %q", repo.lastFilter.Genre)
	}
}

func TestProductService_List_Error(t *testing.T) {
	svc := NewProductService(&stubProductRepo{err: errors.New("boom")}, zerolog.Nop())
	if _, err := svc.ListProducts(context.Background(), ports.ListProductsInput{}); err == nil {
		t.Fatalf("expected error")
	}
}
