package ports

import (
	"context"

	"github.com/vinylshop/record-store/internal/core/domain"
)

// ListProductsFilter carries the query parameters for listing the catalog.
type ListProductsFilter struct {
	Genre  string // optional: exact genre tag
	Artist string // optional: case-insensitive partial match
	Page   int    // 1-based
	Limit  int
}

// ProductRepository defines persistence operations for catalog entries.
type ProductRepository interface {
	// Create inserts p. A duplicate album name or description yields domain.ErrProductExists.
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// List returns a page of products matching filter and the total count.
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, int64, error)
}
