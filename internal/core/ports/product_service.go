package ports

import (
	"context"

	"github.com/vinylshop/record-store/internal/core/domain"
)

// CreateProductInput carries all data needed to add an album to the catalog.
type CreateProductInput struct {
	Artist      string   `json:"artist"      validate:"required,min=1"`
	AlbumName   string   `json:"albumName"   validate:"required,min=1"`
	Description string   `json:"description" validate:"required,min=1,max=1500"`
	Details     []string `json:"details"     validate:"dive,max=32"`
	TrackList   string   `json:"trackList"`
	Genre       []string `json:"genre"       validate:"genres,dive,max=32"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	Stock       *int     `json:"stock"       validate:"omitnil,gte=0"`
}

// ListProductsInput carries the parameters for the catalog listing.
type ListProductsInput struct {
	Genre  string
	Artist string
	Page   int
	Limit  int
}

// ListProductsResult is returned by ListProducts.
type ListProductsResult struct {
	Items      []*domain.Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ProductService defines the catalog use cases.
type ProductService interface {
	CreateProduct(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProducts(ctx context.Context, in ListProductsInput) (*ListProductsResult, error)
}
