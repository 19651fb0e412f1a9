package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/vinylshop/record-store/internal/core/domain"
	"github.com/vinylshop/record-store/internal/core/ports"
	"github.com/vinylshop/record-store/internal/pkg/validation"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateProduct normalizes and validates the input, then inserts a new catalog entry.
func (s *ProductService) CreateProduct(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	in.Artist = strings.TrimSpace(in.Artist)
	in.AlbumName = strings.TrimSpace(in.AlbumName)
	in.Description = strings.TrimSpace(in.Description)
	in.Genre = trimAll(in.Genre)

	if err := validation.Check(in).Err(); err != nil {
		return nil, err
	}

	stock := 0
	if in.Stock != nil {
		stock = *in.Stock
	}

	now := s.now()
	product := &domain.Product{
		Artist:      in.Artist,
		AlbumName:   in.AlbumName,
		Description: in.Description,
		Details:     nonNil(in.Details),
		TrackList:   in.TrackList,
		Genre:       nonNil(in.Genre),
		Price:       *in.Price,
		Stock:       stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		if !errors.Is(err, domain.ErrProductExists) {
			s.logger.Error().Err(err).Msg("failed to create product")
		}
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("album", created.AlbumName).Msg("product created")
	return created, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// ListProducts returns a page of the catalog. Page defaults to 1 and limit to
// defaultPageSize, capped at maxPageSize.
func (s *ProductService) ListProducts(ctx context.Context, in ports.ListProductsInput) (*ports.ListProductsResult, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	items, total, err := s.repo.List(ctx, ports.ListProductsFilter{
		Genre:  strings.TrimSpace(in.Genre),
		Artist: strings.TrimSpace(in.Artist),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListProductsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func trimAll(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	return out
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
