package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ohJeez/e-commerece-website/internal/core/domain"
	"github.com/ohJeez/e-commerece-website/internal/core/ports"
)

// CatalogCache invalidates and serves the cached product listing (Redis).
type CatalogCache interface {
	Get(ctx context.Context) ([]domain.Product, bool)
	Set(ctx context.Context, products []domain.Product)
	Invalidate(ctx context.Context)
}

// ProductService implements catalog reads and admin-only mutations. The
// authorization boundary itself lives in the RBAC middleware; the service
// trusts its callers.
type ProductService struct {
	repo  ports.ProductRepository
	cache CatalogCache
	log   zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, cache CatalogCache, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, log: log}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		if products, ok := s.cache.Get(ctx); ok {
			return products, nil
		}
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, products)
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, ownerID string, fields domain.ProductFields) (*domain.Product, error) {
	if fields.Name == "" || fields.Description == "" || fields.Price <= 0 {
		return nil, domain.ErrValidation
	}

	product := &domain.Product{
		Name:        fields.Name,
		Price:       fields.Price,
		Description: fields.Description,
		ImageURL:    fields.ImageURL,
		Owner:       ownerID,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return created, nil
}

// Update applies only the fields that were supplied; absent fields keep
// their stored values.
func (s *ProductService) Update(ctx context.Context, id string, fields domain.ProductFields) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if fields.Name != "" {
		product.Name = fields.Name
	}
	if fields.Price > 0 {
		product.Price = fields.Price
	}
	if fields.Description != "" {
		product.Description = fields.Description
	}
	if fields.ImageURL != "" {
		product.ImageURL = fields.ImageURL
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *ProductService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	s.cache.Invalidate(ctx)
}
