package ports

import (
	"context"

	"github.com/ohJeez/e-commerece-website/internal/core/domain"
)

// ProductRepository defines the persistence surface for the catalog.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}
