package ports

import (
	"context"

	"github.com/ohJeez/e-commerece-website/internal/core/domain"
)

type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, ownerID string, fields domain.ProductFields) (*domain.Product, error)
	Update(ctx context.Context, id string, fields domain.ProductFields) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
