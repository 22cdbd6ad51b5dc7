package ports

import (
	"context"

	"github.com/ohJeez/e-commerece-website/internal/core/domain"
)

type CartService interface {
	Items(ctx context.Context, userID string) ([]domain.CartItem, error)
	// Upsert overwrites the quantity for the product line. Increment
	// semantics, when a client wants them, are computed caller-side.
	Upsert(ctx context.Context, userID, productID string, qty int) ([]domain.CartItem, error)
	Remove(ctx context.Context, userID, productID string) error
}
