package ports

import (
	"context"

	"github.com/ohJeez/e-commerece-website/internal/core/domain"
)

// CartRepository stores one cart document per user.
type CartRepository interface {
	FindByUser(ctx context.Context, userID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
}
