package ports

import (
	"context"

	"github.com/ohJeez/e-commerece-website/internal/core/domain"
)

// UserRepository defines the persistence surface for accounts.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
