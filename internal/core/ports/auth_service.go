package ports

import (
	"context"

	"github.com/ohJeez/e-commerece-website/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// UserByID backs the "who am I" lookup once the JWT middleware has
	// resolved the subject claim.
	UserByID(ctx context.Context, id string) (*domain.User, error)
}
