// Package guard gates protected views: either the caller gets a resolved
// user, or the view must not render and the user is sent to login.
package guard

import (
	"context"
	"errors"

	"github.com/ohJeez/e-commerece-website/internal/client/store"
	"github.com/ohJeez/e-commerece-website/internal/core/domain"
)

// ErrLoginRequired is the "navigate to login" signal. A view receiving it
// must not make any further data access calls.
var ErrLoginRequired = errors.New("login required")

type Guard struct {
	store store.Store
}

func New(s store.Store) *Guard {
	return &Guard{store: s}
}

// Resolve returns the authenticated user or ErrLoginRequired. When no
// credential is held at all it short-circuits without touching the data
// layer; a held-but-stale credential is cleared by the store during
// resolution and also ends in ErrLoginRequired.
func (g *Guard) Resolve(ctx context.Context) (*domain.User, error) {
	if !g.store.HasSession() {
		return nil, ErrLoginRequired
	}

	user, err := g.store.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrLoginRequired
	}
	return user, nil
}
