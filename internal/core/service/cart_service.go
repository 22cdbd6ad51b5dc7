package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/ohJeez/e-commerece-website/internal/core/domain"
	"github.com/ohJeez/e-commerece-website/internal/core/ports"
)

// CartService implements the per-user cart operations. The wire contract is
// overwrite-only: Upsert always sets the submitted quantity.
type CartService struct {
	repo ports.CartRepository
	log  zerolog.Logger
}

func NewCartService(repo ports.CartRepository, log zerolog.Logger) *CartService {
	return &CartService{repo: repo, log: log}
}

// Items returns the user's cart lines. A user with no cart yet has an empty
// cart, not a missing one.
func (s *CartService) Items(ctx context.Context, userID string) ([]domain.CartItem, error) {
	cart, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			return []domain.CartItem{}, nil
		}
		return nil, err
	}
	return cart.Items, nil
}

func (s *CartService) Upsert(ctx context.Context, userID, productID string, qty int) ([]domain.CartItem, error) {
	if productID == "" || qty <= 0 {
		return nil, domain.ErrValidation
	}

	cart, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrCartNotFound) {
			return nil, err
		}
		cart = &domain.Cart{UserID: userID}
	}

	cart.UpsertItem(productID, qty)
	cart.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart.Items, nil
}

// Remove deletes a line from the user's cart. A user with no cart at all
// gets ErrCartNotFound, not a silent no-op.
func (s *CartService) Remove(ctx context.Context, userID, productID string) error {
	cart, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return err
	}

	cart.RemoveItem(productID)
	cart.UpdatedAt = time.Now().UTC()
	return s.repo.Save(ctx, cart)
}
