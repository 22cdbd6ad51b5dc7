package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ohJeez/e-commerece-website/internal/core/domain"
)

type stubCartService struct {
	itemsFn  func(ctx context.Context, userID string) ([]domain.CartItem, error)
	upsertFn func(ctx context.Context, userID, productID string, qty int) ([]domain.CartItem, error)
	removeFn func(ctx context.Context, userID, productID string) error
}

func (s *stubCartService) Items(ctx context.Context, userID string) ([]domain.CartItem, error) {
	return s.itemsFn(ctx, userID)
}

func (s *stubCartService) Upsert(ctx context.Context, userID, productID string, qty int) ([]domain.CartItem, error) {
	return s.upsertFn(ctx, userID, productID, qty)
}

func (s *stubCartService) Remove(ctx context.Context, userID, productID string) error {
	return s.removeFn(ctx, userID, productID)
}

func TestCartGet(t *testing.T) {
	h := NewCartHandler(&stubCartService{
		itemsFn: func(_ context.Context, userID string) ([]domain.CartItem, error) {
			if userID != "u1" {
				t.Fatalf("unexpected user id %q", userID)
			}
			return []domain.CartItem{{ProductID: "p1", Qty: 2}}, nil
		},
	})

	c, rec := newTestContext(t, http.MethodGet, "/api/cart", "")
	c.Set("user_id", "u1")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var items []domain.CartItem
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 1 || items[0].ProductID != "p1" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestCartGetWithoutClaims(t *testing.T) {
	h := NewCartHandler(&stubCartService{})

	c, _ := newTestContext(t, http.MethodGet, "/api/cart", "")

	err := h.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
}

func TestCartUpsert(t *testing.T) {
	var gotQty int
	h := NewCartHandler(&stubCartService{
		upsertFn: func(_ context.Context, userID, productID string, qty int) ([]domain.CartItem, error) {
			gotQty = qty
			return []domain.CartItem{{ProductID: productID, Qty: qty}}, nil
		},
	})

	c, rec := newTestContext(t, http.MethodPost, "/api/cart", `{"productId":"p1","qty":3}`)
	c.Set("user_id", "u1")

	if err := h.Upsert(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotQty != 3 {
		t.Errorf("expected qty 3 passed through, got %d", gotQty)
	}
}

func TestCartUpsertRejectsZeroQty(t *testing.T) {
	h := NewCartHandler(&stubCartService{
		upsertFn: func(_ context.Context, _, _ string, _ int) ([]domain.CartItem, error) {
			t.Fatalf("service must not be called for invalid payload")
			return nil, nil
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/api/cart", `{"productId":"p1","qty":0}`)
	c.Set("user_id", "u1")

	err := h.Upsert(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero quantity, got %v", err)
	}
}

func TestCartRemove(t *testing.T) {
	h := NewCartHandler(&stubCartService{
		removeFn: func(_ context.Context, userID, productID string) error {
			if productID != "p1" {
				return domain.ErrCartNotFound
			}
			return nil
		},
	})

	c, rec := newTestContext(t, http.MethodDelete, "/api/cart/p1", "")
	c.Set("user_id", "u1")
	c.SetParamNames("productId")
	c.SetParamValues("p1")

	if err := h.Remove(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestCartRemoveWithoutCart(t *testing.T) {
	h := NewCartHandler(&stubCartService{
		removeFn: func(_ context.Context, _, _ string) error {
			return domain.ErrCartNotFound
		},
	})

	c, _ := newTestContext(t, http.MethodDelete, "/api/cart/p1", "")
	c.Set("user_id", "u1")
	c.SetParamNames("productId")
	c.SetParamValues("p1")

	if err := h.Remove(c); !errors.Is(err, domain.ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound to propagate, got %v", err)
	}
}
