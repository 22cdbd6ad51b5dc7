package store

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ohJeez/e-commerece-website/internal/client/hash"
	"github.com/ohJeez/e-commerece-website/internal/client/kvstore"
	"github.com/ohJeez/e-commerece-website/internal/client/session"
	"github.com/ohJeez/e-commerece-website/internal/core/domain"
)

func newLocalStore(t *testing.T) (*LocalStore, *kvstore.Store) {
	t.Helper()
	kv, err := kvstore.Open(kvstore.Config{InMemory: true}, zerolog.Nop())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })
	return &LocalStore{kv: kv, session: session.New(session.ModeLocal), log: zerolog.Nop()}, kv
}

func loginTestUser(t *testing.T, s *LocalStore) {
	t.Helper()
	if err := s.Register(context.Background(), "Alice", "alice@mail.com", "secret99"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := s.Login(context.Background(), "alice@mail.com", "secret99"); err != nil {
		t.Fatalf("login: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Accounts
// ---------------------------------------------------------------------------

func TestLocalRegisterAndLogin(t *testing.T) {
	s, _ := newLocalStore(t)

	if err := s.Register(context.Background(), "Alice", "alice@mail.com", "secret99"); err != nil {
		t.Fatalf("register: %v", err)
	}

	u, err := s.Login(context.Background(), "alice@mail.com", "secret99")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.Role != domain.RoleCustomer {
		t.Errorf("registered accounts are customers, got %q", u.Role)
	}
	if !s.HasSession() {
		t.Error("expected a session marker after login")
	}
}

func TestLocalRegisterDuplicate(t *testing.T) {
	s, kv := newLocalStore(t)

	if err := s.Register(context.Background(), "Alice", "alice@mail.com", "secret99"); err != nil {
		t.Fatalf("register: %v", err)
	}
	err := s.Register(context.Background(), "Other", "alice@mail.com", "other123")
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}

	users := kvstore.Get(kv, keyUsers, []localUser{})
	if len(users) != 1 {
		t.Errorf("failed registration must not grow the collection, got %d users", len(users))
	}
}

func TestLocalLoginWrongPassword(t *testing.T) {
	s, _ := newLocalStore(t)

	if err := s.Register(context.Background(), "Alice", "alice@mail.com", "secret99"); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := s.Login(context.Background(), "alice@mail.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if s.HasSession() {
		t.Error("failed login must not leave a session marker")
	}
}

func TestLocalCurrentUserFromMarker(t *testing.T) {
	s, kv := newLocalStore(t)
	loginTestUser(t, s)

	// Fresh session over the same kvstore, as after a process restart.
	s2 := &LocalStore{kv: kv, session: session.New(session.ModeLocal), log: zerolog.Nop()}
	u, err := s2.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if u == nil || u.Email != "alice@mail.com" {
		t.Errorf("expected marker resolution, got %+v", u)
	}
}

func TestLocalCurrentUserStaleMarkerCleared(t *testing.T) {
	s, kv := newLocalStore(t)
	kvstore.Set(kv, keyLoggedInUser, "ghost@mail.com")

	u, err := s.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if u != nil {
		t.Errorf("stale marker must resolve as logged out, got %+v", u)
	}
	if got := kvstore.Get(kv, keyLoggedInUser, ""); got != "" {
		t.Errorf("stale marker must be cleared, still %q", got)
	}
}

func TestLocalLogout(t *testing.T) {
	s, _ := newLocalStore(t)
	loginTestUser(t, s)

	s.Logout(context.Background())
	if s.HasSession() {
		t.Error("expected session marker cleared")
	}
	u, err := s.CurrentUser(context.Background())
	if err != nil || u != nil {
		t.Errorf("expected no user after logout, got %+v err=%v", u, err)
	}
}

func TestLocalPasswordStoredAsDigest(t *testing.T) {
	s, kv := newLocalStore(t)
	if err := s.Register(context.Background(), "Alice", "alice@mail.com", "secret99"); err != nil {
		t.Fatalf("register: %v", err)
	}

	users := kvstore.Get(kv, keyUsers, []localUser{})
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	if users[0].PasswordHash != hash.Digest("secret99") {
		t.Errorf("expected SHA-256 digest stored, got %q", users[0].PasswordHash)
	}
}

// ---------------------------------------------------------------------------
// Catalog
// ---------------------------------------------------------------------------

func TestLocalProductLifecycle(t *testing.T) {
	s, _ := newLocalStore(t)
	ctx := context.Background()

	if err := s.CreateProduct(ctx, domain.ProductFields{Name: "Bottle", Price: 10, Description: "Steel"}, ""); err != nil {
		t.Fatalf("create: %v", err)
	}

	products, err := s.Products(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 1 || products[0].ID == "" {
		t.Fatalf("expected one product with an id, got %+v", products)
	}
	id := products[0].ID

	if err := s.UpdateProduct(ctx, id, domain.ProductFields{Name: "Bottle XL", Price: 12, Description: "Steel"}, ""); err != nil {
		t.Fatalf("update: %v", err)
	}
	products, _ = s.Products(ctx)
	if products[0].Name != "Bottle XL" || products[0].Price != 12 {
		t.Errorf("expected updated entry, got %+v", products[0])
	}

	if err := s.DeleteProduct(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	products, _ = s.Products(ctx)
	if len(products) != 0 {
		t.Errorf("expected empty catalog, got %+v", products)
	}
}

func TestLocalUpdateAbsentProductNoOp(t *testing.T) {
	s, _ := newLocalStore(t)

	if err := s.UpdateProduct(context.Background(), "ghost", domain.ProductFields{Name: "X"}, ""); err != nil {
		t.Errorf("updating an absent id is a no-op, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Cart
// ---------------------------------------------------------------------------

func TestLocalAddToCartIncrements(t *testing.T) {
	s, _ := newLocalStore(t)
	loginTestUser(t, s)
	ctx := context.Background()

	if err := s.AddToCart(ctx, "p1", 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.AddToCart(ctx, "p1", 3); err != nil {
		t.Fatalf("add: %v", err)
	}

	items, err := s.CartItems(ctx)
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(items) != 1 || items[0].Qty != 5 {
		t.Errorf("expected one line with qty 5, got %+v", items)
	}
}

func TestLocalSetCartQuantityOverwrites(t *testing.T) {
	s, _ := newLocalStore(t)
	loginTestUser(t, s)
	ctx := context.Background()

	if err := s.AddToCart(ctx, "p1", 4); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.SetCartQuantity(ctx, "p1", 1); err != nil {
		t.Fatalf("set: %v", err)
	}

	items, _ := s.CartItems(ctx)
	if len(items) != 1 || items[0].Qty != 1 {
		t.Errorf("expected quantity replaced with 1, got %+v", items)
	}
}

func TestLocalSetCartQuantityAbsentLineNoOp(t *testing.T) {
	s, _ := newLocalStore(t)
	loginTestUser(t, s)

	if err := s.SetCartQuantity(context.Background(), "ghost", 3); err != nil {
		t.Fatalf("set: %v", err)
	}
	items, _ := s.CartItems(context.Background())
	if len(items) != 0 {
		t.Errorf("editing an absent line must not insert, got %+v", items)
	}
}

func TestLocalRemoveCartItem(t *testing.T) {
	s, _ := newLocalStore(t)
	loginTestUser(t, s)
	ctx := context.Background()

	if err := s.AddToCart(ctx, "p1", 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.RemoveCartItem(ctx, "p1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := s.RemoveCartItem(ctx, "p1"); err != nil {
		t.Fatalf("removing an absent line must be a no-op, got %v", err)
	}

	items, _ := s.CartItems(ctx)
	if len(items) != 0 {
		t.Errorf("expected empty cart, got %+v", items)
	}
}

func TestLocalCartRequiresLogin(t *testing.T) {
	s, _ := newLocalStore(t)

	if _, err := s.CartItems(context.Background()); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials without a login, got %v", err)
	}
	if err := s.AddToCart(context.Background(), "p1", 1); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials without a login, got %v", err)
	}
}

func TestLocalCartsIsolatedPerUser(t *testing.T) {
	s, _ := newLocalStore(t)
	ctx := context.Background()

	if err := s.Register(ctx, "Alice", "alice@mail.com", "secret99"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := s.Register(ctx, "Bob", "bob@mail.com", "secret99"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := s.Login(ctx, "alice@mail.com", "secret99"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := s.AddToCart(ctx, "p1", 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	s.Logout(ctx)

	if _, err := s.Login(ctx, "bob@mail.com", "secret99"); err != nil {
		t.Fatalf("login: %v", err)
	}
	items, err := s.CartItems(ctx)
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("bob must not see alice's cart, got %+v", items)
	}
}

// ---------------------------------------------------------------------------
// Seeding
// ---------------------------------------------------------------------------

func TestSeedLocal(t *testing.T) {
	kv, err := kvstore.Open(kvstore.Config{InMemory: true}, zerolog.Nop())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })

	SeedLocal(kv, zerolog.Nop())

	users := kvstore.Get(kv, keyUsers, []localUser{})
	if len(users) != 1 || users[0].Role != domain.RoleAdmin {
		t.Fatalf("expected one seeded admin, got %+v", users)
	}
	products := kvstore.Get(kv, keyProducts, []domain.Product{})
	if len(products) != 3 {
		t.Fatalf("expected 3 seeded products, got %d", len(products))
	}

	s := &LocalStore{kv: kv, session: session.New(session.ModeLocal), log: zerolog.Nop()}
	if _, err := s.Login(context.Background(), "admin@gmail.com", "admin123"); err != nil {
		t.Errorf("seeded admin credentials must log in, got %v", err)
	}
}

func TestSeedLocalIdempotent(t *testing.T) {
	kv, err := kvstore.Open(kvstore.Config{InMemory: true}, zerolog.Nop())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })

	SeedLocal(kv, zerolog.Nop())
	first := kvstore.Get(kv, keyProducts, []domain.Product{})

	SeedLocal(kv, zerolog.Nop())
	second := kvstore.Get(kv, keyProducts, []domain.Product{})

	if len(first) != len(second) || first[0].ID != second[0].ID {
		t.Errorf("seeding again must not touch existing data")
	}
}
