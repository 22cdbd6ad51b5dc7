// Package store is the data access facade: one operation surface for users,
// products and the cart, implemented twice, against the on-device kvstore
// and against the remote service. The implementation is selected once at
// startup from the detected mode; callers never branch on it.
package store

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ohJeez/e-commerece-website/internal/client/kvstore"
	"github.com/ohJeez/e-commerece-website/internal/client/remote"
	"github.com/ohJeez/e-commerece-website/internal/client/session"
	"github.com/ohJeez/e-commerece-website/internal/core/domain"
)

// Persisted key layout. Stores written by earlier client builds use the same
// keys, so changing one orphans existing data.
const (
	keyUsers        = "users"
	keyProducts     = "products"
	keyLoggedInUser = "loggedInUser"
	keyAccessToken  = "accessToken"
	cartKeyPrefix   = "cart_"
)

// Store is the mode-independent operation surface.
type Store interface {
	// HasSession cheaply reports whether a session marker (local) or bearer
	// token (remote) is present, without any network or lookup work.
	HasSession() bool

	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Logout(ctx context.Context)
	// CurrentUser resolves the authenticated identity, or (nil, nil) when
	// nobody is logged in or the held credential turned out to be stale.
	CurrentUser(ctx context.Context) (*domain.User, error)

	Products(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, fields domain.ProductFields, imagePath string) error
	UpdateProduct(ctx context.Context, id string, fields domain.ProductFields, imagePath string) error
	DeleteProduct(ctx context.Context, id string) error

	CartItems(ctx context.Context) ([]domain.CartItem, error)
	// AddToCart is the "add from catalog" path: quantities accumulate.
	AddToCart(ctx context.Context, productID string, qty int) error
	// SetCartQuantity is the "edit quantity" path: the quantity is replaced.
	SetCartQuantity(ctx context.Context, productID string, qty int) error
	RemoveCartItem(ctx context.Context, productID string) error
}

// New selects the implementation for the session's fixed mode.
func New(sess *session.Session, kv *kvstore.Store, apiBase string, log zerolog.Logger) Store {
	if sess.Mode() == session.ModeRemote {
		tokens := &kvTokenStore{kv: kv}
		return &RemoteStore{
			api:     remote.NewClient(apiBase, tokens, log),
			tokens:  tokens,
			session: sess,
			log:     log,
		}
	}
	return &LocalStore{kv: kv, session: sess, log: log}
}

// kvTokenStore persists the bearer token in the kvstore so a remote session
// survives process restarts.
type kvTokenStore struct {
	kv *kvstore.Store
}

func (t *kvTokenStore) Token() string {
	return kvstore.Get(t.kv, keyAccessToken, "")
}

func (t *kvTokenStore) SetToken(token string) {
	kvstore.Set(t.kv, keyAccessToken, token)
}

func (t *kvTokenStore) ClearToken() {
	t.kv.Remove(keyAccessToken)
}
