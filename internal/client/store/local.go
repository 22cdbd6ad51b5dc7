package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ohJeez/e-commerece-website/internal/client/hash"
	"github.com/ohJeez/e-commerece-website/internal/client/kvstore"
	"github.com/ohJeez/e-commerece-website/internal/client/session"
	"github.com/ohJeez/e-commerece-website/internal/core/domain"
)

// localUser is the on-device account record. Unlike the wire form it carries
// the password digest; local mode has nowhere else to keep it.
type localUser struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	Role         string `json:"role"`
}

func (u localUser) toDomain() *domain.User {
	return &domain.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
	}
}

// LocalStore implements the facade against the on-device kvstore. Every
// read-modify-write completes within one synchronous call; nothing else
// touches the store in between.
type LocalStore struct {
	kv      *kvstore.Store
	session *session.Session
	log     zerolog.Logger
}

func (s *LocalStore) HasSession() bool {
	return kvstore.Get(s.kv, keyLoggedInUser, "") != ""
}

// Register appends a customer account. Email uniqueness is byte-for-byte.
func (s *LocalStore) Register(ctx context.Context, name, email, password string) error {
	users := kvstore.Get(s.kv, keyUsers, []localUser{})
	for _, u := range users {
		if u.Email == email {
			return domain.ErrDuplicateEmail
		}
	}

	users = append(users, localUser{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash.Digest(password),
		Role:         domain.RoleCustomer,
	})
	kvstore.Set(s.kv, keyUsers, users)
	return nil
}

// Login matches email and digest against the stored users, then persists the
// logged-in marker for later session resolution.
func (s *LocalStore) Login(ctx context.Context, email, password string) (*domain.User, error) {
	users := kvstore.Get(s.kv, keyUsers, []localUser{})
	for _, u := range users {
		if u.Email == email && hash.Matches(password, u.PasswordHash) {
			kvstore.Set(s.kv, keyLoggedInUser, email)
			user := u.toDomain()
			s.session.SetUser(user)
			return user, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

func (s *LocalStore) Logout(ctx context.Context) {
	s.kv.Remove(keyLoggedInUser)
	s.session.Clear()
}

// CurrentUser resolves the marker against the users collection. A marker
// with no matching user is stale: it gets cleared and the session counts
// as logged out.
func (s *LocalStore) CurrentUser(ctx context.Context) (*domain.User, error) {
	if u := s.session.User(); u != nil {
		return u, nil
	}

	email := kvstore.Get(s.kv, keyLoggedInUser, "")
	if email == "" {
		return nil, nil
	}

	users := kvstore.Get(s.kv, keyUsers, []localUser{})
	for _, u := range users {
		if u.Email == email {
			user := u.toDomain()
			s.session.SetUser(user)
			return user, nil
		}
	}

	s.log.Warn().Str("email", email).Msg("stale login marker, clearing")
	s.kv.Remove(keyLoggedInUser)
	return nil, nil
}

func (s *LocalStore) Products(ctx context.Context) ([]domain.Product, error) {
	return kvstore.Get(s.kv, keyProducts, []domain.Product{}), nil
}

func (s *LocalStore) CreateProduct(ctx context.Context, fields domain.ProductFields, imagePath string) error {
	products := kvstore.Get(s.kv, keyProducts, []domain.Product{})
	products = append(products, domain.Product{
		ID:          uuid.NewString(),
		Name:        fields.Name,
		Price:       fields.Price,
		Description: fields.Description,
		ImageURL:    fields.ImageURL,
	})
	kvstore.Set(s.kv, keyProducts, products)
	return nil
}

// UpdateProduct rewrites the matching entry. An absent id is a silent no-op:
// local mode has no not-found signalling.
func (s *LocalStore) UpdateProduct(ctx context.Context, id string, fields domain.ProductFields, imagePath string) error {
	products := kvstore.Get(s.kv, keyProducts, []domain.Product{})
	for i := range products {
		if products[i].ID == id {
			products[i].Name = fields.Name
			products[i].Price = fields.Price
			products[i].Description = fields.Description
			products[i].ImageURL = fields.ImageURL
			kvstore.Set(s.kv, keyProducts, products)
			return nil
		}
	}
	return nil
}

func (s *LocalStore) DeleteProduct(ctx context.Context, id string) error {
	products := kvstore.Get(s.kv, keyProducts, []domain.Product{})
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	kvstore.Set(s.kv, keyProducts, kept)
	return nil
}

func (s *LocalStore) CartItems(ctx context.Context) ([]domain.CartItem, error) {
	key, err := s.cartKey(ctx)
	if err != nil {
		return nil, err
	}
	return kvstore.Get(s.kv, key, []domain.CartItem{}), nil
}

// AddToCart increments the existing line or appends a new one. This is the
// catalog "add" path, and local mode is where the increment actually lives.
func (s *LocalStore) AddToCart(ctx context.Context, productID string, qty int) error {
	key, err := s.cartKey(ctx)
	if err != nil {
		return err
	}

	items := kvstore.Get(s.kv, key, []domain.CartItem{})
	found := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Qty += qty
			found = true
			break
		}
	}
	if !found {
		items = append(items, domain.CartItem{ProductID: productID, Qty: qty})
	}
	kvstore.Set(s.kv, key, items)
	return nil
}

// SetCartQuantity overwrites an existing line's quantity. Editing a line
// that is not there is a no-op, never an insert.
func (s *LocalStore) SetCartQuantity(ctx context.Context, productID string, qty int) error {
	key, err := s.cartKey(ctx)
	if err != nil {
		return err
	}

	items := kvstore.Get(s.kv, key, []domain.CartItem{})
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Qty = qty
			kvstore.Set(s.kv, key, items)
			return nil
		}
	}
	return nil
}

func (s *LocalStore) RemoveCartItem(ctx context.Context, productID string) error {
	key, err := s.cartKey(ctx)
	if err != nil {
		return err
	}

	items := kvstore.Get(s.kv, key, []domain.CartItem{})
	kept := items[:0]
	for _, it := range items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	kvstore.Set(s.kv, key, kept)
	return nil
}

// cartKey derives the per-user cart key from the authenticated email.
func (s *LocalStore) cartKey(ctx context.Context) (string, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrInvalidCredentials
	}
	return cartKeyPrefix + user.Email, nil
}
