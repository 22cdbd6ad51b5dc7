package store

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/ohJeez/e-commerece-website/internal/client/remote"
	"github.com/ohJeez/e-commerece-website/internal/client/session"
	"github.com/ohJeez/e-commerece-website/internal/core/domain"
)

// RemoteStore implements the facade by delegating to the storefront API.
// Authorization is the service's job; this side only shapes requests and
// maps failures onto the shared error taxonomy.
type RemoteStore struct {
	api     *remote.Client
	tokens  remote.TokenStore
	session *session.Session
	log     zerolog.Logger
}

func (s *RemoteStore) HasSession() bool {
	return s.tokens.Token() != ""
}

func (s *RemoteStore) Register(ctx context.Context, name, email, password string) error {
	_, err := s.api.Register(ctx, name, email, password)
	return mapAPIError(err, map[int]error{
		http.StatusConflict:   domain.ErrDuplicateEmail,
		http.StatusBadRequest: domain.ErrValidation,
	})
}

func (s *RemoteStore) Login(ctx context.Context, email, password string) (*domain.User, error) {
	token, user, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, mapAPIError(err, map[int]error{
			http.StatusUnauthorized: domain.ErrInvalidCredentials,
		})
	}

	s.tokens.SetToken(token)
	s.session.SetUser(user)
	return user, nil
}

func (s *RemoteStore) Logout(ctx context.Context) {
	s.tokens.ClearToken()
	s.session.Clear()
}

// CurrentUser round-trips the stored token through the "who am I" endpoint.
// Any failure, an expired token included, drops the token and counts as
// "no user": session resolution either succeeds or the session is over.
func (s *RemoteStore) CurrentUser(ctx context.Context) (*domain.User, error) {
	if u := s.session.User(); u != nil {
		return u, nil
	}
	if s.tokens.Token() == "" {
		return nil, nil
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		s.log.Info().Err(err).Msg("session resolution failed, clearing token")
		s.tokens.ClearToken()
		return nil, nil
	}

	s.session.SetUser(user)
	return user, nil
}

func (s *RemoteStore) Products(ctx context.Context) ([]domain.Product, error) {
	products, err := s.api.Products(ctx)
	if err != nil {
		return nil, mapAPIError(err, nil)
	}
	return products, nil
}

func (s *RemoteStore) CreateProduct(ctx context.Context, fields domain.ProductFields, imagePath string) error {
	_, err := s.api.CreateProduct(ctx, fields, imagePath)
	return mapAPIError(err, map[int]error{
		http.StatusBadRequest: domain.ErrValidation,
	})
}

func (s *RemoteStore) UpdateProduct(ctx context.Context, id string, fields domain.ProductFields, imagePath string) error {
	_, err := s.api.UpdateProduct(ctx, id, fields, imagePath)
	return mapAPIError(err, map[int]error{
		http.StatusNotFound: domain.ErrProductNotFound,
	})
}

func (s *RemoteStore) DeleteProduct(ctx context.Context, id string) error {
	return mapAPIError(s.api.DeleteProduct(ctx, id), map[int]error{
		http.StatusNotFound: domain.ErrProductNotFound,
	})
}

func (s *RemoteStore) CartItems(ctx context.Context) ([]domain.CartItem, error) {
	items, err := s.api.Cart(ctx)
	if err != nil {
		return nil, mapAPIError(err, nil)
	}
	return items, nil
}

// AddToCart keeps the catalog "add" path's increment semantics on top of the
// service's overwrite-only upsert: it reads the current quantity and submits
// the sum. The wire contract stays overwrite-only.
func (s *RemoteStore) AddToCart(ctx context.Context, productID string, qty int) error {
	items, err := s.api.Cart(ctx)
	if err != nil {
		return mapAPIError(err, nil)
	}

	total := qty
	for _, it := range items {
		if it.ProductID == productID {
			total += it.Qty
			break
		}
	}

	_, err = s.api.UpsertCart(ctx, productID, total)
	return mapAPIError(err, map[int]error{
		http.StatusBadRequest: domain.ErrValidation,
	})
}

func (s *RemoteStore) SetCartQuantity(ctx context.Context, productID string, qty int) error {
	_, err := s.api.UpsertCart(ctx, productID, qty)
	return mapAPIError(err, map[int]error{
		http.StatusBadRequest: domain.ErrValidation,
	})
}

// RemoveCartItem tolerates a 404: removing what is not there is a no-op for
// the caller either way.
func (s *RemoteStore) RemoveCartItem(ctx context.Context, productID string) error {
	err := s.api.RemoveCartItem(ctx, productID)
	var apiErr *remote.APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return nil
	}
	return mapAPIError(err, nil)
}

// mapAPIError converts transport-layer failures into the facade's typed
// errors. Statuses without an explicit mapping surface as ErrTransport with
// the server's message attached.
func mapAPIError(err error, byStatus map[int]error) error {
	if err == nil {
		return nil
	}

	var apiErr *remote.APIError
	if errors.As(err, &apiErr) {
		if mapped, ok := byStatus[apiErr.Status]; ok {
			return mapped
		}
		return fmt.Errorf("%w: %s", domain.ErrTransport, apiErr.Message)
	}
	return err
}
