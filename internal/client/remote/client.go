// Package remote is the authenticated JSON-over-HTTP wrapper around the
// storefront API. It owns no state beyond the base URL: the bearer token is
// read from the injected TokenStore on every request.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ohJeez/e-commerece-website/internal/core/domain"
)

// TokenStore holds the opaque bearer credential between page loads.
type TokenStore interface {
	Token() string
	SetToken(token string)
	ClearToken()
}

// APIError is a non-2xx response with its decoded message field.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client issues requests against the storefront API.
type Client struct {
	base   string
	http   *http.Client
	tokens TokenStore
	log    zerolog.Logger
}

func NewClient(apiBase string, tokens TokenStore, log zerolog.Logger) *Client {
	return &Client{
		base:   strings.TrimSuffix(apiBase, "/"),
		http:   &http.Client{Timeout: 30 * time.Second},
		tokens: tokens,
		log:    log,
	}
}

// do runs one request. Network faults wrap domain.ErrTransport; non-2xx
// responses become *APIError with the server's message field (or a generic
// text when the body is not decodable). A 204 yields no decoded body.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := &APIError{Status: res.StatusCode, Message: "API error"}
		var envelope struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(res.Body).Decode(&envelope); err == nil && envelope.Message != "" {
			apiErr.Message = envelope.Message
		}
		return apiErr
	}

	if res.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrTransport, err)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, body, contentType, out)
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Register creates an account. The service decides the role.
func (c *Client) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	payload := map[string]string{"name": name, "email": email, "password": password}
	var res authResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", payload, &res); err != nil {
		return nil, err
	}
	return res.User, nil
}

// Login exchanges credentials for a bearer token and the user record. The
// token is not persisted here; the caller owns that decision.
func (c *Client) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	payload := map[string]string{"email": email, "password": password}
	var res authResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", payload, &res); err != nil {
		return "", nil, err
	}
	return res.Token, res.User, nil
}

// Me round-trips the stored token through the "who am I" endpoint.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.doJSON(ctx, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct adds a catalog entry. A non-empty imagePath switches the
// request to multipart and attaches the file as the "image" part.
func (c *Client) CreateProduct(ctx context.Context, fields domain.ProductFields, imagePath string) (*domain.Product, error) {
	var product domain.Product
	if imagePath == "" {
		if err := c.doJSON(ctx, http.MethodPost, "/api/products", fields, &product); err != nil {
			return nil, err
		}
		return &product, nil
	}
	if err := c.doMultipart(ctx, http.MethodPost, "/api/products", fields, imagePath, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, fields domain.ProductFields, imagePath string) (*domain.Product, error) {
	path := "/api/products/" + id
	var product domain.Product
	if imagePath == "" {
		if err := c.doJSON(ctx, http.MethodPut, path, fields, &product); err != nil {
			return nil, err
		}
		return &product, nil
	}
	if err := c.doMultipart(ctx, http.MethodPut, path, fields, imagePath, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/products/"+id, nil, nil)
}

func (c *Client) Cart(ctx context.Context) ([]domain.CartItem, error) {
	var items []domain.CartItem
	if err := c.doJSON(ctx, http.MethodGet, "/api/cart", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpsertCart sets the quantity for one line. Overwrite semantics: callers
// wanting increments must compute the sum first.
func (c *Client) UpsertCart(ctx context.Context, productID string, qty int) ([]domain.CartItem, error) {
	payload := map[string]any{"productId": productID, "qty": qty}
	var items []domain.CartItem
	if err := c.doJSON(ctx, http.MethodPost, "/api/cart", payload, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) RemoveCartItem(ctx context.Context, productID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/cart/"+productID, nil, nil)
}

// doMultipart sends the product fields plus one attached image file.
func (c *Client) doMultipart(ctx context.Context, method, path string, fields domain.ProductFields, imagePath string, out any) error {
	file, err := os.Open(imagePath)
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("name", fields.Name)
	_ = w.WriteField("price", strconv.FormatFloat(fields.Price, 'f', -1, 64))
	_ = w.WriteField("description", fields.Description)
	if fields.ImageURL != "" {
		_ = w.WriteField("imageUrl", fields.ImageURL)
	}

	part, err := w.CreateFormFile("image", filepath.Base(imagePath))
	if err != nil {
		return fmt.Errorf("build multipart: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("read image: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("build multipart: %w", err)
	}

	return c.do(ctx, method, path, &buf, w.FormDataContentType(), out)
}
