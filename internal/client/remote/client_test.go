package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ohJeez/e-commerece-website/internal/core/domain"
)

type memTokenStore struct {
	token string
}

func (m *memTokenStore) Token() string         { return m.token }
func (m *memTokenStore) SetToken(token string) { m.token = token }
func (m *memTokenStore) ClearToken()           { m.token = "" }

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(domain.User{ID: "u1"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &memTokenStore{token: "tok123"}, zerolog.Nop())
	if _, err := c.Me(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
}

func TestClientOmitsHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]domain.Product{})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &memTokenStore{}, zerolog.Nop())
	if _, err := c.Products(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected no auth header, got %q", gotAuth)
	}
}

func TestClientDecodesErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"email already registered"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &memTokenStore{}, zerolog.Nop())
	_, err := c.Register(context.Background(), "Alice", "alice@mail.com", "secret99")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Status != http.StatusConflict || apiErr.Message != "email already registered" {
		t.Errorf("unexpected error fields: %+v", apiErr)
	}
}

func TestClientGenericMessageForUndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &memTokenStore{}, zerolog.Nop())
	_, err := c.Products(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Message != "API error" {
		t.Errorf("expected generic message, got %q", apiErr.Message)
	}
}

func TestClientNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &memTokenStore{token: "tok"}, zerolog.Nop())
	if err := c.DeleteProduct(context.Background(), "p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClientWrapsNetworkFaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, &memTokenStore{}, zerolog.Nop())
	_, err := c.Products(context.Background())
	if !errors.Is(err, domain.ErrTransport) {
		t.Errorf("expected ErrTransport, got %v", err)
	}
}

func TestClientLoginReturnsTokenAndUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		if payload["email"] != "alice@mail.com" {
			t.Errorf("unexpected email %q", payload["email"])
		}
		json.NewEncoder(w).Encode(map[string]any{
			"token": "tok123",
			"user":  domain.User{ID: "u1", Email: "alice@mail.com"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &memTokenStore{}, zerolog.Nop())
	token, user, err := c.Login(context.Background(), "alice@mail.com", "secret99")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "tok123" || user == nil || user.ID != "u1" {
		t.Errorf("unexpected result: token=%q user=%+v", token, user)
	}
}
