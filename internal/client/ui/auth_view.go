package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/ohJeez/e-commerece-website/internal/client/store"
	"github.com/ohJeez/e-commerece-website/internal/core/domain"
)

// AuthView drives the login and register forms. These are the only views
// that render without a resolved session.
type AuthView struct {
	store  store.Store
	notify *Notifier
}

func NewAuthView(s store.Store, notify *Notifier) *AuthView {
	return &AuthView{store: s, notify: notify}
}

// Login submits the login form. Validation failures are reported and the
// store is never called.
func (v *AuthView) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		v.notify.Show("Fill all fields", Error)
		return domain.ErrValidation
	}

	if _, err := v.store.Login(ctx, email, password); err != nil {
		v.notify.Show(errorText(err), Error)
		return err
	}

	v.notify.Show("Welcome back!", Success)
	return nil
}

// Register submits the registration form. The email is lower-cased before
// submission; stored emails still compare byte-for-byte downstream.
func (v *AuthView) Register(ctx context.Context, name, email, password, confirm string) error {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)
	confirm = strings.TrimSpace(confirm)

	switch {
	case name == "" || email == "" || password == "" || confirm == "":
		v.notify.Show("Please fill all fields", Error)
		return domain.ErrValidation
	case !validEmail(email):
		v.notify.Show("Invalid email format", Error)
		return domain.ErrValidation
	case len(password) < minPasswordLen:
		v.notify.Show("Password too short", Error)
		return domain.ErrValidation
	case password != confirm:
		v.notify.Show("Passwords do not match", Error)
		return domain.ErrValidation
	}

	if err := v.store.Register(ctx, name, email, password); err != nil {
		v.notify.Show(errorText(err), Error)
		return err
	}

	v.notify.Show("Account created! You can now log in.", Success)
	return nil
}

func (v *AuthView) Logout(ctx context.Context) {
	v.store.Logout(ctx)
	v.notify.Show("Logged out successfully", Success)
}

// errorText picks the user-facing wording for a facade failure.
func errorText(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "Invalid email or password."
	case errors.Is(err, domain.ErrDuplicateEmail):
		return "Email already exists"
	case errors.Is(err, domain.ErrProductNotFound):
		return "Product not found."
	case errors.Is(err, domain.ErrTransport):
		return "Service unavailable, try again."
	default:
		return err.Error()
	}
}
