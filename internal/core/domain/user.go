package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrDuplicateEmail = errors.New("email already registered")
var ErrUserNotFound = errors.New("user not found")

// User models a storefront account. Email is the equality key and is compared
// byte-for-byte: existing stores were written without case normalisation, so
// lookups must not normalise either.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

// IsAdmin reports whether the user may mutate the product catalog.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
