package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")
var ErrValidation = errors.New("validation failed")

// Product is a catalog entry. Owner is the creating admin's user id and is
// only populated by the remote service; the offline store has no ownership
// concept.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Owner       string    `json:"owner,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// ProductFields carries the mutable attributes for create/update calls.
type ProductFields struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
}
