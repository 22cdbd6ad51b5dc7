package domain

import (
	"errors"
	"time"
)

var ErrCartNotFound = errors.New("cart not found")

// ErrTransport wraps any network or service failure surfaced by the remote
// data path. The underlying cause travels with it via fmt.Errorf("%w").
var ErrTransport = errors.New("service unreachable")

// CartItem is one (product, quantity) line. Quantity is always >= 1; a cart
// holds at most one line per product id.
type CartItem struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// Cart is the per-user aggregate persisted by the remote service. The offline
// store keeps bare item lists keyed by email instead and never builds one of
// these.
type Cart struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at,omitempty"`
}

// UpsertItem overwrites the quantity for productID, appending a new line when
// none exists.
func (c *Cart) UpsertItem(productID string, qty int) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Qty = qty
			return
		}
	}
	c.Items = append(c.Items, CartItem{ProductID: productID, Qty: qty})
}

// RemoveItem drops the line for productID. Removing an absent line is a no-op.
func (c *Cart) RemoveItem(productID string) {
	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	c.Items = kept
}

// CartTotal prices a set of cart lines against the catalog. Lines whose
// product no longer exists contribute nothing: a dangling reference renders
// as an omission, never as an error.
func CartTotal(items []CartItem, products []Product) float64 {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	var total float64
	for _, it := range items {
		if p, ok := byID[it.ProductID]; ok {
			total += p.Price * float64(it.Qty)
		}
	}
	return total
}
