package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/ohJeez/e-commerece-website/internal/client/store"
	"github.com/ohJeez/e-commerece-website/internal/core/domain"
)

// CartView renders the authenticated user's cart priced against the current
// catalog. Lines whose product has disappeared are skipped silently: a
// dangling reference is an omission, not an error.
type CartView struct {
	store  store.Store
	notify *Notifier
	out    io.Writer
}

func NewCartView(s store.Store, notify *Notifier, out io.Writer) *CartView {
	return &CartView{store: s, notify: notify, out: out}
}

// Refresh renders the cart and its total.
func (v *CartView) Refresh(ctx context.Context) error {
	items, err := v.store.CartItems(ctx)
	if err != nil {
		v.notify.Show(errorText(err), Error)
		return err
	}
	products, err := v.store.Products(ctx)
	if err != nil {
		v.notify.Show(errorText(err), Error)
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(v.out, "Cart is empty.")
		return nil
	}

	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	for _, it := range items {
		p, ok := byID[it.ProductID]
		if !ok {
			continue
		}
		fmt.Fprintf(v.out, "%s  %-24s $%.2f x %d = $%.2f\n",
			it.ProductID, p.Name, p.Price, it.Qty, p.Price*float64(it.Qty))
	}
	fmt.Fprintf(v.out, "Total: $%.2f\n", domain.CartTotal(items, products))
	return nil
}

// SetQuantity is the "edit quantity" action: the submitted value replaces
// the line's quantity.
func (v *CartView) SetQuantity(ctx context.Context, productID string, qty int) error {
	if qty <= 0 {
		v.notify.Show("Quantity must be at least 1", Error)
		return domain.ErrValidation
	}

	if err := v.store.SetCartQuantity(ctx, productID, qty); err != nil {
		v.notify.Show(errorText(err), Error)
		return err
	}

	v.notify.Show("Cart updated", Success)
	return v.Refresh(ctx)
}

func (v *CartView) Remove(ctx context.Context, productID string) error {
	if err := v.store.RemoveCartItem(ctx, productID); err != nil {
		v.notify.Show(errorText(err), Error)
		return err
	}

	v.notify.Show("Item removed", Success)
	return v.Refresh(ctx)
}
