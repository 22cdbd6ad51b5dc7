package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/ohJeez/e-commerece-website/internal/client/store"
	"github.com/ohJeez/e-commerece-website/internal/core/domain"
)

// ShopView renders the product catalog and wires the shopper actions. After
// every mutation the whole view re-renders.
type ShopView struct {
	store  store.Store
	notify *Notifier
	out    io.Writer
	user   *domain.User
}

func NewShopView(s store.Store, notify *Notifier, out io.Writer, user *domain.User) *ShopView {
	return &ShopView{store: s, notify: notify, out: out, user: user}
}

// Refresh renders the current catalog.
func (v *ShopView) Refresh(ctx context.Context) error {
	products, err := v.store.Products(ctx)
	if err != nil {
		v.notify.Show(errorText(err), Error)
		return err
	}

	if len(products) == 0 {
		fmt.Fprintln(v.out, "No products yet.")
		return nil
	}
	for _, p := range products {
		fmt.Fprintf(v.out, "%s  %-24s $%.2f\n    %s\n", p.ID, p.Name, p.Price, p.Description)
	}
	return nil
}

// AddToCart is the catalog "add" action: one unit, accumulating.
func (v *ShopView) AddToCart(ctx context.Context, productID string) error {
	if err := v.store.AddToCart(ctx, productID, 1); err != nil {
		v.notify.Show(errorText(err), Error)
		return err
	}

	v.notify.Show("Added to cart", Success)
	return v.Refresh(ctx)
}

// DeleteProduct removes a catalog entry. The admin check here only hides the
// affordance; the service enforces the real boundary in remote mode.
func (v *ShopView) DeleteProduct(ctx context.Context, productID string) error {
	if !v.user.IsAdmin() {
		v.notify.Show("Only admins can delete products.", Error)
		return domain.ErrValidation
	}

	if err := v.store.DeleteProduct(ctx, productID); err != nil {
		v.notify.Show(errorText(err), Error)
		return err
	}

	v.notify.Show("Product removed", Success)
	return v.Refresh(ctx)
}
