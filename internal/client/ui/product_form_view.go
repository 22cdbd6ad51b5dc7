package ui

import (
	"context"
	"strings"

	"github.com/ohJeez/e-commerece-website/internal/client/store"
	"github.com/ohJeez/e-commerece-website/internal/core/domain"
)

// ProductFormView drives the add-product and edit-product forms.
type ProductFormView struct {
	store  store.Store
	notify *Notifier
	user   *domain.User
}

func NewProductFormView(s store.Store, notify *Notifier, user *domain.User) *ProductFormView {
	return &ProductFormView{store: s, notify: notify, user: user}
}

// Create validates and submits a new product. imagePath optionally attaches
// a local file; remote mode uploads it, local mode has no file storage and
// relies on imageUrl.
func (v *ProductFormView) Create(ctx context.Context, fields domain.ProductFields, imagePath string) error {
	if err := v.check(fields); err != nil {
		return err
	}

	if err := v.store.CreateProduct(ctx, fields, imagePath); err != nil {
		v.notify.Show(errorText(err), Error)
		return err
	}

	v.notify.Show("Product added", Success)
	return nil
}

// Edit validates and submits changes to an existing product.
func (v *ProductFormView) Edit(ctx context.Context, id string, fields domain.ProductFields, imagePath string) error {
	if err := v.check(fields); err != nil {
		return err
	}

	if err := v.store.UpdateProduct(ctx, id, fields, imagePath); err != nil {
		v.notify.Show(errorText(err), Error)
		return err
	}

	v.notify.Show("Product updated", Success)
	return nil
}

func (v *ProductFormView) check(fields domain.ProductFields) error {
	if !v.user.IsAdmin() {
		v.notify.Show("Only admins can manage products.", Error)
		return domain.ErrValidation
	}
	if strings.TrimSpace(fields.Name) == "" || strings.TrimSpace(fields.Description) == "" {
		v.notify.Show("Fill all required fields", Error)
		return domain.ErrValidation
	}
	if fields.Price <= 0 {
		v.notify.Show("Price must be positive", Error)
		return domain.ErrValidation
	}
	return nil
}
