package handler

import "github.com/ohJeez/e-commerece-website/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type registerRequest struct {
	Name     string `json:"name"     form:"name"     validate:"required"`
	Email    string `json:"email"    form:"email"    validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

// --- Products ---

// productRequest carries catalog fields for create and update. Form tags let
// the same struct bind multipart submissions carrying an image part.
type productRequest struct {
	Name        string  `json:"name"        form:"name"`
	Price       float64 `json:"price"       form:"price"`
	Description string  `json:"description" form:"description"`
	ImageURL    string  `json:"imageUrl"    form:"imageUrl"`
}

func (r productRequest) fields() domain.ProductFields {
	return domain.ProductFields{
		Name:        r.Name,
		Price:       r.Price,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
}

// --- Cart ---

type cartUpsertRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Qty       int    `json:"qty"       validate:"required,gt=0"`
}
