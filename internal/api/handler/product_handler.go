package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ohJeez/e-commerece-website/internal/api/metrics"
	"github.com/ohJeez/e-commerece-website/internal/core/domain"
	"github.com/ohJeez/e-commerece-website/internal/core/ports"
)

// ImageStore persists an uploaded image part and returns its public path.
type ImageStore interface {
	SaveImage(fh *multipart.FileHeader) (string, error)
}

type ProductHandler struct {
	products ports.ProductService
	images   ImageStore
}

func NewProductHandler(products ports.ProductService, images ImageStore) *ProductHandler {
	return &ProductHandler{products: products, images: images}
}

// List returns the whole catalog.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.products.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get returns a single product by id.
//
// @Summary      Get product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.products.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create adds a catalog entry (admin only). Accepts JSON, or multipart with
// an optional "image" file part that overrides imageUrl.
//
// @Summary      Create product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product fields"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	fields, err := h.bindFields(c)
	if err != nil {
		return err
	}

	ownerID, _ := c.Get("user_id").(string)
	product, err := h.products.Create(c.Request().Context(), ownerID, fields)
	if err != nil {
		return err
	}

	metrics.ProductMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, product)
}

// Update modifies the supplied fields of an existing product (admin only).
//
// @Summary      Update product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Product id"
// @Param        body  body      productRequest  true  "Fields to change"
// @Success      200   {object}  domain.Product
// @Failure      404   {object}  errorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	fields, err := h.bindFields(c)
	if err != nil {
		return err
	}

	product, err := h.products.Update(c.Request().Context(), c.Param("id"), fields)
	if err != nil {
		return err
	}

	metrics.ProductMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, product)
}

// Delete removes a product (admin only).
//
// @Summary      Delete product
// @Tags         products
// @Security     BearerAuth
// @Param        id  path  string  true  "Product id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.products.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.ProductMutationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// bindFields decodes the request body and, for multipart submissions, stores
// the attached image and substitutes its served path.
func (h *ProductHandler) bindFields(c echo.Context) (domain.ProductFields, error) {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return domain.ProductFields{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	fields := req.fields()

	fh, err := c.FormFile("image")
	if err != nil {
		// No image part: plain JSON submissions land here.
		return fields, nil
	}
	if h.images == nil {
		return domain.ProductFields{}, echo.NewHTTPError(http.StatusBadRequest, "image uploads not supported")
	}

	path, err := h.images.SaveImage(fh)
	if err != nil {
		return domain.ProductFields{}, err
	}
	fields.ImageURL = path
	return fields, nil
}
