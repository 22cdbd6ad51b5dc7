package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ohJeez/e-commerece-website/internal/api/metrics"
	"github.com/ohJeez/e-commerece-website/internal/core/ports"
)

type CartHandler struct {
	cart ports.CartService
}

func NewCartHandler(cart ports.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

// Get returns the caller's cart lines.
//
// @Summary      Get cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.CartItem
// @Router       /api/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	items, err := h.cart.Items(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Upsert sets the quantity for one product line and returns the full cart.
// The quantity is overwritten, never added; increment semantics belong to
// the client.
//
// @Summary      Upsert cart item
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      cartUpsertRequest  true  "Line to set"
// @Success      200   {array}   domain.CartItem
// @Failure      400   {object}  errorResponse
// @Router       /api/cart [post]
func (h *CartHandler) Upsert(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req cartUpsertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items, err := h.cart.Upsert(c.Request().Context(), userID, req.ProductID, req.Qty)
	if err != nil {
		return err
	}

	metrics.CartUpdatesTotal.WithLabelValues("upsert").Inc()
	return c.JSON(http.StatusOK, items)
}

// Remove deletes one product line from the caller's cart.
//
// @Summary      Remove cart item
// @Tags         cart
// @Security     BearerAuth
// @Param        productId  path  string  true  "Product id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/cart/{productId} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	if err := h.cart.Remove(c.Request().Context(), userID, c.Param("productId")); err != nil {
		return err
	}

	metrics.CartUpdatesTotal.WithLabelValues("remove").Inc()
	return c.NoContent(http.StatusNoContent)
}

// callerID extracts the user id injected by the Auth middleware; its absence
// means the middleware did not run on this route.
func callerID(c echo.Context) (string, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
