package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"capsule/internal/delivery/http/middleware"
	"capsule/internal/delivery/http/response"
	"capsule/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{uc: uc, logger: logger}
}

// Get returns the caller's cart.
func (h *CartHandler) Get(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Missing authentication")
	}

	cart, err := h.uc.GetCart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

// AddItem puts a product variant in the caller's cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Missing authentication")
	}

	var input usecase.AddToCartInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	cart, err := h.uc.AddToCart(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item added to cart")
}

// UpdateItem sets a cart line's quantity; zero removes the line.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Missing authentication")
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart item id")
	}

	var input struct {
		Quantity *int `json:"quantity"`
	}
	if err := c.Bind(&input); err != nil || input.Quantity == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	cart, err := h.uc.SetItemQuantity(c.Request().Context(), userID, itemID, *input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart updated")
}

// RemoveItem deletes one line from the caller's cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Missing authentication")
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart item id")
	}

	cart, err := h.uc.RemoveItem(c.Request().Context(), userID, itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item removed from cart")
}

// Clear empties the caller's cart.
func (h *CartHandler) Clear(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Missing authentication")
	}

	if err := h.uc.ClearCart(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}

// parsePositiveInt is shared by query-param paging handlers.
func parsePositiveInt(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}

	return n
}
