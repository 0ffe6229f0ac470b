package handler

import (
	"log/slog"
	"net/http"

	"capsule/internal/delivery/http/middleware"
	"capsule/internal/delivery/http/response"
	"capsule/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WishlistHandler holds dependencies for wishlist handlers.
type WishlistHandler struct {
	uc     usecase.WishlistUsecase
	logger *slog.Logger
}

// NewWishlistHandler is the constructor for WishlistHandler, injected by Fx.
func NewWishlistHandler(uc usecase.WishlistUsecase, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{uc: uc, logger: logger}
}

// List returns the caller's wishlist.
func (h *WishlistHandler) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Missing authentication")
	}

	items, err := h.uc.GetWishlist(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// Add saves a product on the caller's wishlist.
func (h *WishlistHandler) Add(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Missing authentication")
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product id")
	}

	items, err := h.uc.AddToWishlist(c.Request().Context(), userID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Product added to wishlist")
}

// Remove deletes a product from the caller's wishlist.
func (h *WishlistHandler) Remove(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Missing authentication")
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product id")
	}

	items, err := h.uc.RemoveFromWishlist(c.Request().Context(), userID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Product removed from wishlist")
}
