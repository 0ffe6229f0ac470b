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

// AddressHandler holds dependencies for address-book handlers.
type AddressHandler struct {
	uc     usecase.AddressUsecase
	logger *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressUsecase, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{uc: uc, logger: logger}
}

// List returns the caller's address book.
func (h *AddressHandler) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Missing authentication")
	}

	addresses, err := h.uc.ListAddresses(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addresses, "")
}

// Create adds an address to the caller's address book.
func (h *AddressHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Missing authentication")
	}

	var input usecase.SaveAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	address, err := h.uc.CreateAddress(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, address, "Address created successfully")
}

// Update replaces an address's fields.
func (h *AddressHandler) Update(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Missing authentication")
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address id")
	}

	var input usecase.SaveAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	address, err := h.uc.UpdateAddress(c.Request().Context(), userID, addressID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address, "Address updated successfully")
}

// Delete removes an address from the caller's address book.
func (h *AddressHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Missing authentication")
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address id")
	}

	if err := h.uc.DeleteAddress(c.Request().Context(), userID, addressID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Address deleted successfully")
}

// SetDefault flags an address as the caller's default.
func (h *AddressHandler) SetDefault(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Missing authentication")
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address id")
	}

	if err := h.uc.SetDefaultAddress(c.Request().Context(), userID, addressID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Default address updated")
}
