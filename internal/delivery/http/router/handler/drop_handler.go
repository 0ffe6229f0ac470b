package handler

import (
	"log/slog"
	"net/http"

	"capsule/internal/delivery/http/response"
	"capsule/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DropHandler holds dependencies for drop handlers.
type DropHandler struct {
	uc     usecase.DropUsecase
	logger *slog.Logger
}

// NewDropHandler is the constructor for DropHandler, injected by Fx.
func NewDropHandler(uc usecase.DropUsecase, logger *slog.Logger) *DropHandler {
	return &DropHandler{uc: uc, logger: logger}
}

// List returns all drops.
func (h *DropHandler) List(c echo.Context) error {
	drops, err := h.uc.ListDrops(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, drops, "")
}

// GetCurrent returns the drop flagged as current.
func (h *DropHandler) GetCurrent(c echo.Context) error {
	drop, err := h.uc.GetCurrentDrop(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, drop, "")
}

// Create registers a new drop (admin only).
func (h *DropHandler) Create(c echo.Context) error {
	var input usecase.SaveDropInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid drop input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	drop, err := h.uc.CreateDrop(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, drop, "Drop created successfully")
}

// Update replaces a drop's descriptive fields (admin only).
func (h *DropHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid drop id")
	}

	var input usecase.SaveDropInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid drop input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	drop, err := h.uc.UpdateDrop(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, drop, "Drop updated successfully")
}

// SetCurrent promotes a drop to current (admin only).
func (h *DropHandler) SetCurrent(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid drop id")
	}

	drop, err := h.uc.SetCurrentDrop(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, drop, "Current drop updated successfully")
}
