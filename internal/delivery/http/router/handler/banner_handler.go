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

// BannerHandler holds dependencies for storefront banner handlers.
type BannerHandler struct {
	uc     usecase.BannerUsecase
	logger *slog.Logger
}

// NewBannerHandler is the constructor for BannerHandler, injected by Fx.
func NewBannerHandler(uc usecase.BannerUsecase, logger *slog.Logger) *BannerHandler {
	return &BannerHandler{uc: uc, logger: logger}
}

// ListActive returns the banners shown on the storefront.
func (h *BannerHandler) ListActive(c echo.Context) error {
	banners, err := h.uc.ListActiveBanners(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, banners, "")
}

// ListAll returns every banner (admin only).
func (h *BannerHandler) ListAll(c echo.Context) error {
	banners, err := h.uc.ListBanners(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, banners, "")
}

// Create adds a banner (admin only).
func (h *BannerHandler) Create(c echo.Context) error {
	var input usecase.SaveBannerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid banner input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	banner, err := h.uc.CreateBanner(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, banner, "Banner created successfully")
}

// Update replaces a banner's fields (admin only).
func (h *BannerHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid banner id")
	}

	var input usecase.SaveBannerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid banner input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	banner, err := h.uc.UpdateBanner(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, banner, "Banner updated successfully")
}

// Delete removes a banner (admin only).
func (h *BannerHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid banner id")
	}

	if err := h.uc.DeleteBanner(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Banner deleted successfully")
}
