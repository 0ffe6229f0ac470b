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

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: logger}
}

// List returns a catalog page for the query filters.
func (h *ProductHandler) List(c echo.Context) error {
	var input usecase.ListProductsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid catalog filters")
	}

	products, err := h.uc.ListProducts(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// GetBySlug returns one product for the detail page.
func (h *ProductHandler) GetBySlug(c echo.Context) error {
	product, err := h.uc.GetProductBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// Create adds a product to the catalog (admin only).
func (h *ProductHandler) Create(c echo.Context) error {
	var input usecase.SaveProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// Update replaces a product's catalog fields (admin only).
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product id")
	}

	var input usecase.SaveProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// Delete removes a product from the catalog (admin only).
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product id")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}
