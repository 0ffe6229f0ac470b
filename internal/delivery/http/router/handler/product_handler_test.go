package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"capsule/internal/domain/entity"
	"capsule/internal/domain/repository"
	mockRepo "capsule/internal/mocks/repository"
	"capsule/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductHandlerFixture(t *testing.T) (*ProductHandler, *mockRepo.MockProductRepository) {
	productRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	uc := impl.NewCatalogService(impl.CatalogServiceParams{
		ProductRepo: productRepo,
		Logger:      logger,
	})

	return NewProductHandler(uc, logger), productRepo
}

func TestProductHandler_List(t *testing.T) {
	h, productRepo := newProductHandlerFixture(t)

	productRepo.EXPECT().
		List(mock.Anything, mock.AnythingOfType("repository.ProductFilter")).
		Return([]*entity.Product{
			{ID: uuid.New(), Name: "Core Hoodie", Slug: "core-hoodie", Price: 8900},
		}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/product?category=hoodies", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "core-hoodie")
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestProductHandler_GetBySlug(t *testing.T) {
	h, productRepo := newProductHandlerFixture(t)

	productRepo.EXPECT().
		FindBySlug(mock.Anything, "core-hoodie").
		Return(&entity.Product{ID: uuid.New(), Name: "Core Hoodie", Slug: "core-hoodie"}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/product/:slug")
	c.SetParamNames("slug")
	c.SetParamValues("core-hoodie")

	require.NoError(t, h.GetBySlug(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Core Hoodie")
}

func TestProductHandler_GetBySlug_NotFoundPropagates(t *testing.T) {
	h, productRepo := newProductHandlerFixture(t)

	productRepo.EXPECT().
		FindBySlug(mock.Anything, "gone").
		Return(nil, repository.ErrProductNotFound)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/product/:slug")
	c.SetParamNames("slug")
	c.SetParamValues("gone")

	// The handler hands the domain error to the centralized error handler.
	err := h.GetBySlug(c)
	require.Error(t, err)
}

func TestProductHandler_Update_InvalidID(t *testing.T) {
	h, _ := newProductHandlerFixture(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/product/:id")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}
