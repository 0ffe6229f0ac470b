package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "capsule/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/product/missing", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestHandleHTTPError_AppError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newErrorContext(t)

	m.HandleHTTPError(domainerrors.ErrProductNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), "PRODUCT_NOT_FOUND")
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newErrorContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

func TestHandleHTTPError_UnknownError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newErrorContext(t)

	m.HandleHTTPError(errors.New("boom"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}

func TestHandleHTTPError_CommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newErrorContext(t)

	c.NoContent(http.StatusOK)
	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
}
