// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// echoValidator wraps a validator.Validate instance for Echo.
type echoValidator struct {
	validate *validator.Validate
}

// New creates the request validator used by the HTTP server.
func New() echo.Validator {
	return &echoValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Validation failures surface as 400s
// with the validator's field messages.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
