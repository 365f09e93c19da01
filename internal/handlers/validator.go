package handlers

import (
	"net/http"

	"debt-tracker/internal/validation"

	"github.com/labstack/echo/v4"
)

var errEmptyRequest = echo.NewHTTPError(http.StatusBadRequest, "request body is required")

// requestValidator runs the shared portfolio rule set for echo's c.Validate
type requestValidator struct {
	rules *validation.Validator
}

// NewValidator returns the echo.Validator used by every portfolio route
func NewValidator() echo.Validator {
	return &requestValidator{rules: validation.GetValidator()}
}

func (v *requestValidator) Validate(i interface{}) error {
	if i == nil {
		return errEmptyRequest
	}
	return v.rules.Struct(i)
}
