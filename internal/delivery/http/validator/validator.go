// Package validator wires go-playground/validator into Echo's binding flow.
package validator

import (
	"net/http"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// requestValidator adapts go-playground/validator to echo.Validator.
type requestValidator struct {
	validate *playground.Validate
}

// New builds the Echo request validator.
func New() echo.Validator {
	return &requestValidator{
		validate: playground.New(),
	}
}

// Validate checks struct tags on a bound request and converts failures to
// an HTTP 400.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
