// Package validator bridges go-playground/validator into echo's
// request-validation hook.
package validator

import (
	"net/http"

	playgroundvalidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *playgroundvalidator.Validate
}

// New creates the echo.Validator used by all handlers.
func New() echo.Validator {
	return &echoValidator{validate: playgroundvalidator.New()}
}

// Validate runs struct-tag validation and converts failures into an echo
// HTTP error so the error handler renders a 400 rather than a 500.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
