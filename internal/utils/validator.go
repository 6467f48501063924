package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/labstack/echo/v4"
)

// RequestValidator plugs go-playground/validator into echo
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator installed as echo.Validator
func NewRequestValidator() *RequestValidator {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return &RequestValidator{validate: v}
}

// Validate checks the `validate` struct tags of i
func (v *RequestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return describeValidation(err)
	}
	return nil
}

func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s", fe.Field(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(parts, "; "))
}

// BindAndValidate binds the request body into v and validates it when the
// echo instance has a validator installed.
func BindAndValidate(c echo.Context, v interface{}) error {
	if err := c.Bind(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if c.Echo().Validator == nil {
		return nil
	}
	return c.Validate(v)
}
