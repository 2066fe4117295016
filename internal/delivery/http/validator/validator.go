// Package validator adapts go-playground/validator to echo's Validator
// interface, collecting every field failure instead of stopping at the first.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "storefront/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a shared validator instance for echo.
type Validator struct {
	validate *validator.Validate
}

// New builds the request validator. Field names in error details come from
// the json tag so clients see the names they actually sent.
func New() *Validator {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	return &Validator{validate: validate}
}

// Validate implements echo.Validator. On failure it returns a
// domainerrors.ValidationError carrying all field messages, which the error
// handler renders as a 400 with details.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make([]domainerrors.FieldError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, domainerrors.FieldError{
			Field:   fieldErr.Field(),
			Message: messageFor(fieldErr),
		})
	}

	return domainerrors.NewValidationError(fields)
}

// messageFor renders one rule failure as a human-readable sentence.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must not exceed %s characters", fe.Field(), fe.Param())
		}

		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s item(s)", fe.Field(), fe.Param())
		}

		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gt":
		if fe.Param() == "0" {
			return fmt.Sprintf("%s must be greater than zero", fe.Field())
		}

		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		if fe.Param() == "0" {
			return fmt.Sprintf("%s cannot be negative", fe.Field())
		}

		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
