// Package validator wires go-playground/validator into Echo's binding flow.
package validator

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"bazaar/internal/delivery/http/response"
	domainerrors "bazaar/internal/domain/errors"
)

// requestValidator implements echo.Validator.
type requestValidator struct {
	validate *validator.Validate
}

// New creates the validator used for all bound request DTOs.
func New() echo.Validator {
	return &requestValidator{validate: validator.New()}
}

// Validate checks the struct's validate tags and converts failures into a
// ValidationError carrying per-field messages.
func (v *requestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domainerrors.ErrValidationFailed
	}

	fields := make([]response.FieldError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, response.FieldError{
			Field:   lowerFirst(fieldErr.Field()),
			Message: messageFor(fieldErr),
		})
	}

	return &ValidationError{Fields: fields}
}

// ValidationError carries the per-field failures of one request.
type ValidationError struct {
	Fields []response.FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

func messageFor(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fieldErr.Param()
	case "max":
		return "must be at most " + fieldErr.Param()
	case "gte":
		return "must be at least " + fieldErr.Param()
	case "lte":
		return "must be at most " + fieldErr.Param()
	case "gt":
		return "must be greater than " + fieldErr.Param()
	case "oneof":
		return "must be one of: " + fieldErr.Param()
	case "uuid":
		return "must be a valid UUID"
	case "url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])

	return string(runes)
}
