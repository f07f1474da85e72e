// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/edulabs/classauth/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// PositiveID validates that an optional numeric identifier is a positive integer.
type PositiveID struct{}

// Validate checks the value is a positive int64. Nil and zero-value pointers
// are skipped so the rule composes with optional fields.
func (p PositiveID) Validate(value interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case int64:
		if v <= 0 {
			return validation.NewError("validation_positive_id", "must be a positive integer")
		}
	case *int64:
		if v == nil {
			return nil
		}
		if *v <= 0 {
			return validation.NewError("validation_positive_id", "must be a positive integer")
		}
	default:
		return validation.NewError("validation_positive_id", "must be an integer")
	}
	return nil
}
