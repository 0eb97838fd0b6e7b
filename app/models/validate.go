package models

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// structError translates a validator failure into a *ValidationError naming
// the first offending field in lower case.
func structError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.ToLower(fe.Field())
		msg := field + " is invalid"
		switch fe.Tag() {
		case "required":
			msg = field + " is required"
		case "max":
			msg = field + " is too long (maximum " + fe.Param() + " characters)"
		case "min":
			msg = field + " is too short (minimum " + fe.Param() + " characters)"
		}
		return &ValidationError{Field: field, Message: msg}
	}
	return err
}
