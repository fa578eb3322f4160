package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// FieldError is a readable struct-validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string { return e.Field + " " + e.Message }

// Struct validates s against its `validate` tags using the shared engine.
func Struct(s any) error { return engine.Struct(s) }

// ToFieldErrors maps validator.ValidationErrors to []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		case "ltefield":
			out = append(out, FieldError{Field: field, Message: "must not exceed " + e.Param()})
		case "finite":
			out = append(out, FieldError{Field: field, Message: "must be a finite number"})
		case "min":
			out = append(out, FieldError{Field: field, Message: "must be at least " + e.Param() + " long"})
		case "max":
			out = append(out, FieldError{Field: field, Message: "must be at most " + e.Param() + " long"})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
