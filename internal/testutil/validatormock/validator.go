package validatormock

import (
	"lending-patterns/internal/domain/registration"
	"lending-patterns/internal/validation"
)

// Ensure compile-time compliance
var _ validation.Validator = (*Validator)(nil)

// Validator is a function-backed mock that satisfies validation.Validator.
// With no ValidateFn it always passes. Calls counts invocations.
type Validator struct {
	ValidateFn func(data registration.UserData) validation.Result
	Calls      int
}

func Passing() *Validator { return &Validator{} }

func Failing(msgs ...string) *Validator {
	return &Validator{ValidateFn: func(registration.UserData) validation.Result {
		return validation.Fail(msgs...)
	}}
}

func (m *Validator) Validate(data registration.UserData) validation.Result {
	m.Calls++
	if m.ValidateFn != nil {
		return m.ValidateFn(data)
	}
	return validation.Pass()
}
