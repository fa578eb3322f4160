package validation

import (
	"errors"
	"strings"

	"lending-patterns/internal/domain/registration"
)

// Result is the outcome of validating one UserData record.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Pass is the result of a successful check.
func Pass() Result { return Result{Valid: true} }

// Fail returns a failed result carrying msgs.
func Fail(msgs ...string) Result { return Result{Valid: false, Errors: msgs} }

// Err returns nil for a passing result, otherwise the error lines joined by newlines.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return errors.New(strings.Join(r.Errors, "\n"))
}

type Validator interface {
	Validate(data registration.UserData) Result
}

// Func adapts a plain function to Validator.
type Func func(data registration.UserData) Result

func (f Func) Validate(data registration.UserData) Result { return f(data) }

type mode int

const (
	modeAll mode = iota
	modeAtLeastOne
)

// Composite aggregates the results of its children.
type Composite struct {
	label    string
	mode     mode
	children []Validator
}

// All passes only when every child passes. Every child is evaluated so the
// caller sees all failures at once.
func All(label string, children ...Validator) *Composite {
	return &Composite{label: label, mode: modeAll, children: children}
}

// AtLeastOne passes as soon as one child passes.
func AtLeastOne(label string, children ...Validator) *Composite {
	return &Composite{label: label, mode: modeAtLeastOne, children: children}
}

func (c *Composite) Add(v Validator) { c.children = append(c.children, v) }

func (c *Composite) Label() string { return c.label }

func (c *Composite) Validate(data registration.UserData) Result {
	var (
		nested []string
		failed bool
	)
	for _, child := range c.children {
		res := child.Validate(data)
		if res.Valid {
			if c.mode == modeAtLeastOne {
				return Pass()
			}
			continue
		}
		failed = true
		nested = append(nested, indent(res.Errors)...)
	}
	if c.mode == modeAll && !failed {
		return Pass()
	}
	return Fail(append([]string{c.header()}, nested...)...)
}

func (c *Composite) header() string {
	if c.mode == modeAtLeastOne {
		return "At least one of the following " + c.label + " errors must be fixed:"
	}
	return "All of the following " + c.label + " errors must be fixed:"
}

func indent(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = "\t" + l
	}
	return out
}
