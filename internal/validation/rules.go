package validation

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"lending-patterns/internal/domain/registration"
)

const specialChars = "!\"£$%^&*()_+-=`¬|{}[]'#@~<>?,./"

var (
	reEmail     = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z]+$`)
	reFediverse = regexp.MustCompile(`^@[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z]+$`)
)

// engine is shared by every leaf rule and by struct validation.
var engine = newEngine()

func newEngine() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("hasdigit", func(fl validator.FieldLevel) bool {
		return strings.IndexFunc(fl.Field().String(), unicode.IsDigit) >= 0
	})
	_ = v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s != "" && strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) }) < 0
	})
	_ = v.RegisterValidation("hasspecial", func(fl validator.FieldLevel) bool {
		return strings.ContainsAny(fl.Field().String(), specialChars)
	})
	_ = v.RegisterValidation("word", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s != "" && strings.IndexFunc(s, func(r rune) bool { return !isWordRune(r) }) < 0
	})
	_ = v.RegisterValidation("emaillike", func(fl validator.FieldLevel) bool {
		return reEmail.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("fediverse", func(fl validator.FieldLevel) bool {
		return reFediverse.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("propername", func(fl validator.FieldLevel) bool {
		return isProperName(fl.Field().String())
	})
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsInf(f, 0) && !math.IsNaN(f)
	})

	return v
}

func isWordRune(r rune) bool {
	return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}

// isProperName reports whether s is an upper-case letter followed by at least
// one lower-case letter and no further upper-case letters.
func isProperName(s string) bool {
	runes := []rune(s)
	if len(runes) < 2 || !unicode.IsUpper(runes[0]) {
		return false
	}
	cased := false
	for _, r := range runes[1:] {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsLower(r) {
			cased = true
		}
	}
	return cased
}

// rule checks a single property against a validator tag.
type rule struct {
	property string
	tag      string
	message  string
}

func (r rule) Validate(data registration.UserData) Result {
	v, ok := data.Lookup(r.property)
	if !ok || engine.Var(v, r.tag) != nil {
		return Fail(r.message)
	}
	return Pass()
}

func Length(min, max int, property string) Validator {
	return rule{
		property: property,
		tag:      fmt.Sprintf("min=%d,max=%d", min, max),
		message:  fmt.Sprintf("Property '%s' must be between %d and %d characters long", property, min, max),
	}
}

func MinLength(min int, property string) Validator {
	return rule{
		property: property,
		tag:      fmt.Sprintf("min=%d", min),
		message:  fmt.Sprintf("Property '%s' must be at least %d characters long", property, min),
	}
}

func ContainsDigit(property string) Validator {
	return rule{property: property, tag: "hasdigit", message: fmt.Sprintf("Property '%s' must contain a digit", property)}
}

func OnlyDigits(property string) Validator {
	return rule{property: property, tag: "digits", message: fmt.Sprintf("Property '%s' must be only digits", property)}
}

func ContainsSpecial(property string) Validator {
	return rule{property: property, tag: "hasspecial", message: fmt.Sprintf("Property '%s' must contain a special character", property)}
}

func AlphanumericOrUnderscore(property string) Validator {
	return rule{
		property: property,
		tag:      "word",
		message:  fmt.Sprintf("Property '%s' must only contain alphanumerical characters or underscores", property),
	}
}

func Email() Validator {
	return rule{property: "email", tag: "emaillike", message: "Property 'email' must be a valid email address"}
}

// FediverseID expects the @user@host.tld form.
func FediverseID() Validator {
	return rule{property: "fediverse_id", tag: "fediverse", message: "Property 'fediverse_id' must be a valid fediverse id"}
}

func Name(property string) Validator {
	return rule{property: property, tag: "propername", message: fmt.Sprintf("Property '%s' must be a valid name", property)}
}

type option struct {
	property string
	options  []string
}

// Option passes when the property equals one of options exactly.
func Option(options []string, property string) Validator {
	return option{property: property, options: slices.Clone(options)}
}

func (o option) Validate(data registration.UserData) Result {
	v, ok := data.Lookup(o.property)
	if !ok || !slices.Contains(o.options, v) {
		return Fail(fmt.Sprintf("Property '%s' must be one of '%s'", o.property, strings.Join(o.options, "' or '")))
	}
	return Pass()
}
