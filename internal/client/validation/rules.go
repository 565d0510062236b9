package validation

import (
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Required fails on absent fields and on "".
func Required(msg string) Rule {
	return func(f Field) (string, bool) {
		if !f.Present || f.Value == "" {
			return msg, false
		}
		return "", true
	}
}

// Email fails on values that are not e-mail addresses. Absent and empty
// values pass; pair it with Required when the field is mandatory.
func Email(msg string) Rule {
	return func(f Field) (string, bool) {
		if !f.Present || f.Value == "" {
			return "", true
		}
		if err := validate.Var(f.Value, "email"); err != nil {
			return msg, false
		}
		return "", true
	}
}

// MinLength fails on present values shorter than n characters. An empty
// string is present and therefore fails; an absent field passes.
func MinLength(n int, msg string) Rule {
	return func(f Field) (string, bool) {
		if !f.Present {
			return "", true
		}
		if utf8.RuneCountInString(f.Value) < n {
			return msg, false
		}
		return "", true
	}
}

// EqualTo fails unless the field equals the field named other. Two absent
// fields are equal; an absent field never equals a present one.
func EqualTo(other, msg string) Rule {
	return func(f Field) (string, bool) {
		counterpart, ok := f.Data.Get(other)
		switch {
		case !f.Present && !ok:
			return "", true
		case f.Present != ok:
			return msg, false
		case f.Value != counterpart:
			return msg, false
		}
		return "", true
	}
}

// NotEmpty is a When gate matching any non-empty value.
func NotEmpty(value string) bool {
	return value != ""
}

// When applies then only if is reports true for the submitted value of the
// field named gate (an absent gate reads as ""). Otherwise the field passes.
func When(gate string, is func(value string) bool, then ...Rule) Rule {
	return func(f Field) (string, bool) {
		value, _ := f.Data.Get(gate)
		if !is(value) {
			return "", true
		}
		return firstFailure(then, f)
	}
}
