// Package validation checks request payloads against their struct tags before
// they reach a service.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"teslo/internal/apperrors"
)

// Error reports every field that failed validation. It unwraps to
// apperrors.ErrValidation.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *Error) Unwrap() error { return apperrors.ErrValidation }

// Validator wraps a configured *validator.Validate.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the custom rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their json name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			name = strings.SplitN(f.Tag.Get("query"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("strongpassword", strongPassword)
	_ = v.RegisterValidation("maxbytes", maxBytes)
	return &Validator{validate: v}
}

// Struct validates s and returns an *Error listing failed fields, or nil.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	fields := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		fields[fieldPath(e)] = message(e)
	}
	return &Error{Fields: fields}
}

// Invalid builds an *Error for a single field.
func Invalid(field, reason string) error {
	return &Error{Fields: map[string]string{field: reason}}
}

func fieldPath(e validator.FieldError) string {
	// Namespace is "CreateProductRequest.sizes[1]"; drop the struct name.
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", e.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", e.Param())
	case "maxbytes":
		return fmt.Sprintf("must be at most %s bytes long", e.Param())
	case "strongpassword":
		return "must have an uppercase letter, a lowercase letter and a number or symbol"
	default:
		return fmt.Sprintf("failed on the '%s' tag", e.Tag())
	}
}

// strongPassword requires an upper-case letter, a lower-case letter and a digit
// or symbol.
func strongPassword(fl validator.FieldLevel) bool {
	var upper, lower, digitOrSymbol bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r), unicode.IsPunct(r), unicode.IsSymbol(r):
			digitOrSymbol = true
		}
	}
	return upper && lower && digitOrSymbol
}

// maxBytes limits the UTF-8 length of a string, as opposed to max which counts
// runes. bcrypt refuses passwords over 72 bytes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}
