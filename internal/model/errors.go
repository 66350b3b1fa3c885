package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingRequiredField = errors.New("model: missing required field")
	ErrUnexpectedNull       = errors.New("model: unexpected null")
	ErrTypeMismatch         = errors.New("model: type mismatch")
	ErrUnknownEnumValue     = errors.New("model: unknown enum value")
	ErrNoSchema             = errors.New("model: record has no schema")
)

// FieldError reports one violation at a field. It unwraps to one of the
// package sentinels.
type FieldError struct {
	Record   string // record being decoded or encoded
	Field    string // in-memory name of the innermost field
	Path     string // wire path from the record root, e.g. custom_headers[1].name
	Err      error
	Expected string
	Actual   string
	Value    string // offending enum value
}

func (e *FieldError) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	switch {
	case e.Record != "" && e.Path != "":
		b.WriteString(": ")
		b.WriteString(e.Record)
		b.WriteString(".")
		b.WriteString(e.Path)
	case e.Record != "":
		b.WriteString(": ")
		b.WriteString(e.Record)
	case e.Path != "":
		b.WriteString(": ")
		b.WriteString(e.Path)
	}
	switch {
	case errors.Is(e.Err, ErrUnknownEnumValue):
		fmt.Fprintf(&b, " (value %q", e.Value)
		if e.Expected != "" {
			fmt.Fprintf(&b, ", expected %s", e.Expected)
		}
		b.WriteString(")")
	case e.Expected != "":
		fmt.Fprintf(&b, " (expected %s, got %s)", e.Expected, e.Actual)
	}
	return b.String()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// FieldErrors flattens err, including errors.Join trees, into its field errors.
func FieldErrors(err error) []*FieldError {
	if err == nil {
		return nil
	}
	var out []*FieldError
	var walk func(error)
	walk = func(err error) {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, inner := range joined.Unwrap() {
				walk(inner)
			}
			return
		}
		var fe *FieldError
		if errors.As(err, &fe) {
			out = append(out, fe)
		}
	}
	walk(err)
	return out
}

// Kind names the violation in snake case, e.g. "missing_required_field".
func (e *FieldError) Kind() string {
	switch {
	case errors.Is(e.Err, ErrMissingRequiredField):
		return "missing_required_field"
	case errors.Is(e.Err, ErrUnexpectedNull):
		return "unexpected_null"
	case errors.Is(e.Err, ErrTypeMismatch):
		return "type_mismatch"
	case errors.Is(e.Err, ErrUnknownEnumValue):
		return "unknown_enum_value"
	case errors.Is(e.Err, ErrNoSchema):
		return "no_schema"
	default:
		return "invalid"
	}
}
