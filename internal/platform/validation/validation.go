// Package validation carries input-shape failures from services to handlers
// so they can be mapped to 400 responses that name the violating fields,
// distinct from store failures.
package validation

import (
	"errors"
	"strings"
)

// Error lists the fields that failed validation.
type Error struct {
	Fields []string
}

func (e *Error) Error() string {
	return "invalid input: " + strings.Join(e.Fields, ", ")
}

// NewError builds a validation Error for the named fields.
func NewError(fields ...string) error {
	return &Error{Fields: fields}
}

// Is reports whether err is (or wraps) a validation Error.
func Is(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}
