package document

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyName     = errors.New("type name cannot be empty")
	ErrDuplicateType = errors.New("type already exists")
	ErrUnknownType   = errors.New("type does not exist")
	ErrEmptyKey      = errors.New("key cannot be empty")
	ErrEmptyValue    = errors.New("value cannot be empty")
)

// ValidationError reports rejected user input. The document is left
// unchanged whenever one is returned.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// FormatError reports text that could not be decoded into a document,
// including files that could not be read at all.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return "invalid document: " + e.Err.Error()
}

func (e *FormatError) Unwrap() error { return e.Err }

// IsValidation reports whether err is or wraps a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsFormat reports whether err is or wraps a *FormatError.
func IsFormat(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

func invalid(field, value string, err error) error {
	return &ValidationError{Field: field, Value: value, Err: err}
}

func malformed(format string, args ...any) error {
	return &FormatError{Err: fmt.Errorf(format, args...)}
}
