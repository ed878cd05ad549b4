package env

import (
	"errors"
	"fmt"
)

// Standard errors for the env package
var (
	// ErrNotStructPointer is returned when the load target is not a non-nil
	// pointer to a struct.
	ErrNotStructPointer = errors.New("env: target must be a non-nil pointer to a struct")

	// ErrEmptyTag is returned when an env tag names no variable.
	ErrEmptyTag = errors.New("env: tag names no environment variable")
)

// MissingError reports a declared environment variable that is not present in
// the process environment. A variable set to the empty string is present and
// does not produce a MissingError.
type MissingError struct {
	// Variable is the full environment variable name, prefix included.
	Variable string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("env: required environment variable %s is not set", e.Variable)
}

// ParseError reports an environment variable whose string content could not
// be parsed into the declared field type.
type ParseError struct {
	// Variable is the full environment variable name, prefix included.
	Variable string

	// Value is the raw string read from the environment.
	Value string

	// Type is the declared target type, e.g. "int" or "time.Duration".
	Type string

	// Err is the underlying conversion error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("env: cannot parse %s=%q as %s: %v", e.Variable, e.Value, e.Type, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnsupportedTypeError reports a tagged field whose type has no conversion
// rule. Unlike an unparseable value this is a declaration mistake, but it is
// still surfaced as an error rather than skipping the field silently.
type UnsupportedTypeError struct {
	// Field is the struct field name, when known.
	Field string

	// Type is the Go type that cannot be converted.
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("env: unsupported type %s", e.Type)
	}
	return fmt.Sprintf("env: field %s has unsupported type %s", e.Field, e.Type)
}
