package schema

import (
	"errors"
	"fmt"
)

// Standard errors for the schema package
var (
	// ErrEmptyFieldName is returned by New for a field with no identifier.
	ErrEmptyFieldName = errors.New("schema: field name must not be empty")

	// ErrEmptyVariable is returned by New for a field naming no variable.
	ErrEmptyVariable = errors.New("schema: environment variable name must not be empty")
)

// DuplicateFieldError reports a field identifier declared more than once in
// a single schema. It is a declaration-time error: New fails before any
// environment variable is read.
type DuplicateFieldError struct {
	Name string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("schema: field %q declared more than once", e.Name)
}
