package db

import (
	"errors"
	"fmt"
)

// ErrTermNotFound is returned when a category or tag name/slug does not
// resolve to a term.
var ErrTermNotFound = errors.New("term not found")

// DataAccessError wraps a driver failure with the operation that caused it.
// Handlers log the full error but must not leak it to clients.
type DataAccessError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *DataAccessError) Error() string {
	return fmt.Sprintf("data access failed during %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying driver error
func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// wrapErr wraps a non-nil driver error in a DataAccessError
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &DataAccessError{Op: op, Err: err}
}
