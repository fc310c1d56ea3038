package store

import (
	"errors"
	"fmt"
)

// Error describes a failed store operation on a key.
type Error struct {
	Op  string
	Key string
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("store %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store %s %q: %v", e.Op, e.Key, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

// IsStoreError checks if an error is a store Error and returns it.
func IsStoreError(err error) (*Error, bool) {
	var se *Error
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// ErrClosed is returned by backends used after Close.
var ErrClosed = errors.New("store is closed")
