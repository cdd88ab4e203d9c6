// Package runtime provides the connection layer and error taxonomy for the
// ORM. Driver failures are wrapped for context but never translated.
package runtime

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a query matches no rows.
	ErrNotFound = errors.New("record not found")

	// ErrMissingPrimaryKey is returned when a write operation needs a
	// primary key and the table declares none.
	ErrMissingPrimaryKey = errors.New("no primary key defined")

	// ErrSessionClosed is returned when an operation is invoked on a
	// session that is not connected.
	ErrSessionClosed = errors.New("session is not connected")
)

// QueryError wraps a driver failure with the statement that caused it.
type QueryError struct {
	Query string
	Err   error
}

// Error implements the error interface.
func (e *QueryError) Error() string {
	return fmt.Sprintf("query error: %v\nQuery: %s", e.Err, e.Query)
}

// Unwrap returns the underlying driver error.
func (e *QueryError) Unwrap() error {
	return e.Err
}
