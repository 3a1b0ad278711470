package transport

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport matches every error produced by this package.
	ErrTransport = errors.New("transport: exchange failed")

	// ErrClosed indicates the input ended while positions were expected.
	ErrClosed = errors.New("transport: input closed")

	// ErrMalformed indicates a line that is not a single non-negative integer.
	ErrMalformed = errors.New("transport: malformed position")

	// ErrTimeout indicates the adversary did not answer within the timeout.
	ErrTimeout = errors.New("transport: read timed out")
)

// Error describes a failed read or write.
type Error struct {
	Op    string // "read" or "write"
	Index int    // token index within the position list
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("transport: %s position %d: %v", e.Op, e.Index, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is makes every *Error match ErrTransport.
func (e *Error) Is(target error) bool { return target == ErrTransport }
