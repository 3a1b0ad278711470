// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
// Callers branch with errors.Is; constructors add context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrOptionViolation indicates an invalid functional option.
var ErrOptionViolation = errors.New("builder: invalid option supplied")

// ErrConstructFailed indicates a nil constructor or a failed board mutation.
var ErrConstructFailed = errors.New("builder: construction failed")
