// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - the BuildBoard orchestrator and the Constructor type.
// Topology factories live in impl_*.go.

package builder

import (
	"fmt"

	"github.com/katalvlaran/copsrobbers/board"
)

// Constructor creates a complete board from the resolved configuration.
// Constructors validate parameters before allocating and return sentinel
// errors wrapped with their method name; they never panic.
type Constructor func(cfg builderConfig) (*board.Board, error)

// BuildBoard resolves opts and runs con.
//
// Errors: ErrOptionViolation, ErrConstructFailed (nil con), or the
// constructor's own error, all wrapped as "BuildBoard: %w".
func BuildBoard(opts []Option, con Constructor) (*board.Board, error) {
	if con == nil {
		return nil, fmt.Errorf("BuildBoard: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("BuildBoard: %w", cfg.err)
	}

	b, err := con(cfg)
	if err != nil {
		return nil, fmt.Errorf("BuildBoard: %w", err)
	}

	return b, nil
}

// newBoard allocates n vertices with the configured match parameters and
// payloads produced by payload(i).
func newBoard(method string, cfg builderConfig, n int, payload func(int) string) (*board.Board, error) {
	b, err := board.New(cfg.cops, cfg.robbers, cfg.maxTurn, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", method, ErrConstructFailed, err)
	}
	for i := 0; i < n; i++ {
		if err = b.SetPayload(i, payload(i)); err != nil {
			return nil, fmt.Errorf("%s: SetPayload(%d): %w", method, i, err)
		}
	}

	return b, nil
}

// addEdge wraps board.AddEdge with method context.
func addEdge(method string, b *board.Board, u, v int) error {
	if err := b.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d, %d): %w", method, u, v, err)
	}
	return nil
}

// linePayload places vertex i at "i 0".
func linePayload(i int) string { return fmt.Sprintf("%d 0", i) }
