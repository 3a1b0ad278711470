// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go - Cycle(n): edges i–(i+1)%n for i=0..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/copsrobbers/board"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for the ring C_n (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(cfg builderConfig) (*board.Board, error) {
		if n < minCycleNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		b, err := newBoard(methodCycle, cfg, n, linePayload)
		if err != nil {
			return nil, err
		}
		// the last step closes the ring back to 0
		for i := 0; i < n; i++ {
			if err = addEdge(methodCycle, b, i, (i+1)%n); err != nil {
				return nil, err
			}
		}

		return b, nil
	}
}
