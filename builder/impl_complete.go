// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go - Complete(n): every pair i<j exactly once, lexicographic order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/copsrobbers/board"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for K_n.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(cfg builderConfig) (*board.Board, error) {
		if n < minCompleteNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		b, err := newBoard(methodComplete, cfg, n, linePayload)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(methodComplete, b, i, j); err != nil {
					return nil, err
				}
			}
		}

		return b, nil
	}
}
