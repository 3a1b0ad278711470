// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go - Path(n): vertices 0..n-1, edges i–(i+1) in ascending i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/copsrobbers/board"
)

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor for the chain 0–1–…–(n-1).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(cfg builderConfig) (*board.Board, error) {
		if n < minPathNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		b, err := newBoard(methodPath, cfg, n, linePayload)
		if err != nil {
			return nil, err
		}
		for i := 0; i+1 < n; i++ {
			if err = addEdge(methodPath, b, i, i+1); err != nil {
				return nil, err
			}
		}

		return b, nil
	}
}
