// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_grid.go - Grid(rows, cols): 4-neighborhood grid, row-major indices.
//
// Contract:
//   - Vertex r*cols+c carries payload "r c".
//   - For each cell in row-major order emit Right then Bottom when present.

package builder

import (
	"fmt"

	"github.com/katalvlaran/copsrobbers/board"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols orthogonal grid.
// Complexity: O(rows*cols).
func Grid(rows, cols int) Constructor {
	return func(cfg builderConfig) (*board.Board, error) {
		if rows < minGridDim || cols < minGridDim {
			return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		b, err := newBoard(methodGrid, cfg, rows*cols, func(i int) string {
			return fmt.Sprintf("%d %d", i/cols, i%cols)
		})
		if err != nil {
			return nil, err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err = addEdge(methodGrid, b, u, u+1); err != nil {
						return nil, err
					}
				}
				if r+1 < rows {
					if err = addEdge(methodGrid, b, u, u+cols); err != nil {
						return nil, err
					}
				}
			}
		}

		return b, nil
	}
}
