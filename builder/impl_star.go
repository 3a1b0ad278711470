// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_star.go - Star(n): hub 0 joined to leaves 1..n-1 in ascending order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/copsrobbers/board"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
	starHub      = 0
)

// Star returns a Constructor for a star with hub 0 and n-1 leaves.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(cfg builderConfig) (*board.Board, error) {
		if n < minStarNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		b, err := newBoard(methodStar, cfg, n, linePayload)
		if err != nil {
			return nil, err
		}
		for leaf := 1; leaf < n; leaf++ {
			if err = addEdge(methodStar, b, starHub, leaf); err != nil {
				return nil, err
			}
		}

		return b, nil
	}
}
