// SPDX-License-Identifier: MIT
// Package: strategy
//
// chase.go - shortest-path pursuit for cops.

package strategy

import (
	"fmt"

	"github.com/katalvlaran/copsrobbers/game"
	"github.com/katalvlaran/copsrobbers/paths"
)

type chase struct{}

// Chase moves each cop one hop toward its nearest robber; ties go to the
// robber listed first. A cop with no reachable robber stays. Robbers using
// Chase hold still.
//
// Complexity: O(cops * robbers) table lookups per turn.
func Chase() game.Strategy { return chase{} }

func (chase) Next(v game.View) ([]int, error) {
	if v.Role != game.Cops {
		return game.Hold(v)
	}
	if v.Paths == nil {
		return nil, fmt.Errorf("chase: %w", ErrNoPaths)
	}

	out := make([]int, len(v.Cops))
	for i, c := range v.Cops {
		target, best := -1, paths.Unreachable
		for _, r := range v.Robbers {
			d, err := v.Paths.Distance(c, r)
			if err != nil {
				return nil, fmt.Errorf("chase: cop %d: %w", i, err)
			}
			if d < best {
				target, best = r, d
			}
		}
		if target < 0 {
			out[i] = c
			continue
		}
		hop, err := v.Paths.Next(c, target)
		if err != nil {
			return nil, fmt.Errorf("chase: cop %d: %w", i, err)
		}
		out[i] = hop
	}

	return out, nil
}
