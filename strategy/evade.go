// SPDX-License-Identifier: MIT
// Package: strategy
//
// evade.go - greedy distance-maximizing escape for robbers.

package strategy

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/copsrobbers/game"
	"github.com/katalvlaran/copsrobbers/paths"
)

type evade struct {
	memo *lru.Cache[string, int]
}

// Evade moves each robber to the vertex among {stay} ∪ neighbors that
// maximizes the distance to the nearest cop. Ties prefer staying, then
// adjacency order. Cops using Evade hold still.
//
// Choices are memoised per (robber vertex, cop multiset) in an LRU cache of
// cacheSize entries; non-positive means DefaultCacheSize. An Evade value is
// bound to one board.
//
// Complexity: O(deg(r) * cops) per robber on a cache miss.
func Evade(cacheSize int) (game.Strategy, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	memo, err := lru.New[string, int](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("evade: %w", err)
	}

	return &evade{memo: memo}, nil
}

func (e *evade) Next(v game.View) ([]int, error) {
	if v.Role != game.Robbers {
		return game.Hold(v)
	}
	if v.Paths == nil {
		return nil, fmt.Errorf("evade: %w", ErrNoPaths)
	}

	cops := slices.Clone(v.Cops)
	slices.Sort(cops)
	suffix := copKey(cops)

	out := make([]int, len(v.Robbers))
	for i, r := range v.Robbers {
		key := strconv.Itoa(r) + "|" + suffix
		if dst, ok := e.memo.Get(key); ok {
			out[i] = dst
			continue
		}
		dst, err := e.choose(v, r, cops)
		if err != nil {
			return nil, fmt.Errorf("evade: robber %d: %w", i, err)
		}
		e.memo.Add(key, dst)
		out[i] = dst
	}

	return out, nil
}

func (e *evade) choose(v game.View, r int, cops []int) (int, error) {
	nbs, err := v.Board.Neighbors(r)
	if err != nil {
		return 0, err
	}

	best, bestScore := r, -1
	for _, cand := range append([]int{r}, nbs...) {
		score := paths.Unreachable
		for _, c := range cops {
			d, err := v.Paths.Distance(cand, c)
			if err != nil {
				return 0, err
			}
			score = min(score, d)
		}
		if score > bestScore {
			best, bestScore = cand, score
		}
	}

	return best, nil
}

func copKey(sorted []int) string {
	var sb strings.Builder
	for i, c := range sorted {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(c))
	}
	return sb.String()
}
