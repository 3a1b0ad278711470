// SPDX-License-Identifier: MIT
// Package: paths
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) with next-hop tracking and a fixed loop order.
//
// Contract:
//   - Unit edge weights; Unreachable means "no path"; diagonal is 0.
//   - next[v][v] = v; next for unreachable pairs is NoHop.

package paths

import (
	"fmt"

	"github.com/katalvlaran/copsrobbers/board"
)

const opFloydWarshall = "FloydWarshall"

// initTable allocates dist/next and seeds them from b's adjacency:
//
//	diag: dist 0, next v; edges: dist 1, next v; everything else Unreachable/NoHop.
//
// Duplicate neighbor entries simply rewrite the same cell (last write wins).
// Complexity: O(n² + m).
func initTable(b *board.Board) (*Table, error) {
	n := b.Size()
	t := &Table{
		n:    n,
		dist: make([]int, n*n),
		next: make([]int, n*n),
	}
	for i := range t.dist {
		t.dist[i] = Unreachable
		t.next[i] = NoHop
	}

	var (
		u, base int
		nbrs    []int
		err     error
	)
	for u = 0; u < n; u++ {
		base = u * n
		t.dist[base+u] = 0
		t.next[base+u] = u

		if nbrs, err = b.Neighbors(u); err != nil {
			return nil, fmt.Errorf("%s: Neighbors(%d): %w", opFloydWarshall, u, err)
		}
		for _, v := range nbrs {
			if v == u {
				// a self-loop never beats staying put
				continue
			}
			t.dist[base+v] = 1
			t.next[base+v] = v
		}
	}

	return t, nil
}

// relax runs the classic triple loop in place.
//
// Loop order is fixed (w → u → v). Unreachable operands are skipped, which
// keeps the sentinel from overflowing and matches the strict-improvement rule.
// Time: O(n³); no allocations.
func (t *Table) relax() {
	n := t.n
	dist, next := t.dist, t.next

	var (
		w, u, v      int
		baseW, baseU int
		uw, wv, cand int
	)
	for w = 0; w < n; w++ { // intermediate vertex
		baseW = w * n
		for u = 0; u < n; u++ { // source
			baseU = u * n
			uw = dist[baseU+w]
			if uw == Unreachable {
				continue
			}
			for v = 0; v < n; v++ { // destination
				wv = dist[baseW+v]
				if wv == Unreachable {
					continue
				}
				cand = uw + wv
				if cand < dist[baseU+v] {
					dist[baseU+v] = cand
					next[baseU+v] = next[baseU+w]
				}
			}
		}
	}
}

// FloydWarshall computes the all-pairs shortest-path Table of b.
//
// Edges have weight 1. Ties between equally short routes are resolved by the
// first improvement found under ascending intermediate vertex, which makes
// Next and Path deterministic for a given adjacency order.
//
// Errors: ErrNilBoard.
// Complexity: Time O(n³), Memory O(n²).
func FloydWarshall(b *board.Board) (*Table, error) {
	if b == nil {
		return nil, fmt.Errorf("%s: %w", opFloydWarshall, ErrNilBoard)
	}

	t, err := initTable(b)
	if err != nil {
		return nil, err
	}
	t.relax()

	return t, nil
}
