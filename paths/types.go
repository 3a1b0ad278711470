// SPDX-License-Identifier: MIT
// Package: paths
//
// types.go - Table storage, sentinels and the "no path" markers.

package paths

import (
	"errors"
	"math"
)

// Unreachable is the distance stored for pairs with no connecting path.
// It saturates: it never takes part in a relaxation sum.
const Unreachable = math.MaxInt

// NoHop is the next-hop stored for pairs with no connecting path.
const NoHop = -1

var (
	// ErrNilBoard is returned when FloydWarshall or BFS receive a nil board.
	ErrNilBoard = errors.New("paths: board is nil")

	// ErrNotComputed is returned by queries on a nil or zero-value Table.
	ErrNotComputed = errors.New("paths: table not computed")

	// ErrOutOfRange indicates a queried vertex outside [0, Size()).
	ErrOutOfRange = errors.New("paths: vertex index out of range")

	// ErrNoPath indicates that no path joins the queried vertices.
	ErrNoPath = errors.New("paths: no path")
)

// Table holds the all-pairs shortest distance and next-hop matrices.
// Both matrices are flat row-major buffers: cell (u,v) lives at u*n+v.
type Table struct {
	n    int
	dist []int
	next []int
}

// Size returns the matrix order, i.e. the vertex count of the source board.
func (t *Table) Size() int {
	if t == nil {
		return 0
	}
	return t.n
}

// computed reports whether the Table was produced by FloydWarshall.
// A zero-size board still yields a computed Table with empty buffers.
func (t *Table) computed() bool {
	return t != nil && t.dist != nil
}
