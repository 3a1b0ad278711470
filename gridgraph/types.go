package gridgraph

import "github.com/katalvlaran/copsrobbers/builder"

// Terrain is a rectangular map of cell levels stored row-major.
// It is immutable once built.
type Terrain struct {
	width  int
	levels []int
}

// step is a forward neighbor offset.
type step struct{ dx, dy int }

// forward offsets only reach cells with a larger row-major index, so a
// single pass lists every adjacent pair once.
var (
	orthogonal = []step{{1, 0}, {0, 1}}
	diagonal   = []step{{1, 0}, {1, 1}, {0, 1}, {-1, 1}}
)

// layout holds what Terrain.Board needs besides the map itself.
type layout struct {
	cops, robbers, maxTurn int
	floor                  int
	steps                  []step
}

func newLayout(opts []Option) layout {
	l := layout{cops: 1, robbers: 1, maxTurn: builder.DefaultMaxTurn, floor: 1, steps: orthogonal}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// Option tunes how a Terrain becomes a board.
type Option func(*layout)

// WithTokens sets the cop and robber counts of the resulting board.
func WithTokens(cops, robbers int) Option {
	return func(l *layout) { l.cops, l.robbers = cops, robbers }
}

// WithMaxTurn sets the turn budget of the resulting board.
func WithMaxTurn(n int) Option {
	return func(l *layout) { l.maxTurn = n }
}

// WithFloor sets the lowest level a token may stand on. Default 1.
func WithFloor(level int) Option {
	return func(l *layout) { l.floor = level }
}

// WithDiagonals lets tokens also move to the four diagonal cells.
func WithDiagonals() Option {
	return func(l *layout) { l.steps = diagonal }
}
