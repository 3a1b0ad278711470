package gridgraph

import "errors"

var (
	// ErrEmptyMap indicates a map without rows or columns.
	ErrEmptyMap = errors.New("gridgraph: map has no cells")
	// ErrRaggedRows indicates rows of differing lengths.
	ErrRaggedRows = errors.New("gridgraph: rows differ in length")
	// ErrBadGlyph indicates an unknown map character.
	ErrBadGlyph = errors.New("gridgraph: unknown map character")
	// ErrNoLand indicates a map where no cell reaches the floor level.
	ErrNoLand = errors.New("gridgraph: no walkable cell")
)
