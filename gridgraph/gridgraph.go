package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/copsrobbers/board"
)

// NewTerrain flattens rows into a Terrain. The input is copied.
//
// Errors: ErrEmptyMap, ErrRaggedRows (with the offending row).
// Complexity: O(W×H).
func NewTerrain(rows [][]int) (*Terrain, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMap
	}
	t := &Terrain{width: len(rows[0]), levels: make([]int, 0, len(rows)*len(rows[0]))}
	for y, row := range rows {
		if len(row) != t.width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), t.width, ErrRaggedRows)
		}
		t.levels = append(t.levels, row...)
	}

	return t, nil
}

// ParseMap reads a text map, one row per line: '#' is a wall (level 0),
// '.' is floor (level 1) and a digit is its own level. Blank lines and
// trailing whitespace are ignored.
func ParseMap(r io.Reader) (*Terrain, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRight(sc.Text(), " \t\r")
		if text == "" {
			continue
		}
		row := make([]int, 0, len(text))
		for col, ch := range text {
			level, ok := glyphLevel(ch)
			if !ok {
				return nil, fmt.Errorf("ParseMap: line %d col %d %q: %w", line, col+1, ch, ErrBadGlyph)
			}
			row = append(row, level)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ParseMap: %w", err)
	}

	return NewTerrain(rows)
}

func glyphLevel(ch rune) (int, bool) {
	switch {
	case ch == '#':
		return 0, true
	case ch == '.':
		return 1, true
	case ch >= '0' && ch <= '9':
		return int(ch - '0'), true
	}
	return 0, false
}

// Width returns the number of columns.
func (t *Terrain) Width() int { return t.width }

// Height returns the number of rows.
func (t *Terrain) Height() int { return len(t.levels) / t.width }

// Level returns the level of cell (x,y); ok is false off the map.
func (t *Terrain) Level(x, y int) (level int, ok bool) {
	if x < 0 || x >= t.width || y < 0 || y >= t.Height() {
		return 0, false
	}
	return t.levels[y*t.width+x], true
}

// Walkable counts the cells at or above the floor level given in opts.
func (t *Terrain) Walkable(opts ...Option) int {
	floor := newLayout(opts).floor
	n := 0
	for _, level := range t.levels {
		if level >= floor {
			n++
		}
	}
	return n
}

// Board builds a board whose vertices are the walkable cells, numbered in
// row-major order with payload "x y". Each cell is joined to its forward
// neighbors (E, S, then SE and SW with WithDiagonals).
//
// Errors: ErrNoLand, or the board error for bad token counts.
// Complexity: O(W×H×d) time, O(W×H) extra memory.
func (t *Terrain) Board(opts ...Option) (*board.Board, error) {
	l := newLayout(opts)

	// vertexOf maps a cell index to its vertex, -1 for walls.
	vertexOf := make([]int, len(t.levels))
	n := 0
	for i, level := range t.levels {
		vertexOf[i] = -1
		if level >= l.floor {
			vertexOf[i] = n
			n++
		}
	}
	if n == 0 {
		return nil, ErrNoLand
	}

	b, err := board.New(l.cops, l.robbers, l.maxTurn, n)
	if err != nil {
		return nil, fmt.Errorf("Board: %w", err)
	}
	h := t.Height()
	for i, u := range vertexOf {
		if u < 0 {
			continue
		}
		x, y := i%t.width, i/t.width
		if err = b.SetPayload(u, fmt.Sprintf("%d %d", x, y)); err != nil {
			return nil, fmt.Errorf("Board: %w", err)
		}
		for _, s := range l.steps {
			nx, ny := x+s.dx, y+s.dy
			if nx < 0 || nx >= t.width || ny >= h {
				continue
			}
			v := vertexOf[ny*t.width+nx]
			if v < 0 {
				continue
			}
			if err = b.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("Board: AddEdge(%d, %d): %w", u, v, err)
			}
		}
	}

	return b, nil
}
