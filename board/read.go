package board

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Header labels of the board description, in reading order.
const (
	fieldCops     = "Cops"
	fieldRobbers  = "Robbers"
	fieldMaxTurn  = "Max turn"
	fieldVertices = "Vertices"
	fieldVertex   = "vertex"
	fieldEdges    = "Edges"
	fieldEdge     = "edge"
)

// maxLineBytes bounds a single description line.
const maxLineBytes = 1 << 20

// ParseError reports where a board description stopped making sense.
type ParseError struct {
	Line  int    // 1-based line number; the line after the last one on truncation
	Field string // record being read, e.g. "Max turn" or "edge"
	Err   error  // ErrTruncated, ErrMalformed or ErrOutOfRange, possibly wrapped
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("board: line %d (%s): %v", e.Line, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// lineReader numbers the lines it hands out.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (lr *lineReader) next(field string) (string, error) {
	if !lr.sc.Scan() {
		err := lr.sc.Err()
		if err == nil {
			err = ErrTruncated
		} else {
			err = fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		return "", &ParseError{Line: lr.line + 1, Field: field, Err: err}
	}
	lr.line++

	return lr.sc.Text(), nil
}

// header reads a "<label>: <uint>" line.
func (lr *lineReader) header(label string) (int, error) {
	raw, err := lr.next(label)
	if err != nil {
		return 0, err
	}
	rest, ok := strings.CutPrefix(strings.TrimSpace(raw), label+":")
	if !ok {
		return 0, &ParseError{Line: lr.line, Field: label,
			Err: fmt.Errorf("%w: want %q prefix, got %q", ErrMalformed, label+":", raw)}
	}
	n, err := parseUint(rest)
	if err != nil {
		return 0, &ParseError{Line: lr.line, Field: label, Err: err}
	}

	return n, nil
}

func parseUint(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q is not a non-negative integer", ErrMalformed, strings.TrimSpace(s))
	}
	return n, nil
}

// ReadFrom parses a board description from r.
//
// The whole structure must be present: three match headers, the vertex
// block and the edge block. Edge endpoints are bounds-checked against the
// declared vertex count. Anything after the last edge line is ignored.
// Complexity: O(N + M) for N vertices and M edges.
func ReadFrom(r io.Reader) (*Board, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	lr := &lineReader{sc: sc}

	var (
		counts [4]int
		err    error
	)
	for i, label := range [...]string{fieldCops, fieldRobbers, fieldMaxTurn, fieldVertices} {
		if counts[i], err = lr.header(label); err != nil {
			return nil, err
		}
	}
	if counts[2] > MaxTurnLimit {
		return nil, &ParseError{Line: lr.line - 1, Field: fieldMaxTurn,
			Err: fmt.Errorf("%w: %d exceeds %d", ErrMalformed, counts[2], MaxTurnLimit)}
	}

	// vertices grow with the input; the declared count is never preallocated.
	b, err := New(counts[0], counts[1], counts[2], 0)
	if err != nil {
		return nil, err
	}

	var raw string
	for v := 0; v < counts[3]; v++ {
		if raw, err = lr.next(fieldVertex); err != nil {
			return nil, err
		}
		b.vertices = append(b.vertices, Vertex{Index: v, Payload: strings.TrimSpace(raw)})
	}

	m, err := lr.header(fieldEdges)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m; i++ {
		if raw, err = lr.next(fieldEdge); err != nil {
			return nil, err
		}
		if err = b.addEdgeLine(raw); err != nil {
			return nil, &ParseError{Line: lr.line, Field: fieldEdge, Err: err}
		}
	}

	return b, nil
}

// addEdgeLine parses "u v" and records the edge.
func (b *Board) addEdgeLine(raw string) error {
	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return fmt.Errorf("%w: want \"u v\", got %q", ErrMalformed, raw)
	}
	u, err := parseUint(fields[0])
	if err != nil {
		return err
	}
	v, err := parseUint(fields[1])
	if err != nil {
		return err
	}

	return b.AddEdge(u, v)
}

// LoadFile opens path and parses it with ReadFrom.
func LoadFile(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("board: open %s: %w", path, err)
	}
	defer f.Close()

	b, err := ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("board: parse %s: %w", path, err)
	}

	return b, nil
}
