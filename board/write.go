package board

import (
	"bufio"
	"fmt"
	"io"
)

// WriteTo serializes b in the board description format accepted by ReadFrom.
// Edges are written in the order they were added. Empty payloads are
// written as "0 0" so that every vertex record stays a visible line.
func (b *Board) WriteTo(w io.Writer) (int64, error) {
	if b == nil {
		return 0, ErrNilBoard
	}
	cw := &countingWriter{w: bufio.NewWriter(w)}

	fmt.Fprintf(cw, "%s: %d\n", fieldCops, b.cops)
	fmt.Fprintf(cw, "%s: %d\n", fieldRobbers, b.robbers)
	fmt.Fprintf(cw, "%s: %d\n", fieldMaxTurn, b.maxTurn)
	fmt.Fprintf(cw, "%s: %d\n", fieldVertices, len(b.vertices))
	for i := range b.vertices {
		payload := b.vertices[i].Payload
		if payload == "" {
			payload = "0 0"
		}
		fmt.Fprintln(cw, payload)
	}
	fmt.Fprintf(cw, "%s: %d\n", fieldEdges, len(b.edges))
	for _, e := range b.edges {
		fmt.Fprintf(cw, "%d %d\n", e.U, e.V)
	}

	if cw.err != nil {
		return cw.n, fmt.Errorf("board: write: %w", cw.err)
	}
	if err := cw.w.Flush(); err != nil {
		return cw.n, fmt.Errorf("board: flush: %w", err)
	}

	return cw.n, nil
}

// countingWriter remembers the first write error so WriteTo can check once.
type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err

	return n, err
}
