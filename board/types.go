package board

import (
	"errors"
	"fmt"
	"math"
)

// MaxTurnLimit is the largest accepted turn budget. It leaves headroom for
// the placement iterations counted on top of it.
const MaxTurnLimit = math.MaxInt - 2

// Sentinel errors for board construction, parsing and move validation.
var (
	// ErrOutOfRange indicates a vertex index outside [0, Size()).
	ErrOutOfRange = errors.New("board: vertex index out of range")

	// ErrNotAdjacent indicates a move between two distinct, non-adjacent vertices.
	ErrNotAdjacent = errors.New("board: vertices are not adjacent")

	// ErrNegative indicates a negative token count, turn budget or size.
	ErrNegative = errors.New("board: negative count")

	// ErrTooLarge indicates a turn budget above MaxTurnLimit.
	ErrTooLarge = errors.New("board: value too large")

	// ErrNilBoard is returned by methods invoked on a nil *Board.
	ErrNilBoard = errors.New("board: board is nil")

	// ErrNilReader is returned by ReadFrom when given a nil io.Reader.
	ErrNilReader = errors.New("board: reader is nil")

	// ErrTruncated indicates the description ended before a required record.
	ErrTruncated = errors.New("board: description truncated")

	// ErrMalformed indicates a record that does not match the expected format.
	ErrMalformed = errors.New("board: malformed record")
)

// Vertex is a single board location.
//
// Index equals the vertex position inside its Board. Neighbors holds the
// indices of adjacent vertices in insertion order. Payload is the raw
// description line for this vertex; the engine does not interpret it.
type Vertex struct {
	Index     int
	Payload   string
	Neighbors []int
}

// Board is the graph a match is played on plus the match parameters read
// alongside it.
type Board struct {
	cops     int
	robbers  int
	maxTurn  int
	vertices []Vertex
	edges    []Edge // in AddEdge order
}

// Edge is an undirected vertex pair as it was added to the Board.
type Edge struct {
	U, V int
}

// New creates a Board with size isolated vertices.
// Complexity: O(size).
func New(cops, robbers, maxTurn, size int) (*Board, error) {
	if cops < 0 || robbers < 0 || maxTurn < 0 || size < 0 {
		return nil, fmt.Errorf("New(cops=%d, robbers=%d, maxTurn=%d, size=%d): %w",
			cops, robbers, maxTurn, size, ErrNegative)
	}
	if maxTurn > MaxTurnLimit {
		return nil, fmt.Errorf("New(maxTurn=%d): limit %d: %w", maxTurn, MaxTurnLimit, ErrTooLarge)
	}

	b := &Board{
		cops:     cops,
		robbers:  robbers,
		maxTurn:  maxTurn,
		vertices: make([]Vertex, size),
	}
	for i := range b.vertices {
		b.vertices[i].Index = i
	}

	return b, nil
}

// Size returns the number of vertices.
func (b *Board) Size() int {
	if b == nil {
		return 0
	}
	return len(b.vertices)
}

// Cops returns the number of cop tokens, 0 for a nil Board.
func (b *Board) Cops() int {
	if b == nil {
		return 0
	}
	return b.cops
}

// Robbers returns the number of robber tokens, 0 for a nil Board.
func (b *Board) Robbers() int {
	if b == nil {
		return 0
	}
	return b.robbers
}

// MaxTurn returns the gameplay turn budget (placement turns excluded),
// 0 for a nil Board.
func (b *Board) MaxTurn() int {
	if b == nil {
		return 0
	}
	return b.maxTurn
}

// Contains reports whether v is a valid vertex index.
func (b *Board) Contains(v int) bool {
	return b != nil && v >= 0 && v < len(b.vertices)
}

// SetPayload stores the raw description payload of vertex v.
func (b *Board) SetPayload(v int, payload string) error {
	if !b.Contains(v) {
		return fmt.Errorf("SetPayload(%d): %w", v, ErrOutOfRange)
	}
	b.vertices[v].Payload = payload

	return nil
}

// Payload returns the raw description payload of vertex v.
func (b *Board) Payload(v int) (string, error) {
	if !b.Contains(v) {
		return "", fmt.Errorf("Payload(%d): %w", v, ErrOutOfRange)
	}
	return b.vertices[v].Payload, nil
}

// AddEdge records the undirected edge u–v.
//
// Both endpoints are validated before anything is appended, so a rejected
// edge leaves the Board untouched. Parallel edges and self-loops are kept
// as given.
// Complexity: amortized O(1).
func (b *Board) AddEdge(u, v int) error {
	if b == nil {
		return ErrNilBoard
	}
	if !b.Contains(u) || !b.Contains(v) {
		return fmt.Errorf("AddEdge(%d, %d) with size %d: %w", u, v, len(b.vertices), ErrOutOfRange)
	}
	b.vertices[u].Neighbors = append(b.vertices[u].Neighbors, v)
	b.vertices[v].Neighbors = append(b.vertices[v].Neighbors, u)
	b.edges = append(b.edges, Edge{U: u, V: v})

	return nil
}

// Neighbors returns a copy of v's adjacency list in insertion order.
func (b *Board) Neighbors(v int) ([]int, error) {
	if !b.Contains(v) {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrOutOfRange)
	}
	out := make([]int, len(b.vertices[v].Neighbors))
	copy(out, b.vertices[v].Neighbors)

	return out, nil
}

// Degree returns the length of v's adjacency list, counting duplicates.
func (b *Board) Degree(v int) (int, error) {
	if !b.Contains(v) {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrOutOfRange)
	}
	return len(b.vertices[v].Neighbors), nil
}

// EdgeCount returns the number of edges added, parallel edges included.
func (b *Board) EdgeCount() int {
	if b == nil {
		return 0
	}
	return len(b.edges)
}

// Edges returns a copy of all edges in the order they were added.
func (b *Board) Edges() []Edge {
	if b == nil {
		return nil
	}
	return append([]Edge(nil), b.edges...)
}

// Vertex returns a copy of vertex v.
func (b *Board) Vertex(v int) (Vertex, error) {
	if !b.Contains(v) {
		return Vertex{}, fmt.Errorf("Vertex(%d): %w", v, ErrOutOfRange)
	}
	out := b.vertices[v]
	out.Neighbors = append([]int(nil), out.Neighbors...)

	return out, nil
}

// adjacency exposes the raw neighbor list for in-package readers.
func (b *Board) adjacency(v int) []int { return b.vertices[v].Neighbors }
