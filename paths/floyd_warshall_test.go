package paths_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/copsrobbers/board"
	"github.com/katalvlaran/copsrobbers/builder"
	"github.com/katalvlaran/copsrobbers/paths"
)

func readBoard(t *testing.T, desc string) *board.Board {
	t.Helper()
	b, err := board.ReadFrom(strings.NewReader(desc))
	require.NoError(t, err)

	return b
}

func build(t *testing.T, con builder.Constructor) *board.Board {
	t.Helper()
	b, err := builder.BuildBoard(nil, con)
	require.NoError(t, err)

	return b
}

// FloydWarshallSuite exercises the all-pairs table on small fixed boards.
type FloydWarshallSuite struct {
	suite.Suite
}

func (s *FloydWarshallSuite) table(desc string) *paths.Table {
	b := readBoard(s.T(), desc)
	tab, err := paths.FloydWarshall(b)
	require.NoError(s.T(), err)
	require.Equal(s.T(), b.Size(), tab.Size())

	return tab
}

func (s *FloydWarshallSuite) dist(tab *paths.Table, u, v int) int {
	d, err := tab.Distance(u, v)
	require.NoError(s.T(), err)
	return d
}

func (s *FloydWarshallSuite) next(tab *paths.Table, u, v int) int {
	n, err := tab.Next(u, v)
	require.NoError(s.T(), err)
	return n
}

// TestChain checks distances and first hops on 0–1–2.
func (s *FloydWarshallSuite) TestChain() {
	tab := s.table("Cops: 1\nRobbers: 1\nMax turn: 1\n" +
		"Vertices: 3\n0 0\n0 0\n0 0\n" + "Edges: 2\n0 1\n1 2\n")

	require.Equal(s.T(), 0, s.dist(tab, 0, 0))
	require.Equal(s.T(), 1, s.dist(tab, 0, 1))
	require.Equal(s.T(), 2, s.dist(tab, 0, 2))
	require.Equal(s.T(), 1, s.dist(tab, 1, 2))

	require.Equal(s.T(), 0, s.next(tab, 0, 0))
	require.Equal(s.T(), 1, s.next(tab, 0, 1))
	require.Equal(s.T(), 1, s.next(tab, 0, 2))
	require.Equal(s.T(), 2, s.next(tab, 1, 2))
}

// TestSingle checks the one-vertex board.
func (s *FloydWarshallSuite) TestSingle() {
	tab := s.table("Cops: 1\nRobbers: 1\nMax turn: 1\nVertices: 1\n0 0\nEdges: 0\n")
	require.Equal(s.T(), 0, s.dist(tab, 0, 0))
	require.Equal(s.T(), 0, s.next(tab, 0, 0))
}

// TestSquare checks the 4-cycle 0–1–2–3–0.
func (s *FloydWarshallSuite) TestSquare() {
	tab := s.table("Cops: 1\nRobbers: 1\nMax turn: 1\n" +
		"Vertices: 4\n0 0\n0 0\n0 0\n0 0\n" + "Edges: 4\n0 1\n1 2\n2 3\n3 0\n")
	require.Equal(s.T(), 0, s.dist(tab, 0, 0))
	require.Equal(s.T(), 1, s.dist(tab, 0, 3))
	require.Equal(s.T(), 2, s.dist(tab, 0, 2))
	// both 0→1→2 and 0→3→2 are shortest; w=1 is found first
	require.Equal(s.T(), 1, s.next(tab, 0, 2))
}

// TestDisconnected checks the explicit no-path markers.
func (s *FloydWarshallSuite) TestDisconnected() {
	tab := s.table("Cops: 1\nRobbers: 1\nMax turn: 1\nVertices: 3\n\n\n\nEdges: 1\n0 1\n")
	require.Equal(s.T(), paths.Unreachable, s.dist(tab, 0, 2))
	require.Equal(s.T(), paths.NoHop, s.next(tab, 2, 0))
	require.False(s.T(), tab.Reachable(0, 2))
	require.True(s.T(), tab.Reachable(1, 0))

	_, err := tab.Path(0, 2)
	require.ErrorIs(s.T(), err, paths.ErrNoPath)
}

// TestSelfLoopAndParallelEdges keeps dist(v,v)=0 and unit parallel edges.
func (s *FloydWarshallSuite) TestSelfLoopAndParallelEdges() {
	tab := s.table("Cops: 1\nRobbers: 1\nMax turn: 1\nVertices: 2\n\n\nEdges: 3\n0 0\n0 1\n1 0\n")
	require.Equal(s.T(), 0, s.dist(tab, 0, 0))
	require.Equal(s.T(), 0, s.next(tab, 0, 0))
	require.Equal(s.T(), 1, s.dist(tab, 1, 0))
}

func TestFloydWarshallSuite(t *testing.T) {
	suite.Run(t, new(FloydWarshallSuite))
}

func TestFloydWarshall_NilBoard(t *testing.T) {
	tab, err := paths.FloydWarshall(nil)
	assert.Nil(t, tab)
	assert.ErrorIs(t, err, paths.ErrNilBoard)
}

func TestQueries_Errors(t *testing.T) {
	var zero *paths.Table
	_, err := zero.Distance(0, 0)
	assert.ErrorIs(t, err, paths.ErrNotComputed)
	_, err = zero.Next(0, 0)
	assert.ErrorIs(t, err, paths.ErrNotComputed)
	_, err = (&paths.Table{}).Distance(0, 0)
	assert.ErrorIs(t, err, paths.ErrNotComputed)
	assert.False(t, zero.Reachable(0, 0))

	tab, err := paths.FloydWarshall(build(t, builder.Path(3)))
	require.NoError(t, err)
	for _, q := range [][2]int{{-1, 0}, {0, 3}, {3, 3}, {10, 10}} {
		_, err = tab.Distance(q[0], q[1])
		assert.ErrorIs(t, err, paths.ErrOutOfRange, "Distance%v", q)
		_, err = tab.Next(q[0], q[1])
		assert.ErrorIs(t, err, paths.ErrOutOfRange, "Next%v", q)
		_, err = tab.Path(q[0], q[1])
		assert.ErrorIs(t, err, paths.ErrOutOfRange, "Path%v", q)
	}
}

func TestFloydWarshall_EmptyBoard(t *testing.T) {
	b, err := board.New(0, 0, 0, 0)
	require.NoError(t, err)
	tab, err := paths.FloydWarshall(b)
	require.NoError(t, err)
	assert.Equal(t, 0, tab.Size())
	_, err = tab.Distance(0, 0)
	assert.ErrorIs(t, err, paths.ErrOutOfRange)
}

// Properties over several generated boards: zero diagonal, symmetry,
// agreement with BFS levels and path reconstruction consistency.
func TestFloydWarshall_Properties(t *testing.T) {
	boards := map[string]builder.Constructor{
		"path7":     builder.Path(7),
		"cycle9":    builder.Cycle(9),
		"grid4x5":   builder.Grid(4, 5),
		"star6":     builder.Star(6),
		"complete5": builder.Complete(5),
	}
	for name, con := range boards {
		t.Run(name, func(t *testing.T) {
			b := build(t, con)
			tab, err := paths.FloydWarshall(b)
			require.NoError(t, err)

			n := b.Size()
			for u := 0; u < n; u++ {
				levels, err := paths.BFS(b, u)
				require.NoError(t, err)

				for v := 0; v < n; v++ {
					d, err := tab.Distance(u, v)
					require.NoError(t, err)
					back, err := tab.Distance(v, u)
					require.NoError(t, err)
					assert.Equal(t, d, back, "symmetry %d,%d", u, v)
					assert.Equal(t, levels.Depth[v], d, "BFS depth %d→%d", u, v)

					route, err := tab.Path(u, v)
					require.NoError(t, err)
					require.Len(t, route, d+1)
					assert.Equal(t, u, route[0])
					assert.Equal(t, v, route[len(route)-1])
					for i := 1; i < len(route); i++ {
						assert.True(t, b.IsValidMove(route[i-1], route[i]), "route step %v", route)
					}

					hop, err := tab.Next(u, v)
					require.NoError(t, err)
					if u == v {
						assert.Equal(t, 0, d)
						assert.Equal(t, u, hop)
					} else {
						assert.Equal(t, route[1], hop)
					}
				}
			}
		})
	}
}
