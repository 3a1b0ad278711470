package game_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/copsrobbers/board"
	"github.com/katalvlaran/copsrobbers/builder"
	"github.com/katalvlaran/copsrobbers/game"
	"github.com/katalvlaran/copsrobbers/paths"
)

func TestNew_Errors(t *testing.T) {
	ex := &scriptExchange{}
	b := pathBoard(t, 3)

	_, err := game.New(nil, game.Cops, ex)
	assert.ErrorIs(t, err, game.ErrNilBoard)

	empty, _ := board.New(1, 1, 1, 0)
	_, err = game.New(empty, game.Cops, ex)
	assert.ErrorIs(t, err, game.ErrEmptyBoard)

	_, err = game.New(b, game.Role(7), ex)
	assert.ErrorIs(t, err, game.ErrInvalidRole)

	_, err = game.New(b, game.Cops, nil)
	assert.ErrorIs(t, err, game.ErrNilExchange)

	other, err := paths.FloydWarshall(pathBoard(t, 4))
	require.NoError(t, err)
	_, err = game.New(b, game.Cops, ex, game.WithPaths(other))
	assert.ErrorIs(t, err, game.ErrPathsMismatch)
}

func TestNew_InitialState(t *testing.T) {
	g, err := game.New(pathBoard(t, 3, builder.WithMaxTurn(4)), game.Robbers, &scriptExchange{})
	require.NoError(t, err)

	assert.Equal(t, 6, g.Remaining(), "max turn plus one placement tick per side")
	assert.Equal(t, game.Cops, g.Turn())
	assert.Equal(t, game.Robbers, g.Local())
	assert.Equal(t, game.Placement, g.Phase())
	assert.Nil(t, g.Cops())
	assert.Nil(t, g.Robbers())
	assert.Equal(t, game.NoWinner, g.Winner())
}

func TestNew_LargestTurnBudget(t *testing.T) {
	b, err := board.New(1, 1, board.MaxTurnLimit, 2)
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(0, 1))

	g, err := game.New(b, game.Cops, &scriptExchange{})
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, g.Remaining())
	assert.Equal(t, game.Placement, g.Phase())
	assert.Equal(t, game.NoWinner, g.Winner())
}

// One cop, one robber, max turn 1, chain 0–1–2, local cops holding still:
// the budget runs out before the cop can reach vertex 2.
func TestRun_RobbersWinWhenBudgetRunsOut(t *testing.T) {
	var logs bytes.Buffer
	ex := &scriptExchange{reads: [][]int{{2}}}
	g, err := game.New(pathBoard(t, 3, builder.WithMaxTurn(1)), game.Cops, ex,
		game.WithLogger(log.New(&logs, "", 0)))
	require.NoError(t, err)

	res, err := g.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, game.RobbersWin, res.Winner)
	assert.Equal(t, 3, res.Turns)
	assert.Equal(t, 0, res.Remaining)
	assert.Empty(t, res.Captured)
	assert.Equal(t, [][]int{{0}, {0}}, ex.written)
	assert.Equal(t, []int{1}, ex.asked)
	assert.Equal(t, "Initial positions for cops\n"+
		"Initial positions for robbers\n"+
		"Turn for cops (remaining: 1)\n"+
		"Robbers win!\n", logs.String())
	assert.Equal(t, game.Terminated, g.Phase())
}

// Same board with enough turns: the cop walks 0→1→2 and captures.
func TestRun_CopsWinWithinBudget(t *testing.T) {
	var logs bytes.Buffer
	ex := &scriptExchange{reads: [][]int{{2}, {2}}}
	g, err := game.New(pathBoard(t, 3, builder.WithMaxTurn(3)), game.Cops, ex,
		game.WithStrategy(stepTo(2)), game.WithLogger(log.New(&logs, "", 0)))
	require.NoError(t, err)

	res, err := g.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, game.CopsWin, res.Winner)
	assert.Equal(t, 5, res.Turns)
	assert.Equal(t, []int{2}, res.Captured)
	assert.Equal(t, [][]int{{0}, {1}, {2}}, ex.written)
	assert.Equal(t, []int{}, g.Robbers())
	assert.Contains(t, logs.String(), "Captured robber at position 2\nCops win!\n")

	done, err := g.Step(context.Background())
	assert.True(t, done)
	assert.NoError(t, err)
}

func TestRun_RobberWalksIntoCop(t *testing.T) {
	ex := &scriptExchange{reads: [][]int{{2}, {1}}}
	g, err := game.New(pathBoard(t, 3, builder.WithMaxTurn(5)), game.Cops, ex,
		game.WithStrategy(stepTo(1)))
	require.NoError(t, err)

	res, err := g.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, game.CopsWin, res.Winner)
	assert.Equal(t, 4, res.Turns)
}

func TestRun_LocalRobbers(t *testing.T) {
	// three robbers on two vertices wrap around: 1, 0, 1
	b := pathBoard(t, 2, builder.WithRobbers(3), builder.WithMaxTurn(2))
	ex := &scriptExchange{reads: [][]int{{0}, {0}}}
	g, err := game.New(b, game.Robbers, ex)
	require.NoError(t, err)

	done, err := g.Step(context.Background())
	require.NoError(t, err)
	require.False(t, done)
	assert.Equal(t, []int{0}, g.Cops())
	assert.Equal(t, game.Placement, g.Phase())

	done, err = g.Step(context.Background())
	require.NoError(t, err)
	require.False(t, done)
	assert.Equal(t, [][]int{{1, 0, 1}}, ex.written)
	assert.Equal(t, []int{1, 1}, g.Robbers(), "robber placed on the cop is captured at once")
	assert.Equal(t, game.Turn, g.Phase())

	res, err := g.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, game.RobbersWin, res.Winner)
	assert.Equal(t, []int{0}, res.Captured)
}

func TestStep_InvalidExternalMoveIsFatal(t *testing.T) {
	ex := &scriptExchange{reads: [][]int{{2}, {0}}}
	g, err := game.New(pathBoard(t, 3, builder.WithMaxTurn(5)), game.Cops, ex)
	require.NoError(t, err)

	_, err = g.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, game.ErrInvalidMove)
	assert.ErrorIs(t, err, board.ErrNotAdjacent)

	var me *game.MoveError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, game.Robbers, me.Role)
	assert.Equal(t, 0, me.Token)
	assert.Equal(t, 2, me.From)
	assert.Equal(t, 0, me.To)

	assert.Equal(t, []int{2}, g.Robbers(), "rejected list is not applied")
	assert.Equal(t, game.Terminated, g.Phase())
	assert.Equal(t, game.NoWinner, g.Winner())

	done, again := g.Step(context.Background())
	assert.True(t, done)
	assert.Equal(t, err, again)
}

func TestStep_NoPartialApplication(t *testing.T) {
	b := pathBoard(t, 5, builder.WithRobbers(2))
	ex := &scriptExchange{reads: [][]int{{4, 3}, {3, 0}}}
	g, err := game.New(b, game.Cops, ex)
	require.NoError(t, err)

	_, err = g.Run(context.Background())
	var me *game.MoveError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, 1, me.Token)
	assert.Equal(t, []int{4, 3}, g.Robbers())
}

func TestStep_PlacementOutOfRange(t *testing.T) {
	ex := &scriptExchange{reads: [][]int{{3}}}
	g, err := game.New(pathBoard(t, 3), game.Cops, ex)
	require.NoError(t, err)

	_, err = g.Run(context.Background())
	assert.ErrorIs(t, err, game.ErrInvalidMove)
	assert.ErrorIs(t, err, board.ErrOutOfRange)
	assert.Nil(t, g.Robbers())
}

func TestStep_WrongCount(t *testing.T) {
	ex := &scriptExchange{reads: [][]int{{2, 1}}}
	g, err := game.New(pathBoard(t, 3), game.Cops, ex)
	require.NoError(t, err)

	_, err = g.Run(context.Background())
	assert.ErrorIs(t, err, game.ErrWrongCount)
}

func TestStep_TransportErrorIsFatal(t *testing.T) {
	boom := errors.New("pipe closed")
	ex := &scriptExchange{readErr: boom}
	g, err := game.New(pathBoard(t, 3), game.Cops, ex)
	require.NoError(t, err)

	_, err = g.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, game.Terminated, g.Phase())
}

func TestStep_InvalidLocalStrategy(t *testing.T) {
	jump := game.StrategyFunc(func(v game.View) ([]int, error) { return []int{2}, nil })
	ex := &scriptExchange{reads: [][]int{{2}}}
	g, err := game.New(pathBoard(t, 3), game.Cops, ex, game.WithStrategy(jump))
	require.NoError(t, err)

	_, err = g.Run(context.Background())
	var me *game.MoveError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, game.Cops, me.Role)
	assert.Equal(t, 0, me.From)
	assert.Equal(t, 2, me.To)
	assert.Len(t, ex.written, 1, "invalid local move is never emitted")

	short := game.StrategyFunc(func(v game.View) ([]int, error) { return nil, nil })
	ex = &scriptExchange{reads: [][]int{{2}}}
	g, err = game.New(pathBoard(t, 3), game.Cops, ex, game.WithStrategy(short))
	require.NoError(t, err)
	_, err = g.Run(context.Background())
	assert.ErrorIs(t, err, game.ErrWrongCount)

	failing := game.StrategyFunc(func(v game.View) ([]int, error) { return nil, errors.New("no idea") })
	ex = &scriptExchange{reads: [][]int{{2}}}
	g, err = game.New(pathBoard(t, 3), game.Cops, ex, game.WithStrategy(failing))
	require.NoError(t, err)
	_, err = g.Run(context.Background())
	assert.ErrorContains(t, err, "no idea")
}

func TestStep_RecorderEvents(t *testing.T) {
	rec := &memRecorder{}
	ex := &scriptExchange{reads: [][]int{{2}, {2}}}
	g, err := game.New(pathBoard(t, 3, builder.WithMaxTurn(3)), game.Cops, ex,
		game.WithStrategy(stepTo(2)), game.WithRecorder(rec))
	require.NoError(t, err)

	_, err = g.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, rec.events, 5)

	first, last := rec.events[0], rec.events[4]
	assert.Equal(t, game.Event{Seq: 0, Remaining: 5, Role: game.Cops, Side: game.Local, Placement: true, Cops: []int{0}}, first)
	assert.Equal(t, game.External, rec.events[1].Side)
	assert.True(t, rec.events[1].Placement)
	assert.False(t, rec.events[2].Placement)
	assert.Equal(t, 4, last.Seq)
	assert.Equal(t, 1, last.Remaining)
	assert.Equal(t, []int{2}, last.Captured)
	assert.Equal(t, []int{}, last.Robbers)
}

func TestStep_RecorderErrorIsFatal(t *testing.T) {
	rec := &memRecorder{err: errors.New("disk full")}
	g, err := game.New(pathBoard(t, 3), game.Cops, &scriptExchange{}, game.WithRecorder(rec))
	require.NoError(t, err)

	done, err := g.Step(context.Background())
	assert.True(t, done)
	assert.ErrorContains(t, err, "disk full")
}

func TestRole(t *testing.T) {
	for in, want := range map[string]game.Role{"0": game.Cops, "1": game.Robbers, "Cops": game.Cops, " robbers ": game.Robbers} {
		got, err := game.ParseRole(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := game.ParseRole("2")
	assert.ErrorIs(t, err, game.ErrInvalidRole)

	assert.Equal(t, game.Robbers, game.Cops.Other())
	assert.Equal(t, "robbers", game.Robbers.String())
	assert.Equal(t, "cops", game.CopsWin.String())
	assert.Equal(t, "turn", game.Turn.String())
}
