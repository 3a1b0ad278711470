package game

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/katalvlaran/copsrobbers/board"
	"github.com/katalvlaran/copsrobbers/paths"
)

// placementTicks is the number of extra iterations reserved for placement.
const placementTicks = 2

// Game is the state of a single match.
type Game struct {
	board    *board.Board
	table    *paths.Table
	local    Role
	exchange Exchange
	strategy Strategy
	logger   *log.Logger
	recorder Recorder

	cops      []int // nil until placed
	robbers   []int // nil until placed
	remaining int
	turn      Role
	seq       int
	captured  []int
	winner    Winner
	aborted   error
}

// New prepares a match on b where this process plays local and ex talks to
// the adversary.
//
// Errors: ErrNilBoard, ErrEmptyBoard, ErrInvalidRole, ErrNilExchange,
// ErrPathsMismatch.
func New(b *board.Board, local Role, ex Exchange, opts ...Option) (*Game, error) {
	switch {
	case b == nil:
		return nil, ErrNilBoard
	case b.Size() == 0:
		return nil, ErrEmptyBoard
	case !local.valid():
		return nil, fmt.Errorf("%w: %d", ErrInvalidRole, int(local))
	case ex == nil:
		return nil, ErrNilExchange
	}

	g := &Game{
		board:     b,
		local:     local,
		exchange:  ex,
		strategy:  Hold,
		logger:    log.New(io.Discard, "", 0),
		remaining: b.MaxTurn() + placementTicks,
		turn:      Cops,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.table != nil && g.table.Size() != b.Size() {
		return nil, fmt.Errorf("%w: table size %d, board size %d", ErrPathsMismatch, g.table.Size(), b.Size())
	}

	return g, nil
}

// Local returns the role played by this process.
func (g *Game) Local() Role { return g.local }

// Turn returns the role to move next.
func (g *Game) Turn() Role { return g.turn }

// Remaining returns the remaining-turn counter.
func (g *Game) Remaining() int { return g.remaining }

// Winner returns the outcome, NoWinner while the match is running or aborted.
func (g *Game) Winner() Winner { return g.winner }

// Cops returns a copy of the cop positions, nil before placement.
func (g *Game) Cops() []int { return clone(g.cops) }

// Robbers returns a copy of the remaining robber positions, nil before placement.
func (g *Game) Robbers() []int { return clone(g.robbers) }

// Phase reports the state of the turn machine.
func (g *Game) Phase() Phase {
	switch {
	case g.winner != NoWinner || g.aborted != nil:
		return Terminated
	case g.cops == nil || g.robbers == nil:
		return Placement
	default:
		return Turn
	}
}

// Result summarizes the match so far.
func (g *Game) Result() Result {
	return Result{
		Winner:    g.winner,
		Turns:     g.seq,
		Captured:  clone(g.captured),
		Remaining: g.remaining,
	}
}

// Run plays Step until the match terminates.
func (g *Game) Run(ctx context.Context) (Result, error) {
	for {
		done, err := g.Step(ctx)
		if err != nil {
			return g.Result(), err
		}
		if done {
			return g.Result(), nil
		}
	}
}

// Step plays one iteration of the turn loop. It returns done=true once the
// match has terminated, either by a decided winner or by a fatal error.
func (g *Game) Step(ctx context.Context) (bool, error) {
	if g.aborted != nil {
		return true, g.aborted
	}
	if g.winner != NoWinner {
		return true, nil
	}
	if g.over() {
		g.finish()
		return true, nil
	}

	role := g.turn
	placement := g.positions(role) == nil
	if g.remaining > g.board.MaxTurn() {
		g.logger.Printf("Initial positions for %s", role)
	} else {
		g.logger.Printf("Turn for %s (remaining: %d)", role, g.remaining)
	}

	side := External
	var err error
	if role == g.local {
		side = Local
		err = g.playLocal(role, placement)
	} else {
		err = g.playExternal(ctx, role, placement)
	}
	if err != nil {
		return true, g.abort(err)
	}

	caught := g.Capture()
	if g.recorder != nil {
		ev := Event{
			Seq:       g.seq,
			Remaining: g.remaining,
			Role:      role,
			Side:      side,
			Placement: placement,
			Cops:      g.Cops(),
			Robbers:   g.Robbers(),
			Captured:  caught,
		}
		if err = g.recorder.Record(ev); err != nil {
			return true, g.abort(fmt.Errorf("game: record iteration %d: %w", g.seq, err))
		}
	}

	g.seq++
	g.turn = role.Other()
	g.remaining--

	return false, nil
}

func (g *Game) over() bool {
	return (g.robbers != nil && len(g.robbers) == 0) || g.remaining <= 0
}

func (g *Game) finish() {
	if len(g.robbers) == 0 && g.robbers != nil {
		g.winner = CopsWin
		g.logger.Print("Cops win!")
		return
	}
	g.winner = RobbersWin
	g.logger.Print("Robbers win!")
}

func (g *Game) abort(err error) error {
	g.aborted = err
	return err
}

func (g *Game) positions(r Role) []int {
	if r == Cops {
		return g.cops
	}
	return g.robbers
}

// setPositions stores pos; a placed role never has a nil slice.
func (g *Game) setPositions(r Role, pos []int) {
	if pos == nil {
		pos = []int{}
	}
	if r == Cops {
		g.cops = pos
	} else {
		g.robbers = pos
	}
}

func (g *Game) tokenCount(r Role) int {
	if cur := g.positions(r); cur != nil {
		return len(cur)
	}
	if r == Cops {
		return g.board.Cops()
	}
	return g.board.Robbers()
}

func (g *Game) view(r Role) View {
	return View{
		Board:     g.board,
		Paths:     g.table,
		Role:      r,
		Cops:      g.Cops(),
		Robbers:   g.Robbers(),
		Remaining: g.remaining,
	}
}

func clone(s []int) []int {
	if s == nil {
		return nil
	}
	return append(make([]int, 0, len(s)), s...)
}
