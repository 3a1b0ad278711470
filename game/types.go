package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/copsrobbers/board"
	"github.com/katalvlaran/copsrobbers/paths"
)

// Sentinel errors for match setup and play.
var (
	ErrNilBoard      = errors.New("game: board is nil")
	ErrEmptyBoard    = errors.New("game: board has no vertices")
	ErrInvalidRole   = errors.New("game: invalid role")
	ErrNilExchange   = errors.New("game: exchange is nil")
	ErrPathsMismatch = errors.New("game: path table does not match board")

	// ErrInvalidMove matches every *MoveError.
	ErrInvalidMove = errors.New("game: invalid move")

	// ErrWrongCount indicates a position list of the wrong length.
	ErrWrongCount = errors.New("game: wrong number of positions")
)

// Role is one side of the match. The numeric values are the ones used on
// the command line.
type Role int

const (
	Cops Role = iota
	Robbers
)

func (r Role) String() string {
	switch r {
	case Cops:
		return "cops"
	case Robbers:
		return "robbers"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Other returns the opposing role.
func (r Role) Other() Role {
	if r == Cops {
		return Robbers
	}
	return Cops
}

func (r Role) valid() bool { return r == Cops || r == Robbers }

// ParseRole accepts "0"/"1" and "cops"/"robbers" (case-insensitive).
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "cops", "cop":
		return Cops, nil
	case "1", "robbers", "robber":
		return Robbers, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

// Winner is the outcome of a finished match.
type Winner int

const (
	NoWinner Winner = iota
	CopsWin
	RobbersWin
)

func (w Winner) String() string {
	switch w {
	case CopsWin:
		return "cops"
	case RobbersWin:
		return "robbers"
	default:
		return "none"
	}
}

// Phase is the coarse state of the turn machine.
type Phase int

const (
	Placement Phase = iota
	Turn
	Terminated
)

func (p Phase) String() string {
	switch p {
	case Placement:
		return "placement"
	case Turn:
		return "turn"
	default:
		return "terminated"
	}
}

// Side tells whether a move was produced locally or read from the adversary.
type Side int

const (
	Local Side = iota
	External
)

func (s Side) String() string {
	if s == Local {
		return "local"
	}
	return "external"
}

// MoveError reports a rejected position list. From is -1 during placement.
type MoveError struct {
	Role  Role
	Token int
	From  int
	To    int
	Err   error
}

func (e *MoveError) Error() string {
	if e.From < 0 {
		return fmt.Sprintf("game: invalid %s placement for token %d at %d: %v", e.Role, e.Token, e.To, e.Err)
	}
	return fmt.Sprintf("game: invalid %s move for token %d: %d→%d: %v", e.Role, e.Token, e.From, e.To, e.Err)
}

func (e *MoveError) Unwrap() error { return e.Err }

// Is makes every *MoveError match ErrInvalidMove.
func (e *MoveError) Is(target error) bool { return target == ErrInvalidMove }

// Exchange moves position lists between this process and the adversary.
// transport.Line is the production implementation.
type Exchange interface {
	ReadPositions(ctx context.Context, n int) ([]int, error)
	WritePositions(pos []int) error
}

// View is the read-only snapshot handed to a Strategy. Slices are copies.
type View struct {
	Board     *board.Board
	Paths     *paths.Table // nil unless the Game was built WithPaths
	Role      Role
	Cops      []int
	Robbers   []int
	Remaining int
}

// Own returns the positions of the role to move.
func (v View) Own() []int {
	if v.Role == Cops {
		return v.Cops
	}
	return v.Robbers
}

// Strategy chooses the next positions of View.Role: exactly one entry per
// token, each reachable in one move. Violations abort the match.
type Strategy interface {
	Next(v View) ([]int, error)
}

// StrategyFunc adapts a function to Strategy.
type StrategyFunc func(v View) ([]int, error)

func (f StrategyFunc) Next(v View) ([]int, error) { return f(v) }

// Hold keeps every token where it is.
var Hold = StrategyFunc(func(v View) ([]int, error) {
	return append([]int(nil), v.Own()...), nil
})

// Event is one played iteration of the turn loop.
type Event struct {
	Seq       int // 0-based iteration index
	Remaining int // counter value while the iteration was played
	Role      Role
	Side      Side
	Placement bool
	Cops      []int
	Robbers   []int
	Captured  []int // vertices where robbers were captured this iteration
}

// Recorder receives every Event. A Recorder error aborts the match.
type Recorder interface {
	Record(e Event) error
}

// Result summarizes a finished match.
type Result struct {
	Winner    Winner
	Turns     int   // iterations played, placements included
	Captured  []int // capture vertices in capture order
	Remaining int
}
