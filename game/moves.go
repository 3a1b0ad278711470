package game

import (
	"context"
	"fmt"

	"github.com/katalvlaran/copsrobbers/board"
)

// initialPositions is the deterministic local placement: cops fill vertices
// from 0 upwards, robbers from Size()-1 downwards, wrapping around when there
// are more tokens than vertices.
func (g *Game) initialPositions(r Role) []int {
	n := g.board.Size()
	count := g.tokenCount(r)
	pos := make([]int, count)
	for i := range pos {
		if r == Cops {
			pos[i] = i % n
		} else {
			pos[i] = n - 1 - i%n
		}
	}

	return pos
}

func (g *Game) playLocal(r Role, placement bool) error {
	var next []int
	if placement {
		next = g.initialPositions(r)
	} else {
		proposed, err := g.strategy.Next(g.view(r))
		if err != nil {
			return fmt.Errorf("game: %s strategy: %w", r, err)
		}
		if err = g.validate(r, proposed); err != nil {
			return err
		}
		next = clone(proposed)
	}
	g.setPositions(r, next)

	if err := g.exchange.WritePositions(next); err != nil {
		return fmt.Errorf("game: write %s positions: %w", r, err)
	}
	return nil
}

func (g *Game) playExternal(ctx context.Context, r Role, placement bool) error {
	count := g.tokenCount(r)
	pos, err := g.exchange.ReadPositions(ctx, count)
	if err != nil {
		return fmt.Errorf("game: read %s positions: %w", r, err)
	}
	if placement {
		err = g.validatePlacement(r, pos, count)
	} else {
		err = g.validate(r, pos)
	}
	if err != nil {
		return err
	}
	g.setPositions(r, clone(pos))

	return nil
}

// validatePlacement accepts any in-range vertex for every token.
func (g *Game) validatePlacement(r Role, pos []int, count int) error {
	if len(pos) != count {
		return &MoveError{Role: r, Token: len(pos), From: -1, To: -1,
			Err: fmt.Errorf("%w: got %d, want %d", ErrWrongCount, len(pos), count)}
	}
	for i, p := range pos {
		if !g.board.Contains(p) {
			return &MoveError{Role: r, Token: i, From: -1, To: p,
				Err: fmt.Errorf("placement at %d with size %d: %w", p, g.board.Size(), board.ErrOutOfRange)}
		}
	}
	return nil
}

// validate checks every token move against the board before anything is applied.
func (g *Game) validate(r Role, next []int) error {
	cur := g.positions(r)
	if len(next) != len(cur) {
		return &MoveError{Role: r, Token: len(next), From: -1, To: -1,
			Err: fmt.Errorf("%w: got %d, want %d", ErrWrongCount, len(next), len(cur))}
	}
	for i := range cur {
		if err := g.board.CheckMove(cur[i], next[i]); err != nil {
			return &MoveError{Role: r, Token: i, From: cur[i], To: next[i], Err: err}
		}
	}
	return nil
}
