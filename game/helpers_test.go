package game_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/copsrobbers/board"
	"github.com/katalvlaran/copsrobbers/builder"
	"github.com/katalvlaran/copsrobbers/game"
)

var errScriptDone = errors.New("script exhausted")

// scriptExchange replays canned adversary answers and keeps what we wrote.
type scriptExchange struct {
	reads   [][]int
	asked   []int
	written [][]int
	readErr error
}

func (s *scriptExchange) ReadPositions(_ context.Context, n int) ([]int, error) {
	s.asked = append(s.asked, n)
	if s.readErr != nil {
		return nil, s.readErr
	}
	if len(s.reads) == 0 {
		return nil, errScriptDone
	}
	next := s.reads[0]
	s.reads = s.reads[1:]

	return next, nil
}

func (s *scriptExchange) WritePositions(pos []int) error {
	s.written = append(s.written, append([]int(nil), pos...))
	return nil
}

// memRecorder collects events.
type memRecorder struct {
	events []game.Event
	err    error
}

func (m *memRecorder) Record(e game.Event) error {
	m.events = append(m.events, e)
	return m.err
}

func pathBoard(t *testing.T, n int, opts ...builder.Option) *board.Board {
	t.Helper()
	b, err := builder.BuildBoard(opts, builder.Path(n))
	require.NoError(t, err)

	return b
}

// stepTo moves every own token one hop toward target along the chain.
func stepTo(target int) game.Strategy {
	return game.StrategyFunc(func(v game.View) ([]int, error) {
		out := make([]int, 0, len(v.Own()))
		for _, p := range v.Own() {
			switch {
			case p < target:
				p++
			case p > target:
				p--
			}
			out = append(out, p)
		}
		return out, nil
	})
}
