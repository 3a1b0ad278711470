package game

import (
	"log"

	"github.com/katalvlaran/copsrobbers/paths"
)

// Option configures a Game.
type Option func(*Game)

// WithStrategy sets the local move policy. Nil keeps Hold.
func WithStrategy(s Strategy) Option {
	return func(g *Game) {
		if s != nil {
			g.strategy = s
		}
	}
}

// WithPaths attaches a precomputed path table, exposed to the Strategy.
func WithPaths(t *paths.Table) Option {
	return func(g *Game) { g.table = t }
}

// WithLogger sets the diagnostic logger. Nil keeps the discarding default.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithRecorder receives every played iteration.
func WithRecorder(r Recorder) Option {
	return func(g *Game) { g.recorder = r }
}
