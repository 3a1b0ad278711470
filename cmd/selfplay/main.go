// Command selfplay runs a whole match in one process: a cops player and a
// robbers player, each a full game.Game, talking over in-memory pipes in the
// same line protocol copsrobbers uses on stdio.
//
//	selfplay -cops chase -robbers evade board.txt
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/copsrobbers/board"
	"github.com/katalvlaran/copsrobbers/game"
	"github.com/katalvlaran/copsrobbers/paths"
	"github.com/katalvlaran/copsrobbers/strategy"
	"github.com/katalvlaran/copsrobbers/transport"
)

var errDisagree = errors.New("selfplay: players disagree on the outcome")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("selfplay", flag.ContinueOnError)
	fs.SetOutput(stderr)
	copsName := fs.String("cops", "chase", "cops strategy")
	robbersName := fs.String("robbers", "evade", "robbers strategy")
	quiet := fs.Bool("quiet", false, "suppress per-turn diagnostics")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: selfplay [flags] <board-file>")
		return 2
	}

	b, err := board.LoadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	res, err := play(ctx, b, *copsName, *robbersName, logWriter(stderr, *quiet))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	fmt.Fprintf(stdout, "winner: %s after %d iterations, captured at %v\n", res.Winner, res.Turns, res.Captured)
	return 0
}

func logWriter(w io.Writer, quiet bool) io.Writer {
	if quiet {
		return io.Discard
	}
	return w
}

// play wires two Games back to back and runs them until both terminate.
func play(ctx context.Context, b *board.Board, copsName, robbersName string, diag io.Writer) (game.Result, error) {
	tbl, err := paths.FloydWarshall(b)
	if err != nil {
		return game.Result{}, err
	}

	diag = &lockedWriter{w: diag}
	copsR, robbersW := io.Pipe()
	robbersR, copsW := io.Pipe()

	cops, err := player(b, tbl, game.Cops, copsName, transport.NewLine(copsR, copsW), diag)
	if err != nil {
		return game.Result{}, err
	}
	robbers, err := player(b, tbl, game.Robbers, robbersName, transport.NewLine(robbersR, robbersW), diag)
	if err != nil {
		return game.Result{}, err
	}

	var copsRes, robbersRes game.Result
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		copsRes, err = cops.Run(gctx)
		copsW.CloseWithError(err)
		return err
	})
	g.Go(func() error {
		var err error
		robbersRes, err = robbers.Run(gctx)
		robbersW.CloseWithError(err)
		return err
	})
	if err = g.Wait(); err != nil {
		return copsRes, err
	}

	if copsRes.Winner != robbersRes.Winner {
		return copsRes, fmt.Errorf("%w: cops see %s, robbers see %s", errDisagree, copsRes.Winner, robbersRes.Winner)
	}
	return copsRes, nil
}

func player(b *board.Board, tbl *paths.Table, role game.Role, name string, line *transport.Line, diag io.Writer) (*game.Game, error) {
	s, err := strategy.ByName(name, role, strategy.DefaultCacheSize)
	if err != nil {
		return nil, err
	}
	return game.New(b, role, line,
		game.WithPaths(tbl),
		game.WithStrategy(s),
		game.WithLogger(log.New(diag, "["+role.String()+"] ", 0)),
	)
}

// lockedWriter serializes the two players' log lines.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
