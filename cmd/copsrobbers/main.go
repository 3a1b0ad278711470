// Command copsrobbers plays one side of a Cops and Robbers match.
//
// The board is read from the file named by the first argument; the second
// argument selects the local role (0 cops, 1 robbers). Local positions are
// written to stdout and the adversary's positions are read from stdin, one
// integer per line. Diagnostics go to stderr.
//
// Exit status: 0 when the match ends, 255 for usage, configuration or board
// errors, 1 for an invalid move, a transport failure or a recorder failure.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/katalvlaran/copsrobbers/board"
	"github.com/katalvlaran/copsrobbers/config"
	"github.com/katalvlaran/copsrobbers/game"
	"github.com/katalvlaran/copsrobbers/paths"
	"github.com/katalvlaran/copsrobbers/record"
	"github.com/katalvlaran/copsrobbers/strategy"
	"github.com/katalvlaran/copsrobbers/transport"
)

const (
	exitOK    = 0
	exitMatch = 1
	exitSetup = 255
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, config.ErrUsage) {
			fmt.Fprint(stderr, config.Usage)
		}
		return exitSetup
	}

	logger := log.New(stderr, "", 0)
	if cfg.Quiet {
		logger.SetOutput(io.Discard)
	}

	b, err := board.LoadFile(cfg.BoardPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitSetup
	}
	tbl, err := paths.FloydWarshall(b)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitSetup
	}
	if comps := paths.Components(b); len(comps) > 1 {
		logger.Printf("warning: board has %d connected components", len(comps))
	}

	strat, err := strategy.ByName(cfg.Strategy, cfg.Role, cfg.CacheSize)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitSetup
	}

	opts := []game.Option{
		game.WithPaths(tbl),
		game.WithStrategy(strat),
		game.WithLogger(logger),
	}
	var rec *record.Recorder
	if cfg.RecordPath != "" {
		rec = record.NewRecorder(cfg.RecordPath, filepath.Base(cfg.BoardPath))
		opts = append(opts, game.WithRecorder(rec))
	}

	line := transport.NewLine(stdin, stdout, transport.WithTimeout(cfg.Timeout))
	g, err := game.New(b, cfg.Role, line, opts...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitSetup
	}

	res, err := g.Run(ctx)
	if rec != nil {
		rec.Finish(res.Winner)
		if cerr := rec.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitMatch
	}

	return exitOK
}
