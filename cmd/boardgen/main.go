// Command boardgen writes a generated board description to stdout.
//
//	boardgen -kind grid -rows 3 -cols 4 -cops 2 -robbers 1 -max-turn 12
//	boardgen -kind map -map level.txt -conn 8
//
// Map files use '#' for walls and '.' for floor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/copsrobbers/board"
	"github.com/katalvlaran/copsrobbers/builder"
	"github.com/katalvlaran/copsrobbers/gridgraph"
)

var (
	errUnknownKind = errors.New("boardgen: unknown kind")
	errConn        = errors.New("boardgen: -conn must be 4 or 8")
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("boardgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	kind := fs.String("kind", "path", "topology: path, cycle, grid, star, complete, map")
	n := fs.Int("n", 5, "vertex count (all kinds but grid)")
	rows := fs.Int("rows", 3, "grid rows")
	cols := fs.Int("cols", 3, "grid columns")
	cops := fs.Int("cops", 1, "number of cops")
	robbers := fs.Int("robbers", 1, "number of robbers")
	maxTurn := fs.Int("max-turn", builder.DefaultMaxTurn, "turn budget")
	mapPath := fs.String("map", "", "map file (kind map)")
	conn := fs.Int("conn", 4, "map connectivity: 4 or 8")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var (
		b   *board.Board
		err error
	)
	if *kind == "map" {
		b, err = fromMap(*mapPath, *conn, *cops, *robbers, *maxTurn)
	} else {
		var con builder.Constructor
		if con, err = constructor(*kind, *n, *rows, *cols); err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		b, err = builder.BuildBoard([]builder.Option{
			builder.WithCops(*cops),
			builder.WithRobbers(*robbers),
			builder.WithMaxTurn(*maxTurn),
		}, con)
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if _, err = b.WriteTo(stdout); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	return 0
}

func constructor(kind string, n, rows, cols int) (builder.Constructor, error) {
	switch kind {
	case "path":
		return builder.Path(n), nil
	case "cycle":
		return builder.Cycle(n), nil
	case "grid":
		return builder.Grid(rows, cols), nil
	case "star":
		return builder.Star(n), nil
	case "complete":
		return builder.Complete(n), nil
	}
	return nil, fmt.Errorf("%w: %q", errUnknownKind, kind)
}

func fromMap(path string, conn, cops, robbers, maxTurn int) (*board.Board, error) {
	opts := []gridgraph.Option{gridgraph.WithTokens(cops, robbers), gridgraph.WithMaxTurn(maxTurn)}
	switch conn {
	case 4:
	case 8:
		opts = append(opts, gridgraph.WithDiagonals())
	default:
		return nil, errConn
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("boardgen: %w", err)
	}
	defer f.Close()

	tr, err := gridgraph.ParseMap(f)
	if err != nil {
		return nil, fmt.Errorf("boardgen: %s: %w", path, err)
	}
	return tr.Board(opts...)
}
