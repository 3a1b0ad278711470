// Command matchlog prints a match recorded with copsrobbers -record.
//
//	matchlog match.parquet
package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/katalvlaran/copsrobbers/record"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "usage: matchlog <file.parquet>")
		return 2
	}
	m, err := record.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	fmt.Fprintf(stdout, "match %s on %s: %d iterations, winner %s\n", m.ID, m.Board, len(m.Rows), m.Winner)
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEQ\tREMAINING\tROLE\tSIDE\tCOPS\tROBBERS\tCAPTURED")
	for _, r := range m.Rows {
		role := r.Role
		if r.Placement {
			role += " (placement)"
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%v\t%v\t%v\n", r.Seq, r.Remaining, role, r.Side, r.Cops, r.Robbers, r.Captured)
	}
	if err = tw.Flush(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	return 0
}
