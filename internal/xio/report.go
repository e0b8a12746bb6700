// Package xio wires the search engine's Reporter callbacks to the
// line-oriented stdout protocol the CLI speaks: one flushed record per
// line, so a caller piping output through another process sees
// progress incrementally rather than in one buffered burst at exit.
package xio

import (
	"bufio"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/crossplay/backend/internal/search"
)

// NewRunID mints and logs a fresh identifier for one solver run. It has
// no equivalent in the original tool (a single process never overlaps
// with itself); it exists so operators aggregating stdout/stderr from
// several concurrent invocations can tell their CHOICES/CELL lines
// apart.
func NewRunID() string {
	id := uuid.New().String()
	log.Printf("run %s starting", id)
	return id
}

// StdoutReporter builds a search.Reporter that writes to w, flushing
// after every record.
func StdoutReporter(w io.Writer) search.Reporter {
	bw := bufio.NewWriter(w)
	return search.Reporter{
		Choices: func(n int) {
			fmt.Fprintf(bw, "CHOICES %d\n", n)
			bw.Flush()
		},
		Trace: func(row, col, blacksNow, blacksForcedFuture, blacksSymExcess int, rows []string) {
			fmt.Fprintf(bw, "CELL %d %d\n", row, col)
			writeBlackSquares(bw, blacksNow, blacksForcedFuture, blacksSymExcess)
			for _, row := range rows {
				fmt.Fprintln(bw, row)
			}
			bw.Flush()
		},
		Accepted: func() {
			fmt.Fprintln(bw, "SOLUTION FOUND")
			bw.Flush()
		},
	}
}

// writeBlackSquares renders the "BLACK SQUARES n1[+n2[/n3]]" header: n2
// (forced-future count) and n3 (symmetric excess) are included only
// when non-zero, except that a non-zero n3 with a zero n2 is written as
// "+0/n3", matching the original tool's terse breakdown.
func writeBlackSquares(w io.Writer, n1, n2, n3 int) {
	fmt.Fprintf(w, "BLACK SQUARES %d", n1)
	switch {
	case n2 > 0:
		fmt.Fprintf(w, "+%d", n2)
		if n3 > 0 {
			fmt.Fprintf(w, "/%d", n3)
		}
	case n3 > 0:
		fmt.Fprintf(w, "+0/%d", n3)
	}
	fmt.Fprintln(w)
}
