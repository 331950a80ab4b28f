// SPDX-License-Identifier: MIT

// Command sdpconv reads an SDP relaxation as JSON, converts it to
// lower-triangular per-constraint triples and loads it into an in-memory
// problem, printing a summary and the fingerprint of the converted data.
//
// Usage:
//
//	sdpconv [-in relaxation.json] [-layout square|packed] [-triplets] [-quiet]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/sdpconv/block"
	"github.com/katalvlaran/sdpconv/convert"
	"github.com/katalvlaran/sdpconv/solver"
	"github.com/katalvlaran/sdpconv/triplet"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process globals; it returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sdpconv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inPath := fs.String("in", "", "relaxation JSON file (default stdin)")
	layoutName := fs.String("layout", block.DefaultLayout.String(), "row encoding of entries: square or packed")
	dump := fs.Bool("triplets", false, "print every emitted triple")
	quiet := fs.Bool("quiet", false, "suppress progress lines")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	layout, err := block.ParseLayout(*layoutName)
	if err != nil {
		fmt.Fprintln(stderr, "sdpconv:", err)
		return 2
	}

	in := stdin
	if *inPath != "" {
		fh, err := os.Open(*inPath)
		if err != nil {
			fmt.Fprintln(stderr, "sdpconv:", err)
			return 1
		}
		defer fh.Close()
		in = fh
	}

	rel, err := readRelaxation(in, layout)
	if err != nil {
		fmt.Fprintln(stderr, "sdpconv:", err)
		return 1
	}

	opts := []solver.Option{solver.WithLayout(layout)}
	if !*quiet {
		opts = append(opts, solver.WithLogWriter(stdout))
	}
	p := solver.NewProblem()
	res, err := solver.Load(rel, p, opts...)
	if err != nil {
		fmt.Fprintln(stderr, "sdpconv:", err)
		return 1
	}

	printSummary(stdout, res, *dump)

	return 0
}

func printSummary(w io.Writer, res *convert.Result, dump bool) {
	fmt.Fprintf(w, "dim %d\n", res.Dim)
	fmt.Fprintf(w, "constraints %d\n", len(res.Constraints))
	fmt.Fprintf(w, "nnz C %d\n", res.Cost.Len())
	for i, t := range res.Constraints {
		fmt.Fprintf(w, "nnz A%d %d\n", i+1, t.Len())
	}
	fmt.Fprintf(w, "fingerprint %s\n", res.FingerprintHex())

	if !dump {
		return
	}
	printTriplets(w, "C", res.Cost)
	for i, t := range res.Constraints {
		printTriplets(w, fmt.Sprintf("A%d", i+1), t)
	}
}

func printTriplets(w io.Writer, name string, t triplet.Triplets) {
	for k := range t.V {
		fmt.Fprintf(w, "%s %d %d %g\n", name, t.I[k], t.J[k], t.V[k])
	}
}
