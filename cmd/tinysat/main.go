// Command tinysat reads a DIMACS CNF file and reports whether it is
// satisfiable, printing a solution when one exists.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/kvesteri/tinysat"
	"github.com/kvesteri/tinysat/brute"
	"github.com/kvesteri/tinysat/dimacs"
	"github.com/kvesteri/tinysat/twosat"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var engine string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "tinysat [input.cnf]",
		Short: "A toy SAT solver with three interchangeable engines",
		Long: `tinysat reads a single problem specification in the DIMACS CNF format.
It writes the output in the conventional way: either the first line is
UNSAT, or else the first line is SAT and the second line gives the
assignment as a DIMACS "v" solution line.

If no input file is given, tinysat reads from standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, engine, verbose)
		},
	}

	cmd.Flags().StringVar(&engine, "engine", "dpll", `solving engine to use: "dpll", "twosat", or "brute"`)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "emit trace-level solver logging to stderr")

	return cmd
}

func run(cmd *cobra.Command, args []string, engine string, verbose bool) error {
	logger := hclog.NewNullLogger()
	if verbose {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "tinysat",
			Level:  hclog.Trace,
			Output: cmd.ErrOrStderr(),
		})
	}

	r := cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	formula, err := dimacs.Parse(r)
	if err != nil {
		return fmt.Errorf("reading input as DIMACS CNF: %w", err)
	}

	match, sat, err := solveWith(engine, formula, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !sat {
		fmt.Fprintln(out, "UNSAT")
		return nil
	}
	fmt.Fprintln(out, "SAT")
	return dimacs.WriteMatch(out, match)
}

func solveWith(engine string, formula tinysat.Formula, logger hclog.Logger) (tinysat.Match, bool, error) {
	switch engine {
	case "dpll":
		it, err := tinysat.Solve(formula, tinysat.WithLogger(logger))
		if err != nil {
			return nil, false, err
		}
		match, ok := it.Next()
		return match, ok, nil
	case "twosat":
		s, err := twosat.New(formula, twosat.WithLogger(logger))
		if err != nil {
			return nil, false, err
		}
		match, ok := s.Solve().Next()
		return match, ok, nil
	case "brute":
		s := brute.New(formula, brute.WithLogger(logger))
		match, ok := s.Solve().Next()
		return match, ok, nil
	default:
		return nil, false, fmt.Errorf("unknown engine %q (want dpll, twosat, or brute)", engine)
	}
}
