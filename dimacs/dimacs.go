// Package dimacs reads and writes the DIMACS CNF text format used by the
// standard SAT competition benchmarks.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/kvesteri/tinysat"
)

// Parse reads a formula in DIMACS CNF format.
//
// A few non-standard variations are accepted for convenience:
//
//   - Comments (lines beginning with 'c') may appear anywhere, not just in
//     the preamble.
//   - The problem line may be missing, in which case NumVars is inferred
//     from the highest variable referenced.
func Parse(r io.Reader) (tinysat.Formula, error) {
	var problem struct {
		vars    int
		clauses int
	}
	var clauses [][]int
	var clause []int
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		// Some CNF files attach extra data in a trailer after a line
		// containing a single %.
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if len(clauses) > 0 {
				return tinysat.Formula{}, errors.Wrap(tinysat.ErrMalformedFormula, "problem line appears after clauses")
			}
			if problem.vars > 0 {
				return tinysat.Formula{}, errors.Wrap(tinysat.ErrMalformedFormula, "multiple problem lines")
			}
			fields := strings.Fields(line)
			if len(fields) != 4 {
				return tinysat.Formula{}, errors.Wrapf(tinysat.ErrMalformedFormula, "malformed problem line %q", line)
			}
			if fields[0] != "p" {
				return tinysat.Formula{}, errors.Wrapf(tinysat.ErrMalformedFormula, "problem line starts with unexpected signifier %q", fields[0])
			}
			if fields[1] != "cnf" {
				return tinysat.Formula{}, errors.Wrapf(tinysat.ErrMalformedFormula, "only cnf supported; got %q", fields[1])
			}
			var err error
			problem.vars, err = strconv.Atoi(fields[2])
			if err != nil {
				return tinysat.Formula{}, errors.Wrap(tinysat.ErrMalformedFormula, "malformed #vars in problem line")
			}
			problem.clauses, err = strconv.Atoi(fields[3])
			if err != nil {
				return tinysat.Formula{}, errors.Wrap(tinysat.ErrMalformedFormula, "malformed #clauses in problem line")
			}
			if problem.vars < 0 {
				return tinysat.Formula{}, errors.Wrapf(tinysat.ErrMalformedFormula, "invalid #vars %d", problem.vars)
			}
			if problem.clauses < 0 {
				return tinysat.Formula{}, errors.Wrapf(tinysat.ErrMalformedFormula, "invalid #clauses %d", problem.clauses)
			}
			continue
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return tinysat.Formula{}, errors.Wrap(tinysat.ErrMalformedFormula, "invalid literal")
			}
			if n == 0 {
				clauses = append(clauses, clause)
				clause = nil
			} else {
				clause = append(clause, n)
			}
		}
	}
	if err := s.Err(); err != nil {
		return tinysat.Formula{}, err
	}
	if len(clause) > 0 {
		clauses = append(clauses, clause)
	}

	numVars := problem.vars
	if numVars > 0 {
		for _, cl := range clauses {
			for _, v := range cl {
				if v < 0 {
					v = -v
				}
				if v > numVars {
					return tinysat.Formula{}, errors.Wrapf(tinysat.ErrMalformedFormula,
						"formula contains var %d, but problem line asserts %d vars", v, numVars)
				}
			}
		}
		if len(clauses) != problem.clauses {
			return tinysat.Formula{}, errors.Wrapf(tinysat.ErrMalformedFormula,
				"problem line specifies %d clauses, but there are %d", problem.clauses, len(clauses))
		}
	} else {
		for _, cl := range clauses {
			for _, v := range cl {
				if v < 0 {
					v = -v
				}
				if v > numVars {
					numVars = v
				}
			}
		}
	}

	return tinysat.Formula{NumVars: numVars, Clauses: clauses}, nil
}

// Write formats f as DIMACS CNF text, with a problem line declaring its
// exact variable and clause counts.
func Write(w io.Writer, f tinysat.Formula) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", f.NumVars, len(f.Clauses)); err != nil {
		return err
	}
	for _, cl := range f.Clauses {
		var b strings.Builder
		for _, lit := range cl {
			fmt.Fprintf(&b, "%d ", lit)
		}
		b.WriteString("0\n")
		if _, err := bw.WriteString(b.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteMatch formats a solved model as a DIMACS "v" solution line followed
// by "0", the convention used by SAT competition solvers.
func WriteMatch(w io.Writer, m tinysat.Match) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("v"); err != nil {
		return err
	}
	for i, v := range m {
		lit := i + 1
		if v == tinysat.False {
			lit = -lit
		}
		if _, err := fmt.Fprintf(bw, " %d", lit); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString(" 0\n"); err != nil {
		return err
	}
	return bw.Flush()
}
