package tinysat

import (
	"math/rand"

	"github.com/hashicorp/go-hclog"

	"github.com/kvesteri/tinysat/dpll"
)

// Option configures Solve.
type Option func(*config)

type config struct {
	logger hclog.Logger
	rand   *rand.Rand
}

// WithLogger attaches a structured logger; Trace-level entries are emitted
// for decisions, propagated units, conflicts, and backtracks. The default
// is a null logger.
func WithLogger(l hclog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithRandSource fixes the random source used to build clause skip lists,
// for deterministic tests.
func WithRandSource(r *rand.Rand) Option {
	return func(c *config) { c.rand = r }
}

func (c *config) dpllOptions() []dpll.Option {
	var opts []dpll.Option
	if c.logger != nil {
		opts = append(opts, dpll.WithLogger(c.logger))
	}
	if c.rand != nil {
		opts = append(opts, dpll.WithRandSource(c.rand))
	}
	return opts
}
