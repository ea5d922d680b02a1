package tinysat

import "github.com/pkg/errors"

// ErrMalformedFormula is wrapped with construction-time context (which
// clause, which literal) whenever a Formula fails validation.
var ErrMalformedFormula = errors.New("tinysat: malformed formula")

// ErrProceedPastEnd is the panic value when an Iterator is used after Close
// — a caller bug, not a recoverable condition, matching the C++ original's
// exception on advancing past the end of iteration.
var ErrProceedPastEnd = errors.New("tinysat: iterator used after Close")
