// Package matcher provides composable match predicates: leaf
// evaluators (equality, tolerance, container membership,
// capability probes) and the logical combinators that join them.
// A matcher tree is built once per assertion, then evaluated
// against an actual value to produce a single match.Result.
package matcher

import (
	"digital.vasic.matchers/pkg/equality"
	"digital.vasic.matchers/pkg/logging"
	"digital.vasic.matchers/pkg/match"
)

// Matcher is a composable value representing one testable
// condition against an actual value. Implementations are pure:
// evaluating twice with the same inputs yields identical
// results.
type Matcher interface {
	// Match evaluates the condition against actual under the
	// given configuration.
	Match(actual any, cfg Config) match.Result
}

// Config carries the per-evaluation collaborators. It is
// threaded explicitly through the whole evaluator tree so that
// one override applies uniformly to every comparison within a
// single assertion.
type Config struct {
	// Equality overrides the structural default for every
	// comparison performed during this evaluation.
	Equality equality.Equality

	// Logger, when set, receives one debug entry per matcher
	// evaluation.
	Logger logging.Logger
}

// equalityOrDefault returns the configured equality, falling
// back to structural equality.
func (c Config) equalityOrDefault() equality.Equality {
	if c.Equality != nil {
		return c.Equality
	}
	return equality.Default
}

// loggerOrNull returns the configured logger, falling back to
// the silent logger.
func (c Config) loggerOrNull() logging.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return logging.NullLogger{}
}

// Evaluate runs a matcher tree against an actual value. It is
// the single entry point callers use; when a logger is
// configured the outcome is traced at debug level.
func Evaluate(m Matcher, actual any, cfg Config) match.Result {
	res := m.Match(actual, cfg)

	cfg.loggerOrNull().Debug("matcher evaluated",
		logging.BoolField("matches", res.Matches),
	)

	return res
}
