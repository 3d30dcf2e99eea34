package matcher

import (
	"digital.vasic.matchers/pkg/failure"
	"digital.vasic.matchers/pkg/match"
	"digital.vasic.matchers/pkg/render"
)

// equalToMatcher matches when actual equals the expected value
// under the active equality.
type equalToMatcher struct {
	expected any
}

// EqualTo creates a matcher that compares actual against
// expected under the evaluation's equality.
func EqualTo(expected any) Matcher {
	return equalToMatcher{expected: expected}
}

func (m equalToMatcher) Match(
	actual any,
	cfg Config,
) match.Result {
	matches := cfg.equalityOrDefault().
		AreEqual(actual, m.expected)

	return match.New(matches,
		match.Msg("didNotEqual", actual, m.expected),
		match.Msg("equaled", actual, m.expected),
	)
}

// isTrueMatcher matches when a named predicate holds for the
// actual value.
type isTrueMatcher struct {
	name string
	pred func(any) bool
}

// IsTrue creates a matcher from a named predicate. The name is
// embedded in the failure message ("<actual> was not <name>").
func IsTrue(name string, pred func(any) bool) Matcher {
	return isTrueMatcher{name: name, pred: pred}
}

func (m isTrueMatcher) Match(
	actual any,
	_ Config,
) match.Result {
	return match.New(m.pred(actual),
		match.Msg("wasNot", actual, render.Literal(m.name)),
		match.Msg("was", actual, render.Literal(m.name)),
	)
}

// toleranceMatcher matches numeric values within pivot ±
// tolerance, inclusive.
type toleranceMatcher struct {
	pivot     float64
	tolerance float64
}

// WithinTolerance creates a plus-or-minus matcher. The
// tolerance must be positive; a zero or negative tolerance is a
// construction error, raised before any actual value is seen.
func WithinTolerance(
	pivot, tolerance float64,
	pos failure.Position,
) (Matcher, error) {
	if tolerance <= 0 {
		return nil, &failure.ToleranceError{
			Tolerance: tolerance,
			Pos:       pos,
		}
	}
	return toleranceMatcher{
		pivot:     pivot,
		tolerance: tolerance,
	}, nil
}

func (m toleranceMatcher) Match(
	actual any,
	_ Config,
) match.Result {
	v, ok := toFloat64(actual)
	matches := ok &&
		v >= m.pivot-m.tolerance &&
		v <= m.pivot+m.tolerance

	return match.New(matches,
		match.Msg("wasNotPlusOrMinus",
			actual, m.pivot, m.tolerance),
		match.Msg("wasPlusOrMinus",
			actual, m.pivot, m.tolerance),
	)
}

// capabilityMatcher delegates the boolean check to an external
// capability probe (e.g. "writable" -> canWrite). Structurally
// it behaves like any other leaf evaluator.
type capabilityMatcher struct {
	name  string
	probe Probe
}

// Capability creates a matcher backed by a probe registered
// under name. An unregistered name is a construction error.
func Capability(
	name string,
	reg *ProbeRegistry,
	pos failure.Position,
) (Matcher, error) {
	probe, ok := reg.Lookup(name)
	if !ok {
		return nil, &failure.UnknownCapabilityError{
			Name: name,
			Pos:  pos,
		}
	}
	return capabilityMatcher{name: name, probe: probe}, nil
}

func (m capabilityMatcher) Match(
	actual any,
	_ Config,
) match.Result {
	return match.New(m.probe(actual),
		match.Msg("wasNot", actual, render.Literal(m.name)),
		match.Msg("was", actual, render.Literal(m.name)),
	)
}
