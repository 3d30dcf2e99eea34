package matcher

import "digital.vasic.matchers/pkg/match"

// andMatcher combines two matchers with AND semantics. Both
// sides are always evaluated against the actual value: there is
// no evaluation short-circuit, because negated-context messages
// must be able to describe both sides. Only the message
// composition is short-circuit-aware.
type andMatcher struct {
	left  Matcher
	right Matcher
}

// And creates a matcher that passes when both operands pass.
func And(left, right Matcher) Matcher {
	return andMatcher{left: left, right: right}
}

func (m andMatcher) Match(actual any, cfg Config) match.Result {
	l := m.left.Match(actual, cfg)
	r := m.right.Match(actual, cfg)

	failure := l.Failure
	midFailure := l.MidSentenceFailure
	if l.Matches {
		// Left passed, so the composite failed on the right:
		// "left held, but right failed".
		failure = match.Joined{
			Left:  l.NegatedFailure,
			Word:  "but",
			Right: r.MidSentenceFailure,
		}
		midFailure = match.Joined{
			Left:  l.MidSentenceNegatedFailure,
			Word:  "but",
			Right: r.MidSentenceFailure,
		}
	}

	return match.NewFull(
		l.Matches && r.Matches,
		failure,
		match.Joined{
			Left:  l.NegatedFailure,
			Word:  "and",
			Right: r.MidSentenceNegatedFailure,
		},
		midFailure,
		match.Joined{
			Left:  l.MidSentenceNegatedFailure,
			Word:  "and",
			Right: r.MidSentenceNegatedFailure,
		},
	)
}

// orMatcher combines two matchers with OR semantics. As with
// AND, both sides are always evaluated.
type orMatcher struct {
	left  Matcher
	right Matcher
}

// Or creates a matcher that passes when either operand passes.
func Or(left, right Matcher) Matcher {
	return orMatcher{left: left, right: right}
}

func (m orMatcher) Match(actual any, cfg Config) match.Result {
	l := m.left.Match(actual, cfg)
	r := m.right.Match(actual, cfg)

	// Failure is only surfaced when both sides failed; both
	// reasons are cited.
	failure := match.Joined{
		Left:  l.Failure,
		Word:  "and",
		Right: r.MidSentenceFailure,
	}
	midFailure := match.Joined{
		Left:  l.MidSentenceFailure,
		Word:  "and",
		Right: r.MidSentenceFailure,
	}

	negated := match.Message(l.NegatedFailure)
	midNegated := match.Message(l.MidSentenceNegatedFailure)
	if !l.Matches {
		// Left failed but the composite passed on the right:
		// "left failed, but right held".
		negated = match.Joined{
			Left:  l.Failure,
			Word:  "but",
			Right: r.MidSentenceNegatedFailure,
		}
		midNegated = match.Joined{
			Left:  l.MidSentenceFailure,
			Word:  "but",
			Right: r.MidSentenceNegatedFailure,
		}
	}

	return match.NewFull(
		l.Matches || r.Matches,
		failure,
		negated,
		midFailure,
		midNegated,
	)
}

// notMatcher inverts a matcher's outcome, swapping the message
// pairs.
type notMatcher struct {
	inner Matcher
}

// Not creates a matcher that passes when the operand fails.
func Not(inner Matcher) Matcher {
	return notMatcher{inner: inner}
}

func (m notMatcher) Match(actual any, cfg Config) match.Result {
	return m.inner.Match(actual, cfg).Negated()
}
