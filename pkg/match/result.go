// Package match defines the atomic outcome of evaluating one
// matcher against one value: a boolean plus four lazily-rendered
// message variants (affirmative and negated, each in a
// sentence-start and a mid-sentence form).
package match

// Result is the immutable outcome of a single matcher
// evaluation. The mid-sentence variants are used when the
// message is embedded inside a larger composite sentence.
type Result struct {
	// Matches reports whether the matcher accepted the value.
	Matches bool

	// Failure explains why the match failed. Surfaced when
	// Matches is false.
	Failure Message

	// NegatedFailure explains why a negated match failed.
	// Surfaced when the result is consumed under not() and
	// Matches is true.
	NegatedFailure Message

	// MidSentenceFailure is the Failure variant used inside a
	// composite sentence.
	MidSentenceFailure Message

	// MidSentenceNegatedFailure is the NegatedFailure variant
	// used inside a composite sentence.
	MidSentenceNegatedFailure Message
}

// New creates a Result whose mid-sentence messages equal the
// sentence-start ones. Most leaf matchers need no distinct
// mid-sentence phrasing because their templates start with the
// actual value.
func New(matches bool, failure, negatedFailure Message) Result {
	return Result{
		Matches:                   matches,
		Failure:                   failure,
		NegatedFailure:            negatedFailure,
		MidSentenceFailure:        failure,
		MidSentenceNegatedFailure: negatedFailure,
	}
}

// NewFull creates a Result with all four message variants
// supplied explicitly.
func NewFull(
	matches bool,
	failure, negatedFailure Message,
	midFailure, midNegatedFailure Message,
) Result {
	return Result{
		Matches:                   matches,
		Failure:                   failure,
		NegatedFailure:            negatedFailure,
		MidSentenceFailure:        midFailure,
		MidSentenceNegatedFailure: midNegatedFailure,
	}
}

// Negated returns the logically inverted Result: Matches is
// flipped and the message pairs swap roles. Negating twice
// restores the original value.
func (r Result) Negated() Result {
	return Result{
		Matches:                   !r.Matches,
		Failure:                   r.NegatedFailure,
		NegatedFailure:            r.Failure,
		MidSentenceFailure:        r.MidSentenceNegatedFailure,
		MidSentenceNegatedFailure: r.MidSentenceFailure,
	}
}
