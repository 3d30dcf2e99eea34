// Package failure defines the boundary types raised when an
// assembled evaluation goes wrong: the Signal carried by a
// failing top-level assertion, and the construction errors
// raised eagerly when a matcher is built from invalid
// arguments.
package failure

import (
	"fmt"

	"digital.vasic.matchers/pkg/match"
	"digital.vasic.matchers/pkg/render"
)

// Position describes the call site of an assertion: source file
// name and 1-based line number. It is supplied explicitly by
// the assertion wrapper layer, never inferred from the stack.
type Position struct {
	File string
	Line int
}

// String renders the position as "file:line".
func (p Position) String() string {
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// Signal is the error raised when a top-level evaluation is
// negative. It carries the rendered failure message and the
// assertion call site. Callers (test frameworks) catch it to
// mark one test failed and continue with others.
type Signal struct {
	Message string
	Pos     Position
}

// Error returns the rendered message with the call site
// appended.
func (s *Signal) Error() string {
	return fmt.Sprintf("%s (%s)", s.Message, s.Pos)
}

// Check converts a negative top-level Result into a Signal,
// rendering its failure message. A positive Result yields nil.
func Check(
	res match.Result,
	pos Position,
	r *render.Renderer,
) error {
	if res.Matches {
		return nil
	}
	return &Signal{
		Message: res.Failure.RenderMessage(r),
		Pos:     pos,
	}
}

// CheckMidSentence behaves like Check but renders the
// mid-sentence message variant, for assertions embedded in a
// larger sentence.
func CheckMidSentence(
	res match.Result,
	pos Position,
	r *render.Renderer,
) error {
	if res.Matches {
		return nil
	}
	return &Signal{
		Message: res.MidSentenceFailure.RenderMessage(r),
		Pos:     pos,
	}
}
