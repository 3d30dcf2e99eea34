// Package report generates JSON and plain-text summaries over
// batches of recorded evaluation outcomes.
package report

import (
	"digital.vasic.matchers/pkg/match"
	"digital.vasic.matchers/pkg/render"
)

// Record is the durable form of one evaluation outcome: the
// messages are rendered eagerly so records survive without a
// renderer.
type Record struct {
	// Name labels the assertion this record came from.
	Name string `json:"name"`

	// Passed indicates whether the evaluation matched.
	Passed bool `json:"passed"`

	// Message is the rendered failure message; empty on a
	// passing record.
	Message string `json:"message,omitempty"`
}

// FromResult converts a match.Result into a Record, rendering
// its failure message when negative.
func FromResult(
	name string,
	res match.Result,
	r *render.Renderer,
) Record {
	rec := Record{
		Name:   name,
		Passed: res.Matches,
	}
	if !res.Matches {
		rec.Message = res.Failure.RenderMessage(r)
	}
	return rec
}
