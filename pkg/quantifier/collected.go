package quantifier

import (
	"digital.vasic.matchers/pkg/failure"
	"digital.vasic.matchers/pkg/match"
	"digital.vasic.matchers/pkg/matcher"
	"digital.vasic.matchers/pkg/render"
)

// Evaluate applies m to every element of collection in
// iteration order and aggregates the outcomes under q. The
// collection itself is never mutated.
//
// For the "all" quantifier the aggregate failure message cites
// the first element (in iteration order) whose own match
// failed, embedding that element's failure message, the call
// site, and the full collection. Other quantifiers cite the
// matched-element count against the collection. Only the first
// failing index is reported even when several elements fail.
func Evaluate(
	m matcher.Matcher,
	collection any,
	q Quantifier,
	pos failure.Position,
	cfg matcher.Config,
) match.Result {
	elements, ok := matcher.Elements(collection)
	if !ok {
		return match.New(false,
			match.Msg("wasNotACollection", collection),
			match.Msg("wasNotACollection", collection),
		)
	}

	results := make([]match.Result, len(elements))
	matched := 0
	firstFailing := -1
	for i, element := range elements {
		results[i] = m.Match(element, cfg)
		if results[i].Matches {
			matched++
		} else if firstFailing < 0 {
			firstFailing = i
		}
	}

	passed := q.satisfied(matched, len(elements))

	if q.kind == kindAll {
		return allResult(
			passed, firstFailing, results,
			collection, matched, pos,
		)
	}

	return match.New(passed,
		match.Msg("quantifierInspectionFailed",
			render.Literal(q.String()),
			matched,
			collection,
		),
		match.Msg("quantifierInspectionPassed",
			render.Literal(q.String()),
			matched,
			collection,
		),
	)
}

// allResult builds the aggregate result for the "all"
// quantifier, citing the first failing index.
func allResult(
	passed bool,
	firstFailing int,
	results []match.Result,
	collection any,
	matched int,
	pos failure.Position,
) match.Result {
	negated := match.Msg("quantifierInspectionPassed",
		render.Literal("all"),
		matched,
		collection,
	)

	if passed {
		// Failure message unused on a passing result; keep the
		// count form so negation stays renderable.
		return match.New(true,
			match.Msg("quantifierInspectionFailed",
				render.Literal("all"),
				matched,
				collection,
			),
			negated,
		)
	}

	return match.New(false,
		match.Msg("allInspectionFailed",
			firstFailing,
			results[firstFailing].MidSentenceFailure,
			render.Literal(pos.String()),
			collection,
		),
		negated,
	)
}
