package matcher

import (
	"digital.vasic.matchers/pkg/equality"
	"digital.vasic.matchers/pkg/failure"
	"digital.vasic.matchers/pkg/match"
)

// containKind selects the membership policy and the message
// templates of a container matcher.
type containKind int

const (
	kindNoneOf containKind = iota
	kindOneElementOf
	kindAtLeastOneOf
	kindNoElementsOf
	kindAllElementsOf
)

// containMatcher decides whether a container's elements
// intersect an expected set according to its kind's policy.
// Matching order over the expected set is irrelevant; the
// original argument order is preserved for duplicate detection
// and message rendering.
type containMatcher struct {
	kind     containKind
	expected []any
}

// ContainsNoneOf creates a matcher that passes when zero
// elements of the actual container equal any expected element.
// The expected set must be duplicate-free under eq (nil means
// structural equality); a duplicate is a construction error
// raised before any actual element is inspected.
func ContainsNoneOf(
	expected []any,
	eq equality.Equality,
	pos failure.Position,
) (Matcher, error) {
	if err := rejectDuplicates(expected, eq, pos); err != nil {
		return nil, err
	}
	return containMatcher{
		kind:     kindNoneOf,
		expected: expected,
	}, nil
}

// ContainsAtLeastOneOf creates a matcher that passes when one
// or more expected elements are found in the actual container.
// Duplicate expected values are a construction error.
func ContainsAtLeastOneOf(
	expected []any,
	eq equality.Equality,
	pos failure.Position,
) (Matcher, error) {
	if err := rejectDuplicates(expected, eq, pos); err != nil {
		return nil, err
	}
	return containMatcher{
		kind:     kindAtLeastOneOf,
		expected: expected,
	}, nil
}

// ContainsNoElementsOf creates a matcher that passes when no
// expected element is found in the actual container. Duplicate
// expected values are a construction error.
func ContainsNoElementsOf(
	expected []any,
	eq equality.Equality,
	pos failure.Position,
) (Matcher, error) {
	if err := rejectDuplicates(expected, eq, pos); err != nil {
		return nil, err
	}
	return containMatcher{
		kind:     kindNoElementsOf,
		expected: expected,
	}, nil
}

// ContainsOneElementOf creates a matcher that passes when
// exactly one distinct expected value is present among the
// actual container's elements. It counts which expected values
// are found, not how many actual elements match. Unlike the
// none-of family, duplicate expected values are permitted.
func ContainsOneElementOf(expected []any) Matcher {
	return containMatcher{
		kind:     kindOneElementOf,
		expected: expected,
	}
}

// ContainsAllElementsOf creates a matcher that passes when
// every distinct expected value is present among the actual
// container's elements. Duplicate expected values are
// permitted.
func ContainsAllElementsOf(expected []any) Matcher {
	return containMatcher{
		kind:     kindAllElementsOf,
		expected: expected,
	}
}

func (m containMatcher) Match(
	actual any,
	cfg Config,
) match.Result {
	elements, ok := Elements(actual)
	if !ok {
		return match.New(false,
			match.Msg("wasNotACollection", actual),
			match.Msg("wasNotACollection", actual),
		)
	}

	eq := cfg.equalityOrDefault()
	found := countDistinctFound(elements, m.expected, eq)

	var matches bool
	var failureKey, negatedKey string

	switch m.kind {
	case kindNoneOf:
		matches = found == 0
		failureKey = "containedAtLeastOneOf"
		negatedKey = "didNotContainAtLeastOneOf"
	case kindAtLeastOneOf:
		matches = found >= 1
		failureKey = "didNotContainAtLeastOneOf"
		negatedKey = "containedAtLeastOneOf"
	case kindOneElementOf:
		matches = found == 1
		failureKey = "didNotContainOneElementOf"
		negatedKey = "containedOneElementOf"
	case kindNoElementsOf:
		matches = found == 0
		failureKey = "containedAtLeastOneElementOf"
		negatedKey = "didNotContainAtLeastOneElementOf"
	case kindAllElementsOf:
		matches = found == countDistinct(m.expected, eq)
		failureKey = "didNotContainAllElementsOf"
		negatedKey = "containedAllElementsOf"
	}

	return match.New(matches,
		match.Msg(failureKey, actual, m.expected),
		match.Msg(negatedKey, actual, m.expected),
	)
}

// countDistinctFound counts how many distinct expected values
// (under eq) are matched by at least one actual element.
func countDistinctFound(
	elements, expected []any,
	eq equality.Equality,
) int {
	found := 0
	for i, candidate := range expected {
		if indexOf(expected[:i], candidate, eq) >= 0 {
			continue // duplicate of an earlier expected value
		}
		if indexOf(elements, candidate, eq) >= 0 {
			found++
		}
	}
	return found
}

// countDistinct counts the distinct values in a sequence under
// eq.
func countDistinct(values []any, eq equality.Equality) int {
	distinct := 0
	for i, v := range values {
		if indexOf(values[:i], v, eq) < 0 {
			distinct++
		}
	}
	return distinct
}

// indexOf returns the index of the first element equal to
// candidate under eq, or -1.
func indexOf(
	elements []any,
	candidate any,
	eq equality.Equality,
) int {
	for i, e := range elements {
		if eq.AreEqual(e, candidate) {
			return i
		}
	}
	return -1
}

// rejectDuplicates validates that expected contains no two
// elements equal under eq. The check is eager: it runs at
// matcher construction, independent of whether the matcher is
// ever applied.
func rejectDuplicates(
	expected []any,
	eq equality.Equality,
	pos failure.Position,
) error {
	if eq == nil {
		eq = equality.Default
	}
	for i, v := range expected {
		if indexOf(expected[:i], v, eq) >= 0 {
			return &failure.DuplicateValueError{
				Value: v,
				Pos:   pos,
			}
		}
	}
	return nil
}
