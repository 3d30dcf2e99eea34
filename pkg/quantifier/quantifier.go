// Package quantifier applies a single-element matcher across a
// collection under a quantifier (all, atLeast, atMost, exactly,
// no, between) and aggregates the per-element outcomes into one
// match.Result.
package quantifier

import "fmt"

// kind identifies the quantifier family.
type kind int

const (
	kindAll kind = iota
	kindAtLeast
	kindAtMost
	kindExactly
	kindNo
	kindBetween
)

// Quantifier is the policy governing how many per-element
// outcomes must be true for the aggregate to pass.
type Quantifier struct {
	kind kind
	min  int
	max  int
}

// All requires every element to match. Vacuously passes on an
// empty collection.
func All() Quantifier {
	return Quantifier{kind: kindAll}
}

// AtLeast requires at least k elements to match.
func AtLeast(k int) Quantifier {
	return Quantifier{kind: kindAtLeast, min: k}
}

// AtMost requires at most k elements to match.
func AtMost(k int) Quantifier {
	return Quantifier{kind: kindAtMost, max: k}
}

// Exactly requires exactly k elements to match.
func Exactly(k int) Quantifier {
	return Quantifier{kind: kindExactly, min: k, max: k}
}

// No requires zero elements to match. Vacuously passes on an
// empty collection.
func No() Quantifier {
	return Quantifier{kind: kindNo}
}

// Between requires between k and m matching elements,
// inclusive.
func Between(k, m int) Quantifier {
	return Quantifier{kind: kindBetween, min: k, max: m}
}

// satisfied reports whether matched of total elements meets the
// quantifier's condition.
func (q Quantifier) satisfied(matched, total int) bool {
	switch q.kind {
	case kindAll:
		return matched == total
	case kindAtLeast:
		return matched >= q.min
	case kindAtMost:
		return matched <= q.max
	case kindExactly:
		return matched == q.min
	case kindNo:
		return matched == 0
	case kindBetween:
		return matched >= q.min && matched <= q.max
	}
	return false
}

// String describes the quantifier for message rendering.
func (q Quantifier) String() string {
	switch q.kind {
	case kindAll:
		return "all"
	case kindAtLeast:
		return fmt.Sprintf("atLeast(%d)", q.min)
	case kindAtMost:
		return fmt.Sprintf("atMost(%d)", q.max)
	case kindExactly:
		return fmt.Sprintf("exactly(%d)", q.min)
	case kindNo:
		return "no"
	case kindBetween:
		return fmt.Sprintf("between(%d, %d)", q.min, q.max)
	}
	return "unknown"
}
