package quantifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.matchers/pkg/equality"
	"digital.vasic.matchers/pkg/failure"
	"digital.vasic.matchers/pkg/matcher"
	"digital.vasic.matchers/pkg/render"
)

var specPos = failure.Position{File: "inspect_test.go", Line: 25}

func TestEvaluate_AllPasses(t *testing.T) {
	res := Evaluate(
		matcher.EqualTo(1), []any{1, 1, 1},
		All(), specPos, matcher.Config{})

	assert.True(t, res.Matches)
}

func TestEvaluate_AllCitesFirstFailingIndex(t *testing.T) {
	r := render.New()

	res := Evaluate(
		matcher.EqualTo(1), []any{1, 1, 2},
		All(), specPos, matcher.Config{})

	require.False(t, res.Matches)
	msg := res.Failure.RenderMessage(r)
	assert.Contains(t, msg, "'all' inspection failed")
	assert.Contains(t, msg, "at index 2, 2 did not equal 1")
	assert.Contains(t, msg, "(inspect_test.go:25)")
	assert.Contains(t, msg, "in [1, 1, 2]")
}

func TestEvaluate_AllReportsOnlyFirstOfMany(t *testing.T) {
	r := render.New()

	// Indexes 1 and 3 both fail; only index 1 is cited.
	res := Evaluate(
		matcher.EqualTo(1), []any{1, 2, 1, 3},
		All(), specPos, matcher.Config{})

	require.False(t, res.Matches)
	msg := res.Failure.RenderMessage(r)
	assert.Contains(t, msg, "at index 1,")
	assert.NotContains(t, msg, "at index 3,")
}

func TestEvaluate_AllVacuousOnEmpty(t *testing.T) {
	res := Evaluate(
		matcher.EqualTo(1), []any{},
		All(), specPos, matcher.Config{})

	assert.True(t, res.Matches)
}

func TestEvaluate_NoQuantifier(t *testing.T) {
	passes := Evaluate(
		matcher.EqualTo(9), []any{1, 2, 3},
		No(), specPos, matcher.Config{})
	fails := Evaluate(
		matcher.EqualTo(2), []any{1, 2, 3},
		No(), specPos, matcher.Config{})

	assert.True(t, passes.Matches)
	assert.False(t, fails.Matches)
}

func TestEvaluate_AtLeast(t *testing.T) {
	res := Evaluate(
		matcher.EqualTo(1), []any{1, 1, 2},
		AtLeast(2), specPos, matcher.Config{})

	assert.True(t, res.Matches)

	res = Evaluate(
		matcher.EqualTo(1), []any{1, 2, 2},
		AtLeast(2), specPos, matcher.Config{})

	assert.False(t, res.Matches)
}

func TestEvaluate_AtLeastVacuousFailOnEmpty(t *testing.T) {
	res := Evaluate(
		matcher.EqualTo(1), []any{},
		AtLeast(1), specPos, matcher.Config{})

	assert.False(t, res.Matches)
}

func TestEvaluate_CountMessage(t *testing.T) {
	r := render.New()

	res := Evaluate(
		matcher.EqualTo(1), []any{1, 2, 2},
		Exactly(2), specPos, matcher.Config{})

	require.False(t, res.Matches)
	assert.Equal(t,
		"'exactly(2)' inspection failed, "+
			"because it matched 1 elements in [1, 2, 2]",
		res.Failure.RenderMessage(r))
}

func TestEvaluate_Between(t *testing.T) {
	cfg := matcher.Config{}
	collection := []any{1, 1, 1, 2}

	assert.True(t, Evaluate(
		matcher.EqualTo(1), collection,
		Between(2, 4), specPos, cfg).Matches)
	assert.False(t, Evaluate(
		matcher.EqualTo(2), collection,
		Between(2, 4), specPos, cfg).Matches)
}

func TestEvaluate_EqualityOverrideReachesElements(
	t *testing.T,
) {
	cfg := matcher.Config{
		Equality: equality.CaseInsensitive(),
	}

	res := Evaluate(
		matcher.EqualTo("FUM"), []any{"fum", "FUM", "Fum"},
		All(), specPos, cfg)

	assert.True(t, res.Matches)
}

func TestEvaluate_CombinatorTreePerElement(t *testing.T) {
	tree := matcher.Or(
		matcher.EqualTo(1), matcher.EqualTo(2))

	res := Evaluate(
		tree, []any{1, 2, 1},
		All(), specPos, matcher.Config{})

	assert.True(t, res.Matches)
}

func TestEvaluate_NonCollection(t *testing.T) {
	r := render.New()

	res := Evaluate(
		matcher.EqualTo(1), 42,
		All(), specPos, matcher.Config{})

	require.False(t, res.Matches)
	assert.Equal(t, "42 was not a collection",
		res.Failure.RenderMessage(r))
}

func TestEvaluate_NegatedAllMessage(t *testing.T) {
	r := render.New()

	res := Evaluate(
		matcher.EqualTo(1), []any{1, 1},
		All(), specPos, matcher.Config{})

	require.True(t, res.Matches)
	assert.Equal(t,
		"'all' inspection passed, "+
			"because it matched 2 elements in [1, 1]",
		res.NegatedFailure.RenderMessage(r))
}
