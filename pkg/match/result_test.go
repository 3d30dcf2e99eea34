package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"digital.vasic.matchers/pkg/render"
)

func TestNew_MidSentenceDefaultsToMain(t *testing.T) {
	res := New(true,
		Msg("didNotEqual", 1, 2),
		Msg("equaled", 1, 2),
	)

	assert.Equal(t, res.Failure, res.MidSentenceFailure)
	assert.Equal(t,
		res.NegatedFailure, res.MidSentenceNegatedFailure)
}

func TestNewFull_KeepsAllVariants(t *testing.T) {
	res := NewFull(false,
		Text("f"), Text("nf"), Text("msf"), Text("msnf"),
	)

	assert.False(t, res.Matches)
	assert.Equal(t, Text("f"), res.Failure)
	assert.Equal(t, Text("nf"), res.NegatedFailure)
	assert.Equal(t, Text("msf"), res.MidSentenceFailure)
	assert.Equal(t,
		Text("msnf"), res.MidSentenceNegatedFailure)
}

func TestNegated_SwapsMessagePairs(t *testing.T) {
	res := NewFull(true,
		Text("f"), Text("nf"), Text("msf"), Text("msnf"),
	)

	neg := res.Negated()

	assert.False(t, neg.Matches)
	assert.Equal(t, Text("nf"), neg.Failure)
	assert.Equal(t, Text("f"), neg.NegatedFailure)
	assert.Equal(t, Text("msnf"), neg.MidSentenceFailure)
	assert.Equal(t,
		Text("msf"), neg.MidSentenceNegatedFailure)
}

func TestNegated_IsAnInvolution(t *testing.T) {
	res := NewFull(false,
		Text("f"), Text("nf"), Text("msf"), Text("msnf"),
	)

	assert.Equal(t, res, res.Negated().Negated())
}

func TestTemplated_RendersLazily(t *testing.T) {
	r := render.New()

	msg := Msg("didNotEqual", "fee", "fum")

	assert.Equal(t, `"fee" did not equal "fum"`,
		msg.RenderMessage(r))
}

func TestText_RendersVerbatim(t *testing.T) {
	r := render.New()

	assert.Equal(t, "as is", Text("as is").RenderMessage(r))
}

func TestJoined_RendersWithJoiningWord(t *testing.T) {
	r := render.New()

	and := Joined{
		Left:  Text("left failed"),
		Word:  "and",
		Right: Text("right failed"),
	}
	but := Joined{
		Left:  Text("left held"),
		Word:  "but",
		Right: Text("right failed"),
	}

	assert.Equal(t, "left failed, and right failed",
		and.RenderMessage(r))
	assert.Equal(t, "left held, but right failed",
		but.RenderMessage(r))
}

func TestJoined_NestsRecursively(t *testing.T) {
	r := render.New()

	msg := Joined{
		Left: Joined{
			Left:  Text("a"),
			Word:  "and",
			Right: Text("b"),
		},
		Word:  "but",
		Right: Text("c"),
	}

	assert.Equal(t, "a, and b, but c", msg.RenderMessage(r))
}
