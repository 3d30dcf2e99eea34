package failure

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.matchers/pkg/match"
	"digital.vasic.matchers/pkg/render"
)

func TestPosition_String(t *testing.T) {
	p := Position{File: "assert_test.go", Line: 42}

	assert.Equal(t, "assert_test.go:42", p.String())
}

func TestSignal_Error(t *testing.T) {
	s := &Signal{
		Message: `"fee" did not equal "fum"`,
		Pos:     Position{File: "assert_test.go", Line: 7},
	}

	assert.Equal(t,
		`"fee" did not equal "fum" (assert_test.go:7)`,
		s.Error())
}

func TestCheck_PositiveResult(t *testing.T) {
	res := match.New(true,
		match.Text("unused"), match.Text("unused"))

	err := Check(res, Position{}, render.New())

	assert.NoError(t, err)
}

func TestCheck_NegativeResultRaisesSignal(t *testing.T) {
	res := match.New(false,
		match.Msg("didNotEqual", "fee", "fum"),
		match.Msg("equaled", "fee", "fum"),
	)
	pos := Position{File: "assert_test.go", Line: 3}

	err := Check(res, pos, render.New())

	require.Error(t, err)
	var sig *Signal
	require.True(t, errors.As(err, &sig))
	assert.Equal(t, `"fee" did not equal "fum"`, sig.Message)
	assert.Equal(t, pos, sig.Pos)
}

func TestCheckMidSentence_UsesMidVariant(t *testing.T) {
	res := match.NewFull(false,
		match.Text("Sentence start"),
		match.Text("negated"),
		match.Text("mid sentence"),
		match.Text("mid negated"),
	)

	err := CheckMidSentence(res, Position{}, render.New())

	require.Error(t, err)
	var sig *Signal
	require.True(t, errors.As(err, &sig))
	assert.Equal(t, "mid sentence", sig.Message)
}

func TestDuplicateValueError(t *testing.T) {
	err := &DuplicateValueError{
		Value: "fie",
		Pos:   Position{File: "contain_test.go", Line: 12},
	}

	assert.Contains(t, err.Error(), "fie")
	assert.Contains(t, err.Error(), "contain_test.go:12")

	// Distinguishable from an ordinary assertion failure.
	var sig *Signal
	assert.False(t, errors.As(error(err), &sig))
}

func TestToleranceError(t *testing.T) {
	err := &ToleranceError{
		Tolerance: -0.2,
		Pos:       Position{File: "tolerance_test.go", Line: 9},
	}

	assert.Contains(t, err.Error(), "-0.2")
	assert.Contains(t, err.Error(), "must be positive")
}

func TestUnknownCapabilityError(t *testing.T) {
	err := &UnknownCapabilityError{
		Name: "writable",
		Pos:  Position{File: "files_test.go", Line: 4},
	}

	assert.Contains(t, err.Error(), `"writable"`)
	assert.Contains(t, err.Error(), "files_test.go:4")
}
