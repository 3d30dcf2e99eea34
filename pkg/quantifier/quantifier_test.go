package quantifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantifier_String(t *testing.T) {
	tests := []struct {
		q    Quantifier
		want string
	}{
		{All(), "all"},
		{AtLeast(2), "atLeast(2)"},
		{AtMost(3), "atMost(3)"},
		{Exactly(1), "exactly(1)"},
		{No(), "no"},
		{Between(2, 4), "between(2, 4)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.String())
		})
	}
}

func TestQuantifier_Satisfied(t *testing.T) {
	tests := []struct {
		name    string
		q       Quantifier
		matched int
		total   int
		want    bool
	}{
		{"all of all", All(), 3, 3, true},
		{"all with one miss", All(), 2, 3, false},
		{"all vacuous on empty", All(), 0, 0, true},
		{"atLeast met", AtLeast(2), 2, 5, true},
		{"atLeast exceeded", AtLeast(2), 4, 5, true},
		{"atLeast unmet", AtLeast(2), 1, 5, false},
		{"atLeast vacuous fail", AtLeast(1), 0, 0, false},
		{"atMost met", AtMost(2), 2, 5, true},
		{"atMost under", AtMost(2), 0, 5, true},
		{"atMost over", AtMost(2), 3, 5, false},
		{"exactly met", Exactly(2), 2, 5, true},
		{"exactly under", Exactly(2), 1, 5, false},
		{"exactly over", Exactly(2), 3, 5, false},
		{"exactly vacuous fail", Exactly(1), 0, 0, false},
		{"no with none", No(), 0, 5, true},
		{"no with one", No(), 1, 5, false},
		{"no vacuous on empty", No(), 0, 0, true},
		{"between inside", Between(2, 4), 3, 5, true},
		{"between low edge", Between(2, 4), 2, 5, true},
		{"between high edge", Between(2, 4), 4, 5, true},
		{"between under", Between(2, 4), 1, 5, false},
		{"between over", Between(2, 4), 5, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want,
				tt.q.satisfied(tt.matched, tt.total))
		})
	}
}
