package prop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/pathsem/term"
)

func TestHypotheticalDecides(t *testing.T) {
	d := NewHypothetical(a, b)

	tests := []struct {
		name string
		p    term.Prop
		hyps int
	}{
		{"true", term.True{}, 0},
		{"false", term.False{}, 0},
		{"atom", a, 1},
		{"not", term.Not{Arg: a}, 1},
		{"and", term.And{Left: a, Right: b}, 2},
		{"or", term.Or{Left: a, Right: term.True{}}, 1},
		{"imply", term.Imply{Left: a, Right: b}, 2},
		{"eq", term.Eq{Left: a, Right: term.Not{Arg: b}}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, err := d.Decide(tt.p)
			require.NoError(t, err)
			assert.True(t, th.Proves(term.Or{Left: tt.p, Right: term.Not{Arg: tt.p}}))
			assert.Len(t, th.Hyps(), tt.hyps)
		})
	}
}

func TestHypotheticalUndecidable(t *testing.T) {
	_, err := NewHypothetical(a).Decide(term.And{Left: a, Right: c})
	assert.ErrorIs(t, err, ErrUndecidable)

	_, err = NewHypothetical().Decide(term.POrd{Upper: a, Lower: b})
	assert.ErrorIs(t, err, ErrUndecidable)
}

func TestDeciderFuncChecked(t *testing.T) {
	liar := DeciderFunc(func(term.Prop) (Theorem, error) {
		return Assume(term.Or{Left: b, Right: term.Not{Arg: b}}), nil
	})
	_, err := RevDoubleNeg(liar, Assume(term.Not{Arg: term.Not{Arg: a}}))
	assert.ErrorIs(t, err, ErrMismatch)
}
