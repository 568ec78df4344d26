package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/pathsem/term"
)

func TestEveryEntryBuildsClosed(t *testing.T) {
	for _, e := range All() {
		t.Run(e.Name, func(t *testing.T) {
			th, err := e.Build()
			require.NoError(t, err)
			assert.True(t, th.Closed(), "%s is open: %s", e.Name, th)
			assert.NotEmpty(t, e.Description)
		})
	}
}

func TestConclusions(t *testing.T) {
	ab := term.And{Left: a, Right: b}
	tests := []struct {
		name string
		want term.Prop
	}{
		{"and_commute", term.Imply{Left: ab, Right: term.And{Left: b, Right: a}}},
		{"de_morgan", term.Imply{
			Left:  term.And{Left: term.Not{Arg: a}, Right: term.Not{Arg: b}},
			Right: term.Not{Arg: term.Or{Left: a, Right: b}},
		}},
		{"pord_trans", term.POrd{Upper: term.Or{Left: ab, Right: c}, Lower: a}},
		{"norm1_inv", term.Eq{
			Left:  term.Comp{Outer: term.Comp{Outer: term.Id{}, Inner: term.Id{}}, Inner: term.Inv{Fn: f}},
			Right: term.Inv{Fn: f},
		}},
		{"funext_round_trip", term.Imply{Left: sig(f, g).TautoEq(), Right: sig(f, g).TautoEq()}},
		{"funext_symmetry", term.Imply{Left: sig(f, g).Ty(), Right: sig(g, f).Ty()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Lookup(tt.name)
			require.NoError(t, err)
			th, err := e.Build()
			require.NoError(t, err)
			assert.True(t, th.Proves(tt.want), "got %s", th.Concl())
		})
	}
}

func TestLookup(t *testing.T) {
	_, err := Lookup("no_such_theorem")
	assert.ErrorIs(t, err, ErrUnknown)

	names := Names()
	assert.IsIncreasing(t, names)
	assert.Len(t, names, len(entries))
	assert.Contains(t, names, "inverse_round_trip")
}
