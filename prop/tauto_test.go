package prop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/pathsem/term"
)

func TestBoxMap(t *testing.T) {
	ba := Assume(term.Pow(b, a))
	cb := Assume(term.Pow(c, b))

	ca, err := PowTrans(ba, cb)
	require.NoError(t, err)
	assert.True(t, ca.Proves(term.Pow(c, a)))
	assert.ElementsMatch(t, []term.Prop{ba.Concl(), cb.Concl()}, ca.Hyps())

	y, err := PowApply(ca, Assume(a))
	require.NoError(t, err)
	assert.True(t, y.Proves(c))

	imp, err := PowToImply(ca)
	require.NoError(t, err)
	assert.True(t, imp.Proves(term.Imply{Left: a, Right: c}))
}

func TestBoxMapRejectsOpenBuild(t *testing.T) {
	hc := Assume(c)
	_, err := BoxMap(func(args ...Theorem) (Theorem, error) {
		return Both(args[0], hc)
	}, Assume(term.Tauto{Arg: a}))
	assert.ErrorIs(t, err, ErrOpen)
}

func TestTautoEq(t *testing.T) {
	ab := Assume(term.Tauto{Arg: term.Eq{Left: a, Right: b}})
	bc := Assume(term.Tauto{Arg: term.Eq{Left: b, Right: c}})

	ba, err := TautoEqSym(ab)
	require.NoError(t, err)
	assert.True(t, ba.Proves(term.Tauto{Arg: term.Eq{Left: b, Right: a}}))

	ac, err := TautoEqTrans(ab, bc)
	require.NoError(t, err)
	assert.True(t, ac.Proves(term.Tauto{Arg: term.Eq{Left: a, Right: c}}))

	eq, err := PowEqToTautoEq(Assume(term.Pow(b, a)), Assume(term.Pow(a, b)))
	require.NoError(t, err)
	assert.True(t, eq.Proves(ab.Concl()))

	refl := TautoEqRefl(a)
	assert.True(t, refl.Closed())
}
