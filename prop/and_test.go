package prop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/pathsem/term"
)

var (
	a = term.Var("a")
	b = term.Var("b")
	c = term.Var("c")
)

func TestCommuteRoundTrip(t *testing.T) {
	p := Assume(term.And{Left: a, Right: b})

	once, err := Commute(p)
	require.NoError(t, err)
	assert.True(t, once.Proves(term.And{Left: b, Right: a}))

	twice, err := Commute(once)
	require.NoError(t, err)
	assert.True(t, twice.Proves(p.Concl()))
	assert.Equal(t, p.Hyps(), twice.Hyps())
}

func TestAssocRoundTrip(t *testing.T) {
	p := Assume(term.And{Left: term.And{Left: a, Right: b}, Right: c})

	as, err := Assoc(p)
	require.NoError(t, err)
	assert.True(t, as.Proves(term.And{Left: a, Right: term.And{Left: b, Right: c}}))

	back, err := RevAssoc(as)
	require.NoError(t, err)
	assert.True(t, back.Proves(p.Concl()))
}

func TestDistribRoundTrip(t *testing.T) {
	p := Assume(term.And{Left: a, Right: term.Or{Left: b, Right: c}})
	want := term.Or{Left: term.And{Left: a, Right: b}, Right: term.And{Left: a, Right: c}}

	d, err := Distrib(p)
	require.NoError(t, err)
	assert.True(t, d.Proves(want))
	assert.Equal(t, p.Hyps(), d.Hyps())

	back, err := RevDistrib(d)
	require.NoError(t, err)
	assert.True(t, back.Proves(p.Concl()))

	q := Assume(want)
	r, err := RevDistrib(q)
	require.NoError(t, err)
	again, err := Distrib(r)
	require.NoError(t, err)
	assert.True(t, again.Proves(want))
	assert.Equal(t, q.Hyps(), again.Hyps())
}

func TestRevDistribRejects(t *testing.T) {
	_, err := RevDistrib(Assume(term.Or{Left: term.And{Left: a, Right: b}, Right: term.And{Left: b, Right: c}}))
	assert.ErrorIs(t, err, ErrMismatch)
}

func TestDeMorganRoundTrip(t *testing.T) {
	p := Assume(term.And{Left: term.Not{Arg: a}, Right: term.Not{Arg: b}})

	nor, err := ToDeMorgan(p)
	require.NoError(t, err)
	assert.True(t, nor.Proves(term.Not{Arg: term.Or{Left: a, Right: b}}))
	assert.Equal(t, p.Hyps(), nor.Hyps())

	back, err := FromDeMorgan(nor)
	require.NoError(t, err)
	assert.True(t, back.Proves(p.Concl()))

	na, err := First(back)
	require.NoError(t, err)
	assert.True(t, na.Proves(term.Imply{Left: a, Right: term.False{}}))
}

func TestExclusion(t *testing.T) {
	or := term.Or{Left: a, Right: b}

	th, err := ExcLeft(Assume(term.And{Left: term.Not{Arg: a}, Right: or}))
	require.NoError(t, err)
	assert.True(t, th.Proves(b))

	th, err = ExcRight(Assume(term.And{Left: term.Not{Arg: b}, Right: or}))
	require.NoError(t, err)
	assert.True(t, th.Proves(a))

	nn := term.And{Left: term.Not{Arg: a}, Right: term.Not{Arg: b}}
	th, err = ExcBoth(Assume(term.And{Left: nn, Right: or}))
	require.NoError(t, err)
	assert.True(t, th.Proves(term.False{}))

	_, err = ExcLeft(Assume(term.And{Left: term.Not{Arg: b}, Right: or}))
	assert.ErrorIs(t, err, ErrMismatch)
}

func TestBoundaryArgs(t *testing.T) {
	p := Assume(term.And{Left: term.False{}, Right: a})
	f, err := FalseArg(p)
	require.NoError(t, err)
	assert.True(t, f.Proves(term.False{}))
	assert.Equal(t, []Theorem{p}, f.Premises())

	x, err := TrueArg(Assume(term.And{Left: term.True{}, Right: a}))
	require.NoError(t, err)
	assert.True(t, x.Proves(a))

	_, err = FalseArg(Assume(term.And{Left: a, Right: a}))
	assert.ErrorIs(t, err, ErrMismatch)
	_, err = TrueArg(Assume(term.And{Left: a, Right: a}))
	assert.ErrorIs(t, err, ErrMismatch)
}

func TestArgRewrites(t *testing.T) {
	ab := Assume(term.And{Left: a, Right: b})

	th, err := InLeftArg(ab, Assume(term.Imply{Left: a, Right: c}))
	require.NoError(t, err)
	assert.True(t, th.Proves(term.And{Left: c, Right: b}))

	th, err = InRightArg(ab, Assume(term.Imply{Left: b, Right: c}))
	require.NoError(t, err)
	assert.True(t, th.Proves(term.And{Left: a, Right: c}))

	_, err = InRightArg(ab, Assume(term.Imply{Left: a, Right: c}))
	assert.ErrorIs(t, err, ErrMismatch)
}

func TestImplyAndEqForms(t *testing.T) {
	th, err := ToImply(Assume(term.And{Left: a, Right: term.Not{Arg: b}}))
	require.NoError(t, err)
	assert.True(t, th.Proves(term.Not{Arg: term.Imply{Left: a, Right: b}}))

	back, err := FromImply(NewHypothetical(a), th)
	require.NoError(t, err)
	assert.True(t, back.Proves(term.And{Left: a, Right: term.Not{Arg: b}}))
	assert.Contains(t, back.Hyps(), term.Prop(term.Or{Left: a, Right: term.Not{Arg: a}}))

	eq, err := ToEqPos(Assume(term.And{Left: a, Right: b}))
	require.NoError(t, err)
	assert.True(t, eq.Proves(term.Eq{Left: a, Right: b}))

	eq, err = ToEqNeg(Assume(term.And{Left: term.Not{Arg: a}, Right: term.Not{Arg: b}}))
	require.NoError(t, err)
	assert.True(t, eq.Proves(term.Eq{Left: a, Right: b}))

	or, err := AndToOr(Assume(term.And{Left: a, Right: b}))
	require.NoError(t, err)
	assert.True(t, or.Proves(term.Or{Left: a, Right: b}))
}
