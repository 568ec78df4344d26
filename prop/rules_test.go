package prop

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/pathsem/term"
)

func TestIntroDischarges(t *testing.T) {
	hb := Assume(b)
	th, err := Intro(a, func(x Theorem) (Theorem, error) { return Both(x, hb) })
	require.NoError(t, err)
	assert.True(t, th.Proves(term.Imply{Left: a, Right: term.And{Left: a, Right: b}}))
	assert.Equal(t, []term.Prop{b}, th.Hyps())

	out, err := Apply(th, Assume(a))
	require.NoError(t, err)
	assert.True(t, out.Proves(term.And{Left: a, Right: b}))
	assert.Equal(t, []term.Prop{a, b}, out.Hyps())
}

func TestIntroPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := Intro(a, func(Theorem) (Theorem, error) { return Theorem{}, boom })
	assert.ErrorIs(t, err, boom)

	_, err = Intro(a, func(Theorem) (Theorem, error) { return Theorem{}, nil })
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestApplyRejects(t *testing.T) {
	_, err := Apply(Assume(a), Assume(a))
	assert.ErrorIs(t, err, ErrMismatch)

	_, err = Apply(Assume(term.Imply{Left: a, Right: b}), Assume(b))
	assert.ErrorIs(t, err, ErrMismatch)

	_, err = Apply(Theorem{}, Assume(a))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestNotIsImplyFalse(t *testing.T) {
	na := Assume(term.Not{Arg: a})
	f, err := Apply(na, Assume(a))
	require.NoError(t, err)
	assert.True(t, f.Proves(term.False{}))

	x, err := Absurd(f, c)
	require.NoError(t, err)
	assert.True(t, x.Proves(c))

	_, err = Absurd(Assume(a), c)
	assert.ErrorIs(t, err, ErrMismatch)
}

func TestCases(t *testing.T) {
	or := Assume(term.Or{Left: a, Right: b})
	th, err := Cases(or, term.Or{Left: b, Right: a},
		func(x Theorem) (Theorem, error) { return Right(b, x) },
		func(y Theorem) (Theorem, error) { return Left(y, a) })
	require.NoError(t, err)
	assert.True(t, th.Proves(term.Or{Left: b, Right: a}))
	assert.Equal(t, or.Hyps(), th.Hyps())

	_, err = Cases(or, a, identity, identity)
	assert.ErrorIs(t, err, ErrMismatch)
}

func TestEqIntroAndProjections(t *testing.T) {
	ab := Assume(term.Imply{Left: a, Right: b})
	ba := Assume(term.Imply{Left: b, Right: a})

	eq, err := EqIntro(ab, ba)
	require.NoError(t, err)
	assert.True(t, eq.Proves(term.Eq{Left: a, Right: b}))

	to, err := EqTo(eq)
	require.NoError(t, err)
	assert.True(t, to.Proves(ab.Concl()))
	from, err := EqFrom(eq)
	require.NoError(t, err)
	assert.True(t, from.Proves(ba.Concl()))

	_, err = EqIntro(ab, ab)
	assert.ErrorIs(t, err, ErrMismatch)
	_, err = EqTo(ab)
	assert.ErrorIs(t, err, ErrMismatch)
}

func TestNecessitate(t *testing.T) {
	_, err := Necessitate(Assume(a))
	assert.ErrorIs(t, err, ErrOpen)

	id, err := Intro(a, identity)
	require.NoError(t, err)
	box, err := Necessitate(id)
	require.NoError(t, err)
	assert.True(t, box.Proves(term.Pow(a, a)))
	assert.Equal(t, "⊢ a^a", box.String())

	imp, err := Unbox(box)
	require.NoError(t, err)
	assert.True(t, imp.Proves(term.Imply{Left: a, Right: a}))

	ba := Assume(term.Tauto{Arg: a})
	out, err := BoxApply(box, ba)
	require.NoError(t, err)
	assert.True(t, out.Proves(term.Tauto{Arg: a}))

	_, err = BoxApply(box, Assume(term.Tauto{Arg: b}))
	assert.ErrorIs(t, err, ErrMismatch)
	_, err = Unbox(Assume(a))
	assert.ErrorIs(t, err, ErrMismatch)
}
