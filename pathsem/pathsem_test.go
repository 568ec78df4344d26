package pathsem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/pathsem/prop"
	"github.com/rfielding/pathsem/term"
)

var (
	a = term.Var("a")
	b = term.Var("b")
	c = term.Var("c")
	d = term.Var("d")
)

func TestBelow(t *testing.T) {
	tests := []struct {
		upper, lower term.Prop
	}{
		{term.And{Left: a, Right: b}, a},
		{term.And{Left: a, Right: b}, b},
		{term.Or{Left: a, Right: b}, b},
		{term.Imply{Left: a, Right: b}, a},
		{term.Not{Arg: a}, a},
		{term.Not{Arg: a}, term.False{}},
		{term.POrd{Upper: a, Lower: b}, b},
		{term.Eq{Left: a, Right: b}, term.Imply{Left: a, Right: b}},
		{term.Eq{Left: a, Right: b}, term.Imply{Left: b, Right: a}},
		{term.Eq{Left: a, Right: term.False{}}, term.Not{Arg: a}},
	}
	for _, tt := range tests {
		th, err := Below(tt.upper, tt.lower)
		require.NoError(t, err, tt.upper)
		assert.True(t, th.Proves(term.POrd{Upper: tt.upper, Lower: tt.lower}))
		assert.True(t, th.Closed())
	}
}

func TestBelowRejects(t *testing.T) {
	ab := term.And{Left: a, Right: b}
	for _, tt := range []struct{ upper, lower term.Prop }{
		{ab, ab},
		{ab, c},
		{term.Eq{Left: a, Right: b}, a},
		{term.Eq{Left: a, Right: b}, term.And{Left: term.Imply{Left: a, Right: b}, Right: term.Imply{Left: b, Right: a}}},
		{a, a},
		{term.And{Left: term.And{Left: a, Right: b}, Right: c}, a},
	} {
		_, err := Below(tt.upper, tt.lower)
		assert.ErrorIs(t, err, prop.ErrMismatch)
	}
}

func TestTransAndTransport(t *testing.T) {
	abc := term.And{Left: term.And{Left: a, Right: b}, Right: c}
	outer, err := Below(abc, term.And{Left: a, Right: b})
	require.NoError(t, err)
	inner, err := Below(term.And{Left: a, Right: b}, a)
	require.NoError(t, err)

	th, err := Trans(outer, inner)
	require.NoError(t, err)
	assert.True(t, th.Proves(term.POrd{Upper: abc, Lower: a}))

	_, err = Trans(inner, outer)
	assert.ErrorIs(t, err, prop.ErrMismatch)

	left, err := ByEqLeft(inner, prop.Assume(term.Eq{Left: term.And{Left: a, Right: b}, Right: d}))
	require.NoError(t, err)
	assert.True(t, left.Proves(term.POrd{Upper: d, Lower: a}))
	assert.False(t, left.Closed())

	right, err := ByEqRight(inner, prop.Assume(term.Eq{Left: a, Right: d}))
	require.NoError(t, err)
	assert.True(t, right.Proves(term.POrd{Upper: term.And{Left: a, Right: b}, Lower: d}))

	_, err = ByEqRight(inner, prop.Assume(term.Eq{Left: b, Right: d}))
	assert.ErrorIs(t, err, prop.ErrMismatch)

	assert.True(t, TrueFalse().Proves(term.POrd{Upper: term.True{}, Lower: term.False{}}))
}

func TestLift(t *testing.T) {
	core := prop.Assume(Core(a, b, c, d))
	eq := prop.Assume(term.Eq{Left: a, Right: b})
	pord := prop.Assume(term.POrd{Upper: a, Lower: c})
	i1 := prop.Assume(term.Imply{Left: a, Right: c})
	i2 := prop.Assume(term.Imply{Left: b, Right: d})

	th, err := Lift(core, eq, pord, i1, i2)
	require.NoError(t, err)
	assert.True(t, th.Proves(term.Eq{Left: c, Right: d}))
	assert.Len(t, th.Hyps(), 5)

	_, err = Lift(core, eq, pord, i2, i1)
	assert.ErrorIs(t, err, prop.ErrMismatch)
	_, err = Lift(eq, eq, pord, i1, i2)
	assert.ErrorIs(t, err, prop.ErrMismatch)
}

// chain holds the witnesses between the levels of a tower a1/a2 > ... of
// core instances.
type chain struct {
	lv [][2]term.Prop
}

func (ch chain) core(i, j int) Theorem {
	return prop.Assume(Core(ch.lv[i][0], ch.lv[i][1], ch.lv[j][0], ch.lv[j][1]))
}

func (ch chain) pord(i, j int) Theorem {
	return prop.Assume(term.POrd{Upper: ch.lv[i][0], Lower: ch.lv[j][0]})
}

func (ch chain) imply(i, j, k int) Theorem {
	return prop.Assume(term.Imply{Left: ch.lv[i][k], Right: ch.lv[j][k]})
}

func (ch chain) compose(t *testing.T, f, g Theorem, i, j, k int) Theorem {
	th, err := Compose(f, g, ch.pord(i, j), ch.pord(j, k),
		ch.imply(i, j, 0), ch.imply(i, j, 1), ch.imply(j, k, 0), ch.imply(j, k, 1))
	require.NoError(t, err)
	return th
}

func TestComposeAssociative(t *testing.T) {
	ch := chain{lv: [][2]term.Prop{
		{term.Var("f1"), term.Var("f2")},
		{term.Var("g1"), term.Var("g2")},
		{term.Var("h1"), term.Var("h2")},
		{term.Var("x1"), term.Var("x2")},
	}}

	left := ch.compose(t, ch.compose(t, ch.core(0, 1), ch.core(1, 2), 0, 1, 2), ch.core(2, 3), 0, 2, 3)
	right := ch.compose(t, ch.core(0, 1), ch.compose(t, ch.core(1, 2), ch.core(2, 3), 1, 2, 3), 0, 1, 3)

	want := Core(term.Var("f1"), term.Var("f2"), term.Var("x1"), term.Var("x2"))
	assert.True(t, left.Proves(want))
	assert.True(t, right.Proves(want))

	eq := prop.Assume(term.Eq{Left: term.Var("f1"), Right: term.Var("f2")})
	args := []Theorem{eq, ch.pord(0, 3), ch.imply(0, 3, 0), ch.imply(0, 3, 1)}
	l, err := Lift(left, args[0], args[1], args[2], args[3])
	require.NoError(t, err)
	r, err := Lift(right, args[0], args[1], args[2], args[3])
	require.NoError(t, err)
	assert.Equal(t, l.Concl(), r.Concl())

	_, err = Compose(ch.core(0, 1), ch.core(2, 3), ch.pord(0, 2), ch.pord(2, 3),
		ch.imply(0, 2, 0), ch.imply(0, 2, 1), ch.imply(2, 3, 0), ch.imply(2, 3, 1))
	assert.ErrorIs(t, err, prop.ErrMismatch)
}

func TestPAndRoundTrip(t *testing.T) {
	ab := term.And{Left: a, Right: b}
	fst, err := ToPAndFst(prop.Assume(Core(ab, c, a, d)))
	require.NoError(t, err)
	assert.True(t, fst.Proves(PAndFst(a, b, c, d)))

	snd, err := ToPAndSnd(prop.Assume(Core(ab, c, b, d)))
	require.NoError(t, err)
	assert.True(t, snd.Proves(PAndSnd(a, b, c, d)))

	joined, err := PAndJoin(fst, snd)
	require.NoError(t, err)
	assert.True(t, joined.Proves(Core(ab, c, ab, d)))

	again, err := ToPAndFst(prop.Assume(joined.Concl()))
	assert.ErrorIs(t, err, prop.ErrMismatch, "a ⋀ b is not an operand of itself")
	assert.False(t, again.Valid())

	_, err = ToPAndFst(prop.Assume(Core(ab, c, b, d)))
	assert.ErrorIs(t, err, prop.ErrMismatch)
	_, err = PAndJoin(snd, fst)
	assert.ErrorIs(t, err, prop.ErrMismatch)
}

func TestTy(t *testing.T) {
	imp := prop.Assume(term.Imply{Left: a, Right: b})
	pord := prop.Assume(term.POrd{Upper: a, Lower: b})

	ty, err := TyIntro(imp, pord)
	require.NoError(t, err)
	assert.True(t, ty.Proves(term.Ty{Elem: a, Type: b}))

	x, err := TyTriv(ty, prop.Assume(a))
	require.NoError(t, err)
	assert.True(t, x.Proves(b))

	_, err = TyIntro(imp, prop.Assume(term.POrd{Upper: b, Lower: a}))
	assert.ErrorIs(t, err, prop.ErrMismatch)

	moved, err := TyInLeftArg(ty, prop.Assume(term.Eq{Left: a, Right: c}))
	require.NoError(t, err)
	assert.True(t, moved.Proves(term.Ty{Elem: c, Type: b}))
	assert.True(t, moved.IsAxiom())

	moved, err = TyInRightArg(ty, prop.Assume(term.Eq{Left: b, Right: c}))
	require.NoError(t, err)
	assert.True(t, moved.Proves(term.Ty{Elem: a, Type: c}))

	eq, err := TyEqLeft(prop.Assume(term.Eq{Left: a, Right: c}), b)
	require.NoError(t, err)
	assert.True(t, eq.Proves(term.Eq{Left: term.Ty{Elem: a, Type: b}, Right: term.Ty{Elem: c, Type: b}}))

	q, err := TyQFormation(ty, prop.Assume(term.Ty{Elem: c, Type: d}))
	require.NoError(t, err)
	assert.True(t, q.Proves(term.Ty{Elem: term.Q{Left: a, Right: c}, Type: term.Q{Left: b, Right: d}}))
}
