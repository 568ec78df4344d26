package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	a, b := Var("a"), Var("b")

	tests := []struct {
		p    Prop
		want string
	}{
		{And{Left: a, Right: b}, "(a ⋀ b)"},
		{Or{Left: a, Right: Not{Arg: b}}, "(a ⋁ ¬b)"},
		{Imply{Left: a, Right: b}, "(a => b)"},
		{Eq{Left: True{}, Right: False{}}, "(true == false)"},
		{POrd{Upper: And{Left: a, Right: b}, Lower: a}, "pord((a ⋀ b), a)"},
		{App{Fn: Inv{Fn: Id{}}, Arg: a}, "inv(id)(a)"},
		{Comp{Outer: a, Inner: b}, "(a . b)"},
		{Subst{Expr: a, From: b, To: True{}}, "a[b := true]"},
		{Lam{Param: Ty{Elem: a, Type: b}, Body: a}, "\\((a : b)) = a"},
		{Type{Level: 2}, "type(2)"},
		{Q{Left: a, Right: b}, "(a ~~ b)"},
		{Qu{Arg: a}, "~a"},
		{Pow(b, a), "b^a"},
		{Tauto{Arg: a}, "a^true"},
		{Pow(False{}, a), "false^a"},
		{Tup3(a, b, Fst{}), "(a, (b, fst))"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.p.String())
	}
}

func TestNormalize(t *testing.T) {
	a := Var("a")

	got := Normalize(And{Left: Imply{Left: a, Right: False{}}, Right: a})
	assert.Equal(t, And{Left: Not{Arg: a}, Right: a}, got)

	assert.True(t, Equal(Imply{Left: a, Right: False{}}, Not{Arg: a}))
	assert.False(t, Equal(Imply{Left: a, Right: True{}}, Not{Arg: a}))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(a, nil))
}

func TestImplication(t *testing.T) {
	a, b := Var("a"), Var("b")

	l, r, ok := Implication(Imply{Left: a, Right: b})
	assert.True(t, ok)
	assert.Equal(t, a, l)
	assert.Equal(t, b, r)

	l, r, ok = Implication(Not{Arg: a})
	assert.True(t, ok)
	assert.Equal(t, a, l)
	assert.Equal(t, Prop(False{}), r)

	_, _, ok = Implication(And{Left: a, Right: b})
	assert.False(t, ok)
}

func TestOperands(t *testing.T) {
	a, b := Var("a"), Var("b")

	l, r, ok := Operands(POrd{Upper: a, Lower: b})
	assert.True(t, ok)
	assert.Equal(t, a, l)
	assert.Equal(t, b, r)

	l, r, ok = Operands(Eq{Left: a, Right: b})
	assert.True(t, ok)
	assert.Equal(t, Prop(Imply{Left: a, Right: b}), l)
	assert.Equal(t, Prop(Imply{Left: b, Right: a}), r)

	l, _, ok = Operands(Eq{Left: a, Right: False{}})
	assert.True(t, ok)
	assert.Equal(t, Prop(Not{Arg: a}), l)

	_, _, ok = Operands(Ty{Elem: a, Type: b})
	assert.False(t, ok)
}

func TestContains(t *testing.T) {
	a, b := Var("a"), Var("b")
	ab := And{Left: a, Right: Or{Left: b, Right: True{}}}

	assert.True(t, Contains(ab, a))
	assert.True(t, Contains(ab, b))
	assert.True(t, Contains(ab, Or{Left: b, Right: True{}}))
	assert.False(t, Contains(ab, ab))
	assert.False(t, Contains(a, a))
	assert.Equal(t, 5, Size(ab))
}

func TestPower(t *testing.T) {
	a, b := Var("a"), Var("b")

	y, x, ok := Power(Pow(b, a))
	assert.True(t, ok)
	assert.Equal(t, Prop(b), y)
	assert.Equal(t, Prop(a), x)

	y, _, ok = Power(Pow(False{}, a))
	assert.True(t, ok)
	assert.Equal(t, Prop(False{}), y)

	_, _, ok = Power(Tauto{Arg: a})
	assert.False(t, ok)
}
