package prop

import (
	"github.com/rfielding/pathsem/internal/kernel"
	"github.com/rfielding/pathsem/term"
)

// Commute proves b ⋀ a from a ⋀ b.
func Commute(ab Theorem) (Theorem, error) {
	a, err := First(ab)
	if err != nil {
		return Theorem{}, err
	}
	b := must(Second(ab))
	return Both(b, a)
}

// Assoc proves a ⋀ (b ⋀ c) from (a ⋀ b) ⋀ c.
func Assoc(abc Theorem) (Theorem, error) {
	ab, err := First(abc)
	if err != nil {
		return Theorem{}, err
	}
	a, err := First(ab)
	if err != nil {
		return Theorem{}, err
	}
	b := must(Second(ab))
	c := must(Second(abc))
	return Both(a, must(Both(b, c)))
}

// RevAssoc proves (a ⋀ b) ⋀ c from a ⋀ (b ⋀ c).
func RevAssoc(abc Theorem) (Theorem, error) {
	bc, err := Second(abc)
	if err != nil {
		return Theorem{}, err
	}
	b, err := First(bc)
	if err != nil {
		return Theorem{}, err
	}
	a := must(First(abc))
	c := must(Second(bc))
	return Both(must(Both(a, b)), c)
}

// Distrib proves (a ⋀ b) ⋁ (a ⋀ c) from a ⋀ (b ⋁ c).
func Distrib(th Theorem) (Theorem, error) {
	bc, err := Second(th)
	if err != nil {
		return Theorem{}, err
	}
	a := must(First(th))
	o, ok := bc.Concl().(term.Or)
	if !ok {
		return Theorem{}, kernel.Reject("distrib", "%s is not a disjunction", bc.Concl())
	}
	ab := term.And{Left: a.Concl(), Right: o.Left}
	ac := term.And{Left: a.Concl(), Right: o.Right}
	return Cases(bc, term.Or{Left: ab, Right: ac},
		func(b Theorem) (Theorem, error) { return Left(must(Both(a, b)), ac) },
		func(c Theorem) (Theorem, error) { return Right(ab, must(Both(a, c))) })
}

// RevDistrib proves a ⋀ (b ⋁ c) from (a ⋀ b) ⋁ (a ⋀ c).
func RevDistrib(th Theorem) (Theorem, error) {
	if err := kernel.Require("rev_distrib", th); err != nil {
		return Theorem{}, err
	}
	o, ok := th.Concl().(term.Or)
	if !ok {
		return Theorem{}, kernel.Reject("rev_distrib", "%s is not a disjunction", th.Concl())
	}
	ab, ok1 := o.Left.(term.And)
	ac, ok2 := o.Right.(term.And)
	if !ok1 || !ok2 || !term.Equal(ab.Left, ac.Left) {
		return Theorem{}, kernel.Reject("rev_distrib", "%s is not (a ⋀ b) ⋁ (a ⋀ c)", th.Concl())
	}
	goal := term.And{Left: ab.Left, Right: term.Or{Left: ab.Right, Right: ac.Right}}
	return Cases(th, goal,
		func(x Theorem) (Theorem, error) {
			return Both(must(First(x)), must(Left(must(Second(x)), ac.Right)))
		},
		func(x Theorem) (Theorem, error) {
			return Both(must(First(x)), must(Right(ab.Right, must(Second(x)))))
		})
}

// ExcLeft proves b from ¬a ⋀ (a ⋁ b).
func ExcLeft(th Theorem) (Theorem, error) {
	na, or, err := split("exc_left", th)
	if err != nil {
		return Theorem{}, err
	}
	o, ok := or.Concl().(term.Or)
	if !ok || !term.Equal(na.Concl(), term.Not{Arg: o.Left}) {
		return Theorem{}, kernel.Reject("exc_left", "%s is not ¬a ⋀ (a ⋁ b)", th.Concl())
	}
	return Cases(or, o.Right,
		func(a Theorem) (Theorem, error) { return Absurd(must(Apply(na, a)), o.Right) },
		identity)
}

// ExcRight proves a from ¬b ⋀ (a ⋁ b).
func ExcRight(th Theorem) (Theorem, error) {
	nb, or, err := split("exc_right", th)
	if err != nil {
		return Theorem{}, err
	}
	o, ok := or.Concl().(term.Or)
	if !ok || !term.Equal(nb.Concl(), term.Not{Arg: o.Right}) {
		return Theorem{}, kernel.Reject("exc_right", "%s is not ¬b ⋀ (a ⋁ b)", th.Concl())
	}
	return Cases(or, o.Left,
		identity,
		func(b Theorem) (Theorem, error) { return Absurd(must(Apply(nb, b)), o.Left) })
}

// ExcBoth proves false from (¬a ⋀ ¬b) ⋀ (a ⋁ b).
func ExcBoth(th Theorem) (Theorem, error) {
	nn, or, err := split("exc_both", th)
	if err != nil {
		return Theorem{}, err
	}
	na, nb, err := split("exc_both", nn)
	if err != nil {
		return Theorem{}, err
	}
	o, ok := or.Concl().(term.Or)
	if !ok || !term.Equal(nn.Concl(), term.And{Left: term.Not{Arg: o.Left}, Right: term.Not{Arg: o.Right}}) {
		return Theorem{}, kernel.Reject("exc_both", "%s is not (¬a ⋀ ¬b) ⋀ (a ⋁ b)", th.Concl())
	}
	return Cases(or, term.False{},
		func(a Theorem) (Theorem, error) { return Apply(na, a) },
		func(b Theorem) (Theorem, error) { return Apply(nb, b) })
}

// ToDeMorgan proves ¬(a ⋁ b) from ¬a ⋀ ¬b.
func ToDeMorgan(th Theorem) (Theorem, error) {
	na, nb, err := split("to_de_morgan", th)
	if err != nil {
		return Theorem{}, err
	}
	a, ok1 := negated(na)
	b, ok2 := negated(nb)
	if !ok1 || !ok2 {
		return Theorem{}, kernel.Reject("to_de_morgan", "%s is not ¬a ⋀ ¬b", th.Concl())
	}
	return Intro(term.Or{Left: a, Right: b}, func(or Theorem) (Theorem, error) {
		return ExcBoth(must(Both(th, or)))
	})
}

// FromDeMorgan proves ¬a ⋀ ¬b from ¬(a ⋁ b).
func FromDeMorgan(th Theorem) (Theorem, error) {
	if err := kernel.Require("from_de_morgan", th); err != nil {
		return Theorem{}, err
	}
	p, ok := negated(th)
	o, isOr := p.(term.Or)
	if !ok || !isOr {
		return Theorem{}, kernel.Reject("from_de_morgan", "%s is not ¬(a ⋁ b)", th.Concl())
	}
	na := must(Intro(o.Left, func(a Theorem) (Theorem, error) {
		return Apply(th, must(Left(a, o.Right)))
	}))
	nb := must(Intro(o.Right, func(b Theorem) (Theorem, error) {
		return Apply(th, must(Right(o.Left, b)))
	}))
	return Both(na, nb)
}

// FalseArg returns the false component of false ⋀ a.
func FalseArg(th Theorem) (Theorem, error) {
	f, _, err := split("false_arg", th)
	if err != nil {
		return Theorem{}, err
	}
	if err := kernel.Expect("false_arg", f, term.False{}); err != nil {
		return Theorem{}, err
	}
	return f, nil
}

// TrueArg proves a from true ⋀ a.
func TrueArg(th Theorem) (Theorem, error) {
	t, a, err := split("true_arg", th)
	if err != nil {
		return Theorem{}, err
	}
	if err := kernel.Expect("true_arg", t, term.True{}); err != nil {
		return Theorem{}, err
	}
	return a, nil
}

// InLeftArg proves c ⋀ b from a ⋀ b and a => c.
func InLeftArg(ab, ac Theorem) (Theorem, error) {
	a, b, err := split("in_left_arg", ab)
	if err != nil {
		return Theorem{}, err
	}
	c, err := Apply(ac, a)
	if err != nil {
		return Theorem{}, err
	}
	return Both(c, b)
}

// InRightArg proves a ⋀ c from a ⋀ b and b => c.
func InRightArg(ab, bc Theorem) (Theorem, error) {
	a, b, err := split("in_right_arg", ab)
	if err != nil {
		return Theorem{}, err
	}
	c, err := Apply(bc, b)
	if err != nil {
		return Theorem{}, err
	}
	return Both(a, c)
}

// ToImply proves ¬(a => b) from a ⋀ ¬b.
func ToImply(th Theorem) (Theorem, error) {
	a, nb, err := split("to_imply", th)
	if err != nil {
		return Theorem{}, err
	}
	b, ok := negated(nb)
	if !ok {
		return Theorem{}, kernel.Reject("to_imply", "%s is not a ⋀ ¬b", th.Concl())
	}
	return Intro(term.Imply{Left: a.Concl(), Right: b}, func(ab Theorem) (Theorem, error) {
		return Apply(nb, must(Apply(ab, a)))
	})
}

// FromImply proves a ⋀ ¬b from ¬(a => b) when a is decidable.
func FromImply(d Decider, th Theorem) (Theorem, error) {
	if err := kernel.Require("from_imply", th); err != nil {
		return Theorem{}, err
	}
	p, ok := negated(th)
	if !ok {
		return Theorem{}, kernel.Reject("from_imply", "%s is not ¬(a => b)", th.Concl())
	}
	a, b, ok := term.Implication(p)
	if !ok {
		return Theorem{}, kernel.Reject("from_imply", "%s is not ¬(a => b)", th.Concl())
	}
	da, err := decide("from_imply", d, a)
	if err != nil {
		return Theorem{}, err
	}
	goal := term.And{Left: a, Right: term.Not{Arg: b}}
	return Cases(da, goal,
		func(ha Theorem) (Theorem, error) {
			nb := must(Intro(b, func(hb Theorem) (Theorem, error) {
				return Apply(th, must(Intro(a, func(Theorem) (Theorem, error) { return hb, nil })))
			}))
			return Both(ha, nb)
		},
		func(na Theorem) (Theorem, error) {
			ab := must(Intro(a, func(x Theorem) (Theorem, error) {
				return Absurd(must(Apply(na, x)), b)
			}))
			return Absurd(must(Apply(th, ab)), goal)
		})
}

// ToEqPos proves a == b from a ⋀ b.
func ToEqPos(th Theorem) (Theorem, error) {
	a, b, err := split("to_eq_pos", th)
	if err != nil {
		return Theorem{}, err
	}
	return EqIntro(constant(a.Concl(), b), constant(b.Concl(), a))
}

// ToEqNeg proves a == b from ¬a ⋀ ¬b.
func ToEqNeg(th Theorem) (Theorem, error) {
	na, nb, err := split("to_eq_neg", th)
	if err != nil {
		return Theorem{}, err
	}
	a, ok1 := negated(na)
	b, ok2 := negated(nb)
	if !ok1 || !ok2 {
		return Theorem{}, kernel.Reject("to_eq_neg", "%s is not ¬a ⋀ ¬b", th.Concl())
	}
	ab := must(Intro(a, func(x Theorem) (Theorem, error) { return Absurd(must(Apply(na, x)), b) }))
	ba := must(Intro(b, func(x Theorem) (Theorem, error) { return Absurd(must(Apply(nb, x)), a) }))
	return EqIntro(ab, ba)
}

// AndToOr proves a ⋁ b from a ⋀ b.
func AndToOr(th Theorem) (Theorem, error) {
	a, b, err := split("and_to_or", th)
	if err != nil {
		return Theorem{}, err
	}
	return Left(a, b.Concl())
}

func split(rule string, th Theorem) (a, b Theorem, err error) {
	if _, _, err := and(rule, th); err != nil {
		return Theorem{}, Theorem{}, err
	}
	return must(First(th)), must(Second(th)), nil
}

func negated(th Theorem) (term.Prop, bool) {
	n, ok := th.Concl().(term.Not)
	if !ok {
		return nil, false
	}
	return n.Arg, true
}

func identity(th Theorem) (Theorem, error) { return th, nil }

// constant proves a => b from b, ignoring the assumption.
func constant(a term.Prop, b Theorem) Theorem {
	return must(Intro(a, func(Theorem) (Theorem, error) { return b, nil }))
}
