package prop

import (
	"github.com/rfielding/pathsem/internal/kernel"
	"github.com/rfielding/pathsem/term"
)

// ImplyTrans proves a => c from a => b and b => c.
func ImplyTrans(ab, bc Theorem) (Theorem, error) {
	if err := kernel.Require("imply_trans", ab, bc); err != nil {
		return Theorem{}, err
	}
	a, _, ok := term.Implication(ab.Concl())
	if !ok {
		return Theorem{}, kernel.Reject("imply_trans", "%s is not an implication", ab.Concl())
	}
	return Intro(a, func(x Theorem) (Theorem, error) {
		b, err := Apply(ab, x)
		if err != nil {
			return Theorem{}, err
		}
		return Apply(bc, b)
	})
}

// ModusTollens proves ¬b => ¬a from a => b.
func ModusTollens(ab Theorem) (Theorem, error) {
	if err := kernel.Require("modus_tollens", ab); err != nil {
		return Theorem{}, err
	}
	a, b, ok := term.Implication(ab.Concl())
	if !ok {
		return Theorem{}, kernel.Reject("modus_tollens", "%s is not an implication", ab.Concl())
	}
	return Intro(term.Not{Arg: b}, func(nb Theorem) (Theorem, error) {
		return Intro(a, func(x Theorem) (Theorem, error) {
			return Apply(nb, must(Apply(ab, x)))
		})
	})
}

// RevModusTollens proves a => b from ¬b => ¬a when b is decidable.
func RevModusTollens(d Decider, th Theorem) (Theorem, error) {
	if err := kernel.Require("rev_modus_tollens", th); err != nil {
		return Theorem{}, err
	}
	nb, na, ok := term.Implication(th.Concl())
	b, okB := nb.(term.Not)
	a, okA := na.(term.Not)
	if !ok || !okA || !okB {
		return Theorem{}, kernel.Reject("rev_modus_tollens", "%s is not ¬b => ¬a", th.Concl())
	}
	db, err := decide("rev_modus_tollens", d, b.Arg)
	if err != nil {
		return Theorem{}, err
	}
	return Intro(a.Arg, func(x Theorem) (Theorem, error) {
		return Cases(db, b.Arg, identity, func(n Theorem) (Theorem, error) {
			return Absurd(must(Apply(must(Apply(th, n)), x)), b.Arg)
		})
	})
}

// ImplyToOr proves ¬a ⋁ b from a => b when a is decidable.
func ImplyToOr(d Decider, ab Theorem) (Theorem, error) {
	if err := kernel.Require("imply_to_or", ab); err != nil {
		return Theorem{}, err
	}
	a, b, ok := term.Implication(ab.Concl())
	if !ok {
		return Theorem{}, kernel.Reject("imply_to_or", "%s is not an implication", ab.Concl())
	}
	da, err := decide("imply_to_or", d, a)
	if err != nil {
		return Theorem{}, err
	}
	na := term.Not{Arg: a}
	return Cases(da, term.Or{Left: na, Right: b},
		func(x Theorem) (Theorem, error) { return Right(na, must(Apply(ab, x))) },
		func(n Theorem) (Theorem, error) { return Left(n, b) })
}

// ImplyFromOr proves a => b from ¬a ⋁ b.
func ImplyFromOr(th Theorem) (Theorem, error) {
	if err := kernel.Require("imply_from_or", th); err != nil {
		return Theorem{}, err
	}
	o, ok := th.Concl().(term.Or)
	if !ok {
		return Theorem{}, kernel.Reject("imply_from_or", "%s is not ¬a ⋁ b", th.Concl())
	}
	na, ok := o.Left.(term.Not)
	if !ok {
		return Theorem{}, kernel.Reject("imply_from_or", "%s is not ¬a ⋁ b", th.Concl())
	}
	return Intro(na.Arg, func(x Theorem) (Theorem, error) {
		return Cases(th, o.Right,
			func(n Theorem) (Theorem, error) { return Absurd(must(Apply(n, x)), o.Right) },
			identity)
	})
}
