package prop

import (
	"github.com/rfielding/pathsem/internal/kernel"
	"github.com/rfielding/pathsem/term"
)

// DoubleNeg proves ¬¬a from a.
func DoubleNeg(a Theorem) (Theorem, error) {
	if err := kernel.Require("double_neg", a); err != nil {
		return Theorem{}, err
	}
	return Intro(term.Not{Arg: a.Concl()}, func(na Theorem) (Theorem, error) {
		return Apply(na, a)
	})
}

// RevDoubleNeg proves a from ¬¬a when a is decidable.
func RevDoubleNeg(d Decider, th Theorem) (Theorem, error) {
	if err := kernel.Require("rev_double_neg", th); err != nil {
		return Theorem{}, err
	}
	n, ok := th.Concl().(term.Not)
	a, ok2 := n.Arg.(term.Not)
	if !ok || !ok2 {
		return Theorem{}, kernel.Reject("rev_double_neg", "%s is not ¬¬a", th.Concl())
	}
	da, err := decide("rev_double_neg", d, a.Arg)
	if err != nil {
		return Theorem{}, err
	}
	return Cases(da, a.Arg, identity, func(na Theorem) (Theorem, error) {
		return Absurd(must(Apply(th, na)), a.Arg)
	})
}
