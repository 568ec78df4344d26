// Package prop implements the proposition algebra: the primitive inference
// rules of the kernel and the tactics derived from them.
//
// A Theorem can only be obtained from the functions of this package and the
// packages built on it. Rules never panic on bad input; a premise of the
// wrong shape is rejected with an error wrapping ErrMismatch.
package prop

import (
	"fmt"

	"github.com/rfielding/pathsem/internal/kernel"
	"github.com/rfielding/pathsem/term"
)

// Theorem is a proof of its conclusion under its hypotheses.
type Theorem = kernel.Theorem

var (
	ErrEmpty    = kernel.ErrEmpty
	ErrMismatch = kernel.ErrMismatch
	ErrOpen     = kernel.ErrOpen
)

// Assume introduces p as a hypothesis.
func Assume(p term.Prop) Theorem { return kernel.Assume(p) }

// TrueIntro proves true.
func TrueIntro() Theorem { return kernel.Axiom("true_intro", term.True{}) }

// Absurd proves p from a proof of false.
func Absurd(f Theorem, p term.Prop) (Theorem, error) {
	if err := kernel.Require("absurd", f); err != nil {
		return Theorem{}, err
	}
	if err := kernel.Expect("absurd", f, term.False{}); err != nil {
		return Theorem{}, err
	}
	return kernel.Derive("absurd", p, kernel.Uses(f)...), nil
}

// Intro proves a => b. The body receives the assumption a and must return
// a proof of b; the assumption is discharged from the result.
func Intro(a term.Prop, body func(Theorem) (Theorem, error)) (Theorem, error) {
	b, err := body(kernel.Assume(a))
	if err != nil {
		return Theorem{}, fmt.Errorf("imply_intro: %w", err)
	}
	if err := kernel.Require("imply_intro", b); err != nil {
		return Theorem{}, err
	}
	return kernel.Derive("imply_intro", term.Imply{Left: a, Right: b.Concl()},
		kernel.Premise{Theorem: b, Discharge: term.Normalize(a)}), nil
}

// Apply is modus ponens: from a => b and a prove b.
func Apply(ab, a Theorem) (Theorem, error) {
	if err := kernel.Require("imply_elim", ab, a); err != nil {
		return Theorem{}, err
	}
	ante, cons, ok := term.Implication(ab.Concl())
	if !ok {
		return Theorem{}, kernel.Reject("imply_elim", "%s is not an implication", ab.Concl())
	}
	if err := kernel.Expect("imply_elim", a, ante); err != nil {
		return Theorem{}, err
	}
	return kernel.Derive("imply_elim", cons, kernel.Uses(ab, a)...), nil
}

// Both proves a ⋀ b.
func Both(a, b Theorem) (Theorem, error) {
	if err := kernel.Require("and_intro", a, b); err != nil {
		return Theorem{}, err
	}
	return kernel.Derive("and_intro", term.And{Left: a.Concl(), Right: b.Concl()}, kernel.Uses(a, b)...), nil
}

// First projects a from a ⋀ b.
func First(ab Theorem) (Theorem, error) {
	l, _, err := and("and_fst", ab)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Derive("and_fst", l, kernel.Uses(ab)...), nil
}

// Second projects b from a ⋀ b.
func Second(ab Theorem) (Theorem, error) {
	_, r, err := and("and_snd", ab)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Derive("and_snd", r, kernel.Uses(ab)...), nil
}

func and(rule string, th Theorem) (l, r term.Prop, err error) {
	if err := kernel.Require(rule, th); err != nil {
		return nil, nil, err
	}
	a, ok := th.Concl().(term.And)
	if !ok {
		return nil, nil, kernel.Reject(rule, "%s is not a conjunction", th.Concl())
	}
	return a.Left, a.Right, nil
}

// Left proves a ⋁ b from a.
func Left(a Theorem, b term.Prop) (Theorem, error) {
	if err := kernel.Require("or_left", a); err != nil {
		return Theorem{}, err
	}
	return kernel.Derive("or_left", term.Or{Left: a.Concl(), Right: b}, kernel.Uses(a)...), nil
}

// Right proves a ⋁ b from b.
func Right(a term.Prop, b Theorem) (Theorem, error) {
	if err := kernel.Require("or_right", b); err != nil {
		return Theorem{}, err
	}
	return kernel.Derive("or_right", term.Or{Left: a, Right: b.Concl()}, kernel.Uses(b)...), nil
}

// Cases eliminates a ⋁ b into c. Each branch receives its assumption and
// must prove c.
func Cases(or Theorem, c term.Prop, left, right func(Theorem) (Theorem, error)) (Theorem, error) {
	if err := kernel.Require("or_elim", or); err != nil {
		return Theorem{}, err
	}
	o, ok := or.Concl().(term.Or)
	if !ok {
		return Theorem{}, kernel.Reject("or_elim", "%s is not a disjunction", or.Concl())
	}
	l, err := branch("or_elim left", o.Left, c, left)
	if err != nil {
		return Theorem{}, err
	}
	r, err := branch("or_elim right", o.Right, c, right)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Derive("or_elim", c,
		kernel.Premise{Theorem: or},
		kernel.Premise{Theorem: l, Discharge: o.Left},
		kernel.Premise{Theorem: r, Discharge: o.Right}), nil
}

func branch(rule string, a, c term.Prop, body func(Theorem) (Theorem, error)) (Theorem, error) {
	th, err := body(kernel.Assume(a))
	if err != nil {
		return Theorem{}, fmt.Errorf("%s: %w", rule, err)
	}
	if err := kernel.Require(rule, th); err != nil {
		return Theorem{}, err
	}
	if err := kernel.Expect(rule, th, c); err != nil {
		return Theorem{}, err
	}
	return th, nil
}

// EqIntro proves a == b from a => b and b => a.
func EqIntro(ab, ba Theorem) (Theorem, error) {
	if err := kernel.Require("eq_intro", ab, ba); err != nil {
		return Theorem{}, err
	}
	a, b, ok := term.Implication(ab.Concl())
	if !ok {
		return Theorem{}, kernel.Reject("eq_intro", "%s is not an implication", ab.Concl())
	}
	if err := kernel.Expect("eq_intro", ba, term.Imply{Left: b, Right: a}); err != nil {
		return Theorem{}, err
	}
	return kernel.Derive("eq_intro", term.Eq{Left: a, Right: b}, kernel.Uses(ab, ba)...), nil
}

// EqTo proves a => b from a == b.
func EqTo(eq Theorem) (Theorem, error) {
	a, b, err := eqSides("eq_to", eq)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Derive("eq_to", term.Imply{Left: a, Right: b}, kernel.Uses(eq)...), nil
}

// EqFrom proves b => a from a == b.
func EqFrom(eq Theorem) (Theorem, error) {
	a, b, err := eqSides("eq_from", eq)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Derive("eq_from", term.Imply{Left: b, Right: a}, kernel.Uses(eq)...), nil
}

func eqSides(rule string, th Theorem) (a, b term.Prop, err error) {
	if err := kernel.Require(rule, th); err != nil {
		return nil, nil, err
	}
	e, ok := th.Concl().(term.Eq)
	if !ok {
		return nil, nil, kernel.Reject(rule, "%s is not an equality", th.Concl())
	}
	return e.Left, e.Right, nil
}

// Necessitate proves □p (p^true) from a proof of p without hypotheses.
func Necessitate(p Theorem) (Theorem, error) {
	if err := kernel.Require("tauto_intro", p); err != nil {
		return Theorem{}, err
	}
	if !p.Closed() {
		return Theorem{}, fmt.Errorf("tauto_intro: %s: %w", p, ErrOpen)
	}
	return kernel.Derive("tauto_intro", term.Tauto{Arg: p.Concl()}, kernel.Uses(p)...), nil
}

// Unbox proves p from □p.
func Unbox(box Theorem) (Theorem, error) {
	p, err := tauto("tauto_elim", box)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Derive("tauto_elim", p, kernel.Uses(box)...), nil
}

// BoxApply proves □b from □(a => b) and □a.
func BoxApply(boxAB, boxA Theorem) (Theorem, error) {
	ab, err := tauto("tauto_apply", boxAB)
	if err != nil {
		return Theorem{}, err
	}
	a, err := tauto("tauto_apply", boxA)
	if err != nil {
		return Theorem{}, err
	}
	ante, cons, ok := term.Implication(ab)
	if !ok {
		return Theorem{}, kernel.Reject("tauto_apply", "%s is not an implication", ab)
	}
	if !term.Equal(ante, a) {
		return Theorem{}, kernel.Reject("tauto_apply", "have %s, want %s", a, ante)
	}
	return kernel.Derive("tauto_apply", term.Tauto{Arg: cons}, kernel.Uses(boxAB, boxA)...), nil
}

func tauto(rule string, th Theorem) (term.Prop, error) {
	if err := kernel.Require(rule, th); err != nil {
		return nil, err
	}
	t, ok := th.Concl().(term.Tauto)
	if !ok {
		return nil, kernel.Reject(rule, "%s is not a tautology", th.Concl())
	}
	return t.Arg, nil
}

// must unwraps the result of a rule whose premises were built in this
// package and therefore have the right shape.
func must(th Theorem, err error) Theorem {
	if err != nil {
		panic("prop: " + err.Error())
	}
	return th
}
