// Package quality implements path semantical quality.
//
// a ~~ b is a partial equivalence: it implies a == b, but unlike equality
// it is not reflexive. The qubit ~a (a ~~ a) only comes from hypotheses or
// from trusted axioms, which is what keeps the imaginary inverse of package
// fun from computing on functions that have no inverse.
package quality

import (
	"github.com/rfielding/pathsem/internal/kernel"
	"github.com/rfielding/pathsem/prop"
	"github.com/rfielding/pathsem/term"
)

type Theorem = prop.Theorem

// Intro proves a ~~ b from a == b, ~a and ~b.
func Intro(eq, qa, qb Theorem) (Theorem, error) {
	e, err := kernel.As[term.Eq]("q_intro", eq)
	if err != nil {
		return Theorem{}, err
	}
	if err := kernel.Expect("q_intro", qa, term.Qu{Arg: e.Left}); err != nil {
		return Theorem{}, err
	}
	if err := kernel.Expect("q_intro", qb, term.Qu{Arg: e.Right}); err != nil {
		return Theorem{}, err
	}
	return kernel.Derive("q_intro", term.Q{Left: e.Left, Right: e.Right}, kernel.Uses(eq, qa, qb)...), nil
}

// ToEq proves a == b from a ~~ b.
func ToEq(q Theorem) (Theorem, error) {
	x, err := kernel.As[term.Q]("q_to_eq", q)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Derive("q_to_eq", term.Eq{Left: x.Left, Right: x.Right}, kernel.Uses(q)...), nil
}

// Left proves ~a from a ~~ b.
func Left(q Theorem) (Theorem, error) {
	x, err := kernel.As[term.Q]("q_left", q)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Derive("q_left", term.Qu{Arg: x.Left}, kernel.Uses(q)...), nil
}

// Right proves ~b from a ~~ b.
func Right(q Theorem) (Theorem, error) {
	x, err := kernel.As[term.Q]("q_right", q)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Derive("q_right", term.Qu{Arg: x.Right}, kernel.Uses(q)...), nil
}

// Symmetry proves b ~~ a from a ~~ b.
func Symmetry(q Theorem) (Theorem, error) {
	eq, err := ToEq(q)
	if err != nil {
		return Theorem{}, err
	}
	return Intro(must(prop.EqSym(eq)), must(Right(q)), must(Left(q)))
}

// Transitivity proves a ~~ c from a ~~ b and b ~~ c.
func Transitivity(ab, bc Theorem) (Theorem, error) {
	e1, err := ToEq(ab)
	if err != nil {
		return Theorem{}, err
	}
	e2, err := ToEq(bc)
	if err != nil {
		return Theorem{}, err
	}
	eq, err := prop.EqTrans(e1, e2)
	if err != nil {
		return Theorem{}, err
	}
	return Intro(eq, must(Left(ab)), must(Right(bc)))
}

// Refl proves a ~~ a from ~a.
func Refl(qu Theorem) (Theorem, error) {
	x, err := kernel.As[term.Qu]("q_refl", qu)
	if err != nil {
		return Theorem{}, err
	}
	return Intro(prop.EqRefl(x.Arg), qu, qu)
}

// InArg transports a qubit along a tautological equality:
// ~a ⋀ (a == b)^true => ~b. Trusted axiom.
func InArg(qu, tauto Theorem) (Theorem, error) {
	x, err := kernel.As[term.Qu]("qu_in_arg", qu)
	if err != nil {
		return Theorem{}, err
	}
	b, err := tautoEq("qu_in_arg", tauto, x.Arg)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Axiom("qu_in_arg", term.Qu{Arg: b}, qu, tauto), nil
}

// FromTautoEq proves a ~~ b from ~a and (a == b)^true.
func FromTautoEq(qu, tauto Theorem) (Theorem, error) {
	qb, err := InArg(qu, tauto)
	if err != nil {
		return Theorem{}, err
	}
	eq := must(prop.Unbox(tauto))
	return Intro(eq, qu, qb)
}

// InLeftArg proves c ~~ b from a ~~ b and (a == c)^true.
func InLeftArg(q, tauto Theorem) (Theorem, error) {
	qa, err := Left(q)
	if err != nil {
		return Theorem{}, err
	}
	qc, err := InArg(qa, tauto)
	if err != nil {
		return Theorem{}, err
	}
	eq, err := prop.EqInLeftArg(must(ToEq(q)), must(prop.Unbox(tauto)))
	if err != nil {
		return Theorem{}, err
	}
	return Intro(eq, qc, must(Right(q)))
}

// InRightArg proves a ~~ c from a ~~ b and (b == c)^true.
func InRightArg(q, tauto Theorem) (Theorem, error) {
	qb, err := Right(q)
	if err != nil {
		return Theorem{}, err
	}
	qc, err := InArg(qb, tauto)
	if err != nil {
		return Theorem{}, err
	}
	eq, err := prop.EqInRightArg(must(ToEq(q)), must(prop.Unbox(tauto)))
	if err != nil {
		return Theorem{}, err
	}
	return Intro(eq, must(Left(q)), qc)
}

// tautoEq checks that th proves (a == b)^true and returns b.
func tautoEq(rule string, th Theorem, a term.Prop) (term.Prop, error) {
	t, err := kernel.As[term.Tauto](rule, th)
	if err != nil {
		return nil, err
	}
	e, ok := t.Arg.(term.Eq)
	if !ok || !term.Equal(e.Left, a) {
		return nil, kernel.Reject(rule, "%s is not (%s == b)^true", th.Concl(), a)
	}
	return e.Right, nil
}

func must(th Theorem, err error) Theorem {
	if err != nil {
		panic("quality: " + err.Error())
	}
	return th
}
