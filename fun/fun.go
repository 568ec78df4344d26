// Package fun implements the functional algebra of Path Semantics:
// application, composition, the imaginary inverse, standard functions,
// tuples, lambdas, substitution, universes and normal paths.
//
// Functions are propositions. Laws without a derivation from the rules of
// prop and pathsem are trusted axioms, minted with a name so that audit can
// list them. Laws that only take terms return a Theorem; laws that take
// theorems return an error when a premise has the wrong shape.
package fun

import (
	"github.com/rfielding/pathsem/internal/kernel"
	"github.com/rfielding/pathsem/prop"
	"github.com/rfielding/pathsem/term"
)

type Theorem = prop.Theorem

// funTy splits f : y^x.
func funTy(rule string, th Theorem) (f, y, x term.Prop, err error) {
	t, err := kernel.As[term.Ty](rule, th)
	if err != nil {
		return nil, nil, nil, err
	}
	y, x, ok := term.Power(t.Type)
	if !ok {
		return nil, nil, nil, kernel.Reject(rule, "%s is not a function type", t.Type)
	}
	return t.Elem, y, x, nil
}

// lamTy splits f : (x => y).
func lamTy(rule string, th Theorem) (f, x, y term.Prop, err error) {
	t, err := kernel.As[term.Ty](rule, th)
	if err != nil {
		return nil, nil, nil, err
	}
	x, y, ok := term.Implication(t.Type)
	if !ok {
		return nil, nil, nil, kernel.Reject(rule, "%s is not a lambda type", t.Type)
	}
	return t.Elem, x, y, nil
}

func constant(rule string, th Theorem) (term.Prop, error) {
	c, err := kernel.As[term.IsConst](rule, th)
	if err != nil {
		return nil, err
	}
	return c.Arg, nil
}

func equation(rule string, th Theorem) (l, r term.Prop, err error) {
	e, err := kernel.As[term.Eq](rule, th)
	if err != nil {
		return nil, nil, err
	}
	return e.Left, e.Right, nil
}

// fnOf returns f when p is inv(f).
func fnOf(rule string, p term.Prop) (term.Prop, error) {
	i, ok := p.(term.Inv)
	if !ok {
		return nil, kernel.Reject(rule, "%s is not an inverse", p)
	}
	return i.Fn, nil
}

func must(th Theorem, err error) Theorem {
	if err != nil {
		panic("fun: " + err.Error())
	}
	return th
}
