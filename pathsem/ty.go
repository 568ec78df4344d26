package pathsem

import (
	"github.com/rfielding/pathsem/internal/kernel"
	"github.com/rfielding/pathsem/prop"
	"github.com/rfielding/pathsem/term"
)

// TyIntro proves a : x from a => x and pord(a, x).
func TyIntro(imp, pord Theorem) (Theorem, error) {
	if err := kernel.Require("ty_intro", imp, pord); err != nil {
		return Theorem{}, err
	}
	a, x, ok := term.Implication(imp.Concl())
	if !ok {
		return Theorem{}, kernel.Reject("ty_intro", "%s is not an implication", imp.Concl())
	}
	if err := kernel.Expect("ty_intro", pord, term.POrd{Upper: a, Lower: x}); err != nil {
		return Theorem{}, err
	}
	return kernel.Derive("ty_intro", term.Ty{Elem: a, Type: x}, kernel.Uses(imp, pord)...), nil
}

// TyImply proves a => x from a : x.
func TyImply(ty Theorem) (Theorem, error) {
	t, err := kernel.As[term.Ty]("ty_imply", ty)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Derive("ty_imply", term.Imply{Left: t.Elem, Right: t.Type}, kernel.Uses(ty)...), nil
}

// TyTriv proves x from a : x and a.
func TyTriv(ty, a Theorem) (Theorem, error) {
	imp, err := TyImply(ty)
	if err != nil {
		return Theorem{}, err
	}
	return prop.Apply(imp, a)
}

// TyInLeftArg proves b : x from a : x and a == b. Trusted axiom.
func TyInLeftArg(ty, eq Theorem) (Theorem, error) {
	t, err := kernel.As[term.Ty]("ty_in_left_arg", ty)
	if err != nil {
		return Theorem{}, err
	}
	e, err := kernel.As[term.Eq]("ty_in_left_arg", eq)
	if err != nil {
		return Theorem{}, err
	}
	if !term.Equal(t.Elem, e.Left) {
		return Theorem{}, kernel.Reject("ty_in_left_arg", "%s does not rewrite %s", eq.Concl(), t.Elem)
	}
	return kernel.Axiom("ty_in_left_arg", term.Ty{Elem: e.Right, Type: t.Type}, ty, eq), nil
}

// TyInRightArg proves a : y from a : x and x == y. Trusted axiom.
func TyInRightArg(ty, eq Theorem) (Theorem, error) {
	t, err := kernel.As[term.Ty]("ty_in_right_arg", ty)
	if err != nil {
		return Theorem{}, err
	}
	e, err := kernel.As[term.Eq]("ty_in_right_arg", eq)
	if err != nil {
		return Theorem{}, err
	}
	if !term.Equal(t.Type, e.Left) {
		return Theorem{}, kernel.Reject("ty_in_right_arg", "%s does not rewrite %s", eq.Concl(), t.Type)
	}
	return kernel.Axiom("ty_in_right_arg", term.Ty{Elem: t.Elem, Type: e.Right}, ty, eq), nil
}

// TyEqLeft proves (a : x) == (b : x) from a == b.
func TyEqLeft(eq Theorem, x term.Prop) (Theorem, error) {
	e, err := kernel.As[term.Eq]("ty_eq_left", eq)
	if err != nil {
		return Theorem{}, err
	}
	sym := must(prop.EqSym(eq))
	to := must(prop.Intro(term.Ty{Elem: e.Left, Type: x}, func(t Theorem) (Theorem, error) {
		return TyInLeftArg(t, eq)
	}))
	from := must(prop.Intro(term.Ty{Elem: e.Right, Type: x}, func(t Theorem) (Theorem, error) {
		return TyInLeftArg(t, sym)
	}))
	return prop.EqIntro(to, from)
}

// TyQFormation proves (f ~~ g) : (x ~~ y) from f : x and g : y. Trusted
// axiom.
func TyQFormation(tyF, tyG Theorem) (Theorem, error) {
	f, err := kernel.As[term.Ty]("ty_q_formation", tyF)
	if err != nil {
		return Theorem{}, err
	}
	g, err := kernel.As[term.Ty]("ty_q_formation", tyG)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Axiom("ty_q_formation",
		term.Ty{Elem: term.Q{Left: f.Elem, Right: g.Elem}, Type: term.Q{Left: f.Type, Right: g.Type}},
		tyF, tyG), nil
}
