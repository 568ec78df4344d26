package fun

import (
	"github.com/rfielding/pathsem/internal/kernel"
	"github.com/rfielding/pathsem/prop"
	"github.com/rfielding/pathsem/term"
)

// CompTy proves (g . f) : z^x from f : y^x and g : z^y.
func CompTy(tyF, tyG Theorem) (Theorem, error) {
	f, y, x, err := funTy("comp_ty", tyF)
	if err != nil {
		return Theorem{}, err
	}
	g, z, y2, err := funTy("comp_ty", tyG)
	if err != nil {
		return Theorem{}, err
	}
	if !term.Equal(y, y2) {
		return Theorem{}, kernel.Reject("comp_ty", "%s does not compose after %s", tyG.Concl(), tyF.Concl())
	}
	return kernel.Axiom("comp_ty", term.Ty{Elem: term.Comp{Outer: g, Inner: f}, Type: term.Pow(z, x)}, tyF, tyG), nil
}

// CompIsConst proves is_const(g . f) from is_const(f) and is_const(g).
func CompIsConst(cf, cg Theorem) (Theorem, error) {
	f, err := constant("comp_is_const", cf)
	if err != nil {
		return Theorem{}, err
	}
	g, err := constant("comp_is_const", cg)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Axiom("comp_is_const", term.IsConst{Arg: term.Comp{Outer: g, Inner: f}}, cf, cg), nil
}

// InvCompToCompInv proves inv(g . f) => (inv(f) . inv(g)).
func InvCompToCompInv(f, g term.Prop) Theorem {
	return kernel.Axiom("inv_comp_to_comp_inv", term.Imply{
		Left:  term.Inv{Fn: term.Comp{Outer: g, Inner: f}},
		Right: term.Comp{Outer: term.Inv{Fn: f}, Inner: term.Inv{Fn: g}},
	})
}

// CompInvToInvComp proves (inv(f) . inv(g)) => inv(g . f).
func CompInvToInvComp(f, g term.Prop) Theorem {
	return kernel.Axiom("comp_inv_to_inv_comp", term.Imply{
		Left:  term.Comp{Outer: term.Inv{Fn: f}, Inner: term.Inv{Fn: g}},
		Right: term.Inv{Fn: term.Comp{Outer: g, Inner: f}},
	})
}

// CompInv proves (inv(f) . inv(g)) == inv(g . f).
func CompInv(f, g term.Prop) Theorem {
	return must(prop.EqIntro(CompInvToInvComp(f, g), InvCompToCompInv(f, g)))
}

// AppToComp proves g(f(x)) => (g . f)(x).
func AppToComp(f, g, x term.Prop) Theorem {
	return kernel.Axiom("app_to_comp", term.Imply{
		Left:  term.App{Fn: g, Arg: term.App{Fn: f, Arg: x}},
		Right: term.App{Fn: term.Comp{Outer: g, Inner: f}, Arg: x},
	})
}

// CompToApp proves (g . f)(x) => g(f(x)).
func CompToApp(f, g, x term.Prop) Theorem {
	return kernel.Axiom("comp_to_app", term.Imply{
		Left:  term.App{Fn: term.Comp{Outer: g, Inner: f}, Arg: x},
		Right: term.App{Fn: g, Arg: term.App{Fn: f, Arg: x}},
	})
}

// EqAppComp proves g(f(x)) == (g . f)(x).
func EqAppComp(f, g, x term.Prop) Theorem {
	return must(prop.EqIntro(AppToComp(f, g, x), CompToApp(f, g, x)))
}

// CompAssoc proves h . (g . f) == (h . g) . f.
func CompAssoc(f, g, h term.Prop) Theorem {
	return kernel.Axiom("comp_assoc", term.Eq{
		Left:  term.Comp{Outer: h, Inner: term.Comp{Outer: g, Inner: f}},
		Right: term.Comp{Outer: term.Comp{Outer: h, Inner: g}, Inner: f},
	})
}

// CompIdLeft proves id . f == f.
func CompIdLeft(f term.Prop) Theorem {
	return kernel.Axiom("comp_id_left", term.Eq{Left: term.Comp{Outer: term.Id{}, Inner: f}, Right: f})
}

// CompIdRight proves f . id == f.
func CompIdRight(f term.Prop) Theorem {
	return kernel.Axiom("comp_id_right", term.Eq{Left: term.Comp{Outer: f, Inner: term.Id{}}, Right: f})
}

// CompInLeftArg proves h . f from g . f and g == h.
func CompInLeftArg(comp, eq Theorem) (Theorem, error) {
	c, err := kernel.As[term.Comp]("comp_in_left_arg", comp)
	if err != nil {
		return Theorem{}, err
	}
	g, h, err := equation("comp_in_left_arg", eq)
	if err != nil {
		return Theorem{}, err
	}
	if !term.Equal(c.Outer, g) {
		return Theorem{}, kernel.Reject("comp_in_left_arg", "%s does not rewrite %s", eq.Concl(), c.Outer)
	}
	return kernel.Derive("comp_in_left_arg", term.Comp{Outer: h, Inner: c.Inner}, kernel.Uses(comp, eq)...), nil
}

// CompInRightArg proves g . h from g . f and f == h.
func CompInRightArg(comp, eq Theorem) (Theorem, error) {
	c, err := kernel.As[term.Comp]("comp_in_right_arg", comp)
	if err != nil {
		return Theorem{}, err
	}
	f, h, err := equation("comp_in_right_arg", eq)
	if err != nil {
		return Theorem{}, err
	}
	if !term.Equal(c.Inner, f) {
		return Theorem{}, kernel.Reject("comp_in_right_arg", "%s does not rewrite %s", eq.Concl(), c.Inner)
	}
	return kernel.Derive("comp_in_right_arg", term.Comp{Outer: c.Outer, Inner: h}, kernel.Uses(comp, eq)...), nil
}

// CompEqLeft proves (f . g) == (h . g) from f == h.
func CompEqLeft(eq Theorem, g term.Prop) (Theorem, error) {
	f, h, err := equation("comp_eq_left", eq)
	if err != nil {
		return Theorem{}, err
	}
	sym := must(prop.EqSym(eq))
	to := must(prop.Intro(term.Comp{Outer: f, Inner: g}, func(x Theorem) (Theorem, error) {
		return CompInLeftArg(x, eq)
	}))
	from := must(prop.Intro(term.Comp{Outer: h, Inner: g}, func(x Theorem) (Theorem, error) {
		return CompInLeftArg(x, sym)
	}))
	return prop.EqIntro(to, from)
}

// CompEqRight proves (f . g) == (f . h) from g == h.
func CompEqRight(f term.Prop, eq Theorem) (Theorem, error) {
	g, h, err := equation("comp_eq_right", eq)
	if err != nil {
		return Theorem{}, err
	}
	sym := must(prop.EqSym(eq))
	to := must(prop.Intro(term.Comp{Outer: f, Inner: g}, func(x Theorem) (Theorem, error) {
		return CompInRightArg(x, eq)
	}))
	from := must(prop.Intro(term.Comp{Outer: f, Inner: h}, func(x Theorem) (Theorem, error) {
		return CompInRightArg(x, sym)
	}))
	return prop.EqIntro(to, from)
}
