package fun

import (
	"github.com/rfielding/pathsem/internal/kernel"
	"github.com/rfielding/pathsem/pathsem"
	"github.com/rfielding/pathsem/prop"
	"github.com/rfielding/pathsem/quality"
	"github.com/rfielding/pathsem/term"
)

// InvTy proves inv(f) : x^y from f : y^x.
func InvTy(tyF Theorem) (Theorem, error) {
	f, y, x, err := funTy("inv_ty", tyF)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Axiom("inv_ty", term.Ty{Elem: term.Inv{Fn: f}, Type: term.Pow(x, y)}, tyF), nil
}

// InvIsConst proves is_const(inv(f)) from is_const(f).
func InvIsConst(cf Theorem) (Theorem, error) {
	f, err := constant("inv_is_const", cf)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Axiom("inv_is_const", term.IsConst{Arg: term.Inv{Fn: f}}, cf), nil
}

// InvValQu computes with the inverse of f. It needs ~inv(f):
//
//	~inv(f) ⋀ (f(a) == b)  =>  inv(f)(b) == a
func InvValQu(qu, eq Theorem) (Theorem, error) {
	q, err := kernel.As[term.Qu]("inv_val_qu", qu)
	if err != nil {
		return Theorem{}, err
	}
	f, err := fnOf("inv_val_qu", q.Arg)
	if err != nil {
		return Theorem{}, err
	}
	l, b, err := equation("inv_val_qu", eq)
	if err != nil {
		return Theorem{}, err
	}
	app, ok := l.(term.App)
	if !ok || !term.Equal(app.Fn, f) {
		return Theorem{}, kernel.Reject("inv_val_qu", "%s is not an application of %s", l, f)
	}
	return kernel.Axiom("inv_val_qu", term.Eq{Left: term.App{Fn: q.Arg, Arg: b}, Right: app.Arg}, qu, eq), nil
}

// InvInvolve proves inv(inv(f)) => f.
func InvInvolve(f term.Prop) Theorem {
	return kernel.Axiom("inv_involve", term.Imply{Left: term.Inv{Fn: term.Inv{Fn: f}}, Right: f})
}

// InvolveInv proves f => inv(inv(f)).
func InvolveInv(f term.Prop) Theorem {
	return kernel.Axiom("involve_inv", term.Imply{Left: f, Right: term.Inv{Fn: term.Inv{Fn: f}}})
}

// InvolveEq proves inv(inv(f)) == f.
func InvolveEq(f term.Prop) Theorem {
	return must(prop.EqIntro(InvInvolve(f), InvolveInv(f)))
}

// TautoInvolve proves (inv(inv(f)) == f)^true.
func TautoInvolve(f term.Prop) Theorem {
	return must(prop.Necessitate(InvolveEq(f)))
}

// InvEq proves inv(f) == inv(g) from f == g.
func InvEq(eq Theorem) (Theorem, error) {
	f, g, err := equation("inv_eq", eq)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Axiom("inv_eq", term.Eq{Left: term.Inv{Fn: f}, Right: term.Inv{Fn: g}}, eq), nil
}

// InvQu proves ~inv(f) from ~f.
func InvQu(qu Theorem) (Theorem, error) {
	q, err := kernel.As[term.Qu]("inv_qu", qu)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Axiom("inv_qu", term.Qu{Arg: term.Inv{Fn: q.Arg}}, qu), nil
}

// InvVal proves inv(f)(b) == a from inv(f) ~~ g and f(a) == b. Quality is
// needed here: with plain equality, reflexivity would give every function
// an inverse.
func InvVal(q, eq Theorem) (Theorem, error) {
	x, err := kernel.As[term.Q]("inv_val", q)
	if err != nil {
		return Theorem{}, err
	}
	if _, err := fnOf("inv_val", x.Left); err != nil {
		return Theorem{}, err
	}
	return InvValQu(must(quality.Left(q)), eq)
}

// InvValOther proves g(b) == a from inv(f) ~~ g and f(a) == b.
func InvValOther(q, eq Theorem) (Theorem, error) {
	val, err := InvVal(q, eq)
	if err != nil {
		return Theorem{}, err
	}
	_, b, _ := equation("inv_val_other", eq)
	return prop.EqInLeftArg(val, must(AppMapEq(must(quality.ToEq(q)), b)))
}

// InvDoubleVal proves inv(inv(f))(x) == f(x).
func InvDoubleVal(f, x term.Prop) Theorem {
	return must(AppMapEq(InvolveEq(f), x))
}

// QuDouble proves ~inv(inv(f)) from ~f.
func QuDouble(qu Theorem) (Theorem, error) {
	q, err := kernel.As[term.Qu]("qu_double", qu)
	if err != nil {
		return Theorem{}, err
	}
	return quality.InArg(qu, must(prop.TautoEqSym(TautoInvolve(q.Arg))))
}

// QuRevDouble proves ~f from ~inv(inv(f)).
func QuRevDouble(qu Theorem) (Theorem, error) {
	q, err := kernel.As[term.Qu]("qu_rev_double", qu)
	if err != nil {
		return Theorem{}, err
	}
	inner, err := fnOf("qu_rev_double", q.Arg)
	if err != nil {
		return Theorem{}, err
	}
	f, err := fnOf("qu_rev_double", inner)
	if err != nil {
		return Theorem{}, err
	}
	return quality.InArg(qu, TautoInvolve(f))
}

// QuInvTautoEqToQuInv proves ~inv(g) from ~inv(f) and (f == g)^true.
func QuInvTautoEqToQuInv(qu, tauto Theorem) (Theorem, error) {
	box, err := prop.BoxMap(func(args ...Theorem) (Theorem, error) {
		return InvEq(args[0])
	}, tauto)
	if err != nil {
		return Theorem{}, err
	}
	return quality.InArg(qu, box)
}

// QInv proves inv(f) ~~ inv(g) from f ~~ g.
func QInv(q Theorem) (Theorem, error) {
	eq, err := quality.ToEq(q)
	if err != nil {
		return Theorem{}, err
	}
	return quality.Intro(must(InvEq(eq)),
		must(InvQu(must(quality.Left(q)))),
		must(InvQu(must(quality.Right(q)))))
}

// QAdjointLeft proves f ~~ inv(g) from inv(f) ~~ g.
func QAdjointLeft(q Theorem) (Theorem, error) {
	x, err := kernel.As[term.Q]("q_adjoint_left", q)
	if err != nil {
		return Theorem{}, err
	}
	f, err := fnOf("q_adjoint_left", x.Left)
	if err != nil {
		return Theorem{}, err
	}
	return quality.InLeftArg(must(QInv(q)), TautoInvolve(f))
}

// QAdjointRight proves inv(f) ~~ g from f ~~ inv(g).
func QAdjointRight(q Theorem) (Theorem, error) {
	sym, err := quality.Symmetry(q)
	if err != nil {
		return Theorem{}, err
	}
	adj, err := QAdjointLeft(sym)
	if err != nil {
		return Theorem{}, err
	}
	return quality.Symmetry(adj)
}

// QAdjoint proves (inv(f) ~~ g) == (f ~~ inv(g)).
func QAdjoint(f, g term.Prop) Theorem {
	to := must(prop.Intro(term.Q{Left: term.Inv{Fn: f}, Right: g}, QAdjointLeft))
	from := must(prop.Intro(term.Q{Left: f, Right: term.Inv{Fn: g}}, QAdjointRight))
	return must(prop.EqIntro(to, from))
}

// QuToAppEq proves (f(a) == b) == (inv(f)(b) == a) from ~inv(f).
func QuToAppEq(qu Theorem, a, b term.Prop) (Theorem, error) {
	q, err := kernel.As[term.Qu]("qu_to_app_eq", qu)
	if err != nil {
		return Theorem{}, err
	}
	f, err := fnOf("qu_to_app_eq", q.Arg)
	if err != nil {
		return Theorem{}, err
	}
	quInv := must(InvQu(qu))
	to, err := prop.Intro(term.Eq{Left: term.App{Fn: f, Arg: a}, Right: b}, func(y Theorem) (Theorem, error) {
		return InvValQu(qu, y)
	})
	if err != nil {
		return Theorem{}, err
	}
	from, err := prop.Intro(term.Eq{Left: term.App{Fn: q.Arg, Arg: b}, Right: a}, func(y Theorem) (Theorem, error) {
		back, err := InvValQu(quInv, y)
		if err != nil {
			return Theorem{}, err
		}
		return prop.EqInLeftArg(back, InvDoubleVal(f, a))
	})
	if err != nil {
		return Theorem{}, err
	}
	return prop.EqIntro(to, from)
}

// IdQ proves inv(id) ~~ id.
func IdQ() Theorem {
	return kernel.Axiom("id_q", term.Q{Left: term.Inv{Fn: term.Id{}}, Right: term.Id{}})
}

// CompRightInvToId proves (f . inv(f)) => id.
func CompRightInvToId(f term.Prop) Theorem {
	return kernel.Axiom("comp_right_inv_to_id", term.Imply{Left: term.Comp{Outer: f, Inner: term.Inv{Fn: f}}, Right: term.Id{}})
}

// IdToCompRightInv proves id => (f . inv(f)).
func IdToCompRightInv(f term.Prop) Theorem {
	return kernel.Axiom("id_to_comp_right_inv", term.Imply{Left: term.Id{}, Right: term.Comp{Outer: f, Inner: term.Inv{Fn: f}}})
}

// CompLeftInvToId proves (inv(f) . f) => id.
func CompLeftInvToId(f term.Prop) Theorem {
	return kernel.Axiom("comp_left_inv_to_id", term.Imply{Left: term.Comp{Outer: term.Inv{Fn: f}, Inner: f}, Right: term.Id{}})
}

// IdToCompLeftInv proves id => (inv(f) . f).
func IdToCompLeftInv(f term.Prop) Theorem {
	return kernel.Axiom("id_to_comp_left_inv", term.Imply{Left: term.Id{}, Right: term.Comp{Outer: term.Inv{Fn: f}, Inner: f}})
}

// SelfInvToEqId proves (f . f) == id from inv(f) == f.
func SelfInvToEqId(eq Theorem) (Theorem, error) {
	l, f, err := equation("self_inv_to_eq_id", eq)
	if err != nil {
		return Theorem{}, err
	}
	if !term.Equal(l, term.Inv{Fn: f}) {
		return Theorem{}, kernel.Reject("self_inv_to_eq_id", "%s is not inv(f) == f", eq.Concl())
	}
	sym := must(prop.EqSym(eq))
	to := must(prop.Intro(term.Comp{Outer: f, Inner: f}, func(x Theorem) (Theorem, error) {
		return prop.Apply(CompRightInvToId(f), must(CompInRightArg(x, sym)))
	}))
	from := must(prop.Intro(term.Id{}, func(x Theorem) (Theorem, error) {
		return CompInRightArg(must(prop.Apply(IdToCompRightInv(f), x)), eq)
	}))
	return prop.EqIntro(to, from)
}

// SelfInvTy proves (f ~~ inv(f)) : (y^x ~~ x^y) from f : y^x.
func SelfInvTy(tyF Theorem) (Theorem, error) {
	inv, err := InvTy(tyF)
	if err != nil {
		return Theorem{}, err
	}
	return pathsem.TyQFormation(tyF, inv)
}

// QInvTy proves (f ~~ g) : (y^x ~~ x^y) from f : y^x and inv(f) ~~ g.
func QInvTy(tyF, q Theorem) (Theorem, error) {
	self, err := SelfInvTy(tyF)
	if err != nil {
		return Theorem{}, err
	}
	x, err := kernel.As[term.Q]("q_inv_ty", q)
	if err != nil {
		return Theorem{}, err
	}
	f, err := fnOf("q_inv_ty", x.Left)
	if err != nil {
		return Theorem{}, err
	}
	sym := must(quality.Symmetry(q))
	to, err := prop.Intro(term.Q{Left: f, Right: x.Left}, func(h Theorem) (Theorem, error) {
		return quality.Transitivity(h, q)
	})
	if err != nil {
		return Theorem{}, err
	}
	from := must(prop.Intro(term.Q{Left: f, Right: x.Right}, func(h Theorem) (Theorem, error) {
		return quality.Transitivity(h, sym)
	}))
	return pathsem.TyInLeftArg(self, must(prop.EqIntro(to, from)))
}

// Path proves f ⋀ inv(f) from ~inv(f), f : y^x and y^x. Trusted axiom.
func Path(qu, tyF, pow Theorem) (Theorem, error) {
	q, err := kernel.As[term.Qu]("path", qu)
	if err != nil {
		return Theorem{}, err
	}
	f, err := fnOf("path", q.Arg)
	if err != nil {
		return Theorem{}, err
	}
	t, err := kernel.As[term.Ty]("path", tyF)
	if err != nil {
		return Theorem{}, err
	}
	if !term.Equal(t.Elem, f) {
		return Theorem{}, kernel.Reject("path", "%s does not type %s", tyF.Concl(), f)
	}
	if _, _, ok := term.Power(t.Type); !ok {
		return Theorem{}, kernel.Reject("path", "%s is not a function type", t.Type)
	}
	if err := kernel.Require("path", pow); err != nil {
		return Theorem{}, err
	}
	if err := kernel.Expect("path", pow, t.Type); err != nil {
		return Theorem{}, err
	}
	return kernel.Axiom("path", term.And{Left: f, Right: q.Arg}, qu, tyF, pow), nil
}
