package fun

import (
	"github.com/rfielding/pathsem/internal/kernel"
	"github.com/rfielding/pathsem/pathsem"
	"github.com/rfielding/pathsem/prop"
	"github.com/rfielding/pathsem/quality"
	"github.com/rfielding/pathsem/term"
)

// IdLam is \(a : x) = a.
func IdLam(a, x term.Prop) term.Prop {
	return term.Lam{Param: term.Ty{Elem: a, Type: x}, Body: a}
}

// FstLam is \(a : x) = \(b : y) = a.
func FstLam(a, x, b, y term.Prop) term.Prop {
	return term.Lam{Param: term.Ty{Elem: a, Type: x}, Body: term.Lam{Param: term.Ty{Elem: b, Type: y}, Body: a}}
}

// SndLam is \(a : x) = \(b : y) = b.
func SndLam(a, x, b, y term.Prop) term.Prop {
	return term.Lam{Param: term.Ty{Elem: a, Type: x}, Body: IdLam(b, y)}
}

// LamTy proves (\(a : x) = b) : (x => y) from a : x and b : y.
func LamTy(tyA, tyB Theorem) (Theorem, error) {
	a, err := kernel.As[term.Ty]("lam_ty", tyA)
	if err != nil {
		return Theorem{}, err
	}
	b, err := kernel.As[term.Ty]("lam_ty", tyB)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Axiom("lam_ty", term.Ty{
		Elem: term.Lam{Param: a, Body: b.Elem},
		Type: term.Imply{Left: a.Type, Right: b.Type},
	}, tyA, tyB), nil
}

// LamLift proves \(a : x) = b from a : x and b.
func LamLift(tyA, b Theorem) (Theorem, error) {
	a, err := kernel.As[term.Ty]("lam_lift", tyA)
	if err != nil {
		return Theorem{}, err
	}
	if err := kernel.Require("lam_lift", b); err != nil {
		return Theorem{}, err
	}
	return kernel.Derive("lam_lift", term.Lam{Param: a, Body: b.Concl()}, kernel.Uses(tyA, b)...), nil
}

// LamEqLift proves (\(a : x) = b) == (\(a : x) = c) from a : x and b == c.
func LamEqLift(tyA, eq Theorem) (Theorem, error) {
	a, err := kernel.As[term.Ty]("lam_eq_lift", tyA)
	if err != nil {
		return Theorem{}, err
	}
	b, c, err := equation("lam_eq_lift", eq)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Axiom("lam_eq_lift", term.Eq{
		Left:  term.Lam{Param: a, Body: b},
		Right: term.Lam{Param: a, Body: c},
	}, tyA, eq), nil
}

// Beta proves (\(a : x) = b)(c) == b[a := c] from c : x.
func Beta(tyC Theorem, a, b term.Prop) (Theorem, error) {
	c, err := kernel.As[term.Ty]("lam", tyC)
	if err != nil {
		return Theorem{}, err
	}
	lam := term.Lam{Param: term.Ty{Elem: a, Type: c.Type}, Body: b}
	return kernel.Axiom("lam", term.Eq{
		Left:  term.App{Fn: lam, Arg: c.Elem},
		Right: subst(b, a, c.Elem),
	}, tyC), nil
}

// LamAppTy proves (\(a : x) = b)(c) : y from a : x, b : y, c : x and
// is_const(x).
func LamAppTy(tyA, tyB, tyC, cx Theorem) (Theorem, error) {
	lam, err := LamTy(tyA, tyB)
	if err != nil {
		return Theorem{}, err
	}
	return AppLamTy(lam, tyC, cx)
}

// LamDepAppTy proves (\(a : x) = b)(c) : y[a := c] from a : x, b : y and
// c : x.
func LamDepAppTy(tyA, tyB, tyC Theorem) (Theorem, error) {
	lam, err := LamTy(tyA, tyB)
	if err != nil {
		return Theorem{}, err
	}
	return AppDepLamTy(lam, tyA, tyB, tyC)
}

// LamAppTyTrivial proves (\(a : x) = b)(b) : x from a : x and b : x.
func LamAppTyTrivial(tyA, tyB Theorem) (Theorem, error) {
	dep, err := LamDepAppTy(tyA, tyB, tyB)
	if err != nil {
		return Theorem{}, err
	}
	a, _ := kernel.As[term.Ty]("lam_app_ty_trivial", tyA)
	same, err := SubstTy(tyB, a.Elem)
	if err != nil {
		return Theorem{}, err
	}
	return pathsem.TyInRightArg(dep, same)
}

// LamAppTrivial proves (\(a : x) = b)(b) == b from b : x.
func LamAppTrivial(tyB Theorem, a term.Prop) (Theorem, error) {
	b, err := kernel.As[term.Ty]("lam_app_trivial", tyB)
	if err != nil {
		return Theorem{}, err
	}
	beta, err := Beta(tyB, a, b.Elem)
	if err != nil {
		return Theorem{}, err
	}
	id, err := SubstId(b.Elem, a)
	if err != nil {
		return Theorem{}, err
	}
	return prop.EqTrans(beta, id)
}

// LamIdQ proves (\(a : x) = a) ~~ id.
func LamIdQ(a, x term.Prop) Theorem {
	return kernel.Axiom("lam_id_q", term.Q{Left: IdLam(a, x), Right: term.Id{}})
}

// LamIdTy proves (\(a : x) = a) : (x => x) from a : x.
func LamIdTy(tyA Theorem) (Theorem, error) { return LamTy(tyA, tyA) }

// LamIdAppTy proves (\(a : x) = a)(b) : x from a : x, b : x and
// is_const(x).
func LamIdAppTy(tyA, tyB, cx Theorem) (Theorem, error) {
	id, err := LamIdTy(tyA)
	if err != nil {
		return Theorem{}, err
	}
	return AppLamTy(id, tyB, cx)
}

// LamId proves (\(a : x) = a)(b) == b.
func LamId(a, x, b term.Prop) Theorem {
	eq := must(quality.ToEq(LamIdQ(a, x)))
	return must(prop.EqTrans(must(AppMapEq(eq, b)), IdDef(b)))
}

// LamFstTy proves (\(a : x) = \(b : y) = a) : (x => (y => x)).
func LamFstTy(tyA, tyB Theorem) (Theorem, error) {
	inner, err := LamTy(tyB, tyA)
	if err != nil {
		return Theorem{}, err
	}
	return LamTy(tyA, inner)
}

// LamFst applies the first projection lambda. The inner bound variable b
// must be constant:
//
//	(c : x) ⋀ is_const(b)  =>  (\(a : x) = \(b : y) = a)(c) == \(b : y[a := c]) = c
func LamFst(tyC, cb Theorem, a, y term.Prop) (Theorem, error) {
	b, err := constant("lam_fst", cb)
	if err != nil {
		return Theorem{}, err
	}
	inner := term.Lam{Param: term.Ty{Elem: b, Type: y}, Body: a}
	beta, err := Beta(tyC, a, inner)
	if err != nil {
		return Theorem{}, err
	}
	c, _ := kernel.As[term.Ty]("lam_fst", tyC)
	under, err := SubstLam(cb, y, a, a, c.Elem)
	if err != nil {
		return Theorem{}, err
	}
	trivial, err := SubstTrivial(a, c.Elem)
	if err != nil {
		return Theorem{}, err
	}
	body := must(SubstEqLamBody(trivial, term.Ty{Elem: b, Type: subst(y, a, c.Elem)}))
	return prop.EqTrans(beta, must(prop.EqTrans(under, body)))
}

// LamSndTy proves (\(a : x) = \(b : y) = b) : (x => (y => y)).
func LamSndTy(tyA, tyB Theorem) (Theorem, error) {
	inner, err := LamTy(tyB, tyB)
	if err != nil {
		return Theorem{}, err
	}
	return LamTy(tyA, inner)
}

// LamSnd applies the second projection lambda. The inner bound variable b
// must be constant:
//
//	(c : x) ⋀ is_const(b)  =>  (\(a : x) = \(b : y) = b)(c) == \(b : y[a := c]) = b
func LamSnd(tyC, cb Theorem, a, y term.Prop) (Theorem, error) {
	b, err := constant("lam_snd", cb)
	if err != nil {
		return Theorem{}, err
	}
	beta, err := Beta(tyC, a, IdLam(b, y))
	if err != nil {
		return Theorem{}, err
	}
	c, _ := kernel.As[term.Ty]("lam_snd", tyC)
	under, err := SubstLam(cb, y, b, a, c.Elem)
	if err != nil {
		return Theorem{}, err
	}
	unchanged, err := SubstConst(cb, a, c.Elem)
	if err != nil {
		return Theorem{}, err
	}
	body := must(SubstEqLamBody(unchanged, term.Ty{Elem: b, Type: subst(y, a, c.Elem)}))
	return prop.EqTrans(beta, must(prop.EqTrans(under, body)))
}
