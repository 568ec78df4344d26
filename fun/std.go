package fun

import (
	"github.com/rfielding/pathsem/internal/kernel"
	"github.com/rfielding/pathsem/term"
)

// IdTy proves id : a^a.
func IdTy(a term.Prop) Theorem {
	return kernel.Axiom("id_ty", term.Ty{Elem: term.Id{}, Type: term.Pow(a, a)})
}

// IdIsConst proves is_const(id).
func IdIsConst() Theorem { return kernel.Axiom("id_is_const", term.IsConst{Arg: term.Id{}}) }

// IdDef proves id(a) == a.
func IdDef(a term.Prop) Theorem {
	return kernel.Axiom("id_def", term.Eq{Left: term.App{Fn: term.Id{}, Arg: a}, Right: a})
}

// DupTy proves dup : (a, a)^a.
func DupTy(a term.Prop) Theorem {
	return kernel.Axiom("dup_ty", term.Ty{Elem: term.Dup{}, Type: term.Pow(term.Tup{Left: a, Right: a}, a)})
}

// DupIsConst proves is_const(dup).
func DupIsConst() Theorem { return kernel.Axiom("dup_is_const", term.IsConst{Arg: term.Dup{}}) }

// DupDef proves dup(a) == (a, a).
func DupDef(a term.Prop) Theorem {
	return kernel.Axiom("dup_def", term.Eq{Left: term.App{Fn: term.Dup{}, Arg: a}, Right: term.Tup{Left: a, Right: a}})
}

// FstTy proves fst : a^(a, b).
func FstTy(a, b term.Prop) Theorem {
	return kernel.Axiom("fst_ty", term.Ty{Elem: term.Fst{}, Type: term.Pow(a, term.Tup{Left: a, Right: b})})
}

// FstIsConst proves is_const(fst).
func FstIsConst() Theorem { return kernel.Axiom("fst_is_const", term.IsConst{Arg: term.Fst{}}) }

// FstDef proves fst((a, b)) == a.
func FstDef(a, b term.Prop) Theorem {
	return kernel.Axiom("fst_def", term.Eq{Left: term.App{Fn: term.Fst{}, Arg: term.Tup{Left: a, Right: b}}, Right: a})
}

// SndTy proves snd : b^(a, b).
func SndTy(a, b term.Prop) Theorem {
	return kernel.Axiom("snd_ty", term.Ty{Elem: term.Snd{}, Type: term.Pow(b, term.Tup{Left: a, Right: b})})
}

// SndIsConst proves is_const(snd).
func SndIsConst() Theorem { return kernel.Axiom("snd_is_const", term.IsConst{Arg: term.Snd{}}) }

// SndDef proves snd((a, b)) == b.
func SndDef(a, b term.Prop) Theorem {
	return kernel.Axiom("snd_def", term.Eq{Left: term.App{Fn: term.Snd{}, Arg: term.Tup{Left: a, Right: b}}, Right: b})
}

// Par is the parallel tuple f x g, i.e. par_tup((f, g)).
func Par(f, g term.Prop) term.Prop {
	return term.App{Fn: term.ParTup{}, Arg: term.Tup{Left: f, Right: g}}
}

// ParTupFunTy proves (f x g) : (y1, y2)^(x1, x2) from f : y1^x1 and
// g : y2^x2.
func ParTupFunTy(tyF, tyG Theorem) (Theorem, error) {
	f, y1, x1, err := funTy("par_tup_fun_ty", tyF)
	if err != nil {
		return Theorem{}, err
	}
	g, y2, x2, err := funTy("par_tup_fun_ty", tyG)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Axiom("par_tup_fun_ty", term.Ty{
		Elem: Par(f, g),
		Type: term.Pow(term.Tup{Left: y1, Right: y2}, term.Tup{Left: x1, Right: x2}),
	}, tyF, tyG), nil
}

// ParTupLamTy proves (f x g) : ((x1, x2) => (y1, y2)) from f : (x1 => y1)
// and g : (x2 => y2).
func ParTupLamTy(tyF, tyG Theorem) (Theorem, error) {
	f, x1, y1, err := lamTy("par_tup_lam_ty", tyF)
	if err != nil {
		return Theorem{}, err
	}
	g, x2, y2, err := lamTy("par_tup_lam_ty", tyG)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Axiom("par_tup_lam_ty", term.Ty{
		Elem: Par(f, g),
		Type: term.Imply{Left: term.Tup{Left: x1, Right: x2}, Right: term.Tup{Left: y1, Right: y2}},
	}, tyF, tyG), nil
}

// ParTupIsConst proves is_const(par_tup).
func ParTupIsConst() Theorem {
	return kernel.Axiom("par_tup_is_const", term.IsConst{Arg: term.ParTup{}})
}

// ParTupId proves (id x id) == id.
func ParTupId() Theorem {
	return kernel.Axiom("par_tup_id", term.Eq{Left: Par(term.Id{}, term.Id{}), Right: term.Id{}})
}

// ParTupAppIsConst proves is_const(f x g) from is_const(f) and is_const(g).
func ParTupAppIsConst(cf, cg Theorem) (Theorem, error) {
	tup, err := TupIsConst(cf, cg)
	if err != nil {
		return Theorem{}, err
	}
	return AppIsConst(ParTupIsConst(), tup)
}

// ParTupComp proves (g1 x g2) . (f1 x f2) == (g1 . f1) x (g2 . f2).
func ParTupComp(f1, f2, g1, g2 term.Prop) Theorem {
	return kernel.Axiom("par_tup_comp", term.Eq{
		Left:  term.Comp{Outer: Par(g1, g2), Inner: Par(f1, f2)},
		Right: Par(term.Comp{Outer: g1, Inner: f1}, term.Comp{Outer: g2, Inner: f2}),
	})
}

// ParTupInv proves inv(f x g) == inv(f) x inv(g).
func ParTupInv(f, g term.Prop) Theorem {
	return kernel.Axiom("par_tup_inv", term.Eq{
		Left:  term.Inv{Fn: Par(f, g)},
		Right: Par(term.Inv{Fn: f}, term.Inv{Fn: g}),
	})
}

// ParTupDef proves (f x g)((i0, i1)) == (o0, o1) from f(i0) == o0 and
// g(i1) == o1.
func ParTupDef(eq0, eq1 Theorem) (Theorem, error) {
	f, i0, o0, err := appEquation("par_tup_def", eq0)
	if err != nil {
		return Theorem{}, err
	}
	g, i1, o1, err := appEquation("par_tup_def", eq1)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Axiom("par_tup_def", term.Eq{
		Left:  term.App{Fn: Par(f, g), Arg: term.Tup{Left: i0, Right: i1}},
		Right: term.Tup{Left: o0, Right: o1},
	}, eq0, eq1), nil
}

// appEquation splits f(a) == b.
func appEquation(rule string, th Theorem) (f, a, b term.Prop, err error) {
	l, b, err := equation(rule, th)
	if err != nil {
		return nil, nil, nil, err
	}
	app, ok := l.(term.App)
	if !ok {
		return nil, nil, nil, kernel.Reject(rule, "%s is not an application", l)
	}
	return app.Fn, app.Arg, b, nil
}
