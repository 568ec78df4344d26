package fun

import (
	"github.com/rfielding/pathsem/internal/kernel"
	"github.com/rfielding/pathsem/term"
)

// TupTy proves (a, b) : (x, y) from a : x and b : y.
func TupTy(tyA, tyB Theorem) (Theorem, error) {
	a, err := kernel.As[term.Ty]("tup_ty", tyA)
	if err != nil {
		return Theorem{}, err
	}
	b, err := kernel.As[term.Ty]("tup_ty", tyB)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Axiom("tup_ty", term.Ty{
		Elem: term.Tup{Left: a.Elem, Right: b.Elem},
		Type: term.Tup{Left: a.Type, Right: b.Type},
	}, tyA, tyB), nil
}

// TupIsConst proves is_const((a, b)) from is_const(a) and is_const(b).
func TupIsConst(ca, cb Theorem) (Theorem, error) {
	a, err := constant("tup_is_const", ca)
	if err != nil {
		return Theorem{}, err
	}
	b, err := constant("tup_is_const", cb)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Axiom("tup_is_const", term.IsConst{Arg: term.Tup{Left: a, Right: b}}, ca, cb), nil
}

// TupConst proves is_const(a) ⋀ is_const(b) from is_const((a, b)).
func TupConst(c Theorem) (Theorem, error) {
	t, err := constant("tup_const", c)
	if err != nil {
		return Theorem{}, err
	}
	tup, ok := t.(term.Tup)
	if !ok {
		return Theorem{}, kernel.Reject("tup_const", "%s is not a tuple", t)
	}
	return kernel.Axiom("tup_const", term.And{
		Left:  term.IsConst{Arg: tup.Left},
		Right: term.IsConst{Arg: tup.Right},
	}, c), nil
}

// TupFst proves a : x from (a, b) : (x, y).
func TupFst(ty Theorem) (Theorem, error) {
	a, _, x, _, err := tupTy("tup_fst", ty)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Axiom("tup_fst", term.Ty{Elem: a, Type: x}, ty), nil
}

// TupSnd proves b : y from (a, b) : (x, y).
func TupSnd(ty Theorem) (Theorem, error) {
	_, b, _, y, err := tupTy("tup_snd", ty)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Axiom("tup_snd", term.Ty{Elem: b, Type: y}, ty), nil
}

func tupTy(rule string, th Theorem) (a, b, x, y term.Prop, err error) {
	t, err := kernel.As[term.Ty](rule, th)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	e, ok1 := t.Elem.(term.Tup)
	ty, ok2 := t.Type.(term.Tup)
	if !ok1 || !ok2 {
		return nil, nil, nil, nil, kernel.Reject(rule, "%s is not a tuple judgement", th.Concl())
	}
	return e.Left, e.Right, ty.Left, ty.Right, nil
}

// TupEqFst proves (a, c) == (b, c) from a == b.
func TupEqFst(eq Theorem, c term.Prop) (Theorem, error) {
	a, b, err := equation("tup_eq_fst", eq)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Derive("tup_eq_fst", term.Eq{
		Left:  term.Tup{Left: a, Right: c},
		Right: term.Tup{Left: b, Right: c},
	}, kernel.Uses(eq)...), nil
}

// TupEqSnd proves (c, a) == (c, b) from a == b.
func TupEqSnd(c term.Prop, eq Theorem) (Theorem, error) {
	a, b, err := equation("tup_eq_snd", eq)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Derive("tup_eq_snd", term.Eq{
		Left:  term.Tup{Left: c, Right: a},
		Right: term.Tup{Left: c, Right: b},
	}, kernel.Uses(eq)...), nil
}

// Tup3Fst proves a : x from (a, b, c) : (x, y, z).
func Tup3Fst(ty Theorem) (Theorem, error) { return TupFst(ty) }

// Tup3Snd proves b : y from (a, b, c) : (x, y, z).
func Tup3Snd(ty Theorem) (Theorem, error) {
	rest, err := TupSnd(ty)
	if err != nil {
		return Theorem{}, err
	}
	return TupFst(rest)
}

// Tup3Trd proves c : z from (a, b, c) : (x, y, z).
func Tup3Trd(ty Theorem) (Theorem, error) {
	rest, err := TupSnd(ty)
	if err != nil {
		return Theorem{}, err
	}
	return TupSnd(rest)
}

// Tup3EqFst proves (a, c, d) == (b, c, d) from a == b.
func Tup3EqFst(eq Theorem, c, d term.Prop) (Theorem, error) {
	return TupEqFst(eq, term.Tup{Left: c, Right: d})
}

// Tup3EqSnd proves (c, a, d) == (c, b, d) from a == b.
func Tup3EqSnd(c term.Prop, eq Theorem, d term.Prop) (Theorem, error) {
	inner, err := TupEqFst(eq, d)
	if err != nil {
		return Theorem{}, err
	}
	return TupEqSnd(c, inner)
}

// Tup3EqTrd proves (c, d, a) == (c, d, b) from a == b.
func Tup3EqTrd(c, d term.Prop, eq Theorem) (Theorem, error) {
	inner, err := TupEqSnd(d, eq)
	if err != nil {
		return Theorem{}, err
	}
	return TupEqSnd(c, inner)
}
