package fun

import (
	"github.com/rfielding/pathsem/internal/kernel"
	"github.com/rfielding/pathsem/term"
)

func subst(e, from, to term.Prop) term.Subst {
	return term.Subst{Expr: e, From: from, To: to}
}

// occurs reports whether v is e or a subterm of e.
func occurs(e, v term.Prop) bool { return term.Equal(e, v) || term.Contains(e, v) }

// SubstTrivial proves a[a := b] == b. Only variables are substituted, so a
// must be a term.Var.
func SubstTrivial(a, b term.Prop) (Theorem, error) {
	if _, ok := a.(term.Var); !ok {
		return Theorem{}, kernel.Reject("subst_trivial", "%s is not a variable", a)
	}
	return kernel.Axiom("subst_trivial", term.Eq{Left: subst(a, a, b), Right: b}), nil
}

// SubstId proves a[b := a] == a. b must not occur strictly inside a.
func SubstId(a, b term.Prop) (Theorem, error) {
	if !term.Equal(a, b) && term.Contains(a, b) {
		return Theorem{}, kernel.Reject("subst_id", "%s occurs in %s", b, a)
	}
	return kernel.Axiom("subst_id", term.Eq{Left: subst(a, b, a), Right: a}), nil
}

// SubstNop proves a[b := b] == a.
func SubstNop(a, b term.Prop) Theorem {
	return kernel.Axiom("subst_nop", term.Eq{Left: subst(a, b, b), Right: a})
}

// SubstTy proves b[c := a] == b from a : b when c does not occur in b.
func SubstTy(ty Theorem, c term.Prop) (Theorem, error) {
	t, err := kernel.As[term.Ty]("subst_ty", ty)
	if err != nil {
		return Theorem{}, err
	}
	if occurs(t.Type, c) {
		return Theorem{}, kernel.Reject("subst_ty", "%s occurs in %s", c, t.Type)
	}
	return kernel.Axiom("subst_ty", term.Eq{Left: subst(t.Type, c, t.Elem), Right: t.Type}, ty), nil
}

// SubstConst proves a[b := c] == a from is_const(a) when b does not occur
// in a.
func SubstConst(ca Theorem, b, c term.Prop) (Theorem, error) {
	a, err := constant("subst_const", ca)
	if err != nil {
		return Theorem{}, err
	}
	if occurs(a, b) {
		return Theorem{}, kernel.Reject("subst_const", "%s occurs in %s", b, a)
	}
	return kernel.Axiom("subst_const", term.Eq{Left: subst(a, b, c), Right: a}, ca), nil
}

// SubstTup proves (a, b)[c := d] == (a[c := d], b[c := d]).
func SubstTup(a, b, c, d term.Prop) Theorem {
	return kernel.Axiom("subst_tup", term.Eq{
		Left:  subst(term.Tup{Left: a, Right: b}, c, d),
		Right: term.Tup{Left: subst(a, c, d), Right: subst(b, c, d)},
	})
}

// SubstLam pushes a substitution under a binder. The bound variable a must
// be constant so that the substitution cannot capture it, and c must not
// be a itself:
//
//	is_const(a)  =>  (\(a : x) = b)[c := d] == \(a : x[c := d]) = b[c := d]
func SubstLam(ca Theorem, x, b, c, d term.Prop) (Theorem, error) {
	a, err := constant("subst_lam", ca)
	if err != nil {
		return Theorem{}, err
	}
	if term.Equal(a, c) {
		return Theorem{}, kernel.Reject("subst_lam", "%s is bound by the lambda", c)
	}
	return kernel.Axiom("subst_lam", term.Eq{
		Left:  subst(term.Lam{Param: term.Ty{Elem: a, Type: x}, Body: b}, c, d),
		Right: term.Lam{Param: term.Ty{Elem: a, Type: subst(x, c, d)}, Body: subst(b, c, d)},
	}, ca), nil
}

// SubstEq proves a[c := d][e := f] == b[e := f] from a[c := d] == b.
func SubstEq(eq Theorem, e, f term.Prop) (Theorem, error) {
	l, b, err := equation("subst_eq", eq)
	if err != nil {
		return Theorem{}, err
	}
	if _, ok := l.(term.Subst); !ok {
		return Theorem{}, kernel.Reject("subst_eq", "%s is not a substitution", l)
	}
	return kernel.Axiom("subst_eq", term.Eq{Left: subst(l, e, f), Right: subst(b, e, f)}, eq), nil
}

// SubstEqLamBody proves (\(e) = a[c := d]) == (\(e) = b) from a[c := d] == b.
func SubstEqLamBody(eq Theorem, e term.Prop) (Theorem, error) {
	l, b, err := equation("subst_eq_lam_body", eq)
	if err != nil {
		return Theorem{}, err
	}
	if _, ok := l.(term.Subst); !ok {
		return Theorem{}, kernel.Reject("subst_eq_lam_body", "%s is not a substitution", l)
	}
	return kernel.Axiom("subst_eq_lam_body", term.Eq{
		Left:  term.Lam{Param: e, Body: l},
		Right: term.Lam{Param: e, Body: b},
	}, eq), nil
}
