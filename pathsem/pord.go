// Package pathsem implements the path semantical order and the core axiom
// of Path Semantics.
//
// POrd{Upper, Lower} records that Lower sits below Upper. It has exactly
// three sources: Below (Lower is an operand of the connective Upper, or
// one of the two implications of an equality Upper),
// TrueFalse, and Trans/ByEqLeft/ByEqRight applied to existing proofs.
//
// The core axiom is not asserted by this package. An unconditional core
// axiom proves false (take f1 = f2 = false ⋀ b with x1 = false, x2 = true),
// so Core only builds the proposition; callers bring an instance in with
// prop.Assume and the instance stays visible among the hypotheses.
package pathsem

import (
	"github.com/rfielding/pathsem/internal/kernel"
	"github.com/rfielding/pathsem/prop"
	"github.com/rfielding/pathsem/term"
)

type Theorem = prop.Theorem

// Below proves pord(upper, lower) when lower is the left or right operand
// of upper, which must be a ⋀, ⋁, =>, ¬ or pord. For an equality the
// operands are its two implications.
func Below(upper, lower term.Prop) (Theorem, error) {
	upper = term.Normalize(upper)
	l, r, ok := term.Operands(upper)
	if !ok {
		return Theorem{}, kernel.Reject("pord_intro", "%s has no path semantical order", upper)
	}
	if !term.Equal(l, lower) && !term.Equal(r, lower) {
		return Theorem{}, kernel.Reject("pord_intro", "%s is not an operand of %s", lower, upper)
	}
	return kernel.Derive("pord_intro", term.POrd{Upper: upper, Lower: lower}), nil
}

// TrueFalse proves pord(true, false).
func TrueFalse() Theorem {
	return kernel.Derive("pord_true_false", term.POrd{Upper: term.True{}, Lower: term.False{}})
}

// Trans proves pord(t, v) from pord(t, u) and pord(u, v).
func Trans(tu, uv Theorem) (Theorem, error) {
	x, err := kernel.As[term.POrd]("pord_trans", tu)
	if err != nil {
		return Theorem{}, err
	}
	y, err := kernel.As[term.POrd]("pord_trans", uv)
	if err != nil {
		return Theorem{}, err
	}
	if !term.Equal(x.Lower, y.Upper) {
		return Theorem{}, kernel.Reject("pord_trans", "%s does not continue %s", uv.Concl(), tu.Concl())
	}
	return kernel.Derive("pord_trans", term.POrd{Upper: x.Upper, Lower: y.Lower}, kernel.Uses(tu, uv)...), nil
}

// ByEqLeft proves pord(v, u) from pord(t, u) and t == v.
func ByEqLeft(tu, eq Theorem) (Theorem, error) {
	x, err := kernel.As[term.POrd]("pord_by_eq_left", tu)
	if err != nil {
		return Theorem{}, err
	}
	e, err := kernel.As[term.Eq]("pord_by_eq_left", eq)
	if err != nil {
		return Theorem{}, err
	}
	if !term.Equal(x.Upper, e.Left) {
		return Theorem{}, kernel.Reject("pord_by_eq_left", "%s does not rewrite %s", eq.Concl(), x.Upper)
	}
	return kernel.Derive("pord_by_eq_left", term.POrd{Upper: e.Right, Lower: x.Lower}, kernel.Uses(tu, eq)...), nil
}

// ByEqRight proves pord(t, v) from pord(t, u) and u == v.
func ByEqRight(tu, eq Theorem) (Theorem, error) {
	x, err := kernel.As[term.POrd]("pord_by_eq_right", tu)
	if err != nil {
		return Theorem{}, err
	}
	e, err := kernel.As[term.Eq]("pord_by_eq_right", eq)
	if err != nil {
		return Theorem{}, err
	}
	if !term.Equal(x.Lower, e.Left) {
		return Theorem{}, kernel.Reject("pord_by_eq_right", "%s does not rewrite %s", eq.Concl(), x.Lower)
	}
	return kernel.Derive("pord_by_eq_right", term.POrd{Upper: x.Upper, Lower: e.Right}, kernel.Uses(tu, eq)...), nil
}
