package fun

import (
	"github.com/rfielding/pathsem/internal/kernel"
	"github.com/rfielding/pathsem/term"
)

// AndIsConst proves is_const(a ⋀ b).
func AndIsConst(ca, cb Theorem) (Theorem, error) {
	return binaryConst("and_is_const", ca, cb, func(a, b term.Prop) term.Prop {
		return term.And{Left: a, Right: b}
	})
}

// OrIsConst proves is_const(a ⋁ b).
func OrIsConst(ca, cb Theorem) (Theorem, error) {
	return binaryConst("or_is_const", ca, cb, func(a, b term.Prop) term.Prop {
		return term.Or{Left: a, Right: b}
	})
}

// ImplyIsConst proves is_const(a => b).
func ImplyIsConst(ca, cb Theorem) (Theorem, error) {
	return binaryConst("imply_is_const", ca, cb, func(a, b term.Prop) term.Prop {
		return term.Imply{Left: a, Right: b}
	})
}

// POrdIsConst proves is_const(pord(a, b)).
func POrdIsConst(ca, cb Theorem) (Theorem, error) {
	return binaryConst("pord_is_const", ca, cb, func(a, b term.Prop) term.Prop {
		return term.POrd{Upper: a, Lower: b}
	})
}

// TyIsConst proves is_const(a : b).
func TyIsConst(ca, cb Theorem) (Theorem, error) {
	return binaryConst("ty_is_const", ca, cb, func(a, b term.Prop) term.Prop {
		return term.Ty{Elem: a, Type: b}
	})
}

func binaryConst(rule string, ca, cb Theorem, form func(a, b term.Prop) term.Prop) (Theorem, error) {
	a, err := constant(rule, ca)
	if err != nil {
		return Theorem{}, err
	}
	b, err := constant(rule, cb)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Axiom(rule, term.IsConst{Arg: form(a, b)}, ca, cb), nil
}
