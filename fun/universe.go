package fun

import (
	"math"

	"github.com/rfielding/pathsem/internal/kernel"
	"github.com/rfielding/pathsem/term"
)

// TypeSucc proves type(n) => type(n+1). Levels stop at math.MaxUint - 1
// as the last level with a successor.
func TypeSucc(n uint) (Theorem, error) {
	if n == math.MaxUint {
		return Theorem{}, kernel.Reject("type_succ", "type(%d) has no successor", n)
	}
	return kernel.Axiom("type_succ", term.Imply{Left: term.Type{Level: n}, Right: term.Type{Level: n + 1}}), nil
}

// TypeIsConst proves is_const(type(n)).
func TypeIsConst(n uint) Theorem {
	return kernel.Axiom("type_is_const", term.IsConst{Arg: term.Type{Level: n}})
}

// PowTy proves b^a : type(0).
func PowTy(a, b term.Prop) Theorem {
	return kernel.Axiom("pow_ty", term.Ty{Elem: term.Pow(b, a), Type: term.Type{Level: 0}})
}

// TypeTy proves type(n) : type(n+1). The order half of the judgement is
// not derivable from Below, so the whole judgement is an axiom.
func TypeTy(n uint) (Theorem, error) {
	succ, err := TypeSucc(n)
	if err != nil {
		return Theorem{}, err
	}
	return kernel.Axiom("type_ty", term.Ty{Elem: term.Type{Level: n}, Type: term.Type{Level: n + 1}}, succ), nil
}
