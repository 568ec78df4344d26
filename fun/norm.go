package fun

import (
	"github.com/rfielding/pathsem/prop"
	"github.com/rfielding/pathsem/quality"
	"github.com/rfielding/pathsem/term"
)

// Norm1 is the normal path f[g1 -> g2] of a unary function: the view of f
// through the input map g1 and the output map g2.
func Norm1(f, g1, g2 term.Prop) term.Prop {
	return term.Comp{Outer: term.Comp{Outer: g2, Inner: f}, Inner: term.Inv{Fn: g1}}
}

// SymNorm1 is f[g].
func SymNorm1(f, g term.Prop) term.Prop { return Norm1(f, g, g) }

// Norm2 is the normal path f[g1 x g2 -> g3] of a binary function.
func Norm2(f, g1, g2, g3 term.Prop) term.Prop {
	return term.Comp{
		Outer: term.Comp{Outer: g3, Inner: f},
		Inner: Par(term.Inv{Fn: g1}, term.Inv{Fn: g2}),
	}
}

// SymNorm2 is f[g] for a binary function.
func SymNorm2(f, g term.Prop) term.Prop { return Norm2(f, g, g, g) }

// Norm1Comp proves f[g1 -> g2][g3 -> g4] == f[(g3 . g1) -> (g4 . g2)].
func Norm1Comp(f, g1, g2, g3, g4 term.Prop) Theorem {
	k := term.Comp{Outer: g2, Inner: f}
	h := term.Comp{Outer: g4, Inner: k}
	ig1, ig3 := term.Inv{Fn: g1}, term.Inv{Fn: g3}
	steps := []Theorem{
		must(CompEqLeft(CompAssoc(ig1, k, g4), ig3)),
		must(prop.EqSym(CompAssoc(ig3, ig1, h))),
		must(CompEqRight(h, CompInv(g1, g3))),
		must(CompEqLeft(CompAssoc(f, g2, g4), term.Inv{Fn: term.Comp{Outer: g3, Inner: g1}})),
	}
	return chain(steps...)
}

// SymNorm1Comp proves f[g1][g2] == f[g2 . g1].
func SymNorm1Comp(f, g1, g2 term.Prop) Theorem { return Norm1Comp(f, g1, g1, g2, g2) }

// Norm1Eq proves f[g1 -> g2] == h[g1 -> g2] from f == h.
func Norm1Eq(eq Theorem, g1, g2 term.Prop) (Theorem, error) {
	inner, err := CompEqRight(g2, eq)
	if err != nil {
		return Theorem{}, err
	}
	return CompEqLeft(inner, term.Inv{Fn: g1})
}

// Norm1EqIn proves f[g1 -> g2] == f[h -> g2] from g1 == h.
func Norm1EqIn(f term.Prop, eq Theorem, g2 term.Prop) (Theorem, error) {
	inv, err := InvEq(eq)
	if err != nil {
		return Theorem{}, err
	}
	return CompEqRight(term.Comp{Outer: g2, Inner: f}, inv)
}

// Norm1EqOut proves f[g1 -> g2] == f[g1 -> h] from g2 == h.
func Norm1EqOut(f, g1 term.Prop, eq Theorem) (Theorem, error) {
	out, err := CompEqLeft(eq, f)
	if err != nil {
		return Theorem{}, err
	}
	return CompEqLeft(out, term.Inv{Fn: g1})
}

// Norm2Eq proves f[g1 x g2 -> g3] == h[g1 x g2 -> g3] from f == h.
func Norm2Eq(eq Theorem, g1, g2, g3 term.Prop) (Theorem, error) {
	inner, err := CompEqRight(g3, eq)
	if err != nil {
		return Theorem{}, err
	}
	return CompEqLeft(inner, Par(term.Inv{Fn: g1}, term.Inv{Fn: g2}))
}

// EqNorm2Norm1 proves f[g1 x g2 -> g3] == f[(g1 x g2) -> g3].
func EqNorm2Norm1(f, g1, g2, g3 term.Prop) Theorem {
	return must(CompEqRight(term.Comp{Outer: g3, Inner: f}, must(prop.EqSym(ParTupInv(g1, g2)))))
}

// EqNorm2Norm1Comp proves
// f[g1 x g2 -> g3][g4 x g5 -> g6] == f[(g1 x g2) -> g3][(g4 x g5) -> g6].
func EqNorm2Norm1Comp(f, g1, g2, g3, g4, g5, g6 term.Prop) Theorem {
	n1 := Norm1(f, Par(g1, g2), g3)
	return chain(
		must(Norm2Eq(EqNorm2Norm1(f, g1, g2, g3), g4, g5, g6)),
		EqNorm2Norm1(n1, g4, g5, g6),
	)
}

// Norm2Comp proves
// f[g1 x g2 -> g3][g4 x g5 -> g6] == f[(g4 . g1) x (g5 . g2) -> (g6 . g3)].
func Norm2Comp(f, g1, g2, g3, g4, g5, g6 term.Prop) Theorem {
	p12, p45 := Par(g1, g2), Par(g4, g5)
	c41 := term.Comp{Outer: g4, Inner: g1}
	c52 := term.Comp{Outer: g5, Inner: g2}
	c63 := term.Comp{Outer: g6, Inner: g3}
	return chain(
		EqNorm2Norm1Comp(f, g1, g2, g3, g4, g5, g6),
		Norm1Comp(f, p12, g3, p45, g6),
		must(Norm1EqIn(f, ParTupComp(g1, g2, g4, g5), c63)),
		must(prop.EqSym(EqNorm2Norm1(f, c41, c52, c63))),
	)
}

// SymNorm2Comp proves f[g1][g2] == f[g2 . g1] for a binary function.
func SymNorm2Comp(f, g1, g2 term.Prop) Theorem {
	return Norm2Comp(f, g1, g1, g1, g2, g2, g2)
}

// SymNorm1Id proves f[id] == f.
func SymNorm1Id(f term.Prop) Theorem {
	idf := term.Comp{Outer: term.Id{}, Inner: f}
	return chain(
		must(CompEqRight(idf, must(quality.ToEq(IdQ())))),
		CompIdRight(idf),
		CompIdLeft(f),
	)
}

// SymNorm2Id proves f[id] == f for a binary function.
func SymNorm2Id(f term.Prop) Theorem {
	id := term.Id{}
	return chain(
		EqNorm2Norm1(f, id, id, id),
		must(CompEqRight(term.Comp{Outer: id, Inner: f}, must(InvEq(ParTupId())))),
		SymNorm1Id(f),
	)
}

// Norm1Inv proves id[f -> id] == inv(f).
func Norm1Inv(f term.Prop) Theorem {
	return chain(
		must(CompEqLeft(CompIdLeft(term.Id{}), term.Inv{Fn: f})),
		CompIdLeft(term.Inv{Fn: f}),
	)
}

// chain composes equalities left to right.
func chain(eqs ...Theorem) Theorem {
	th := eqs[0]
	for _, next := range eqs[1:] {
		th = must(prop.EqTrans(th, next))
	}
	return th
}
