// Package term defines the syntax of propositions.
//
// A proposition is a small immutable tree built from the struct variants in
// this file. Every variant is a comparable struct, so two propositions are
// structurally equal exactly when Equal reports it (after Not/Imply
// normalization). Terms carry no proof content; theorems live in package prop.
package term

import "fmt"

// Prop is a proposition. The set of variants is closed.
type Prop interface {
	String() string
	isProp()
}

// Var is a schematic atom. Two atoms are the same when their names are.
type Var string

func (v Var) String() string { return string(v) }

// True is the trivially provable proposition.
type True struct{}

func (True) String() string { return "true" }

// False has no proof.
type False struct{}

func (False) String() string { return "false" }

// Not is ¬Arg. It is definitionally Imply{Arg, False}.
type Not struct {
	Arg Prop
}

func (n Not) String() string { return fmt.Sprintf("¬%s", n.Arg) }

// And is (Left ⋀ Right).
type And struct {
	Left, Right Prop
}

func (a And) String() string { return fmt.Sprintf("(%s ⋀ %s)", a.Left, a.Right) }

// Or is (Left ⋁ Right).
type Or struct {
	Left, Right Prop
}

func (o Or) String() string { return fmt.Sprintf("(%s ⋁ %s)", o.Left, o.Right) }

// Imply is (Left => Right).
type Imply struct {
	Left, Right Prop
}

func (i Imply) String() string { return fmt.Sprintf("(%s => %s)", i.Left, i.Right) }

// Eq is the biconditional (Left == Right).
type Eq struct {
	Left, Right Prop
}

func (e Eq) String() string { return fmt.Sprintf("(%s == %s)", e.Left, e.Right) }

// POrd is the path semantical order: Lower lies below Upper.
type POrd struct {
	Upper, Lower Prop
}

func (p POrd) String() string { return fmt.Sprintf("pord(%s, %s)", p.Upper, p.Lower) }

// Ty is the type judgement (Elem : Type).
type Ty struct {
	Elem, Type Prop
}

func (t Ty) String() string { return fmt.Sprintf("(%s : %s)", t.Elem, t.Type) }

// App is the value of Fn at Arg.
type App struct {
	Fn, Arg Prop
}

func (a App) String() string { return fmt.Sprintf("%s(%s)", a.Fn, a.Arg) }

// Inv is the imaginary inverse of Fn.
type Inv struct {
	Fn Prop
}

func (i Inv) String() string { return fmt.Sprintf("inv(%s)", i.Fn) }

// Comp is Outer after Inner.
type Comp struct {
	Outer, Inner Prop
}

func (c Comp) String() string { return fmt.Sprintf("(%s . %s)", c.Outer, c.Inner) }

// Lam binds Param (usually a Ty judgement) in Body.
type Lam struct {
	Param, Body Prop
}

func (l Lam) String() string { return fmt.Sprintf("\\(%s) = %s", l.Param, l.Body) }

// Subst is Expr with From replaced by To.
type Subst struct {
	Expr, From, To Prop
}

func (s Subst) String() string { return fmt.Sprintf("%s[%s := %s]", s.Expr, s.From, s.To) }

// IsConst states that Arg does not depend on any variable.
type IsConst struct {
	Arg Prop
}

func (c IsConst) String() string { return fmt.Sprintf("is_const(%s)", c.Arg) }

// Tup is the pair (Left, Right).
type Tup struct {
	Left, Right Prop
}

func (t Tup) String() string { return fmt.Sprintf("(%s, %s)", t.Left, t.Right) }

// Type is the universe at Level of the cumulative hierarchy.
type Type struct {
	Level uint
}

func (t Type) String() string { return fmt.Sprintf("type(%d)", t.Level) }

// Q is path semantical quality (Left ~~ Right), a partial equivalence.
type Q struct {
	Left, Right Prop
}

func (q Q) String() string { return fmt.Sprintf("(%s ~~ %s)", q.Left, q.Right) }

// Qu is the qubit ~Arg: Arg is qual to itself.
type Qu struct {
	Arg Prop
}

func (q Qu) String() string { return fmt.Sprintf("~%s", q.Arg) }

// Tauto states that Arg holds under every instantiation.
type Tauto struct {
	Arg Prop
}

func (t Tauto) String() string {
	if i, ok := t.Arg.(Imply); ok {
		return fmt.Sprintf("%s^%s", i.Right, i.Left)
	}
	if n, ok := t.Arg.(Not); ok {
		return fmt.Sprintf("false^%s", n.Arg)
	}
	return fmt.Sprintf("%s^true", t.Arg)
}

// Id is the identity function.
type Id struct{}

func (Id) String() string { return "id" }

// Dup maps a to (a, a).
type Dup struct{}

func (Dup) String() string { return "dup" }

// Fst projects the first component of a tuple.
type Fst struct{}

func (Fst) String() string { return "fst" }

// Snd projects the second component of a tuple.
type Snd struct{}

func (Snd) String() string { return "snd" }

// ParTup runs a tuple of functions side by side.
type ParTup struct{}

func (ParTup) String() string { return "par_tup" }

// FunExt is function extensionality.
type FunExt struct{}

func (FunExt) String() string { return "fun_ext" }

func (Var) isProp()     {}
func (True) isProp()    {}
func (False) isProp()   {}
func (Not) isProp()     {}
func (And) isProp()     {}
func (Or) isProp()      {}
func (Imply) isProp()   {}
func (Eq) isProp()      {}
func (POrd) isProp()    {}
func (Ty) isProp()      {}
func (App) isProp()     {}
func (Inv) isProp()     {}
func (Comp) isProp()    {}
func (Lam) isProp()     {}
func (Subst) isProp()   {}
func (IsConst) isProp() {}
func (Tup) isProp()     {}
func (Type) isProp()    {}
func (Q) isProp()       {}
func (Qu) isProp()      {}
func (Tauto) isProp()   {}
func (Id) isProp()      {}
func (Dup) isProp()     {}
func (Fst) isProp()     {}
func (Snd) isProp()     {}
func (ParTup) isProp()  {}
func (FunExt) isProp()  {}

// Pow is the tautological function type y^x, i.e. Tauto{Imply{x, y}}.
func Pow(y, x Prop) Prop {
	return Normalize(Tauto{Arg: Imply{Left: x, Right: y}})
}

// Tup3 is the right-nested triple (a, (b, c)).
func Tup3(a, b, c Prop) Prop {
	return Tup{Left: a, Right: Tup{Left: b, Right: c}}
}
