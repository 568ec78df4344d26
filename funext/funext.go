// Package funext bridges tautological equality of two functions and the
// pointwise equality of their values. Ext goes from □(f == g) to the
// extensionality type, RevExt goes back; RevExt is only available because
// the bridging function fun_ext(f, g) has a quality witness on its inverse.
//
// Reflexivity, symmetry and transitivity are derived from the two
// conversions and are not axioms of their own.
package funext

import (
	"github.com/rfielding/pathsem/fun"
	"github.com/rfielding/pathsem/internal/kernel"
	"github.com/rfielding/pathsem/pathsem"
	"github.com/rfielding/pathsem/prop"
	"github.com/rfielding/pathsem/term"
)

type Theorem = prop.Theorem

// Sig names the functions f, g : y^x compared at a : x.
type Sig struct {
	F, G term.Prop
	X, Y term.Prop
	A    term.Prop
}

// AppEq is (\(a : x) = (f(a) == g(a))) . (snd . snd).
func (s Sig) AppEq() term.Prop {
	lam := term.Lam{
		Param: term.Ty{Elem: s.A, Type: s.X},
		Body:  term.Eq{Left: term.App{Fn: s.F, Arg: s.A}, Right: term.App{Fn: s.G, Arg: s.A}},
	}
	return term.Comp{Outer: lam, Inner: sndSnd}
}

// Args is the triple (f, g, a).
func (s Sig) Args() term.Prop { return term.Tup3(s.F, s.G, s.A) }

// ArgsTy is the type of Args, (y^x, y^x, x).
func (s Sig) ArgsTy() term.Prop {
	pow := term.Pow(s.Y, s.X)
	return term.Tup3(pow, pow, s.X)
}

// Ty is the extensionality type
//
//	((f, g, a) : (y^x, y^x, x)) -> AppEq((f, g, a))
func (s Sig) Ty() term.Prop {
	return term.Pow(term.App{Fn: s.AppEq(), Arg: s.Args()}, term.Ty{Elem: s.Args(), Type: s.ArgsTy()})
}

// Fun is fun_ext((f, g)).
func (s Sig) Fun() term.Prop {
	return term.App{Fn: term.FunExt{}, Arg: term.Tup{Left: s.F, Right: s.G}}
}

// TautoEq is (f == g)^true.
func (s Sig) TautoEq() term.Prop {
	return term.Tauto{Arg: term.Eq{Left: s.F, Right: s.G}}
}

// Swap exchanges f and g.
func (s Sig) Swap() Sig {
	s.F, s.G = s.G, s.F
	return s
}

var sndSnd = term.Comp{Outer: term.Snd{}, Inner: term.Snd{}}

// Typing proves fun_ext((f, g)) : Ty^((f == g)^true). Trusted axiom.
func Typing(s Sig) Theorem {
	return kernel.Axiom("fun_ext_ty", term.Ty{Elem: s.Fun(), Type: term.Pow(s.Ty(), s.TautoEq())})
}

// QuInv proves ~inv(fun_ext((f, g))). Trusted axiom.
func QuInv(s Sig) Theorem {
	return kernel.Axiom("qu_inv_fun_ext", term.Qu{Arg: term.Inv{Fn: s.Fun()}})
}

// AppEqFromEq evaluates AppEq at (f, g, a) from a : x and f == g.
func AppEqFromEq(tyA, eq Theorem) (Theorem, error) {
	const rule = "fun_ext_app_eq_from_eq"
	ty, err := kernel.As[term.Ty](rule, tyA)
	if err != nil {
		return Theorem{}, err
	}
	e, err := kernel.As[term.Eq](rule, eq)
	if err != nil {
		return Theorem{}, err
	}
	a := ty.Elem
	s := Sig{F: e.Left, G: e.Right, X: ty.Type, A: a}
	args := s.Args()
	trueLam := term.Lam{Param: ty, Body: term.True{}}

	pointwise := must(fun.AppMapEq(eq, a))
	steps := []Theorem{
		must(fun.AppMapEq(must(fun.CompEqLeft(
			must(fun.LamEqLift(tyA, must(prop.ToEqPos(must(prop.Both(pointwise, prop.TrueIntro())))))),
			sndSnd,
		)), args)),
		must(prop.EqSym(fun.EqAppComp(sndSnd, trueLam, args))),
		must(fun.AppEq(trueLam, must(prop.EqSym(fun.EqAppComp(term.Snd{}, term.Snd{}, args))))),
		must(fun.AppEq(trueLam, must(fun.AppEq(term.Snd{}, fun.SndDef(s.F, term.Tup{Left: s.G, Right: a}))))),
		must(fun.AppEq(trueLam, fun.SndDef(s.G, a))),
		must(fun.Beta(tyA, a, term.True{})),
		fun.SubstNop(term.True{}, a),
	}
	chain := steps[0]
	for _, next := range steps[1:] {
		if chain, err = prop.EqTrans(chain, next); err != nil {
			return Theorem{}, err
		}
	}
	back, err := prop.EqFrom(chain)
	if err != nil {
		return Theorem{}, err
	}
	return prop.Apply(back, prop.TrueIntro())
}

// Ext proves the extensionality type of s from (f == g)^true.
func Ext(s Sig, tauto Theorem) (Theorem, error) {
	const rule = "fun_ext"
	if err := kernel.Require(rule, tauto); err != nil {
		return Theorem{}, err
	}
	if err := kernel.Expect(rule, tauto, s.TautoEq()); err != nil {
		return Theorem{}, err
	}
	return prop.BoxMap(func(args ...Theorem) (Theorem, error) {
		return prop.Intro(term.Ty{Elem: s.Args(), Type: s.ArgsTy()}, func(ty Theorem) (Theorem, error) {
			tyA, err := fun.Tup3Trd(ty)
			if err != nil {
				return Theorem{}, err
			}
			return AppEqFromEq(tyA, args[0])
		})
	}, tauto)
}

// ExtPow proves Ty^((f == g)^true), the closed form of Ext.
func ExtPow(s Sig) Theorem {
	return must(prop.Necessitate(must(prop.Intro(s.TautoEq(), func(t Theorem) (Theorem, error) {
		return Ext(s, t)
	}))))
}

// RevExt proves (f == g)^true from the extensionality type of f and g. It
// goes through the inverse of fun_ext((f, g)), which Path admits because
// of QuInv.
func RevExt(x Theorem) (Theorem, error) {
	s, err := parse("fun_rev_ext", x)
	if err != nil {
		return Theorem{}, err
	}
	typing := Typing(s)
	path, err := fun.Path(QuInv(s), typing, ExtPow(s))
	if err != nil {
		return Theorem{}, err
	}
	inv, err := prop.Second(path)
	if err != nil {
		return Theorem{}, err
	}
	invTy, err := fun.InvTy(typing)
	if err != nil {
		return Theorem{}, err
	}
	pow, err := pathsem.TyTriv(invTy, inv)
	if err != nil {
		return Theorem{}, err
	}
	return prop.PowApply(pow, x)
}

// Refl proves the extensionality type of f against itself.
func Refl(f, x, y, a term.Prop) Theorem {
	return must(Ext(Sig{F: f, G: f, X: x, Y: y, A: a}, prop.TautoEqRefl(f)))
}

// Symmetry turns the extensionality type of f and g into that of g and f.
func Symmetry(fg Theorem) (Theorem, error) {
	s, err := parse("fun_ext_symmetry", fg)
	if err != nil {
		return Theorem{}, err
	}
	eq, err := RevExt(fg)
	if err != nil {
		return Theorem{}, err
	}
	return Ext(s.Swap(), must(prop.TautoEqSym(eq)))
}

// Transitivity proves the extensionality type of f and h from those of
// f and g and of g and h.
func Transitivity(fg, gh Theorem) (Theorem, error) {
	const rule = "fun_ext_transitivity"
	s1, err := parse(rule, fg)
	if err != nil {
		return Theorem{}, err
	}
	s2, err := parse(rule, gh)
	if err != nil {
		return Theorem{}, err
	}
	if !term.Equal(s1.G, s2.F) || !term.Equal(s1.X, s2.X) || !term.Equal(s1.Y, s2.Y) || !term.Equal(s1.A, s2.A) {
		return Theorem{}, kernel.Reject(rule, "%s does not continue %s", gh.Concl(), fg.Concl())
	}
	e1, err := RevExt(fg)
	if err != nil {
		return Theorem{}, err
	}
	e2, err := RevExt(gh)
	if err != nil {
		return Theorem{}, err
	}
	eq, err := prop.TautoEqTrans(e1, e2)
	if err != nil {
		return Theorem{}, err
	}
	return Ext(Sig{F: s1.F, G: s2.G, X: s1.X, Y: s1.Y, A: s1.A}, eq)
}

// parse recovers the signature of a theorem whose conclusion is an
// extensionality type.
func parse(rule string, th Theorem) (Sig, error) {
	if err := kernel.Require(rule, th); err != nil {
		return Sig{}, err
	}
	_, ty, ok := term.Power(th.Concl())
	if !ok {
		return Sig{}, kernel.Reject(rule, "%s is not an extensionality type", th.Concl())
	}
	judgement, ok := ty.(term.Ty)
	if !ok {
		return Sig{}, kernel.Reject(rule, "%s is not an extensionality type", th.Concl())
	}
	args, ok1 := judgement.Elem.(term.Tup)
	types, ok2 := judgement.Type.(term.Tup)
	if !ok1 || !ok2 {
		return Sig{}, kernel.Reject(rule, "%s is not an extensionality type", th.Concl())
	}
	rest, ok1 := args.Right.(term.Tup)
	y, x, ok2 := term.Power(types.Left)
	if !ok1 || !ok2 {
		return Sig{}, kernel.Reject(rule, "%s is not an extensionality type", th.Concl())
	}
	s := Sig{F: args.Left, G: rest.Left, X: x, Y: y, A: rest.Right}
	if !term.Equal(s.Ty(), th.Concl()) {
		return Sig{}, kernel.Reject(rule, "have %s, want %s", th.Concl(), s.Ty())
	}
	return s, nil
}

func must(th Theorem, err error) Theorem {
	if err != nil {
		panic("funext: " + err.Error())
	}
	return th
}
