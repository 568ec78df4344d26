package pathsem

import (
	"github.com/rfielding/pathsem/internal/kernel"
	"github.com/rfielding/pathsem/prop"
	"github.com/rfielding/pathsem/term"
)

// Core is the core axiom of Path Semantics for f1, f2, x1 and x2:
//
//	((f1 == f2) ⋀ pord(f1, x1)) ⋀ ((f1 => x1) ⋀ (f2 => x2))  =>  (x1 == x2)
func Core(f1, f2, x1, x2 term.Prop) term.Prop {
	return term.Imply{
		Left: term.And{
			Left:  term.And{Left: term.Eq{Left: f1, Right: f2}, Right: term.POrd{Upper: f1, Lower: x1}},
			Right: term.And{Left: term.Imply{Left: f1, Right: x1}, Right: term.Imply{Left: f2, Right: x2}},
		},
		Right: term.Eq{Left: x1, Right: x2},
	}
}

// PAndFst sends the first argument of a conjunction to a higher level:
// ((a ⋀ b) == c) ⋀ (c => d)  =>  (a == d).
func PAndFst(a, b, c, d term.Prop) term.Prop {
	return pand(a, b, c, d, a)
}

// PAndSnd sends the second argument of a conjunction to a higher level:
// ((a ⋀ b) == c) ⋀ (c => d)  =>  (b == d).
func PAndSnd(a, b, c, d term.Prop) term.Prop {
	return pand(a, b, c, d, b)
}

func pand(a, b, c, d, sel term.Prop) term.Prop {
	return term.Imply{
		Left: term.And{
			Left:  term.Eq{Left: term.And{Left: a, Right: b}, Right: c},
			Right: term.Imply{Left: c, Right: d},
		},
		Right: term.Eq{Left: sel, Right: d},
	}
}

// instance recovers f1, f2, x1 and x2 from a theorem of Core.
func instance(rule string, th Theorem) (f1, f2, x1, x2 term.Prop, err error) {
	if err := kernel.Require(rule, th); err != nil {
		return nil, nil, nil, nil, err
	}
	if imp, ok := th.Concl().(term.Imply); ok {
		if e, ok := imp.Right.(term.Eq); ok {
			if lhs, ok := imp.Left.(term.And); ok {
				if eqs, ok := lhs.Left.(term.And); ok {
					if e0, ok := eqs.Left.(term.Eq); ok {
						f1, f2, x1, x2 = e0.Left, e0.Right, e.Left, e.Right
						if th.Proves(Core(f1, f2, x1, x2)) {
							return f1, f2, x1, x2, nil
						}
					}
				}
			}
		}
	}
	return nil, nil, nil, nil, kernel.Reject(rule, "%s is not an instance of the core axiom", th.Concl())
}

// Lift applies a core axiom instance: from f1 == f2, pord(f1, x1),
// f1 => x1 and f2 => x2 it proves x1 == x2.
func Lift(core, eq, pord, i1, i2 Theorem) (Theorem, error) {
	if _, _, _, _, err := instance("psem_lift", core); err != nil {
		return Theorem{}, err
	}
	if err := kernel.Require("psem_lift", eq, pord, i1, i2); err != nil {
		return Theorem{}, err
	}
	lhs := must(prop.Both(must(prop.Both(eq, pord)), must(prop.Both(i1, i2))))
	return prop.Apply(core, lhs)
}

// Compose joins core instances for (f1, f2, f3, f4) and (f3, f4, x1, x2)
// into one for (f1, f2, x1, x2). The order and implication witnesses
// connect the middle level.
func Compose(f, g, prF1F3, prF3X1, f1f3, f2f4, f3x1, f4x2 Theorem) (Theorem, error) {
	f1, f2, f3, f4, err := instance("psem_comp", f)
	if err != nil {
		return Theorem{}, err
	}
	g1, g2, x1, x2, err := instance("psem_comp", g)
	if err != nil {
		return Theorem{}, err
	}
	if !term.Equal(g1, f3) || !term.Equal(g2, f4) {
		return Theorem{}, kernel.Reject("psem_comp", "%s does not continue %s", g.Concl(), f.Concl())
	}
	if err := kernel.Require("psem_comp", prF1F3, prF3X1, f1f3, f2f4, f3x1, f4x2); err != nil {
		return Theorem{}, err
	}
	premise, _, _ := term.Implication(Core(f1, f2, x1, x2))
	return prop.Intro(premise, func(p Theorem) (Theorem, error) {
		eq12 := must(prop.First(must(prop.First(p))))
		eq34, err := Lift(f, eq12, prF1F3, f1f3, f2f4)
		if err != nil {
			return Theorem{}, err
		}
		return Lift(g, eq34, prF3X1, f3x1, f4x2)
	})
}

// ToPAndFst specializes a core instance for (a ⋀ b, c, a, d) to PAndFst.
func ToPAndFst(core Theorem) (Theorem, error) {
	return toPAnd("to_pand_fst", core, prop.First, true)
}

// ToPAndSnd specializes a core instance for (a ⋀ b, c, b, d) to PAndSnd.
func ToPAndSnd(core Theorem) (Theorem, error) {
	return toPAnd("to_pand_snd", core, prop.Second, false)
}

func toPAnd(rule string, core Theorem, proj func(Theorem) (Theorem, error), fst bool) (Theorem, error) {
	f1, c, x1, d, err := instance(rule, core)
	if err != nil {
		return Theorem{}, err
	}
	ab, ok := f1.(term.And)
	if !ok {
		return Theorem{}, kernel.Reject(rule, "%s is not a conjunction", f1)
	}
	want := PAndFst(ab.Left, ab.Right, c, d)
	if !fst {
		want = PAndSnd(ab.Left, ab.Right, c, d)
	}
	pord, err := Below(ab, x1)
	if err != nil {
		return Theorem{}, err
	}
	down := must(prop.Intro(ab, proj))
	if !term.Equal(down.Concl(), term.Imply{Left: ab, Right: x1}) {
		return Theorem{}, kernel.Reject(rule, "%s does not project to %s", ab, x1)
	}
	premise, _, _ := term.Implication(want)
	return prop.Intro(premise, func(p Theorem) (Theorem, error) {
		return Lift(core, must(prop.First(p)), pord, down, must(prop.Second(p)))
	})
}

// PAndJoin rejoins PAndFst and PAndSnd into a core instance for
// (a ⋀ b, c, a ⋀ b, d).
func PAndJoin(p1, p2 Theorem) (Theorem, error) {
	a, b, c, d, err := pandArgs("pand_join", p1)
	if err != nil {
		return Theorem{}, err
	}
	if err := kernel.Expect("pand_join", p2, PAndSnd(a, b, c, d)); err != nil {
		return Theorem{}, err
	}
	ab := term.And{Left: a, Right: b}
	premise, _, _ := term.Implication(Core(ab, c, ab, d))
	return prop.Intro(premise, func(p Theorem) (Theorem, error) {
		eqc := must(prop.First(must(prop.First(p))))
		cd := must(prop.Second(must(prop.Second(p))))
		arg := must(prop.Both(eqc, cd))
		eqA := must(prop.Apply(p1, arg))
		eqB := must(prop.Apply(p2, arg))
		to := must(prop.Intro(ab, func(x Theorem) (Theorem, error) {
			return prop.Apply(must(prop.EqTo(eqA)), must(prop.First(x)))
		}))
		from := must(prop.Intro(d, func(y Theorem) (Theorem, error) {
			return prop.Both(must(prop.Apply(must(prop.EqFrom(eqA)), y)), must(prop.Apply(must(prop.EqFrom(eqB)), y)))
		}))
		return prop.EqIntro(to, from)
	})
}

func pandArgs(rule string, th Theorem) (a, b, c, d term.Prop, err error) {
	if err := kernel.Require(rule, th); err != nil {
		return nil, nil, nil, nil, err
	}
	if imp, ok := th.Concl().(term.Imply); ok {
		if lhs, ok := imp.Left.(term.And); ok {
			e, ok1 := lhs.Left.(term.Eq)
			_, cons, ok2 := term.Implication(lhs.Right)
			if ok1 && ok2 {
				if x, ok := e.Left.(term.And); ok {
					a, b, c, d = x.Left, x.Right, e.Right, cons
					if th.Proves(PAndFst(a, b, c, d)) {
						return a, b, c, d, nil
					}
				}
			}
		}
	}
	return nil, nil, nil, nil, kernel.Reject(rule, "%s is not a PAndFst instance", th.Concl())
}

func must(th Theorem, err error) Theorem {
	if err != nil {
		panic("pathsem: " + err.Error())
	}
	return th
}
