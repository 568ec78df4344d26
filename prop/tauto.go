package prop

import (
	"fmt"

	"github.com/rfielding/pathsem/internal/kernel"
	"github.com/rfielding/pathsem/term"
)

// BoxMap lifts a derivation to tautologies: given □p1 ... □pn and a build
// function proving c from p1 ... pn, it proves □c. build must not use any
// hypothesis other than its arguments.
func BoxMap(build func(args ...Theorem) (Theorem, error), boxes ...Theorem) (Theorem, error) {
	ps := make([]term.Prop, len(boxes))
	for i, b := range boxes {
		p, err := tauto("tauto_map", b)
		if err != nil {
			return Theorem{}, err
		}
		ps[i] = p
	}
	closed, err := nest(ps, nil, build)
	if err != nil {
		return Theorem{}, err
	}
	box, err := Necessitate(closed)
	if err != nil {
		return Theorem{}, fmt.Errorf("tauto_map: %w", err)
	}
	for _, b := range boxes {
		if box, err = BoxApply(box, b); err != nil {
			return Theorem{}, err
		}
	}
	return box, nil
}

func nest(ps []term.Prop, args []Theorem, build func(args ...Theorem) (Theorem, error)) (Theorem, error) {
	if len(ps) == 0 {
		return build(args...)
	}
	return Intro(ps[0], func(h Theorem) (Theorem, error) {
		return nest(ps[1:], append(args[:len(args):len(args)], h), build)
	})
}

// PowApply proves y from y^x and x.
func PowApply(pow, x Theorem) (Theorem, error) {
	imp, err := Unbox(pow)
	if err != nil {
		return Theorem{}, err
	}
	return Apply(imp, x)
}

// PowToImply proves x => y from y^x.
func PowToImply(pow Theorem) (Theorem, error) {
	imp, err := Unbox(pow)
	if err != nil {
		return Theorem{}, err
	}
	if _, _, ok := term.Implication(imp.Concl()); !ok {
		return Theorem{}, kernel.Reject("pow_to_imply", "%s is not a power", pow.Concl())
	}
	return imp, nil
}

// PowTrans proves c^a from b^a and c^b.
func PowTrans(ba, cb Theorem) (Theorem, error) {
	return BoxMap(func(args ...Theorem) (Theorem, error) {
		return ImplyTrans(args[0], args[1])
	}, ba, cb)
}

// PowEqToTautoEq proves □(a == b) from b^a and a^b.
func PowEqToTautoEq(ba, ab Theorem) (Theorem, error) {
	return BoxMap(func(args ...Theorem) (Theorem, error) {
		return EqIntro(args[0], args[1])
	}, ba, ab)
}

// TautoEqSym proves □(b == a) from □(a == b).
func TautoEqSym(eq Theorem) (Theorem, error) {
	return BoxMap(func(args ...Theorem) (Theorem, error) {
		return EqSym(args[0])
	}, eq)
}

// TautoEqTrans proves □(a == c) from □(a == b) and □(b == c).
func TautoEqTrans(ab, bc Theorem) (Theorem, error) {
	return BoxMap(func(args ...Theorem) (Theorem, error) {
		return EqTrans(args[0], args[1])
	}, ab, bc)
}

// TautoEqRefl proves □(a == a).
func TautoEqRefl(a term.Prop) Theorem {
	return must(Necessitate(EqRefl(a)))
}
