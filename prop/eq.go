package prop

import (
	"github.com/rfielding/pathsem/internal/kernel"
	"github.com/rfielding/pathsem/term"
)

// EqTrans proves a == c from a == b and b == c.
func EqTrans(ab, bc Theorem) (Theorem, error) {
	to1, err := EqTo(ab)
	if err != nil {
		return Theorem{}, err
	}
	to2, err := EqTo(bc)
	if err != nil {
		return Theorem{}, err
	}
	to, err := ImplyTrans(to1, to2)
	if err != nil {
		return Theorem{}, err
	}
	from := must(ImplyTrans(must(EqFrom(bc)), must(EqFrom(ab))))
	return EqIntro(to, from)
}

// EqSym proves b == a from a == b.
func EqSym(ab Theorem) (Theorem, error) {
	from, err := EqFrom(ab)
	if err != nil {
		return Theorem{}, err
	}
	return EqIntro(from, must(EqTo(ab)))
}

// EqRefl proves a == a.
func EqRefl(a term.Prop) Theorem {
	id := must(Intro(a, identity))
	return must(EqIntro(id, id))
}

// EqModusTollens proves ¬b == ¬a from a == b.
func EqModusTollens(ab Theorem) (Theorem, error) {
	to, err := EqTo(ab)
	if err != nil {
		return Theorem{}, err
	}
	from := must(EqFrom(ab))
	return EqIntro(must(ModusTollens(to)), must(ModusTollens(from)))
}

// EqRevModusTollens proves b == a from ¬a == ¬b when a and b are decidable.
func EqRevModusTollens(d Decider, th Theorem) (Theorem, error) {
	to, err := EqTo(th)
	if err != nil {
		return Theorem{}, err
	}
	ba, err := RevModusTollens(d, to)
	if err != nil {
		return Theorem{}, err
	}
	ab, err := RevModusTollens(d, must(EqFrom(th)))
	if err != nil {
		return Theorem{}, err
	}
	return EqIntro(ba, ab)
}

// IsTrue proves a from true == a.
func IsTrue(th Theorem) (Theorem, error) {
	t, _, err := eqSides("is_true", th)
	if err != nil {
		return Theorem{}, err
	}
	if !term.Equal(t, term.True{}) {
		return Theorem{}, kernel.Reject("is_true", "%s is not true == a", th.Concl())
	}
	return Apply(must(EqTo(th)), TrueIntro())
}

// IsFalse proves ¬a from false == a.
func IsFalse(th Theorem) (Theorem, error) {
	f, _, err := eqSides("is_false", th)
	if err != nil {
		return Theorem{}, err
	}
	if !term.Equal(f, term.False{}) {
		return Theorem{}, kernel.Reject("is_false", "%s is not false == a", th.Concl())
	}
	return EqFrom(th)
}

// EqDoubleNeg proves a == ¬¬a from a.
func EqDoubleNeg(a Theorem) (Theorem, error) {
	if err := kernel.Require("eq_double_neg", a); err != nil {
		return Theorem{}, err
	}
	to := must(Intro(a.Concl(), DoubleNeg))
	nna := term.Not{Arg: term.Not{Arg: a.Concl()}}
	return EqIntro(to, constant(nna, a))
}

// EqImplyOr proves (a => b) == (¬a ⋁ b) when a is decidable.
func EqImplyOr(d Decider, a, b term.Prop) (Theorem, error) {
	to, err := Intro(term.Imply{Left: a, Right: b}, func(ab Theorem) (Theorem, error) {
		return ImplyToOr(d, ab)
	})
	if err != nil {
		return Theorem{}, err
	}
	from := must(Intro(term.Or{Left: term.Not{Arg: a}, Right: b}, ImplyFromOr))
	return EqIntro(to, from)
}

// EqInLeftArg proves c == b from a == b and a == c.
func EqInLeftArg(ab, ac Theorem) (Theorem, error) {
	ca, err := EqSym(ac)
	if err != nil {
		return Theorem{}, err
	}
	return EqTrans(ca, ab)
}

// EqInRightArg proves a == c from a == b and b == c.
func EqInRightArg(ab, bc Theorem) (Theorem, error) {
	return EqTrans(ab, bc)
}
