package prop

import (
	"errors"
	"fmt"

	"github.com/rfielding/pathsem/internal/kernel"
	"github.com/rfielding/pathsem/term"
)

// ErrUndecidable is returned by a Decider that has no decision for a
// proposition.
var ErrUndecidable = errors.New("undecidable")

// Decider supplies excluded middle on demand: Decide(p) proves p ⋁ ¬p.
// Tactics that need one take it as their first argument; propositions
// without a decision procedure work with every other tactic.
type Decider interface {
	Decide(p term.Prop) (Theorem, error)
}

// DeciderFunc adapts a function to a Decider.
type DeciderFunc func(p term.Prop) (Theorem, error)

func (f DeciderFunc) Decide(p term.Prop) (Theorem, error) { return f(p) }

// Hypothetical decides the connectives structurally and assumes excluded
// middle for its atoms. The assumptions show up among the hypotheses of
// every theorem built from its decisions.
type Hypothetical struct {
	atoms []term.Prop
}

// NewHypothetical returns a Decider for propositions built from atoms with
// true, false, ¬, ⋀, ⋁, => and ==.
func NewHypothetical(atoms ...term.Prop) *Hypothetical {
	return &Hypothetical{atoms: atoms}
}

func (h *Hypothetical) Decide(p term.Prop) (Theorem, error) {
	p = term.Normalize(p)
	for _, a := range h.atoms {
		if term.Equal(a, p) {
			return Assume(term.Or{Left: p, Right: term.Not{Arg: p}}), nil
		}
	}
	switch t := p.(type) {
	case term.True:
		return Left(TrueIntro(), term.Not{Arg: t})
	case term.False:
		return Right(t, must(Intro(t, identity)))
	case term.Not:
		return h.decideImply(t.Arg, term.False{})
	case term.Imply:
		return h.decideImply(t.Left, t.Right)
	case term.And:
		return h.decideAnd(t)
	case term.Or:
		return h.decideOr(t)
	case term.Eq:
		return h.decideEq(t)
	}
	return Theorem{}, fmt.Errorf("decide %s: %w", p, ErrUndecidable)
}

func (h *Hypothetical) decideAnd(p term.And) (Theorem, error) {
	da, err := h.Decide(p.Left)
	if err != nil {
		return Theorem{}, err
	}
	db, err := h.Decide(p.Right)
	if err != nil {
		return Theorem{}, err
	}
	goal := excluded(p)
	refute := func(proj func(Theorem) (Theorem, error), n Theorem) (Theorem, error) {
		na := must(Intro(p, func(ab Theorem) (Theorem, error) { return Apply(n, must(proj(ab))) }))
		return Right(p, na)
	}
	return Cases(da, goal,
		func(a Theorem) (Theorem, error) {
			return Cases(db, goal,
				func(b Theorem) (Theorem, error) { return Left(must(Both(a, b)), term.Not{Arg: p}) },
				func(nb Theorem) (Theorem, error) { return refute(Second, nb) })
		},
		func(na Theorem) (Theorem, error) { return refute(First, na) })
}

func (h *Hypothetical) decideOr(p term.Or) (Theorem, error) {
	da, err := h.Decide(p.Left)
	if err != nil {
		return Theorem{}, err
	}
	db, err := h.Decide(p.Right)
	if err != nil {
		return Theorem{}, err
	}
	goal := excluded(p)
	return Cases(da, goal,
		func(a Theorem) (Theorem, error) {
			return Left(must(Left(a, p.Right)), term.Not{Arg: p})
		},
		func(na Theorem) (Theorem, error) {
			return Cases(db, goal,
				func(b Theorem) (Theorem, error) { return Left(must(Right(p.Left, b)), term.Not{Arg: p}) },
				func(nb Theorem) (Theorem, error) { return Right(p, must(ToDeMorgan(must(Both(na, nb))))) })
		})
}

func (h *Hypothetical) decideImply(a, b term.Prop) (Theorem, error) {
	da, err := h.Decide(a)
	if err != nil {
		return Theorem{}, err
	}
	db, err := h.Decide(b)
	if err != nil {
		return Theorem{}, err
	}
	p := term.Normalize(term.Imply{Left: a, Right: b})
	goal := excluded(p)
	return Cases(db, goal,
		func(y Theorem) (Theorem, error) { return Left(constant(a, y), term.Not{Arg: p}) },
		func(nb Theorem) (Theorem, error) {
			return Cases(da, goal,
				func(x Theorem) (Theorem, error) { return Right(p, must(ToImply(must(Both(x, nb))))) },
				func(na Theorem) (Theorem, error) {
					ab := must(Intro(a, func(x Theorem) (Theorem, error) { return Absurd(must(Apply(na, x)), b) }))
					return Left(ab, term.Not{Arg: p})
				})
		})
}

func (h *Hypothetical) decideEq(p term.Eq) (Theorem, error) {
	dab, err := h.decideImply(p.Left, p.Right)
	if err != nil {
		return Theorem{}, err
	}
	dba, err := h.decideImply(p.Right, p.Left)
	if err != nil {
		return Theorem{}, err
	}
	goal := excluded(p)
	refute := func(proj func(Theorem) (Theorem, error), n Theorem) (Theorem, error) {
		ne := must(Intro(p, func(e Theorem) (Theorem, error) { return Apply(n, must(proj(e))) }))
		return Right(p, ne)
	}
	return Cases(dab, goal,
		func(ab Theorem) (Theorem, error) {
			return Cases(dba, goal,
				func(ba Theorem) (Theorem, error) { return Left(must(EqIntro(ab, ba)), term.Not{Arg: p}) },
				func(n Theorem) (Theorem, error) { return refute(EqFrom, n) })
		},
		func(n Theorem) (Theorem, error) { return refute(EqTo, n) })
}

func excluded(p term.Prop) term.Prop {
	return term.Or{Left: p, Right: term.Not{Arg: p}}
}

var _ Decider = (*Hypothetical)(nil)
var _ Decider = DeciderFunc(nil)

// decide asks d for p ⋁ ¬p and checks the answer.
func decide(rule string, d Decider, p term.Prop) (Theorem, error) {
	th, err := d.Decide(p)
	if err != nil {
		return Theorem{}, fmt.Errorf("%s: %w", rule, err)
	}
	if err := kernel.Require(rule, th); err != nil {
		return Theorem{}, err
	}
	if err := kernel.Expect(rule, th, excluded(p)); err != nil {
		return Theorem{}, err
	}
	return th, nil
}
