// Package catalog holds named, reproducible derivations of the headline
// theorems of the calculus. Every entry builds its theorem from scratch
// through the public rules.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rfielding/pathsem/fun"
	"github.com/rfielding/pathsem/funext"
	"github.com/rfielding/pathsem/pathsem"
	"github.com/rfielding/pathsem/prop"
	"github.com/rfielding/pathsem/term"
)

// ErrUnknown is returned by Lookup for a name not in the catalog.
var ErrUnknown = errors.New("unknown theorem")

// Entry is one named derivation.
type Entry struct {
	Name        string
	Description string
	build       func() (prop.Theorem, error)
}

// Build derives the entry's theorem.
func (e Entry) Build() (prop.Theorem, error) {
	th, err := e.build()
	if err != nil {
		return prop.Theorem{}, fmt.Errorf("%s: %w", e.Name, err)
	}
	return th, nil
}

var (
	a, b, c = term.Var("a"), term.Var("b"), term.Var("c")
	f, g, h = term.Var("f"), term.Var("g"), term.Var("h")
	x, y    = term.Var("x"), term.Var("y")
)

var entries = []Entry{
	{
		Name:        "and_commute",
		Description: "conjunction commutes",
		build: func() (prop.Theorem, error) {
			return prop.Intro(term.And{Left: a, Right: b}, prop.Commute)
		},
	},
	{
		Name:        "de_morgan",
		Description: "¬a ⋀ ¬b proves ¬(a ⋁ b) without excluded middle",
		build: func() (prop.Theorem, error) {
			return prop.Intro(term.And{Left: term.Not{Arg: a}, Right: term.Not{Arg: b}}, prop.ToDeMorgan)
		},
	},
	{
		Name:        "distrib_round_trip",
		Description: "distributing a ⋀ (b ⋁ c) and collecting it again",
		build: func() (prop.Theorem, error) {
			p := term.And{Left: a, Right: term.Or{Left: b, Right: c}}
			return prop.Intro(p, func(th prop.Theorem) (prop.Theorem, error) {
				d, err := prop.Distrib(th)
				if err != nil {
					return prop.Theorem{}, err
				}
				return prop.RevDistrib(d)
			})
		},
	},
	{
		Name:        "pord_trans",
		Description: "a is below (a ⋀ b), which is below ((a ⋀ b) ⋁ c)",
		build: func() (prop.Theorem, error) {
			ab := term.And{Left: a, Right: b}
			lower, err := pathsem.Below(ab, a)
			if err != nil {
				return prop.Theorem{}, err
			}
			upper, err := pathsem.Below(term.Or{Left: ab, Right: c}, ab)
			if err != nil {
				return prop.Theorem{}, err
			}
			return pathsem.Trans(upper, lower)
		},
	},
	{
		Name:        "comp_assoc",
		Description: "composition is associative",
		build:       func() (prop.Theorem, error) { return fun.CompAssoc(f, g, h), nil },
	},
	{
		Name:        "comp_inv",
		Description: "inverse reverses composition",
		build:       func() (prop.Theorem, error) { return fun.CompInv(f, g), nil },
	},
	{
		Name:        "involution",
		Description: "inv(inv(f)) == f holds tautologically",
		build:       func() (prop.Theorem, error) { return fun.TautoInvolve(f), nil },
	},
	{
		Name:        "inverse_round_trip",
		Description: "with ~inv(f), f(a) == b and inv(f)(b) == a are equivalent",
		build: func() (prop.Theorem, error) {
			return prop.Intro(term.Qu{Arg: term.Inv{Fn: f}}, func(qu prop.Theorem) (prop.Theorem, error) {
				return fun.QuToAppEq(qu, a, b)
			})
		},
	},
	{
		Name:        "q_adjoint",
		Description: "inv(f) ~~ g is the same as f ~~ inv(g)",
		build:       func() (prop.Theorem, error) { return fun.QAdjoint(f, g), nil },
	},
	{
		Name:        "norm1_comp",
		Description: "normalizing twice is normalizing once by the composite",
		build:       func() (prop.Theorem, error) { return fun.SymNorm1Comp(term.Id{}, g, h), nil },
	},
	{
		Name:        "norm1_id",
		Description: "normalizing by the identity does nothing",
		build:       func() (prop.Theorem, error) { return fun.SymNorm1Id(f), nil },
	},
	{
		Name:        "norm1_inv",
		Description: "normalizing the identity by f gives inv(f)",
		build:       func() (prop.Theorem, error) { return fun.Norm1Inv(f), nil },
	},
	{
		Name:        "norm2_comp",
		Description: "binary normalization composes",
		build:       func() (prop.Theorem, error) { return fun.SymNorm2Comp(f, g, h), nil },
	},
	{
		Name:        "lam_id",
		Description: "the identity lambda computes like id",
		build:       func() (prop.Theorem, error) { return fun.LamId(a, x, b), nil },
	},
	{
		Name:        "funext_refl",
		Description: "extensionality of f against itself",
		build:       func() (prop.Theorem, error) { return funext.Refl(f, x, y, a), nil },
	},
	{
		Name:        "funext_round_trip",
		Description: "(f == g)^true through Ext and RevExt and back",
		build: func() (prop.Theorem, error) {
			s := sig(f, g)
			return prop.Intro(s.TautoEq(), func(t prop.Theorem) (prop.Theorem, error) {
				ext, err := funext.Ext(s, t)
				if err != nil {
					return prop.Theorem{}, err
				}
				return funext.RevExt(ext)
			})
		},
	},
	{
		Name:        "funext_symmetry",
		Description: "extensionality is symmetric",
		build: func() (prop.Theorem, error) {
			return prop.Intro(sig(f, g).Ty(), funext.Symmetry)
		},
	},
}

func sig(l, r term.Prop) funext.Sig { return funext.Sig{F: l, G: r, X: x, Y: y, A: a} }

// All returns every entry, sorted by name.
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the entry names, sorted.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, e := range all {
		names[i] = e.Name
	}
	return names
}

// Lookup finds an entry by name.
func Lookup(name string) (Entry, error) {
	for _, e := range entries {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%q: %w", name, ErrUnknown)
}
