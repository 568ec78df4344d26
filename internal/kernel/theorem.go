// Package kernel is the trusted core. It is the only place where a Theorem
// can be created; everything outside the module reaches it through the rules
// of packages prop, pathsem, fun, quality and funext.
package kernel

import (
	"slices"
	"strings"

	"github.com/rfielding/pathsem/term"
)

// Theorem is a derived sequent hyps ⊢ concl. The zero value proves nothing.
// Theorems are immutable and may be copied and shared freely.
type Theorem struct {
	d *derivation
}

type derivation struct {
	rule     string
	axiom    bool
	concl    term.Prop
	hyps     []term.Prop
	premises []Theorem
}

// Premise is a theorem used by a rule, together with the hypothesis the rule
// discharges from it (nil when nothing is discharged).
type Premise struct {
	Theorem   Theorem
	Discharge term.Prop
}

// Valid reports whether t was produced by a rule.
func (t Theorem) Valid() bool { return t.d != nil }

// Concl returns the proposition t proves.
func (t Theorem) Concl() term.Prop {
	if t.d == nil {
		return nil
	}
	return t.d.concl
}

// Hyps returns the hypotheses t depends on, sorted.
func (t Theorem) Hyps() []term.Prop {
	if t.d == nil {
		return nil
	}
	return slices.Clone(t.d.hyps)
}

// Closed reports whether t depends on no hypotheses.
func (t Theorem) Closed() bool { return t.d != nil && len(t.d.hyps) == 0 }

// Proves reports whether t is valid and concludes p.
func (t Theorem) Proves(p term.Prop) bool {
	return t.d != nil && term.Equal(t.d.concl, p)
}

// Rule names the rule or axiom that produced t.
func (t Theorem) Rule() string {
	if t.d == nil {
		return ""
	}
	return t.d.rule
}

// IsAxiom reports whether t was asserted by a trusted axiom.
func (t Theorem) IsAxiom() bool { return t.d != nil && t.d.axiom }

// Premises returns the theorems t was derived from.
func (t Theorem) Premises() []Theorem {
	if t.d == nil {
		return nil
	}
	return slices.Clone(t.d.premises)
}

// Identity is a comparable handle for t's derivation node, used to walk
// shared derivations once.
func (t Theorem) Identity() any { return t.d }

func (t Theorem) String() string {
	if t.d == nil {
		return "<empty>"
	}
	var sb strings.Builder
	for i, h := range t.d.hyps {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(h.String())
	}
	if len(t.d.hyps) > 0 {
		sb.WriteString(" ")
	}
	sb.WriteString("⊢ ")
	sb.WriteString(t.d.concl.String())
	return sb.String()
}

// Assume introduces p as a hypothesis: p ⊢ p.
func Assume(p term.Prop) Theorem {
	p = term.Normalize(p)
	return Theorem{d: &derivation{
		rule:  "assume",
		concl: p,
		hyps:  []term.Prop{p},
	}}
}

// Derive mints concl from premises. The hypotheses of the result are the
// union of the premises' hypotheses minus what each premise discharges.
// Callers are kernel rules that have already checked the premises' shapes.
func Derive(rule string, concl term.Prop, premises ...Premise) Theorem {
	return mint(rule, false, concl, premises)
}

// Axiom mints concl as an instance of the named trusted axiom. The
// hypotheses of the premises carry over.
func Axiom(name string, concl term.Prop, premises ...Theorem) Theorem {
	return mint(name, true, concl, Uses(premises...))
}

// Uses wraps theorems as premises that discharge nothing.
func Uses(ths ...Theorem) []Premise {
	out := make([]Premise, len(ths))
	for i, th := range ths {
		out[i] = Premise{Theorem: th}
	}
	return out
}

func mint(rule string, axiom bool, concl term.Prop, premises []Premise) Theorem {
	var hyps []term.Prop
	ths := make([]Theorem, 0, len(premises))
	for _, p := range premises {
		if !p.Theorem.Valid() {
			panic("kernel: " + rule + " minted from an empty theorem")
		}
		ths = append(ths, p.Theorem)
		for _, h := range p.Theorem.d.hyps {
			if p.Discharge != nil && term.Equal(h, p.Discharge) {
				continue
			}
			hyps = addHyp(hyps, h)
		}
	}
	return Theorem{d: &derivation{
		rule:     rule,
		axiom:    axiom,
		concl:    term.Normalize(concl),
		hyps:     hyps,
		premises: ths,
	}}
}

func addHyp(hyps []term.Prop, h term.Prop) []term.Prop {
	key := h.String()
	i, found := slices.BinarySearchFunc(hyps, key, func(e term.Prop, k string) int {
		return strings.Compare(e.String(), k)
	})
	for ; found && i < len(hyps) && hyps[i].String() == key; i++ {
		if hyps[i] == h {
			return hyps
		}
	}
	return slices.Insert(hyps, i, h)
}
