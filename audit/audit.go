// Package audit reports on derivations: which trusted axioms a theorem rests
// on, which rules built it, and how large it is. It also renders the
// derivation DAG as Graphviz DOT or a Mermaid flowchart.
package audit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rfielding/pathsem/internal/kernel"
	"github.com/rfielding/pathsem/prop"
)

// Report summarizes one derivation.
type Report struct {
	Conclusion string
	Hypotheses []string
	// Axioms counts the nodes minted by each trusted axiom.
	Axioms map[string]int
	// Rules counts the nodes minted by each derivation rule, assume included.
	Rules map[string]int
	Size  int
	Depth int
}

// Inspect walks th once per derivation node.
func Inspect(th prop.Theorem) Report {
	r := Report{
		Conclusion: fmt.Sprint(th.Concl()),
		Axioms:     make(map[string]int),
		Rules:      make(map[string]int),
		Depth:      kernel.Depth(th),
	}
	for _, h := range th.Hyps() {
		r.Hypotheses = append(r.Hypotheses, h.String())
	}
	kernel.Walk(th, func(t prop.Theorem) {
		r.Size++
		if t.IsAxiom() {
			r.Axioms[t.Rule()]++
		} else {
			r.Rules[t.Rule()]++
		}
	})
	return r
}

// Closed reports whether the derivation has no open hypotheses.
func (r Report) Closed() bool { return len(r.Hypotheses) == 0 }

// AxiomNames returns the trusted axioms used, sorted.
func (r Report) AxiomNames() []string { return sortedKeys(r.Axioms) }

// Table renders the report as a markdown table.
func (r Report) Table() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s**\n\n", r.Conclusion)
	if len(r.Hypotheses) > 0 {
		sb.WriteString("Hypotheses: " + strings.Join(r.Hypotheses, ", ") + "\n\n")
	}
	sb.WriteString("| Rule | Kind | Uses |\n")
	sb.WriteString("|------|------|------|\n")
	for _, name := range sortedKeys(r.Axioms) {
		fmt.Fprintf(&sb, "| %s | axiom | %d |\n", name, r.Axioms[name])
	}
	for _, name := range sortedKeys(r.Rules) {
		fmt.Fprintf(&sb, "| %s | rule | %d |\n", name, r.Rules[name])
	}
	fmt.Fprintf(&sb, "\nSize: %d nodes, depth %d\n", r.Size, r.Depth)
	return sb.String()
}

func sortedKeys(m map[string]int) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
