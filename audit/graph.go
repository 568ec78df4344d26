package audit

import (
	"fmt"
	"io"
	"strings"

	"github.com/rfielding/pathsem/internal/kernel"
	"github.com/rfielding/pathsem/prop"
)

type node struct {
	id       int
	th       prop.Theorem
	premises []int
}

// nodes numbers the derivation DAG, premises first, so the root is last.
func nodes(th prop.Theorem) []node {
	index := make(map[any]int)
	var out []node
	kernel.Walk(th, func(t prop.Theorem) {
		n := node{id: len(out), th: t}
		for _, p := range t.Premises() {
			n.premises = append(n.premises, index[p.Identity()])
		}
		index[t.Identity()] = n.id
		out = append(out, n)
	})
	return out
}

// Graphviz renders the derivation of th as a DOT digraph. Edges point from
// premise to conclusion; axioms are shaded and hypotheses are ellipses.
func Graphviz(th prop.Theorem) string {
	var sb strings.Builder

	sb.WriteString("digraph Derivation {\n")
	sb.WriteString("  rankdir=BT;\n")
	sb.WriteString("  node [shape=box];\n")
	sb.WriteString("\n")

	ns := nodes(th)
	for _, n := range ns {
		label := dotEscape(n.th.Rule()) + "\\n" + dotEscape(n.th.Concl().String())
		attrs := ""
		switch {
		case n.th.IsAxiom():
			attrs = ", style=filled, fillcolor=lightgrey"
		case n.th.Rule() == "assume":
			attrs = ", shape=ellipse"
		}
		fmt.Fprintf(&sb, "  n%d [label=\"%s\"%s];\n", n.id, label, attrs)
	}
	sb.WriteString("\n")

	for _, n := range ns {
		for _, p := range n.premises {
			fmt.Fprintf(&sb, "  n%d -> n%d;\n", p, n.id)
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}

// WriteMermaid writes the derivation of th to w as a Mermaid flowchart.
func WriteMermaid(th prop.Theorem, w io.Writer) error {
	if _, err := fmt.Fprintln(w, "flowchart BT"); err != nil {
		return err
	}
	ns := nodes(th)
	for _, n := range ns {
		label := mermaidEscape(n.th.Rule() + ": " + n.th.Concl().String())
		open, closing := "[\"", "\"]"
		if n.th.Rule() == "assume" {
			open, closing = "([\"", "\"])"
		}
		if _, err := fmt.Fprintf(w, "  n%d%s%s%s\n", n.id, open, label, closing); err != nil {
			return err
		}
	}
	seenEdge := make(map[[2]int]bool)
	for _, n := range ns {
		for _, p := range n.premises {
			key := [2]int{p, n.id}
			if seenEdge[key] {
				continue
			}
			seenEdge[key] = true
			if _, err := fmt.Fprintf(w, "  n%d --> n%d\n", p, n.id); err != nil {
				return err
			}
		}
	}
	return nil
}

// Mermaid is WriteMermaid into a string.
func Mermaid(th prop.Theorem) string {
	var sb strings.Builder
	_ = WriteMermaid(th, &sb)
	return sb.String()
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

func mermaidEscape(s string) string {
	return strings.ReplaceAll(s, `"`, "#quot;")
}
