package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rfielding/pathsem/audit"
	"github.com/rfielding/pathsem/catalog"
)

// markdownReport renders every catalog entry with its derivation chart and
// audit table.
func (a *app) markdownReport() (string, error) {
	var md strings.Builder
	md.WriteString("# Path Semantics Theorem Catalog\n\n")

	var closed int
	entries := catalog.All()
	for _, e := range entries {
		th, err := a.build(e.Name)
		if err != nil {
			return "", err
		}
		if th.Closed() {
			closed++
		}
		r := audit.Inspect(th)

		fmt.Fprintf(&md, "## %s\n\n", e.Name)
		md.WriteString(e.Description + "\n\n")
		md.WriteString("```\n" + th.String() + "\n```\n\n")
		if r.Size <= 40 {
			md.WriteString("```mermaid\n")
			md.WriteString(audit.Mermaid(th))
			md.WriteString("```\n\n")
		}
		md.WriteString(r.Table())
		md.WriteString("\n")
	}

	md.WriteString("## Summary\n\n")
	fmt.Fprintf(&md, "%d theorems, %d closed.\n", len(entries), closed)
	return md.String(), nil
}

func (a *app) runReport(cmd *cobra.Command, args []string) error {
	md, err := a.markdownReport()
	if err != nil {
		return err
	}
	if a.out == "" {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}
	if err := os.WriteFile(a.out, []byte(md), 0o644); err != nil {
		return fmt.Errorf("failed to write the report: %w", err)
	}
	a.log.Info("report written", "path", a.out, "bytes", len(md))
	return nil
}
