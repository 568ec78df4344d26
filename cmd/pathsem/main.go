// Command pathsem lists the theorem catalog and renders derivations as
// markdown audits, Graphviz DOT or Mermaid flowcharts. The report command
// writes all of it into one markdown document.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rfielding/pathsem/audit"
	"github.com/rfielding/pathsem/catalog"
	"github.com/rfielding/pathsem/prop"
)

type app struct {
	configPath string
	logLevel   string
	format     string
	out        string
	cfg        Config
	log        *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "pathsem",
		Short:         "Inspect the Path Semantics theorem catalog",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the catalog",
		Args:  cobra.NoArgs,
		RunE:  a.runList,
	}
	showCmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a theorem and the axioms it rests on",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runShow,
	}
	dotCmd := &cobra.Command{
		Use:   "dot <name>",
		Short: "Render a derivation as Graphviz DOT",
		Args:  cobra.ExactArgs(1),
		RunE:  a.render(audit.Graphviz),
	}
	mermaidCmd := &cobra.Command{
		Use:   "mermaid <name>",
		Short: "Render a derivation as a Mermaid flowchart",
		Args:  cobra.ExactArgs(1),
		RunE:  a.render(audit.Mermaid),
	}
	auditCmd := &cobra.Command{
		Use:   "audit [name...]",
		Short: "Report rules, axioms and size of derivations",
		RunE:  a.runAudit,
	}
	auditCmd.Flags().StringVar(&a.format, "format", "", "table or summary")
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Write a markdown report of the whole catalog",
		Args:  cobra.NoArgs,
		RunE:  a.runReport,
	}
	reportCmd.Flags().StringVarP(&a.out, "out", "o", "", "write to this file instead of stdout")

	root.AddCommand(listCmd, showCmd, dotCmd, mermaidCmd, auditCmd, reportCmd)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		cfg.Format = a.format
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	level, err := cfg.level()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.log.Debug("configured", "config", a.configPath, "level", level, "format", cfg.Format)
	return nil
}

func (a *app) build(name string) (prop.Theorem, error) {
	e, err := catalog.Lookup(name)
	if err != nil {
		return prop.Theorem{}, err
	}
	th, err := e.Build()
	if err != nil {
		a.log.Error("derivation failed", "theorem", name, "err", err)
		return prop.Theorem{}, err
	}
	a.log.Info("derived", "theorem", name, "closed", th.Closed())
	return th, nil
}

func (a *app) runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, e := range catalog.All() {
		fmt.Fprintf(out, "%-20s %s\n", e.Name, e.Description)
	}
	return nil
}

func (a *app) runShow(cmd *cobra.Command, args []string) error {
	th, err := a.build(args[0])
	if err != nil {
		return err
	}
	r := audit.Inspect(th)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, th)
	if names := r.AxiomNames(); len(names) > 0 {
		fmt.Fprintf(out, "axioms: %s\n", strings.Join(names, ", "))
	} else {
		fmt.Fprintln(out, "axioms: none")
	}
	return nil
}

func (a *app) render(draw func(prop.Theorem) string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		th, err := a.build(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), draw(th))
		return nil
	}
}

func (a *app) runAudit(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = a.cfg.Theorems
	}
	if len(names) == 0 {
		names = catalog.Names()
	}
	out := cmd.OutOrStdout()
	for i, name := range names {
		th, err := a.build(name)
		if err != nil {
			return err
		}
		r := audit.Inspect(th)
		if a.cfg.Format == "summary" {
			fmt.Fprintf(out, "%s: %d nodes, depth %d, %d axioms\n", name, r.Size, r.Depth, len(r.Axioms))
			continue
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "## %s\n\n", name)
		fmt.Fprint(out, r.Table())
	}
	return nil
}
