package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/pathsem/catalog"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pathsem.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestList(t *testing.T) {
	out, _, err := run(t, "list")
	require.NoError(t, err)
	for _, name := range catalog.Names() {
		assert.Contains(t, out, name)
	}
	assert.Equal(t, len(catalog.Names()), strings.Count(out, "\n"))
}

func TestShow(t *testing.T) {
	out, _, err := run(t, "show", "and_commute")
	require.NoError(t, err)
	assert.Contains(t, out, "⊢ ((a ⋀ b) => (b ⋀ a))")
	assert.Contains(t, out, "axioms: none")

	out, _, err = run(t, "show", "comp_assoc")
	require.NoError(t, err)
	assert.Contains(t, out, "axioms: comp_assoc")
}

func TestUnknownName(t *testing.T) {
	_, _, err := run(t, "show", "nope")
	assert.ErrorIs(t, err, catalog.ErrUnknown)

	_, _, err = run(t, "dot")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	out, _, err := run(t, "dot", "involution")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph Derivation {"))

	out, _, err = run(t, "mermaid", "involution")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "flowchart BT"))
}

func TestAudit(t *testing.T) {
	out, _, err := run(t, "audit", "norm1_inv", "lam_id")
	require.NoError(t, err)
	assert.Contains(t, out, "## norm1_inv")
	assert.Contains(t, out, "## lam_id")
	assert.Contains(t, out, "| comp_id_left | axiom |")

	out, _, err = run(t, "audit", "--format", "summary", "norm1_inv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "norm1_inv: "))

	_, _, err = run(t, "audit", "--format", "xml")
	assert.Error(t, err)
}

func TestConfig(t *testing.T) {
	path := writeConfig(t, "log_level: debug\nformat: summary\ntheorems: [involution, q_adjoint]\n")

	out, logs, err := run(t, "--config", path, "audit")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "involution: "))
	assert.True(t, strings.HasPrefix(lines[1], "q_adjoint: "))
	assert.Contains(t, logs, "level=DEBUG")

	out, logs, err = run(t, "--config", path, "--log-level", "error", "audit", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "## involution")
	assert.Empty(t, logs)
}

func TestConfigErrors(t *testing.T) {
	_, _, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "list")
	assert.Error(t, err)

	_, _, err = run(t, "--config", writeConfig(t, "log_level: [\n"), "list")
	assert.Error(t, err)

	_, _, err = run(t, "--log-level", "loud", "list")
	assert.Error(t, err)

	_, _, err = run(t, "audit", "--format", "xml")
	assert.ErrorContains(t, err, "Format")

	_, _, err = run(t, "--config", writeConfig(t, "theorems: [and_commute, nope]\n"), "audit")
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "theorem", verrs[0].Tag())

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestReport(t *testing.T) {
	out, _, err := run(t, "report")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Path Semantics Theorem Catalog\n"))
	for _, name := range catalog.Names() {
		assert.Contains(t, out, "## "+name+"\n")
	}
	assert.Contains(t, out, "```mermaid\nflowchart BT\n")
	assert.Contains(t, out, fmt.Sprintf("%d theorems, %d closed.", len(catalog.Names()), len(catalog.Names())))

	path := filepath.Join(t.TempDir(), "catalog.md")
	stdout, _, err := run(t, "report", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, out, string(data))
}
