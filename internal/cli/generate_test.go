package cli

// Test Plan for Generate Command:
// - generate yaml <dir> writes joined documents to stdout in sorted order
// - generate yaml <dir> --to mirrors contributing files into the destination
// - generate yaml with an occupied non-directory destination reports a
//   parameter error without writing
// - generate yaml requires exactly one positional argument
// - list prints discovered definitions with kind and name

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mvp-joe/flowgen/pkg/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Reset flag state left over from previous executions.
	generateToFlag = ""
	generateRecursiveFlag = false
	generateExcludeFlag = nil
	generateQuietFlag = true

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// registerStatic records a Workflow for path in the default registry.
func registerStatic(t *testing.T, path, name string) {
	t.Helper()
	workflow.Default().AddFile(path, &workflow.Workflow{
		Name: name,
		Templates: []workflow.Template{
			{Name: "job", Container: &workflow.Container{Image: "alpine:3.20"}},
		},
	})
	t.Cleanup(workflow.Default().Reset)
}

func writeSource(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("package defs\n"), 0o644))
	return path
}

func TestGenerateYaml_Stdout(t *testing.T) {
	dir := t.TempDir()
	registerStatic(t, writeSource(t, dir, "a.go"), "alpha")
	writeSource(t, dir, "b.go") // registers nothing

	out, err := execute(t, "generate", "yaml", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "kind: Workflow")
	assert.Contains(t, out, "name: alpha")
	assert.NotContains(t, out, "---", "single contributing file needs no separator")
}

func TestGenerateYaml_DirectoryDestination(t *testing.T) {
	dir := t.TempDir()
	registerStatic(t, writeSource(t, dir, "a.go"), "alpha")

	dest := filepath.Join(t.TempDir(), "manifests")
	_, err := execute(t, "generate", "yaml", dir, "--to", dest, "--quiet")
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dest, "a.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(got), "name: alpha")
}

func TestGenerateYaml_OccupiedDestination(t *testing.T) {
	dir := t.TempDir()
	registerStatic(t, writeSource(t, dir, "a.go"), "alpha")

	dest := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(dest, []byte("file"), 0o644))

	_, err := execute(t, "generate", "yaml", dir, "--to", dest, "--quiet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "points at an existing file")
}

func TestGenerateYaml_RequiresSourceArgument(t *testing.T) {
	_, err := execute(t, "generate", "yaml")
	require.Error(t, err)
}

func TestList_PrintsDiscoveredDefinitions(t *testing.T) {
	dir := t.TempDir()
	registerStatic(t, writeSource(t, dir, "a.go"), "alpha")

	out, err := execute(t, "list", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "Workflow")
	assert.Contains(t, out, "alpha")
}

func TestList_NoDefinitions(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.go")

	out, err := execute(t, "list", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "No workflow definitions found")
}
