package workflow

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWorkflow(name string) *Workflow {
	return &Workflow{
		Name:      name,
		Templates: []Template{{Name: "job", Container: &Container{Image: "alpine:3.20"}}},
	}
}

func TestRegistry_AddCapturesCallingFile(t *testing.T) {
	reg := NewRegistry()
	reg.Add(testWorkflow("one"))

	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok)

	got := reg.DefinedIn(thisFile)
	require.Len(t, got, 1)
}

func TestRegister_UsesDefaultRegistry(t *testing.T) {
	Default().Reset()
	t.Cleanup(Default().Reset)

	wf := testWorkflow("default")
	returned := Register(wf)
	assert.Same(t, Resource(wf), returned)

	snapshot := Default().Snapshot()
	require.Len(t, snapshot, 1)
	assert.Contains(t, snapshot[0].File, "registry_test.go")
}

func TestRegistry_DefinedInPreservesRegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	reg.AddFile("/src/wf/a.go", testWorkflow("first"))
	reg.AddFile("/src/wf/b.go", testWorkflow("other"))
	reg.AddFile("/src/wf/a.go", testWorkflow("second"))

	got := reg.DefinedIn("/src/wf/a.go")
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].(*Workflow).Name)
	assert.Equal(t, "second", got[1].(*Workflow).Name)
}

func TestRegistry_DefinedInMatchesBySuffix(t *testing.T) {
	reg := NewRegistry()
	reg.AddFile("/home/joe/project/wf/a.go", testWorkflow("abs"))

	// The scanner may hand over a relative path; a build-time path prefix
	// must not prevent the match.
	got := reg.DefinedIn(filepath.Join("wf", "a.go"))
	require.Len(t, got, 1)

	// Base name alone matches too, but only on a separator boundary.
	assert.Len(t, reg.DefinedIn("a.go"), 1)
	assert.Empty(t, reg.DefinedIn("extra/a.go"))
	assert.Empty(t, reg.DefinedIn("wf/b.go"))
}

func TestRegistry_DefinedInUnknownFile(t *testing.T) {
	reg := NewRegistry()
	reg.AddFile("/src/wf/a.go", testWorkflow("one"))

	assert.Empty(t, reg.DefinedIn("/src/wf/nothing.go"))
}

func TestRegistry_Reset(t *testing.T) {
	reg := NewRegistry()
	reg.AddFile("/src/a.go", testWorkflow("one"))
	require.Equal(t, 1, reg.Len())

	reg.Reset()
	assert.Equal(t, 0, reg.Len())
	assert.Empty(t, reg.DefinedIn("/src/a.go"))
}

func TestRegistry_SnapshotIsACopy(t *testing.T) {
	reg := NewRegistry()
	reg.AddFile("/src/a.go", testWorkflow("one"))

	snapshot := reg.Snapshot()
	reg.AddFile("/src/b.go", testWorkflow("two"))

	assert.Len(t, snapshot, 1)
	assert.Equal(t, 2, reg.Len())
}
