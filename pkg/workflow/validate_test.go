package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func container() *Container {
	return &Container{Image: "alpine:3.20"}
}

func TestValidate_RequiresName(t *testing.T) {
	wf := &Workflow{
		Templates: []Template{{Name: "job", Container: container()}},
	}
	_, err := wf.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Name or GenerateName")
}

func TestValidate_GenerateNameIsEnough(t *testing.T) {
	wf := &Workflow{
		GenerateName: "job-",
		Templates:    []Template{{Name: "job", Container: container()}},
	}
	_, err := wf.Build()
	assert.NoError(t, err)
}

func TestValidate_RequiresTemplates(t *testing.T) {
	wf := &Workflow{Name: "empty"}
	_, err := wf.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no templates")
}

func TestValidate_DuplicateTemplateNames(t *testing.T) {
	wf := &Workflow{
		Name: "dup",
		Templates: []Template{
			{Name: "job", Container: container()},
			{Name: "job", Container: container()},
		},
	}
	_, err := wf.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate template "job"`)
}

func TestValidate_UnknownEntrypoint(t *testing.T) {
	wf := &Workflow{
		Name:       "bad-entry",
		Entrypoint: "missing",
		Templates:  []Template{{Name: "job", Container: container()}},
	}
	_, err := wf.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `entrypoint "missing"`)
}

func TestValidate_TemplateNeedsExactlyOneKind(t *testing.T) {
	wf := &Workflow{
		Name:      "two-kinds",
		Templates: []Template{{Name: "job", Container: container(), Script: &Script{Image: "python:3.12", Source: "pass"}}},
	}
	_, err := wf.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")

	wf = &Workflow{
		Name:      "no-kind",
		Templates: []Template{{Name: "job"}},
	}
	_, err = wf.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")
}

func TestValidate_DAGUnknownDependency(t *testing.T) {
	wf := &Workflow{
		Name: "dag",
		Templates: []Template{
			{Name: "work", Container: container()},
			{Name: "main", DAG: &DAGTemplate{Tasks: []DAGTask{
				{Name: "a", Template: "work", Dependencies: []string{"ghost"}},
			}}},
		},
		Entrypoint: "main",
	}
	_, err := wf.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown task "ghost"`)
}

func TestValidate_DAGCycle(t *testing.T) {
	wf := &Workflow{
		Name: "cyclic",
		Templates: []Template{
			{Name: "work", Container: container()},
			{Name: "main", DAG: &DAGTemplate{Tasks: []DAGTask{
				{Name: "a", Template: "work", Dependencies: []string{"c"}},
				{Name: "b", Template: "work", Dependencies: []string{"a"}},
				{Name: "c", Template: "work", Dependencies: []string{"b"}},
			}}},
		},
		Entrypoint: "main",
	}
	_, err := wf.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle")
}

func TestValidate_DAGSelfDependency(t *testing.T) {
	wf := &Workflow{
		Name: "self",
		Templates: []Template{
			{Name: "work", Container: container()},
			{Name: "main", DAG: &DAGTemplate{Tasks: []DAGTask{
				{Name: "a", Template: "work", Dependencies: []string{"a"}},
			}}},
		},
		Entrypoint: "main",
	}
	_, err := wf.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle")
}

func TestValidate_DAGDuplicateTask(t *testing.T) {
	wf := &Workflow{
		Name: "dup-task",
		Templates: []Template{
			{Name: "work", Container: container()},
			{Name: "main", DAG: &DAGTemplate{Tasks: []DAGTask{
				{Name: "a", Template: "work"},
				{Name: "a", Template: "work"},
			}}},
		},
		Entrypoint: "main",
	}
	_, err := wf.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate task "a"`)
}

func TestValidate_ValidDAGDiamond(t *testing.T) {
	wf := &Workflow{
		Name: "diamond",
		Templates: []Template{
			{Name: "work", Container: container()},
			{Name: "main", DAG: &DAGTemplate{Tasks: []DAGTask{
				{Name: "a", Template: "work"},
				{Name: "b", Template: "work", Dependencies: []string{"a"}},
				{Name: "c", Template: "work", Dependencies: []string{"a"}},
				{Name: "d", Template: "work", Dependencies: []string{"b", "c"}},
			}}},
		},
		Entrypoint: "main",
	}
	_, err := wf.Build()
	assert.NoError(t, err)
}
