package flowgen

import (
	"github.com/mvp-joe/flowgen/internal/cli"
	"github.com/mvp-joe/flowgen/pkg/workflow"
)

// Re-export the workflow definition API so user code needs a single import.

type (
	Workflow         = workflow.Workflow
	CronWorkflow     = workflow.CronWorkflow
	WorkflowTemplate = workflow.WorkflowTemplate
	Resource         = workflow.Resource
	Registry         = workflow.Registry
	Builder          = workflow.Builder

	Manifest      = workflow.Manifest
	Template      = workflow.Template
	Container     = workflow.Container
	Script        = workflow.Script
	Parameter     = workflow.Parameter
	ParallelSteps = workflow.ParallelSteps
	WorkflowStep  = workflow.WorkflowStep
	DAGTemplate   = workflow.DAGTemplate
	DAGTask       = workflow.DAGTask
)

// Re-export the builder and registry entry points.

var (
	New          = workflow.New
	NewGenerated = workflow.NewGenerated
	Register     = workflow.Register
	Task         = workflow.Task
	Step         = workflow.Step
	Group        = workflow.Group
	FromYAML     = workflow.FromYAML
	FromFile     = workflow.FromFile
)

// Main runs the flowgen command line. A definition binary imports its
// workflow packages for side effect and hands control here:
//
//	package main
//
//	import (
//	    "github.com/mvp-joe/flowgen"
//
//	    _ "example.com/pipelines/workflows"
//	)
//
//	func main() { flowgen.Main() }
func Main() {
	cli.Execute()
}
