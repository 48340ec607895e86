package workflow

// Builder provides a fluent API for defining workflows:
//
//	wf := workflow.New("nightly-report").
//	    Script("collect", "python:3.12", "import report\nreport.collect()").
//	    Container("publish", "alpine:3.20", "sh", "-c", "publish.sh").
//	    Entrypoint("collect").
//	    Workflow()
//
// The builder only assembles the definition; validation happens at build
// time, when the workflow is serialized.
type Builder struct {
	wf Workflow
}

// New creates a builder for a workflow with the given name.
func New(name string) *Builder {
	return &Builder{wf: Workflow{Name: name}}
}

// NewGenerated creates a builder for a workflow named by the cluster from the
// given prefix.
func NewGenerated(prefix string) *Builder {
	return &Builder{wf: Workflow{GenerateName: prefix}}
}

// Namespace sets the target namespace.
func (b *Builder) Namespace(ns string) *Builder {
	b.wf.Namespace = ns
	return b
}

// Entrypoint sets the template the workflow starts from. Unset, the first
// template is used.
func (b *Builder) Entrypoint(template string) *Builder {
	b.wf.Entrypoint = template
	return b
}

// ServiceAccount sets the service account the workflow runs as.
func (b *Builder) ServiceAccount(name string) *Builder {
	b.wf.ServiceAccountName = name
	return b
}

// Label adds a metadata label.
func (b *Builder) Label(key, value string) *Builder {
	if b.wf.Labels == nil {
		b.wf.Labels = make(map[string]string)
	}
	b.wf.Labels[key] = value
	return b
}

// Annotation adds a metadata annotation.
func (b *Builder) Annotation(key, value string) *Builder {
	if b.wf.Annotations == nil {
		b.wf.Annotations = make(map[string]string)
	}
	b.wf.Annotations[key] = value
	return b
}

// Parameter adds a workflow-level argument with a default value.
func (b *Builder) Parameter(name, value string) *Builder {
	b.wf.Parameters = append(b.wf.Parameters, Parameter{Name: name, Value: value})
	return b
}

// Container appends a container template running the given image and command.
func (b *Builder) Container(name, image string, command ...string) *Builder {
	b.wf.Templates = append(b.wf.Templates, Template{
		Name:      name,
		Container: &Container{Image: image, Command: command},
	})
	return b
}

// Script appends a script template with inline source. The command defaults
// to the image's interpreter convention and can be overridden via Template.
func (b *Builder) Script(name, image, source string, command ...string) *Builder {
	b.wf.Templates = append(b.wf.Templates, Template{
		Name:   name,
		Script: &Script{Image: image, Command: command, Source: source},
	})
	return b
}

// Suspend appends a suspend template pausing the workflow for the given
// duration; empty means until resumed.
func (b *Builder) Suspend(name, duration string) *Builder {
	b.wf.Templates = append(b.wf.Templates, Template{
		Name:    name,
		Suspend: &SuspendTemplate{Duration: duration},
	})
	return b
}

// Steps appends a steps template. Each group runs concurrently; groups run in
// sequence.
func (b *Builder) Steps(name string, groups ...ParallelSteps) *Builder {
	b.wf.Templates = append(b.wf.Templates, Template{Name: name, Steps: groups})
	return b
}

// DAG appends a DAG template from the given tasks.
func (b *Builder) DAG(name string, tasks ...DAGTask) *Builder {
	b.wf.Templates = append(b.wf.Templates, Template{Name: name, DAG: &DAGTemplate{Tasks: tasks}})
	return b
}

// Template appends a fully specified template, the escape hatch for anything
// the shorthand methods don't cover.
func (b *Builder) Template(t Template) *Builder {
	b.wf.Templates = append(b.wf.Templates, t)
	return b
}

// Workflow returns the assembled definition.
func (b *Builder) Workflow() *Workflow {
	wf := b.wf
	return &wf
}

// Register assembles the definition and records it in the default registry,
// attributed to the calling source file. Intended for package-level use in
// definition files:
//
//	var _ = workflow.New("hello").Container("say", "alpine", "echo", "hi").Register()
func (b *Builder) Register() *Workflow {
	wf := b.Workflow()
	defaultRegistry.add(wf, 2)
	return wf
}

// Task is a convenience constructor for DAG tasks.
func Task(name, template string, dependencies ...string) DAGTask {
	return DAGTask{Name: name, Template: template, Dependencies: dependencies}
}

// Step is a convenience constructor for workflow steps.
func Step(name, template string) WorkflowStep {
	return WorkflowStep{Name: name, Template: template}
}

// Group collects steps into one parallel group.
func Group(steps ...WorkflowStep) ParallelSteps {
	return ParallelSteps(steps)
}
