package workflow

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Argo-schema constants used when building manifests.
const (
	APIVersion           = "argoproj.io/v1alpha1"
	KindWorkflow         = "Workflow"
	KindCronWorkflow     = "CronWorkflow"
	KindWorkflowTemplate = "WorkflowTemplate"
)

// Manifest is a built, serializable resource: the Argo-schema object a
// definition renders to. Spec holds a *WorkflowSpec or *CronWorkflowSpec
// depending on Kind.
type Manifest struct {
	APIVersion string     `yaml:"apiVersion" json:"apiVersion"`
	Kind       string     `yaml:"kind" json:"kind"`
	Metadata   ObjectMeta `yaml:"metadata" json:"metadata"`
	Spec       any        `yaml:"spec" json:"spec"`
}

// ObjectMeta carries resource identity. Either Name or GenerateName must be
// set on the owning definition.
type ObjectMeta struct {
	Name         string            `yaml:"name,omitempty" json:"name,omitempty"`
	GenerateName string            `yaml:"generateName,omitempty" json:"generateName,omitempty"`
	Namespace    string            `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	Labels       map[string]string `yaml:"labels,omitempty" json:"labels,omitempty"`
	Annotations  map[string]string `yaml:"annotations,omitempty" json:"annotations,omitempty"`
}

// WorkflowSpec is the spec body shared by Workflow and WorkflowTemplate, and
// embedded in CronWorkflowSpec.
type WorkflowSpec struct {
	Entrypoint         string     `yaml:"entrypoint,omitempty" json:"entrypoint,omitempty"`
	ServiceAccountName string     `yaml:"serviceAccountName,omitempty" json:"serviceAccountName,omitempty"`
	Arguments          *Arguments `yaml:"arguments,omitempty" json:"arguments,omitempty"`
	Templates          []Template `yaml:"templates,omitempty" json:"templates,omitempty"`
}

// CronWorkflowSpec wraps a WorkflowSpec with a schedule.
type CronWorkflowSpec struct {
	Schedule                   string       `yaml:"schedule" json:"schedule"`
	Timezone                   string       `yaml:"timezone,omitempty" json:"timezone,omitempty"`
	ConcurrencyPolicy          string       `yaml:"concurrencyPolicy,omitempty" json:"concurrencyPolicy,omitempty"`
	StartingDeadlineSeconds    *int64       `yaml:"startingDeadlineSeconds,omitempty" json:"startingDeadlineSeconds,omitempty"`
	SuccessfulJobsHistoryLimit *int32       `yaml:"successfulJobsHistoryLimit,omitempty" json:"successfulJobsHistoryLimit,omitempty"`
	FailedJobsHistoryLimit     *int32       `yaml:"failedJobsHistoryLimit,omitempty" json:"failedJobsHistoryLimit,omitempty"`
	Suspend                    bool         `yaml:"suspend,omitempty" json:"suspend,omitempty"`
	WorkflowSpec               WorkflowSpec `yaml:"workflowSpec" json:"workflowSpec"`
}

// Arguments groups workflow or step parameters.
type Arguments struct {
	Parameters []Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// Parameter is a named value passed into a workflow or template.
type Parameter struct {
	Name    string `yaml:"name" json:"name"`
	Value   string `yaml:"value,omitempty" json:"value,omitempty"`
	Default string `yaml:"default,omitempty" json:"default,omitempty"`
}

// Template is one unit of execution within a workflow. Exactly one of the
// template kind fields (Container, Script, Suspend, Steps, DAG) must be set.
type Template struct {
	Name      string           `yaml:"name" json:"name"`
	Inputs    *Arguments       `yaml:"inputs,omitempty" json:"inputs,omitempty"`
	Container *Container       `yaml:"container,omitempty" json:"container,omitempty"`
	Script    *Script          `yaml:"script,omitempty" json:"script,omitempty"`
	Suspend   *SuspendTemplate `yaml:"suspend,omitempty" json:"suspend,omitempty"`
	Steps     []ParallelSteps  `yaml:"steps,omitempty" json:"steps,omitempty"`
	DAG       *DAGTemplate     `yaml:"dag,omitempty" json:"dag,omitempty"`
}

// Container runs an image with a command.
type Container struct {
	Image   string   `yaml:"image" json:"image"`
	Command []string `yaml:"command,omitempty" json:"command,omitempty"`
	Args    []string `yaml:"args,omitempty" json:"args,omitempty"`
	Env     []EnvVar `yaml:"env,omitempty" json:"env,omitempty"`
}

// Script runs inline source under an interpreter image. Source is emitted in
// YAML literal block style when it spans multiple lines.
type Script struct {
	Image   string   `yaml:"image" json:"image"`
	Command []string `yaml:"command,omitempty" json:"command,omitempty"`
	Source  string   `yaml:"source" json:"source"`
}

// EnvVar is a container environment variable.
type EnvVar struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value,omitempty" json:"value,omitempty"`
}

// SuspendTemplate pauses a workflow, optionally for a fixed duration.
type SuspendTemplate struct {
	Duration string `yaml:"duration,omitempty" json:"duration,omitempty"`
}

// ParallelSteps is one group of steps that run concurrently; groups run in
// sequence. It serializes as a nested list, matching the Argo schema.
type ParallelSteps []WorkflowStep

// WorkflowStep invokes a template by name within a steps template.
type WorkflowStep struct {
	Name      string     `yaml:"name" json:"name"`
	Template  string     `yaml:"template" json:"template"`
	Arguments *Arguments `yaml:"arguments,omitempty" json:"arguments,omitempty"`
}

// DAGTemplate declares tasks with explicit dependencies.
type DAGTemplate struct {
	Tasks []DAGTask `yaml:"tasks" json:"tasks"`
}

// DAGTask is one node in a DAG template. Dependencies name other tasks in the
// same DAG that must complete first.
type DAGTask struct {
	Name         string     `yaml:"name" json:"name"`
	Template     string     `yaml:"template" json:"template"`
	Dependencies []string   `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
	Arguments    *Arguments `yaml:"arguments,omitempty" json:"arguments,omitempty"`
}

// ToYAML renders the manifest as a YAML document with 2-space indentation.
func (m *Manifest) ToYAML() (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return "", fmt.Errorf("encoding manifest %q: %w", m.Metadata.Name, err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encoding manifest %q: %w", m.Metadata.Name, err)
	}
	return buf.String(), nil
}

// ToJSON renders the manifest as compact JSON.
func (m *Manifest) ToJSON() (string, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encoding manifest %q: %w", m.Metadata.Name, err)
	}
	return string(b), nil
}
