// Package workflow defines the in-code workflow API that flowgen discovers
// and serializes. A definition is any value satisfying Resource; the concrete
// types here build Argo-schema manifests, but user-defined resource types are
// extracted and serialized all the same.
package workflow

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Resource is the contract a definition must satisfy to be discovered and
// serialized. The generator depends on nothing else.
type Resource interface {
	// Build validates the definition and renders it as a manifest.
	Build() (*Manifest, error)

	// ToYAML returns the canonical YAML form of the built manifest.
	ToYAML() (string, error)
}

// Workflow is a single Argo workflow definition.
type Workflow struct {
	Name         string
	GenerateName string
	Namespace    string
	Labels       map[string]string
	Annotations  map[string]string

	// Entrypoint names the template to start from. Empty defaults to the
	// first template at build time.
	Entrypoint         string
	ServiceAccountName string
	Parameters         []Parameter
	Templates          []Template
}

// Build validates the workflow and renders it as a Workflow manifest.
func (w *Workflow) Build() (*Manifest, error) {
	spec, err := w.buildSpec()
	if err != nil {
		return nil, err
	}
	return &Manifest{
		APIVersion: APIVersion,
		Kind:       KindWorkflow,
		Metadata:   w.metadata(),
		Spec:       spec,
	}, nil
}

// ToYAML builds the workflow and returns it as a YAML string.
func (w *Workflow) ToYAML() (string, error) {
	m, err := w.Build()
	if err != nil {
		return "", err
	}
	return m.ToYAML()
}

func (w *Workflow) metadata() ObjectMeta {
	return ObjectMeta{
		Name:         w.Name,
		GenerateName: w.GenerateName,
		Namespace:    w.Namespace,
		Labels:       w.Labels,
		Annotations:  w.Annotations,
	}
}

// buildSpec validates the definition and assembles its WorkflowSpec. The
// entrypoint defaults to the first template when unset.
func (w *Workflow) buildSpec() (*WorkflowSpec, error) {
	if err := w.validate(); err != nil {
		return nil, err
	}

	entrypoint := w.Entrypoint
	if entrypoint == "" && len(w.Templates) > 0 {
		entrypoint = w.Templates[0].Name
	}

	spec := &WorkflowSpec{
		Entrypoint:         entrypoint,
		ServiceAccountName: w.ServiceAccountName,
		Templates:          w.Templates,
	}
	if len(w.Parameters) > 0 {
		spec.Arguments = &Arguments{Parameters: w.Parameters}
	}
	return spec, nil
}

// CronWorkflow runs a workflow on a schedule. The embedded Workflow supplies
// metadata and the inner workflow spec.
type CronWorkflow struct {
	Workflow

	// Schedule is a cron expression, e.g. "0 3 * * *".
	Schedule                   string
	Timezone                   string
	ConcurrencyPolicy          string
	StartingDeadlineSeconds    *int64
	SuccessfulJobsHistoryLimit *int32
	FailedJobsHistoryLimit     *int32
	Suspend                    bool
}

// Build validates the definition and renders it as a CronWorkflow manifest.
func (c *CronWorkflow) Build() (*Manifest, error) {
	if c.Schedule == "" {
		return nil, fmt.Errorf("cron workflow %q: schedule is required", c.displayName())
	}
	spec, err := c.buildSpec()
	if err != nil {
		return nil, err
	}
	return &Manifest{
		APIVersion: APIVersion,
		Kind:       KindCronWorkflow,
		Metadata:   c.metadata(),
		Spec: &CronWorkflowSpec{
			Schedule:                   c.Schedule,
			Timezone:                   c.Timezone,
			ConcurrencyPolicy:          c.ConcurrencyPolicy,
			StartingDeadlineSeconds:    c.StartingDeadlineSeconds,
			SuccessfulJobsHistoryLimit: c.SuccessfulJobsHistoryLimit,
			FailedJobsHistoryLimit:     c.FailedJobsHistoryLimit,
			Suspend:                    c.Suspend,
			WorkflowSpec:               *spec,
		},
	}, nil
}

// ToYAML builds the cron workflow and returns it as a YAML string.
func (c *CronWorkflow) ToYAML() (string, error) {
	m, err := c.Build()
	if err != nil {
		return "", err
	}
	return m.ToYAML()
}

// WorkflowTemplate is a reusable workflow definition; it shares the Workflow
// spec body under its own kind.
type WorkflowTemplate struct {
	Workflow
}

// Build validates the definition and renders it as a WorkflowTemplate manifest.
func (t *WorkflowTemplate) Build() (*Manifest, error) {
	spec, err := t.buildSpec()
	if err != nil {
		return nil, err
	}
	return &Manifest{
		APIVersion: APIVersion,
		Kind:       KindWorkflowTemplate,
		Metadata:   t.metadata(),
		Spec:       spec,
	}, nil
}

// ToYAML builds the workflow template and returns it as a YAML string.
func (t *WorkflowTemplate) ToYAML() (string, error) {
	m, err := t.Build()
	if err != nil {
		return "", err
	}
	return m.ToYAML()
}

// workflowManifest mirrors Manifest with a typed spec for decoding.
type workflowManifest struct {
	APIVersion string       `yaml:"apiVersion"`
	Kind       string       `yaml:"kind"`
	Metadata   ObjectMeta   `yaml:"metadata"`
	Spec       WorkflowSpec `yaml:"spec"`
}

// FromYAML parses a serialized Workflow manifest back into a Workflow.
func FromYAML(doc string) (*Workflow, error) {
	var m workflowManifest
	if err := yaml.Unmarshal([]byte(doc), &m); err != nil {
		return nil, fmt.Errorf("parsing workflow yaml: %w", err)
	}
	if m.Kind != "" && m.Kind != KindWorkflow {
		return nil, fmt.Errorf("expected kind %q, got %q", KindWorkflow, m.Kind)
	}
	w := &Workflow{
		Name:               m.Metadata.Name,
		GenerateName:       m.Metadata.GenerateName,
		Namespace:          m.Metadata.Namespace,
		Labels:             m.Metadata.Labels,
		Annotations:        m.Metadata.Annotations,
		Entrypoint:         m.Spec.Entrypoint,
		ServiceAccountName: m.Spec.ServiceAccountName,
		Templates:          m.Spec.Templates,
	}
	if m.Spec.Arguments != nil {
		w.Parameters = m.Spec.Arguments.Parameters
	}
	return w, nil
}

// FromFile reads and parses a serialized Workflow manifest from disk.
func FromFile(path string) (*Workflow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workflow file: %w", err)
	}
	return FromYAML(string(data))
}

func (w *Workflow) displayName() string {
	if w.Name != "" {
		return w.Name
	}
	return w.GenerateName
}
