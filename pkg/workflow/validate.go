package workflow

import (
	"errors"
	"fmt"

	"github.com/dominikbraun/graph"
)

// validate checks the structural invariants every workflow must satisfy
// before it can be rendered: identity, unique well-formed templates, a
// resolvable entrypoint, and acyclic DAG templates.
func (w *Workflow) validate() error {
	if w.Name == "" && w.GenerateName == "" {
		return errors.New("workflow must set Name or GenerateName")
	}
	if len(w.Templates) == 0 {
		return fmt.Errorf("workflow %q has no templates", w.displayName())
	}

	names := make(map[string]bool, len(w.Templates))
	for _, t := range w.Templates {
		if t.Name == "" {
			return fmt.Errorf("workflow %q: template with empty name", w.displayName())
		}
		if names[t.Name] {
			return fmt.Errorf("workflow %q: duplicate template %q", w.displayName(), t.Name)
		}
		names[t.Name] = true

		if err := validateTemplateKind(&t); err != nil {
			return fmt.Errorf("workflow %q: %w", w.displayName(), err)
		}
	}

	if w.Entrypoint != "" && !names[w.Entrypoint] {
		return fmt.Errorf("workflow %q: entrypoint %q does not name a template", w.displayName(), w.Entrypoint)
	}

	for _, t := range w.Templates {
		if t.DAG == nil {
			continue
		}
		if err := validateDAG(t.Name, t.DAG); err != nil {
			return fmt.Errorf("workflow %q: %w", w.displayName(), err)
		}
	}
	return nil
}

// validateTemplateKind enforces that exactly one template kind is set.
func validateTemplateKind(t *Template) error {
	kinds := 0
	if t.Container != nil {
		kinds++
	}
	if t.Script != nil {
		kinds++
	}
	if t.Suspend != nil {
		kinds++
	}
	if len(t.Steps) > 0 {
		kinds++
	}
	if t.DAG != nil {
		kinds++
	}
	if kinds != 1 {
		return fmt.Errorf("template %q must set exactly one of container, script, suspend, steps or dag", t.Name)
	}
	return nil
}

// validateDAG checks that every dependency names a task in the same DAG and
// that the dependency graph is acyclic.
func validateDAG(template string, dag *DAGTemplate) error {
	g := graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles())

	for _, task := range dag.Tasks {
		if task.Name == "" {
			return fmt.Errorf("dag template %q: task with empty name", template)
		}
		if err := g.AddVertex(task.Name); err != nil {
			if errors.Is(err, graph.ErrVertexAlreadyExists) {
				return fmt.Errorf("dag template %q: duplicate task %q", template, task.Name)
			}
			return fmt.Errorf("dag template %q: %w", template, err)
		}
	}

	for _, task := range dag.Tasks {
		for _, dep := range task.Dependencies {
			err := g.AddEdge(dep, task.Name)
			switch {
			case err == nil:
			case errors.Is(err, graph.ErrEdgeCreatesCycle):
				return fmt.Errorf("dag template %q: dependency cycle through task %q", template, task.Name)
			case errors.Is(err, graph.ErrVertexNotFound):
				return fmt.Errorf("dag template %q: task %q depends on unknown task %q", template, task.Name, dep)
			default:
				return fmt.Errorf("dag template %q: %w", template, err)
			}
		}
	}
	return nil
}
