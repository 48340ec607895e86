package workflow

import (
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// Registration associates a Resource with the source file that defined it.
type Registration struct {
	File     string
	Resource Resource
}

// Registry collects workflow definitions during the load phase of a run.
// Definition files register themselves at package initialization; the
// generator then asks which resources a given candidate file defined.
// Registration order is preserved per file.
type Registry struct {
	mu      sync.Mutex
	entries []Registration
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// defaultRegistry backs the package-level Register. It is the only
// process-wide state in flowgen and is resettable for repeated runs.
var defaultRegistry = NewRegistry()

// Default returns the registry Register records into.
func Default() *Registry {
	return defaultRegistry
}

// Register records a definition in the default registry, attributed to the
// calling source file. It returns the resource so definition files can use
// the package-level var form:
//
//	var _ = workflow.Register(&workflow.Workflow{ ... })
func Register(r Resource) Resource {
	defaultRegistry.add(r, 2)
	return r
}

// Add records a definition attributed to the calling source file.
func (reg *Registry) Add(r Resource) {
	reg.add(r, 2)
}

// AddFile records a definition attributed to an explicit source file, for
// callers that assemble definitions programmatically.
func (reg *Registry) AddFile(file string, r Resource) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.entries = append(reg.entries, Registration{File: file, Resource: r})
}

// add records r attributed to the caller skip frames up the stack.
func (reg *Registry) add(r Resource, skip int) {
	file := "unknown"
	if _, f, _, ok := runtime.Caller(skip); ok {
		file = f
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.entries = append(reg.entries, Registration{File: file, Resource: r})
}

// Snapshot returns a copy of the current registrations in insertion order.
func (reg *Registry) Snapshot() []Registration {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	out := make([]Registration, len(reg.entries))
	copy(out, reg.entries)
	return out
}

// Len reports the number of registrations.
func (reg *Registry) Len() int {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return len(reg.entries)
}

// Reset discards all registrations so the registry can serve a fresh run.
func (reg *Registry) Reset() {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.entries = nil
}

// DefinedIn returns the resources registered from the given source file, in
// registration order. The recorded file is the path the Go compiler embedded
// at build time, which may carry a different prefix than the path being
// scanned at run time, so paths are compared exactly first and then by
// suffix on a separator boundary.
func (reg *Registry) DefinedIn(path string) []Resource {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	var out []Resource
	for _, e := range reg.entries {
		if samePath(e.File, path) {
			out = append(out, e.Resource)
		}
	}
	return out
}

func samePath(a, b string) bool {
	a = filepath.ToSlash(filepath.Clean(a))
	b = filepath.ToSlash(filepath.Clean(b))
	if a == b {
		return true
	}
	return strings.HasSuffix(a, "/"+b) || strings.HasSuffix(b, "/"+a)
}
