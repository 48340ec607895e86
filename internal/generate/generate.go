// Package generate drives a flowgen run: it expands the source path, collects
// the definitions each candidate file registered, serializes them, and routes
// the output to stdout, a single file, or a mirrored directory.
package generate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mvp-joe/flowgen/internal/scan"
	"github.com/mvp-joe/flowgen/pkg/workflow"
)

// OutputSuffix is the extension written output files carry, replacing the
// candidate file's own extension.
const OutputSuffix = ".yaml"

// separator joins multiple YAML documents; the line between them is exactly
// "---".
const separator = "\n---\n"

// ParamError reports an invalid source/destination combination. It is the
// only error class presented to the user without its cause chain.
type ParamError struct {
	msg string
}

func (e *ParamError) Error() string { return e.msg }

func paramErrorf(format string, args ...any) error {
	return &ParamError{msg: fmt.Sprintf(format, args...)}
}

// Reporter receives write progress while generating into a directory
// destination.
type Reporter interface {
	OnWriteStart(totalFiles int)
	OnFileWritten(name string)
	OnWriteComplete()
}

// Options configures one generation run.
type Options struct {
	// Source is the file or directory to generate from. Required.
	Source string

	// To is the destination path. Empty writes to Out. A directory source
	// requires To to be a directory (created if absent); a file source
	// treats To as a file path.
	To string

	Recursive bool
	Exclude   []string

	// Registry supplies the definitions. Nil uses workflow.Default().
	Registry *workflow.Registry

	// Out receives the joined documents when To is empty. Nil means
	// os.Stdout.
	Out io.Writer

	// Progress, when non-nil, is notified while writing directory output.
	Progress Reporter
}

// fileOutput pairs a candidate file's base name with its serialized
// documents.
type fileOutput struct {
	name string
	text string
}

// Run executes one generation pass. Files are processed strictly
// sequentially in sorted path order; the run aborts on the first error.
func Run(opts Options) error {
	registry := opts.Registry
	if registry == nil {
		registry = workflow.Default()
	}

	sourceInfo, err := os.Stat(opts.Source)
	if err != nil {
		return err
	}

	paths, err := scan.Expand(opts.Source, scan.Options{
		Recursive: opts.Recursive,
		Exclude:   opts.Exclude,
	})
	if err != nil {
		return err
	}
	sort.Strings(paths)

	outputs, err := collect(registry, paths)
	if err != nil {
		return err
	}

	if opts.To == "" {
		return writeStream(opts.Out, outputs)
	}
	if sourceInfo.IsDir() {
		return writeDir(opts.To, outputs, opts.Progress)
	}
	return writeFile(opts.To, outputs)
}

// collect serializes every definition registered from each candidate file.
// Files contributing no definitions are skipped entirely, never emitted as
// empty documents.
func collect(registry *workflow.Registry, paths []string) ([]fileOutput, error) {
	var outputs []fileOutput
	for _, path := range paths {
		resources := registry.DefinedIn(path)
		if len(resources) == 0 {
			continue
		}

		docs := make([]string, 0, len(resources))
		for _, r := range resources {
			doc, err := r.ToYAML()
			if err != nil {
				return nil, fmt.Errorf("serializing definition from %s: %w", path, err)
			}
			docs = append(docs, strings.TrimSuffix(doc, "\n"))
		}
		outputs = append(outputs, fileOutput{
			name: filepath.Base(path),
			text: strings.Join(docs, separator),
		})
	}
	return outputs, nil
}

// writeStream joins all per-file outputs and writes them to w.
func writeStream(w io.Writer, outputs []fileOutput) error {
	if w == nil {
		w = os.Stdout
	}
	texts := make([]string, 0, len(outputs))
	for _, o := range outputs {
		texts = append(texts, o.text)
	}
	if _, err := io.WriteString(w, strings.Join(texts, separator)); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// writeDir mirrors each contributing candidate file into dest with the
// output suffix, creating dest (and parents) as needed. Destination validity
// is checked before anything is written.
func writeDir(dest string, outputs []fileOutput, progress Reporter) error {
	if info, err := os.Stat(dest); err == nil && !info.IsDir() {
		return paramErrorf("the source path is a directory, but --to points at an existing file")
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if progress != nil {
		progress.OnWriteStart(len(outputs))
	}
	for _, o := range outputs {
		name := strings.TrimSuffix(o.name, filepath.Ext(o.name)) + OutputSuffix
		path := filepath.Join(dest, name)
		if err := os.WriteFile(path, []byte(o.text), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		if progress != nil {
			progress.OnFileWritten(name)
		}
	}
	if progress != nil {
		progress.OnWriteComplete()
	}
	return nil
}

// writeFile writes the single output to dest. A file source yields at most
// one output by construction; anything else is a logic error, not a user
// mistake.
func writeFile(dest string, outputs []fileOutput) error {
	if len(outputs) != 1 {
		return fmt.Errorf("internal error: file source produced %d outputs, expected exactly 1", len(outputs))
	}
	if err := os.WriteFile(dest, []byte(outputs[0].text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	return nil
}
