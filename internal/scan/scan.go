// Package scan expands a source path into the candidate definition files a
// generation run should consider.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Suffix is the extension candidate files must carry when the source is a
// directory. A regular-file source is always yielded, whatever its extension.
const Suffix = ".go"

// Options controls directory expansion.
type Options struct {
	// Recursive walks the full subtree instead of only immediate children.
	Recursive bool

	// Exclude holds slash-separated glob patterns matched against each
	// file's path relative to the source directory. Matching files are
	// skipped. Excludes never apply to a regular-file source.
	Exclude []string
}

// Expand resolves source into candidate files. A regular file is returned
// as-is; a directory is enumerated per opts with the Suffix filter applied.
// No ordering is guaranteed; callers sort the result. A missing source
// propagates the filesystem error unchanged.
func Expand(source string, opts Options) ([]string, error) {
	info, err := os.Stat(source)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{source}, nil
	}

	excludes, err := compileExcludes(opts.Exclude)
	if err != nil {
		return nil, err
	}

	if !opts.Recursive {
		return expandFlat(source, excludes)
	}
	return expandTree(source, excludes)
}

func expandFlat(dir string, excludes []glob.Glob) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Suffix) {
			continue
		}
		if matchesAny(entry.Name(), excludes) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

func expandTree(dir string, excludes []glob.Glob) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), Suffix) {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if matchesAny(filepath.ToSlash(rel), excludes) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func compileExcludes(patterns []string) ([]glob.Glob, error) {
	var globs []glob.Glob
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

func matchesAny(relPath string, globs []glob.Glob) bool {
	for _, g := range globs {
		if g.Match(relPath) {
			return true
		}
	}
	return false
}
