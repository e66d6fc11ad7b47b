// Package target models the files and directories submitted for checking
// and expands directory targets into the files they contain.
package target

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Kind classifies a target.
type Kind int

// Target kinds.
const (
	File Kind = iota
	Directory
)

// Target is one filesystem path submitted for checking.
type Target struct {
	Path string
	Kind Kind
}

// New classifies path into a Target, resolving it to an absolute path.
func New(path string) (Target, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Target{}, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return Target{}, fmt.Errorf("failed to stat target %s: %w", abs, err)
	}
	kind := File
	if info.IsDir() {
		kind = Directory
	}
	return Target{Path: abs, Kind: kind}, nil
}

// AnchorDir returns the directory the configuration search for this target
// starts from: the target itself for a directory, its containing directory
// for a file.
func (t Target) AnchorDir() string {
	if t.Kind == Directory {
		return t.Path
	}
	return filepath.Dir(t.Path)
}

// Expand returns the file targets a target stands for. A file target stands
// for itself. A directory target stands for every regular file beneath it,
// in walk order, except entries excluded by the ignore filters:
//
//   - ignore: exact base names to skip (a matching directory is pruned)
//   - patterns: doublestar globs matched against the base name, and against
//     the path relative to the expansion root when the pattern contains a
//     separator
func Expand(t Target, ignore, patterns []string) ([]Target, error) {
	if t.Kind == File {
		return []Target{t}, nil
	}

	var files []Target
	err := filepath.WalkDir(t.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == t.Path {
			return nil
		}
		excluded, err := matchIgnore(t.Path, path, d.Name(), ignore, patterns)
		if err != nil {
			return err
		}
		if excluded {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, Target{Path: path, Kind: File})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to expand directory %s: %w", t.Path, err)
	}
	return files, nil
}

func matchIgnore(root, path, base string, ignore, patterns []string) (bool, error) {
	for _, name := range ignore {
		if base == name {
			return true, nil
		}
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false, err
	}
	rel = filepath.ToSlash(rel)
	for _, pat := range patterns {
		ok, err := doublestar.Match(pat, base)
		if err != nil {
			return false, fmt.Errorf("bad ignore pattern %q: %w", pat, err)
		}
		if ok {
			return true, nil
		}
		ok, err = doublestar.Match(pat, rel)
		if err != nil {
			return false, fmt.Errorf("bad ignore pattern %q: %w", pat, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
