package rcfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	ini "gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// Filenames are the rc file names probed within a directory, in order.
var Filenames = []string{"lintrc", ".lintrc", "lintrc.toml", ".lintrc.yaml"}

// Common errors for configuration loading.
var (
	ErrNotFound         = errors.New("configuration file not found")
	ErrPermissionDenied = errors.New("permission denied")
)

// ParseError reports a configuration file that exists but could not be
// parsed or failed schema validation.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid configuration file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Discover returns the path of the first recognized rc file inside dir, or
// "" when dir holds none. A single stat per candidate name; directories with
// an rc-like name are skipped.
func Discover(dir string) string {
	for _, name := range Filenames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// Load reads and parses the rc file at path. The format is detected from the
// file name (.toml for TOML, .yaml/.yml for YAML, INI otherwise). Unknown
// keys and malformed values are reported as a *ParseError; a missing file is
// reported via ErrNotFound.
func Load(path string) (*Source, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, abs)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, abs)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", abs)
	}

	raw, err := parseFile(abs)
	if err != nil {
		return nil, &ParseError{Path: abs, Err: err}
	}

	src, err := newSource(abs, raw)
	if err != nil {
		return nil, &ParseError{Path: abs, Err: err}
	}
	return src, nil
}

// parseFile reads path into a flat key->value map. Section and table names
// are discarded; they group keys for the reader, not for the schema.
func parseFile(path string) (map[string]any, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml":
		return parseTOML(path)
	case ".yaml", ".yml":
		return parseYAML(path)
	default:
		return parseINI(path)
	}
}

func parseINI(path string) (map[string]any, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	raw := make(map[string]any)
	for _, sec := range f.Sections() {
		for _, key := range sec.Keys() {
			raw[key.Name()] = key.Value()
		}
	}
	return raw, nil
}

func parseTOML(path string) (map[string]any, error) {
	var doc map[string]any
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, err
	}
	return flatten(doc), nil
}

func parseYAML(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return flatten(doc), nil
}

// flatten lifts keys out of one level of section tables/mappings into a flat
// map. Top-level scalar keys pass through unchanged.
func flatten(doc map[string]any) map[string]any {
	raw := make(map[string]any, len(doc))
	for key, v := range doc {
		if section, ok := v.(map[string]any); ok {
			for name, sv := range section {
				raw[name] = sv
			}
			continue
		}
		raw[key] = v
	}
	return raw
}
