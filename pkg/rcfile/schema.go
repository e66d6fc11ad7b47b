package rcfile

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Recognized option names.
const (
	OptNotes          = "notes"
	OptIgnore         = "ignore"
	OptIgnorePatterns = "ignore-patterns"
	OptMaxLineLength  = "max-line-length"
	OptJobs           = "jobs"
)

// Built-in defaults for every recognized option.
var (
	DefaultNotes          = []string{"FIXME", "XXX", "TODO"}
	DefaultIgnore         = []string{".git"}
	DefaultIgnorePatterns = []string{".#*"}
)

// DefaultMaxLineLength is the default maximum line length.
const DefaultMaxLineLength = 100

// DefaultJobs is the default checker parallelism (1 = sequential).
const DefaultJobs = 1

// Kind is the value type of an option.
type Kind int

// Option value kinds.
const (
	KindStringList Kind = iota
	KindInt
)

// Option describes one recognized configuration option.
type Option struct {
	Name string
	Kind Kind
}

var schema = map[string]Option{
	OptNotes:          {Name: OptNotes, Kind: KindStringList},
	OptIgnore:         {Name: OptIgnore, Kind: KindStringList},
	OptIgnorePatterns: {Name: OptIgnorePatterns, Kind: KindStringList},
	OptMaxLineLength:  {Name: OptMaxLineLength, Kind: KindInt},
	OptJobs:           {Name: OptJobs, Kind: KindInt},
}

// IsKnown reports whether name is a recognized option.
func IsKnown(name string) bool {
	_, ok := schema[name]
	return ok
}

// Names returns all recognized option names in sorted order.
func Names() []string {
	names := make([]string, 0, len(schema))
	for name := range schema {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnknownOptionError reports a key the schema does not recognize.
type UnknownOptionError struct {
	Name string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %q", e.Name)
}

// Options holds the typed values for every recognized option.
type Options struct {
	// Notes are the comment keywords the note checker reports.
	Notes []string

	// Ignore lists base names excluded from directory expansion.
	Ignore []string

	// IgnorePatterns lists glob patterns excluded from directory expansion.
	IgnorePatterns []string

	// MaxLineLength is the longest line not flagged by the checker.
	MaxLineLength int

	// Jobs is the checker worker count.
	Jobs int
}

// DefaultOptions returns a fresh Options populated with the built-in
// defaults. Slices are copied so callers may mutate the result.
func DefaultOptions() Options {
	return Options{
		Notes:          append([]string(nil), DefaultNotes...),
		Ignore:         append([]string(nil), DefaultIgnore...),
		IgnorePatterns: append([]string(nil), DefaultIgnorePatterns...),
		MaxLineLength:  DefaultMaxLineLength,
		Jobs:           DefaultJobs,
	}
}

// SetString assigns a flag-style string value to the named option, coercing
// it per the option's kind (comma-separated items for lists, decimal for
// ints). Returns *UnknownOptionError when the name is not recognized.
func SetString(o *Options, name, value string) error {
	return setValue(o, name, value)
}

func setValue(o *Options, name string, v any) error {
	opt, ok := schema[name]
	if !ok {
		return &UnknownOptionError{Name: name}
	}

	switch opt.Kind {
	case KindStringList:
		list, err := toStringList(v)
		if err != nil {
			return fmt.Errorf("option %q: %w", name, err)
		}
		switch name {
		case OptNotes:
			o.Notes = list
		case OptIgnore:
			o.Ignore = list
		case OptIgnorePatterns:
			o.IgnorePatterns = list
		}
	case KindInt:
		n, err := toInt(v)
		if err != nil {
			return fmt.Errorf("option %q: %w", name, err)
		}
		switch name {
		case OptMaxLineLength:
			o.MaxLineLength = n
		case OptJobs:
			o.Jobs = n
		}
	}
	return nil
}

// toStringList coerces a raw parsed value into a string slice. Strings are
// split on commas; native lists must contain only strings.
func toStringList(v any) ([]string, error) {
	switch val := v.(type) {
	case string:
		return splitList(val), nil
	case []string:
		return append([]string(nil), val...), nil
	case []any:
		list := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected a list of strings, got %T element", item)
			}
			list = append(list, s)
		}
		return list, nil
	default:
		return nil, fmt.Errorf("expected a string or list of strings, got %T", v)
	}
}

func toInt(v any) (int, error) {
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		n := int(val)
		if float64(n) != val {
			return 0, fmt.Errorf("expected an integer, got %v", val)
		}
		return n, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, fmt.Errorf("expected an integer, got %q", val)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected an integer, got %T", v)
	}
}

// splitList splits a comma-separated value, trimming whitespace and dropping
// empty items.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			list = append(list, p)
		}
	}
	return list
}
