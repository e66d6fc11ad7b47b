// Package rcfile reads lintd configuration files into immutable Source
// values.
//
// An rc file is a grouped key/value settings file. Three formats are
// recognized, probed in a fixed order within a directory:
//
//   - lintrc, .lintrc       INI sections with key=value pairs
//   - lintrc.toml           TOML tables
//   - .lintrc.yaml          YAML mappings
//
// Section and table names are opaque grouping; keys are validated against a
// fixed schema of recognized options and unknown keys are rejected at parse
// time. Every option has a built-in default, so a Source is always complete:
// it records which options the file explicitly set so that callers layering
// configuration can distinguish "set to the default value" from "not set".
//
// Source values are immutable after parsing. Callers that cache them may
// hand the same pointer to many consumers; Same reports whether two sources
// are the identical parsed object.
package rcfile
