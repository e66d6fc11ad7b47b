package resolve

import (
	"github.com/getlintd/lintd/pkg/rcfile"
)

// Provenance values identify where an effective option value came from.
const (
	FromDefault  = "default"
	FromFile     = "file"
	FromOverride = "override"
)

// Overrides holds option values supplied on the command line, keyed by
// option name. Values use flag syntax (comma-separated lists, decimal ints).
// Only options present in the map are applied; an override replaces a
// file-provided value wholesale, never appends to it.
type Overrides map[string]string

// compiledOverrides is an Overrides validated against the schema and parsed
// into typed values, done once at Run construction so bad overrides fail
// before any target is resolved.
type compiledOverrides struct {
	opts rcfile.Options
	set  map[string]bool
}

func compileOverrides(ov Overrides) (*compiledOverrides, error) {
	c := &compiledOverrides{
		opts: rcfile.DefaultOptions(),
		set:  make(map[string]bool, len(ov)),
	}
	for name, value := range ov {
		if err := rcfile.SetString(&c.opts, name, value); err != nil {
			return nil, err
		}
		c.set[name] = true
	}
	return c, nil
}

// Effective is the final per-target configuration: overrides layered on top
// of one winning file source, with built-in defaults underneath.
type Effective struct {
	// Options are the merged option values handed to the checker.
	Options rcfile.Options

	// Source is the winning file-based source the options were merged
	// over: a local rc file, or the run's base configuration.
	Source *rcfile.Source

	// Provenance records, per option, which layer supplied the value.
	Provenance map[string]string
}

// merge layers ov over src, option by option. src options the file did not
// explicitly set fall through to the built-in defaults.
func merge(src *rcfile.Source, ov *compiledOverrides) Effective {
	eff := Effective{
		Options:    rcfile.DefaultOptions(),
		Source:     src,
		Provenance: make(map[string]string, len(rcfile.Names())),
	}
	for _, name := range rcfile.Names() {
		eff.Provenance[name] = FromDefault
	}

	if src != nil {
		fileOpts := src.Options()
		if src.IsSet(rcfile.OptNotes) {
			eff.Options.Notes = fileOpts.Notes
			eff.Provenance[rcfile.OptNotes] = FromFile
		}
		if src.IsSet(rcfile.OptIgnore) {
			eff.Options.Ignore = fileOpts.Ignore
			eff.Provenance[rcfile.OptIgnore] = FromFile
		}
		if src.IsSet(rcfile.OptIgnorePatterns) {
			eff.Options.IgnorePatterns = fileOpts.IgnorePatterns
			eff.Provenance[rcfile.OptIgnorePatterns] = FromFile
		}
		if src.IsSet(rcfile.OptMaxLineLength) {
			eff.Options.MaxLineLength = fileOpts.MaxLineLength
			eff.Provenance[rcfile.OptMaxLineLength] = FromFile
		}
		if src.IsSet(rcfile.OptJobs) {
			eff.Options.Jobs = fileOpts.Jobs
			eff.Provenance[rcfile.OptJobs] = FromFile
		}
	}

	if ov != nil {
		if ov.set[rcfile.OptNotes] {
			eff.Options.Notes = append([]string(nil), ov.opts.Notes...)
			eff.Provenance[rcfile.OptNotes] = FromOverride
		}
		if ov.set[rcfile.OptIgnore] {
			eff.Options.Ignore = append([]string(nil), ov.opts.Ignore...)
			eff.Provenance[rcfile.OptIgnore] = FromOverride
		}
		if ov.set[rcfile.OptIgnorePatterns] {
			eff.Options.IgnorePatterns = append([]string(nil), ov.opts.IgnorePatterns...)
			eff.Provenance[rcfile.OptIgnorePatterns] = FromOverride
		}
		if ov.set[rcfile.OptMaxLineLength] {
			eff.Options.MaxLineLength = ov.opts.MaxLineLength
			eff.Provenance[rcfile.OptMaxLineLength] = FromOverride
		}
		if ov.set[rcfile.OptJobs] {
			eff.Options.Jobs = ov.opts.Jobs
			eff.Provenance[rcfile.OptJobs] = FromOverride
		}
	}

	return eff
}
