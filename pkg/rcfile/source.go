package rcfile

// Source is an immutable parsed configuration file. The zero value is not
// usable; obtain one from Load, or Defaults for the built-in configuration.
type Source struct {
	origin string
	opts   Options
	set    map[string]bool
}

func newSource(origin string, raw map[string]any) (*Source, error) {
	s := &Source{
		origin: origin,
		opts:   DefaultOptions(),
		set:    make(map[string]bool, len(raw)),
	}
	for name, v := range raw {
		if err := setValue(&s.opts, name, v); err != nil {
			return nil, err
		}
		s.set[name] = true
	}
	return s, nil
}

// Defaults returns a Source holding only the built-in defaults, with no
// origin file and no explicitly-set options.
func Defaults() *Source {
	return &Source{opts: DefaultOptions(), set: map[string]bool{}}
}

// Origin returns the absolute path of the file this Source was parsed from,
// or "" for the built-in defaults.
func (s *Source) Origin() string {
	return s.origin
}

// Options returns a copy of the source's option values. Options the file did
// not set carry their built-in defaults.
func (s *Source) Options() Options {
	o := s.opts
	o.Notes = append([]string(nil), s.opts.Notes...)
	o.Ignore = append([]string(nil), s.opts.Ignore...)
	o.IgnorePatterns = append([]string(nil), s.opts.IgnorePatterns...)
	return o
}

// IsSet reports whether the file explicitly set the named option.
func (s *Source) IsSet(name string) bool {
	return s.set[name]
}

// Same reports whether other is the identical parsed Source, not merely one
// with equal values. Caching layers hand out shared pointers, so Same is how
// reuse is observed.
func (s *Source) Same(other *Source) bool {
	return s == other
}
