package resolve

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/getlintd/lintd/pkg/logging"
	"github.com/getlintd/lintd/pkg/rcfile"
	"github.com/getlintd/lintd/pkg/target"
)

// Run owns configuration resolution state for one checking session: the
// per-directory registry, the lazily-computed base configuration, and the
// command-line overrides. A Run is safe for concurrent use by checker
// workers.
type Run struct {
	id        string
	log       *slog.Logger
	registry  *Registry
	policy    Policy
	useLocal  bool
	rcPath    string
	overrides *compiledOverrides

	baseOnce sync.Once
	base     *rcfile.Source
	baseErr  error
}

// RunOption configures a Run.
type RunOption func(*Run)

// WithLocalConfigs enables per-target search for rc files in and above each
// target's own directory. Off by default: historically every target was
// checked against the single base configuration, and that remains the
// default behavior.
func WithLocalConfigs(enabled bool) RunOption {
	return func(r *Run) { r.useLocal = enabled }
}

// WithPolicy sets the boundary policy for local search.
func WithPolicy(pol Policy) RunOption {
	return func(r *Run) { r.policy = pol }
}

// WithRCFile bypasses base-configuration discovery and loads the named file
// as the base configuration instead.
func WithRCFile(path string) RunOption {
	return func(r *Run) { r.rcPath = path }
}

// WithLogger sets the run's logger. Defaults to a no-op logger.
func WithLogger(log *slog.Logger) RunOption {
	return func(r *Run) { r.log = log }
}

// NewRun validates overrides against the option schema and builds a Run.
// An override naming an unrecognized option fails here, before any target is
// resolved.
func NewRun(overrides Overrides, opts ...RunOption) (*Run, error) {
	compiled, err := compileOverrides(overrides)
	if err != nil {
		return nil, fmt.Errorf("invalid command-line override: %w", err)
	}

	r := &Run{
		id:        uuid.NewString(),
		log:       logging.Nop(),
		registry:  NewRegistry(),
		policy:    DefaultPolicy(),
		overrides: compiled,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// ID returns the run's unique identifier, used to correlate log entries.
func (r *Run) ID() string {
	return r.id
}

// Registry exposes the run's directory registry for embedding callers.
func (r *Run) Registry() *Registry {
	return r.registry
}

// Base returns the run-wide fallback configuration, computing it on first
// use. The computation happens at most once per Run, even under concurrent
// first access; a discovery error is sticky for the run's lifetime.
func (r *Run) Base() (*rcfile.Source, error) {
	r.baseOnce.Do(func() {
		r.base, r.baseErr = discoverBase(r.registry, r.rcPath)
		if r.baseErr == nil {
			r.log.Debug("base configuration resolved",
				"run", r.id, "origin", originOf(r.base))
		}
	})
	return r.base, r.baseErr
}

// EffectiveBase returns the base configuration with overrides applied. It
// carries the run-wide settings that are not per-target, such as worker
// count and directory-expansion filters.
func (r *Run) EffectiveBase() (Effective, error) {
	base, err := r.Base()
	if err != nil {
		return Effective{}, err
	}
	return merge(base, r.overrides), nil
}

// Resolve computes the effective configuration for one target: the nearest
// enclosing rc file when local search is enabled (falling back to the base
// configuration), the base configuration otherwise, with command-line
// overrides layered on top.
func (r *Run) Resolve(tgt target.Target) (Effective, error) {
	var src *rcfile.Source

	if r.useLocal {
		local, err := resolveLocal(r.registry, tgt.AnchorDir(), r.policy)
		if err != nil {
			return Effective{}, err
		}
		src = local
	}
	if src == nil {
		base, err := r.Base()
		if err != nil {
			return Effective{}, err
		}
		src = base
	}

	eff := merge(src, r.overrides)
	r.log.Debug("configuration resolved",
		"run", r.id, "target", tgt.Path, "origin", originOf(src))
	return eff, nil
}

// RegisterLocalConfig pins dir's configuration in the registry so later
// searches hit it without discovery. The configuration is the nearest rc
// file in or above dir; when none exists the call is a no-op, there being
// nothing to pin. A file path is rejected with ErrNotDirectory, never
// coerced to its parent.
func (r *Run) RegisterLocalConfig(dir string) error {
	canon, err := canonicalDir(dir)
	if err != nil {
		return err
	}
	info, err := os.Stat(canon)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", canon, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, canon)
	}

	src, err := resolveLocal(r.registry, canon, Policy{AllowEscape: true})
	if err != nil {
		return err
	}
	if src == nil {
		return nil
	}
	if err := r.registry.Register(canon, src); err != nil {
		return err
	}
	r.log.Debug("local configuration registered",
		"run", r.id, "dir", canon, "origin", src.Origin())
	return nil
}

func originOf(src *rcfile.Source) string {
	if src == nil || src.Origin() == "" {
		return "builtin defaults"
	}
	return src.Origin()
}
