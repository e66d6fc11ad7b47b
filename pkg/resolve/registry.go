package resolve

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/getlintd/lintd/pkg/rcfile"
)

// ErrNotDirectory is returned when a directory-scoped operation is given a
// path that is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Registry caches parsed configuration sources per directory for the length
// of one Run. Each directory is parsed at most once; every caller that
// reaches a directory observes the identical *rcfile.Source. Absence is
// never cached: a directory without an rc file is re-probed on every visit,
// which is a single stat per recognized file name.
//
// Registry is safe for concurrent use. The lock is held across the
// probe-and-parse step so concurrent first access cannot parse twice.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*rcfile.Source
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*rcfile.Source)}
}

// GetOrDiscover returns the configuration source for dir, parsing the rc
// file inside it on first access. Returns nil, nil when dir holds no rc
// file. A malformed rc file is a *rcfile.ParseError and leaves no cache
// entry behind.
func (r *Registry) GetOrDiscover(dir string) (*rcfile.Source, error) {
	canon, err := canonicalDir(dir)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if src, ok := r.entries[canon]; ok {
		return src, nil
	}
	path := rcfile.Discover(canon)
	if path == "" {
		return nil, nil
	}
	src, err := rcfile.Load(path)
	if err != nil {
		return nil, err
	}
	r.entries[canon] = src
	return src, nil
}

// Register pins dir to src, overwriting any previously discovered entry.
// Explicit registration always wins over lazy discovery. dir must name an
// existing directory; a file path is rejected with ErrNotDirectory rather
// than coerced to its parent.
func (r *Registry) Register(dir string, src *rcfile.Source) error {
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

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[canon] = src
	return nil
}

// Contains reports whether dir has a registry entry. Intended for tests and
// embedding callers inspecting discovery state.
func (r *Registry) Contains(dir string) bool {
	canon, err := canonicalDir(dir)
	if err != nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[canon]
	return ok
}

// canonicalDir maps dir to the canonical absolute form used as a registry
// key, so the same directory reached via different relative spellings shares
// one entry.
func canonicalDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve directory %s: %w", dir, err)
	}
	return abs, nil
}
