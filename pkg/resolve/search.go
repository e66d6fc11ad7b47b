package resolve

import (
	"os"
	"path/filepath"

	"github.com/getlintd/lintd/pkg/rcfile"
)

// Policy controls how far the upward search may walk from a target's anchor
// directory.
type Policy struct {
	// AllowEscape permits the search to ascend past the package hierarchy
	// the anchor belongs to, all the way to the filesystem root.
	AllowEscape bool

	// Markers are the file names whose presence marks a directory as part
	// of a package. With AllowEscape false, the search stops rather than
	// step from an unmarked directory into an unmarked parent.
	Markers []string
}

// DefaultPolicy allows ancestor escalation and uses the conventional package
// marker.
func DefaultPolicy() Policy {
	return Policy{
		AllowEscape: true,
		Markers:     []string{"__init__.py"},
	}
}

// resolveLocal walks from anchor toward the filesystem root and returns the
// nearest configuration source, consulting and populating reg along the way.
// Returns nil, nil when the walk exhausts its boundary without finding one.
// The walk is strictly upward: one step to the direct parent per iteration,
// no revisits.
func resolveLocal(reg *Registry, anchor string, pol Policy) (*rcfile.Source, error) {
	dir, err := canonicalDir(anchor)
	if err != nil {
		return nil, err
	}

	for {
		src, err := reg.GetOrDiscover(dir)
		if err != nil {
			return nil, err
		}
		if src != nil {
			return src, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Filesystem root.
			return nil, nil
		}
		if !pol.AllowEscape && !hasMarker(dir, pol.Markers) && !hasMarker(parent, pol.Markers) {
			// Ascending would leave the package hierarchy.
			return nil, nil
		}
		dir = parent
	}
}

func hasMarker(dir string, markers []string) bool {
	for _, name := range markers {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}
