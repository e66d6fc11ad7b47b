package resolve

import (
	"os"
	"path/filepath"

	"github.com/getlintd/lintd/pkg/rcfile"
)

// userConfigSubdir is the lintd directory under the user config dir probed
// as the last file-based fallback for the base configuration.
const userConfigSubdir = "lintd"

// discoverBase computes the run-wide fallback configuration: the classic
// upward search from the process working directory, unbounded by package
// membership, then the user-level config location, then built-in defaults.
// When rcPath is non-empty the search is bypassed entirely and that file is
// loaded instead.
//
// The upward walk goes through reg, so directories it parses are shared with
// per-target local searches in the same run.
func discoverBase(reg *Registry, rcPath string) (*rcfile.Source, error) {
	if rcPath != "" {
		return rcfile.Load(rcPath)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	src, err := resolveLocal(reg, cwd, Policy{AllowEscape: true})
	if err != nil {
		return nil, err
	}
	if src != nil {
		return src, nil
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		if path := rcfile.Discover(filepath.Join(configDir, userConfigSubdir)); path != "" {
			return rcfile.Load(path)
		}
	}

	return rcfile.Defaults(), nil
}
