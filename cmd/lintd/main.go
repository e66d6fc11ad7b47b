// lintd - a note and style checker with per-directory configuration.
package main

import (
	"os"

	"github.com/getlintd/lintd/pkg/cli"
)

// Build-time variables set via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cli.Version = Version
	cli.Commit = Commit
	os.Exit(cli.Execute())
}
