// Package cli implements the lintd command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getlintd/lintd/pkg/logging"
)

// Version information, set by the main package at build time.
var (
	Version = "dev"
	Commit  = "unknown"
)

var (
	logLevel string
	logJSON  bool
)

// exitCode is set by commands that succeed but want a nonzero exit, such as
// check finding diagnostics.
var exitCode int

var rootCmd = &cobra.Command{
	Use:           "lintd",
	Short:         "Check source trees for note comments and style violations",
	Long:          "lintd checks files for configured note comments and style violations,\nresolving the governing rc file per directory.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Log in JSON format")
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	rootCmd.Version = fmt.Sprintf("%s (%s)", Version, Commit)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lintd: %v\n", err)
		return 2
	}
	return exitCode
}

// runLogger builds the logger from the persistent logging flags.
func runLogger() *slog.Logger {
	return logging.New(logging.Config{
		Level: logging.ParseLevel(logLevel),
		JSON:  logJSON,
	})
}

// parseYesNo parses the y|n syntax the config toggles use.
func parseYesNo(flag, value string) (bool, error) {
	switch strings.ToLower(value) {
	case "y", "yes", "true", "1":
		return true, nil
	case "n", "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid value %q for --%s: want y or n", value, flag)
	}
}
