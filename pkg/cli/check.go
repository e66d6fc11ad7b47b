package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getlintd/lintd/pkg/check"
	"github.com/getlintd/lintd/pkg/rcfile"
	"github.com/getlintd/lintd/pkg/resolve"
)

// Resolution flags, shared by the commands that build a resolve.Run.
var (
	checkUseLocalConfigs  string
	checkUseParentConfigs string
	checkRCFile           string
	checkOverrideFlags    = newOverrideFlags()
)

func newOverrideFlags() map[string]*string {
	m := make(map[string]*string, len(rcfile.Names()))
	for _, name := range rcfile.Names() {
		m[name] = new(string)
	}
	return m
}

var checkCmd = &cobra.Command{
	Use:   "check [targets...]",
	Short: "Check files and directories",
	Long: `Check the given files and directories. Directories are expanded
recursively; each contained file is checked under the configuration resolved
for its own directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		run, err := buildRun(cmd)
		if err != nil {
			return err
		}

		runner := check.NewRunner(run, runLogger())
		diags, err := runner.Check(cmd.Context(), args)
		if err != nil {
			return err
		}
		for _, d := range diags {
			fmt.Fprintln(cmd.OutOrStdout(), d)
		}
		if len(diags) > 0 {
			exitCode = 1
		}
		return nil
	},
}

// buildRun assembles the resolution run from the check/config flags.
func buildRun(cmd *cobra.Command) (*resolve.Run, error) {
	useLocal, err := parseYesNo("use-local-configs", checkUseLocalConfigs)
	if err != nil {
		return nil, err
	}
	useParent, err := parseYesNo("use-parent-configs", checkUseParentConfigs)
	if err != nil {
		return nil, err
	}

	overrides := resolve.Overrides{}
	for name, value := range checkOverrideFlags {
		if cmd.Flags().Changed(name) {
			overrides[name] = *value
		}
	}

	policy := resolve.DefaultPolicy()
	policy.AllowEscape = useParent

	opts := []resolve.RunOption{
		resolve.WithLocalConfigs(useLocal),
		resolve.WithPolicy(policy),
		resolve.WithLogger(runLogger()),
	}
	if checkRCFile != "" {
		opts = append(opts, resolve.WithRCFile(checkRCFile))
	}
	return resolve.NewRun(overrides, opts...)
}

// registerConfigFlags adds the shared resolution flags to a command: the
// local/parent search toggles, --rcfile, and one override flag per
// recognized option.
func registerConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&checkUseLocalConfigs, "use-local-configs", "n", "Resolve rc files per checked directory (y|n)")
	cmd.Flags().StringVar(&checkUseParentConfigs, "use-parent-configs", "y", "Let the rc file search escape the package hierarchy (y|n)")
	cmd.Flags().StringVar(&checkRCFile, "rcfile", "", "Use the named rc file as the base configuration")
	for name, value := range checkOverrideFlags {
		cmd.Flags().StringVar(value, name, "", "Override the "+name+" option")
	}
}

func init() {
	registerConfigFlags(checkCmd)
	rootCmd.AddCommand(checkCmd)
}
