package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/getlintd/lintd/pkg/resolve"
	"github.com/getlintd/lintd/pkg/target"
)

var configCmd = &cobra.Command{
	Use:   "config [target]",
	Short: "Show the effective configuration for a target",
	Long: `Show the configuration that would govern checking the given file or
directory, including which layer (override, rc file, default) supplied each
option. With no target, shows the run-wide base configuration.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		run, err := buildRun(cmd)
		if err != nil {
			return err
		}

		var eff resolve.Effective
		if len(args) == 0 {
			eff, err = run.EffectiveBase()
		} else {
			var tgt target.Target
			tgt, err = target.New(args[0])
			if err != nil {
				return err
			}
			eff, err = run.Resolve(tgt)
		}
		if err != nil {
			return err
		}

		origin := eff.Source.Origin()
		if origin == "" {
			origin = "builtin defaults"
		}
		out := struct {
			Origin     string            `yaml:"origin"`
			Options    optionsDoc        `yaml:"options"`
			Provenance map[string]string `yaml:"provenance"`
		}{
			Origin: origin,
			Options: optionsDoc{
				Notes:          eff.Options.Notes,
				Ignore:         eff.Options.Ignore,
				IgnorePatterns: eff.Options.IgnorePatterns,
				MaxLineLength:  eff.Options.MaxLineLength,
				Jobs:           eff.Options.Jobs,
			},
			Provenance: eff.Provenance,
		}
		data, err := yaml.Marshal(out)
		if err != nil {
			return fmt.Errorf("failed to render configuration: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

type optionsDoc struct {
	Notes          []string `yaml:"notes"`
	Ignore         []string `yaml:"ignore"`
	IgnorePatterns []string `yaml:"ignore-patterns"`
	MaxLineLength  int      `yaml:"max-line-length"`
	Jobs           int      `yaml:"jobs"`
}

func init() {
	registerConfigFlags(configCmd)
	rootCmd.AddCommand(configCmd)
}
