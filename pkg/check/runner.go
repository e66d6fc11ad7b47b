package check

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/getlintd/lintd/pkg/logging"
	"github.com/getlintd/lintd/pkg/resolve"
	"github.com/getlintd/lintd/pkg/target"
)

// Runner drives checking: it expands submitted targets into files, resolves
// configuration per file, and scans the files with up to the configured
// number of workers.
type Runner struct {
	run *resolve.Run
	log *slog.Logger
}

// NewRunner creates a Runner over the given resolution run. A nil logger
// disables logging.
func NewRunner(run *resolve.Run, log *slog.Logger) *Runner {
	if log == nil {
		log = logging.Nop()
	}
	return &Runner{run: run, log: log}
}

// Check expands each path, resolves configuration for every resulting file
// independently, and scans it. Diagnostics come back grouped by file in
// expansion order regardless of worker interleaving. Directory-expansion
// filters and the worker count come from the run-wide configuration;
// everything the scanner uses comes from each file's own effective
// configuration.
func (r *Runner) Check(ctx context.Context, paths []string) ([]Diagnostic, error) {
	runCfg, err := r.run.EffectiveBase()
	if err != nil {
		return nil, err
	}

	var files []target.Target
	for _, path := range paths {
		tgt, err := target.New(path)
		if err != nil {
			return nil, err
		}
		expanded, err := target.Expand(tgt, runCfg.Options.Ignore, runCfg.Options.IgnorePatterns)
		if err != nil {
			return nil, err
		}
		files = append(files, expanded...)
	}
	r.log.Debug("targets expanded", "run", r.run.ID(), "files", len(files))

	jobs := runCfg.Options.Jobs
	if jobs < 1 {
		jobs = 1
	}

	results := make([][]Diagnostic, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			eff, err := r.run.Resolve(f)
			if err != nil {
				return err
			}
			diags, err := ScanFile(f.Path, eff.Options)
			if err != nil {
				return err
			}
			results[i] = diags
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Diagnostic
	for _, diags := range results {
		all = append(all, diags...)
	}
	return all, nil
}
