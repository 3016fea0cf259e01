package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridsearch/internal/config"
	"github.com/katalvlaran/gridsearch/internal/input"
)

// batchResult is one finished job.
type batchResult struct {
	job     config.Job
	answer  int64
	elapsed time.Duration
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run the jobs listed in the config file concurrently",
	Long: `batch runs every entry of batch.jobs from the config file, at most
batch.parallel at a time, and prints the answers in job order. The first
failing job cancels the rest.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		jobs := cfg.Batch.Jobs
		if len(jobs) == 0 {
			return fmt.Errorf("batch: no jobs configured in %s", configPath)
		}

		// Resolve every job before starting any, so a bad entry never
		// leaves earlier jobs running.
		resolved := make([]puzzle, len(jobs))
		for i, job := range jobs {
			p, err := lookupPuzzle(job.Command)
			if err != nil {
				return fmt.Errorf("batch: job %d: %w", i, err)
			}
			resolved[i] = p
		}

		results := make([]batchResult, len(jobs))
		g, ctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(cfg.Batch.Parallel)
		for i, job := range jobs {
			p := resolved[i]
			g.Go(func() error {
				sel := input.Selector{Day: p.day, Exercise: p.exercise, Examples: job.Examples, Suffix: job.Suffix}
				if job.Variant && p.variantExercise != "" {
					sel.Exercise = p.variantExercise
				}
				lines, err := input.Load(cfg.InputDir, sel)
				if err != nil {
					return fmt.Errorf("batch: %s: %w", jobName(job), err)
				}

				started := time.Now()
				log := logger.Named(job.Command).With(zap.String("job", jobName(job)))
				answer, err := p.solve(ctx, env{cfg: cfg, logger: log}, lines, job.Variant)
				if err != nil {
					return fmt.Errorf("batch: %s: %w", jobName(job), err)
				}
				results[i] = batchResult{job: job, answer: answer, elapsed: time.Since(started)}
				log.Debug("job finished", zap.Int64("answer", answer), zap.Duration("elapsed", results[i].elapsed))
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		for _, r := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", jobName(r.job), r.answer)
		}
		return nil
	},
}

func jobName(j config.Job) string {
	if j.Name != "" {
		return j.Name
	}
	return j.Command
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
