package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridsearch/internal/config"
	"github.com/katalvlaran/gridsearch/internal/input"
	"github.com/katalvlaran/gridsearch/internal/logging"
)

var (
	// Global flags
	useExamples bool
	verbosity   int
	configPath  string
	inputDir    string

	// Shared state, set up by PersistentPreRunE.
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gridsearch",
	Short: "Grid walking, cycle fast-forwarding and constrained shortest paths",
	Long: `gridsearch runs the puzzle solvers over input files named
<day><exercise>-input[suffix].txt (or -examples with --examples).

Every subcommand accepts an optional positional file suffix.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("dir") {
			cfg.InputDir = inputDir
		}

		logger, err = logging.New(cfg.Logging.Level, verbosity)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&useExamples, "examples", "e", false, "use example input files")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "gridsearch.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&inputDir, "dir", ".", "directory holding input files")
}

// puzzleCommand builds a subcommand that loads its input and runs p.
func puzzleCommand(use, short string, p puzzle, variant func() bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [suffix]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			sel := input.Selector{Day: p.day, Exercise: p.exercise, Examples: useExamples}
			if len(args) == 1 {
				sel.Suffix = args[0]
			}
			v := variant != nil && variant()
			if v && p.variantExercise != "" {
				sel.Exercise = p.variantExercise
			}

			lines, err := input.Load(cfg.InputDir, sel)
			if err != nil {
				return err
			}
			answer, err := p.solve(cmd.Context(), env{cfg: cfg, logger: logger.Named(use)}, lines, v)
			if err != nil {
				return fmt.Errorf("%s: %w", use, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}
}
