package main

import (
	"github.com/spf13/cobra"
)

var (
	tiltCycles   int
	minRun       int
	maxRun       int
	ultra        bool
	gardenSteps  int
	gardenParity bool
	unfold       int
	presses      int
	untilLow     bool
	pulseTarget  string
)

var tiltCmd = puzzleCommand("tilt", "North load after repeated spin cycles", puzzles["tilt"], nil)

var crucibleCmd = puzzleCommand("crucible", "Least heat loss under run-length rules", puzzles["crucible"], func() bool { return ultra })

var gardenCmd = puzzleCommand("garden", "Plots reachable in an exact number of steps", puzzles["garden"], func() bool { return gardenParity })

var springsCmd = puzzleCommand("springs", "Count damaged-spring arrangements", puzzles["springs"], nil)

var pulseCmd = puzzleCommand("pulse", "Simulate the pulse module network", puzzles["pulse"], func() bool { return untilLow })

// applyFlags copies explicitly set flags over the loaded config.
func applyFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	if f.Changed("cycles") {
		cfg.Tilt.Cycles = tiltCycles
	}
	if f.Changed("min-run") {
		cfg.Crucible.Rule.Min = minRun
	}
	if f.Changed("max-run") {
		cfg.Crucible.Rule.Max = maxRun
	}
	if f.Changed("steps") {
		cfg.Garden.Steps = gardenSteps
	}
	if f.Changed("unfold") {
		cfg.Springs.Unfold = unfold
	}
	if f.Changed("presses") {
		cfg.Pulse.Presses = presses
	}
	if f.Changed("target") {
		cfg.Pulse.Target = pulseTarget
	}
}

func init() {
	tiltCmd.Flags().IntVar(&tiltCycles, "cycles", 1_000_000_000, "number of spin cycles")

	crucibleCmd.Flags().IntVar(&minRun, "min-run", 1, "moves required before turning or stopping")
	crucibleCmd.Flags().IntVar(&maxRun, "max-run", 3, "moves allowed in one direction (0 = unlimited)")
	crucibleCmd.Flags().BoolVar(&ultra, "ultra", false, "use the 4..10 run rule")

	gardenCmd.Flags().IntVar(&gardenSteps, "steps", 64, "exact number of steps")
	gardenCmd.Flags().BoolVar(&gardenParity, "bfs", false, "count by BFS parity instead of stepping walkers")

	springsCmd.Flags().IntVar(&unfold, "unfold", 1, "repeat every record this many times")

	pulseCmd.Flags().IntVar(&presses, "presses", 1000, "button presses to simulate")
	pulseCmd.Flags().BoolVar(&untilLow, "until-low", false, "find the first press delivering a low pulse to --target")
	pulseCmd.Flags().StringVar(&pulseTarget, "target", "rx", "module watched by --until-low")

	for _, c := range []*cobra.Command{tiltCmd, crucibleCmd, gardenCmd, springsCmd, pulseCmd} {
		c.PreRun = func(cmd *cobra.Command, args []string) { applyFlags(cmd) }
		rootCmd.AddCommand(c)
	}
}
