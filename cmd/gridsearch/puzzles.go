package main

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridsearch/bfs"
	"github.com/katalvlaran/gridsearch/cycle"
	"github.com/katalvlaran/gridsearch/dijkstra"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/internal/config"
	"github.com/katalvlaran/gridsearch/pulse"
	"github.com/katalvlaran/gridsearch/springs"
	"github.com/katalvlaran/gridsearch/walk"
)

// env carries what a solver needs besides its input.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
}

// solveFunc computes the answer for one input. variant selects the
// puzzle's second form.
type solveFunc func(ctx context.Context, e env, lines []string, variant bool) (int64, error)

type puzzle struct {
	day             int
	exercise        string
	variantExercise string
	solve           solveFunc
}

// ultraRule replaces the configured run rule for the crucible variant.
var ultraRule = dijkstra.RunRule{Min: 4, Max: 10}

var puzzles = map[string]puzzle{
	"springs":  {day: 12, exercise: "a", variantExercise: "b", solve: solveSprings},
	"tilt":     {day: 14, exercise: "b", solve: solveTilt},
	"crucible": {day: 17, exercise: "a", variantExercise: "b", solve: solveCrucible},
	"pulse":    {day: 20, exercise: "a", variantExercise: "b", solve: solvePulse},
	"garden":   {day: 21, exercise: "a", solve: solveGarden},
}

// solveTilt returns the north load after cfg.Tilt.Cycles spin cycles.
func solveTilt(ctx context.Context, e env, lines []string, _ bool) (int64, error) {
	g, err := grid.Parse(lines)
	if err != nil {
		return 0, err
	}
	bounds := g.Bounds()
	rocks := g.FindAll('O')

	final, err := cycle.FastForward(rocks, walk.SpinCycle(bounds, g.FindAll('#')), grid.Positions.Key, e.cfg.Tilt.Cycles,
		cycle.WithContext(ctx),
		cycle.WithStepBudget(e.cfg.Budgets.Steps),
		cycle.WithLogger(e.logger),
	)
	if err != nil {
		return 0, err
	}
	return int64(walk.Load(bounds, final)), nil
}

// solveCrucible returns the least heat loss from the top-left to the
// bottom-right corner.
func solveCrucible(ctx context.Context, e env, lines []string, variant bool) (int64, error) {
	g, err := grid.Parse(lines)
	if err != nil {
		return 0, err
	}
	weights, err := g.Digits()
	if err != nil {
		return 0, err
	}
	rule := e.cfg.Crucible.Rule
	if variant {
		rule = ultraRule
	}

	res, err := dijkstra.Search(weights,
		dijkstra.WithRunRule(rule.Min, rule.Max),
		dijkstra.WithRequireMinRunAtGoal(),
		dijkstra.WithExpansionBudget(e.cfg.Budgets.Expansions),
		dijkstra.WithContext(ctx),
		dijkstra.WithLogger(e.logger),
	)
	if err != nil {
		return 0, err
	}
	return res.Cost, nil
}

// solveGarden counts the plots reachable in exactly cfg.Garden.Steps
// steps, fast-forwarding through the loop the walkers settle into. The
// variant uses BFS parity instead of stepping the walkers.
func solveGarden(ctx context.Context, e env, lines []string, variant bool) (int64, error) {
	g, err := grid.Parse(lines)
	if err != nil {
		return 0, err
	}
	start, err := g.Find('S')
	if err != nil {
		return 0, err
	}
	rocks := g.FindAll('#')
	steps := e.cfg.Garden.Steps

	if variant {
		res, err := bfs.BFS(g.Bounds(), start, bfs.WithBlocked(rocks), bfs.WithMaxDepth(steps), bfs.WithContext(ctx))
		if err != nil {
			return 0, err
		}
		return int64(res.CountWithParity(steps)), nil
	}

	final, err := cycle.FastForward(grid.NewPositions(start), walk.Spread(g.Bounds(), rocks), grid.Positions.Key, steps,
		cycle.WithContext(ctx),
		cycle.WithStepBudget(e.cfg.Budgets.Steps),
		cycle.WithLogger(e.logger),
	)
	if err != nil {
		return 0, err
	}
	e.logger.Debug("walkers spread", zap.Int("steps", steps), zap.Int("plots", final.Len()))
	return int64(final.Len()), nil
}

// solveSprings sums arrangement counts; the variant unfolds five times.
func solveSprings(_ context.Context, e env, lines []string, variant bool) (int64, error) {
	recs, err := springs.ParseRecords(lines)
	if err != nil {
		return 0, err
	}
	unfold := e.cfg.Springs.Unfold
	if variant {
		unfold = 5
	}
	return springs.NewCounter(springs.WithLogger(e.logger)).Sum(recs, unfold), nil
}

// solvePulse multiplies low and high pulse totals; the variant finds the
// press on which cfg.Pulse.Target first receives a low pulse.
func solvePulse(_ context.Context, e env, lines []string, variant bool) (int64, error) {
	n, err := pulse.Parse(lines, pulse.WithLogger(e.logger))
	if err != nil {
		return 0, err
	}
	if !variant {
		return n.PressN(e.cfg.Pulse.Presses).Product(), nil
	}
	budget := e.cfg.Budgets.Presses
	if budget == 0 {
		budget = math.MaxInt
	}
	return n.PressesUntilLow(e.cfg.Pulse.Target, budget)
}

// lookupPuzzle resolves a batch job command.
func lookupPuzzle(name string) (puzzle, error) {
	p, ok := puzzles[name]
	if !ok {
		return puzzle{}, fmt.Errorf("unknown puzzle %q", name)
	}
	return p, nil
}
