package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/grid"
)

// Search finds the cheapest route across a weight grid. Entering a cell
// costs its weight; the start cell is free. The node identity is the
// compound State, so the same cell may be settled once per (heading, run).
//
// Options used: Start (default (0,0)), Goal (default bottom-right cell),
// Blocked, WithRunRule, WithRequireMinRunAtGoal, plus the generic ones
// accepted by Shortest.
//
// Preconditions and validation (in order):
//  1. weights non-empty (grid.ErrEmptyGrid) and rectangular (grid.ErrNonRectangular).
//  2. no negative weight (ErrNegativeWeight).
//  3. options valid (ErrOptionViolation).
//  4. start inside the grid (ErrStartOutOfBounds).
func Search(weights [][]int, opts ...Option) (*Result[State], error) {
	if len(weights) == 0 || len(weights[0]) == 0 {
		return nil, grid.ErrEmptyGrid
	}
	bounds := grid.NewBounds(len(weights), len(weights[0]))
	for r, row := range weights {
		if len(row) != bounds.Cols() {
			return nil, fmt.Errorf("%w: row %d", grid.ErrNonRectangular, r)
		}
		for c, w := range row {
			if w < 0 {
				return nil, fmt.Errorf("%w: cell %v weight=%d", ErrNegativeWeight, grid.Coord{Row: r, Col: c}, w)
			}
		}
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !bounds.Contains(cfg.Start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, cfg.Start)
	}
	atGoal := cfg.Goal
	if atGoal == nil {
		corner := grid.Coord{Row: bounds.MaxRow - 1, Col: bounds.MaxCol - 1}
		atGoal = func(c grid.Coord) bool { return c == corner }
	}

	rules := NewRules(cfg.Rule)
	expand := func(s State) []Edge[State] {
		dirs := rules.Valid(s)
		out := make([]Edge[State], 0, len(dirs))
		for _, d := range dirs {
			next := s.Next(d)
			if !bounds.Contains(next.Pos) {
				continue
			}
			if cfg.Blocked != nil && cfg.Blocked(next.Pos) {
				continue
			}
			out = append(out, Edge[State]{To: next, Cost: int64(weights[next.Pos.Row][next.Pos.Col])})
		}
		return out
	}
	goal := func(s State) bool {
		if !atGoal(s.Pos) {
			return false
		}
		if cfg.RequireMinRunAtGoal && s.HasHeading && s.Run < cfg.Rule.Min {
			return false
		}
		return true
	}

	return Shortest(State{Pos: cfg.Start}, expand, goal, opts...)
}
