package dijkstra

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridsearch/grid"
)

// Sentinel errors returned by the search.
var (
	// ErrNoPath indicates the queue emptied before any goal state was settled.
	ErrNoPath = errors.New("dijkstra: no path to goal")

	// ErrExpansionBudget indicates the node-expansion budget ran out before
	// a goal state was settled.
	ErrExpansionBudget = errors.New("dijkstra: expansion budget exhausted")

	// ErrNegativeWeight indicates a negative cell weight or edge cost.
	ErrNegativeWeight = errors.New("dijkstra: negative weight encountered")

	// ErrStartOutOfBounds indicates the start coordinate lies outside the grid.
	ErrStartOutOfBounds = errors.New("dijkstra: start is outside the grid")

	// ErrBadRunRule indicates an inconsistent RunRule.
	ErrBadRunRule = errors.New("dijkstra: invalid run rule")

	// ErrNilExpand indicates Shortest was called without an expansion function.
	ErrNilExpand = errors.New("dijkstra: expand function is nil")

	// ErrNilGoal indicates Shortest was called without a goal predicate.
	ErrNilGoal = errors.New("dijkstra: goal predicate is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// State is the compound node identity of a grid search.
// HasHeading is false only for the start state.
type State struct {
	Pos        grid.Coord
	Heading    grid.Direction
	HasHeading bool
	Run        int // consecutive moves made in Heading
}

// String renders the state for debug traces.
func (s State) String() string {
	if !s.HasHeading {
		return fmt.Sprintf("%v start", s.Pos)
	}
	return fmt.Sprintf("%v %c×%d", s.Pos, s.Heading.Glyph(), s.Run)
}

// Next returns the state reached by moving one cell in direction d.
func (s State) Next(d grid.Direction) State {
	run := 1
	if s.HasHeading && s.Heading == d {
		run = s.Run + 1
	}
	return State{Pos: s.Pos.Move(d, 1), Heading: d, HasHeading: true, Run: run}
}

// RunRule bounds how many consecutive moves may share a direction.
// Min is the number of moves required before a turn (or a stop, when the
// goal requires it); Max is the number after which a turn is mandatory,
// 0 meaning unlimited.
type RunRule struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Validate reports ErrBadRunRule for negative bounds or Min > Max.
func (r RunRule) Validate() error {
	if r.Min < 0 || r.Max < 0 {
		return fmt.Errorf("%w: bounds must be non-negative (min=%d, max=%d)", ErrBadRunRule, r.Min, r.Max)
	}
	if r.Max > 0 && r.Min > r.Max {
		return fmt.Errorf("%w: min %d exceeds max %d", ErrBadRunRule, r.Min, r.Max)
	}
	return nil
}

// Result is the outcome of a successful search.
type Result[S comparable] struct {
	Cost     int64 // accumulated cost of the cheapest route
	State    S     // goal state that was settled
	Path     []S   // start…goal, only with WithReturnPath
	Expanded int   // states settled and expanded
}

// Option configures a search.
type Option func(*Options)

// Options holds search parameters.
// Start, Goal, Blocked, Rule and RequireMinRunAtGoal are used by Search only.
type Options struct {
	Ctx             context.Context
	ExpansionBudget int // 0 means unlimited
	ReturnPath      bool
	Logger          *zap.Logger

	Start               grid.Coord
	Goal                func(grid.Coord) bool // nil means the bottom-right cell
	Blocked             func(grid.Coord) bool // cells that may never be entered
	Rule                RunRule
	RequireMinRunAtGoal bool

	err error
}

// DefaultOptions returns Options with a background context, no budget,
// no path reconstruction, start (0,0), bottom-right goal and no run rule.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: zap.NewNop(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithExpansionBudget caps the number of settled expansions.
// n < 0 is recorded as ErrOptionViolation.
func WithExpansionBudget(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: ExpansionBudget cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.ExpansionBudget = n
	}
}

// WithReturnPath enables path reconstruction in the Result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithLogger sets the logger used for search summaries.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Start sets the starting cell of Search.
func Start(c grid.Coord) Option {
	return func(o *Options) {
		o.Start = c
	}
}

// Goal sets the destination predicate of Search.
func Goal(pred func(grid.Coord) bool) Option {
	return func(o *Options) {
		o.Goal = pred
	}
}

// GoalAt is Goal for a single destination cell.
func GoalAt(c grid.Coord) Option {
	return Goal(func(p grid.Coord) bool { return p == c })
}

// Blocked marks cells that may never be entered, whatever their weight.
func Blocked(pred func(grid.Coord) bool) Option {
	return func(o *Options) {
		o.Blocked = pred
	}
}

// WithRunRule sets the minimum and maximum straight-run lengths.
func WithRunRule(min, max int) Option {
	return func(o *Options) {
		r := RunRule{Min: min, Max: max}
		if err := r.Validate(); err != nil {
			o.err = fmt.Errorf("%w: %w", ErrOptionViolation, err)
			return
		}
		o.Rule = r
	}
}

// WithRequireMinRunAtGoal only accepts goal states whose current run has
// reached Rule.Min.
func WithRequireMinRunAtGoal() Option {
	return func(o *Options) {
		o.RequireMinRunAtGoal = true
	}
}
