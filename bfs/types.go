package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridsearch/grid"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartOutOfBounds is returned when the start lies outside the bounds.
	ErrStartOutOfBounds = errors.New("bfs: start is outside the grid")

	// ErrStartBlocked is returned when the start cell itself is not passable.
	ErrStartBlocked = errors.New("bfs: start cell is not passable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is enqueued, before visiting.
	// Receives the cell and its depth from the start.
	OnEnqueue func(c grid.Coord, depth int)

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(c grid.Coord, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// Passable reports whether a cell may be entered.
	Passable func(c grid.Coord) bool

	// Conn selects 4- or 8-neighborhoods.
	Conn grid.Connectivity

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - every cell passable
//   - Conn4 neighborhoods
//   - no-op hooks (OnEnqueue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(grid.Coord, int) {},
		OnVisit:   func(grid.Coord, int) error { return nil },
		MaxDepth:  0,
		Passable:  func(grid.Coord) bool { return true },
		Conn:      grid.Conn4,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c grid.Coord, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(c grid.Coord, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithPassable restricts the cells that may be entered.
func WithPassable(fn func(c grid.Coord) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.Passable = fn
		}
	}
}

// WithBlocked is WithPassable for a fixed set of walls.
func WithBlocked(walls grid.Positions) Option {
	set := walls.Set()
	return WithPassable(func(c grid.Coord) bool {
		_, blocked := set[c]
		return !blocked
	})
}

// WithConnectivity selects Conn4 or Conn8 neighborhoods.
func WithConnectivity(conn grid.Connectivity) Option {
	return func(o *BFSOptions) {
		o.Conn = conn
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: cells visited, in visit sequence.
//   - Depth: map from cell to its distance (in moves) from the start.
//   - Parent: map from cell to its predecessor in the BFS tree.
type BFSResult struct {
	Order  []grid.Coord
	Depth  map[grid.Coord]int
	Parent map[grid.Coord]grid.Coord
}

// PathTo reconstructs the path from the start cell to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest grid.Coord) ([]grid.Coord, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	// build reversed path
	path := []grid.Coord{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// CountWithParity counts the cells reachable in exactly steps moves when
// moves may be undone: those at depth <= steps with the same parity.
// On bipartite 4-connected grids this equals the size of the walker
// superposition after steps moves.
func (r *BFSResult) CountWithParity(steps int) int {
	n := 0
	for _, d := range r.Depth {
		if d <= steps && d%2 == steps%2 {
			n++
		}
	}
	return n
}
