package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridsearch/grid"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	at    grid.Coord
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	bounds  grid.Bounds
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[grid.Coord]bool
	res     *BFSResult
}

// BFS runs breadth-first search within bounds starting from start,
// applying any number of functional Options.
// Returns ErrStartOutOfBounds or ErrStartBlocked for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(bounds grid.Bounds, start grid.Coord, opts ...Option) (*BFSResult, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !bounds.Contains(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if !o.Passable(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}

	n := bounds.Rows() * bounds.Cols()
	w := &walker{
		bounds:  bounds,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[grid.Coord]bool, n),
		res: &BFSResult{
			Order:  make([]grid.Coord, 0, n),
			Depth:  make(map[grid.Coord]int, n),
			Parent: make(map[grid.Coord]grid.Coord, n),
		},
	}

	// Seed queue with start cell (no parent)
	w.enqueue(start, 0, nil)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks c visited at depth d, records its parent,
// calls OnEnqueue and adds it to the queue.
func (w *walker) enqueue(c grid.Coord, d int, parent *grid.Coord) {
	w.visited[c] = true
	w.res.Depth[c] = d
	if parent != nil {
		w.res.Parent[c] = *parent
	}
	w.opts.OnEnqueue(c, d)
	w.queue = append(w.queue, queueItem{at: c, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.at)
	if err := w.opts.OnVisit(item.at, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.at, err)
	}
	return nil
}

// enqueueNeighbors applies passability and MaxDepth, and enqueues each
// unseen in-bounds neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.bounds.Neighbors(item.at, w.opts.Conn) {
		if w.visited[nbr] || !w.opts.Passable(nbr) {
			continue
		}
		parent := item.at
		w.enqueue(nbr, nextDepth, &parent)
	}
}
