package dijkstra

import (
	"container/heap"
	"fmt"

	"go.uber.org/zap"
)

// Edge is a transition to To that costs Cost.
type Edge[S comparable] struct {
	To   S
	Cost int64
}

// Shortest finds the cheapest route from start to any state accepted by
// goal. expand lists the outgoing edges of a state; it is called at most
// once per settled state.
//
// Returns ErrNilExpand or ErrNilGoal for missing callbacks, ErrNegativeWeight if an
// edge with negative cost is produced, ErrNoPath when no goal is reachable,
// ErrExpansionBudget when the budget runs out, or the context error on
// cancellation.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Shortest[S comparable](start S, expand func(S) []Edge[S], goal func(S) bool, opts ...Option) (*Result[S], error) {
	if expand == nil {
		return nil, ErrNilExpand
	}
	if goal == nil {
		return nil, ErrNilGoal
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	r := &runner[S]{
		options: cfg,
		expand:  expand,
		goal:    goal,
		best:    make(map[S]int64),
		settled: make(map[S]bool),
	}
	if cfg.ReturnPath {
		r.prev = make(map[S]S)
	}
	r.init(start)

	res, err := r.process()
	if err != nil {
		cfg.Logger.Debug("search stopped", zap.Int("expanded", r.expanded), zap.Error(err))
		return nil, err
	}
	cfg.Logger.Debug("search finished", zap.Int64("cost", res.Cost), zap.Int("expanded", res.Expanded))
	return res, nil
}

// runner holds the mutable state for a single search.
type runner[S comparable] struct {
	options  Options
	expand   func(S) []Edge[S]
	goal     func(S) bool
	best     map[S]int64 // state → cheapest cost seen so far
	settled  map[S]bool  // states whose cost is final
	prev     map[S]S     // state → predecessor, only with ReturnPath
	pq       nodePQ[S]
	seq      uint64
	expanded int
}

// init records the start at cost zero and pushes it onto the heap.
func (r *runner[S]) init(start S) {
	r.best[start] = 0
	heap.Init(&r.pq)
	r.push(start, 0)
}

func (r *runner[S]) push(s S, cost int64) {
	heap.Push(&r.pq, &nodeItem[S]{state: s, cost: cost, seq: r.seq})
	r.seq++
}

// process pops states in cost order until a goal is settled.
func (r *runner[S]) process() (*Result[S], error) {
	for r.pq.Len() > 0 {
		select {
		case <-r.options.Ctx.Done():
			return nil, r.options.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem[S])
		u := item.state
		if r.settled[u] {
			continue // stale entry
		}
		r.settled[u] = true

		if r.goal(u) {
			return r.result(u, item.cost), nil
		}
		if r.options.ExpansionBudget > 0 && r.expanded >= r.options.ExpansionBudget {
			return nil, fmt.Errorf("%w: %d expansions", ErrExpansionBudget, r.expanded)
		}
		r.expanded++
		if err := r.relax(u, item.cost); err != nil {
			return nil, err
		}
	}
	return nil, ErrNoPath
}

// relax pushes every successor of u whose cost strictly improves.
func (r *runner[S]) relax(u S, cost int64) error {
	for _, e := range r.expand(u) {
		if e.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeWeight, u, e.To, e.Cost)
		}
		if r.settled[e.To] {
			continue
		}
		next := cost + e.Cost
		if prior, ok := r.best[e.To]; ok && next >= prior {
			continue
		}
		r.best[e.To] = next
		if r.prev != nil {
			r.prev[e.To] = u
		}
		r.push(e.To, next)
	}
	return nil
}

func (r *runner[S]) result(goal S, cost int64) *Result[S] {
	res := &Result[S]{Cost: cost, State: goal, Expanded: r.expanded}
	if r.prev == nil {
		return res
	}
	path := []S{goal}
	for at := goal; ; {
		p, ok := r.prev[at]
		if !ok {
			break
		}
		path = append(path, p)
		at = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	res.Path = path
	return res
}

// nodeItem is a state and its tentative cost. seq breaks ties by
// insertion order.
type nodeItem[S comparable] struct {
	state S
	cost  int64
	seq   uint64
}

// nodePQ is a min-heap of *nodeItem ordered by cost, then seq.
type nodePQ[S comparable] []*nodeItem[S]

func (pq nodePQ[S]) Len() int { return len(pq) }

func (pq nodePQ[S]) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[S]) Push(x any) { *pq = append(*pq, x.(*nodeItem[S])) }

func (pq *nodePQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
