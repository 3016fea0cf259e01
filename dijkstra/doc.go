// Package dijkstra implements minimum-cost search over compound states.
//
// Shortest runs Dijkstra's algorithm over any comparable state type whose
// successors are produced by a caller-supplied expansion function. Search
// specialises it to grids where the node identity is not only a position
// but (position, heading, run length), which expresses rules such as
// "may not move more than Max steps in the same direction" and "may not
// turn before Min steps".
//
// Direction legality for a state (heading h, run r) under RunRule{Min, Max}:
//
//   - no heading yet: every direction;
//   - r < Min: only h (keep going straight);
//   - otherwise every direction except the reverse of h, and h itself is
//     dropped once r >= Max (Max == 0 means unlimited).
//
// Complexity:
//
//   - Time:  O((V + E) log V)  where V = |states|, E = |transitions|
//   - Space: O(V + E) for the cost map, settled set and lazy heap.
//
// Notes on implementation choices:
//
//   - A successor is only enqueued if its cost strictly improves the best
//     cost recorded for that exact compound state.
//   - "Lazy" decrease-key: duplicates are pushed and stale entries skipped
//     when popped, using the settled set.
//   - Ties in the heap are broken by insertion order, so runs are
//     reproducible.
//   - The first settled goal state is optimal because costs are
//     non-negative.
//
// Outcomes:
//
//   - *Result with the cost and the goal state reached (and the path when
//     WithReturnPath is set).
//   - ErrNoPath when the queue empties: never conflated with a cost.
//   - ErrExpansionBudget when WithExpansionBudget is exceeded.
//
// Example usage:
//
//	res, err := dijkstra.Search(weights,
//	    dijkstra.WithRunRule(4, 10),
//	    dijkstra.WithRequireMinRunAtGoal(),
//	)
//	if errors.Is(err, dijkstra.ErrNoPath) {
//	    ...
//	}
//	fmt.Println(res.Cost)
package dijkstra
