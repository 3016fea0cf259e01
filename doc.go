// Package gridsearch is a toolkit for searching grids and state spaces:
// walking discrete transitions, fast-forwarding them through detected
// loops, and finding cheapest routes whose node identity carries more
// than a position.
//
// 🚀 What's inside?
//
//	grid/      Coord, Direction, Bounds, Positions and rune grids
//	walk/      generic state walkers plus spread, tilt and spin-cycle transitions
//	cycle/     history-based loop detection and projection of far-future states
//	dijkstra/  generic Dijkstra with compound (position, heading, run) states
//	bfs/       breadth-first grid reachability and exact-step parity counts
//	springs/   memoised counting of damaged-spring arrangements
//	pulse/     flip-flop / conjunction module network simulation
//
// The gridsearch command (cmd/gridsearch) wires these packages to input
// files, a YAML config and structured logging.
//
// ✨ Conventions
//
//   - Functional options (WithContext, WithLogger, ...) with invalid
//     values reported as ErrOptionViolation at call time.
//   - Sentinel errors per package, matched with errors.Is.
//   - Deterministic results: ties are broken by insertion order.
package gridsearch
