// Package walk defines the iteration protocol for state-space walks and
// the transitions used by the grid puzzles.
//
// A StepFunc maps one state to the next. It must be pure: identical input
// states always yield identical output states, and no shared mutable
// context is touched. Everything a transition needs (blocked cells, grid
// bounds, tilt direction) is captured by the closure when it is built.
// Determinism is the precondition that makes cycle detection sound.
//
// Transitions provided:
//
//   - Spread: every token moves one step to each open orthogonal neighbour
//     (a superposition of walkers).
//   - Tilt: every token rolls in a cardinal direction until blocked.
//   - SpinCycle: Tilt up, left, down, then right.
//
// Load reduces a tilted platform to its support-beam load.
package walk
