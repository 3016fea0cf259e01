// Package bfs implements breadth-first search on rectangular grids.
//
// What:
//
//   - BFS explores cells in order of increasing move count from a start
//     cell, within grid.Bounds, honouring a passability predicate.
//   - Results carry visit Order, Depth and Parent maps for path
//     reconstruction (PathTo).
//   - CountWithParity turns depths into the number of cells a walker
//     superposition occupies after an exact number of steps, which is the
//     closed-form cross-check of the walk.Spread transition.
//
// Options:
//
//   - WithMaxDepth, WithPassable / WithBlocked, WithConnectivity,
//     WithContext, and hooks WithOnEnqueue / WithOnVisit.
//
// Complexity:
//
//   - Time:  O(W×H×d)  (d = 4 or 8 neighbors)
//   - Space: O(W×H)
package bfs
