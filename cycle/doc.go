// Package cycle drives a deterministic walk towards an arbitrary target
// step, short-circuiting with loop detection when the target is far away.
//
// A Detector records every visited state in order together with the index
// at which each state key was first seen. When a freshly computed state is
// already indexed, a loop is declared:
//
//	Start  = index of the first occurrence
//	Length = number of recorded states - Start
//
// From then on the history stops growing and any target T >= Start is
// answered arithmetically as states[Start + (T-Start) mod Length]. Before
// a loop is found, targets are answered by direct lookup, extending the
// simulation only as far as needed. Queries are incremental: asking for a
// larger target continues from the last computed state.
//
// Options:
//
//   - WithStepBudget(n): at most n transitions are ever computed. When the
//     budget runs out before the target is reached and before a loop is
//     found, StateAt returns ErrBudgetExhausted instead of a wrong answer.
//   - WithContext(ctx): cancellation checked before every transition.
//   - WithLogger(l): loop discovery is logged at debug level.
//   - WithOnLoop(fn): hook invoked once when the loop is discovered.
//
// Complexity:
//
//   - Time:  O(min(T, S+L)) transitions, then O(1) per query.
//   - Space: O(S+L) states, where S is the loop start and L its length.
package cycle
