// Package springs counts the arrangements of damaged springs that are
// consistent with a partially known condition record.
//
// A Record pairs a pattern over the alphabet '.', '#' and '?' with the
// lengths of the contiguous runs of '#' it must contain, in order.
// Counter walks the pattern left to right, choosing operational or
// damaged for every '?', and memoises the number of completions for each
// (position, run index) pair, so the unfolded records stay polynomial.
//
// Typical use:
//
//	rec, _ := springs.ParseRecord("?###???????? 3,2,1")
//	n := springs.NewCounter().Count(rec.Unfold(5))
package springs
