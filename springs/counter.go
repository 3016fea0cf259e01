package springs

import (
	"go.uber.org/zap"
)

// memoKey identifies a subproblem: pattern offset and index of the next run.
type memoKey struct {
	pos, run int
}

// Counter counts arrangements. A Counter is not safe for concurrent use;
// each Count call owns its memo table for the duration of the call.
type Counter struct {
	logger *zap.Logger

	rec  Record
	memo map[memoKey]int64
	// trailing[i] is true when pattern[i:] contains a '#'.
	trailing []bool
}

// NewCounter returns a Counter.
func NewCounter(opts ...Option) *Counter {
	c := &Counter{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Count returns the number of assignments of the unknown springs in rec
// that produce exactly rec.Runs.
func (c *Counter) Count(rec Record) int64 {
	c.rec = rec
	c.memo = make(map[memoKey]int64, len(rec.Pattern)*(len(rec.Runs)+1))
	c.trailing = make([]bool, len(rec.Pattern)+1)
	for i := len(rec.Pattern) - 1; i >= 0; i-- {
		c.trailing[i] = c.trailing[i+1] || rec.Pattern[i] == damaged
	}

	n := c.count(0, 0)
	c.logger.Debug("record counted",
		zap.Stringer("record", rec),
		zap.Int64("arrangements", n),
		zap.Int("memo", len(c.memo)),
	)
	c.memo, c.trailing = nil, nil
	return n
}

// Sum counts every record, optionally unfolded, and adds the results.
func (c *Counter) Sum(recs []Record, unfold int) int64 {
	var total int64
	for _, r := range recs {
		total += c.Count(r.Unfold(unfold))
	}
	return total
}

func (c *Counter) count(pos, run int) int64 {
	p := c.rec.Pattern
	if pos >= len(p) {
		pos = len(p)
	}
	if run == len(c.rec.Runs) {
		if c.trailing[pos] {
			return 0
		}
		return 1
	}
	if pos == len(p) {
		return 0
	}

	key := memoKey{pos, run}
	if n, ok := c.memo[key]; ok {
		return n
	}

	var n int64
	ch := p[pos]
	if ch == operational || ch == unknown {
		n += c.count(pos+1, run)
	}
	if ch == damaged || ch == unknown {
		if c.fits(pos, c.rec.Runs[run]) {
			n += c.count(pos+c.rec.Runs[run]+1, run+1)
		}
	}

	c.memo[key] = n
	return n
}

// fits reports whether a damaged run of length size can start at pos:
// no operational spring inside it and no damaged spring right after it.
func (c *Counter) fits(pos, size int) bool {
	p := c.rec.Pattern
	end := pos + size
	if end > len(p) {
		return false
	}
	for i := pos; i < end; i++ {
		if p[i] == operational {
			return false
		}
	}
	return end == len(p) || p[end] != damaged
}
