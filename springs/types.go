package springs

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// ErrBadRecord indicates a malformed condition record line.
var ErrBadRecord = errors.New("springs: malformed record")

const (
	operational = '.'
	damaged     = '#'
	unknown     = '?'
)

// Record is one condition record: the spring pattern and the run lengths.
type Record struct {
	Pattern string
	Runs    []int
}

// ParseRecord parses lines like "???.### 1,1,3".
func ParseRecord(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Record{}, fmt.Errorf("%w: %q: want pattern and runs", ErrBadRecord, line)
	}
	pattern := fields[0]
	for i, r := range pattern {
		if r != operational && r != damaged && r != unknown {
			return Record{}, fmt.Errorf("%w: %q: unexpected %q at %d", ErrBadRecord, line, r, i)
		}
	}
	parts := strings.Split(fields[1], ",")
	runs := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			return Record{}, fmt.Errorf("%w: %q: bad run %q", ErrBadRecord, line, p)
		}
		runs = append(runs, n)
	}

	return Record{Pattern: pattern, Runs: runs}, nil
}

// ParseRecords parses every non-blank line.
func ParseRecords(lines []string) ([]Record, error) {
	out := make([]Record, 0, len(lines))
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		rec, err := ParseRecord(l)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// Unfold repeats the record times over: patterns joined by '?', runs
// concatenated. times <= 1 returns a copy of r.
func (r Record) Unfold(times int) Record {
	if times <= 1 {
		return Record{Pattern: r.Pattern, Runs: slices.Clone(r.Runs)}
	}
	patterns := make([]string, times)
	runs := make([]int, 0, len(r.Runs)*times)
	for i := range times {
		patterns[i] = r.Pattern
		runs = append(runs, r.Runs...)
	}

	return Record{Pattern: strings.Join(patterns, string(unknown)), Runs: runs}
}

// String renders the record in its input form.
func (r Record) String() string {
	parts := make([]string, len(r.Runs))
	for i, n := range r.Runs {
		parts[i] = strconv.Itoa(n)
	}
	return r.Pattern + " " + strings.Join(parts, ",")
}

// Option configures a Counter.
type Option func(*Counter)

// WithLogger attaches a logger; each Count is logged at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(c *Counter) {
		if l != nil {
			c.logger = l
		}
	}
}
