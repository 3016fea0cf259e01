package dijkstra

import (
	"slices"

	"github.com/katalvlaran/gridsearch/grid"
)

// ruleKey is the part of a State that determines legal directions.
type ruleKey struct {
	heading    grid.Direction
	hasHeading bool
	run        int
}

// Rules answers which directions a State may move in under a RunRule.
// Answers are memoised per (heading, run); the table is owned by one
// search and never shared between searches.
type Rules struct {
	rule RunRule
	memo map[ruleKey][]grid.Direction
}

// NewRules returns an empty memo table for rule.
func NewRules(rule RunRule) *Rules {
	return &Rules{rule: rule, memo: make(map[ruleKey][]grid.Direction)}
}

// Valid returns the legal directions out of s, in canonical order.
// The returned slice is shared and must not be modified.
func (r *Rules) Valid(s State) []grid.Direction {
	k := ruleKey{heading: s.Heading, hasHeading: s.HasHeading && s.Run > 0, run: s.Run}
	if !k.hasHeading {
		k = ruleKey{}
	}
	if dirs, ok := r.memo[k]; ok {
		return dirs
	}
	dirs := r.compute(k)
	r.memo[k] = dirs
	return dirs
}

// Len returns the number of memoised entries.
func (r *Rules) Len() int { return len(r.memo) }

func (r *Rules) compute(k ruleKey) []grid.Direction {
	if !k.hasHeading {
		return slices.Clone(grid.Directions[:])
	}
	if k.run < r.rule.Min {
		// must keep going
		return []grid.Direction{k.heading}
	}
	out := make([]grid.Direction, 0, len(grid.Directions))
	for _, d := range grid.Directions {
		if d == k.heading.Reverse() {
			continue
		}
		if d == k.heading && r.rule.Max > 0 && k.run >= r.rule.Max {
			continue
		}
		out = append(out, d)
	}
	return out
}

// ValidDirections is the uncached form of Rules.Valid.
func ValidDirections(rule RunRule, s State) []grid.Direction {
	return NewRules(rule).Valid(s)
}
