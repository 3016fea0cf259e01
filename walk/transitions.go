package walk

import (
	"slices"

	"github.com/katalvlaran/gridsearch/grid"
)

// Spread returns a transition that replaces every token by all of its
// in-bounds orthogonal neighbours that are not blocked.
func Spread(bounds grid.Bounds, blocked grid.Positions) StepFunc[grid.Positions] {
	walls := blocked.Set()
	return func(s grid.Positions) grid.Positions {
		next := make(map[grid.Coord]struct{}, s.Len()*2)
		for c := range s.All {
			for _, n := range bounds.Neighbors(c, grid.Conn4) {
				if _, ok := walls[n]; ok {
					continue
				}
				next[n] = struct{}{}
			}
		}
		coords := make([]grid.Coord, 0, len(next))
		for c := range next {
			coords = append(coords, c)
		}
		return grid.NewPositions(coords...)
	}
}

// Tilt returns a transition that rolls every token in direction d until it
// meets the edge of bounds, a blocked cell or an already-settled token.
func Tilt(bounds grid.Bounds, blocked grid.Positions, d grid.Direction) StepFunc[grid.Positions] {
	walls := blocked.Set()
	return func(s grid.Positions) grid.Positions {
		return tilt(bounds, walls, d, s)
	}
}

// SpinCycle returns a transition that tilts up, left, down and right in turn.
func SpinCycle(bounds grid.Bounds, blocked grid.Positions) StepFunc[grid.Positions] {
	walls := blocked.Set()
	order := [...]grid.Direction{grid.Up, grid.Left, grid.Down, grid.Right}
	return func(s grid.Positions) grid.Positions {
		for _, d := range order {
			s = tilt(bounds, walls, d, s)
		}
		return s
	}
}

func tilt(bounds grid.Bounds, walls map[grid.Coord]struct{}, d grid.Direction, s grid.Positions) grid.Positions {
	tokens := s.Slice()
	// tokens nearest the destination edge settle first
	slices.SortFunc(tokens, func(a, b grid.Coord) int {
		switch d {
		case grid.Up:
			return a.Row - b.Row
		case grid.Down:
			return b.Row - a.Row
		case grid.Left:
			return a.Col - b.Col
		default:
			return b.Col - a.Col
		}
	})

	settled := make(map[grid.Coord]struct{}, len(tokens))
	out := make([]grid.Coord, 0, len(tokens))
	for _, t := range tokens {
		at := t
		for {
			next := at.Move(d, 1)
			if !bounds.Contains(next) {
				break
			}
			if _, ok := walls[next]; ok {
				break
			}
			if _, ok := settled[next]; ok {
				break
			}
			at = next
		}
		settled[at] = struct{}{}
		out = append(out, at)
	}
	return grid.NewPositions(out...)
}

// Load sums, over every token, its distance from the bottom edge of bounds.
func Load(bounds grid.Bounds, tokens grid.Positions) int {
	total := 0
	for c := range tokens.All {
		total += bounds.MaxRow - c.Row
	}
	return total
}
