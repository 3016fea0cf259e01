package grid

import (
	"fmt"
	"strings"
)

var (
	directionNames  = [...]string{Up: "up", Down: "down", Left: "left", Right: "right"}
	directionGlyphs = [...]rune{Up: '^', Down: 'v', Left: '<', Right: '>'}
)

// String returns the lower-case name of d.
func (d Direction) String() string {
	if d < Up || d > Right {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Glyph returns the arrow used when rendering d on a grid.
func (d Direction) Glyph() rune {
	return directionGlyphs[d]
}

// Offset returns the unit coordinate delta of d.
func (d Direction) Offset() Coord {
	return orthogonal[d]
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Axis reports whether d is vertical or horizontal.
func (d Direction) Axis() Axis {
	if d == Up || d == Down {
		return Vertical
	}
	return Horizontal
}

// ParseDirection accepts an initial (u, d, l, r in either case) or a full
// direction name.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "u", "up", "n", "north":
		return Up, nil
	case "d", "down", "s", "south":
		return Down, nil
	case "l", "left", "w", "west":
		return Left, nil
	case "r", "right", "e", "east":
		return Right, nil
	}
	return Up, fmt.Errorf("%w: %q", ErrBadDirection, s)
}
