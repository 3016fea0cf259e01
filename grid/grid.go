package grid

import (
	"fmt"
	"strings"
)

// Grid is a rectangular, immutable text grid stored row-major.
// Row r of the input is Lines[r]; cells are addressed by Coord{r, c}.
type Grid struct {
	lines  [][]rune
	bounds Bounds
}

// Parse builds a Grid from equal-length lines.
// Returns ErrEmptyGrid if there are no rows or the first row is empty, and
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func Parse(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows := make([][]rune, len(lines))
	width := len([]rune(lines[0]))
	for r, line := range lines {
		rows[r] = []rune(line)
		if len(rows[r]) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(rows[r]), width)
		}
	}
	return &Grid{lines: rows, bounds: NewBounds(len(rows), width)}, nil
}

// Bounds returns the rectangle covered by the grid.
func (g *Grid) Bounds() Bounds { return g.bounds }

// At returns the cell at c, or false when c is outside the grid.
func (g *Grid) At(c Coord) (rune, bool) {
	if !g.bounds.Contains(c) {
		return 0, false
	}
	return g.lines[c.Row][c.Col], true
}

// Find returns the first coordinate (row-major) holding marker.
// A missing marker is malformed input and yields ErrMarkerNotFound.
func (g *Grid) Find(marker rune) (Coord, error) {
	for r, row := range g.lines {
		for c, v := range row {
			if v == marker {
				return Coord{Row: r, Col: c}, nil
			}
		}
	}
	return Coord{}, fmt.Errorf("%w: %q", ErrMarkerNotFound, marker)
}

// FindAll returns every coordinate holding any of markers.
func (g *Grid) FindAll(markers ...rune) Positions {
	want := make(map[rune]bool, len(markers))
	for _, m := range markers {
		want[m] = true
	}
	var found []Coord
	for r, row := range g.lines {
		for c, v := range row {
			if want[v] {
				found = append(found, Coord{Row: r, Col: c})
			}
		}
	}
	return NewPositions(found...)
}

// Digits interprets every cell as a decimal digit and returns the weights
// row-major. Returns ErrNotDigit for any other rune.
func (g *Grid) Digits() ([][]int, error) {
	out := make([][]int, len(g.lines))
	for r, row := range g.lines {
		out[r] = make([]int, len(row))
		for c, v := range row {
			if v < '0' || v > '9' {
				return nil, fmt.Errorf("%w: %q at %v", ErrNotDigit, v, Coord{Row: r, Col: c})
			}
			out[r][c] = int(v - '0')
		}
	}
	return out, nil
}

// Render draws the grid with overlay runes replacing the underlying cells.
// Overlay coordinates outside the grid are ignored.
func (g *Grid) Render(overlay map[Coord]rune) string {
	var sb strings.Builder
	for r, row := range g.lines {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, v := range row {
			if o, ok := overlay[Coord{Row: r, Col: c}]; ok {
				v = o
			}
			sb.WriteRune(v)
		}
	}
	return sb.String()
}
