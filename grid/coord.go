package grid

import "fmt"

// Coord is an immutable (row, column) pair. Equality is structural and
// ordering is lexicographic by (Row, Col).
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Less reports whether c sorts before o in (row, col) order.
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Compare returns -1, 0 or +1 following (row, col) order.
func (c Coord) Compare(o Coord) int {
	switch {
	case c.Less(o):
		return -1
	case o.Less(c):
		return 1
	}
	return 0
}

// Add returns the component-wise sum.
func (c Coord) Add(o Coord) Coord {
	return Coord{Row: c.Row + o.Row, Col: c.Col + o.Col}
}

// Move returns the coordinate distance steps away in direction d.
func (c Coord) Move(d Direction, distance int) Coord {
	off := d.Offset()
	return Coord{Row: c.Row + off.Row*distance, Col: c.Col + off.Col*distance}
}

// Manhattan returns the taxicab distance between c and o.
func (c Coord) Manhattan(o Coord) int {
	return Abs(c.Row-o.Row) + Abs(c.Col-o.Col)
}

// orthogonal and diagonal hold neighbor offsets in canonical order.
var (
	orthogonal = [4]Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonal   = [4]Coord{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// Neighbors returns the 4 (or 8 with includeDiagonals) coordinates adjacent
// to c, in the order up, down, left, right, up-left, up-right, down-left,
// down-right. No bounds are applied.
func Neighbors(c Coord, includeDiagonals bool) []Coord {
	n := 4
	if includeDiagonals {
		n = 8
	}
	out := make([]Coord, 0, n)
	for _, off := range orthogonal {
		out = append(out, c.Add(off))
	}
	if includeDiagonals {
		for _, off := range diagonal {
			out = append(out, c.Add(off))
		}
	}
	return out
}

// Bounds is a rectangle with inclusive minimum and exclusive maximum rows
// and columns. It is never mutated after construction.
type Bounds struct {
	MinRow, MinCol int
	MaxRow, MaxCol int
}

// NewBounds returns the bounds of a rows×cols grid anchored at (0,0).
func NewBounds(rows, cols int) Bounds {
	return Bounds{MaxRow: rows, MaxCol: cols}
}

// Contains reports whether c lies within b.
// Complexity: O(1).
func (b Bounds) Contains(c Coord) bool {
	return b.MinRow <= c.Row && c.Row < b.MaxRow && b.MinCol <= c.Col && c.Col < b.MaxCol
}

// Rows returns the number of rows spanned by b.
func (b Bounds) Rows() int { return b.MaxRow - b.MinRow }

// Cols returns the number of columns spanned by b.
func (b Bounds) Cols() int { return b.MaxCol - b.MinCol }

// Neighbors returns the neighbors of c that lie within b, using the
// canonical neighbor order for the given connectivity.
func (b Bounds) Neighbors(c Coord, conn Connectivity) []Coord {
	all := Neighbors(c, conn == Conn8)
	out := all[:0]
	for _, n := range all {
		if b.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}
