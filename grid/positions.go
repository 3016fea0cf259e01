package grid

import (
	"slices"
	"strconv"
)

// Positions is a canonical, immutable tuple of coordinates: sorted in
// (row, col) order with duplicates removed. Two Positions built from the
// same set of coordinates are equal and share the same Key, regardless of
// the order in which the coordinates were supplied.
type Positions struct {
	coords []Coord
	key    string
}

// NewPositions builds a canonical Positions from coords. The input slice
// is not retained.
func NewPositions(coords ...Coord) Positions {
	cs := slices.Clone(coords)
	slices.SortFunc(cs, Coord.Compare)
	cs = slices.Compact(cs)
	return Positions{coords: cs, key: encodeKey(cs)}
}

func encodeKey(cs []Coord) string {
	buf := make([]byte, 0, len(cs)*8)
	for _, c := range cs {
		buf = strconv.AppendInt(buf, int64(c.Row), 10)
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, int64(c.Col), 10)
		buf = append(buf, ';')
	}
	return string(buf)
}

// Key returns a string that is equal for equal Positions and distinct
// otherwise. Use it as a map key for histories and caches.
func (p Positions) Key() string { return p.key }

// Len returns the number of coordinates.
func (p Positions) Len() int { return len(p.coords) }

// Contains reports whether c is one of the positions.
// Complexity: O(log n).
func (p Positions) Contains(c Coord) bool {
	_, ok := slices.BinarySearchFunc(p.coords, c, Coord.Compare)
	return ok
}

// Slice returns a copy of the coordinates in canonical order.
func (p Positions) Slice() []Coord {
	return slices.Clone(p.coords)
}

// All iterates the coordinates in canonical order.
func (p Positions) All(yield func(Coord) bool) {
	for _, c := range p.coords {
		if !yield(c) {
			return
		}
	}
}

// Set returns the positions as a membership set.
func (p Positions) Set() map[Coord]struct{} {
	out := make(map[Coord]struct{}, len(p.coords))
	for _, c := range p.coords {
		out[c] = struct{}{}
	}
	return out
}

// Equal reports whether p and o hold the same coordinates.
func (p Positions) Equal(o Positions) bool {
	return p.key == o.key
}

// String renders the positions for debug traces.
func (p Positions) String() string {
	return "{" + p.key + "}"
}
