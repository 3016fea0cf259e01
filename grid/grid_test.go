package grid_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/grid"
)

//----------------------------------------------------------------------------//
// Bounds and Neighbors
//----------------------------------------------------------------------------//

// TestBoundsContains checks inclusive-min / exclusive-max semantics.
func TestBoundsContains(t *testing.T) {
	b := grid.Bounds{MinRow: -1, MinCol: 2, MaxRow: 3, MaxCol: 5}

	valid := []grid.Coord{{-1, 2}, {2, 4}, {0, 3}}
	for _, c := range valid {
		assert.Truef(t, b.Contains(c), "Contains(%v)", c)
	}
	invalid := []grid.Coord{{-2, 2}, {3, 2}, {0, 1}, {0, 5}}
	for _, c := range invalid {
		assert.Falsef(t, b.Contains(c), "Contains(%v)", c)
	}
	assert.Equal(t, 4, b.Rows())
	assert.Equal(t, 3, b.Cols())
}

// TestNeighbors_Order verifies the fixed up, down, left, right, diagonals order.
func TestNeighbors_Order(t *testing.T) {
	c := grid.Coord{Row: 5, Col: 5}

	want4 := []grid.Coord{{4, 5}, {6, 5}, {5, 4}, {5, 6}}
	if diff := cmp.Diff(want4, grid.Neighbors(c, false)); diff != "" {
		t.Errorf("Neighbors(4) mismatch (-want +got):\n%s", diff)
	}

	want8 := append(want4, grid.Coord{4, 4}, grid.Coord{4, 6}, grid.Coord{6, 4}, grid.Coord{6, 6})
	if diff := cmp.Diff(want8, grid.Neighbors(c, true)); diff != "" {
		t.Errorf("Neighbors(8) mismatch (-want +got):\n%s", diff)
	}
}

// TestBoundsNeighbors_Corner drops out-of-bounds neighbors at a corner.
func TestBoundsNeighbors_Corner(t *testing.T) {
	b := grid.NewBounds(3, 3)
	got := b.Neighbors(grid.Coord{}, grid.Conn4)
	assert.Equal(t, []grid.Coord{{1, 0}, {0, 1}}, got)

	got = b.Neighbors(grid.Coord{}, grid.Conn8)
	assert.Equal(t, []grid.Coord{{1, 0}, {0, 1}, {1, 1}}, got)
}

// TestCoordOrdering checks lexicographic ordering and Manhattan distance.
func TestCoordOrdering(t *testing.T) {
	a, b := grid.Coord{Row: 1, Col: 9}, grid.Coord{Row: 2, Col: 0}
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, 10, a.Manhattan(b))
	assert.Equal(t, grid.Coord{Row: -2, Col: 9}, a.Move(grid.Up, 3))
}

//----------------------------------------------------------------------------//
// Direction
//----------------------------------------------------------------------------//

func TestDirection(t *testing.T) {
	cases := []struct {
		d       grid.Direction
		reverse grid.Direction
		axis    grid.Axis
		glyph   rune
	}{
		{grid.Up, grid.Down, grid.Vertical, '^'},
		{grid.Down, grid.Up, grid.Vertical, 'v'},
		{grid.Left, grid.Right, grid.Horizontal, '<'},
		{grid.Right, grid.Left, grid.Horizontal, '>'},
	}
	for _, tc := range cases {
		t.Run(tc.d.String(), func(t *testing.T) {
			assert.Equal(t, tc.reverse, tc.d.Reverse())
			assert.Equal(t, tc.axis, tc.d.Axis())
			assert.Equal(t, tc.glyph, tc.d.Glyph())
			assert.Equal(t, grid.Coord{}, tc.d.Offset().Add(tc.reverse.Offset()))
		})
	}
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]grid.Direction{"U": grid.Up, "d": grid.Down, "left": grid.Left, "R": grid.Right} {
		got, err := grid.ParseDirection(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	_, err := grid.ParseDirection("x")
	assert.ErrorIs(t, err, grid.ErrBadDirection)
}

//----------------------------------------------------------------------------//
// Positions
//----------------------------------------------------------------------------//

// TestPositions_Canonical verifies that construction order does not matter.
func TestPositions_Canonical(t *testing.T) {
	p1 := grid.NewPositions(grid.Coord{2, 1}, grid.Coord{0, 3}, grid.Coord{2, 1})
	p2 := grid.NewPositions(grid.Coord{0, 3}, grid.Coord{2, 1})

	assert.True(t, p1.Equal(p2))
	assert.Equal(t, p1.Key(), p2.Key())
	assert.Equal(t, 2, p1.Len())
	assert.Equal(t, []grid.Coord{{0, 3}, {2, 1}}, p1.Slice())
	assert.True(t, p1.Contains(grid.Coord{2, 1}))
	assert.False(t, p1.Contains(grid.Coord{1, 2}))

	p3 := grid.NewPositions(grid.Coord{0, 31})
	assert.NotEqual(t, p3.Key(), grid.NewPositions(grid.Coord{0, 3}, grid.Coord{1, 0}).Key())
}

//----------------------------------------------------------------------------//
// Grid parsing
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that Parse rejects empty or ragged inputs.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		err   error
	}{
		{"EmptyRows", nil, grid.ErrEmptyGrid},
		{"EmptyCols", []string{""}, grid.ErrEmptyGrid},
		{"NonRectangular", []string{"ab", "c"}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse(tc.lines)
			if !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.lines, err, tc.err)
			}
		})
	}
}

func TestGrid_FindAndDigits(t *testing.T) {
	g, err := grid.Parse([]string{"..#", ".S.", "#.."})
	require.NoError(t, err)

	start, err := g.Find('S')
	require.NoError(t, err)
	assert.Equal(t, grid.Coord{Row: 1, Col: 1}, start)

	_, err = g.Find('E')
	assert.ErrorIs(t, err, grid.ErrMarkerNotFound)

	rocks := g.FindAll('#')
	assert.Equal(t, []grid.Coord{{0, 2}, {2, 0}}, rocks.Slice())

	_, err = g.Digits()
	assert.ErrorIs(t, err, grid.ErrNotDigit)

	w, err := grid.Parse([]string{"12", "90"})
	require.NoError(t, err)
	digits, err := w.Digits()
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {9, 0}}, digits)

	r, ok := g.At(grid.Coord{Row: 0, Col: 2})
	assert.True(t, ok)
	assert.Equal(t, '#', r)
	_, ok = g.At(grid.Coord{Row: 3, Col: 0})
	assert.False(t, ok)

	assert.Equal(t, "..#\n.O.\n#..", g.Render(map[grid.Coord]rune{start: 'O', {Row: 9, Col: 9}: 'X'}))
}
