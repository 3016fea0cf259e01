package bfs_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/bfs"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/walk"
)

const garden = `...........
.....###.#.
.###.##..#.
..#.#...#..
....#.#....
.##..S####.
.##..#...#.
.......##..
.##.#.####.
.##..##.##.
...........`

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	b := grid.NewBounds(2, 2)

	_, err := bfs.BFS(b, grid.Coord{Row: 2})
	assert.ErrorIs(t, err, bfs.ErrStartOutOfBounds)

	_, err = bfs.BFS(b, grid.Coord{}, bfs.WithBlocked(grid.NewPositions(grid.Coord{})))
	assert.ErrorIs(t, err, bfs.ErrStartBlocked)

	_, err = bfs.BFS(b, grid.Coord{}, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_DepthsAndPath checks depths on an open grid and path recovery.
func TestBFS_DepthsAndPath(t *testing.T) {
	b := grid.NewBounds(3, 4)
	res, err := bfs.BFS(b, grid.Coord{})
	require.NoError(t, err)

	assert.Len(t, res.Order, 12)
	assert.Equal(t, grid.Coord{}, res.Order[0])
	for c, d := range res.Depth {
		assert.Equalf(t, c.Manhattan(grid.Coord{}), d, "depth of %v", c)
	}

	path, err := res.PathTo(grid.Coord{Row: 2, Col: 3})
	require.NoError(t, err)
	assert.Len(t, path, 6)
	assert.Equal(t, grid.Coord{}, path[0])
	assert.Equal(t, grid.Coord{Row: 2, Col: 3}, path[5])
}

// TestBFS_WallsAndMaxDepth confines the search.
func TestBFS_WallsAndMaxDepth(t *testing.T) {
	b := grid.NewBounds(1, 5)
	res, err := bfs.BFS(b, grid.Coord{}, bfs.WithBlocked(grid.NewPositions(grid.Coord{Col: 3})))
	require.NoError(t, err)
	assert.Len(t, res.Order, 3)
	_, err = res.PathTo(grid.Coord{Col: 4})
	assert.Error(t, err)

	res, err = bfs.BFS(grid.NewBounds(5, 5), grid.Coord{Row: 2, Col: 2}, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Len(t, res.Order, 5)

	res, err = bfs.BFS(grid.NewBounds(5, 5), grid.Coord{Row: 2, Col: 2}, bfs.WithMaxDepth(1), bfs.WithConnectivity(grid.Conn8))
	require.NoError(t, err)
	assert.Len(t, res.Order, 9)
}

// TestBFS_HooksAndCancel exercises hooks and early termination.
func TestBFS_HooksAndCancel(t *testing.T) {
	var enqueued int
	stop := errors.New("stop")
	_, err := bfs.BFS(grid.NewBounds(3, 3), grid.Coord{},
		bfs.WithOnEnqueue(func(grid.Coord, int) { enqueued++ }),
		bfs.WithOnVisit(func(_ grid.Coord, depth int) error {
			if depth == 2 {
				return stop
			}
			return nil
		}),
	)
	assert.ErrorIs(t, err, stop)
	assert.Positive(t, enqueued)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(grid.NewBounds(3, 3), grid.Coord{}, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestCountWithParity matches the Spread superposition on the garden.
func TestCountWithParity(t *testing.T) {
	g, err := grid.Parse(strings.Split(garden, "\n"))
	require.NoError(t, err)
	start, err := g.Find('S')
	require.NoError(t, err)
	rocks := g.FindAll('#')

	res, err := bfs.BFS(g.Bounds(), start, bfs.WithBlocked(rocks))
	require.NoError(t, err)
	assert.Equal(t, 16, res.CountWithParity(6))

	step := walk.Spread(g.Bounds(), rocks)
	s := grid.NewPositions(start)
	for n := 1; n <= 30; n++ {
		s = step(s)
		assert.Equalf(t, s.Len(), res.CountWithParity(n), "after %d steps", n)
	}
}
