package grid

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrMarkerNotFound indicates a required marker cell is absent from the grid.
	ErrMarkerNotFound = errors.New("grid: marker not found")
	// ErrNotDigit indicates a weight cell that is not a decimal digit.
	ErrNotDigit = errors.New("grid: cell is not a digit")
	// ErrBadDirection indicates an unparseable direction label.
	ErrBadDirection = errors.New("grid: unknown direction")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: up, down, left, right.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

// Axis is the orientation of a Direction.
type Axis int

const (
	// Vertical covers Up and Down.
	Vertical Axis = iota
	// Horizontal covers Left and Right.
	Horizontal
)

// Direction is one of the four cardinal moves on a grid.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every Direction in canonical order.
var Directions = [...]Direction{Up, Down, Left, Right}

// Abs returns the absolute value of x.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
