// Package grid defines core types and sentinel errors for the maze model.
package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrTooSmall indicates a grid dimension below the 3×3 minimum.
	ErrTooSmall = errors.New("grid: width and height must be at least 3")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNoStart indicates the grid carries no Start cell.
	ErrNoStart = errors.New("grid: no start cell present")
	// ErrNoGoal indicates the grid carries no Goal cell.
	ErrNoGoal = errors.New("grid: no goal cell present")
	// ErrDuplicateStart indicates more than one Start cell.
	ErrDuplicateStart = errors.New("grid: more than one start cell")
	// ErrDuplicateGoal indicates more than one Goal cell.
	ErrDuplicateGoal = errors.New("grid: more than one goal cell")
	// ErrBadRune indicates FromRunes met a rune outside its alphabet.
	ErrBadRune = errors.New("grid: unrecognized cell rune")
)

// CellType classifies a single maze cell.
type CellType int

const (
	// Empty is a walkable cell with no marker.
	Empty CellType = iota
	// Wall is an impassable cell.
	Wall
	// Start marks the unique solve origin; walkable.
	Start
	// Goal marks the unique solve target; walkable.
	Goal
)

// Point is a discrete grid coordinate.
type Point struct {
	X, Y int
}

// Manhattan returns the L1 distance between p and q.
// Complexity: O(1).
func (p Point) Manhattan(q Point) int {
	dx := p.X - q.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - q.Y
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}

// Less orders points by X, then Y. Used wherever a traversal needs a
// deterministic processing order.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}

	return p.Y < q.Y
}

// Vec converts the discrete coordinate to a continuous position at the
// cell's origin.
func (p Point) Vec() Vec {
	return Vec{X: float64(p.X), Y: float64(p.Y)}
}

// Grid is a rectangular maze with designated Start and Goal coordinates.
// It is immutable by convention: solvers never mutate Cells, and callers
// must not mutate it during a solve (Clone first if in doubt).
// Cells is row-major: Cells[y][x].
type Grid struct {
	Width, Height int
	Cells         [][]CellType
	Start, Goal   Point
}
