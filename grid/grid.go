package grid

import "strings"

// neighborOffsets is the fixed 4-connected adjacency order: N, E, S, W.
// Every traversal in this module iterates neighbors in this order so that
// repeated runs on identical input behave identically.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// New constructs a Grid from a non-empty rectangular 2D slice of cell types.
// It deep-copies the input to ensure immutability and locates the unique
// Start and Goal markers.
// Returns ErrTooSmall, ErrNonRectangular, ErrNoStart, ErrNoGoal,
// ErrDuplicateStart or ErrDuplicateGoal on invalid input.
// Complexity: O(W×H) time and memory.
func New(cells [][]CellType) (*Grid, error) {
	if len(cells) < 3 || len(cells[0]) < 3 {
		return nil, ErrTooSmall
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := &Grid{
		Width:  w,
		Height: h,
		Cells:  make([][]CellType, h),
		Start:  Point{X: -1, Y: -1},
		Goal:   Point{X: -1, Y: -1},
	}
	for y := 0; y < h; y++ {
		g.Cells[y] = make([]CellType, w)
		copy(g.Cells[y], cells[y])
		for x := 0; x < w; x++ {
			switch cells[y][x] {
			case Start:
				if g.Start.X >= 0 {
					return nil, ErrDuplicateStart
				}
				g.Start = Point{X: x, Y: y}
			case Goal:
				if g.Goal.X >= 0 {
					return nil, ErrDuplicateGoal
				}
				g.Goal = Point{X: x, Y: y}
			}
		}
	}
	if g.Start.X < 0 {
		return nil, ErrNoStart
	}
	if g.Goal.X < 0 {
		return nil, ErrNoGoal
	}

	return g, nil
}

// FromRunes builds a Grid from an ASCII layout, one string per row:
// '#' = Wall, '.' or ' ' = Empty, 'S' = Start, 'G' = Goal.
// Intended for tests, examples and fixtures.
// Returns ErrBadRune for any other rune, plus all New validation errors.
// Complexity: O(W×H).
func FromRunes(rows []string) (*Grid, error) {
	cells := make([][]CellType, len(rows))
	for y, row := range rows {
		cells[y] = make([]CellType, 0, len(row))
		for _, r := range row {
			switch r {
			case '#':
				cells[y] = append(cells[y], Wall)
			case '.', ' ':
				cells[y] = append(cells[y], Empty)
			case 'S':
				cells[y] = append(cells[y], Start)
			case 'G':
				cells[y] = append(cells[y], Goal)
			default:
				return nil, ErrBadRune
			}
		}
	}

	return New(cells)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Walkable reports whether (x,y) is in bounds and not a Wall.
// Complexity: O(1).
func (g *Grid) Walkable(x, y int) bool {
	return g.InBounds(x, y) && g.Cells[y][x] != Wall
}

// WalkableNeighbors returns the walkable 4-connected neighbors of p in the
// fixed N, E, S, W offset order.
// Complexity: O(1) (at most four candidates).
func (g *Grid) WalkableNeighbors(p Point) []Point {
	out := make([]Point, 0, 4)
	for _, d := range neighborOffsets {
		nx, ny := p.X+d[0], p.Y+d[1]
		if g.Walkable(nx, ny) {
			out = append(out, Point{X: nx, Y: ny})
		}
	}

	return out
}

// Clone returns a deep copy of the grid. Callers that edit a grid while a
// solve is in flight must operate on a clone.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	c := &Grid{Width: g.Width, Height: g.Height, Start: g.Start, Goal: g.Goal}
	c.Cells = make([][]CellType, g.Height)
	for y := range g.Cells {
		c.Cells[y] = make([]CellType, g.Width)
		copy(c.Cells[y], g.Cells[y])
	}

	return c
}

// String renders the grid in the FromRunes alphabet, rows separated by '\n'.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			switch g.Cells[y][x] {
			case Wall:
				b.WriteByte('#')
			case Start:
				b.WriteByte('S')
			case Goal:
				b.WriteByte('G')
			default:
				b.WriteByte('.')
			}
		}
		if y < g.Height-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
