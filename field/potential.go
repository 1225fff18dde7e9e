package field

import (
	"math"

	"github.com/Darnix-a/maze-solving-algorithm/grid"
)

// Potential is a dense scalar field over the grid: 0 at the goal,
// wavefront distance plus repulsion on reachable cells, +Inf on walls and
// on cells disconnected from the goal. Row-major: Cells[y][x].
type Potential struct {
	Width, Height int
	Cells         [][]float64
}

// At returns the potential at (x,y). Out-of-bounds queries return +Inf.
// Complexity: O(1).
func (p *Potential) At(x, y int) float64 {
	if x < 0 || x >= p.Width || y < 0 || y >= p.Height {
		return math.Inf(1)
	}

	return p.Cells[y][x]
}

// Build computes the potential field for g: a wavefront expansion from the
// goal followed by Gaussian wall repulsion (see package docs).
// The wavefront component, taken alone, is monotonically non-decreasing
// along shortest-path distance from the goal; repulsion deliberately breaks
// that monotonicity near walls.
// Returns ErrNilGrid or an option range error.
// Complexity: O(W×H + walls×(6σ+1)²) time, O(W×H) memory.
func Build(g *grid.Grid, opts Options) (*Potential, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	p := &Potential{
		Width:  g.Width,
		Height: g.Height,
		Cells:  make([][]float64, g.Height),
	}
	inf := math.Inf(1)
	for y := 0; y < g.Height; y++ {
		p.Cells[y] = make([]float64, g.Width)
		for x := 0; x < g.Width; x++ {
			p.Cells[y][x] = inf
		}
	}

	// Wavefront: breadth-first relaxation from the goal. Each newly reached
	// cell is assigned one more than the cell that reached it first.
	p.Cells[g.Goal.Y][g.Goal.X] = 0
	queue := make([]grid.Point, 0, g.Width*g.Height)
	queue = append(queue, g.Goal)
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		du := p.Cells[u.Y][u.X]
		for _, v := range g.WalkableNeighbors(u) {
			if math.IsInf(p.Cells[v.Y][v.X], 1) {
				p.Cells[v.Y][v.X] = du + 1
				queue = append(queue, v)
			}
		}
	}

	addRepulsion(p, g, opts)

	return p, nil
}

// addRepulsion superimposes a Gaussian bump around every Wall cell, within
// a 3σ Chebyshev radius, onto cells that already hold a finite potential.
// Walls and unreachable cells are left untouched.
func addRepulsion(p *Potential, g *grid.Grid, opts Options) {
	sigma := opts.RepulsionSigma
	radius := int(math.Ceil(3 * sigma))
	inv := 1 / (2 * sigma * sigma)

	for wy := 0; wy < g.Height; wy++ {
		for wx := 0; wx < g.Width; wx++ {
			if g.Cells[wy][wx] != grid.Wall {
				continue
			}
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					x, y := wx+dx, wy+dy
					if !g.InBounds(x, y) || math.IsInf(p.Cells[y][x], 1) {
						continue
					}
					d2 := float64(dx*dx + dy*dy)
					p.Cells[y][x] += opts.RepulsionStrength * math.Exp(-d2*inv)
				}
			}
		}
	}
}
