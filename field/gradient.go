package field

import (
	"math"

	"github.com/Darnix-a/maze-solving-algorithm/grid"
)

// Vectors is the dense descent-direction field: per cell, the negated
// finite-difference gradient of the potential. Zero on Wall cells.
type Vectors struct {
	Width, Height int
	Cells         [][]grid.Vec
}

// Gradient derives the vector field from a potential field via central
// differences over the window [x−1,x+1]×[y−1,y+1], clamped at boundaries
// and normalized by the actual sample span (guards against boundary
// compression). A sampled neighbor with infinite potential zeroes that
// axis's partial. The stored vector is the negated gradient, i.e. the
// downhill direction.
// Complexity: O(W×H) time and memory.
func Gradient(p *Potential, g *grid.Grid) *Vectors {
	v := &Vectors{
		Width:  p.Width,
		Height: p.Height,
		Cells:  make([][]grid.Vec, p.Height),
	}
	for y := 0; y < p.Height; y++ {
		v.Cells[y] = make([]grid.Vec, p.Width)
		for x := 0; x < p.Width; x++ {
			if g.Cells[y][x] == grid.Wall {
				continue // zero vector on walls
			}
			v.Cells[y][x] = grid.Vec{
				X: -partial(p, x, y, true),
				Y: -partial(p, x, y, false),
			}
		}
	}

	return v
}

// partial estimates one axis's derivative at (x,y) over the clamped
// central-difference window. Infinite samples yield 0.
func partial(p *Potential, x, y int, axisX bool) float64 {
	var lo, hi, span float64
	if axisX {
		x0, x1 := x-1, x+1
		if x0 < 0 {
			x0 = 0
		}
		if x1 > p.Width-1 {
			x1 = p.Width - 1
		}
		if x1 == x0 {
			return 0
		}
		lo, hi, span = p.Cells[y][x0], p.Cells[y][x1], float64(x1-x0)
	} else {
		y0, y1 := y-1, y+1
		if y0 < 0 {
			y0 = 0
		}
		if y1 > p.Height-1 {
			y1 = p.Height - 1
		}
		if y1 == y0 {
			return 0
		}
		lo, hi, span = p.Cells[y0][x], p.Cells[y1][x], float64(y1-y0)
	}
	if math.IsInf(lo, 1) || math.IsInf(hi, 1) {
		return 0 // no local information
	}

	return (hi - lo) / span
}

// Sample interpolates the vector field bilinearly at the continuous
// position (x,y). The four surrounding integer cells contribute; any cell
// outside [0,Width−1)×[0,Height−1) contributes a zero vector, so the field
// fades to zero at the boundary band.
// Complexity: O(1).
func (v *Vectors) Sample(x, y float64) grid.Vec {
	x0, y0 := math.Floor(x), math.Floor(y)
	fx, fy := x-x0, y-y0
	ix, iy := int(x0), int(y0)

	c00 := v.at(ix, iy)
	c10 := v.at(ix+1, iy)
	c01 := v.at(ix, iy+1)
	c11 := v.at(ix+1, iy+1)

	top := c00.Scale(1 - fx).Add(c10.Scale(fx))
	bot := c01.Scale(1 - fx).Add(c11.Scale(fx))

	return top.Scale(1 - fy).Add(bot.Scale(fy))
}

// at returns the cell vector, or zero outside the interpolable interior.
func (v *Vectors) at(x, y int) grid.Vec {
	if x < 0 || y < 0 || x >= v.Width-1 || y >= v.Height-1 {
		return grid.Vec{}
	}

	return v.Cells[y][x]
}
