package descent

import (
	"github.com/Darnix-a/maze-solving-algorithm/field"
	"github.com/Darnix-a/maze-solving-algorithm/grid"
)

// Stepper is the pull-based streaming form of the navigator: each Next
// call computes exactly one iteration and yields its snapshot. No step is
// computed ahead of being consumed; dropping the Stepper abandons the walk.
type Stepper struct {
	w    *walker
	err  error
	done bool
}

// NewStepper validates options, builds the fields, and seats a walker at
// the start cell without taking any step yet.
// Returns the same construction errors as FindPath.
func NewStepper(g *grid.Grid, opts Options) (*Stepper, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}

	return &Stepper{w: w}, nil
}

// Next advances the walk by one iteration and reports its snapshot.
// The final snapshot carries State Reached or Failed; afterwards Next
// returns ok=false. Inspect Err after exhaustion to distinguish failure
// modes.
func (s *Stepper) Next() (Step, bool) {
	if s.done {
		return Step{}, false
	}

	if s.w.reached() && s.w.finish() {
		s.done = true

		return s.snapshot(), true
	}
	if s.w.iter >= s.w.opts.MaxIterations {
		s.w.state = Failed
		s.done, s.err = true, ErrMaxIterations

		return s.snapshot(), true
	}
	if err := s.w.step(); err != nil {
		s.done, s.err = true, err

		return s.snapshot(), true
	}

	return s.snapshot(), true
}

// Err reports the terminal error once the Stepper is exhausted: nil on
// success, ErrStuckExhausted or ErrMaxIterations otherwise.
func (s *Stepper) Err() error {
	return s.err
}

// Trace returns the statistics accumulated so far. Valid at any point of
// the walk; most useful after exhaustion.
func (s *Stepper) Trace() *Trace {
	return s.w.trace()
}

// Potential exposes the scalar field the walk descends, for display
// surfaces that render the raw potential alongside the steps.
func (s *Stepper) Potential() *field.Potential {
	return s.w.pot
}

// snapshot copies the walker's observable state into a Step. Slices are
// copied so consumers may retain snapshots across Next calls.
func (s *Stepper) snapshot() Step {
	explored := make([]grid.Point, len(s.w.explored))
	copy(explored, s.w.explored)
	path := make([]grid.Point, len(s.w.cells))
	copy(path, s.w.cells)

	return Step{
		Position:  s.w.pos,
		Cell:      s.w.pos.Cell(),
		Explored:  explored,
		PathSoFar: path,
		Iteration: s.w.iter,
		State:     s.w.state,
	}
}
