package ringsearch

import "github.com/Darnix-a/maze-solving-algorithm/grid"

// Stepper is the pull-based streaming form of the ring search: each Next
// call processes exactly one cell and yields its snapshot. Nothing is
// computed ahead of consumption.
type Stepper struct {
	s    *search
	err  error
	done bool
}

// NewStepper prepares a search without processing any cell yet.
func NewStepper(g *grid.Grid, opts ...Option) (*Stepper, error) {
	s, err := newSearch(g, opts...)
	if err != nil {
		return nil, err
	}

	return &Stepper{s: s}, nil
}

// Next processes one cell and reports its snapshot. After the goal is
// dequeued (Step.Reached) or the reachable component is exhausted, Next
// returns ok=false; inspect Err to distinguish ErrNoPath from success.
func (st *Stepper) Next() (Step, bool) {
	if st.done {
		return Step{}, false
	}
	if st.s.exhausted() {
		st.done, st.err = true, ErrNoPath

		return Step{}, false
	}

	u, err := st.s.processOne()
	if err != nil {
		st.done, st.err = true, err

		return Step{}, false
	}
	if st.s.found {
		st.done = true
	}

	return st.snapshot(u), true
}

// Err reports the terminal error once the Stepper is exhausted: nil when
// the goal was reached, ErrNoPath on exhaustion.
func (st *Stepper) Err() error {
	return st.err
}

// Result snapshots the outcome so far; most useful once Next has returned
// ok=false or a Reached step.
func (st *Stepper) Result() *Result {
	return st.s.result()
}

// snapshot copies observable search state into a Step.
func (st *Stepper) snapshot(u grid.Point) Step {
	explored := make([]grid.Point, len(st.s.order))
	copy(explored, st.s.order)

	frontier := make([]grid.Point, 0, st.s.frontierLen())
	frontier = append(frontier, st.s.current[st.s.idx:]...)
	frontier = append(frontier, st.s.next...)

	return Step{
		Current:  u,
		Distance: st.s.dist,
		Explored: explored,
		Frontier: frontier,
		Reached:  st.s.found,
	}
}
