package mazesolve

import (
	"github.com/Darnix-a/maze-solving-algorithm/descent"
	"github.com/Darnix-a/maze-solving-algorithm/ringsearch"
)

// stream phases for the orchestrating cursor.
const (
	streamInit = iota
	streamPrimary
	streamTransition
	streamFallback
	streamFinal
	streamDone
)

// Stepper is the streaming form of the orchestrated solve: it forwards
// navigator steps until one reaches the goal or the navigator gives up,
// then a transition marker, then ring-search steps, then a final "no path"
// step when both phases fail. Each Next computes exactly one underlying
// step; stopping to pull abandons the rest.
type Stepper struct {
	solver *Solver
	phase  int
	first  bool

	prim *descent.Stepper
	fb   *ringsearch.Stepper
}

// Steps returns a fresh step cursor over the solve. Construction is lazy:
// the navigator's preprocessing happens on the first Next call.
func (s *Solver) Steps() *Stepper {
	return &Stepper{solver: s, phase: streamInit, first: true}
}

// Next yields the next step of the interleaved stream. It returns ok=false
// only after the stream has fully closed (goal reached, or the final
// "no path" marker already emitted).
func (st *Stepper) Next() (Step, bool) {
	for {
		switch st.phase {
		case streamInit:
			prim, err := descent.NewStepper(st.solver.g, st.solver.cfg.descentOptions())
			if err != nil {
				// Config is validated at New; only a nil grid could land
				// here, and New rejects that too. Close the stream.
				st.phase = streamDone

				return Step{}, false
			}
			st.prim = prim
			st.phase = streamPrimary

		case streamPrimary:
			ds, ok := st.prim.Next()
			if !ok {
				st.phase = st.afterPrimary()

				continue
			}
			step := st.convertPrimary(ds)
			if ds.State == descent.Reached {
				st.phase = streamDone
			} else if ds.State == descent.Failed {
				st.phase = st.afterPrimary()
			}

			return step, true

		case streamTransition:
			fb, err := ringsearch.NewStepper(st.solver.g)
			if err != nil {
				st.phase = streamFinal

				continue
			}
			st.fb = fb
			st.phase = streamFallback

			return Step{
				Phase:   PhaseTransition,
				Message: "gradient descent failed; falling back to ring search",
			}, true

		case streamFallback:
			rs, ok := st.fb.Next()
			if !ok {
				st.phase = streamFinal

				continue
			}
			step := st.convertFallback(rs)
			if rs.Reached {
				st.phase = streamDone
			}

			return step, true

		case streamFinal:
			st.phase = streamDone

			return Step{Phase: PhaseFinal, Message: "no path exists"}, true

		default: // streamDone
			return Step{}, false
		}
	}
}

// afterPrimary picks the post-navigator phase per configuration.
func (st *Stepper) afterPrimary() int {
	if st.solver.cfg.EnableFallback {
		return streamTransition
	}

	return streamFinal
}

// convertPrimary maps a navigator step into the orchestrated contract,
// attaching the raw potential field on the first emitted step.
func (st *Stepper) convertPrimary(ds descent.Step) Step {
	step := Step{
		Phase:     PhasePrimary,
		Position:  ds.Position,
		Cell:      ds.Cell,
		Explored:  ds.Explored,
		PathSoFar: ds.PathSoFar,
		Iteration: ds.Iteration,
		Reached:   ds.State == descent.Reached,
	}
	if st.first {
		step.Potential = st.prim.Potential()
		st.first = false
	}

	return step
}

// convertFallback maps a ring-search step into the orchestrated contract.
func (st *Stepper) convertFallback(rs ringsearch.Step) Step {
	step := Step{
		Phase:     PhaseFallback,
		Position:  rs.Current.Vec(),
		Cell:      rs.Current,
		Explored:  rs.Explored,
		Frontier:  rs.Frontier,
		Iteration: rs.Distance,
		Reached:   rs.Reached,
	}
	if rs.Reached {
		step.PathSoFar = st.fb.Result().Path
	}

	return step
}
