// Package descent implements the momentum-based gradient descent navigator:
// a continuous walker that follows the potential field's downhill direction
// from the start cell toward the goal.
//
// What:
//
//   - FindPath builds the potential and gradient fields, then iterates:
//     sample the field bilinearly at the current continuous position, blend
//     it into the velocity under the momentum factor, renormalize to unit
//     length (momentum shapes direction, not speed), and commit a
//     fixed-length move clamped into the open interior of the grid.
//   - Collisions slide: a blocked move tries a pure-x move, a pure-y move,
//     and two perpendicular deflections before giving up for the iteration.
//   - A per-cell visit counter detects cycling; more than three visits to
//     the target cell triggers the escape mechanism: bounded uniform-random
//     velocity perturbations, with the visit map cleared on every fifth
//     attempt. An exhausted escape budget fails the run with
//     ErrStuckExhausted - the designed hand-off to the completeness
//     fallback, not a bug.
//   - A Stepper variant yields one Step per iteration, computed lazily as
//     the caller pulls.
//
// Why:
//
//   - Field-following produces smooth, low-latency trajectories without
//     per-query graph search; the price is incompleteness in the face of
//     local minima, which is exactly what the escape budget and the
//     ring-search fallback absorb.
//
// Determinism:
//
//	The only randomness source is the escape perturbation. With
//	EnableRandomness=false, or on runs that never get stuck, the walk is
//	fully deterministic. Randomized runs are reproducible via Seed
//	(seed==0 selects a fixed default stream; no time-based seeding).
//
// Complexity:
//
//   - Field preprocessing: O(W×H).
//   - Walk: O(MaxIterations) iterations, O(1) each; memory O(W×H) for the
//     fields plus O(path) for the trace.
//
// Errors:
//
//   - ErrNilGrid on a nil grid,
//   - ErrMomentumRange, ErrIterationRange, ErrThresholdRange,
//     ErrPerturbation, ErrEscapeBudget on out-of-range options,
//   - ErrStuckExhausted: escape budget exhausted while cycling,
//   - ErrMaxIterations: iteration cap reached away from the goal.
//
// Callers that use this package directly, bypassing mazesolve, get no
// completeness guarantee: these failures propagate as errors by design.
package descent
