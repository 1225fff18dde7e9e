// Package field builds the scalar potential field and its descent-direction
// vector field over a maze grid. These fields are the preprocessing stage
// behind the gradient descent navigator.
//
// What:
//
//   - Build runs a single-source wavefront expansion from the goal over
//     4-connected walkable cells: the goal holds 0, each newly reached cell
//     holds one more than the cell that reached it first, and cells
//     disconnected from the goal keep +Inf.
//   - Build then superimposes a Gaussian repulsion bump around every Wall
//     cell, added only to cells with finite potential, within a 3σ
//     Chebyshev radius: strength · exp(−d² / (2σ²)).
//   - Gradient derives the per-cell vector field as the negated central
//     difference of the potential, normalized by the actual sample span at
//     boundaries. An infinite sampled neighbor contributes a zero partial
//     ("no local information") instead of propagating infinity.
//   - Vectors.Sample interpolates the field bilinearly at continuous
//     positions for the navigator.
//
// Why:
//
//   - A wavefront distance plus wall repulsion gives a smooth "cost to
//     goal" surface whose downhill direction steers a continuous walker
//     toward the goal while pushing it off walls.
//
// Known approximation: repulsion is purely additive and never re-propagated
// through the wavefront, so clustered walls can create local minima. The
// navigator's escape mechanism exists precisely to get out of those; do not
// expect the post-repulsion surface to stay monotone.
//
// Complexity:
//
//   - Wavefront: O(W×H) time and memory.
//   - Repulsion: O(walls × (6σ+1)²).
//   - Gradient: O(W×H); Sample: O(1).
//
// Options:
//
//   - RepulsionSigma: Gaussian spread, 0.5–3.0, default 1.5.
//   - RepulsionStrength: bump magnitude, 1.0–20.0, default 10.0.
//
// Errors:
//
//   - ErrNilGrid: a nil grid pointer was passed.
//   - ErrSigmaRange / ErrStrengthRange: option outside its documented range.
package field
