// Package mazesolve is the integrated solving surface: it sequences the
// gradient descent navigator and the ring-search completeness fallback and
// merges their outcomes into one result. This is the only package callers
// need for a "solve".
//
// What:
//
//   - Solver.FindPath attempts the navigator under a wall-clock budget
//     (PrimaryTimeout). On success it returns immediately with
//     UsedFallback=false. On stuck-exhaustion, timeout, or an exhausted
//     iteration cap - and only when EnableFallback is set - it runs the
//     ring search, reports that search's path and success flag with
//     UsedFallback=true, and (under MergeStats) sums the explored-cell
//     counts of both phases. "No path found" is never an error here: it is
//     a Result with Success=false and enough counters to explain how the
//     conclusion was reached.
//   - Solver.Steps is the streaming form: a pull-based cursor that forwards
//     every navigator step (tagged PhasePrimary) until one reaches the goal
//     or the navigator gives up, then one PhaseTransition marker, then
//     every ring-search step (PhaseFallback) under the same goal-detection
//     rule, then - if neither phase reached the goal - one final
//     PhaseFinal "no path" step. No step is computed before it is pulled,
//     so a consumer that stops pulling abandons the remaining work.
//   - Solver.StepOnce is a third, deliberately simpler algorithm for
//     low-latency interactive single-stepping: a greedy discrete walk that
//     orders the four axis moves by Manhattan-distance reduction with a
//     visited-set for duplicate suppression. It is neither the gradient
//     method nor the ring search and offers no completeness guarantee.
//
// Why:
//
//   - The navigator is fast but incomplete; the ring search is complete
//     but exhaustive. Sequencing them yields the fallback guarantee: for
//     any grid where a path exists, FindPath with EnableFallback succeeds.
//
// Concurrency:
//
//   - One Solver processes one solve at a time; the grid is treated as
//     read-only throughout. The primary timeout is cooperative: the
//     navigator observes its deadline once per iteration and hands back
//     its partial trace, so no computation is left running.
//
// Options: see Config (all documented defaults); rejected at New, never at
// solve time.
//
// Errors:
//
//   - ErrNilGrid, ErrTimeoutRange, plus the option sentinels of the
//     descent and field packages, surfaced from New.
//   - FindPath returns an error only for caller-context cancellation.
package mazesolve
