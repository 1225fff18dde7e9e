// Package descent - options, state taxonomy and sentinel errors for the
// gradient descent navigator.
package descent

import (
	"errors"

	"github.com/Darnix-a/maze-solving-algorithm/field"
	"github.com/Darnix-a/maze-solving-algorithm/grid"
)

// Sentinel errors for navigator execution.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("descent: grid is nil")
	// ErrMomentumRange indicates Momentum outside [0, 0.95].
	ErrMomentumRange = errors.New("descent: Momentum must be in [0, 0.95]")
	// ErrIterationRange indicates MaxIterations outside [100, 5000].
	ErrIterationRange = errors.New("descent: MaxIterations must be in [100, 5000]")
	// ErrThresholdRange indicates GoalThreshold outside [0.1, 2.0].
	ErrThresholdRange = errors.New("descent: GoalThreshold must be in [0.1, 2.0]")
	// ErrPerturbation indicates a non-positive PerturbationStrength.
	ErrPerturbation = errors.New("descent: PerturbationStrength must be positive")
	// ErrEscapeBudget indicates a non-positive EscapeAttempts.
	ErrEscapeBudget = errors.New("descent: EscapeAttempts must be positive")

	// ErrStuckExhausted reports that the walker kept cycling after its full
	// escape budget. Expected by the orchestrator as the fallback trigger.
	ErrStuckExhausted = errors.New("descent: stuck, escape attempts exhausted")
	// ErrMaxIterations reports that the iteration cap was reached before the
	// goal threshold. Never silently returned as success.
	ErrMaxIterations = errors.New("descent: iteration limit reached before goal")
)

// Default navigator parameters (ranges documented on Validate).
const (
	DefaultMomentum             = 0.7
	DefaultMaxIterations        = 1000
	DefaultGoalThreshold        = 0.5
	DefaultPerturbationStrength = 2.0
	DefaultEscapeAttempts       = 20

	minMomentum   = 0.0
	maxMomentum   = 0.95
	minIterations = 100
	maxIterations = 5000
	minThreshold  = 0.1
	maxThreshold  = 2.0
)

// Options configures the navigator.
//
// Momentum             – velocity blending weight, [0, 0.95].
// MaxIterations        – iteration cap, [100, 5000].
// GoalThreshold        – Euclidean success distance, [0.1, 2.0].
// EnableRandomness     – permit escape perturbation; without it the first
//
//	exhausted escape fails the run immediately.
//
// PerturbationStrength – magnitude bound of each escape perturbation.
// EscapeAttempts       – escape budget before ErrStuckExhausted.
// Seed                 – RNG seed; 0 selects the fixed default stream.
// Field                – repulsion tuning forwarded to field.Build.
type Options struct {
	Momentum             float64
	MaxIterations        int
	GoalThreshold        float64
	EnableRandomness     bool
	PerturbationStrength float64
	EscapeAttempts       int
	Seed                 int64
	Field                field.Options
}

// DefaultOptions returns the documented defaults: momentum 0.7, 1000
// iterations, threshold 0.5, randomness on, perturbation 2.0, budget 20,
// seed 0, default field options.
func DefaultOptions() Options {
	return Options{
		Momentum:             DefaultMomentum,
		MaxIterations:        DefaultMaxIterations,
		GoalThreshold:        DefaultGoalThreshold,
		EnableRandomness:     true,
		PerturbationStrength: DefaultPerturbationStrength,
		EscapeAttempts:       DefaultEscapeAttempts,
		Field:                field.DefaultOptions(),
	}
}

// Validate checks all option ranges, including the embedded field options.
// Complexity: O(1).
func (o Options) Validate() error {
	if o.Momentum < minMomentum || o.Momentum > maxMomentum {
		return ErrMomentumRange
	}
	if o.MaxIterations < minIterations || o.MaxIterations > maxIterations {
		return ErrIterationRange
	}
	if o.GoalThreshold < minThreshold || o.GoalThreshold > maxThreshold {
		return ErrThresholdRange
	}
	if o.PerturbationStrength <= 0 {
		return ErrPerturbation
	}
	if o.EscapeAttempts <= 0 {
		return ErrEscapeBudget
	}

	return o.Field.Validate()
}

// State is the navigator's phase within its walk.
type State int

const (
	// Descending is the normal field-following phase.
	Descending State = iota
	// Stuck marks an iteration whose target cell tripped the revisit limit.
	Stuck
	// Escaping marks an iteration that applied a random perturbation.
	Escaping
	// Reached is the success terminal state.
	Reached
	// Failed is the error terminal state (stuck-exhaustion or cap).
	Failed
)

// String implements fmt.Stringer for diagnostics.
func (s State) String() string {
	switch s {
	case Descending:
		return "descending"
	case Stuck:
		return "stuck"
	case Escaping:
		return "escaping"
	case Reached:
		return "reached"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Step is one iteration snapshot, produced lazily by a Stepper.
type Step struct {
	// Position is the continuous position after the iteration.
	Position grid.Vec
	// Cell is the integer cell under Position.
	Cell grid.Point
	// Explored is a snapshot of integer cells visited so far, in first-visit order.
	Explored []grid.Point
	// PathSoFar is the discrete path accumulated so far.
	PathSoFar []grid.Point
	// Iteration is the committed-iteration counter.
	Iteration int
	// State classifies the iteration.
	State State
}

// Trace is the navigator's outcome, returned alongside any terminal error
// so the orchestrator can merge exploration statistics either way.
type Trace struct {
	// Path is the discrete 4-connected path from start to the cell under
	// the final position; ends at the goal cell on success.
	Path []grid.Point
	// Walk is the raw continuous position sequence, one entry per commit.
	Walk []grid.Vec
	// Explored lists integer cells in first-visit order.
	Explored []grid.Point
	// Iterations is the number of loop iterations consumed.
	Iterations int
}
