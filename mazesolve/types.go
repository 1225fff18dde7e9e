// Package mazesolve - solver configuration, result and step contracts.
package mazesolve

import (
	"errors"
	"time"

	"github.com/Darnix-a/maze-solving-algorithm/descent"
	"github.com/Darnix-a/maze-solving-algorithm/field"
	"github.com/Darnix-a/maze-solving-algorithm/grid"
)

// Sentinel errors for solver construction.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to New.
	ErrNilGrid = errors.New("mazesolve: grid is nil")
	// ErrTimeoutRange indicates a negative PrimaryTimeout.
	ErrTimeoutRange = errors.New("mazesolve: PrimaryTimeout must be non-negative")
)

// DefaultPrimaryTimeout is the default navigator wall-clock budget.
const DefaultPrimaryTimeout = 5000 * time.Millisecond

// Algorithm names reported in Result.Algorithm.
const (
	algoDescent = "momentum gradient descent"
	algoRing    = "ring search (fallback)"
)

// Config collects every recognized solver option. All fields have
// documented defaults; out-of-range values are rejected by New.
type Config struct {
	// MomentumFactor is the velocity blending weight, [0, 0.95], default 0.7.
	MomentumFactor float64
	// RepulsionSigma is the Gaussian repulsion spread, [0.5, 3.0], default 1.5.
	RepulsionSigma float64
	// RepulsionStrength is the repulsion magnitude, [1.0, 20.0], default 10.0.
	RepulsionStrength float64
	// MaxIterations caps the navigator, [100, 5000], default 1000.
	MaxIterations int
	// GoalThreshold is the success distance, [0.1, 2.0], default 0.5.
	GoalThreshold float64
	// EnableRandomness permits escape perturbation, default true.
	EnableRandomness bool
	// PerturbationStrength is the escape perturbation magnitude, default 2.0.
	PerturbationStrength float64
	// EscapeAttempts is the escape budget before navigator failure, default 20.
	EscapeAttempts int
	// Seed drives the escape RNG; 0 selects the fixed default stream.
	Seed int64

	// EnableFallback runs the ring search after a navigator failure, default true.
	EnableFallback bool
	// PrimaryTimeout is the navigator's wall-clock budget, default 5s;
	// 0 disables the budget.
	PrimaryTimeout time.Duration
	// MergeStats sums primary and fallback explored counts, default true.
	MergeStats bool
}

// DefaultConfig returns a Config with every documented default.
func DefaultConfig() Config {
	return Config{
		MomentumFactor:       descent.DefaultMomentum,
		RepulsionSigma:       field.DefaultRepulsionSigma,
		RepulsionStrength:    field.DefaultRepulsionStrength,
		MaxIterations:        descent.DefaultMaxIterations,
		GoalThreshold:        descent.DefaultGoalThreshold,
		EnableRandomness:     true,
		PerturbationStrength: descent.DefaultPerturbationStrength,
		EscapeAttempts:       descent.DefaultEscapeAttempts,
		EnableFallback:       true,
		PrimaryTimeout:       DefaultPrimaryTimeout,
		MergeStats:           true,
	}
}

// descentOptions maps the flat Config onto the navigator's option set.
func (c Config) descentOptions() descent.Options {
	return descent.Options{
		Momentum:             c.MomentumFactor,
		MaxIterations:        c.MaxIterations,
		GoalThreshold:        c.GoalThreshold,
		EnableRandomness:     c.EnableRandomness,
		PerturbationStrength: c.PerturbationStrength,
		EscapeAttempts:       c.EscapeAttempts,
		Seed:                 c.Seed,
		Field: field.Options{
			RepulsionSigma:    c.RepulsionSigma,
			RepulsionStrength: c.RepulsionStrength,
		},
	}
}

// Validate checks the orchestrator-level options and delegates the rest to
// the descent and field packages, surfacing their range sentinels.
// Complexity: O(1).
func (c Config) Validate() error {
	if c.PrimaryTimeout < 0 {
		return ErrTimeoutRange
	}

	return c.descentOptions().Validate()
}

// Result is the single artifact a solve hands back to callers: the path,
// the exploration statistics, and enough metadata to explain how the
// answer was reached - never just a bare boolean.
type Result struct {
	// Path is the start→goal cell sequence; empty when Success is false.
	Path []grid.Point
	// Explored counts discovered cells; with MergeStats it sums both phases.
	Explored int
	// Frontier counts discovered-but-unexpanded cells at termination.
	Frontier int
	// Elapsed is the wall-clock solve time.
	Elapsed time.Duration
	// MemoryBytes is an order-of-magnitude estimate of peak working-set
	// usage for the algorithm(s) run; approximate by design.
	MemoryBytes int64
	// Success reports whether a path was found.
	Success bool
	// Algorithm names the algorithm that produced the outcome.
	Algorithm string
	// UsedFallback reports whether the ring search produced the outcome.
	UsedFallback bool
}

// Phase tags which stage of the orchestrated solve a Step belongs to.
type Phase int

const (
	// PhasePrimary tags navigator steps.
	PhasePrimary Phase = iota
	// PhaseTransition is the single marker between navigator failure and
	// the fallback.
	PhaseTransition
	// PhaseFallback tags ring-search steps.
	PhaseFallback
	// PhaseFinal is the single closing "no path" step when both phases fail.
	PhaseFinal
)

// String implements fmt.Stringer for diagnostics.
func (p Phase) String() string {
	switch p {
	case PhasePrimary:
		return "primary"
	case PhaseTransition:
		return "transition"
	case PhaseFallback:
		return "fallback"
	case PhaseFinal:
		return "final"
	default:
		return "unknown"
	}
}

// Step is one visualization-oriented snapshot of the solve stream. Never
// required for correctness, only observability.
type Step struct {
	// Phase tags the producing stage.
	Phase Phase
	// Position is the continuous position (primary) or cell origin (fallback).
	Position grid.Vec
	// Cell is the integer cell of this step.
	Cell grid.Point
	// Explored is a snapshot of cells discovered by the producing stage.
	Explored []grid.Point
	// Frontier is a snapshot of the producing stage's frontier, when it has one.
	Frontier []grid.Point
	// PathSoFar is the partial path, when the producing stage tracks one.
	PathSoFar []grid.Point
	// Iteration is the step index within the producing stage.
	Iteration int
	// Message carries human-readable context on marker steps.
	Message string
	// Reached reports whether this step arrived at the goal.
	Reached bool
	// Potential is the raw scalar field, attached once on the first
	// primary step for display surfaces; nil elsewhere.
	Potential *field.Potential
}
