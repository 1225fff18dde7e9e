// Package field - options and sentinel errors for potential/gradient
// field construction.
package field

import "errors"

// Sentinel errors for field construction.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("field: grid is nil")
	// ErrSigmaRange indicates RepulsionSigma outside [0.5, 3.0].
	ErrSigmaRange = errors.New("field: RepulsionSigma must be in [0.5, 3.0]")
	// ErrStrengthRange indicates RepulsionStrength outside [1.0, 20.0].
	ErrStrengthRange = errors.New("field: RepulsionStrength must be in [1.0, 20.0]")
)

// Default repulsion parameters.
const (
	// DefaultRepulsionSigma is the default Gaussian spread.
	DefaultRepulsionSigma = 1.5
	// DefaultRepulsionStrength is the default bump magnitude.
	DefaultRepulsionStrength = 10.0

	minSigma    = 0.5
	maxSigma    = 3.0
	minStrength = 1.0
	maxStrength = 20.0
)

// Options tunes the wall repulsion layered on top of the wavefront
// potential.
//
// RepulsionSigma    – Gaussian spread σ; bumps extend to a 3σ Chebyshev radius.
// RepulsionStrength – peak magnitude of each wall's bump.
type Options struct {
	RepulsionSigma    float64
	RepulsionStrength float64
}

// DefaultOptions returns Options with σ=1.5 and strength=10.0.
func DefaultOptions() Options {
	return Options{
		RepulsionSigma:    DefaultRepulsionSigma,
		RepulsionStrength: DefaultRepulsionStrength,
	}
}

// Validate checks option ranges. Rejected immediately at construction,
// never deferred to solve time.
// Complexity: O(1).
func (o Options) Validate() error {
	if o.RepulsionSigma < minSigma || o.RepulsionSigma > maxSigma {
		return ErrSigmaRange
	}
	if o.RepulsionStrength < minStrength || o.RepulsionStrength > maxStrength {
		return ErrStrengthRange
	}

	return nil
}
