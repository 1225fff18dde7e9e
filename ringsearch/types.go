// Package ringsearch - tunable options, result contract and sentinel
// errors for the ring search.
package ringsearch

import (
	"context"
	"errors"

	"github.com/Darnix-a/maze-solving-algorithm/grid"
)

// Sentinel errors for ring search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("ringsearch: grid is nil")

	// ErrNoPath reports that every cell reachable from the start was
	// explored without dequeuing the goal. Because the search is complete,
	// this is an authoritative, deterministic proof of non-existence.
	ErrNoPath = errors.New("ringsearch: no path exists between start and goal")
)

// Option configures ring search behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks customizing a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// SeedVisited pre-populates the visited set; seeded cells are treated
	// as already discovered and are never re-expanded. See the package
	// docs for the completeness caveat.
	SeedVisited []grid.Point

	// OnVisit is called for each dequeued cell with its ring distance.
	// If it returns an error, the search aborts and propagates it.
	OnVisit func(p grid.Point, dist int) error
}

// DefaultOptions returns Options with a background context, no seeded
// cells, and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(grid.Point, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSeedVisited pre-populates the visited set with cells, typically a
// navigator's exploration trace. Callers own the completeness caveat.
func WithSeedVisited(cells []grid.Point) Option {
	return func(o *Options) {
		o.SeedVisited = cells
	}
}

// WithOnVisit registers a per-cell hook; returning an error aborts the
// search.
func WithOnVisit(fn func(p grid.Point, dist int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a ring search.
type Result struct {
	// Path is the start→goal cell sequence; empty when Found is false.
	Path []grid.Point
	// Explored is the number of discovered cells (visited-set size). On
	// exhaustion it equals exactly the size of the reachable walkable
	// component containing the start.
	Explored int
	// Frontier is the number of discovered-but-unexpanded cells at the
	// moment the search stopped (zero on exhaustion).
	Frontier int
	// Distance is the Manhattan ring distance reached.
	Distance int
	// Found reports whether the goal was dequeued.
	Found bool
}

// Step is one processed-cell snapshot, produced lazily by a Stepper.
type Step struct {
	// Current is the cell dequeued this step.
	Current grid.Point
	// Distance is the ring distance of the current ring.
	Distance int
	// Explored is a snapshot of discovered cells in discovery order.
	Explored []grid.Point
	// Frontier is a snapshot of discovered-but-unexpanded cells.
	Frontier []grid.Point
	// Reached reports whether Current is the goal.
	Reached bool
}
