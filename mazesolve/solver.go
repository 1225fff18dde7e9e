package mazesolve

import (
	"context"
	"errors"
	"time"

	"github.com/Darnix-a/maze-solving-algorithm/descent"
	"github.com/Darnix-a/maze-solving-algorithm/grid"
	"github.com/Darnix-a/maze-solving-algorithm/ringsearch"
)

// Solver orchestrates one solve at a time over a read-only grid.
type Solver struct {
	g   *grid.Grid
	cfg Config

	// interactive single-step state, lazily initialized by StepOnce
	stepPos     grid.Point
	stepVisited map[grid.Point]bool
}

// New validates cfg against its documented ranges and binds the solver to
// g. Malformed option values are rejected here, never deferred to solve
// time. The caller must treat g as read-only for the solver's lifetime.
func New(g *grid.Grid, cfg Config) (*Solver, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Solver{g: g, cfg: cfg}, nil
}

// FindPath runs the navigator under the primary timeout and, on any
// navigator failure (stuck-exhaustion, timeout, iteration cap), runs the
// ring search when EnableFallback is set.
//
// The returned Result is always populated: Success=false with an empty
// path and aggregated explored counts when no path exists or fallback is
// disabled. The only error FindPath itself returns is ctx's cancellation;
// "no path found" is never an error.
//
// Complexity: navigator O(W×H + MaxIterations); fallback O(reachable cells).
func (s *Solver) FindPath(ctx context.Context) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	started := time.Now()

	navCtx := ctx
	if s.cfg.PrimaryTimeout > 0 {
		var cancel context.CancelFunc
		navCtx, cancel = context.WithTimeout(ctx, s.cfg.PrimaryTimeout)
		defer cancel()
	}

	trace, navErr := descent.FindPath(navCtx, s.g, s.cfg.descentOptions())
	if navErr == nil {
		return &Result{
			Path:        trace.Path,
			Explored:    len(trace.Explored),
			Elapsed:     time.Since(started),
			MemoryBytes: s.navigatorMemory(trace),
			Success:     true,
			Algorithm:   algoDescent,
		}, nil
	}
	if ctx.Err() != nil {
		// The caller's context ended, not just the primary budget.
		return nil, ctx.Err()
	}

	navExplored := len(trace.Explored)
	if !s.cfg.EnableFallback {
		return &Result{
			Explored:    navExplored,
			Elapsed:     time.Since(started),
			MemoryBytes: s.navigatorMemory(trace),
			Algorithm:   algoDescent,
		}, nil
	}

	rs, rsErr := ringsearch.Find(s.g, ringsearch.WithContext(ctx))
	if rsErr != nil && !errors.Is(rsErr, ringsearch.ErrNoPath) {
		return nil, rsErr // context cancellation mid-fallback
	}

	explored := rs.Explored
	if s.cfg.MergeStats {
		explored += navExplored
	}

	return &Result{
		Path:         rs.Path,
		Explored:     explored,
		Frontier:     rs.Frontier,
		Elapsed:      time.Since(started),
		MemoryBytes:  s.navigatorMemory(trace) + s.ringMemory(rs),
		Success:      rs.Found,
		Algorithm:    algoRing,
		UsedFallback: true,
	}, nil
}

// navigatorMemory estimates the navigator's working set: two dense fields
// (scalar + vector) over the grid plus per-visited-cell bookkeeping.
// Order-of-magnitude only.
func (s *Solver) navigatorMemory(trace *descent.Trace) int64 {
	area := int64(s.g.Width) * int64(s.g.Height)
	perCell := int64(8 + 16) // float64 potential + 2×float64 vector
	book := int64(len(trace.Explored)) * 48

	return area*perCell + book
}

// ringMemory estimates the ring search's working set: visited and parent
// maps over discovered cells. Order-of-magnitude only.
func (s *Solver) ringMemory(rs *ringsearch.Result) int64 {
	return int64(rs.Explored) * 64
}
