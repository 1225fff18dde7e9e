package descent

import (
	"context"
	"math"
	"math/rand"
	"sort"

	"github.com/Darnix-a/maze-solving-algorithm/field"
	"github.com/Darnix-a/maze-solving-algorithm/grid"
)

const (
	// interiorMargin keeps positions off exact cell boundaries.
	interiorMargin = 0.1
	// revisitLimit is the per-cell visit count beyond which an iteration
	// counts as stuck.
	revisitLimit = 3
	// clearEvery is the escape-attempt cadence at which the visit map is
	// wiped, re-permitting previously blocked cells.
	clearEvery = 5
)

// walker encapsulates the mutable navigation state of one walk: continuous
// position and velocity, visit counters, exploration trace, and phase.
// Created per FindPath/Stepper call, discarded at completion or failure.
type walker struct {
	g       *grid.Grid
	pot     *field.Potential
	vectors *field.Vectors
	opts    Options
	rng     *rand.Rand

	pos      grid.Vec
	vel      grid.Vec
	goal     grid.Vec
	iter     int
	stuck    int
	visits   map[grid.Point]int
	seen     map[grid.Point]struct{}
	explored []grid.Point
	walk     []grid.Vec
	cells    []grid.Point
	state    State
}

// newWalker validates options, builds the potential and gradient fields,
// and seats the walker at the start cell.
func newWalker(g *grid.Grid, opts Options) (*walker, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	pot, err := field.Build(g, opts.Field)
	if err != nil {
		return nil, err
	}

	w := &walker{
		g:       g,
		pot:     pot,
		vectors: field.Gradient(pot, g),
		opts:    opts,
		rng:     rngFromSeed(opts.Seed),
		pos:     g.Start.Vec(),
		goal:    g.Goal.Vec(),
		visits:  map[grid.Point]int{g.Start: 1},
		seen:    map[grid.Point]struct{}{g.Start: {}},
		state:   Descending,
	}
	w.explored = append(w.explored, g.Start)
	w.walk = append(w.walk, w.pos)
	w.cells = append(w.cells, g.Start)

	return w, nil
}

// reached reports whether the current position is within the goal threshold.
func (w *walker) reached() bool {
	return w.pos.Dist(w.goal) < w.opts.GoalThreshold
}

// step performs one navigator iteration: field sample, momentum blend,
// fixed-length move with collision sliding, revisit detection, commit.
// Returns ErrStuckExhausted when the escape budget runs out.
func (w *walker) step() error {
	sample := w.vectors.Sample(w.pos.X, w.pos.Y)
	v := w.vel.Scale(w.opts.Momentum).Add(sample.Scale(1 - w.opts.Momentum))
	if v.Len() > 1e-12 {
		v = v.Normalize() // momentum shapes direction, not speed
	}
	w.vel = v

	next := w.clampInterior(w.pos.Add(v))
	if !w.g.Walkable(next.Cell().X, next.Cell().Y) {
		slid, dir, ok := w.slide()
		if !ok {
			// Every deflection blocked: hold position this iteration.
			w.iter++
			w.state = Descending

			return nil
		}
		next, w.vel = slid, dir
	}

	cell := next.Cell()
	if last := w.cells[len(w.cells)-1]; cell.X != last.X && cell.Y != last.Y {
		if _, ok := w.viaCell(last, cell); !ok {
			// Corner squeeze: the landing cell is walkable but no
			// 4-connected bridge exists. Refuse the move.
			w.iter++
			w.state = Descending

			return nil
		}
	}
	if w.visits[cell] > revisitLimit {
		w.state = Stuck

		return w.escape()
	}

	w.commit(next, cell)

	return nil
}

// clampInterior keeps a position inside the open interior of the grid,
// away from exact-boundary straddling.
func (w *walker) clampInterior(p grid.Vec) grid.Vec {
	return p.Clamp(
		interiorMargin, float64(w.g.Width)-1-interiorMargin,
		interiorMargin, float64(w.g.Height)-1-interiorMargin,
	)
}

// slide tries the four deflected alternatives of the blocked move: pure-x,
// pure-y, and the two perpendicular deflections obtained by swapping and
// negating velocity components. Returns the first walkable landing.
func (w *walker) slide() (grid.Vec, grid.Vec, bool) {
	candidates := [4]grid.Vec{
		{X: w.vel.X},
		{Y: w.vel.Y},
		{X: w.vel.Y, Y: w.vel.X},
		{X: -w.vel.Y, Y: -w.vel.X},
	}
	for _, dir := range candidates {
		landing := w.clampInterior(w.pos.Add(dir))
		c := landing.Cell()
		if w.g.Walkable(c.X, c.Y) {
			return landing, dir, true
		}
	}

	return grid.Vec{}, grid.Vec{}, false
}

// escape handles a stuck iteration: burn one escape attempt, perturb the
// velocity with a bounded uniform-random vector, and wipe the visit map on
// every fifth attempt. Exhaustion of the budget, or randomness being
// disabled, fails the walk.
func (w *walker) escape() error {
	w.stuck++
	if !w.opts.EnableRandomness || w.stuck >= w.opts.EscapeAttempts {
		w.state = Failed

		return ErrStuckExhausted
	}

	p := w.opts.PerturbationStrength
	w.vel = w.vel.Add(grid.Vec{
		X: (w.rng.Float64()*2 - 1) * p,
		Y: (w.rng.Float64()*2 - 1) * p,
	})
	if w.stuck%clearEvery == 0 {
		w.visits = make(map[grid.Point]int)
	}
	w.state = Escaping

	return nil
}

// commit moves to the accepted position and records the iteration: visit
// count, exploration order, continuous walk, discrete path.
func (w *walker) commit(next grid.Vec, cell grid.Point) {
	w.pos = next
	w.visits[cell]++
	if _, ok := w.seen[cell]; !ok {
		w.seen[cell] = struct{}{}
		w.explored = append(w.explored, cell)
	}
	w.walk = append(w.walk, next)
	w.appendCell(cell)
	w.iter++
	w.state = Descending
}

// viaCell picks the walkable intermediate cell of a diagonal transition.
// Both corner cells may be walls, in which case no 4-connected bridge
// exists and ok is false.
func (w *walker) viaCell(last, cell grid.Point) (grid.Point, bool) {
	via := grid.Point{X: cell.X, Y: last.Y}
	if w.g.Walkable(via.X, via.Y) {
		return via, true
	}
	via = grid.Point{X: last.X, Y: cell.Y}
	if w.g.Walkable(via.X, via.Y) {
		return via, true
	}

	return grid.Point{}, false
}

// appendCell extends the discrete path to cell, inserting one intermediate
// cell when a unit-length continuous move crossed a corner diagonally, so
// the recorded path stays 4-connected. step refuses diagonal transitions
// without a walkable corner cell, so the via lookup cannot fail here.
func (w *walker) appendCell(cell grid.Point) {
	last := w.cells[len(w.cells)-1]
	if cell == last {
		return
	}
	if cell.X != last.X && cell.Y != last.Y {
		if via, ok := w.viaCell(last, cell); ok {
			w.cells = append(w.cells, via)
		}
	}
	w.cells = append(w.cells, cell)
}

// finish bridges the discrete path onto the goal cell (the threshold may
// trip with the walker flooring up to two cells away) and enters Reached.
// The bridge runs through walkable cells only; when the goal is sealed
// off from the walker's cell the finish is refused and the walk goes on,
// terminating through the usual stuck or iteration-cap failure.
func (w *walker) finish() bool {
	last := w.cells[len(w.cells)-1]
	if last != w.g.Goal {
		bridge, ok := w.bridge(last)
		if !ok {
			return false
		}
		w.cells = append(w.cells, bridge...)
	}
	w.state = Reached

	return true
}

// bridge returns the shortest 4-connected walkable cell sequence from
// `from` (exclusive) to the goal, expanding neighbors in sorted order for
// determinism. A finite potential at `from` guarantees the goal is
// reachable; an infinite one proves it is not, and no expansion is spent.
func (w *walker) bridge(from grid.Point) ([]grid.Point, bool) {
	if math.IsInf(w.pot.At(from.X, from.Y), 1) {
		return nil, false
	}

	visited := map[grid.Point]bool{from: true}
	parent := make(map[grid.Point]grid.Point)
	queue := []grid.Point{from}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == w.g.Goal {
			var path []grid.Point
			for c := u; c != from; c = parent[c] {
				path = append(path, c)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}

			return path, true
		}
		nbrs := w.g.WalkableNeighbors(u)
		sort.Slice(nbrs, func(i, j int) bool { return nbrs[i].Less(nbrs[j]) })
		for _, v := range nbrs {
			if !visited[v] {
				visited[v] = true
				parent[v] = u
				queue = append(queue, v)
			}
		}
	}

	return nil, false
}

// trace snapshots the walker's accumulated statistics. Returned on success
// and on typed failure alike so callers can merge exploration counts.
func (w *walker) trace() *Trace {
	return &Trace{
		Path:       w.cells,
		Walk:       w.walk,
		Explored:   w.explored,
		Iterations: w.iter,
	}
}

// FindPath walks the gradient field from g.Start toward g.Goal and returns
// the resulting trace.
//
// On success the trace's Path is a 4-connected start→goal cell sequence.
// On failure the error is one of ErrStuckExhausted, ErrMaxIterations, or
// ctx.Err(); the partial trace is still returned for statistics merging.
// If start and goal coincide the walk succeeds immediately.
//
// ctx is checked once per iteration; a nil ctx means context.Background().
//
// Complexity: O(W×H) preprocessing + O(MaxIterations) walk.
func FindPath(ctx context.Context, g *grid.Grid, opts Options) (*Trace, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}

	for {
		select {
		case <-ctx.Done():
			w.state = Failed

			return w.trace(), ctx.Err()
		default:
		}

		if w.reached() && w.finish() {
			return w.trace(), nil
		}
		if w.iter >= w.opts.MaxIterations {
			w.state = Failed

			return w.trace(), ErrMaxIterations
		}
		if err = w.step(); err != nil {
			return w.trace(), err
		}
	}
}
