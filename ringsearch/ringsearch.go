package ringsearch

import (
	"fmt"
	"sort"

	"github.com/Darnix-a/maze-solving-algorithm/grid"
)

// search encapsulates the ephemeral ring-search state: the visited set,
// current and next ring frontiers, the ring distance counter, and the
// parent map for path reconstruction. Created per invocation, discarded
// after - no state survives between runs, which is what makes repeated
// searches deterministic regardless of prior solver activity.
type search struct {
	g    *grid.Grid
	opts Options

	visited map[grid.Point]bool
	parent  map[grid.Point]grid.Point
	order   []grid.Point

	current []grid.Point
	next    []grid.Point
	idx     int
	dist    int

	found bool
	path  []grid.Point
}

func newSearch(g *grid.Grid, opts ...Option) (*search, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &search{
		g:       g,
		opts:    o,
		visited: make(map[grid.Point]bool, g.Width*g.Height),
		parent:  make(map[grid.Point]grid.Point),
	}
	for _, p := range o.SeedVisited {
		s.visited[p] = true
	}
	if !s.visited[g.Start] {
		s.visited[g.Start] = true
	}
	s.order = append(s.order, g.Start)
	s.current = []grid.Point{g.Start}

	return s, nil
}

// exhausted reports whether both rings are empty.
func (s *search) exhausted() bool {
	return s.idx >= len(s.current) && len(s.next) == 0
}

// processOne dequeues and expands exactly one cell, advancing the ring
// when the current one is drained. Callers must check exhausted() first.
// Returns the dequeued cell; s.found flips when the goal is dequeued.
func (s *search) processOne() (grid.Point, error) {
	if s.idx >= len(s.current) {
		s.advanceRing()
	}
	u := s.current[s.idx]
	s.idx++

	if err := s.opts.OnVisit(u, s.dist); err != nil {
		return u, fmt.Errorf("ringsearch: OnVisit error at %v: %w", u, err)
	}
	if u == s.g.Goal {
		s.found = true
		s.path = s.reconstruct(u)

		return u, nil
	}
	s.expand(u)

	return u, nil
}

// expand discovers the unvisited walkable neighbors of u in sorted
// x-then-y order. Neighbors at Manhattan distance dist+1 from the start
// join the next ring; any other undiscovered neighbor (a same-distance tie
// or a wrap-around behind an obstacle) is re-admitted to the current ring
// so completeness holds even off the ideal ring structure.
func (s *search) expand(u grid.Point) {
	nbrs := s.g.WalkableNeighbors(u)
	sort.Slice(nbrs, func(i, j int) bool { return nbrs[i].Less(nbrs[j]) })

	for _, v := range nbrs {
		if s.visited[v] {
			continue
		}
		s.visited[v] = true
		s.parent[v] = u
		s.order = append(s.order, v)
		if s.g.Start.Manhattan(v) == s.dist+1 {
			s.next = append(s.next, v)
		} else {
			s.current = append(s.current, v)
		}
	}
}

// advanceRing promotes the next ring: currentRing ← sorted(nextRing),
// nextRing ← empty, distance += 1.
func (s *search) advanceRing() {
	sort.Slice(s.next, func(i, j int) bool { return s.next[i].Less(s.next[j]) })
	s.current, s.next = s.next, nil
	s.idx = 0
	s.dist++
}

// reconstruct walks the parent map from goal back to start and reverses.
func (s *search) reconstruct(goal grid.Point) []grid.Point {
	path := []grid.Point{goal}
	for cur := goal; cur != s.g.Start; {
		cur = s.parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// frontierLen counts discovered-but-unexpanded cells.
func (s *search) frontierLen() int {
	return (len(s.current) - s.idx) + len(s.next)
}

// result snapshots the search outcome.
func (s *search) result() *Result {
	return &Result{
		Path:     s.path,
		Explored: len(s.visited),
		Frontier: s.frontierLen(),
		Distance: s.dist,
		Found:    s.found,
	}
}

// Find runs the ring search on g from start to goal.
//
// Returns a Result with Found=true and a non-empty 4-connected path if and
// only if the goal is reachable; otherwise Found=false, an empty path, and
// ErrNoPath. The Result is returned in both cases so callers can always
// report exploration statistics.
//
// Deterministic regardless of invocation order or prior navigator state.
//
// Complexity: O(R log R) time for ring sorting over R reachable cells
// (O(R) in practice for grid rings), O(R) memory.
func Find(g *grid.Grid, opts ...Option) (*Result, error) {
	s, err := newSearch(g, opts...)
	if err != nil {
		return nil, err
	}

	for !s.exhausted() {
		// cancellation check (once per processed cell)
		select {
		case <-s.opts.Ctx.Done():
			return s.result(), s.opts.Ctx.Err()
		default:
		}

		if _, err = s.processOne(); err != nil {
			return s.result(), err
		}
		if s.found {
			return s.result(), nil
		}
	}

	return s.result(), ErrNoPath
}
