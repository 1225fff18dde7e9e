package mazesolve

import (
	"sort"

	"github.com/Darnix-a/maze-solving-algorithm/grid"
)

// StepOnce advances a simplified goal-directed discrete walk by one cell
// and reports it. This is NOT the gradient method and NOT the ring search:
// it is a third, intentionally simpler greedy algorithm for low-latency
// interactive single-stepping, and it carries no completeness guarantee.
//
// Move selection: the four axis moves are ordered by how much they reduce
// the remaining Manhattan distance to the goal (ties broken x-then-y), the
// two non-reducing moves trailing as a blocked-move fallback. The first
// walkable, not-yet-visited candidate wins; the visited set suppresses
// revisits. ok=false means the walk ended: either the goal was reached
// (Step.Reached) or every candidate is blocked or visited (Message
// "stuck").
//
// State persists across calls on the Solver; a fresh Solver starts a fresh
// walk from the grid's start cell.
//
// Complexity: O(1) per call.
func (s *Solver) StepOnce() (Step, bool) {
	if s.stepVisited == nil {
		s.stepPos = s.g.Start
		s.stepVisited = map[grid.Point]bool{s.g.Start: true}
	}
	if s.stepPos == s.g.Goal {
		return Step{Cell: s.stepPos, Position: s.stepPos.Vec(), Reached: true}, false
	}

	goal := s.g.Goal
	candidates := []grid.Point{
		{X: s.stepPos.X + 1, Y: s.stepPos.Y},
		{X: s.stepPos.X - 1, Y: s.stepPos.Y},
		{X: s.stepPos.X, Y: s.stepPos.Y + 1},
		{X: s.stepPos.X, Y: s.stepPos.Y - 1},
	}
	sort.Slice(candidates, func(i, j int) bool {
		di, dj := candidates[i].Manhattan(goal), candidates[j].Manhattan(goal)
		if di != dj {
			return di < dj
		}

		return candidates[i].Less(candidates[j])
	})

	for _, c := range candidates {
		if !s.g.Walkable(c.X, c.Y) || s.stepVisited[c] {
			continue
		}
		s.stepPos = c
		s.stepVisited[c] = true

		return Step{
			Cell:     c,
			Position: c.Vec(),
			Reached:  c == goal,
		}, c != goal
	}

	return Step{Cell: s.stepPos, Position: s.stepPos.Vec(), Message: "stuck"}, false
}
