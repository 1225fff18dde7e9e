// Package mazesolving is a field-guided maze pathfinding engine: it routes
// between two cells of a 2D grid with impassable walls using a continuous
// potential/gradient field instead of classical graph search, and falls
// back to a guaranteed-complete deterministic ring search when the field
// method fails to converge.
//
// 🚀 What is in the box?
//
//	A small, focused library organized as one package per concern:
//		• grid/       — the maze model: cells, start/goal markers, walkability,
//		                vector helpers for continuous positions
//		• field/      — potential field (goal wavefront + Gaussian wall
//		                repulsion) and its bilinear-sampled gradient field
//		• descent/    — momentum-based gradient descent navigator with
//		                collision sliding, cycle detection and randomized
//		                escape mechanics
//		• ringsearch/ — complete fallback exploring Manhattan-distance rings
//		                in a fully deterministic order
//		• mazesolve/  — the orchestrator: primary attempt under a time
//		                budget, fallback on failure, merged statistics, and
//		                a pull-based step stream for visualization
//
// ✨ Why this shape?
//
//   - Field-following gives smooth trajectories and O(1) per-step cost,
//     at the price of local minima - the escape mechanism and the ring
//     fallback are load-bearing, not afterthoughts
//   - Every traversal is deterministic by construction (fixed neighbor
//     order, seeded RNG); reproducibility is a feature, not luck
//   - Results always carry exploration counts, elapsed time and the name
//     of the algorithm that answered - never a bare boolean
//
// Quick start:
//
//	g, _ := grid.FromRunes([]string{
//	    ".....",
//	    ".S...",
//	    "..#..",
//	    "...G.",
//	    ".....",
//	})
//	solver, _ := mazesolve.New(g, mazesolve.DefaultConfig())
//	res, _ := solver.FindPath(context.Background())
//	fmt.Println(res.Success, res.Algorithm, len(res.Path))
//
//	go get github.com/Darnix-a/maze-solving-algorithm
package mazesolving
