package descent_test

import (
	"context"
	"strings"
	"testing"

	"github.com/Darnix-a/maze-solving-algorithm/descent"
	"github.com/Darnix-a/maze-solving-algorithm/field"
	"github.com/Darnix-a/maze-solving-algorithm/grid"
)

// benchGrid builds an open n×n grid with start and goal on the main
// diagonal, six cells clear of the walls so no wall repulsion perturbs
// the endpoints.
func benchGrid(b *testing.B, n int) *grid.Grid {
	b.Helper()
	rows := make([]string, n)
	border := strings.Repeat("#", n)
	rows[0], rows[n-1] = border, border
	open := "#" + strings.Repeat(".", n-2) + "#"
	for y := 1; y < n-1; y++ {
		rows[y] = open
	}
	rows[6] = open[:6] + "S" + open[7:]
	rows[n-7] = open[:n-7] + "G" + open[n-6:]

	g, err := grid.FromRunes(rows)
	if err != nil {
		b.Fatalf("setup grid failed: %v", err)
	}

	return g
}

// benchmarkFindPath measures a full navigator run, field construction
// included, on an open n×n grid. The widened goal threshold guarantees
// the fixed-length steps cannot orbit the goal.
func benchmarkFindPath(b *testing.B, n int) {
	g := benchGrid(b, n)
	opts := descent.DefaultOptions()
	opts.EnableRandomness = false
	opts.GoalThreshold = 1.0
	opts.MaxIterations = 5000
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := descent.FindPath(ctx, g, opts); err != nil {
			b.Fatalf("FindPath failed: %v", err)
		}
	}
}

func BenchmarkFindPath_Small(b *testing.B)  { benchmarkFindPath(b, 50) }
func BenchmarkFindPath_Medium(b *testing.B) { benchmarkFindPath(b, 200) }

// BenchmarkBuildFields isolates the preprocessing cost: wavefront plus
// repulsion plus gradient derivation over a 500×500 grid.
func BenchmarkBuildFields(b *testing.B) {
	g := benchGrid(b, 500)
	opts := field.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pot, err := field.Build(g, opts)
		if err != nil {
			b.Fatalf("Build failed: %v", err)
		}
		_ = field.Gradient(pot, g)
	}
}
