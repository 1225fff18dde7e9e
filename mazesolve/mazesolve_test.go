package mazesolve_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Darnix-a/maze-solving-algorithm/descent"
	"github.com/Darnix-a/maze-solving-algorithm/field"
	"github.com/Darnix-a/maze-solving-algorithm/grid"
	"github.com/Darnix-a/maze-solving-algorithm/mazesolve"
)

func mustGrid(t *testing.T, rows []string) *grid.Grid {
	t.Helper()
	g, err := grid.FromRunes(rows)
	require.NoError(t, err)

	return g
}

func openGrid(t *testing.T) *grid.Grid {
	t.Helper()

	return mustGrid(t, []string{
		".....",
		".S...",
		".....",
		"...G.",
		".....",
	})
}

func walledGrid(t *testing.T) *grid.Grid {
	t.Helper()

	return mustGrid(t, []string{
		".....",
		".S...",
		"#####",
		"...G.",
		".....",
	})
}

// corridorGrid is long enough that a navigator capped at 100 iterations
// cannot cross it, while the fallback can.
func corridorGrid(t *testing.T) *grid.Grid {
	t.Helper()
	row := "#.S" + strings.Repeat(".", 110) + "G" + strings.Repeat(".", 6) + "#"
	open := "#" + strings.Repeat(".", len(row)-2) + "#"

	return mustGrid(t, []string{
		strings.Repeat("#", len(row)),
		open,
		row,
		open,
		strings.Repeat("#", len(row)),
	})
}

func requireValidPath(t *testing.T, g *grid.Grid, p []grid.Point) {
	t.Helper()
	require.NotEmpty(t, p)
	require.Equal(t, g.Start, p[0])
	require.Equal(t, g.Goal, p[len(p)-1])
	for i, c := range p {
		require.Truef(t, g.Walkable(c.X, c.Y), "path cell %v is not walkable", c)
		if i > 0 {
			require.Equalf(t, 1, p[i-1].Manhattan(c),
				"path cells %v and %v are not 4-adjacent", p[i-1], c)
		}
	}
}

// TestFindPath_PrimarySucceeds solves an open grid via gradient descent
// alone; the fallback never runs.
func TestFindPath_PrimarySucceeds(t *testing.T) {
	g := openGrid(t)
	cfg := mazesolve.DefaultConfig()
	cfg.EnableRandomness = false

	s, err := mazesolve.New(g, cfg)
	require.NoError(t, err)

	res, err := s.FindPath(context.Background())
	require.NoError(t, err)
	require.True(t, res.Success)
	require.False(t, res.UsedFallback)
	require.Equal(t, "momentum gradient descent", res.Algorithm)
	requireValidPath(t, g, res.Path)
	require.Greater(t, res.Explored, 0)
	require.Greater(t, res.MemoryBytes, int64(0))
}

// TestFindPath_FallbackFindsPath caps the navigator below the corridor
// length; the ring search completes the solve and is credited for it.
func TestFindPath_FallbackFindsPath(t *testing.T) {
	g := corridorGrid(t)
	cfg := mazesolve.DefaultConfig()
	cfg.EnableRandomness = false
	cfg.MaxIterations = 100

	s, err := mazesolve.New(g, cfg)
	require.NoError(t, err)

	res, err := s.FindPath(context.Background())
	require.NoError(t, err)
	require.True(t, res.Success)
	require.True(t, res.UsedFallback)
	require.Equal(t, "ring search (fallback)", res.Algorithm)
	requireValidPath(t, g, res.Path)
}

// TestFindPath_NoPath verifies the both-phases-fail contract: a populated
// failure Result, never an error.
func TestFindPath_NoPath(t *testing.T) {
	g := walledGrid(t)
	cfg := mazesolve.DefaultConfig()
	cfg.EnableRandomness = false

	s, err := mazesolve.New(g, cfg)
	require.NoError(t, err)

	res, err := s.FindPath(context.Background())
	require.NoError(t, err)
	require.False(t, res.Success)
	require.True(t, res.UsedFallback)
	require.Empty(t, res.Path)
	require.Zero(t, res.Frontier)
	// navigator explored the start cell, the fallback the 10-cell component
	require.Equal(t, 11, res.Explored)
}

// TestFindPath_MergeStatsOff reports only the fallback's explored count.
func TestFindPath_MergeStatsOff(t *testing.T) {
	g := walledGrid(t)
	cfg := mazesolve.DefaultConfig()
	cfg.EnableRandomness = false
	cfg.MergeStats = false

	s, err := mazesolve.New(g, cfg)
	require.NoError(t, err)

	res, err := s.FindPath(context.Background())
	require.NoError(t, err)
	require.Equal(t, 10, res.Explored)
}

// TestFindPath_FallbackDisabled keeps the failure attributed to the
// navigator and skips the ring search entirely.
func TestFindPath_FallbackDisabled(t *testing.T) {
	g := walledGrid(t)
	cfg := mazesolve.DefaultConfig()
	cfg.EnableRandomness = false
	cfg.EnableFallback = false

	s, err := mazesolve.New(g, cfg)
	require.NoError(t, err)

	res, err := s.FindPath(context.Background())
	require.NoError(t, err)
	require.False(t, res.Success)
	require.False(t, res.UsedFallback)
	require.Equal(t, "momentum gradient descent", res.Algorithm)
	require.Equal(t, 1, res.Explored)
}

// TestFindPath_StartEqualsGoal succeeds immediately.
func TestFindPath_StartEqualsGoal(t *testing.T) {
	g := openGrid(t)
	g.Goal = g.Start

	s, err := mazesolve.New(g, mazesolve.DefaultConfig())
	require.NoError(t, err)

	res, err := s.FindPath(context.Background())
	require.NoError(t, err)
	require.True(t, res.Success)
	require.LessOrEqual(t, len(res.Path), 2)
}

// TestFindPath_ContextCancel surfaces the caller's cancellation as an
// error rather than a failure Result.
func TestFindPath_ContextCancel(t *testing.T) {
	s, err := mazesolve.New(openGrid(t), mazesolve.DefaultConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.FindPath(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

// TestNew_ConfigValidation verifies that every malformed option is
// rejected at construction with its originating sentinel.
func TestNew_ConfigValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*mazesolve.Config)
		err    error
	}{
		{"Momentum", func(c *mazesolve.Config) { c.MomentumFactor = 1.0 }, descent.ErrMomentumRange},
		{"Iterations", func(c *mazesolve.Config) { c.MaxIterations = 10 }, descent.ErrIterationRange},
		{"Threshold", func(c *mazesolve.Config) { c.GoalThreshold = 3.0 }, descent.ErrThresholdRange},
		{"Sigma", func(c *mazesolve.Config) { c.RepulsionSigma = 0.2 }, field.ErrSigmaRange},
		{"Strength", func(c *mazesolve.Config) { c.RepulsionStrength = 25 }, field.ErrStrengthRange},
		{"Timeout", func(c *mazesolve.Config) { c.PrimaryTimeout = -time.Second }, mazesolve.ErrTimeoutRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := mazesolve.DefaultConfig()
			tc.mutate(&cfg)
			_, err := mazesolve.New(openGrid(t), cfg)
			require.ErrorIs(t, err, tc.err)
		})
	}

	_, err := mazesolve.New(nil, mazesolve.DefaultConfig())
	require.ErrorIs(t, err, mazesolve.ErrNilGrid)
}

//----------------------------------------------------------------------------//
// Step Stream Tests
//----------------------------------------------------------------------------//

func drain(t *testing.T, st *mazesolve.Stepper) []mazesolve.Step {
	t.Helper()
	var steps []mazesolve.Step
	for {
		s, ok := st.Next()
		if !ok {
			return steps
		}
		steps = append(steps, s)
		require.Less(t, len(steps), 10000, "stepper did not terminate")
	}
}

// TestSteps_PrimaryOnly streams an open-grid solve: primary steps only,
// the potential attached once on the first, the last step reaching the
// goal.
func TestSteps_PrimaryOnly(t *testing.T) {
	g := openGrid(t)
	cfg := mazesolve.DefaultConfig()
	cfg.EnableRandomness = false

	s, err := mazesolve.New(g, cfg)
	require.NoError(t, err)

	steps := drain(t, s.Steps())
	require.NotEmpty(t, steps)
	require.NotNil(t, steps[0].Potential)
	for i, step := range steps {
		require.Equal(t, mazesolve.PhasePrimary, step.Phase)
		if i > 0 {
			require.Nil(t, step.Potential)
		}
	}

	last := steps[len(steps)-1]
	require.True(t, last.Reached)
	require.Equal(t, g.Goal, last.PathSoFar[len(last.PathSoFar)-1])
}

// TestSteps_FullCascade streams a separated maze: primary steps, one
// transition marker, the fallback's ten cells, and one closing step.
func TestSteps_FullCascade(t *testing.T) {
	g := walledGrid(t)
	cfg := mazesolve.DefaultConfig()
	cfg.EnableRandomness = false

	s, err := mazesolve.New(g, cfg)
	require.NoError(t, err)

	steps := drain(t, s.Steps())

	var primary, transition, fallback, final int
	prev := mazesolve.PhasePrimary
	for _, step := range steps {
		require.GreaterOrEqual(t, int(step.Phase), int(prev), "phases must not regress")
		prev = step.Phase
		switch step.Phase {
		case mazesolve.PhasePrimary:
			primary++
		case mazesolve.PhaseTransition:
			transition++
			require.Contains(t, step.Message, "falling back")
		case mazesolve.PhaseFallback:
			fallback++
			require.False(t, step.Reached)
		case mazesolve.PhaseFinal:
			final++
			require.Contains(t, step.Message, "no path")
		}
	}
	require.Greater(t, primary, 0)
	require.Equal(t, 1, transition)
	require.Equal(t, 10, fallback)
	require.Equal(t, 1, final)
}

// TestSteps_FallbackReaches streams the capped corridor: the stream ends
// on a fallback step that reached the goal and carries the full path.
func TestSteps_FallbackReaches(t *testing.T) {
	g := corridorGrid(t)
	cfg := mazesolve.DefaultConfig()
	cfg.EnableRandomness = false
	cfg.MaxIterations = 100

	s, err := mazesolve.New(g, cfg)
	require.NoError(t, err)

	steps := drain(t, s.Steps())
	require.NotEmpty(t, steps)

	last := steps[len(steps)-1]
	require.Equal(t, mazesolve.PhaseFallback, last.Phase)
	require.True(t, last.Reached)
	requireValidPath(t, g, last.PathSoFar)
}

// TestSteps_FallbackDisabled closes with the final marker right after the
// navigator gives up.
func TestSteps_FallbackDisabled(t *testing.T) {
	g := walledGrid(t)
	cfg := mazesolve.DefaultConfig()
	cfg.EnableRandomness = false
	cfg.EnableFallback = false

	s, err := mazesolve.New(g, cfg)
	require.NoError(t, err)

	steps := drain(t, s.Steps())
	require.NotEmpty(t, steps)
	require.Equal(t, mazesolve.PhaseFinal, steps[len(steps)-1].Phase)
	for _, step := range steps[:len(steps)-1] {
		require.Equal(t, mazesolve.PhasePrimary, step.Phase)
	}
}

//----------------------------------------------------------------------------//
// Interactive Single-Step Tests
//----------------------------------------------------------------------------//

// TestStepOnce_ReachesGoal walks the greedy stepper to the goal on an
// open grid; each move reduces or maintains progress toward the goal.
func TestStepOnce_ReachesGoal(t *testing.T) {
	g := openGrid(t)
	s, err := mazesolve.New(g, mazesolve.DefaultConfig())
	require.NoError(t, err)

	var last mazesolve.Step
	for i := 0; ; i++ {
		require.Less(t, i, g.Width*g.Height, "greedy walk did not terminate")
		step, more := s.StepOnce()
		last = step
		if !more {
			break
		}
		require.True(t, g.Walkable(step.Cell.X, step.Cell.Y))
	}

	require.True(t, last.Reached)
	require.Equal(t, g.Goal, last.Cell)
}

// TestStepOnce_Stuck reports a stuck marker when every neighbor is
// blocked; the greedy walk makes no completeness promise.
func TestStepOnce_Stuck(t *testing.T) {
	g := mustGrid(t, []string{
		".....",
		".###.",
		".#S#.",
		".###.",
		"....G",
	})
	s, err := mazesolve.New(g, mazesolve.DefaultConfig())
	require.NoError(t, err)

	step, more := s.StepOnce()
	require.False(t, more)
	require.False(t, step.Reached)
	require.Equal(t, "stuck", step.Message)
}

// TestStepOnce_StartEqualsGoal reports immediate arrival.
func TestStepOnce_StartEqualsGoal(t *testing.T) {
	g := openGrid(t)
	g.Goal = g.Start

	s, err := mazesolve.New(g, mazesolve.DefaultConfig())
	require.NoError(t, err)

	step, more := s.StepOnce()
	require.False(t, more)
	require.True(t, step.Reached)
	require.Equal(t, g.Start, step.Cell)
}
