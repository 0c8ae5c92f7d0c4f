// Package simplex_test validates the two-phase engine.
// Focus:
//  1. Correct optima on tiny LPs across all three relations.
//  2. In-band verdicts: Infeasible (Phase I residual), Unbounded.
//  3. Cycling governance on Beale's canonical example: ExitOnCycles=false
//     must reach the optimum (−0.05); the default policy may stop early
//     with Cycled but must never loop forever.
//  4. Deadline behavior (TimedOut) without panics.
//  5. Determinism: identical pivots across repeated runs.
package simplex_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/simplex"
)

// solveMax flips a maximization into the engine's minimization convention
// and returns (status, x, zMax).
func solveMax(t *testing.T, cost []float64, rows []simplex.Row, opts simplex.Options) (simplex.Status, []float64, float64) {
	t.Helper()

	neg := make([]float64, len(cost))
	for i, c := range cost {
		neg[i] = -c
	}
	res, err := simplex.Solve(&simplex.Problem{Cost: neg, Rows: rows}, opts)
	require.NoError(t, err)

	return res.Status, res.X, -res.Z
}

func TestSolve_MaxOverPolytope(t *testing.T) {
	// maximize x + y
	// s.t. x + 2y ≤ 14, 3x − y ≥ 0, x − y ≤ 2, x,y ≥ 0.
	// The optimum sits on the x+2y and x−y facets: (6, 4), z = 10.
	rows := []simplex.Row{
		{Coef: []float64{1, 2}, Rel: simplex.LE, RHS: 14},
		{Coef: []float64{3, -1}, Rel: simplex.GE, RHS: 0},
		{Coef: []float64{1, -1}, Rel: simplex.LE, RHS: 2},
	}
	st, x, z := solveMax(t, []float64{1, 1}, rows, simplex.DefaultOptions())

	assert.Equal(t, simplex.Optimal, st)
	assert.InDelta(t, 10, z, 1e-6)
	assert.InDelta(t, 6, x[0], 1e-6)
	assert.InDelta(t, 4, x[1], 1e-6)
}

func TestSolve_EqualityRow(t *testing.T) {
	// minimize x + y s.t. x + y = 10, x ≥ 3, y ≥ 4 → z = 10.
	p := &simplex.Problem{
		Cost: []float64{1, 1},
		Rows: []simplex.Row{
			{Coef: []float64{1, 1}, Rel: simplex.EQ, RHS: 10},
			{Coef: []float64{1, 0}, Rel: simplex.GE, RHS: 3},
			{Coef: []float64{0, 1}, Rel: simplex.GE, RHS: 4},
		},
	}
	res, err := simplex.Solve(p, simplex.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, simplex.Optimal, res.Status)
	assert.InDelta(t, 10, res.Z, 1e-9)
	assert.InDelta(t, 10, res.X[0]+res.X[1], 1e-9)
	assert.GreaterOrEqual(t, res.X[0], 3.0-1e-9)
	assert.GreaterOrEqual(t, res.X[1], 4.0-1e-9)
}

func TestSolve_Infeasible(t *testing.T) {
	// x ≤ 1 and x ≥ 2 cannot hold together; Phase I must report it.
	p := &simplex.Problem{
		Cost: []float64{1},
		Rows: []simplex.Row{
			{Coef: []float64{1}, Rel: simplex.LE, RHS: 1},
			{Coef: []float64{1}, Rel: simplex.GE, RHS: 2},
		},
	}
	res, err := simplex.Solve(p, simplex.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, simplex.Infeasible, res.Status)
}

func TestSolve_Unbounded(t *testing.T) {
	// maximize x s.t. x − y ≤ 1: pushing y frees x without limit.
	rows := []simplex.Row{
		{Coef: []float64{1, -1}, Rel: simplex.LE, RHS: 1},
	}
	st, _, _ := solveMax(t, []float64{1, 0}, rows, simplex.DefaultOptions())

	assert.Equal(t, simplex.Unbounded, st)
}

// bealeProblem is the canonical cycling LP (Beale, 1955):
//
//	minimize −0.75 x1 + 150 x2 − 0.02 x3 + 6 x4
//	s.t. 0.25 x1 − 60 x2 − 0.04 x3 + 9 x4 ≤ 0
//	     0.50 x1 − 90 x2 − 0.02 x3 + 3 x4 ≤ 0
//	     x3 ≤ 1,  x ≥ 0.
//
// Optimum: z = −0.05 (x3 = 1 with the degenerate rows resolved).
func bealeProblem() *simplex.Problem {
	return &simplex.Problem{
		Cost: []float64{-0.75, 150, -0.02, 6},
		Rows: []simplex.Row{
			{Coef: []float64{0.25, -60, -0.04, 9}, Rel: simplex.LE, RHS: 0},
			{Coef: []float64{0.5, -90, -0.02, 3}, Rel: simplex.LE, RHS: 0},
			{Coef: []float64{0, 0, 1, 0}, Rel: simplex.LE, RHS: 1},
		},
	}
}

func TestSolve_BealeBlandFallbackReachesOptimum(t *testing.T) {
	opts := simplex.DefaultOptions()
	opts.ExitOnCycles = false

	res, err := simplex.Solve(bealeProblem(), opts)
	require.NoError(t, err)

	require.Equal(t, simplex.Optimal, res.Status)
	assert.InDelta(t, -0.05, res.Z, 1e-9)
}

func TestSolve_BealeDefaultPolicyTerminates(t *testing.T) {
	// With the default ExitOnCycles the engine may stop with Cycled or
	// reach the optimum outright — but it must terminate and stay feasible.
	res, err := simplex.Solve(bealeProblem(), simplex.DefaultOptions())
	require.NoError(t, err)

	switch res.Status {
	case simplex.Optimal:
		assert.InDelta(t, -0.05, res.Z, 1e-9)
	case simplex.Cycled:
		assert.LessOrEqual(t, res.Z, 0.0, "best basis seen cannot be worse than the start")
	default:
		t.Fatalf("unexpected status %v", res.Status)
	}
}

func TestSolve_DeadlineExpires(t *testing.T) {
	opts := simplex.DefaultOptions()
	opts.Deadline = time.Now().Add(-time.Second) // already expired

	res, err := simplex.Solve(bealeProblem(), opts)
	require.NoError(t, err)

	assert.Equal(t, simplex.TimedOut, res.Status)
}

func TestSolve_Deterministic(t *testing.T) {
	var (
		first simplex.Result
		i     int
	)
	for i = 0; i < 3; i++ {
		res, err := simplex.Solve(bealeProblem(), simplex.DefaultOptions())
		require.NoError(t, err)
		if i == 0 {
			first = res

			continue
		}
		assert.Equal(t, first.Status, res.Status)
		assert.Equal(t, first.Iterations, res.Iterations)
		assert.Equal(t, first.X, res.X)
	}
}

func TestSolve_NoConstraints(t *testing.T) {
	// Non-negative costs over x ≥ 0: the origin is optimal.
	res, err := simplex.Solve(&simplex.Problem{Cost: []float64{2, 3}}, simplex.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, simplex.Optimal, res.Status)
	assert.InDelta(t, 0, res.Z, 1e-12)

	// A negative cost with nothing blocking it is unbounded.
	res, err = simplex.Solve(&simplex.Problem{Cost: []float64{-1}}, simplex.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, simplex.Unbounded, res.Status)
}
