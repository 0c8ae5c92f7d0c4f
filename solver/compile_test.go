// Internal tests for model → engine compilation: column discovery order,
// direction flip, domain lowering.
package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/lp"
	"github.com/katalvlaran/lvlopt/simplex"
)

func TestCompile_ColumnOrderIsDeterministic(t *testing.T) {
	m := lp.NewModel("obj", lp.Min)
	m.SetVariable("obj", map[string]float64{"b": 1, "a": 2})
	m.SetVariable("row", map[string]float64{"c": 1, "a": 1})
	m.SetConstraint("row", lp.Constraint{Max: lp.Float(4)})

	var i int
	for i = 0; i < 5; i++ {
		c := compile(m)
		// Objective terms (sorted) first, then row terms by constraint name.
		assert.Equal(t, []string{"a", "b", "c"}, c.names)
		assert.Equal(t, []float64{2, 1, 0}, c.prob.Cost)
	}
}

func TestCompile_MaximizationNegatesCosts(t *testing.T) {
	m := lp.NewModel("obj", lp.Max)
	m.SetVariable("obj", map[string]float64{"x": 3})

	c := compile(m)
	assert.Equal(t, []float64{-3}, c.prob.Cost)
	assert.True(t, c.maximize)
}

func TestCompile_BinaryLowering(t *testing.T) {
	m := lp.NewModel("obj", lp.Max)
	m.SetVariable("obj", map[string]float64{"b": 1})
	m.Binaries["b"] = true

	c := compile(m)
	require.Len(t, c.prob.Rows, 1, "binary adds exactly the x ≤ 1 cap")
	assert.Equal(t, simplex.LE, c.prob.Rows[0].Rel)
	assert.Equal(t, 1.0, c.prob.Rows[0].RHS)
	assert.True(t, c.prob.Integer[0])
}

func TestCompile_UnrestrictedSplit(t *testing.T) {
	m := lp.NewModel("obj", lp.Min)
	m.SetVariable("obj", map[string]float64{"x": 2})
	m.SetConstraint("x", lp.Constraint{Min: lp.Float(-7)})
	m.Unrestricted["x"] = true

	c := compile(m)
	require.Equal(t, 2, c.prob.NumCols(), "x splits into x⁺ and x⁻")
	assert.Equal(t, []float64{2, -2}, c.prob.Cost)

	// The bound row mirrors the split: x⁺ − x⁻ ≥ −7.
	require.Len(t, c.prob.Rows, 1)
	assert.Equal(t, []float64{1, -1}, c.prob.Rows[0].Coef)

	// Reading the value folds the companions back together.
	assert.Equal(t, -3.0, c.value([]float64{4, 7}, "x"))
}

func TestCompile_RawConstraintMintsColumn(t *testing.T) {
	m := lp.NewModel("obj", lp.Min)
	m.SetVariable("obj", map[string]float64{"x": 1})
	m.SetConstraint("y", lp.Constraint{Min: lp.Float(2)}) // y appears nowhere else

	c := compile(m)
	assert.Equal(t, []string{"x", "y"}, c.names)
	require.Len(t, c.prob.Rows, 1)
	assert.Equal(t, []float64{0, 1}, c.prob.Rows[0].Coef)
}

func TestCompile_MinMaxRecordEmitsTwoRows(t *testing.T) {
	m := lp.NewModel("obj", lp.Min)
	m.SetVariable("obj", map[string]float64{"x": 1})
	m.SetVariable("r", map[string]float64{"x": 1})
	m.SetConstraint("r", lp.Constraint{Min: lp.Float(1), Max: lp.Float(5)})

	c := compile(m)
	require.Len(t, c.prob.Rows, 2)
	assert.Equal(t, simplex.GE, c.prob.Rows[0].Rel)
	assert.Equal(t, simplex.LE, c.prob.Rows[1].Rel)
}
