// Package lpformat_test validates the canonical emitter and the round-trip
// guarantee Parse(Emit(m)) ≡ m (up to anonymous-row renaming, row order and
// like-term merging).
package lpformat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/lp"
	"github.com/katalvlaran/lvlopt/lpformat"
)

// mkMixedModel builds a model exercising every emitted statement class.
func mkMixedModel() *lp.Model {
	m := lp.NewModel(lpformat.ObjectiveName, lp.Max)
	m.SetVariable(lpformat.ObjectiveName, map[string]float64{"x": 3, "y": 2, "z": -1})
	m.SetVariable("cap", map[string]float64{"x": 1, "y": 1})
	m.SetConstraint("cap", lp.Constraint{Max: lp.Float(4)})
	m.SetVariable("mix", map[string]float64{"x": 1, "z": 2})
	m.SetConstraint("mix", lp.Constraint{Min: lp.Float(1), Max: lp.Float(6)})
	m.SetVariable("pin", map[string]float64{"y": 1, "z": 1})
	m.SetConstraint("pin", lp.Constraint{Equal: lp.Float(2)})
	m.SetConstraint("x", lp.Constraint{Max: lp.Float(10)}) // raw bound
	m.Ints["y"] = true
	m.Binaries["b"] = true
	m.SetVariable("useb", map[string]float64{"b": 1, "x": 1})
	m.SetConstraint("useb", lp.Constraint{Max: lp.Float(3)})
	m.Unrestricted["z"] = true

	return m
}

func TestEmit_CanonicalShape(t *testing.T) {
	lines := lpformat.Emit(mkMixedModel())

	assert.Equal(t, []string{
		"max: 3 x + 2 y - z;",
		"cap: x + y <= 4;",
		"mix: x + 2 z >= 1;",
		"mix: x + 2 z <= 6;",
		"pin: y + z = 2;",
		"useb: b + x <= 3;",
		"x <= 10;",
		"int y;",
		"bin b;",
		"free z;",
	}, lines)
}

func TestEmit_UnitAndNegativeCoefficients(t *testing.T) {
	m := lp.NewModel(lpformat.ObjectiveName, lp.Min)
	m.SetVariable(lpformat.ObjectiveName, map[string]float64{"a": -1, "b": 1, "c": -2.5})

	lines := lpformat.Emit(m)
	require.Len(t, lines, 1)
	assert.Equal(t, "min: -a + b - 2.5 c;", lines[0])
}

func TestRoundTrip_ParseEmitParse(t *testing.T) {
	original := mkMixedModel()

	reparsed, err := lpformat.Parse(lpformat.Emit(original))
	require.NoError(t, err)

	assert.Equal(t, original.OpType, reparsed.OpType)
	assert.Equal(t, original.Variables[original.Optimize], reparsed.Variables[reparsed.Optimize])
	assert.Equal(t, original.Constraints, reparsed.Constraints)
	assert.Equal(t, original.Ints, reparsed.Ints)
	assert.Equal(t, original.Binaries, reparsed.Binaries)
	assert.Equal(t, original.Unrestricted, reparsed.Unrestricted)

	for name, combo := range original.Variables {
		if name == original.Optimize {
			continue
		}
		assert.Equal(t, combo, reparsed.Variables[name], "row %q must survive the round trip", name)
	}
}

func TestRoundTrip_EmitIsStable(t *testing.T) {
	// Emitting the reparse of an emission must reproduce the exact lines:
	// the canonical form is a fixed point.
	first := lpformat.Emit(mkMixedModel())

	reparsed, err := lpformat.Parse(first)
	require.NoError(t, err)

	assert.Equal(t, first, lpformat.Emit(reparsed))
}

func TestRoundTrip_AnonymousRows(t *testing.T) {
	m, err := lpformat.Parse([]string{
		"min: x + y;",
		"x + 2y >= 2;",
		"3x + y >= 3;",
	})
	require.NoError(t, err)

	// Anonymous rows were renamed deterministically.
	assert.Contains(t, m.Variables, "R_1")
	assert.Contains(t, m.Variables, "R_2")

	again, err := lpformat.Parse(lpformat.Emit(m))
	require.NoError(t, err)
	assert.Equal(t, m.Variables, again.Variables)
	assert.Equal(t, m.Constraints, again.Constraints)
}
