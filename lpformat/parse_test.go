// Package lpformat_test validates the statement parser.
// Focus:
//  1. Objective, named/anonymous rows, raw bounds, declarations.
//  2. Term syntax: omitted coefficients, sign binding, '*', exponents.
//  3. Operator aliases (<, >, =<, =>).
//  4. Comments and multi-statement lines.
//  5. ParseError positions and kinds (UnknownDirective in particular).
package lpformat_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/lp"
	"github.com/katalvlaran/lvlopt/lpformat"
)

func TestParse_SmallModel(t *testing.T) {
	m, err := lpformat.Parse([]string{
		"// a production planning toy",
		"max: 3x + 2y;",
		"cap: x + y <= 4;",
		"x + 3y <= 6;",
		"y >= 1;",
		"int x;",
	})
	require.NoError(t, err)

	assert.Equal(t, lp.Max, m.OpType)
	assert.Equal(t, lpformat.ObjectiveName, m.Optimize)
	assert.Equal(t, map[string]float64{"x": 3, "y": 2}, m.Variables[lpformat.ObjectiveName])

	assert.Equal(t, map[string]float64{"x": 1, "y": 1}, m.Variables["cap"])
	require.NotNil(t, m.Constraints["cap"].Max)
	assert.Equal(t, 4.0, *m.Constraints["cap"].Max)

	// The anonymous row was named R_1 in textual order.
	assert.Equal(t, map[string]float64{"x": 1, "y": 3}, m.Variables["R_1"])
	require.NotNil(t, m.Constraints["R_1"].Max)
	assert.Equal(t, 6.0, *m.Constraints["R_1"].Max)

	// "y >= 1" is a raw bound: no definition, a direct constraint record.
	_, defined := m.Variables["y"]
	assert.False(t, defined)
	require.NotNil(t, m.Constraints["y"].Min)
	assert.Equal(t, 1.0, *m.Constraints["y"].Min)

	assert.True(t, m.Ints["x"])
}

func TestParse_TermSyntax(t *testing.T) {
	m, err := lpformat.Parse([]string{
		"min: +x - y + 2*z - 1.5w + 3e2v;",
		"r: x - -y >= 0;",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{
		"x": 1, "y": -1, "z": 2, "w": -1.5, "v": 300,
	}, m.Variables[lpformat.ObjectiveName])

	// A doubled sign flips back: x − (−y) = x + y.
	assert.Equal(t, map[string]float64{"x": 1, "y": 1}, m.Variables["r"])
}

func TestParse_RepeatedTermsMerge(t *testing.T) {
	m, err := lpformat.Parse([]string{
		"min: 2x + 3x;",
		"r: x + x <= 8;",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{"x": 5}, m.Variables[lpformat.ObjectiveName])
	assert.Equal(t, map[string]float64{"x": 2}, m.Variables["r"])
}

func TestParse_OperatorAliases(t *testing.T) {
	m, err := lpformat.Parse([]string{
		"min: x + y;",
		"a: x + y < 4;",
		"b: x + y > 1;",
		"c: x - y =< 2;",
		"d: x - y => 0;",
	})
	require.NoError(t, err)

	assert.NotNil(t, m.Constraints["a"].Max)
	assert.NotNil(t, m.Constraints["b"].Min)
	assert.NotNil(t, m.Constraints["c"].Max)
	assert.NotNil(t, m.Constraints["d"].Min)
}

func TestParse_ConstantsMoveRight(t *testing.T) {
	// x + 1 ≤ y + 4 normalizes to x − y ≤ 3.
	m, err := lpformat.Parse([]string{
		"min: x;",
		"r: x + 1 <= y + 4;",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{"x": 1, "y": -1}, m.Variables["r"])
	require.NotNil(t, m.Constraints["r"].Max)
	assert.Equal(t, 3.0, *m.Constraints["r"].Max)
}

func TestParse_MultiStatementLine(t *testing.T) {
	m, err := lpformat.Parse([]string{"min: x; x >= 2; int x;"})
	require.NoError(t, err)

	require.NotNil(t, m.Constraints["x"].Min, "unit single-variable row is a raw bound")
	assert.Equal(t, 2.0, *m.Constraints["x"].Min)
	assert.True(t, m.Ints["x"])
	assert.NotContains(t, m.Variables, "x", "raw bounds do not mint a row definition")
}

func TestParse_DeclarationLists(t *testing.T) {
	m, err := lpformat.Parse([]string{
		"max: a + b + c;",
		"bin a, b;",
		"free c;",
	})
	require.NoError(t, err)

	assert.True(t, m.Binaries["a"])
	assert.True(t, m.Binaries["b"])
	assert.True(t, m.Unrestricted["c"])
}

func TestParse_UnknownDirective(t *testing.T) {
	_, err := lpformat.Parse([]string{
		"min: x;",
		"sos1 x;",
	})

	var perr *lpformat.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, lpformat.KindUnknownDirective, perr.Kind)
	assert.Equal(t, 2, perr.Line)
}

func TestParse_ErrorPositions(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		kind  lpformat.Kind
		line  int
	}{
		{"missing operator", []string{"min: x;", "r: x + y"}, lpformat.KindSyntax, 2},
		{"dangling sign", []string{"min: x +;"}, lpformat.KindSyntax, 1},
		{"duplicate objective", []string{"min: x;", "max: x;"}, lpformat.KindDuplicateObjective, 2},
		{"no objective", []string{"r: x >= 1;"}, lpformat.KindMissingObjective, 1},
		{"empty declaration", []string{"min: x;", "int ;"}, lpformat.KindSyntax, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lpformat.Parse(tc.lines)

			var perr *lpformat.ParseError
			require.True(t, errors.As(err, &perr), "want *ParseError, got %v", err)
			assert.Equal(t, tc.kind, perr.Kind)
			assert.Equal(t, tc.line, perr.Line)
			assert.Positive(t, perr.Col)
			assert.NotEmpty(t, perr.Expected)
		})
	}
}
