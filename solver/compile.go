// Package solver: model → engine compilation.
package solver

import (
	"sort"

	"github.com/katalvlaran/lvlopt/lp"
	"github.com/katalvlaran/lvlopt/simplex"
)

// compiled carries the engine problem together with everything the
// assembler needs to translate column values back into user names.
type compiled struct {
	prob *simplex.Problem

	// index is the internal-variable → column bimap half; names is the
	// reverse half. Split companions are appended to names after the named
	// prefix as name+"_neg" and have no entry in index.
	index map[string]int
	names []string

	// negPart maps a split column x⁺ to its companion x⁻.
	negPart map[int]int

	// maximize records the direction flip applied to the costs.
	maximize bool
}

// value reads an internal variable off a structural solution vector,
// folding split companions back together.
func (c *compiled) value(x []float64, name string) float64 {
	j, ok := c.index[name]
	if !ok {
		return 0
	}
	v := x[j]
	if neg, split := c.negPart[j]; split {
		v -= x[neg]
	}

	return v
}

// compile lowers a model into a minimization Problem over non-negative
// columns.
//
// Contracts:
//   - m is treated as read-only.
//   - Column indices are assigned on first encounter in deterministic
//     order: objective terms (sorted), then constraint rows by name (terms
//     sorted), then any remaining variable definitions (sorted).
//
// Complexity: O(R·C) for R rows over C columns (dense row materialization).
func compile(m *lp.Model) *compiled {
	c := &compiled{
		index:    make(map[string]int),
		negPart:  make(map[int]int),
		maximize: m.OpType == lp.Max,
	}

	intern := func(name string) int {
		if j, ok := c.index[name]; ok {
			return j
		}
		j := len(c.names)
		c.index[name] = j
		c.names = append(c.names, name)

		return j
	}

	// Column discovery, first-encounter order.
	for _, term := range sortedKeys(m.Variables[m.Optimize]) {
		intern(term)
	}
	conNames := sortedConstraintNames(m)
	var name string
	for _, name = range conNames {
		if combo, defined := m.Variables[name]; defined {
			for _, term := range sortedKeys(combo) {
				intern(term)
			}
		} else {
			intern(name)
		}
	}
	var varNames []string
	for name = range m.Variables {
		varNames = append(varNames, name)
	}
	sort.Strings(varNames)
	for _, name = range varNames {
		for _, term := range sortedKeys(m.Variables[name]) {
			intern(term)
		}
	}

	// Split unrestricted columns; companions live past the named prefix.
	nNamed := len(c.names)
	var j int
	for j = 0; j < nNamed; j++ {
		if m.Unrestricted[c.names[j]] {
			c.negPart[j] = len(c.names)
			c.names = append(c.names, c.names[j]+"_neg")
		}
	}

	nCols := len(c.names)
	prob := &simplex.Problem{
		Cost:    make([]float64, nCols),
		Integer: make([]bool, nCols),
		Names:   c.names,
	}

	// Costs (flip Max into Min); split companions carry the negation.
	for term, coeff := range m.Variables[m.Optimize] {
		cost := coeff
		if c.maximize {
			cost = -cost
		}
		jt := c.index[term]
		prob.Cost[jt] += cost
		if neg, split := c.negPart[jt]; split {
			prob.Cost[neg] -= cost
		}
	}

	// Constraint rows, then binary caps, in deterministic order.
	for _, name = range conNames {
		combo := m.Variables[name]
		if combo == nil {
			combo = map[string]float64{name: 1}
		}
		rec := m.Constraints[name]
		coef := c.denseRow(combo, nCols)
		switch {
		case rec.Equal != nil:
			prob.Rows = append(prob.Rows, simplex.Row{Coef: coef, Rel: simplex.EQ, RHS: *rec.Equal})
		default:
			if rec.Min != nil {
				prob.Rows = append(prob.Rows, simplex.Row{Coef: coef, Rel: simplex.GE, RHS: *rec.Min})
			}
			if rec.Max != nil {
				cc := coef
				if rec.Min != nil {
					cc = append([]float64(nil), coef...)
				}
				prob.Rows = append(prob.Rows, simplex.Row{Coef: cc, Rel: simplex.LE, RHS: *rec.Max})
			}
		}
	}
	for j = 0; j < nNamed; j++ {
		if m.Binaries[c.names[j]] {
			capRow := make([]float64, nCols)
			capRow[j] = 1
			prob.Rows = append(prob.Rows, simplex.Row{Coef: capRow, Rel: simplex.LE, RHS: 1})
		}
	}

	// Integrality flags; split companions inherit them.
	for j = 0; j < nNamed; j++ {
		if m.Ints[c.names[j]] || m.Binaries[c.names[j]] {
			prob.Integer[j] = true
			if neg, split := c.negPart[j]; split {
				prob.Integer[neg] = true
			}
		}
	}

	c.prob = prob

	return c
}

// denseRow materializes a coefficient map over the full column range,
// mirroring split companions with negated entries.
func (c *compiled) denseRow(combo map[string]float64, nCols int) []float64 {
	coef := make([]float64, nCols)
	for term, v := range combo {
		j, ok := c.index[term]
		if !ok {
			continue // unseen terms cannot occur after discovery
		}
		coef[j] += v
		if neg, split := c.negPart[j]; split {
			coef[neg] -= v
		}
	}

	return coef
}

// sortedKeys returns the map's keys in ascending order.
func sortedKeys(m map[string]float64) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// sortedConstraintNames returns the constraint table's keys in ascending
// order — the canonical row order of the compiled problem.
func sortedConstraintNames(m *lp.Model) []string {
	out := make([]string, 0, len(m.Constraints))
	for k := range m.Constraints {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
