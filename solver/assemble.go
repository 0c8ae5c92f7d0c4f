// Package solver: projecting engine results back onto the model.
package solver

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvlopt/lp"
	"github.com/katalvlaran/lvlopt/milp"
	"github.com/katalvlaran/lvlopt/simplex"
)

// assemble translates a branch-and-bound result into the user-facing
// Solution: status mapping, objective sign restoration, solution-variable
// projection and sparse filtering.
func assemble(m *lp.Model, c *compiled, res milp.Result, o *lp.Options) *lp.Solution {
	sol := &lp.Solution{
		Status:     mapStatus(res.Status),
		Feasible:   res.Status != simplex.Infeasible,
		Bounded:    res.Status != simplex.Unbounded,
		IsIntegral: true,
		Values:     make(map[string]float64),
	}

	// A timeout with no incumbent carries no usable assignment.
	if res.Status == simplex.TimedOut && !res.Found {
		sol.Feasible = false

		return sol
	}
	if !sol.Feasible || !sol.Bounded || res.X == nil {
		return sol
	}

	z := res.Z
	if c.maximize {
		z = -z
	}
	sol.Result = stabilize(z)

	// Integrality verdict over the engine's integer columns.
	var j int
	for j = 0; j < len(c.prob.Integer); j++ {
		if !c.prob.Integer[j] {
			continue
		}
		if math.Abs(res.X[j]-math.Round(res.X[j])) > o.Precision {
			sol.IsIntegral = false

			break
		}
	}

	// Project declared solution variables (the objective reports through
	// Result, not through Values).
	var names []string
	for name := range m.Variables {
		if name != m.Optimize {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var name string
	for _, name = range names {
		var v float64
		for term, coeff := range m.Variables[name] {
			v += coeff * c.value(res.X, term)
		}
		if o.Full || math.Abs(v) > o.Precision {
			sol.Values[name] = stabilize(v)
		}
	}

	// Raw internal variables constrained directly also belong to the
	// output surface: they are the caller's only handle on those columns.
	for _, name = range sortedConstraintNames(m) {
		if _, defined := m.Variables[name]; defined {
			continue
		}
		v := c.value(res.X, name)
		if o.Full || math.Abs(v) > o.Precision {
			sol.Values[name] = stabilize(v)
		}
	}

	return sol
}

// mapStatus lifts the engine vocabulary onto the user-facing one.
func mapStatus(s simplex.Status) lp.SolveStatus {
	switch s {
	case simplex.Optimal:
		return lp.StatusOptimal
	case simplex.Infeasible:
		return lp.StatusInfeasible
	case simplex.Unbounded:
		return lp.StatusUnbounded
	case simplex.Cycled:
		return lp.StatusCycled
	case simplex.TimedOut:
		return lp.StatusTimedOut
	default:
		return lp.StatusNumericalFailure
	}
}

// stabilize rounds reported values to 1e−9, avoiding cross-platform FP
// noise in outputs without affecting feasibility.
func stabilize(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}
