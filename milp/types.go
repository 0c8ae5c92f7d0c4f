// SPDX-License-Identifier: MIT
// Package milp: options, results and the search-node shape.
package milp

import (
	"time"

	"github.com/katalvlaran/lvlopt/simplex"
)

// Default knobs. DefaultOptions() must reflect exactly these constants.
const (
	// DefaultPrecision: a value v counts as integral when
	// |v − round(v)| ≤ Precision.
	DefaultPrecision = 1e-9

	// DefaultTolerance is the relative optimality gap demanded before a node
	// is pruned against the incumbent. Zero proves exact optimality.
	DefaultTolerance = 0
)

// Options configures a branch-and-bound run. Zero value is not meaningful;
// use DefaultOptions() and override fields as needed.
type Options struct {
	// Precision is the integrality tolerance. Default: 1e-9.
	Precision float64

	// Tolerance is the relative optimality gap: a node with LP bound z is
	// pruned when z ≥ incumbent − Tolerance·max(1, |incumbent|). Default: 0.
	Tolerance float64

	// Deadline bounds wall-clock time; the zero time disables it. Checked
	// between nodes and, through Engine, inside each relaxation.
	Deadline time.Time

	// Engine configures the per-node simplex runs. Engine.Deadline is
	// overwritten with Deadline so both levels observe one budget.
	Engine simplex.Options

	// Logger receives node traces. Nil discards.
	Logger simplex.Logger
}

// DefaultOptions returns the documented defaults with a default engine.
func DefaultOptions() Options {
	return Options{
		Precision: DefaultPrecision,
		Tolerance: DefaultTolerance,
		Engine:    simplex.DefaultOptions(),
	}
}

// Result is the outcome of a branch-and-bound run.
type Result struct {
	// Status reuses the engine's verdict vocabulary. Optimal means the
	// incumbent was proved optimal within Tolerance.
	Status simplex.Status

	// Found reports whether any integer-feasible incumbent exists. It may be
	// true alongside TimedOut (best incumbent at expiry).
	Found bool

	// X is the incumbent's structural column values (root problem indexing).
	X []float64

	// Z is the incumbent's objective (minimization convention).
	Z float64

	// Nodes counts evaluated search nodes.
	Nodes int
}

// node is one open subproblem: the bound rows accumulated from the root and
// the parent's LP objective, which lower-bounds every descendant.
type node struct {
	rows  []simplex.Row
	bound float64
	seq   int // insertion sequence, the deterministic tiebreak
}
