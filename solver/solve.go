// Package solver — the Solve entrypoint and its dispatcher.
package solver

import (
	"time"

	"github.com/katalvlaran/lvlopt/lp"
	"github.com/katalvlaran/lvlopt/lpformat"
	"github.com/katalvlaran/lvlopt/milp"
	"github.com/katalvlaran/lvlopt/simplex"
)

// SolveOption overrides model-level options for a single Solve call.
type SolveOption func(*lp.Options)

// WithPrecision overrides the integrality/reporting tolerance.
func WithPrecision(p float64) SolveOption {
	return func(o *lp.Options) { o.Precision = p }
}

// WithFull includes zero-valued solution variables in the output.
func WithFull(full bool) SolveOption {
	return func(o *lp.Options) { o.Full = full }
}

// WithValidation runs structural validation before solving.
func WithValidation(v bool) SolveOption {
	return func(o *lp.Options) { o.Validate = v }
}

// WithTimeout bounds wall-clock solve time.
func WithTimeout(d time.Duration) SolveOption {
	return func(o *lp.Options) { o.Timeout = d }
}

// WithLogger routes engine and driver traces to l.
func WithLogger(l lp.Logger) SolveOption {
	return func(o *lp.Options) { o.Logger = l }
}

// Solve computes an optimal feasible assignment for m, or an in-band
// infeasibility/unboundedness/governance verdict.
//
// Contracts:
//   - m is never mutated, even partially; the retained LastSolvedModel is a
//     deep copy taken after a successful return.
//   - Structural defects (nil model, failed validation) are Go errors;
//     mathematical outcomes always arrive through Solution.Status.
//   - With External set on the model, the native-solver pathway is used
//     instead of the built-in engine (see external.go).
//
// Complexity: one simplex run per branch-and-bound node; see the engine
// packages for per-node bounds.
func Solve(m *lp.Model, opts ...SolveOption) (*lp.Solution, error) {
	if m == nil {
		return nil, &lp.ValidationError{Kind: lp.ErrNilModel}
	}

	o := lp.DefaultOptions()
	if m.Options != nil {
		o = *m.Options
	}
	for _, opt := range opts {
		opt(&o)
	}
	o.Normalize()

	if o.Validate {
		if err := lp.Validate(m); err != nil {
			return nil, err
		}
	}
	if o.UseMIRCuts {
		o.Logger.Print("solver: useMIRCuts is deprecated and ignored")
	}

	var sol *lp.Solution
	if m.External != nil {
		ext, err := solveExternal(m, &o)
		if err != nil {
			return nil, err
		}
		sol = ext
	} else {
		res, err := run(m, &o)
		if err != nil {
			return nil, err
		}
		sol = res
	}

	setLastSolved(m.Clone())

	return sol, nil
}

// run drives the built-in engines and assembles the outcome.
func run(m *lp.Model, o *lp.Options) (*lp.Solution, error) {
	c := compile(m)

	mo := milp.Options{
		Precision: o.Precision,
		Tolerance: o.Tolerance,
		Engine: simplex.Options{
			EpsPivot:     o.EpsPivot,
			EpsCost:      o.EpsCost,
			ExitOnCycles: o.ExitOnCycles,
			Logger:       o.Logger,
		},
		Logger: o.Logger,
	}
	if o.Timeout > 0 {
		mo.Deadline = time.Now().Add(o.Timeout)
	}

	res, err := milp.Solve(c.prob, mo)
	if err != nil {
		return nil, err
	}

	return assemble(m, c, res, o), nil
}

// ReformatLines parses LP text into a Model — one half of the original
// reformat entry point (the text → model direction).
func ReformatLines(lines []string) (*lp.Model, error) {
	return lpformat.Parse(lines)
}

// ReformatModel renders a Model as canonical LP text — the other half of
// the reformat entry point (the model → text direction).
func ReformatModel(m *lp.Model) []string {
	return lpformat.Emit(m)
}
