// SPDX-License-Identifier: MIT
// Package lp: solver configuration and numeric policy.
//
// Defaults follow the "single source of truth" rule: every zero-value
// behavior is pinned by a DefaultXxx constant, and DefaultOptions() must
// reflect exactly these constants.
package lp

import "time"

// Numeric policy defaults.
const (
	// DefaultPrecision is the integrality / reporting tolerance: a value v is
	// deemed integral when |v − round(v)| ≤ Precision, and assembled solution
	// entries with |v| ≤ Precision are dropped unless Full is set.
	DefaultPrecision = 1e-9

	// DefaultTolerance is the MILP relative optimality gap. Zero demands a
	// proved optimum.
	DefaultTolerance = 0

	// DefaultEpsPivot is the magnitude below which a tableau coefficient is
	// treated as zero. Must stay strictly smaller than DefaultPrecision.
	DefaultEpsPivot = 1e-12

	// DefaultEpsCost is the reduced-cost tolerance: a reduced cost ≥ −EpsCost
	// counts as non-negative (no further improvement).
	DefaultEpsCost = 1e-9

	// DefaultExitOnCycles terminates the engine on cycle suspicion instead of
	// degrading to Bland's rule.
	DefaultExitOnCycles = true
)

// Logger receives solver trace lines. The zero configuration discards them.
type Logger interface {
	Print(v ...any)
}

// noopLogger is the default trace sink.
type noopLogger struct{}

func (noopLogger) Print(v ...any) {}

// NopLogger returns the discard-everything Logger used by default.
func NopLogger() Logger { return noopLogger{} }

// Options configures solving. Zero value is not meaningful; use
// DefaultOptions() and override fields as needed.
type Options struct {
	// Precision is the integrality/reporting tolerance. Default: 1e-9.
	Precision float64

	// Tolerance is the MILP relative optimality gap: branch-and-bound prunes
	// a node whose LP bound is within Tolerance·max(1, |incumbent|) of the
	// incumbent. Default: 0 (prove optimality).
	Tolerance float64

	// Timeout bounds wall-clock solve time. The deadline is checked between
	// branch-and-bound nodes and periodically inside the simplex loop; on
	// expiry the best incumbent found so far is returned with
	// StatusTimedOut. Zero means no limit.
	Timeout time.Duration

	// ExitOnCycles, when true (default), terminates with StatusCycled on
	// cycle suspicion; when false the engine switches to Bland's rule and
	// continues to a guaranteed finite termination.
	ExitOnCycles bool

	// EpsPivot is the pivot-zero threshold. Default: 1e-12.
	EpsPivot float64

	// EpsCost is the reduced-cost tolerance. Default: 1e-9.
	EpsCost float64

	// Full includes zero-valued solution variables in the output.
	Full bool

	// Validate runs structural model validation before solving.
	Validate bool

	// UseMIRCuts is accepted for compatibility with historical models.
	//
	// Deprecated: mixed-integer rounding cuts are not implemented; the flag
	// is ignored by the engine.
	UseMIRCuts bool

	// Logger receives iteration and node traces. Default: discard.
	Logger Logger
}

// DefaultOptions returns a fully populated Options struct with safe,
// production-ready defaults:
//   - Precision 1e-9, Tolerance 0 (prove optimality)
//   - No time limit
//   - ExitOnCycles on, EpsPivot 1e-12, EpsCost 1e-9
//   - Sparse output (zero-valued variables dropped), no validation pass
//   - Discarding logger
func DefaultOptions() Options {
	return Options{
		Precision:    DefaultPrecision,
		Tolerance:    DefaultTolerance,
		Timeout:      0,
		ExitOnCycles: DefaultExitOnCycles,
		EpsPivot:     DefaultEpsPivot,
		EpsCost:      DefaultEpsCost,
		Full:         false,
		Validate:     false,
		UseMIRCuts:   false,
		Logger:       noopLogger{},
	}
}

// Normalize fills unset numeric fields with their defaults and clamps
// nonsensical values. It returns the receiver for chaining.
func (o *Options) Normalize() *Options {
	if o.Precision <= 0 {
		o.Precision = DefaultPrecision
	}
	if o.EpsPivot <= 0 {
		o.EpsPivot = DefaultEpsPivot
	}
	if o.EpsCost <= 0 {
		o.EpsCost = DefaultEpsCost
	}
	if o.EpsPivot >= o.Precision {
		// EpsPivot must stay strictly below Precision; restore the documented ratio.
		o.EpsPivot = o.Precision * 1e-3
	}
	if o.Tolerance < 0 {
		o.Tolerance = 0
	}
	if o.Logger == nil {
		o.Logger = noopLogger{}
	}

	return o
}
