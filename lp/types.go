// Package lp: core model types.
//
// This file defines the declarative Model and its building blocks. All
// fields are plain data; the solver packages never mutate a caller's Model.
package lp

// OpType selects the optimization direction of a Model.
type OpType int

const (
	// Min minimizes the objective row.
	Min OpType = iota

	// Max maximizes the objective row.
	Max
)

// String returns the canonical lowercase token used by the LP text format.
func (t OpType) String() string {
	if t == Max {
		return "max"
	}

	return "min"
}

// Constraint bounds a row (or a raw internal variable) from below and/or
// above, or pins it to an exact value.
//
// Invariants (enforced by Validate):
//   - At least one of Min, Max, Equal is set.
//   - If Equal is set, Min and Max must be absent or agree with it.
type Constraint struct {
	// Min is the lower bound (row ≥ Min) when non-nil.
	Min *float64

	// Max is the upper bound (row ≤ Max) when non-nil.
	Max *float64

	// Equal pins the row to an exact value when non-nil.
	Equal *float64
}

// External configures the optional hand-off to a native solver binary.
// When Model.External is non-nil, solver.Solve stages the model as LP text
// in TempName, spawns BinPath with Args, and parses the child's stdout.
// Every field is mandatory for that pathway; the first missing field rejects
// with ExternalError before any I/O is attempted.
type External struct {
	// BinPath is the native solver executable.
	BinPath string

	// Args are passed to the child process verbatim.
	Args []string

	// TempName is the staging file the LP text is written to.
	TempName string
}

// Model is a declarative LP/MILP: objective, linear constraint rows and
// per-variable domain flags. The zero value is the empty model.
type Model struct {
	// Optimize names the objective variable; its definition in Variables is
	// the objective row.
	Optimize string

	// OpType picks the optimization direction. Default: Min.
	OpType OpType

	// Constraints maps a row name (or raw internal variable name) to its
	// bound record.
	Constraints map[string]Constraint

	// Variables maps a solution-variable name to the linear combination of
	// internal variables defining it: value = Σ coeff · internal.
	Variables map[string]map[string]float64

	// Ints flags internal variables constrained to integer values.
	Ints map[string]bool

	// Binaries flags internal variables constrained to {0, 1}.
	Binaries map[string]bool

	// Unrestricted flags internal variables allowed to go negative.
	Unrestricted map[string]bool

	// External, when non-nil, routes Solve through a native solver binary
	// instead of the built-in engine.
	External *External

	// Options carries solver configuration. Nil means DefaultOptions().
	Options *Options
}

// NewModel returns an empty model with all tables allocated, optimizing
// objective in the given direction.
func NewModel(objective string, dir OpType) *Model {
	return &Model{
		Optimize:     objective,
		OpType:       dir,
		Constraints:  make(map[string]Constraint),
		Variables:    make(map[string]map[string]float64),
		Ints:         make(map[string]bool),
		Binaries:     make(map[string]bool),
		Unrestricted: make(map[string]bool),
	}
}

// SetVariable defines (or replaces) the linear combination for name.
// The coefficient map is stored as-is; callers must not mutate it afterwards.
func (m *Model) SetVariable(name string, combo map[string]float64) *Model {
	if m.Variables == nil {
		m.Variables = make(map[string]map[string]float64)
	}
	m.Variables[name] = combo

	return m
}

// SetConstraint attaches a bound record to name, merging with any record
// already present (later non-nil fields win).
func (m *Model) SetConstraint(name string, c Constraint) *Model {
	if m.Constraints == nil {
		m.Constraints = make(map[string]Constraint)
	}
	prev := m.Constraints[name]
	if c.Min == nil {
		c.Min = prev.Min
	}
	if c.Max == nil {
		c.Max = prev.Max
	}
	if c.Equal == nil {
		c.Equal = prev.Equal
	}
	m.Constraints[name] = c

	return m
}

// Float is a convenience for building *float64 bound fields in literals.
func Float(v float64) *float64 { return &v }

// Truthy canonicalizes the boundary representation of a domain flag.
// The LP text surface and historical JSON models accept true, 1, "1", "true";
// internally a single normalized bool suffices.
func Truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case int:
		return x != 0
	case float64:
		return x != 0
	case string:
		return x == "1" || x == "true"
	default:
		return false
	}
}

// Clone returns a deep copy of the model. Solver packages clone before any
// normalization so the caller's value is never partially mutated.
func (m *Model) Clone() *Model {
	if m == nil {
		return nil
	}
	out := &Model{
		Optimize: m.Optimize,
		OpType:   m.OpType,
	}
	if m.Constraints != nil {
		out.Constraints = make(map[string]Constraint, len(m.Constraints))
		for k, v := range m.Constraints {
			out.Constraints[k] = Constraint{Min: copyFloat(v.Min), Max: copyFloat(v.Max), Equal: copyFloat(v.Equal)}
		}
	}
	if m.Variables != nil {
		out.Variables = make(map[string]map[string]float64, len(m.Variables))
		for k, combo := range m.Variables {
			cc := make(map[string]float64, len(combo))
			for n, c := range combo {
				cc[n] = c
			}
			out.Variables[k] = cc
		}
	}
	out.Ints = copyFlags(m.Ints)
	out.Binaries = copyFlags(m.Binaries)
	out.Unrestricted = copyFlags(m.Unrestricted)
	if m.External != nil {
		ext := *m.External
		ext.Args = append([]string(nil), m.External.Args...)
		out.External = &ext
	}
	if m.Options != nil {
		opt := *m.Options
		out.Options = &opt
	}

	return out
}

func copyFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}

func copyFlags(in map[string]bool) map[string]bool {
	if in == nil {
		return nil
	}
	out := make(map[string]bool, len(in))
	for k, v := range in {
		out[k] = v
	}

	return out
}
