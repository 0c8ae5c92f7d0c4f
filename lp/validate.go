// Package lp: structural model validation.
package lp

import (
	"math"
	"sort"
)

// Validate checks the structural invariants of a model:
//
//   - Optimize names a variable with a non-empty definition in Variables.
//   - Every coefficient and bound is finite.
//   - No variable is flagged both binary and unrestricted.
//   - Every constraint record carries at least one bound, Min ≤ Max, and an
//     Equal value agrees with any Min/Max present.
//   - Every domain flag refers to a variable the model actually uses
//     (an internal variable of some definition, or a constraint key).
//
// Errors are *ValidationError values wrapping the package sentinels; the
// first defect in deterministic (sorted) order is returned.
//
// Complexity: O(V·K + C) with V definitions of K terms and C constraints,
// plus sorting of the defect-scan order.
func Validate(m *Model) error {
	if m == nil {
		return &ValidationError{Kind: ErrNilModel}
	}
	if m.Optimize == "" || len(m.Variables[m.Optimize]) == 0 {
		return &ValidationError{Kind: ErrMissingObjective, Name: m.Optimize}
	}

	// Collect the internal-variable universe: every term mentioned by a
	// definition plus every raw constraint key.
	internal := make(map[string]bool)
	var names []string
	for name, combo := range m.Variables {
		names = append(names, name)
		for term := range combo {
			internal[term] = true
		}
	}
	sort.Strings(names)

	var name string
	for _, name = range names {
		terms := make([]string, 0, len(m.Variables[name]))
		for term := range m.Variables[name] {
			terms = append(terms, term)
		}
		sort.Strings(terms)
		for _, term := range terms {
			if coeff := m.Variables[name][term]; math.IsNaN(coeff) || math.IsInf(coeff, 0) {
				return &ValidationError{Kind: ErrNonFiniteCoefficient, Name: term}
			}
		}
	}

	names = names[:0]
	for name = range m.Constraints {
		names = append(names, name)
		if _, defined := m.Variables[name]; !defined {
			internal[name] = true // raw internal variable, bounds apply directly
		}
	}
	sort.Strings(names)
	for _, name = range names {
		if err := validateConstraint(name, m.Constraints[name]); err != nil {
			return err
		}
	}

	// Domain flags must refer to variables the model uses.
	for _, flags := range []map[string]bool{m.Ints, m.Binaries, m.Unrestricted} {
		names = names[:0]
		for name = range flags {
			if flags[name] {
				names = append(names, name)
			}
		}
		sort.Strings(names)
		for _, name = range names {
			if !internal[name] {
				return &ValidationError{Kind: ErrUnknownVariable, Name: name}
			}
		}
	}

	names = names[:0]
	for name = range m.Binaries {
		if m.Binaries[name] && m.Unrestricted[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if len(names) > 0 {
		return &ValidationError{Kind: ErrConflictingDomain, Name: names[0]}
	}

	return nil
}

// validateConstraint checks a single bound record.
func validateConstraint(name string, c Constraint) error {
	if c.Min == nil && c.Max == nil && c.Equal == nil {
		return &ValidationError{Kind: ErrMalformedConstraint, Name: name}
	}
	for _, b := range []*float64{c.Min, c.Max, c.Equal} {
		if b != nil && (math.IsNaN(*b) || math.IsInf(*b, 0)) {
			return &ValidationError{Kind: ErrNonFiniteCoefficient, Name: name}
		}
	}
	if c.Min != nil && c.Max != nil && *c.Min > *c.Max {
		return &ValidationError{Kind: ErrMalformedConstraint, Name: name}
	}
	if c.Equal != nil {
		if c.Min != nil && *c.Min != *c.Equal {
			return &ValidationError{Kind: ErrMalformedConstraint, Name: name}
		}
		if c.Max != nil && *c.Max != *c.Equal {
			return &ValidationError{Kind: ErrMalformedConstraint, Name: name}
		}
	}

	return nil
}
