// Package lpformat: the canonical emitter.
package lpformat

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlopt/lp"
)

// Emit renders a model as LP text lines in canonical order: the objective,
// constraint rows sorted by name, raw variable bounds, then int/bin/free
// declarations. Parsing the result reproduces an equivalent model (see the
// package documentation for the exact equivalences).
//
// Contracts:
//   - m.Optimize must have a definition in m.Variables; Emit renders what
//     exists and performs no validation beyond that lookup.
//
// Complexity: O(T log T) over T emitted terms (sorting dominates).
func Emit(m *lp.Model) []string {
	var out []string

	if combo := m.Variables[m.Optimize]; len(combo) > 0 {
		out = append(out, m.OpType.String()+": "+formatCombo(combo)+";")
	}

	var (
		names []string
		name  string
	)
	for name = range m.Constraints {
		names = append(names, name)
	}
	sort.Strings(names)

	// Defined rows first, raw bounds after, each group in name order.
	for _, name = range names {
		if combo, defined := m.Variables[name]; defined && name != m.Optimize {
			out = append(out, rowLines(name, combo, m.Constraints[name])...)
		}
	}
	for _, name = range names {
		if _, defined := m.Variables[name]; !defined {
			out = append(out, boundLines(name, m.Constraints[name])...)
		}
	}

	out = append(out, declarationLines("int", m.Ints)...)
	out = append(out, declarationLines("bin", m.Binaries)...)
	out = append(out, declarationLines("free", m.Unrestricted)...)

	return out
}

// rowLines renders a defined constraint row; a {Min, Max} record needs one
// statement per bound, which the parser re-merges by name.
func rowLines(name string, combo map[string]float64, c lp.Constraint) []string {
	var (
		out  []string
		body = formatCombo(combo)
	)
	if c.Equal != nil {
		return []string{name + ": " + body + " = " + formatNum(*c.Equal) + ";"}
	}
	if c.Min != nil {
		out = append(out, name+": "+body+" >= "+formatNum(*c.Min)+";")
	}
	if c.Max != nil {
		out = append(out, name+": "+body+" <= "+formatNum(*c.Max)+";")
	}

	return out
}

// boundLines renders a raw variable bound as bare single-variable rows.
func boundLines(name string, c lp.Constraint) []string {
	var out []string
	if c.Equal != nil {
		return []string{name + " = " + formatNum(*c.Equal) + ";"}
	}
	if c.Min != nil {
		out = append(out, name+" >= "+formatNum(*c.Min)+";")
	}
	if c.Max != nil {
		out = append(out, name+" <= "+formatNum(*c.Max)+";")
	}

	return out
}

// declarationLines renders one sorted "kw a,b,c;" statement, or nothing.
func declarationLines(kw string, flags map[string]bool) []string {
	var names []string
	for name, on := range flags {
		if on {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	sort.Strings(names)

	return []string{kw + " " + strings.Join(names, ",") + ";"}
}

// formatCombo renders terms in variable-name order with canonical signs:
// "3 x + y - 2 z". Unit coefficients are omitted.
func formatCombo(combo map[string]float64) string {
	var names []string
	for name := range combo {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for i, name := range names {
		c := combo[name]
		neg := c < 0
		if neg {
			c = -c
		}
		switch {
		case i == 0 && neg:
			sb.WriteString("-")
		case i > 0 && neg:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}
		if c != 1 {
			sb.WriteString(formatNum(c))
			sb.WriteByte(' ')
		}
		sb.WriteString(name)
	}

	return sb.String()
}

// formatNum renders coefficients with the shortest exact representation.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
