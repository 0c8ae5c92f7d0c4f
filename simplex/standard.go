// Package simplex: standard-form construction.
//
// Build turns a compiled Problem into the equality tableau the engine
// pivots on. Auxiliary columns follow the classical recipe:
//
//	≤ row → slack (basic)
//	≥ row → surplus (−1) + artificial (basic)
//	= row → artificial (basic)
//
// Rows with a negative RHS are multiplied by −1 first, swapping the
// slack/surplus roles, so that b ≥ 0 holds everywhere.
//
// Post-conditions:
//   - every b_i ≥ 0,
//   - every row owns exactly one basic column (slack or artificial),
//   - the starting basis is feasible for Phase I.
package simplex

import (
	"gonum.org/v1/gonum/mat"
)

// ColKind classifies a tableau column.
type ColKind int

const (
	// Structural columns correspond 1:1 to Problem columns.
	Structural ColKind = iota

	// Slack columns absorb ≤ rows.
	Slack

	// Surplus columns absorb ≥ rows (coefficient −1).
	Surplus

	// Artificial columns make ≥ and = rows Phase-I feasible.
	Artificial
)

// Tableau is the dense standard form the engine operates on. It is owned by
// exactly one engine run at a time; Build always returns a fresh value.
type Tableau struct {
	m, n int // rows × total columns

	// a is the m×n constraint matrix in canonical (basis = identity) form.
	a *mat.Dense

	// b is the RHS vector, invariant b ≥ 0.
	b []float64

	// basis[i] is the basic column of row i.
	basis []int

	// kind classifies every column.
	kind []ColKind

	// nStruct is the structural prefix length (== Problem.NumCols()).
	nStruct int

	// artificials lists the artificial column indices, ascending.
	artificials []int
}

// Rows returns the constraint-row count m.
func (t *Tableau) Rows() int { return t.m }

// Cols returns the total column count n (structural + auxiliary).
func (t *Tableau) Cols() int { return t.n }

// Build constructs the standard-form tableau for p.
//
// Contracts:
//   - p must pass validate(): consistent dimensions, known relations.
//   - The returned tableau is independent of p (coefficients are copied).
//
// Complexity: O(m·n) time and space for m rows and n total columns.
func Build(p *Problem) (*Tableau, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	var (
		nStruct = p.NumCols()
		m       = len(p.Rows)
		nAux    int
		i, j    int
	)

	// First pass: count auxiliary columns after RHS normalization.
	// A flipped ≤ becomes ≥ and vice versa; = stays =.
	rels := make([]Relation, m)
	flip := make([]bool, m)
	for i = 0; i < m; i++ {
		rels[i] = p.Rows[i].Rel
		if p.Rows[i].RHS < 0 {
			flip[i] = true
			switch rels[i] {
			case LE:
				rels[i] = GE
			case GE:
				rels[i] = LE
			}
		}
		switch rels[i] {
		case LE:
			nAux++ // slack
		case GE:
			nAux += 2 // surplus + artificial
		case EQ:
			nAux++ // artificial
		}
	}

	n := nStruct + nAux
	t := &Tableau{
		m:       m,
		n:       n,
		a:       mat.NewDense(max(m, 1), n, nil),
		b:       make([]float64, m),
		basis:   make([]int, m),
		kind:    make([]ColKind, n),
		nStruct: nStruct,
	}
	for j = 0; j < nStruct; j++ {
		t.kind[j] = Structural
	}

	// Second pass: copy rows and place auxiliary columns.
	next := nStruct
	for i = 0; i < m; i++ {
		row := t.a.RawRowView(i)
		sign := 1.0
		if flip[i] {
			sign = -1
		}
		for j = 0; j < nStruct; j++ {
			row[j] = sign * p.Rows[i].Coef[j]
		}
		t.b[i] = sign * p.Rows[i].RHS

		switch rels[i] {
		case LE:
			t.kind[next] = Slack
			row[next] = 1
			t.basis[i] = next
			next++
		case GE:
			t.kind[next] = Surplus
			row[next] = -1
			next++
			t.kind[next] = Artificial
			row[next] = 1
			t.basis[i] = next
			t.artificials = append(t.artificials, next)
			next++
		case EQ:
			t.kind[next] = Artificial
			row[next] = 1
			t.basis[i] = next
			t.artificials = append(t.artificials, next)
			next++
		}
	}

	return t, nil
}
