// Package simplex: the compiled problem consumed by Build.
package simplex

import "math"

// Relation is the comparison of a constraint row against its RHS.
type Relation int

const (
	// LE: row ≤ rhs.
	LE Relation = iota

	// GE: row ≥ rhs.
	GE

	// EQ: row = rhs.
	EQ
)

// String returns the LP-format operator for the relation.
func (r Relation) String() string {
	switch r {
	case LE:
		return "<="
	case GE:
		return ">="
	case EQ:
		return "="
	default:
		return "?"
	}
}

// Row is one linear constraint: Coef · x  Rel  RHS.
// Coef must span every column of the owning problem.
type Row struct {
	Coef []float64
	Rel  Relation
	RHS  float64
}

// Problem is a compiled minimization LP over non-negative columns:
//
//	minimize  Cost · x  subject to  Rows,  x ≥ 0.
//
// Direction flips and unrestricted splits are the compiler's job; fixed
// variables arrive as ordinary = rows. The engine only ever sees this shape.
type Problem struct {
	// Cost is the minimization cost vector, one entry per column.
	Cost []float64

	// Rows are the constraint rows; each Coef has len(Cost) entries.
	Rows []Row

	// Integer flags columns that branch-and-bound must drive to integers.
	// Ignored by the LP engine itself.
	Integer []bool

	// Names carries per-column diagnostics labels (compiler-assigned).
	Names []string
}

// NumCols returns the number of structural columns.
func (p *Problem) NumCols() int { return len(p.Cost) }

// NumInteger counts integer-flagged columns.
func (p *Problem) NumInteger() int {
	var n int
	for _, f := range p.Integer {
		if f {
			n++
		}
	}

	return n
}

// WithRows returns a shallow extension of p by extra rows. The receiver's
// slices are shared read-only; only the row header slice is fresh. This is
// the branch-and-bound workhorse: a search node is p plus its bound rows.
func (p *Problem) WithRows(extra ...Row) *Problem {
	rows := make([]Row, 0, len(p.Rows)+len(extra))
	rows = append(rows, p.Rows...)
	rows = append(rows, extra...)

	return &Problem{Cost: p.Cost, Rows: rows, Integer: p.Integer, Names: p.Names}
}

// validate checks the problem shape against the package sentinels.
func (p *Problem) validate() error {
	if p == nil || p.NumCols() == 0 {
		return ErrEmptyProblem
	}
	n := p.NumCols()
	for i := range p.Rows {
		if len(p.Rows[i].Coef) != n {
			return ErrDimensionMismatch
		}
		switch p.Rows[i].Rel {
		case LE, GE, EQ:
		default:
			return ErrBadRelation
		}
		if math.IsNaN(p.Rows[i].RHS) || math.IsInf(p.Rows[i].RHS, 0) {
			return ErrDimensionMismatch
		}
	}
	if p.Integer != nil && len(p.Integer) != n {
		return ErrDimensionMismatch
	}

	return nil
}
