// Package milp — the branch-and-bound driver.
package milp

import (
	"math"
	"time"

	"github.com/katalvlaran/lvlopt/simplex"
)

// Solve runs branch-and-bound on p. Input-shape defects surface as Go
// errors (forwarded from simplex.Build); every mathematical outcome is
// reported in-band through Result.Status.
//
// Contracts:
//   - p.Integer marks the columns to drive integral; with none set the call
//     degenerates to a single simplex run.
//   - p is treated as read-only; node problems extend it via WithRows.
//
// Complexity: worst case exponential in the number of integer columns;
// per node one LP solve plus O(cols) branching bookkeeping.
func Solve(p *simplex.Problem, opts Options) (Result, error) {
	normalizeOptions(&opts)

	// Pure LP: a single engine run, trivially integral.
	if p.NumInteger() == 0 {
		res, err := simplex.Solve(p, opts.Engine)
		if err != nil {
			return Result{}, err
		}

		return Result{
			Status: res.Status,
			Found:  res.Status == simplex.Optimal,
			X:      res.X,
			Z:      res.Z,
			Nodes:  1,
		}, nil
	}

	var (
		open      frontier
		seq       int
		incumbent Result
		zStar     = math.Inf(1)
	)
	incumbent.Status = simplex.Infeasible // until an incumbent or a verdict appears
	open.push(&node{bound: math.Inf(-1)})

	for open.Len() > 0 {
		if deadlineExpired(opts.Deadline) {
			return finishTimedOut(incumbent), nil
		}

		nd := open.pop()

		// Prune by bound before paying for the LP: the frontier is
		// best-bound-first, so once the head fails the gap test the
		// incumbent is proved optimal within Tolerance.
		if incumbent.Found && nd.bound >= zStar-gap(opts.Tolerance, zStar) {
			break
		}

		sub := p
		if len(nd.rows) > 0 {
			sub = p.WithRows(nd.rows...)
		}
		res, err := simplex.Solve(sub, opts.Engine)
		if err != nil {
			return Result{}, err
		}
		incumbent.Nodes++

		switch res.Status {
		case simplex.Infeasible:
			continue

		case simplex.Unbounded:
			incumbent.Status = simplex.Unbounded
			incumbent.Found = false

			return incumbent, nil

		case simplex.TimedOut:
			return finishTimedOut(incumbent), nil

		case simplex.Cycled, simplex.NumericalFailure:
			// Engine-level governance halts the search; report the best
			// incumbent when one exists, the node's basis otherwise.
			if !incumbent.Found {
				incumbent.X, incumbent.Z = res.X, res.Z
			}
			incumbent.Status = res.Status

			return incumbent, nil
		}

		// Optimal relaxation: prune, accept, or branch.
		if incumbent.Found && res.Z >= zStar-gap(opts.Tolerance, zStar) {
			continue
		}

		branchCol := mostFractional(res.X[:len(p.Cost)], p.Integer, opts.Precision)
		if branchCol < 0 {
			// Integer-feasible. Strict improvement keeps the first incumbent
			// among equals, preserving determinism.
			if res.Z < zStar {
				zStar = res.Z
				incumbent.Found = true
				incumbent.Status = simplex.Optimal
				incumbent.X = append(incumbent.X[:0], res.X...)
				incumbent.Z = res.Z
				opts.Logger.Print("milp: incumbent z=", zStar, " after ", incumbent.Nodes, " nodes")
			}

			continue
		}

		v := res.X[branchCol]
		down, up := branchRows(len(p.Cost), branchCol, v)

		seq++
		open.push(&node{rows: appendRow(nd.rows, down), bound: res.Z, seq: seq})
		seq++
		open.push(&node{rows: appendRow(nd.rows, up), bound: res.Z, seq: seq})
	}

	incumbent.Z = stabilize(incumbent.Z)

	return incumbent, nil
}

// gap is the absolute pruning slack: τ = tolerance · max(1, |incumbent|).
func gap(tolerance, zStar float64) float64 {
	return tolerance * math.Max(1, math.Abs(zStar))
}

// mostFractional returns the integer column whose fractional part is closest
// to ½, or −1 when every integer column is within precision of an integer.
// Ties go to the smallest column index.
func mostFractional(x []float64, integer []bool, precision float64) int {
	var (
		best      = -1
		bestScore float64 // distance of frac(v) from ½; smaller is better
		j         int
	)
	for j = 0; j < len(x); j++ {
		if j >= len(integer) || !integer[j] {
			continue
		}
		v := x[j]
		if math.Abs(v-math.Round(v)) <= precision {
			continue
		}
		frac := v - math.Floor(v)
		score := math.Abs(frac - 0.5)
		if best < 0 || score < bestScore {
			best, bestScore = j, score
		}
	}

	return best
}

// branchRows builds the two bound rows x_j ≤ ⌊v⌋ and x_j ≥ ⌈v⌉.
func branchRows(cols, j int, v float64) (down, up simplex.Row) {
	dc := make([]float64, cols)
	dc[j] = 1
	uc := make([]float64, cols)
	uc[j] = 1

	down = simplex.Row{Coef: dc, Rel: simplex.LE, RHS: math.Floor(v)}
	up = simplex.Row{Coef: uc, Rel: simplex.GE, RHS: math.Ceil(v)}

	return down, up
}

// appendRow copies the ancestor rows before extending them; siblings must
// not alias one another's backing arrays.
func appendRow(rows []simplex.Row, r simplex.Row) []simplex.Row {
	out := make([]simplex.Row, 0, len(rows)+1)
	out = append(out, rows...)
	out = append(out, r)

	return out
}

// finishTimedOut closes a run at deadline: the best incumbent when one
// exists, an empty timed-out result otherwise.
func finishTimedOut(incumbent Result) Result {
	incumbent.Status = simplex.TimedOut

	return incumbent
}

// stabilize rounds reported objectives to 1e−9 to avoid cross-platform FP
// noise without affecting optimality.
func stabilize(z float64) float64 {
	if math.IsInf(z, 0) || math.IsNaN(z) {
		return z
	}

	return math.Round(z*1e9) / 1e9
}

func normalizeOptions(o *Options) {
	if o.Precision <= 0 {
		o.Precision = DefaultPrecision
	}
	if o.Tolerance < 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.Logger == nil {
		o.Logger = nopLogger{}
	}
	o.Engine.Deadline = o.Deadline
	if o.Engine.Logger == nil {
		o.Engine.Logger = o.Logger
	}
}

type nopLogger struct{}

func (nopLogger) Print(v ...any) {}

// deadlineExpired is the between-nodes wall-clock check.
func deadlineExpired(deadline time.Time) bool {
	return !deadline.IsZero() && time.Now().After(deadline)
}
