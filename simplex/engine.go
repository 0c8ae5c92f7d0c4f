// Package simplex — the two-phase engine.
//
// The engine keeps the tableau in canonical form (basic columns are unit
// vectors) and maintains the reduced-cost row explicitly, updating it with
// the same row operations that update the constraint rows. Per iteration:
// O(n) entering scan, O(m) ratio test, O(m·n) pivot.
//
// Governance:
//  1. Entering by Dantzig (most negative reduced cost; index tiebreak by
//     scan order) until cycle suspicion, then Bland when ExitOnCycles is
//     off.
//  2. Leaving by minimum ratio over entries > EpsPivot; ties by smallest
//     basis index (Bland's tiebreak, always on).
//  3. Suspicion: pivot count beyond 50·max(m,n), or an exact revisit of a
//     basis set.
//  4. Sparse deadline checks every m+n pivots keep the overhead negligible.
//
// Type-level contracts live in doc.go and types.go.
package simplex

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"gonum.org/v1/gonum/floats"
)

// engine holds all per-run state. A dedicated struct (instead of closures)
// keeps dependencies explicit and the hot path predictable.
type engine struct {
	t    *Tableau
	opts Options

	// Active reduced-cost row and basis objective value.
	rc   []float64
	zval float64

	// barred columns may never enter (artificials in Phase II).
	barred []bool

	// Cycling governance.
	bland bool
	seen  map[string]struct{}
	iters int

	// Sparse deadline checks.
	useDeadline bool
	checkEvery  int
	steps       int
}

// Solve runs the two-phase simplex on p and returns the in-band verdict.
// Input-shape defects (dimension mismatches, unknown relations) are the only
// Go errors; every mathematical outcome is a Status.
func Solve(p *Problem, opts Options) (Result, error) {
	opts.normalize()

	t, err := Build(p)
	if err != nil {
		return Result{}, err
	}

	e := &engine{
		t:           t,
		opts:        opts,
		barred:      make([]bool, t.n),
		seen:        make(map[string]struct{}),
		useDeadline: !opts.Deadline.IsZero(),
		checkEvery:  t.m + t.n,
	}
	e.steps = e.checkEvery // probe the clock on the first iteration, then sparsely

	// Phase I: drive the artificial columns to zero.
	if len(t.artificials) > 0 {
		cost1 := make([]float64, t.n)
		var j int
		for _, j = range t.artificials {
			cost1[j] = 1
		}
		e.initCosts(cost1)
		st := e.iterate()
		if st == Unbounded {
			// The Phase-I objective is bounded below by zero; an "unbounded"
			// verdict here means every blocking pivot fell under EpsPivot.
			st = NumericalFailure
		}
		if st != Optimal {
			return e.result(st), nil
		}
		if e.zval > opts.EpsCost {
			opts.Logger.Print("simplex: phase I residual ", e.zval, " — infeasible")

			return e.result(Infeasible), nil
		}
		e.driveOutArtificials()
		for _, j = range t.artificials {
			e.barred[j] = true
		}
		opts.Logger.Print("simplex: phase I complete after ", e.iters, " pivots")
	}

	// Phase II: true costs, artificials barred.
	cost2 := make([]float64, t.n)
	copy(cost2, p.Cost)
	e.initCosts(cost2)
	st := e.iterate()
	opts.Logger.Print("simplex: phase II ", st, " after ", e.iters, " pivots, z=", e.zval)

	return e.result(st), nil
}

// result extracts structural values and packages the verdict.
func (e *engine) result(st Status) Result {
	x := make([]float64, e.t.nStruct)
	var i int
	for i = 0; i < e.t.m; i++ {
		if j := e.t.basis[i]; j < e.t.nStruct {
			x[j] = e.t.b[i]
		}
	}

	return Result{Status: st, X: x, Z: e.zval, Iterations: e.iters}
}

// initCosts resets the reduced-cost row for a new cost vector and prices out
// the current basis. In canonical form each basic column is a unit vector,
// so a single sweep over the rows suffices.
func (e *engine) initCosts(cost []float64) {
	if e.rc == nil {
		e.rc = make([]float64, e.t.n)
	}
	copy(e.rc, cost)
	e.zval = 0
	// A basis legitimately revisited across phases is not a cycle; the
	// revisit detector starts fresh with every cost vector.
	clear(e.seen)

	var (
		i int
		f float64
	)
	for i = 0; i < e.t.m; i++ {
		j := e.t.basis[i]
		f = e.rc[j]
		if f == 0 {
			continue
		}
		floats.AddScaled(e.rc, -f, e.t.a.RawRowView(i))
		e.zval += f * e.t.b[i]
		e.rc[j] = 0
	}
}

// iterate pivots until the active costs are optimal or a governance event
// fires. Returns Optimal, Unbounded, Cycled, TimedOut or NumericalFailure.
func (e *engine) iterate() Status {
	for {
		if e.deadlineExpired() {
			return TimedOut
		}

		enter := e.chooseEntering()
		if enter < 0 {
			return Optimal
		}

		leave, st := e.chooseLeaving(enter)
		if st != Optimal {
			return st
		}

		e.pivot(leave, enter)
		e.iters++

		if e.bland {
			continue // Bland's rule terminates; no further suspicion checks.
		}
		if e.cycleSuspected() {
			if e.opts.ExitOnCycles {
				return Cycled
			}
			e.opts.Logger.Print("simplex: cycle suspicion at pivot ", e.iters, " — switching to Bland's rule")
			e.bland = true
		}
	}
}

// chooseEntering picks the entering column, or −1 at optimality.
// Dantzig: most negative reduced cost (first index wins ties).
// Bland: smallest index with a negative reduced cost.
func (e *engine) chooseEntering() int {
	var (
		best    = -1
		bestRC  float64
		j       int
		negEdge = -e.opts.EpsCost
	)
	for j = 0; j < e.t.n; j++ {
		if e.barred[j] {
			continue
		}
		rc := e.rc[j]
		if rc >= negEdge {
			continue
		}
		if e.bland {
			return j
		}
		if best < 0 || rc < bestRC {
			best, bestRC = j, rc
		}
	}

	return best
}

// chooseLeaving runs the minimum-ratio test on the entering column.
// Entries below EpsPivot are skipped as pivots. Ties on the ratio are broken
// by the smallest basis index. Returns (row, Optimal) on success; otherwise
// Unbounded (no positive entry at all) or NumericalFailure (positive entries
// exist but every one is below EpsPivot).
func (e *engine) chooseLeaving(enter int) (int, Status) {
	var (
		row       = -1
		bestRatio float64
		sawTiny   bool
		i         int
	)
	for i = 0; i < e.t.m; i++ {
		a := e.t.a.At(i, enter)
		if a <= 0 {
			continue
		}
		if a < e.opts.EpsPivot {
			sawTiny = true

			continue
		}
		ratio := e.t.b[i] / a
		switch {
		case row < 0, ratio < bestRatio-e.opts.EpsPivot:
			row, bestRatio = i, ratio
		case ratio <= bestRatio+e.opts.EpsPivot && e.t.basis[i] < e.t.basis[row]:
			row, bestRatio = i, ratio
		}
	}
	if row >= 0 {
		return row, Optimal
	}
	if sawTiny {
		return -1, NumericalFailure
	}

	return -1, Unbounded
}

// pivot brings column c into the basis at row r.
func (e *engine) pivot(r, c int) {
	var (
		a     = e.t.a
		pivot = a.At(r, c)
		prow  = a.RawRowView(r)
		i     int
		f     float64
	)
	floats.Scale(1/pivot, prow)
	e.t.b[r] /= pivot
	prow[c] = 1 // exact, guards drift on the pivot column

	for i = 0; i < e.t.m; i++ {
		if i == r {
			continue
		}
		f = a.At(i, c)
		if math.Abs(f) <= e.opts.EpsPivot {
			continue
		}
		floats.AddScaled(a.RawRowView(i), -f, prow)
		e.t.b[i] -= f * e.t.b[r]
		a.Set(i, c, 0)
		if e.t.b[i] < 0 && e.t.b[i] > -e.opts.EpsPivot {
			e.t.b[i] = 0 // clamp FP dust; b ≥ 0 is a tableau invariant
		}
	}

	f = e.rc[c]
	if f != 0 {
		floats.AddScaled(e.rc, -f, prow)
		e.zval += f * e.t.b[r]
		e.rc[c] = 0
	}

	e.t.basis[r] = c
}

// driveOutArtificials pivots basic artificials (value zero after Phase I)
// out of the basis wherever a usable pivot exists. Rows with no usable pivot
// are redundant; their artificial stays basic at zero and is barred from
// re-entering, which keeps it at zero for the rest of the run.
func (e *engine) driveOutArtificials() {
	var (
		i, j   int
		inBase = make(map[int]bool, e.t.m)
	)
	for i = 0; i < e.t.m; i++ {
		inBase[e.t.basis[i]] = true
	}
	for i = 0; i < e.t.m; i++ {
		if e.t.kind[e.t.basis[i]] != Artificial {
			continue
		}
		for j = 0; j < e.t.n; j++ {
			if e.t.kind[j] == Artificial || inBase[j] {
				continue
			}
			if math.Abs(e.t.a.At(i, j)) > e.opts.EpsPivot {
				inBase[e.t.basis[i]] = false
				e.pivot(i, j)
				inBase[j] = true

				break
			}
		}
	}
}

// cycleSuspected reports an iteration-budget breach or a basis-set revisit.
func (e *engine) cycleSuspected() bool {
	if e.iters > cycleIterFactor*max(e.t.m, e.t.n) {
		return true
	}
	key := basisKey(e.t.basis)
	if _, dup := e.seen[key]; dup {
		return true
	}
	e.seen[key] = struct{}{}

	return false
}

// basisKey builds an order-independent signature of the basis set.
func basisKey(basis []int) string {
	cols := make([]int, len(basis))
	copy(cols, basis)
	sort.Ints(cols)

	var sb strings.Builder
	for i, c := range cols {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(c))
	}

	return sb.String()
}

// deadlineExpired performs a sparse wall-clock check (every m+n pivots).
func (e *engine) deadlineExpired() bool {
	if !e.useDeadline {
		return false
	}
	e.steps++
	if e.steps < e.checkEvery {
		return false
	}
	e.steps = 0

	return time.Now().After(e.opts.Deadline)
}
