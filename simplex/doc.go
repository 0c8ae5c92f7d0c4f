// Package simplex implements a dense two-phase simplex engine for linear
// programs in standard form, together with the standard-form constructor
// that introduces slack, surplus and artificial columns.
//
// The package is engine-level: it consumes a compiled Problem
//
//	minimize  c·x
//	subject to  row_i · x  (≤ | ≥ | =)  b_i,   x ≥ 0
//
// and knows nothing about user-facing variable names beyond the Cols table
// it carries for diagnostics. Model compilation (name↔index mapping,
// direction flip for maximization, unrestricted splits) happens upstream in
// github.com/katalvlaran/lvlopt/solver.
//
// Algorithm:
//   - Build converts the rows into equalities with b ≥ 0 and an identity
//     starting basis (slacks and artificials), Phase-I feasible by
//     construction.
//   - Phase I minimizes the sum of artificial columns; a strictly positive
//     minimum proves infeasibility.
//   - Phase II minimizes the true costs with artificial columns barred from
//     re-entering the basis.
//
// Pivot governance:
//   - Entering: Dantzig's rule (most negative reduced cost) by default;
//     Bland's rule after cycle suspicion when ExitOnCycles is off.
//   - Leaving: minimum ratio over pivot entries > EpsPivot; ties broken by
//     smallest basis index.
//   - Cycle suspicion: iteration count beyond 50·max(m,n), or an exact
//     basis revisit.
//
// Numeric policy: |v| < EpsPivot is zero; a reduced cost ≥ −EpsCost is
// non-negative; every division guards the pivot magnitude. All tests of
// sign or equality go through these tolerances, never exact comparison.
//
// Determinism: for identical Problem and Options the engine performs the
// identical pivot sequence; there is no randomness and no map iteration.
package simplex
