// Package milp turns the LP engine into a mixed-integer solver via
// branch-and-bound.
//
// The driver keeps a frontier of open search nodes ordered best-bound-first
// (smallest parent LP objective, minimization convention). A node stores
// only the bound rows accumulated on its path from the root — never a
// tableau — and is evaluated exactly once when popped: its LP relaxation is
// rebuilt from the root problem plus those rows and handed to the simplex
// engine.
//
// Node outcomes:
//
//	infeasible            → prune
//	unbounded             → the MILP is unbounded
//	z ≥ incumbent − τ     → prune by bound (τ = Tolerance·max(1, |incumbent|))
//	integer-feasible      → new incumbent, prune
//	fractional            → branch on the most-fractional integer column
//	                        (fraction closest to ½; smallest index on ties)
//	                        into x ≤ ⌊v⌋ and x ≥ ⌈v⌉ children
//
// Determinism: frontier ties are broken by insertion order, branching ties
// by smallest column index, and incumbent updates are strict improvements,
// so identical inputs always reproduce the identical search and solution.
//
// The driver is single-threaded; the deadline is checked between nodes (the
// engine's own checks, every m+n pivots, cover long relaxations).
package milp
