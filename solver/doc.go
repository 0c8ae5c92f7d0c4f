// Package solver is the front door of lvlopt: it compiles a declarative
// lp.Model into the engine's structural form, routes it through the simplex
// or branch-and-bound driver, and assembles the answer back into the
// caller's vocabulary.
//
// Pipeline, leaves first:
//
//	lp.Model ──compile──▶ simplex.Problem ──milp/simplex──▶ Result ──assemble──▶ lp.Solution
//
// Compilation (the model half of the preprocessor):
//   - Every internal variable receives a dense column index on first
//     encounter, in deterministic order (objective terms, then constraint
//     rows by name, then remaining definitions). A name↔index bimap backs
//     both directions.
//   - Maximization is flipped into minimization by negating the costs; the
//     assembler flips the reported objective back.
//   - Binary variables become integer columns with an x ≤ 1 row;
//     unrestricted variables are split into x⁺ − x⁻ companion columns.
//
// Assembly:
//   - Each declared solution variable is evaluated as Σ coeff · column.
//   - Entries with magnitude ≤ Precision are dropped unless Full is set.
//   - Infeasible/unbounded/cycled/timed-out verdicts arrive in-band on the
//     Solution; only structural defects (validation, compile shape) are Go
//     errors.
//
// A single Solve call is a pure synchronous computation; the engine never
// mutates the caller's Model. The most recently and successfully solved
// model is retained behind LastSolvedModel for debugging.
package solver
