// Package lp defines the user-facing data model for linear and mixed-integer
// linear programs: the declarative Model, its structural validation, the
// numeric/solver Options, and the Solution returned by the solver packages.
//
// A Model is a small declarative table:
//
//   - Optimize names the objective variable; OpType picks Max or Min.
//   - Variables maps each solution-variable name to the linear combination
//     of internal variables that defines it. The entry named by Optimize is
//     the objective row; an entry whose name also appears in Constraints is
//     a constraint row.
//   - Constraints maps a name to a {Min, Max, Equal} record. A name with no
//     definition in Variables is treated as a raw internal variable whose
//     bounds apply directly to its column.
//   - Ints, Binaries and Unrestricted flag the domains of internal
//     variables. The default domain is continuous non-negative [0, +∞).
//
// Design goals:
//   - Declarative first: a Model is plain data; no hidden solver handles.
//   - Strict sentinels: structural defects are reported as ValidationError
//     values wrapping package sentinels, matched with errors.Is.
//   - Explicit numerics: Precision, Tolerance and the engine epsilons are
//     ordinary configuration on Options, never hard-coded deep in a loop.
//   - Determinism: wherever map iteration order could reach a result, the
//     keys are sorted first.
//
// Solving lives in github.com/katalvlaran/lvlopt/solver; text I/O lives in
// github.com/katalvlaran/lvlopt/lpformat.
package lp
