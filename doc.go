// Package lvlopt is a pure-Go toolkit for modeling and solving linear
// programs (LP) and mixed-integer linear programs (MILP).
//
// 🚀 What is lvlopt?
//
//	A deterministic, dependency-light optimization library that brings together:
//
//	  • Declarative models: objective, linear constraints, variable domains
//	  • A dense two-phase simplex engine with anti-cycling governance
//	  • A best-bound branch-and-bound driver for integer programs
//	  • A round-trippable reader/writer for the lp_solve text format
//
// ✨ Why choose lvlopt?
//
//   - Deterministic          — identical inputs always yield identical solutions
//   - Pure Go                — no cgo, no native solver binaries required
//   - Explicit numerics      — every tolerance is configuration, never magic
//   - Honest outcomes        — infeasible/unbounded/cycled/timed-out reported in-band
//
// Under the hood, everything is organized under five packages:
//
//	lp/       — user-facing Model, Solution, validation and domain flags
//	lpformat/ — lp_solve text format lexer, parser and emitter
//	simplex/  — standard-form construction + two-phase simplex engine
//	milp/     — branch-and-bound driver built on the simplex engine
//	solver/   — the Solve entrypoint: compile, dispatch, assemble
//
// Quick ASCII example:
//
//	max: 3a + 4b;        ┐
//	cap: 2a + 3b <= 12;  │ .lp text ⇆ lp.Model ⇆ Solution
//	int a, b;            ┘
//
// Dive into README.md for full examples and the per-package contracts.
//
//	go get github.com/katalvlaran/lvlopt
package lvlopt
