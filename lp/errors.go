// SPDX-License-Identifier: MIT
// Package lp: sentinel error set and structured error types.
//
// Structural model defects are reported as *ValidationError values wrapping
// the package sentinels, so callers may match either the concrete kind
// (errors.Is(err, ErrUnknownVariable)) or the broad class
// (errors.As(err, &verr)). Solver-state outcomes (infeasible, unbounded,
// cycled, timed out) are NOT errors: they are reported in-band through
// Solution.Status.
package lp

import (
	"errors"
	"fmt"
)

var (
	// ErrNilModel indicates a nil *Model was passed to a solver entrypoint.
	ErrNilModel = errors.New("lp: model is nil")

	// ErrMissingObjective indicates Optimize is empty or has no definition
	// in Variables.
	ErrMissingObjective = errors.New("lp: missing objective")

	// ErrUnknownVariable indicates a referenced variable has no definition
	// and no constraint record.
	ErrUnknownVariable = errors.New("lp: unknown variable")

	// ErrConflictingDomain indicates incompatible domain flags on one
	// variable (binary together with unrestricted).
	ErrConflictingDomain = errors.New("lp: conflicting variable domain")

	// ErrMalformedConstraint indicates an empty or self-contradictory
	// constraint record (no bounds at all, Equal disagreeing with Min/Max,
	// or Min > Max).
	ErrMalformedConstraint = errors.New("lp: malformed constraint")

	// ErrNonFiniteCoefficient indicates a NaN or ±Inf coefficient or bound.
	ErrNonFiniteCoefficient = errors.New("lp: non-finite coefficient")
)

// ValidationError pins a structural defect to the model element that
// triggered it. Kind is always one of the package sentinels above.
type ValidationError struct {
	// Kind is the sentinel classifying the defect.
	Kind error

	// Name is the variable or constraint the defect was observed on.
	// Empty for model-level defects (e.g. missing objective).
	Name string
}

func (e *ValidationError) Error() string {
	if e.Name == "" {
		return e.Kind.Error()
	}

	return fmt.Sprintf("%v: %q", e.Kind, e.Name)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ValidationError) Unwrap() error { return e.Kind }

// ExternalStage identifies where the native-solver hand-off failed.
type ExternalStage int

const (
	// StageWrite covers staging the LP text (including missing-field
	// rejection, which happens before any I/O).
	StageWrite ExternalStage = iota

	// StageSpawn covers starting and waiting on the child process.
	StageSpawn

	// StageParse covers reading the child's stdout back into a solution.
	StageParse
)

// String returns the stage token used in error messages.
func (s ExternalStage) String() string {
	switch s {
	case StageWrite:
		return "write"
	case StageSpawn:
		return "spawn"
	case StageParse:
		return "parse"
	default:
		return "unknown"
	}
}

// ExternalError reports a failure of the external-solver pathway.
type ExternalError struct {
	// Stage locates the failure.
	Stage ExternalStage

	// Detail is the human-readable cause.
	Detail string

	// Err is the underlying error, when one exists.
	Err error
}

func (e *ExternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lp: external solver %s: %s: %v", e.Stage, e.Detail, e.Err)
	}

	return fmt.Sprintf("lp: external solver %s: %s", e.Stage, e.Detail)
}

// Unwrap exposes the underlying cause for errors.Is chains.
func (e *ExternalError) Unwrap() error { return e.Err }
