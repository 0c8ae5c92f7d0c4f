// Package solver: the last-solved-model debugging hook.
package solver

import (
	"sync"

	"github.com/katalvlaran/lvlopt/lp"
)

// lastMu serializes access so the retained model is never readable while a
// successful solve is publishing its copy.
var (
	lastMu     sync.RWMutex
	lastSolved = lp.NewModel("", lp.Min) // sentinel empty model, never nil
)

// LastSolvedModel returns a deep copy of the most recently and successfully
// solved model.
//
// Lifecycle: initialized to an empty sentinel model; replaced wholesale on
// every successful Solve (in-band verdicts included); never set on
// validation or compile errors; never cleared.
func LastSolvedModel() *lp.Model {
	lastMu.RLock()
	defer lastMu.RUnlock()

	return lastSolved.Clone()
}

// setLastSolved publishes the copy retained by a successful Solve.
func setLastSolved(m *lp.Model) {
	lastMu.Lock()
	defer lastMu.Unlock()

	lastSolved = m
}
