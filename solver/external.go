// Package solver: the native-solver hand-off.
//
// This pathway exists for callers who want lp_solve (or a compatible CLI)
// to do the solving while keeping the lvlopt modeling surface: the model is
// staged as LP text, the binary is spawned, and its stdout is read back.
// It never touches the built-in engine and carries no solver semantics of
// its own.
package solver

import (
	"math"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlopt/lp"
	"github.com/katalvlaran/lvlopt/lpformat"
)

// objectivePrefix matches the lp_solve CLI report line.
const objectivePrefix = "Value of objective function:"

// variablesHeader opens the lp_solve CLI variable section.
const variablesHeader = "Actual values of the variables"

// infeasibleMarker and unboundedMarker are the CLI's verdict lines.
const (
	infeasibleMarker = "This problem is infeasible"
	unboundedMarker  = "This problem is unbounded"
)

// solveExternal stages m, spawns the configured binary and parses stdout.
// Every External field is mandatory; the first missing one rejects before
// any I/O. Failures carry the stage they occurred in.
func solveExternal(m *lp.Model, o *lp.Options) (*lp.Solution, error) {
	ext := m.External
	switch {
	case ext.BinPath == "":
		return nil, &lp.ExternalError{Stage: lp.StageWrite, Detail: "missing binPath"}
	case ext.TempName == "":
		return nil, &lp.ExternalError{Stage: lp.StageWrite, Detail: "missing tempName"}
	case ext.Args == nil:
		return nil, &lp.ExternalError{Stage: lp.StageWrite, Detail: "missing args"}
	}

	text := strings.Join(lpformat.Emit(m), "\n") + "\n"
	if err := os.WriteFile(ext.TempName, []byte(text), 0o644); err != nil {
		return nil, &lp.ExternalError{Stage: lp.StageWrite, Detail: "staging " + ext.TempName, Err: err}
	}

	out, err := exec.Command(ext.BinPath, ext.Args...).Output()
	if err != nil {
		return nil, &lp.ExternalError{Stage: lp.StageSpawn, Detail: "running " + ext.BinPath, Err: err}
	}

	return parseExternalOutput(string(out), o)
}

// parseExternalOutput reads the lp_solve CLI report shape:
//
//	Value of objective function: 8
//
//	Actual values of the variables:
//	x     6
//	y     2
func parseExternalOutput(out string, o *lp.Options) (*lp.Solution, error) {
	sol := &lp.Solution{
		Status:     lp.StatusOptimal,
		Feasible:   true,
		Bounded:    true,
		IsIntegral: true,
		Values:     make(map[string]float64),
	}

	var (
		sawObjective bool
		inVars       bool
	)
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue

		case strings.HasPrefix(line, infeasibleMarker):
			sol.Status = lp.StatusInfeasible
			sol.Feasible = false

			return sol, nil

		case strings.HasPrefix(line, unboundedMarker):
			sol.Status = lp.StatusUnbounded
			sol.Bounded = false

			return sol, nil

		case strings.HasPrefix(line, objectivePrefix):
			raw := strings.TrimSpace(strings.TrimPrefix(line, objectivePrefix))
			v, perr := strconv.ParseFloat(raw, 64)
			if perr != nil {
				return nil, &lp.ExternalError{Stage: lp.StageParse, Detail: "objective line " + strconv.Quote(raw), Err: perr}
			}
			sol.Result = v
			sawObjective = true

		case strings.HasPrefix(line, variablesHeader):
			inVars = true

		case inVars:
			fields := strings.Fields(line)
			if len(fields) != 2 {
				return nil, &lp.ExternalError{Stage: lp.StageParse, Detail: "variable line " + strconv.Quote(line)}
			}
			v, perr := strconv.ParseFloat(fields[1], 64)
			if perr != nil {
				return nil, &lp.ExternalError{Stage: lp.StageParse, Detail: "variable line " + strconv.Quote(line), Err: perr}
			}
			if o.Full || math.Abs(v) > o.Precision {
				sol.Values[fields[0]] = v
			}
		}
	}

	if !sawObjective {
		return nil, &lp.ExternalError{Stage: lp.StageParse, Detail: "no objective line in solver output"}
	}

	return sol, nil
}
