// Package simulate implements the Component Simulator: running a
// ComponentIR through the VM and reconciling declared boundary counts
// with the simulated result (spec.md §4.4).
package simulate

import (
	"fmt"

	"github.com/knitalgebra/checker/internal/domain"
	checkerrors "github.com/knitalgebra/checker/internal/domain/errors"
	"github.com/knitalgebra/checker/internal/vm"
)

// Result is the outcome of simulating one ComponentIR.
type Result struct {
	Passed     bool
	FinalState *vm.State
	Errors     []*checkerrors.CheckerError
}

// Component runs ir's operations through the VM in order, never
// short-circuiting on a precondition violation, then reconciles the final
// live count (and, when the IR opens with CAST_ON, the cast-on count)
// against ir's declared boundary counts.
func Component(ir *domain.ComponentIR) *Result {
	ops := ir.Operations()

	if len(ops) == 0 {
		err := checkerrors.Filler(ir.ComponentName(), -1, "component has no operations")
		return &Result{Passed: false, FinalState: vm.NewState(ir.StartingStitchCount()), Errors: []*checkerrors.CheckerError{err}}
	}

	beginsWithCastOn := ops[0].Kind() == domain.OpCastOn

	state := setupState(ir, beginsWithCastOn)
	var errs []*checkerrors.CheckerError
	var castOnCount int

	for i, op := range ops {
		if err := vm.Execute(state, op); err != nil {
			errs = append(errs, checkerrors.Filler(ir.ComponentName(), i, err.Error()))
		}
		if i == 0 && beginsWithCastOn {
			castOnCount = state.LiveStitchCount
		}
	}

	if beginsWithCastOn && castOnCount != ir.StartingStitchCount() {
		errs = append(errs, checkerrors.Geometric(ir.ComponentName(), 0,
			castOnMismatchMessage(castOnCount, ir.StartingStitchCount())))
	}

	lastIdx := len(ops) - 1
	if state.LiveStitchCount != ir.EndingStitchCount() {
		errs = append(errs, checkerrors.Geometric(ir.ComponentName(), lastIdx,
			endingCountMismatchMessage(state.LiveStitchCount, ir.EndingStitchCount())))
	}

	return &Result{Passed: len(errs) == 0, FinalState: state, Errors: errs}
}

// setupState implements spec.md §4.4's setup rule: a component that opens
// with CAST_ON starts empty (the CAST_ON establishes the count); any other
// component (PICKUP_STITCHES first, or a continuation-downstream section)
// is pre-loaded with starting_stitch_count before its first op runs. A
// PICKUP_STITCHES op then adds its own count on top of that preload, so a
// PICKUP_STITCHES-first component's final live count includes both.
func setupState(ir *domain.ComponentIR, beginsWithCastOn bool) *vm.State {
	if beginsWithCastOn {
		return vm.NewState(0)
	}
	return vm.NewState(ir.StartingStitchCount())
}

func castOnMismatchMessage(got, want int) string {
	return fmt.Sprintf("cast-on establishes %d live stitches, declared starting_stitch_count is %d", got, want)
}

func endingCountMismatchMessage(got, want int) string {
	return fmt.Sprintf("final live count %d does not match declared ending_stitch_count %d", got, want)
}
