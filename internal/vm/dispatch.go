package vm

import (
	"fmt"

	"github.com/knitalgebra/checker/internal/domain"
)

// OperationError reports a precondition violation at the dispatch
// boundary. It is the internal-boundary result type spec.md §9 calls for:
// the VM never panics, Execute returns this instead and the simulator
// converts it into a classified CheckerError.
type OperationError struct {
	Kind   domain.OpKind
	Detail string
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Kind, e.Detail)
}

// Execute applies one operation to state in place, returning an
// *OperationError if op's precondition is violated. Dispatch is
// exhaustive over domain.OpKind by construction: every case below
// switches on a concrete Operation type, and the default arm reports any
// Operation this package does not know about rather than silently
// no-opping, so a new Operation variant added to package domain without a
// matching case here fails loudly at runtime instead of passing silently.
func Execute(state *State, op domain.Operation) error {
	switch o := op.(type) {
	case domain.CastOn:
		return execCastOn(state, o)
	case domain.WorkEven:
		return execWorkEven(state, o)
	case domain.IncreaseSection:
		return execIncreaseSection(state, o)
	case domain.DecreaseSection:
		return execDecreaseOrTaper(state, o.Rows, o.After, domain.OpDecreaseSection)
	case domain.Taper:
		// Open question in spec.md §9: TAPER and DECREASE_SECTION are
		// identical in the VM. Kept as two case arms (not a combined type
		// switch case) so a future third synonym is a one-line addition.
		return execDecreaseOrTaper(state, o.Rows, o.After, domain.OpTaper)
	case domain.BindOff:
		return execBindOff(state, o)
	case domain.Hold:
		return execHoldOrSeparate(state, o.Count, o.Label, domain.OpHold)
	case domain.Separate:
		return execHoldOrSeparate(state, o.Count, o.Label, domain.OpSeparate)
	case domain.PickupStitches:
		return execPickupStitches(state, o)
	default:
		return &OperationError{Detail: fmt.Sprintf("unhandled operation type %T", op)}
	}
}

func execCastOn(state *State, o domain.CastOn) error {
	if o.Count < 0 {
		return &OperationError{Kind: domain.OpCastOn, Detail: "count must be >= 0"}
	}
	state.LiveStitchCount = o.Count
	return nil
}

func execWorkEven(state *State, o domain.WorkEven) error {
	if o.Rows < 0 {
		return &OperationError{Kind: domain.OpWorkEven, Detail: "rows must be >= 0"}
	}
	state.RowCounter += o.Rows
	return nil
}

func execIncreaseSection(state *State, o domain.IncreaseSection) error {
	if o.After < state.LiveStitchCount {
		return &OperationError{
			Kind:   domain.OpIncreaseSection,
			Detail: fmt.Sprintf("stitch_count_after %d must be >= live count %d", o.After, state.LiveStitchCount),
		}
	}
	state.RowCounter += o.Rows
	state.LiveStitchCount = o.After
	return nil
}

func execDecreaseOrTaper(state *State, rows, after int, kind domain.OpKind) error {
	if after < 0 || after > state.LiveStitchCount {
		return &OperationError{
			Kind:   kind,
			Detail: fmt.Sprintf("stitch_count_after %d must be within [0, live count %d]", after, state.LiveStitchCount),
		}
	}
	state.RowCounter += rows
	state.LiveStitchCount = after
	return nil
}

func execBindOff(state *State, o domain.BindOff) error {
	if o.Count != nil && *o.Count != state.LiveStitchCount {
		return &OperationError{
			Kind:   domain.OpBindOff,
			Detail: fmt.Sprintf("declared count %d does not match live count %d", *o.Count, state.LiveStitchCount),
		}
	}
	state.LiveStitchCount = 0
	return nil
}

func execHoldOrSeparate(state *State, count int, label string, kind domain.OpKind) error {
	if count < 0 || count > state.LiveStitchCount {
		return &OperationError{
			Kind:   kind,
			Detail: fmt.Sprintf("count %d must be within [0, live count %d]", count, state.LiveStitchCount),
		}
	}
	state.LiveStitchCount -= count
	state.HeldStitches[label] += count
	return nil
}

func execPickupStitches(state *State, o domain.PickupStitches) error {
	if o.Count < 0 {
		return &OperationError{Kind: domain.OpPickupStitches, Detail: "count must be >= 0"}
	}
	state.LiveStitchCount += o.Count
	return nil
}
