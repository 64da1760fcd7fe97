// Package vm implements the per-component virtual machine: state plus the
// nine operation handlers of spec.md §4.3. A State is owned by exactly one
// simulate call at a time (spec.md §5); nothing here takes a lock.
package vm

// State is the VM's mutable simulation state. The zero value is not
// useful; construct with NewState.
type State struct {
	LiveStitchCount int
	HeldStitches    map[string]int
	RowCounter      int
}

// NewState returns a State with liveStitchCount live stitches already on
// the needle, an empty holder set, and a zeroed row counter. Passing 0 is
// the usual starting point for a component whose first operation is
// CAST_ON.
func NewState(liveStitchCount int) *State {
	return &State{
		LiveStitchCount: liveStitchCount,
		HeldStitches:    make(map[string]int),
		RowCounter:      0,
	}
}

// Clone returns an independent copy of the state.
func (s *State) Clone() *State {
	held := make(map[string]int, len(s.HeldStitches))
	for k, v := range s.HeldStitches {
		held[k] = v
	}
	return &State{
		LiveStitchCount: s.LiveStitchCount,
		HeldStitches:    held,
		RowCounter:      s.RowCounter,
	}
}
