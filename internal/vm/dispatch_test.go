package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knitalgebra/checker/internal/domain"
)

func TestExecute_CastOnOverwrites(t *testing.T) {
	s := NewState(5)
	require.NoError(t, Execute(s, domain.CastOn{Count: 40}))
	assert.Equal(t, 40, s.LiveStitchCount)
	assert.Equal(t, 0, s.RowCounter)
}

func TestExecute_WorkEvenAdvancesRowsOnly(t *testing.T) {
	s := NewState(40)
	require.NoError(t, Execute(s, domain.WorkEven{Rows: 200}))
	assert.Equal(t, 40, s.LiveStitchCount)
	assert.Equal(t, 200, s.RowCounter)
}

func TestExecute_IncreaseSectionRejectsDecrease(t *testing.T) {
	s := NewState(40)
	err := Execute(s, domain.IncreaseSection{Rows: 4, After: 39})
	require.Error(t, err)
	var opErr *OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, domain.OpIncreaseSection, opErr.Kind)
	assert.Equal(t, 40, s.LiveStitchCount, "state must be unchanged on precondition violation")
}

func TestExecute_DecreaseSectionAndTaperShareSemantics(t *testing.T) {
	s1 := NewState(40)
	require.NoError(t, Execute(s1, domain.DecreaseSection{Rows: 2, After: 36}))
	assert.Equal(t, 36, s1.LiveStitchCount)
	assert.Equal(t, 2, s1.RowCounter)

	s2 := NewState(40)
	require.NoError(t, Execute(s2, domain.Taper{Rows: 2, After: 36}))
	assert.Equal(t, s1.LiveStitchCount, s2.LiveStitchCount)
	assert.Equal(t, s1.RowCounter, s2.RowCounter)
}

func TestExecute_DecreaseSectionRejectsNegativeAfter(t *testing.T) {
	s := NewState(10)
	err := Execute(s, domain.DecreaseSection{Rows: 1, After: -1})
	require.Error(t, err)
}

func TestExecute_BindOffZeroesLive(t *testing.T) {
	s := NewState(40)
	require.NoError(t, Execute(s, domain.BindOff{Count: nil}))
	assert.Equal(t, 0, s.LiveStitchCount)
}

func TestExecute_BindOffRejectsMismatchedCount(t *testing.T) {
	s := NewState(40)
	count := 39
	err := Execute(s, domain.BindOff{Count: &count})
	require.Error(t, err)
	assert.Equal(t, 40, s.LiveStitchCount)
}

func TestExecute_HoldAccumulatesAcrossCalls(t *testing.T) {
	s := NewState(30)
	require.NoError(t, Execute(s, domain.Hold{Count: 10, Label: "left-front"}))
	require.NoError(t, Execute(s, domain.Separate{Count: 5, Label: "left-front"}))
	assert.Equal(t, 15, s.HeldStitches["left-front"])
	assert.Equal(t, 15, s.LiveStitchCount)
}

func TestExecute_HoldRejectsOverdraw(t *testing.T) {
	s := NewState(10)
	err := Execute(s, domain.Hold{Count: 20, Label: "x"})
	require.Error(t, err)
	var opErr *OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, domain.OpHold, opErr.Kind)
}

func TestExecute_PickupStitchesAdds(t *testing.T) {
	s := NewState(25)
	require.NoError(t, Execute(s, domain.PickupStitches{Count: 75}))
	assert.Equal(t, 100, s.LiveStitchCount)
}
