package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knitalgebra/checker/internal/domain"
)

func mustIR(t *testing.T, name string, ops []domain.Operation, start, end int) *domain.ComponentIR {
	t.Helper()
	ir, err := domain.NewComponentIR(name, domain.HandednessNone, ops, start, end)
	require.NoError(t, err)
	return ir
}

func TestComponent_PlainScarfPasses(t *testing.T) {
	ir := mustIR(t, "scarf", []domain.Operation{
		domain.CastOn{Count: 40},
		domain.WorkEven{Rows: 200},
		domain.BindOff{Count: intp(40)},
	}, 40, 0)

	result := Component(ir)
	assert.True(t, result.Passed)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 0, result.FinalState.LiveStitchCount)
}

func TestComponent_BadEndingCountFails(t *testing.T) {
	ir := mustIR(t, "scarf", []domain.Operation{
		domain.CastOn{Count: 40},
		domain.WorkEven{Rows: 200},
		domain.BindOff{Count: intp(40)},
	}, 40, 80)

	result := Component(ir)
	require.False(t, result.Passed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, domain.GeometricOrigin, result.Errors[0].Origin)
	assert.Equal(t, 2, result.Errors[0].OperationIndex)
}

func TestComponent_IllegalHoldFails(t *testing.T) {
	ir := mustIR(t, "piece", []domain.Operation{
		domain.CastOn{Count: 10},
		domain.Hold{Count: 20, Label: "x"},
	}, 10, 10)

	result := Component(ir)
	require.False(t, result.Passed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, domain.FillerOrigin, result.Errors[0].Origin)
	assert.Equal(t, 1, result.Errors[0].OperationIndex)
}

func TestComponent_EmptyOperationsIsOneFillerError(t *testing.T) {
	ir := mustIR(t, "piece", nil, 0, 0)

	result := Component(ir)
	require.False(t, result.Passed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, domain.FillerOrigin, result.Errors[0].Origin)
}

func TestComponent_ContinuationDownstreamStartsPreloaded(t *testing.T) {
	ir := mustIR(t, "body", []domain.Operation{
		domain.WorkEven{Rows: 10},
		domain.BindOff{Count: nil},
	}, 80, 0)

	result := Component(ir)
	assert.True(t, result.Passed)
	assert.Equal(t, 10, result.FinalState.RowCounter)
	assert.Equal(t, 0, result.FinalState.LiveStitchCount)
}

func intp(n int) *int { return &n }
