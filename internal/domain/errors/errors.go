// Package errors holds the checker's result-level error type. It is kept
// separate from package domain (rather than folded into it) because it is
// assembled by every later stage (VM, simulator, join validator,
// orchestrator) from domain values, not itself a piece of the frozen data
// model.
package errors

import (
	"fmt"

	"github.com/knitalgebra/checker/internal/domain"
)

// CheckerError is a single classified failure found while checking a
// pattern. OperationIndex is -1 for join-level or missing-IR errors.
type CheckerError struct {
	ComponentNameOrJoinID string
	OperationIndex        int
	Message               string
	Origin                domain.ErrorOrigin
}

func (e *CheckerError) Error() string {
	if e.OperationIndex >= 0 {
		return fmt.Sprintf("[%s] %s (op #%d): %s", e.Origin, e.ComponentNameOrJoinID, e.OperationIndex, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Origin, e.ComponentNameOrJoinID, e.Message)
}

// Filler constructs a FILLER_ORIGIN CheckerError.
func Filler(componentName string, operationIndex int, message string) *CheckerError {
	return &CheckerError{
		ComponentNameOrJoinID: componentName,
		OperationIndex:        operationIndex,
		Message:               message,
		Origin:                domain.FillerOrigin,
	}
}

// Geometric constructs a GEOMETRIC_ORIGIN CheckerError. operationIndex is
// conventionally -1 for join-level or boundary-count errors, but callers
// that do have an operation index (e.g. the final ending_stitch_count
// mismatch) may pass it.
func Geometric(componentNameOrJoinID string, operationIndex int, message string) *CheckerError {
	return &CheckerError{
		ComponentNameOrJoinID: componentNameOrJoinID,
		OperationIndex:        operationIndex,
		Message:               message,
		Origin:                domain.GeometricOrigin,
	}
}
