// Package joincheck implements the Join Validator: for each declared
// Join, selects the arithmetic law from the registry and checks the two
// joined edge counts against it (spec.md §4.5).
package joincheck

import (
	"fmt"
	"math"

	"github.com/knitalgebra/checker/internal/domain"
	checkerrors "github.com/knitalgebra/checker/internal/domain/errors"
	"github.com/knitalgebra/checker/internal/topology"
)

// Validate checks one join against edgeCounts (the flat
// "component_name.edge_name" -> count table built by the caller) using
// the arithmetic law the registry associates with join.JoinType(). gauge
// and toleranceMM are resolved by the caller (internal/checkall) per
// spec.md §4.6's tolerance/gauge resolution rules.
func Validate(
	reg *topology.Registry,
	join *domain.Join,
	edgeCounts map[string]int,
	gauge domain.Gauge,
	toleranceMM float64,
) *checkerrors.CheckerError {
	law, ok := reg.Arithmetic(join.JoinType())
	if !ok {
		return checkerrors.Geometric(join.ID(), -1, fmt.Sprintf("no arithmetic law registered for join type %s", join.JoinType()))
	}

	countA, okA := edgeCounts[join.EdgeARef()]
	if !okA {
		return checkerrors.Geometric(join.ID(), -1, fmt.Sprintf("unresolved edge ref %s", join.EdgeARef()))
	}
	countB, okB := edgeCounts[join.EdgeBRef()]
	if !okB {
		return checkerrors.Geometric(join.ID(), -1, fmt.Sprintf("unresolved edge ref %s", join.EdgeBRef()))
	}

	switch law {
	case domain.ArithmeticOneToOne, domain.ArithmeticStructural:
		return checkTolerance(join, law, countA, countB, gauge, toleranceMM)
	case domain.ArithmeticAdditive:
		return checkAdditive(join, countA, countB)
	case domain.ArithmeticRatio:
		return checkRatio(join, countA, countB, gauge, toleranceMM)
	default:
		return checkerrors.Geometric(join.ID(), -1, fmt.Sprintf("unknown arithmetic law %s", law))
	}
}

// ValidateAll validates every join in joins, in order, never
// short-circuiting on a failure.
func ValidateAll(
	reg *topology.Registry,
	joins []*domain.Join,
	edgeCounts map[string]int,
	gaugeFor func(join *domain.Join) domain.Gauge,
	toleranceFor func(join *domain.Join) float64,
) []*checkerrors.CheckerError {
	var errs []*checkerrors.CheckerError
	for _, j := range joins {
		if err := Validate(reg, j, edgeCounts, gaugeFor(j), toleranceFor(j)); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func checkTolerance(join *domain.Join, law domain.ArithmeticLaw, countA, countB int, gauge domain.Gauge, toleranceMM float64) *checkerrors.CheckerError {
	deviationMM := gauge.StitchCountToMM(math.Abs(float64(countA - countB)))
	if deviationMM > toleranceMM {
		return checkerrors.Geometric(join.ID(), -1, fmt.Sprintf(
			"%s join: count_a=%d count_b=%d deviation=%.2fmm exceeds tolerance=%.2fmm",
			law, countA, countB, deviationMM, toleranceMM))
	}
	return nil
}

func checkAdditive(join *domain.Join, countA, countB int) *checkerrors.CheckerError {
	castOnCount, err := intParam(join, "cast_on_count")
	if err != nil {
		return checkerrors.Geometric(join.ID(), -1, err.Error())
	}
	expectedB := countA + castOnCount
	if countB != expectedB {
		return checkerrors.Geometric(join.ID(), -1, fmt.Sprintf(
			"ADDITIVE join: count_a=%d + cast_on_count=%d = %d, but count_b=%d", countA, castOnCount, expectedB, countB))
	}
	return nil
}

func checkRatio(join *domain.Join, countA, countB int, gauge domain.Gauge, toleranceMM float64) *checkerrors.CheckerError {
	ratio, err := floatParam(join, "pickup_ratio")
	if err != nil {
		return checkerrors.Geometric(join.ID(), -1, err.Error())
	}
	expectedB := int(math.Floor(float64(countA) * ratio))
	deviationMM := gauge.StitchCountToMM(math.Abs(float64(countB - expectedB)))
	if deviationMM > toleranceMM {
		return checkerrors.Geometric(join.ID(), -1, fmt.Sprintf(
			"RATIO join: count_a=%d pickup_ratio=%.3f expected_b=%d count_b=%d deviation=%.2fmm exceeds tolerance=%.2fmm",
			countA, ratio, expectedB, countB, deviationMM, toleranceMM))
	}
	return nil
}

func intParam(join *domain.Join, key string) (int, error) {
	v, ok := join.Param(key)
	if !ok {
		return 0, fmt.Errorf("join %s: missing required parameter %q", join.ID(), key)
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("join %s: parameter %q has type %T, want int", join.ID(), key, v)
	}
}

func floatParam(join *domain.Join, key string) (float64, error) {
	v, ok := join.Param(key)
	if !ok {
		return 0, fmt.Errorf("join %s: missing required parameter %q", join.ID(), key)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("join %s: parameter %q has type %T, want float", join.ID(), key, v)
	}
}
