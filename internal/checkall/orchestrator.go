// Package checkall implements the Check-All Orchestrator, the checker's
// single public entry point: run every component's simulation, build the
// flat edge-count table, validate every join, and return every error
// found in one pass (spec.md §4.6).
package checkall

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/knitalgebra/checker/internal/domain"
	checkerrors "github.com/knitalgebra/checker/internal/domain/errors"
	"github.com/knitalgebra/checker/internal/infrastructure/logger"
	"github.com/knitalgebra/checker/internal/joincheck"
	"github.com/knitalgebra/checker/internal/simulate"
	"github.com/knitalgebra/checker/internal/topology"
)

// defaultToleranceMM is applied when a component's Constraint is absent,
// grounded on the Python original's _DEFAULT_TOLERANCE_MM.
const defaultToleranceMM = 10.0

// Result is the top-level outcome of a check_all run.
type Result struct {
	Passed bool
	Errors []*checkerrors.CheckerError
}

// CheckAll runs the complete checker over every component in manifest and
// every join, against irs (component name -> ComponentIR) and constraints
// (component name -> Constraint). A component missing from irs contributes
// a single GEOMETRIC_ORIGIN error and is otherwise skipped; a join whose
// components are missing a resolvable gauge contributes a single soft
// error and is otherwise skipped. No step short-circuits the rest.
//
// log is optional; pass nil to disable tracing entirely (the default —
// tracing never affects passed/Errors, so determinism is unaffected
// either way).
func CheckAll(reg *topology.Registry, manifest *domain.ShapeManifest, irs map[string]*domain.ComponentIR, constraints map[string]domain.Constraint, log *zerolog.Logger) *Result {
	effectiveLog := logger.Disabled()
	if log != nil {
		effectiveLog = *log
	}
	runID := uuid.New()
	start := time.Now()

	var allErrors []*checkerrors.CheckerError
	edgeCounts := make(map[string]int)
	pickupDownstream := pickupDownstreamEdges(manifest)

	for _, spec := range manifest.Components() {
		name := spec.Name()
		ir, ok := irs[name]
		if !ok {
			allErrors = append(allErrors, checkerrors.Geometric(name, -1, "no ComponentIR supplied"))
			continue
		}

		result := simulate.Component(ir)
		allErrors = append(allErrors, result.Errors...)

		isPickup := func(componentName, edgeName string) bool {
			return pickupDownstream[componentName+"."+edgeName]
		}
		for edgeName, count := range simulate.ExtractEdgeCounts(spec, ir, result, isPickup) {
			edgeCounts[name+"."+edgeName] = count
		}
	}

	for _, join := range manifest.Joins() {
		gauge, ok := joinGauge(join, constraints)
		if !ok {
			allErrors = append(allErrors, checkerrors.Geometric(join.ID(), -1, "no gauge available for join, skipping"))
			continue
		}
		tolerance := joinTolerance(join, constraints)
		if err := joincheck.Validate(reg, join, edgeCounts, gauge, tolerance); err != nil {
			allErrors = append(allErrors, err)
		}
	}

	effectiveLog.Debug().
		Str("run_id", runID.String()).
		Int("component_count", len(manifest.Components())).
		Int("join_count", len(manifest.Joins())).
		Int("error_count", len(allErrors)).
		Dur("elapsed", time.Since(start)).
		Msg("check_all completed")

	return &Result{Passed: len(allErrors) == 0, Errors: allErrors}
}

// pickupDownstreamEdges returns the set of "component.edge" refs that are
// edge_b of a PICKUP join, the input ExtractEdgeCounts needs for its
// LIVE_STITCH rule.
func pickupDownstreamEdges(manifest *domain.ShapeManifest) map[string]bool {
	out := make(map[string]bool)
	for _, j := range manifest.Joins() {
		if j.JoinType() == domain.JoinTypePickup {
			out[j.EdgeBRef()] = true
		}
	}
	return out
}

func componentNameFromRef(ref string) string {
	if i := strings.IndexByte(ref, '.'); i >= 0 {
		return ref[:i]
	}
	return ref
}

// joinTolerance picks the stricter (smaller) of the two joined
// components' declared tolerances, defaulting missing ones to
// defaultToleranceMM.
func joinTolerance(join *domain.Join, constraints map[string]domain.Constraint) float64 {
	tolA := defaultToleranceMM
	if c, ok := constraints[componentNameFromRef(join.EdgeARef())]; ok {
		tolA = c.PhysicalToleranceMM
	}
	tolB := defaultToleranceMM
	if c, ok := constraints[componentNameFromRef(join.EdgeBRef())]; ok {
		tolB = c.PhysicalToleranceMM
	}
	if tolA < tolB {
		return tolA
	}
	return tolB
}

// joinGauge returns the gauge of either joined component, preferring
// edge_a's. ok is false if neither component has a constraint.
func joinGauge(join *domain.Join, constraints map[string]domain.Constraint) (domain.Gauge, bool) {
	if c, ok := constraints[componentNameFromRef(join.EdgeARef())]; ok {
		return c.Gauge, true
	}
	if c, ok := constraints[componentNameFromRef(join.EdgeBRef())]; ok {
		return c.Gauge, true
	}
	return domain.Gauge{}, false
}
