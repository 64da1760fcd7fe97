// Package checker is the knitalgebra algebraic checker's public facade: it
// re-exports the domain model and wires the topology registry, VM,
// simulator, join validator, and check-all orchestrator behind a single
// CheckAll entry point, the way mbflow's root package re-exports its
// internal executor and domain types.
package checker

import (
	"github.com/rs/zerolog"

	"github.com/knitalgebra/checker/internal/checkall"
	"github.com/knitalgebra/checker/internal/domain"
	checkerrors "github.com/knitalgebra/checker/internal/domain/errors"
	"github.com/knitalgebra/checker/internal/topology"
)

// Domain model re-exports.
type (
	Edge              = domain.Edge
	Join              = domain.Join
	ComponentSpec     = domain.ComponentSpec
	ShapeManifest     = domain.ShapeManifest
	ComponentIR       = domain.ComponentIR
	Operation         = domain.Operation
	Gauge             = domain.Gauge
	StitchMotif       = domain.StitchMotif
	YarnSpec          = domain.YarnSpec
	Constraint        = domain.Constraint
	CheckerError      = checkerrors.CheckerError
	EdgeType          = domain.EdgeType
	JoinType          = domain.JoinType
	ShapeType         = domain.ShapeType
	Handedness        = domain.Handedness
	ArithmeticLaw     = domain.ArithmeticLaw
	ErrorOrigin       = domain.ErrorOrigin
	ValidationError   = domain.ValidationError
	CastOn            = domain.CastOn
	WorkEven          = domain.WorkEven
	IncreaseSection   = domain.IncreaseSection
	DecreaseSection   = domain.DecreaseSection
	Taper             = domain.Taper
	BindOff           = domain.BindOff
	Hold              = domain.Hold
	Separate          = domain.Separate
	PickupStitches    = domain.PickupStitches
)

// Edge type constants.
const (
	EdgeTypeCastOn     = domain.EdgeTypeCastOn
	EdgeTypeLiveStitch = domain.EdgeTypeLiveStitch
	EdgeTypeBoundOff   = domain.EdgeTypeBoundOff
	EdgeTypeSelvedge   = domain.EdgeTypeSelvedge
	EdgeTypeOpen       = domain.EdgeTypeOpen
)

// Join type constants.
const (
	JoinTypeContinuation = domain.JoinTypeContinuation
	JoinTypeHeldStitch   = domain.JoinTypeHeldStitch
	JoinTypeCastOnJoin   = domain.JoinTypeCastOnJoin
	JoinTypePickup       = domain.JoinTypePickup
	JoinTypeSeam         = domain.JoinTypeSeam
)

// Error origin constants.
const (
	FillerOrigin    = domain.FillerOrigin
	GeometricOrigin = domain.GeometricOrigin
)

// Shape type constants.
const (
	ShapeCylinder  = domain.ShapeCylinder
	ShapeTrapezoid = domain.ShapeTrapezoid
	ShapeRectangle = domain.ShapeRectangle
)

// Handedness constants.
const (
	HandednessLeft  = domain.HandednessLeft
	HandednessRight = domain.HandednessRight
	HandednessNone  = domain.HandednessNone
)

// Constructor re-exports. These forward to the domain package's validating
// constructors; a malformed argument surfaces the same ValidationError the
// domain package itself returns.
var (
	NewEdge          = domain.NewEdge
	NewJoin          = domain.NewJoin
	NewComponentSpec = domain.NewComponentSpec
	NewShapeManifest = domain.NewShapeManifest
	NewComponentIR   = domain.NewComponentIR
	NewGauge         = domain.NewGauge
)

// Registry wraps the loaded topology registry — edge/join type tables,
// compatibility rules, defaults, and arithmetic laws — the only piece of
// state a caller must load once and reuse across CheckAll calls.
type Registry struct {
	inner *topology.Registry
}

// LoadRegistry loads and cross-validates the embedded topology registry.
func LoadRegistry() (*Registry, error) {
	r, err := topology.Load()
	if err != nil {
		return nil, err
	}
	return &Registry{inner: r}, nil
}

// Result is the outcome of a CheckAll run: every error found across every
// component simulation and every join validation, collected without
// short-circuiting.
type Result struct {
	Passed bool
	Errors []*CheckerError
}

// CheckAll runs the complete checker: simulates every component's
// operations, extracts edge stitch counts, and validates every join's
// arithmetic law against the manifest's declared topology. irs supplies
// each component's instruction sequence by name; constraints supplies each
// component's gauge and physical tolerance by name (both may be nil/empty).
// A component with no irs entry yields a GEOMETRIC_ORIGIN error; a
// component with no constraints entry gets the orchestrator's default
// tolerance, and a join with no constraint on either side has no gauge, so
// it yields an error and is skipped. log is optional; pass nil to disable
// tracing.
func CheckAll(reg *Registry, manifest *ShapeManifest, irs map[string]*ComponentIR, constraints map[string]Constraint, log *zerolog.Logger) *Result {
	out := checkall.CheckAll(reg.inner, manifest, irs, constraints, log)
	return &Result{Passed: out.Passed, Errors: out.Errors}
}
