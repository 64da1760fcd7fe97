package topology

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/knitalgebra/checker/internal/domain"
)

//go:embed data/*.yaml
var embeddedData embed.FS

// rawEdgeType, rawJoinType, rawCompatibility, rawDefaults, rawArithmetic are
// the wire shapes of the five embedded YAML tables (spec.md §6), kept
// separate from the public Entry types they are converted into. A YAML
// syntax error fails with a decode error; a field missing from an entry is
// not reported and decodes to its zero value.
type rawEdgeType struct {
	ID              string `yaml:"id"`
	Description     string `yaml:"description"`
	HasLiveStitches bool   `yaml:"has_live_stitches"`
	IsTerminal      bool   `yaml:"is_terminal"`
	PhaseConstraint string `yaml:"phase_constraint"`
}

type rawJoinType struct {
	ID                  string   `yaml:"id"`
	Description         string   `yaml:"description"`
	Symmetric           bool     `yaml:"symmetric"`
	Directional         bool     `yaml:"directional"`
	OwnsParameters      []string `yaml:"owns_parameters"`
	ConstructionMethods []string `yaml:"construction_methods"`
}

type rawCompatibility struct {
	EdgeTypeA   string `yaml:"edge_type_a"`
	EdgeTypeB   string `yaml:"edge_type_b"`
	JoinType    string `yaml:"join_type"`
	Result      string `yaml:"result"`
	ConditionFn string `yaml:"condition_fn"`
}

type rawDefaults struct {
	EdgeTypeA string         `yaml:"edge_type_a"`
	EdgeTypeB string         `yaml:"edge_type_b"`
	JoinType  string         `yaml:"join_type"`
	Defaults  map[string]any `yaml:"defaults"`
}

type rawArithmetic struct {
	JoinType    string `yaml:"join_type"`
	Implication string `yaml:"implication"`
}

// Registry is the immutable, cross-validated set of topology lookup
// tables. The zero value is not usable; construct with Load. Nothing
// writes to the five tables after Load returns, so concurrent readers of
// them need no coordination (spec.md §5); the only post-Load write is the
// compiled-condition cache, which EvaluateCondition fills under its own
// lock.
type Registry struct {
	edgeTypes     map[domain.EdgeType]EdgeTypeEntry
	joinTypes     map[domain.JoinType]JoinTypeEntry
	compatibility map[CompatibilityKey]CompatibilityEntry
	defaults      map[CompatibilityKey]map[string]any
	arithmetic    map[domain.JoinType]ArithmeticEntry

	conditions *conditionEvaluator
}

// LoadError aggregates every cross-reference violation found while
// constructing a Registry. Construction fails atomically: either every
// table is internally consistent, or nothing is returned.
type LoadError struct {
	Violations []string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("topology registry failed to load (%d violation(s)):\n  - %s",
		len(e.Violations), strings.Join(e.Violations, "\n  - "))
}

// Load reads the five embedded YAML tables, decodes them, and runs
// cross-reference validation before returning. This is the only
// constructor; there is no path to an unvalidated Registry.
func Load() (*Registry, error) {
	edgeTypes, err := decodeEdgeTypes()
	if err != nil {
		return nil, err
	}
	joinTypes, err := decodeJoinTypes()
	if err != nil {
		return nil, err
	}
	compatibility, violations, err := decodeCompatibility()
	if err != nil {
		return nil, err
	}
	defaults, defaultViolations, err := decodeDefaults()
	if err != nil {
		return nil, err
	}
	violations = append(violations, defaultViolations...)
	arithmetic, arithViolations, err := decodeArithmetic()
	if err != nil {
		return nil, err
	}
	violations = append(violations, arithViolations...)

	r := &Registry{
		edgeTypes:     edgeTypes,
		joinTypes:     joinTypes,
		compatibility: compatibility,
		defaults:      defaults,
		arithmetic:    arithmetic,
		conditions:    newConditionEvaluator(),
	}

	violations = append(violations, r.crossValidate()...)
	if len(violations) > 0 {
		return nil, &LoadError{Violations: violations}
	}
	return r, nil
}

func readYAML(filename string, out any) error {
	raw, err := embeddedData.ReadFile("data/" + filename)
	if err != nil {
		return fmt.Errorf("reading embedded %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing %s: %w", filename, err)
	}
	return nil
}

func decodeEdgeTypes() (map[domain.EdgeType]EdgeTypeEntry, error) {
	var rows []rawEdgeType
	if err := readYAML("edge_types.yaml", &rows); err != nil {
		return nil, err
	}
	out := make(map[domain.EdgeType]EdgeTypeEntry, len(rows))
	for _, row := range rows {
		et := domain.EdgeType(row.ID)
		out[et] = EdgeTypeEntry{
			ID:              et,
			Description:     strings.TrimSpace(row.Description),
			HasLiveStitches: row.HasLiveStitches,
			IsTerminal:      row.IsTerminal,
			PhaseConstraint: domain.Phase(row.PhaseConstraint),
		}
	}
	return out, nil
}

func decodeJoinTypes() (map[domain.JoinType]JoinTypeEntry, error) {
	var rows []rawJoinType
	if err := readYAML("join_types.yaml", &rows); err != nil {
		return nil, err
	}
	out := make(map[domain.JoinType]JoinTypeEntry, len(rows))
	for _, row := range rows {
		jt := domain.JoinType(row.ID)
		out[jt] = JoinTypeEntry{
			ID:                  jt,
			Description:         strings.TrimSpace(row.Description),
			Symmetric:           row.Symmetric,
			Directional:         row.Directional,
			OwnsParameters:      append([]string(nil), row.OwnsParameters...),
			ConstructionMethods: append([]string(nil), row.ConstructionMethods...),
		}
	}
	return out, nil
}

func decodeCompatibility() (map[CompatibilityKey]CompatibilityEntry, []string, error) {
	var rows []rawCompatibility
	if err := readYAML("compatibility.yaml", &rows); err != nil {
		return nil, nil, err
	}
	out := make(map[CompatibilityKey]CompatibilityEntry, len(rows))
	var violations []string
	for _, row := range rows {
		key := CompatibilityKey{
			EdgeTypeA: domain.EdgeType(row.EdgeTypeA),
			EdgeTypeB: domain.EdgeType(row.EdgeTypeB),
			JoinType:  domain.JoinType(row.JoinType),
		}
		result := domain.CompatibilityResult(row.Result)
		if result == domain.CompatibilityConditional && row.ConditionFn == "" {
			violations = append(violations, fmt.Sprintf(
				"compatibility entry (%s, %s, %s) is CONDITIONAL but names no condition_fn",
				key.EdgeTypeA, key.EdgeTypeB, key.JoinType))
		}
		if _, dup := out[key]; dup {
			violations = append(violations, fmt.Sprintf(
				"compatibility entry (%s, %s, %s) is duplicated", key.EdgeTypeA, key.EdgeTypeB, key.JoinType))
			continue
		}
		out[key] = CompatibilityEntry{Key: key, Result: result, ConditionFn: row.ConditionFn}
	}
	return out, violations, nil
}

func decodeDefaults() (map[CompatibilityKey]map[string]any, []string, error) {
	var rows []rawDefaults
	if err := readYAML("defaults.yaml", &rows); err != nil {
		return nil, nil, err
	}
	out := make(map[CompatibilityKey]map[string]any, len(rows))
	var violations []string
	for _, row := range rows {
		key := CompatibilityKey{
			EdgeTypeA: domain.EdgeType(row.EdgeTypeA),
			EdgeTypeB: domain.EdgeType(row.EdgeTypeB),
			JoinType:  domain.JoinType(row.JoinType),
		}
		if _, dup := out[key]; dup {
			violations = append(violations, fmt.Sprintf(
				"defaults entry (%s, %s, %s) is duplicated", key.EdgeTypeA, key.EdgeTypeB, key.JoinType))
			continue
		}
		cp := make(map[string]any, len(row.Defaults))
		for k, v := range row.Defaults {
			cp[k] = v
		}
		out[key] = cp
	}
	return out, violations, nil
}

func decodeArithmetic() (map[domain.JoinType]ArithmeticEntry, []string, error) {
	var rows []rawArithmetic
	if err := readYAML("arithmetic_implications.yaml", &rows); err != nil {
		return nil, nil, err
	}
	out := make(map[domain.JoinType]ArithmeticEntry, len(rows))
	var violations []string
	for _, row := range rows {
		jt := domain.JoinType(row.JoinType)
		if _, dup := out[jt]; dup {
			violations = append(violations, fmt.Sprintf("join type %s has more than one arithmetic entry", jt))
			continue
		}
		out[jt] = ArithmeticEntry{JoinType: jt, Implication: domain.ArithmeticLaw(row.Implication)}
	}
	return out, violations, nil
}

// crossValidate implements spec.md §4.1's cross-reference rules, grounded
// on the Python original's _validate_cross_references. It collects every
// violation rather than returning on the first.
func (r *Registry) crossValidate() []string {
	var violations []string

	terminal := make(map[domain.EdgeType]bool)
	for et, entry := range r.edgeTypes {
		if !et.IsValid() {
			violations = append(violations, fmt.Sprintf("edge_types declares unknown edge type %q", et))
		}
		terminal[et] = entry.IsTerminal
	}
	for jt := range r.joinTypes {
		if !jt.IsValid() {
			violations = append(violations, fmt.Sprintf("join_types declares unknown join type %q", jt))
		}
	}

	for key := range r.compatibility {
		if _, ok := r.edgeTypes[key.EdgeTypeA]; !ok {
			violations = append(violations, fmt.Sprintf(
				"compatibility entry (%s, %s, %s): edge_type_a is not defined in edge_types",
				key.EdgeTypeA, key.EdgeTypeB, key.JoinType))
		} else if terminal[key.EdgeTypeA] {
			violations = append(violations, fmt.Sprintf(
				"compatibility entry (%s, %s, %s): edge_type_a %s is terminal and cannot appear here",
				key.EdgeTypeA, key.EdgeTypeB, key.JoinType, key.EdgeTypeA))
		}
		if _, ok := r.edgeTypes[key.EdgeTypeB]; !ok {
			violations = append(violations, fmt.Sprintf(
				"compatibility entry (%s, %s, %s): edge_type_b is not defined in edge_types",
				key.EdgeTypeA, key.EdgeTypeB, key.JoinType))
		} else if terminal[key.EdgeTypeB] {
			violations = append(violations, fmt.Sprintf(
				"compatibility entry (%s, %s, %s): edge_type_b %s is terminal and cannot appear here",
				key.EdgeTypeA, key.EdgeTypeB, key.JoinType, key.EdgeTypeB))
		}
		if _, ok := r.joinTypes[key.JoinType]; !ok {
			violations = append(violations, fmt.Sprintf(
				"compatibility entry (%s, %s, %s): join_type is not defined in join_types",
				key.EdgeTypeA, key.EdgeTypeB, key.JoinType))
		}
	}

	for key := range r.defaults {
		if _, ok := r.edgeTypes[key.EdgeTypeA]; !ok {
			violations = append(violations, fmt.Sprintf(
				"defaults entry (%s, %s, %s): edge_type_a is not defined in edge_types",
				key.EdgeTypeA, key.EdgeTypeB, key.JoinType))
		}
		if _, ok := r.edgeTypes[key.EdgeTypeB]; !ok {
			violations = append(violations, fmt.Sprintf(
				"defaults entry (%s, %s, %s): edge_type_b is not defined in edge_types",
				key.EdgeTypeA, key.EdgeTypeB, key.JoinType))
		}
		if _, ok := r.joinTypes[key.JoinType]; !ok {
			violations = append(violations, fmt.Sprintf(
				"defaults entry (%s, %s, %s): join_type is not defined in join_types",
				key.EdgeTypeA, key.EdgeTypeB, key.JoinType))
		}
	}

	for jt := range r.joinTypes {
		if _, ok := r.arithmetic[jt]; !ok {
			violations = append(violations, fmt.Sprintf("join type %s has no arithmetic_implications entry", jt))
		}
	}
	for jt := range r.arithmetic {
		if _, ok := r.joinTypes[jt]; !ok {
			violations = append(violations, fmt.Sprintf("arithmetic_implications references unknown join type %s", jt))
		}
	}

	return violations
}

// Compatibility returns VALID, INVALID, or CONDITIONAL for the ordered
// triple; a missing entry defaults to INVALID per spec.md §4.1.
func (r *Registry) Compatibility(a, b domain.EdgeType, j domain.JoinType) domain.CompatibilityResult {
	entry, ok := r.compatibility[CompatibilityKey{EdgeTypeA: a, EdgeTypeB: b, JoinType: j}]
	if !ok {
		return domain.CompatibilityInvalid
	}
	return entry.Result
}

// EvaluateCondition runs the condition_fn named by a CONDITIONAL
// compatibility entry for (a, b, j) against variables. It returns an error
// if no CONDITIONAL entry exists for that key.
func (r *Registry) EvaluateCondition(a, b domain.EdgeType, j domain.JoinType, variables map[string]any) (bool, error) {
	entry, ok := r.compatibility[CompatibilityKey{EdgeTypeA: a, EdgeTypeB: b, JoinType: j}]
	if !ok || entry.Result != domain.CompatibilityConditional {
		return false, fmt.Errorf("no CONDITIONAL compatibility entry for (%s, %s, %s)", a, b, j)
	}
	return r.conditions.Evaluate(entry.ConditionFn, variables)
}

// Defaults returns an independent copy of the default parameters for the
// ordered triple, or an empty map if none are declared.
func (r *Registry) Defaults(a, b domain.EdgeType, j domain.JoinType) map[string]any {
	src := r.defaults[CompatibilityKey{EdgeTypeA: a, EdgeTypeB: b, JoinType: j}]
	cp := make(map[string]any, len(src))
	for k, v := range src {
		cp[k] = v
	}
	return cp
}

// Arithmetic returns the arithmetic law governing j. Cross-validation at
// Load time guarantees every join type present in joinTypes has exactly
// one entry, so this only returns false for a JoinType the registry never
// declared at all.
func (r *Registry) Arithmetic(j domain.JoinType) (domain.ArithmeticLaw, bool) {
	entry, ok := r.arithmetic[j]
	return entry.Implication, ok
}

// EdgeTypeInfo returns the edge-type table row for et.
func (r *Registry) EdgeTypeInfo(et domain.EdgeType) (EdgeTypeEntry, bool) {
	entry, ok := r.edgeTypes[et]
	return entry, ok
}

// JoinTypeInfo returns the join-type table row for jt.
func (r *Registry) JoinTypeInfo(jt domain.JoinType) (JoinTypeEntry, bool) {
	entry, ok := r.joinTypes[jt]
	return entry, ok
}
