// Package topology implements the Topology Registry: the five immutable
// lookup tables (edge types, join types, compatibility, defaults,
// arithmetic) loaded once from embedded YAML and cross-validated at
// startup. Nothing in this package writes to a table after Load returns.
package topology

import "github.com/knitalgebra/checker/internal/domain"

// EdgeTypeEntry is one row of the edge-type table.
type EdgeTypeEntry struct {
	ID               domain.EdgeType
	Description      string
	HasLiveStitches  bool
	IsTerminal       bool
	PhaseConstraint  domain.Phase
}

// JoinTypeEntry is one row of the join-type table.
type JoinTypeEntry struct {
	ID                  domain.JoinType
	Description         string
	Symmetric           bool
	Directional         bool
	OwnsParameters      []string
	ConstructionMethods []string
}

// CompatibilityKey is the ordered triple (edge_type_a, edge_type_b,
// join_type). It is never normalized or treated as a set — (A, B, J) and
// (B, A, J) are distinct keys.
type CompatibilityKey struct {
	EdgeTypeA domain.EdgeType
	EdgeTypeB domain.EdgeType
	JoinType  domain.JoinType
}

// CompatibilityEntry is one row of the compatibility table.
type CompatibilityEntry struct {
	Key         CompatibilityKey
	Result      domain.CompatibilityResult
	ConditionFn string // non-empty only when Result == CompatibilityConditional
}

// ArithmeticEntry is one row of the arithmetic table.
type ArithmeticEntry struct {
	JoinType    domain.JoinType
	Implication domain.ArithmeticLaw
}
