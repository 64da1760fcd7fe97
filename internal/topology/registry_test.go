package topology

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knitalgebra/checker/internal/domain"
)

func TestLoad_SucceedsAndExposesTables(t *testing.T) {
	r, err := Load()
	require.NoError(t, err)
	require.NotNil(t, r)

	et, ok := r.EdgeTypeInfo(domain.EdgeTypeOpen)
	require.True(t, ok)
	assert.True(t, et.IsTerminal)

	boundOff, ok := r.EdgeTypeInfo(domain.EdgeTypeBoundOff)
	require.True(t, ok)
	assert.False(t, boundOff.IsTerminal)

	jt, ok := r.JoinTypeInfo(domain.JoinTypeSeam)
	require.True(t, ok)
	assert.True(t, jt.Symmetric)
}

func TestCompatibility_OrderedKeyNotNormalized(t *testing.T) {
	r, err := Load()
	require.NoError(t, err)

	assert.Equal(t, domain.CompatibilityValid,
		r.Compatibility(domain.EdgeTypeLiveStitch, domain.EdgeTypeCastOn, domain.JoinTypeCastOnJoin))
	assert.Equal(t, domain.CompatibilityInvalid,
		r.Compatibility(domain.EdgeTypeCastOn, domain.EdgeTypeLiveStitch, domain.JoinTypeCastOnJoin))
}

func TestCompatibility_MissingEntryDefaultsToInvalid(t *testing.T) {
	r, err := Load()
	require.NoError(t, err)

	got := r.Compatibility(domain.EdgeTypeOpen, domain.EdgeTypeOpen, domain.JoinTypeSeam)
	assert.Equal(t, domain.CompatibilityInvalid, got)
}

func TestArithmetic_EveryJoinTypeHasExactlyOneEntry(t *testing.T) {
	r, err := Load()
	require.NoError(t, err)

	cases := map[domain.JoinType]domain.ArithmeticLaw{
		domain.JoinTypeContinuation: domain.ArithmeticOneToOne,
		domain.JoinTypeHeldStitch:   domain.ArithmeticOneToOne,
		domain.JoinTypeCastOnJoin:   domain.ArithmeticAdditive,
		domain.JoinTypePickup:       domain.ArithmeticRatio,
		domain.JoinTypeSeam:         domain.ArithmeticStructural,
	}
	for jt, want := range cases {
		got, ok := r.Arithmetic(jt)
		require.True(t, ok, "join type %s missing arithmetic entry", jt)
		assert.Equal(t, want, got)
	}
}

func TestDefaults_ReturnsIndependentCopy(t *testing.T) {
	r, err := Load()
	require.NoError(t, err)

	d := r.Defaults(domain.EdgeTypeLiveStitch, domain.EdgeTypeCastOn, domain.JoinTypeCastOnJoin)
	require.Contains(t, d, "cast_on_method")
	d["cast_on_method"] = "mutated"

	d2 := r.Defaults(domain.EdgeTypeLiveStitch, domain.EdgeTypeCastOn, domain.JoinTypeCastOnJoin)
	assert.Equal(t, "backward_loop", d2["cast_on_method"])
}

func TestLoad_RejectsMalformedRegistry(t *testing.T) {
	r := &Registry{
		edgeTypes: map[domain.EdgeType]EdgeTypeEntry{
			domain.EdgeTypeLiveStitch: {ID: domain.EdgeTypeLiveStitch},
		},
		joinTypes: map[domain.JoinType]JoinTypeEntry{
			domain.JoinTypeContinuation: {ID: domain.JoinTypeContinuation},
		},
		compatibility: map[CompatibilityKey]CompatibilityEntry{
			{EdgeTypeA: domain.EdgeTypeLiveStitch, EdgeTypeB: domain.EdgeTypeLiveStitch, JoinType: "NONEXISTENT_JOIN"}: {
				Result: domain.CompatibilityValid,
			},
		},
		defaults:   map[CompatibilityKey]map[string]any{},
		arithmetic: map[domain.JoinType]ArithmeticEntry{},
		conditions: newConditionEvaluator(),
	}

	violations := r.crossValidate()
	require.NotEmpty(t, violations)

	found := false
	for _, v := range violations {
		if strings.Contains(v, "NONEXISTENT_JOIN") {
			found = true
			break
		}
	}
	assert.True(t, found, "expected a violation naming the unknown join type, got %v", violations)
}
