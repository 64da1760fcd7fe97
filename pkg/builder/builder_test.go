package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knitalgebra/checker/internal/domain"
)

func TestEdgeBuilder_BuildsValidEdge(t *testing.T) {
	edge, err := NewEdge("hem", domain.EdgeTypeBoundOff).DimensionKey("width").Build()
	require.NoError(t, err)
	assert.Equal(t, "hem", edge.Name())
	assert.Equal(t, domain.EdgeTypeBoundOff, edge.EdgeType())
	assert.False(t, edge.HasJoin())
}

func TestEdgeBuilder_PropagatesConstructorValidationError(t *testing.T) {
	_, err := NewEdge("", domain.EdgeTypeBoundOff).Build()
	assert.Error(t, err)
}

func TestJoinBuilder_BuildsWithParameters(t *testing.T) {
	join, err := NewJoin("body-sleeve", domain.JoinTypePickup, "body.side", "sleeve.top").
		Param("pickup_ratio", 0.75).
		Param("pickup_direction", "right_side").
		Build()
	require.NoError(t, err)
	ratio, ok := join.Param("pickup_ratio")
	require.True(t, ok)
	assert.Equal(t, 0.75, ratio)
}

func TestComponentSpecBuilder_ChainsEdgesAndDimensions(t *testing.T) {
	edge, err := NewEdge("hem", domain.EdgeTypeBoundOff).Build()
	require.NoError(t, err)

	spec, err := NewComponentSpec("scarf", domain.ShapeRectangle).
		Dimension("width", 20).
		Edge(edge).
		InstantiationCount(1).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "scarf", spec.Name())

	got, ok := spec.EdgeByName("hem")
	require.True(t, ok)
	assert.Equal(t, edge, got)
}

func TestShapeManifestBuilder_CollectsComponentsAndJoins(t *testing.T) {
	edge, err := NewEdge("hem", domain.EdgeTypeBoundOff).Build()
	require.NoError(t, err)
	spec, err := NewComponentSpec("scarf", domain.ShapeRectangle).Edge(edge).Build()
	require.NoError(t, err)

	manifest := NewShapeManifest().Component(spec).Build()
	_, ok := manifest.ComponentByName("scarf")
	assert.True(t, ok)
}

func TestComponentIRBuilder_BuildsWithOperations(t *testing.T) {
	ir, err := NewComponentIR("scarf", 40, 0).
		Op(domain.CastOn{Count: 40}).
		Op(domain.WorkEven{Rows: 200}).
		Build()
	require.NoError(t, err)
	assert.Len(t, ir.Operations(), 2)
}

func TestComponentIRBuilder_PropagatesConstructorValidationError(t *testing.T) {
	_, err := NewComponentIR("", 0, 0).Build()
	assert.Error(t, err)
}
