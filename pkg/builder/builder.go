// Package builder provides fluent construction helpers for the checker's
// data model, adapted from the teacher's pkg/workflow.DefinitionBuilder
// chain-builder idiom. Each Build() call runs the matching domain
// constructor, so a malformed chain surfaces the same validation error
// the domain package itself enforces — there is no separate validation
// path here.
package builder

import "github.com/knitalgebra/checker/internal/domain"

// EdgeBuilder constructs a domain.Edge.
type EdgeBuilder struct {
	name         string
	edgeType     domain.EdgeType
	joinRef      string
	dimensionKey string
}

func NewEdge(name string, edgeType domain.EdgeType) *EdgeBuilder {
	return &EdgeBuilder{name: name, edgeType: edgeType}
}

func (b *EdgeBuilder) JoinRef(ref string) *EdgeBuilder { b.joinRef = ref; return b }
func (b *EdgeBuilder) DimensionKey(key string) *EdgeBuilder {
	b.dimensionKey = key
	return b
}
func (b *EdgeBuilder) Build() (*domain.Edge, error) {
	return domain.NewEdge(b.name, b.edgeType, b.joinRef, b.dimensionKey)
}

// JoinBuilder constructs a domain.Join.
type JoinBuilder struct {
	id         string
	joinType   domain.JoinType
	edgeARef   string
	edgeBRef   string
	parameters map[string]any
}

func NewJoin(id string, joinType domain.JoinType, edgeARef, edgeBRef string) *JoinBuilder {
	return &JoinBuilder{id: id, joinType: joinType, edgeARef: edgeARef, edgeBRef: edgeBRef}
}

func (b *JoinBuilder) Param(key string, value any) *JoinBuilder {
	if b.parameters == nil {
		b.parameters = make(map[string]any)
	}
	b.parameters[key] = value
	return b
}

func (b *JoinBuilder) Build() (*domain.Join, error) {
	return domain.NewJoin(b.id, b.joinType, b.edgeARef, b.edgeBRef, b.parameters)
}

// ComponentSpecBuilder constructs a domain.ComponentSpec.
type ComponentSpecBuilder struct {
	name               string
	shapeType          domain.ShapeType
	dimensions         map[string]float64
	edges              []*domain.Edge
	handedness         domain.Handedness
	instantiationCount int
}

func NewComponentSpec(name string, shapeType domain.ShapeType) *ComponentSpecBuilder {
	return &ComponentSpecBuilder{name: name, shapeType: shapeType, handedness: domain.HandednessNone, instantiationCount: 1}
}

func (b *ComponentSpecBuilder) Dimension(key string, value float64) *ComponentSpecBuilder {
	if b.dimensions == nil {
		b.dimensions = make(map[string]float64)
	}
	b.dimensions[key] = value
	return b
}

func (b *ComponentSpecBuilder) Edge(e *domain.Edge) *ComponentSpecBuilder {
	b.edges = append(b.edges, e)
	return b
}

func (b *ComponentSpecBuilder) Handedness(h domain.Handedness) *ComponentSpecBuilder {
	b.handedness = h
	return b
}

func (b *ComponentSpecBuilder) InstantiationCount(n int) *ComponentSpecBuilder {
	b.instantiationCount = n
	return b
}

func (b *ComponentSpecBuilder) Build() (*domain.ComponentSpec, error) {
	return domain.NewComponentSpec(b.name, b.shapeType, b.dimensions, b.edges, b.handedness, b.instantiationCount)
}

// ShapeManifestBuilder constructs a domain.ShapeManifest.
type ShapeManifestBuilder struct {
	components []*domain.ComponentSpec
	joins      []*domain.Join
}

func NewShapeManifest() *ShapeManifestBuilder { return &ShapeManifestBuilder{} }

func (b *ShapeManifestBuilder) Component(c *domain.ComponentSpec) *ShapeManifestBuilder {
	b.components = append(b.components, c)
	return b
}

func (b *ShapeManifestBuilder) Join(j *domain.Join) *ShapeManifestBuilder {
	b.joins = append(b.joins, j)
	return b
}

func (b *ShapeManifestBuilder) Build() *domain.ShapeManifest {
	return domain.NewShapeManifest(b.components, b.joins)
}

// ComponentIRBuilder constructs a domain.ComponentIR.
type ComponentIRBuilder struct {
	componentName string
	handedness    domain.Handedness
	operations    []domain.Operation
	startCount    int
	endCount      int
}

func NewComponentIR(componentName string, startCount, endCount int) *ComponentIRBuilder {
	return &ComponentIRBuilder{
		componentName: componentName,
		handedness:    domain.HandednessNone,
		startCount:    startCount,
		endCount:      endCount,
	}
}

func (b *ComponentIRBuilder) Handedness(h domain.Handedness) *ComponentIRBuilder {
	b.handedness = h
	return b
}

func (b *ComponentIRBuilder) Op(op domain.Operation) *ComponentIRBuilder {
	b.operations = append(b.operations, op)
	return b
}

func (b *ComponentIRBuilder) Build() (*domain.ComponentIR, error) {
	return domain.NewComponentIR(b.componentName, b.handedness, b.operations, b.startCount, b.endCount)
}
