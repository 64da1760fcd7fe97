package domain

// ComponentSpec is the specification for a single named component of the
// garment: its shape, physical dimensions, and ordered, uniquely-named
// edges.
type ComponentSpec struct {
	name               string
	shapeType          ShapeType
	dimensions         map[string]float64
	edges              []*Edge
	handedness         Handedness
	instantiationCount int
}

// NewComponentSpec constructs a ComponentSpec, rejecting duplicate edge
// names and a non-positive instantiation count.
func NewComponentSpec(
	name string,
	shapeType ShapeType,
	dimensions map[string]float64,
	edges []*Edge,
	handedness Handedness,
	instantiationCount int,
) (*ComponentSpec, error) {
	if name == "" {
		return nil, &ValidationError{Type: "ComponentSpec", Field: "name", Message: "must not be empty"}
	}
	if !shapeType.IsValid() {
		return nil, &ValidationError{Type: "ComponentSpec", Field: "shape_type", Message: "unknown shape type " + string(shapeType)}
	}
	if !handedness.IsValid() {
		return nil, &ValidationError{Type: "ComponentSpec", Field: "handedness", Message: "unknown handedness " + string(handedness)}
	}
	if instantiationCount < 1 {
		return nil, &ValidationError{Type: "ComponentSpec", Field: "instantiation_count", Message: "must be >= 1"}
	}
	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if _, dup := seen[e.Name()]; dup {
			return nil, &ValidationError{Type: "ComponentSpec", Field: "edges", Message: "duplicate edge name " + e.Name()}
		}
		seen[e.Name()] = struct{}{}
	}
	dims := make(map[string]float64, len(dimensions))
	for k, v := range dimensions {
		dims[k] = v
	}
	edgesCopy := make([]*Edge, len(edges))
	copy(edgesCopy, edges)
	return &ComponentSpec{
		name:               name,
		shapeType:          shapeType,
		dimensions:         dims,
		edges:              edgesCopy,
		handedness:         handedness,
		instantiationCount: instantiationCount,
	}, nil
}

func (c *ComponentSpec) Name() string           { return c.name }
func (c *ComponentSpec) ShapeType() ShapeType   { return c.shapeType }
func (c *ComponentSpec) Handedness() Handedness { return c.handedness }
func (c *ComponentSpec) InstantiationCount() int { return c.instantiationCount }

// Dimensions returns an independent copy of the declared physical
// dimensions.
func (c *ComponentSpec) Dimensions() map[string]float64 {
	cp := make(map[string]float64, len(c.dimensions))
	for k, v := range c.dimensions {
		cp[k] = v
	}
	return cp
}

// Edges returns the ordered edges of this spec. The slice is a copy; the
// Edge values themselves are shared (they are immutable).
func (c *ComponentSpec) Edges() []*Edge {
	cp := make([]*Edge, len(c.edges))
	copy(cp, c.edges)
	return cp
}

// EdgeByName looks up one edge by name, returning ok=false if absent.
func (c *ComponentSpec) EdgeByName(name string) (*Edge, bool) {
	for _, e := range c.edges {
		if e.Name() == name {
			return e, true
		}
	}
	return nil, false
}

// ShapeManifest is the complete structural topology of the garment: every
// component and every join connecting their edges.
type ShapeManifest struct {
	components []*ComponentSpec
	joins      []*Join
}

// NewShapeManifest constructs a ShapeManifest. It does not itself validate
// referential integrity between joins and edges — that check belongs to
// whoever is about to run the checker over the manifest (see
// internal/checkall), since it requires cross-referencing every
// component's edges against every join, which is a checker-level concern,
// not a construction-time one.
func NewShapeManifest(components []*ComponentSpec, joins []*Join) *ShapeManifest {
	cp := make([]*ComponentSpec, len(components))
	copy(cp, components)
	jcp := make([]*Join, len(joins))
	copy(jcp, joins)
	return &ShapeManifest{components: cp, joins: jcp}
}

func (m *ShapeManifest) Components() []*ComponentSpec {
	cp := make([]*ComponentSpec, len(m.components))
	copy(cp, m.components)
	return cp
}

func (m *ShapeManifest) Joins() []*Join {
	cp := make([]*Join, len(m.joins))
	copy(cp, m.joins)
	return cp
}

// ComponentByName looks up one component spec by name.
func (m *ShapeManifest) ComponentByName(name string) (*ComponentSpec, bool) {
	for _, c := range m.components {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}
