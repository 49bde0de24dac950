package ifc

// MaterialDefinition is the IfcMaterialDefinition select: either a leaf
// *Material or one of the composite sets below.
type MaterialDefinition interface {
	Entity
	materialDefinition()
}

// Material is an IfcMaterial, the leaf of every composition graph.
type Material struct {
	ID          ID
	Name        string
	Description string
	Category    string
}

func (m *Material) EntityID() ID      { return m.ID }
func (*Material) materialDefinition() {}

// MaterialConstituent is an IfcMaterialConstituent. Material may itself be a
// composite.
type MaterialConstituent struct {
	ID       ID
	Name     string
	Material MaterialDefinition
	Fraction float64
	Category string
}

// MaterialConstituentSet is an IfcMaterialConstituentSet. Constituent order
// carries no meaning.
type MaterialConstituentSet struct {
	ID                   ID
	Name                 string
	MaterialConstituents []*MaterialConstituent
}

func (s *MaterialConstituentSet) EntityID() ID      { return s.ID }
func (*MaterialConstituentSet) materialDefinition() {}

// MaterialLayer is an IfcMaterialLayer. Material is optional: IFC allows a
// layer without a material, typically for an air gap.
type MaterialLayer struct {
	ID             ID
	Name           string
	Material       *Material
	LayerThickness float64
	IsVentilated   Logical
	Category       string
}

// MaterialLayerSet is an IfcMaterialLayerSet. Layer order is significant.
type MaterialLayerSet struct {
	ID             ID
	LayerSetName   string
	MaterialLayers []*MaterialLayer
}

func (s *MaterialLayerSet) EntityID() ID      { return s.ID }
func (*MaterialLayerSet) materialDefinition() {}

// MaterialProfile is an IfcMaterialProfile. ProfileName stands in for the
// referenced IfcProfileDef, which the resolvers never inspect.
type MaterialProfile struct {
	ID          ID
	Name        string
	Material    MaterialDefinition
	ProfileName string
	Category    string
}

// MaterialProfileSet is an IfcMaterialProfileSet.
type MaterialProfileSet struct {
	ID               ID
	Name             string
	MaterialProfiles []*MaterialProfile
}

func (s *MaterialProfileSet) EntityID() ID      { return s.ID }
func (*MaterialProfileSet) materialDefinition() {}

// MaterialList is the deprecated IfcMaterialList still found in IFC2x3 files.
type MaterialList struct {
	ID        ID
	Materials []*Material
}

func (s *MaterialList) EntityID() ID      { return s.ID }
func (*MaterialList) materialDefinition() {}

// MaterialLayerSetUsage is an IfcMaterialLayerSetUsage. It places a layer set
// relative to an element's reference line; for material purposes it is the
// layer set.
type MaterialLayerSetUsage struct {
	ID                      ID
	ForLayerSet             *MaterialLayerSet
	OffsetFromReferenceLine float64
}

func (u *MaterialLayerSetUsage) EntityID() ID      { return u.ID }
func (*MaterialLayerSetUsage) materialDefinition() {}

// MaterialProfileSetUsage is an IfcMaterialProfileSetUsage.
type MaterialProfileSetUsage struct {
	ID            ID
	ForProfileSet *MaterialProfileSet
	CardinalPoint int
}

func (u *MaterialProfileSetUsage) EntityID() ID      { return u.ID }
func (*MaterialProfileSetUsage) materialDefinition() {}
