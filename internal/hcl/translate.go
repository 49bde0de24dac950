package hcl

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/ifcbridge/internal/ifc"
)

// Reference kinds a material attribute may point at.
const (
	kindMaterial        = "material"
	kindConstituentSet  = "constituent_set"
	kindLayerSet        = "layer_set"
	kindProfileSet      = "profile_set"
	kindMaterialList    = "material_list"
	kindLayerSetUsage   = "layer_set_usage"
	kindProfileSetUsage = "profile_set_usage"
)

// translator turns decoded blocks into an ifc.Graph. It collects every error
// instead of stopping at the first one.
type translator struct {
	graph  *ifc.Graph
	nextID ifc.ID
	defs   map[string]ifc.MaterialDefinition
	errs   []error
}

// translate builds the graph in two passes: first every material definition
// is created empty, so references may point forwards or across files, then
// children and references are filled in.
func translate(roots []*fileRoot) (*ifc.Graph, error) {
	t := &translator{
		graph:  ifc.NewGraph(),
		nextID: maxExplicitID(roots) + 1,
		defs:   make(map[string]ifc.MaterialDefinition),
	}

	for _, root := range roots {
		t.declareMaterials(root)
	}
	for _, root := range roots {
		t.linkMaterials(root)
	}
	for _, root := range roots {
		t.translateElements(root)
		t.translateGeometry(root)
		t.translateProperties(root)
	}

	if len(t.errs) > 0 {
		return nil, errors.Join(t.errs...)
	}
	return t.graph, nil
}

func maxExplicitID(roots []*fileRoot) ifc.ID {
	var ids []int
	for _, r := range roots {
		for _, b := range r.Materials {
			ids = append(ids, b.ID)
		}
		for _, b := range r.ConstituentSets {
			ids = append(ids, b.ID)
		}
		for _, b := range r.LayerSets {
			ids = append(ids, b.ID)
		}
		for _, b := range r.ProfileSets {
			ids = append(ids, b.ID)
		}
		for _, b := range r.MaterialLists {
			ids = append(ids, b.ID)
		}
		for _, b := range r.LayerSetUsages {
			ids = append(ids, b.ID)
		}
		for _, b := range r.ProfileSetUsages {
			ids = append(ids, b.ID)
		}
		for _, b := range r.Elements {
			ids = append(ids, b.ID)
		}
		for _, b := range r.PointLists {
			ids = append(ids, b.ID)
		}
		for _, b := range r.Lines {
			ids = append(ids, b.ID)
		}
		for _, b := range r.ComplexProperties {
			ids = append(ids, b.ID)
		}
	}
	var highest ifc.ID
	for _, id := range ids {
		if ifc.ID(id) > highest {
			highest = ifc.ID(id)
		}
	}
	return highest
}

func (t *translator) errorf(format string, args ...any) {
	t.errs = append(t.errs, fmt.Errorf(format, args...))
}

// id returns explicit when set, otherwise the next free ID.
func (t *translator) id(explicit int) ifc.ID {
	if explicit > 0 {
		return ifc.ID(explicit)
	}
	id := t.nextID
	t.nextID++
	return id
}

func (t *translator) add(e ifc.Entity) {
	if err := t.graph.Add(e); err != nil {
		t.errs = append(t.errs, err)
	}
}

func (t *translator) declare(kind, label string, def ifc.MaterialDefinition) {
	key := kind + "." + label
	if _, exists := t.defs[key]; exists {
		t.errorf("duplicate %s %q", kind, label)
		return
	}
	t.defs[key] = def
	t.add(def)
}

func orLabel(name, label string) string {
	if name != "" {
		return name
	}
	return label
}

func (t *translator) declareMaterials(root *fileRoot) {
	for _, b := range root.Materials {
		t.declare(kindMaterial, b.Label, &ifc.Material{
			ID:          t.id(b.ID),
			Name:        orLabel(b.Name, b.Label),
			Description: b.Description,
			Category:    b.Category,
		})
	}
	for _, b := range root.ConstituentSets {
		t.declare(kindConstituentSet, b.Label, &ifc.MaterialConstituentSet{ID: t.id(b.ID), Name: orLabel(b.Name, b.Label)})
	}
	for _, b := range root.LayerSets {
		t.declare(kindLayerSet, b.Label, &ifc.MaterialLayerSet{ID: t.id(b.ID), LayerSetName: orLabel(b.Name, b.Label)})
	}
	for _, b := range root.ProfileSets {
		t.declare(kindProfileSet, b.Label, &ifc.MaterialProfileSet{ID: t.id(b.ID), Name: orLabel(b.Name, b.Label)})
	}
	for _, b := range root.MaterialLists {
		t.declare(kindMaterialList, b.Label, &ifc.MaterialList{ID: t.id(b.ID)})
	}
	for _, b := range root.LayerSetUsages {
		t.declare(kindLayerSetUsage, b.Label, &ifc.MaterialLayerSetUsage{ID: t.id(b.ID), OffsetFromReferenceLine: b.Offset})
	}
	for _, b := range root.ProfileSetUsages {
		t.declare(kindProfileSetUsage, b.Label, &ifc.MaterialProfileSetUsage{ID: t.id(b.ID), CardinalPoint: b.CardinalPoint})
	}
}

// resolve looks up a material definition reference.
func (t *translator) resolve(expr hcl.Expression) ifc.MaterialDefinition {
	r, err := parseRef(expr)
	if err != nil {
		t.errs = append(t.errs, err)
		return nil
	}
	if r == nil {
		return nil
	}
	def, ok := t.defs[r.key()]
	if !ok {
		t.errorf("%s: unknown reference %s", r.Range, r.key())
		return nil
	}
	return def
}

// resolveKind resolves a reference that must point at one specific kind.
func resolveKind[T ifc.MaterialDefinition](t *translator, expr hcl.Expression, kind string) T {
	var zero T
	def := t.resolve(expr)
	if def == nil {
		return zero
	}
	typed, ok := def.(T)
	if !ok {
		t.errorf("%s: expected a %s reference, got %T", expr.Range(), kind, def)
		return zero
	}
	return typed
}

func (t *translator) linkMaterials(root *fileRoot) {
	for _, b := range root.ConstituentSets {
		set := t.defs[kindConstituentSet+"."+b.Label].(*ifc.MaterialConstituentSet)
		for _, c := range b.Constituents {
			set.MaterialConstituents = append(set.MaterialConstituents, &ifc.MaterialConstituent{
				ID:       t.id(0),
				Name:     c.Label,
				Material: t.resolve(c.Material),
				Fraction: c.Fraction,
				Category: c.Category,
			})
		}
	}
	for _, b := range root.LayerSets {
		set := t.defs[kindLayerSet+"."+b.Label].(*ifc.MaterialLayerSet)
		for i, l := range b.Layers {
			ventilated, err := logical(l.Ventilated)
			if err != nil {
				t.errorf("layer_set %q layer %d: ventilated: %w", b.Label, i, err)
			}
			set.MaterialLayers = append(set.MaterialLayers, &ifc.MaterialLayer{
				ID:             t.id(0),
				Name:           l.Name,
				Material:       resolveKind[*ifc.Material](t, l.Material, kindMaterial),
				LayerThickness: l.Thickness,
				IsVentilated:   ventilated,
				Category:       l.Category,
			})
		}
	}
	for _, b := range root.ProfileSets {
		set := t.defs[kindProfileSet+"."+b.Label].(*ifc.MaterialProfileSet)
		for _, p := range b.Profiles {
			set.MaterialProfiles = append(set.MaterialProfiles, &ifc.MaterialProfile{
				ID:          t.id(0),
				Name:        p.Label,
				Material:    t.resolve(p.Material),
				ProfileName: p.Profile,
				Category:    p.Category,
			})
		}
	}
	for _, b := range root.MaterialLists {
		list := t.defs[kindMaterialList+"."+b.Label].(*ifc.MaterialList)
		refs, err := parseRefList(b.Materials)
		if err != nil {
			t.errs = append(t.errs, err)
			continue
		}
		for _, r := range refs {
			m, ok := t.defs[r.key()].(*ifc.Material)
			if !ok {
				t.errorf("%s: material_list %q entries must be materials, got %s", r.Range, b.Label, r.key())
				continue
			}
			list.Materials = append(list.Materials, m)
		}
	}
	for _, b := range root.LayerSetUsages {
		usage := t.defs[kindLayerSetUsage+"."+b.Label].(*ifc.MaterialLayerSetUsage)
		usage.ForLayerSet = resolveKind[*ifc.MaterialLayerSet](t, b.LayerSet, kindLayerSet)
	}
	for _, b := range root.ProfileSetUsages {
		usage := t.defs[kindProfileSetUsage+"."+b.Label].(*ifc.MaterialProfileSetUsage)
		usage.ForProfileSet = resolveKind[*ifc.MaterialProfileSet](t, b.ProfileSet, kindProfileSet)
	}
}

func (t *translator) translateElements(root *fileRoot) {
	for _, b := range root.Elements {
		t.add(&ifc.Element{
			ID:       t.id(b.ID),
			GlobalID: b.GlobalID,
			Name:     orLabel(b.Name, b.Label),
			Material: t.resolve(b.Material),
		})
	}
}

func (t *translator) translateGeometry(root *fileRoot) {
	for _, b := range root.PointLists {
		list, err := coordinateList(t.id(b.ID), b.Coordinates, b.Dimensions, b.Tags)
		if err != nil {
			t.errorf("point_list %q: %w", b.Label, err)
			continue
		}
		t.add(list)
	}
	for _, b := range root.Lines {
		magnitude := 1.0
		if b.Magnitude != nil {
			magnitude = *b.Magnitude
		}
		t.add(&ifc.Line{
			ID:  t.id(b.ID),
			Pnt: &ifc.CartesianPoint{ID: t.id(0), Coordinates: b.Point},
			Dir: &ifc.Vector{
				ID:          t.id(0),
				Orientation: &ifc.Direction{ID: t.id(0), DirectionRatios: b.Direction},
				Magnitude:   magnitude,
			},
		})
	}
}

func (t *translator) translateProperties(root *fileRoot) {
	for _, b := range root.ComplexProperties {
		cp := &ifc.ComplexProperty{
			ID:        t.id(b.ID),
			Name:      orLabel(b.Name, b.Label),
			UsageName: b.Usage,
		}
		cp.HasProperties = t.properties(b.Properties)
		t.add(cp)
	}
}

func (t *translator) properties(blocks []*propertyBlock) []ifc.Property {
	out := make([]ifc.Property, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, t.property(b))
	}
	return out
}

// property picks the IFC property subtype from the attributes present.
func (t *translator) property(b *propertyBlock) ifc.Property {
	id := t.id(0)
	switch {
	case len(b.Properties) > 0:
		return &ifc.ComplexProperty{ID: id, Name: b.Label, UsageName: b.Usage, HasProperties: t.properties(b.Properties)}
	case present(b.Enum):
		return &ifc.PropertyEnumeratedValue{ID: id, Name: b.Label, EnumerationValues: valueSlice(b.Enum)}
	case present(b.List):
		return &ifc.PropertyListValue{ID: id, Name: b.Label, ListValues: valueSlice(b.List)}
	case present(b.Lower) || present(b.Upper) || present(b.SetPoint):
		return &ifc.PropertyBoundedValue{
			ID:              id,
			Name:            b.Label,
			LowerBoundValue: b.Lower,
			UpperBoundValue: b.Upper,
			SetPointValue:   b.SetPoint,
		}
	}
	return &ifc.PropertySingleValue{ID: id, Name: b.Label, NominalValue: b.Value, Unit: b.Unit}
}
