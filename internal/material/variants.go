package material

import "github.com/specialistvlad/ifcbridge/internal/ifc"

// nodeFor dispatches a definition to its variant. Typed nil pointers are
// treated like a missing definition.
func nodeFor(def ifc.MaterialDefinition) (node, bool) {
	switch d := def.(type) {
	case *ifc.Material:
		if d != nil {
			return leafNode{d}, true
		}
	case *ifc.MaterialConstituentSet:
		if d != nil {
			return constituentSet{d}, true
		}
	case *ifc.MaterialLayerSet:
		if d != nil {
			return layerSet{d}, true
		}
	case *ifc.MaterialProfileSet:
		if d != nil {
			return profileSet{d}, true
		}
	case *ifc.MaterialList:
		if d != nil {
			return materialList{d}, true
		}
	case *ifc.MaterialLayerSetUsage:
		if d != nil {
			return layerSetUsage{d}, true
		}
	case *ifc.MaterialProfileSetUsage:
		if d != nil {
			return profileSetUsage{d}, true
		}
	}
	return nil, false
}

// leafNode lets a bare material association go through the same walker.
type leafNode struct{ *ifc.Material }

func (l leafNode) children() []child {
	return []child{{leaf: l.Material}}
}

type constituentSet struct{ *ifc.MaterialConstituentSet }

func (s constituentSet) children() []child {
	out := make([]child, 0, len(s.MaterialConstituents))
	for _, c := range s.MaterialConstituents {
		if c != nil {
			out = append(out, childOf(c.Material))
		}
	}
	return out
}

type layerSet struct{ *ifc.MaterialLayerSet }

func (s layerSet) children() []child {
	out := make([]child, 0, len(s.MaterialLayers))
	for _, l := range s.MaterialLayers {
		if l != nil && l.Material != nil {
			out = append(out, child{leaf: l.Material})
		}
	}
	return out
}

type profileSet struct{ *ifc.MaterialProfileSet }

func (s profileSet) children() []child {
	out := make([]child, 0, len(s.MaterialProfiles))
	for _, p := range s.MaterialProfiles {
		if p != nil {
			out = append(out, childOf(p.Material))
		}
	}
	return out
}

type materialList struct{ *ifc.MaterialList }

func (s materialList) children() []child {
	out := make([]child, 0, len(s.Materials))
	for _, m := range s.Materials {
		if m != nil {
			out = append(out, child{leaf: m})
		}
	}
	return out
}

type layerSetUsage struct{ *ifc.MaterialLayerSetUsage }

func (u layerSetUsage) children() []child {
	if u.ForLayerSet == nil {
		return nil
	}
	return []child{{nested: u.ForLayerSet}}
}

type profileSetUsage struct{ *ifc.MaterialProfileSetUsage }

func (u profileSetUsage) children() []child {
	if u.ForProfileSet == nil {
		return nil
	}
	return []child{{nested: u.ForProfileSet}}
}
