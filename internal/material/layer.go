package material

import "github.com/specialistvlad/ifcbridge/internal/ifc"

// IsAirGap reports whether a layer is an air gap: its ventilation flag is
// TRUE, or UNKNOWN. Schemas before IFC4 had no ventilation attribute and
// exporters wrote UNKNOWN to mark an air layer, so UNKNOWN counts as an air
// gap.
func IsAirGap(layer *ifc.MaterialLayer) bool {
	if layer == nil {
		return false
	}
	return layer.IsVentilated == ifc.True || legacyUnknownMeansAirGap(layer.IsVentilated)
}

func legacyUnknownMeansAirGap(v ifc.Logical) bool {
	return v == ifc.Unknown
}

// AirGapLayers returns the air gap layers of set in layer order.
func AirGapLayers(set *ifc.MaterialLayerSet) []*ifc.MaterialLayer {
	if set == nil {
		return nil
	}
	var out []*ifc.MaterialLayer
	for _, l := range set.MaterialLayers {
		if IsAirGap(l) {
			out = append(out, l)
		}
	}
	return out
}

// LayerSetThickness sums the layer thicknesses in project units.
func LayerSetThickness(set *ifc.MaterialLayerSet) float64 {
	if set == nil {
		return 0
	}
	var total float64
	for _, l := range set.MaterialLayers {
		if l != nil {
			total += l.LayerThickness
		}
	}
	return total
}
