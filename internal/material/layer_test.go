package material

import (
	"testing"

	"github.com/specialistvlad/ifcbridge/internal/ifc"
	"github.com/stretchr/testify/assert"
)

func TestIsAirGap(t *testing.T) {
	testCases := []struct {
		name     string
		layer    *ifc.MaterialLayer
		expected bool
	}{
		{name: "ventilated", layer: &ifc.MaterialLayer{IsVentilated: ifc.True}, expected: true},
		{name: "unknown from legacy schema", layer: &ifc.MaterialLayer{IsVentilated: ifc.Unknown}, expected: true},
		{name: "not ventilated", layer: &ifc.MaterialLayer{IsVentilated: ifc.False}, expected: false},
		{name: "nil layer", layer: nil, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsAirGap(tc.layer))
		})
	}
}

func TestLayerSetHelpers(t *testing.T) {
	_, _, _, layers, _, _ := sharedGraph()

	gaps := AirGapLayers(layers)
	if assert.Len(t, gaps, 1) {
		assert.Equal(t, ifc.ID(13), gaps[0].ID)
	}
	assert.Equal(t, 450.0, LayerSetThickness(layers))
	assert.Zero(t, LayerSetThickness(nil))
	assert.Nil(t, AirGapLayers(nil))
}
