package material

import (
	"context"
	"fmt"
	"sync"

	"github.com/specialistvlad/ifcbridge/internal/ifc"
)

// countingCreator records every host creation call and can be told to fail
// for specific materials.
type countingCreator struct {
	mu    sync.Mutex
	calls map[*ifc.Material]int
	order []*ifc.Material
	fail  map[*ifc.Material]error
}

func newCountingCreator() *countingCreator {
	return &countingCreator{
		calls: make(map[*ifc.Material]int),
		fail:  make(map[*ifc.Material]error),
	}
}

func (c *countingCreator) CreateMaterial(_ context.Context, m *ifc.Material) (Handle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls[m]++
	c.order = append(c.order, m)
	if err, ok := c.fail[m]; ok {
		return "", err
	}
	return Handle(fmt.Sprintf("host-%d", m.ID)), nil
}

func (c *countingCreator) total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}

func (c *countingCreator) count(m *ifc.Material) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[m]
}

// sharedGraph builds three composites that all reach concrete, with
// insulation shared by two of them.
func sharedGraph() (concrete, insulation, steel *ifc.Material, layers *ifc.MaterialLayerSet, constituents *ifc.MaterialConstituentSet, profiles *ifc.MaterialProfileSet) {
	concrete = &ifc.Material{ID: 1, Name: "Concrete", Category: "concrete"}
	insulation = &ifc.Material{ID: 2, Name: "Mineral wool", Category: "insulation"}
	steel = &ifc.Material{ID: 3, Name: "S355", Category: "steel"}

	layers = &ifc.MaterialLayerSet{ID: 10, LayerSetName: "Cavity wall", MaterialLayers: []*ifc.MaterialLayer{
		{ID: 11, Material: concrete, LayerThickness: 200},
		{ID: 12, Material: insulation, LayerThickness: 100},
		{ID: 13, LayerThickness: 50, IsVentilated: ifc.Unknown},
		{ID: 14, Material: concrete, LayerThickness: 100},
	}}
	constituents = &ifc.MaterialConstituentSet{ID: 20, Name: "Sandwich", MaterialConstituents: []*ifc.MaterialConstituent{
		{ID: 21, Name: "Core", Material: layers},
		{ID: 22, Name: "Skin", Material: concrete},
		{ID: 23, Name: "Fill", Material: insulation},
	}}
	profiles = &ifc.MaterialProfileSet{ID: 30, Name: "Composite beam", MaterialProfiles: []*ifc.MaterialProfile{
		{ID: 31, Material: steel, ProfileName: "IPE300"},
		{ID: 32, Material: constituents, ProfileName: "Slab"},
	}}
	return
}
