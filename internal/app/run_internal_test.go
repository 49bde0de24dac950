package app

import (
	"testing"

	"github.com/specialistvlad/ifcbridge/internal/ifc"
	"github.com/stretchr/testify/assert"
)

func TestLayerSetOf(t *testing.T) {
	t.Parallel()

	set := &ifc.MaterialLayerSet{ID: 1}

	assert.Same(t, set, layerSetOf(set))
	assert.Same(t, set, layerSetOf(&ifc.MaterialLayerSetUsage{ID: 2, ForLayerSet: set}))
	assert.Nil(t, layerSetOf((*ifc.MaterialLayerSetUsage)(nil)))
	assert.Nil(t, layerSetOf((*ifc.MaterialLayerSet)(nil)))
	assert.Nil(t, layerSetOf(&ifc.Material{ID: 3}))
	assert.Nil(t, layerSetOf(nil))
}
