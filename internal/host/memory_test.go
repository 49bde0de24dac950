package host

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/specialistvlad/ifcbridge/internal/geometry"
	"github.com/specialistvlad/ifcbridge/internal/ifc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestCreateMaterial(t *testing.T) {
	d := New()
	ctx := context.Background()

	h, err := d.CreateMaterial(ctx, &ifc.Material{ID: 5, Name: "Concrete", Category: "concrete"})
	require.NoError(t, err)
	_, err = uuid.Parse(string(h))
	require.NoError(t, err, "handles are UUIDs")

	m, ok := d.Material(h)
	require.True(t, ok)
	assert.Equal(t, ifc.ID(5), m.Source)
	assert.Equal(t, "Concrete", m.Name)
	assert.Equal(t, "concrete", m.Category)

	_, ok = d.Material("missing")
	assert.False(t, ok)
}

func TestCreateMaterial_UniqueNames(t *testing.T) {
	d := New()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		_, err := d.CreateMaterial(ctx, &ifc.Material{ID: ifc.ID(i), Name: "Brick"})
		require.NoError(t, err)
	}
	_, err := d.CreateMaterial(ctx, &ifc.Material{ID: 9})
	require.NoError(t, err)

	var names []string
	for _, m := range d.Materials() {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"Brick", "Brick (2)", "Brick (3)", "Material #9"}, names)
}

func TestCreateMaterial_Failure(t *testing.T) {
	hostErr := errors.New("read-only document")
	d := New(WithFailure(func(m *ifc.Material) error {
		if m.Name == "Glass" {
			return hostErr
		}
		return nil
	}))
	ctx := context.Background()

	_, err := d.CreateMaterial(ctx, &ifc.Material{ID: 1, Name: "Glass"})
	require.ErrorIs(t, err, hostErr)
	_, err = d.CreateMaterial(ctx, &ifc.Material{ID: 2, Name: "Wood"})
	require.NoError(t, err)
	_, err = d.CreateMaterial(ctx, nil)
	require.Error(t, err)

	assert.Len(t, d.Materials(), 1)
	assert.Equal(t, 2, d.CreationAttempts())
}

func TestGeometryStorage(t *testing.T) {
	d := New()

	d.AddCurve(3, geometry.Line{Direction: vec3.T{1, 0, 0}})
	d.AddPoints(4, []vec3.T{{0, 0, 0}, {1, 1, 0}})

	curves := d.Curves()
	require.Len(t, curves, 1)
	assert.Equal(t, ifc.ID(3), curves[0].Source)

	sets := d.PointSets()
	require.Len(t, sets, 1)
	assert.Len(t, sets[0].Points, 2)
}

// TestMemory_ConcurrentCreate verifies that the document can be written by
// many goroutines without losing materials or duplicating names.
func TestMemory_ConcurrentCreate(t *testing.T) {
	d := New()
	ctx := context.Background()
	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := d.CreateMaterial(ctx, &ifc.Material{ID: ifc.ID(i + 1), Name: "Same"})
			assert.NoError(t, err)
			d.AddPoints(ifc.ID(i+1), nil)
		}(i)
	}
	wg.Wait()

	materials := d.Materials()
	require.Len(t, materials, n)
	seen := make(map[string]bool)
	for _, m := range materials {
		assert.False(t, seen[m.Name], "duplicate name %s", m.Name)
		seen[m.Name] = true
	}
	assert.True(t, seen["Same"])
	assert.True(t, seen[fmt.Sprintf("Same (%d)", n)])
	assert.Len(t, d.PointSets(), n)
}
