package geometry

import (
	"context"
	"math"
	"testing"

	"github.com/specialistvlad/ifcbridge/internal/diagnostics"
	"github.com/specialistvlad/ifcbridge/internal/ifc"
	"github.com/specialistvlad/ifcbridge/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestBuildLine_Normalizes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		scale  units.Factor
		rawDir vec3.T
		want   vec3.T
	}{
		{name: "axis aligned", scale: 1, rawDir: vec3.T{5, 0, 0}, want: vec3.T{1, 0, 0}},
		{name: "millimetres to metres", scale: 0.001, rawDir: vec3.T{0, 3000, 4000}, want: vec3.T{0, 0.6, 0.8}},
		{name: "negative diagonal", scale: 1, rawDir: vec3.T{-1, -1, 0}, want: vec3.T{-math.Sqrt2 / 2, -math.Sqrt2 / 2, 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, rec := newTestResolver(tc.scale)
			origin := vec3.T{1, 2, 3}

			line, ok := r.BuildLine(context.Background(), 21, origin, tc.rawDir)

			require.True(t, ok)
			require.NotNil(t, line)
			assert.Equal(t, origin, line.Origin)
			assert.InDelta(t, 1.0, line.Direction.Length(), 1e-12)
			for axis := 0; axis < 3; axis++ {
				assert.InDelta(t, tc.want[axis], line.Direction[axis], 1e-12)
			}
			assert.Empty(t, rec.Entries())
		})
	}
}

func TestBuildLine_DegenerateDirection(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		scale  units.Factor
		rawDir vec3.T
	}{
		{name: "exact zero", scale: 1, rawDir: vec3.T{0, 0, 0}},
		{name: "below tolerance", scale: 1, rawDir: vec3.T{1e-12, 0, 0}},
		{name: "non zero until scaled", scale: 1e-6, rawDir: vec3.T{0, 1e-5, 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, rec := newTestResolver(tc.scale)

			line, ok := r.BuildLine(context.Background(), 33, vec3.T{}, tc.rawDir)

			assert.False(t, ok)
			assert.Nil(t, line)
			entries := rec.Entries()
			require.Len(t, entries, 1, "exactly one warning per degenerate line")
			assert.Equal(t, ifc.ID(33), entries[0].Source)
			assert.False(t, entries[0].IsError)
		})
	}
}

func TestBuildLine_ZeroToleranceUsesDefault(t *testing.T) {
	t.Parallel()

	rec := &diagnostics.Recorder{}
	r := &Resolver{Scaler: units.Identity, Sink: rec}

	line, ok := r.BuildLine(context.Background(), 8, vec3.T{}, vec3.T{})

	assert.False(t, ok)
	assert.Nil(t, line)
	require.Len(t, rec.Entries(), 1)
	assert.Equal(t, ifc.ID(8), rec.Entries()[0].Source)
}

func TestLine_At(t *testing.T) {
	t.Parallel()

	l := Line{Origin: vec3.T{1, 1, 1}, Direction: vec3.T{0, 0, 1}}
	assert.Equal(t, vec3.T{1, 1, 3}, l.At(2))
	assert.Equal(t, vec3.T{1, 1, -1}, l.At(-2))
}

func TestLineFromEntity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r, rec := newTestResolver(units.Factor(0.001))

	line := &ifc.Line{
		ID:  50,
		Pnt: &ifc.CartesianPoint{ID: 51, Coordinates: []float64{1000, 0, 0}},
		Dir: &ifc.Vector{ID: 52, Orientation: &ifc.Direction{ID: 53, DirectionRatios: []float64{0, 2}}, Magnitude: 500},
	}
	got, ok, err := r.LineFromEntity(ctx, line)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 1.0, got.Origin[0], 1e-12)
	assert.InDelta(t, 1.0, got.Direction[1], 1e-12)

	line.Dir.Magnitude = 0
	got, ok, err = r.LineFromEntity(ctx, line)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
	require.Len(t, rec.Entries(), 1)
	assert.Equal(t, ifc.ID(50), rec.Entries()[0].Source)

	_, _, err = r.LineFromEntity(ctx, &ifc.Line{ID: 60})
	require.Error(t, err)
}
