package geometry

import (
	"context"
	"fmt"

	"github.com/specialistvlad/ifcbridge/internal/ifc"
	"github.com/specialistvlad/ifcbridge/internal/units"
	"github.com/ungerik/go3d/float64/vec3"
)

// Line is an unbounded line. Direction always has unit length.
type Line struct {
	Origin    vec3.T
	Direction vec3.T
}

// At returns the point at parameter t along the line.
func (l Line) At(t float64) vec3.T {
	step := l.Direction.Scaled(t)
	return l.Origin.Added(&step)
}

// BuildLine scales rawDir into host units and builds a line through origin.
// A direction whose scaled length is within Tolerance of zero is reported to
// the sink against source and yields (nil, false). A non-positive Tolerance
// means DefaultTolerance.
func (r *Resolver) BuildLine(ctx context.Context, source ifc.ID, origin vec3.T, rawDir vec3.T) (*Line, bool) {
	dir := units.ScaleVector(r.Scaler, rawDir)
	length := dir.Length()
	tolerance := r.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	if length < tolerance {
		r.Sink.Report(ctx, source, "Line direction has zero length, ignoring curve.", false)
		return nil, false
	}
	return &Line{Origin: origin, Direction: dir.Scaled(1 / length)}, true
}

// LineFromEntity resolves an IfcLine. The raw direction is the orientation
// normalized and multiplied by the vector magnitude, so a zero magnitude is
// as degenerate as zero direction ratios.
func (r *Resolver) LineFromEntity(ctx context.Context, line *ifc.Line) (*Line, bool, error) {
	if line == nil || line.Pnt == nil || line.Dir == nil || line.Dir.Orientation == nil {
		return nil, false, fmt.Errorf("geometry: line is missing its point or direction")
	}
	origin, err := r.ResolvePoint(line.Pnt)
	if err != nil {
		return nil, false, fmt.Errorf("geometry: line %s: %w", line.ID, err)
	}

	ratios := line.Dir.Orientation.DirectionRatios
	if len(ratios) == 0 || len(ratios) > 3 {
		return nil, false, fmt.Errorf("geometry: line %s direction: %w", line.ID, ErrUnsupportedShape)
	}
	var raw vec3.T
	copy(raw[:], ratios)
	if n := raw.Length(); n > 0 {
		raw = raw.Scaled(line.Dir.Magnitude / n)
	}

	l, ok := r.BuildLine(ctx, line.ID, origin, raw)
	return l, ok, nil
}
