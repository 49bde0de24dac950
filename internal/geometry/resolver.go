package geometry

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/ifcbridge/internal/diagnostics"
	"github.com/specialistvlad/ifcbridge/internal/ifc"
	"github.com/specialistvlad/ifcbridge/internal/units"
	"github.com/ungerik/go3d/float64/vec3"
)

// DefaultTolerance is the magnitude below which a scaled direction is treated as zero.
const DefaultTolerance = 1e-9

// ErrUnsupportedShape is returned for coordinate lists that are neither 2D nor 3D.
var ErrUnsupportedShape = errors.New("unsupported coordinate list representation")

// Resolver converts geometry entities into host units.
type Resolver struct {
	Scaler    units.Scaler
	Sink      diagnostics.Sink
	Tolerance float64
}

// NewResolver returns a Resolver using DefaultTolerance.
func NewResolver(scaler units.Scaler, sink diagnostics.Sink) *Resolver {
	return &Resolver{Scaler: scaler, Sink: sink, Tolerance: DefaultTolerance}
}

// ResolvePoints converts every tuple of list into a scaled point, keeping
// order. 2D lists produce z == 0 exactly.
func (r *Resolver) ResolvePoints(list ifc.CoordinateList) ([]vec3.T, error) {
	switch l := list.(type) {
	case *ifc.PointList2D:
		if l == nil {
			return nil, ErrUnsupportedShape
		}
		points := make([]vec3.T, len(l.CoordList))
		for i, c := range l.CoordList {
			points[i] = vec3.T{r.Scaler.ScaleLength(c[0]), r.Scaler.ScaleLength(c[1]), 0}
		}
		return points, nil
	case *ifc.PointList3D:
		if l == nil {
			return nil, ErrUnsupportedShape
		}
		points := make([]vec3.T, len(l.CoordList))
		for i, c := range l.CoordList {
			points[i] = units.ScaleVector(r.Scaler, vec3.T(c))
		}
		return points, nil
	case *ifc.PointListND:
		if l == nil {
			return nil, ErrUnsupportedShape
		}
		return nil, fmt.Errorf("geometry: %s (%d-tuple list): %w", l.ID, tupleSize(l), ErrUnsupportedShape)
	case nil:
		return nil, ErrUnsupportedShape
	default:
		return nil, fmt.Errorf("geometry: %s (%T): %w", list.EntityID(), list, ErrUnsupportedShape)
	}
}

func tupleSize(l *ifc.PointListND) int {
	if len(l.CoordList) == 0 {
		return 0
	}
	return len(l.CoordList[0])
}

// ResolvePoint converts an IfcCartesianPoint. Missing axes are zero.
func (r *Resolver) ResolvePoint(p *ifc.CartesianPoint) (vec3.T, error) {
	if p == nil || len(p.Coordinates) == 0 || len(p.Coordinates) > 3 {
		id := ifc.ID(0)
		if p != nil {
			id = p.ID
		}
		return vec3.T{}, fmt.Errorf("geometry: point %s: %w", id, ErrUnsupportedShape)
	}
	var raw vec3.T
	copy(raw[:], p.Coordinates)
	return units.ScaleVector(r.Scaler, raw), nil
}
