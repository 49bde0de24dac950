package hcl

import (
	"fmt"

	"github.com/specialistvlad/ifcbridge/internal/ifc"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// coordinateList builds the point list variant matching the tuple arity. When
// dims is zero it is inferred from the first tuple; tuples of any other
// arity turn the whole list into an ifc.PointListND.
func coordinateList(id ifc.ID, val cty.Value, dims int, tags []string) (ifc.CoordinateList, error) {
	converted, err := convert.Convert(val, cty.List(cty.List(cty.Number)))
	if err != nil {
		return nil, fmt.Errorf("coordinates must be a list of number tuples: %w", err)
	}
	var raw [][]float64
	if err := gocty.FromCtyValue(converted, &raw); err != nil {
		return nil, fmt.Errorf("coordinates: %w", err)
	}

	if dims == 0 {
		dims = 3
		if len(raw) > 0 {
			dims = len(raw[0])
		}
	}
	for _, c := range raw {
		if len(c) != dims {
			dims = -1
			break
		}
	}

	switch dims {
	case 2:
		l := &ifc.PointList2D{ID: id, CoordList: make([][2]float64, len(raw)), TagList: tags}
		for i, c := range raw {
			l.CoordList[i] = [2]float64{c[0], c[1]}
		}
		return l, nil
	case 3:
		l := &ifc.PointList3D{ID: id, CoordList: make([][3]float64, len(raw)), TagList: tags}
		for i, c := range raw {
			l.CoordList[i] = [3]float64{c[0], c[1], c[2]}
		}
		return l, nil
	}
	return &ifc.PointListND{ID: id, CoordList: raw}, nil
}

// logical reads an optional IFC logical given as a bool or as a string such as
// "unknown" or ".U.". An absent value is false.
func logical(val cty.Value) (ifc.Logical, error) {
	if val.IsNull() {
		return ifc.False, nil
	}
	switch {
	case val.Type().Equals(cty.Bool):
		if val.True() {
			return ifc.True, nil
		}
		return ifc.False, nil
	case val.Type().Equals(cty.String):
		return ifc.ParseLogical(val.AsString())
	}
	return ifc.Unknown, fmt.Errorf("expected a bool or a logical string, got %s", val.Type().FriendlyName())
}

// valueSlice flattens an optional collection; a scalar becomes a one-element slice.
func valueSlice(val cty.Value) []cty.Value {
	if val.IsNull() {
		return nil
	}
	ty := val.Type()
	if ty.IsListType() || ty.IsTupleType() || ty.IsSetType() {
		return val.AsValueSlice()
	}
	return []cty.Value{val}
}

// present reports whether an optional value attribute was given.
func present(val cty.Value) bool {
	return !val.IsNull()
}
