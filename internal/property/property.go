// Package property renders IFC property values as display strings.
package property

import (
	"strconv"
	"strings"

	"github.com/specialistvlad/ifcbridge/internal/ifc"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// FormatComplexProperty joins "name: value" for every sub-property with
// "; ", keeping sub-property order. A property without sub-properties yields
// the empty string.
func FormatComplexProperty(cp *ifc.ComplexProperty) string {
	if cp == nil || len(cp.HasProperties) == 0 {
		return ""
	}
	parts := make([]string, 0, len(cp.HasProperties))
	for _, p := range cp.HasProperties {
		if isNil(p) {
			continue
		}
		parts = append(parts, p.PropertyName()+": "+Value(p))
	}
	return strings.Join(parts, "; ")
}

// Value renders the value part of any property. Nil properties render empty.
func Value(p ifc.Property) string {
	if isNil(p) {
		return ""
	}
	switch p := p.(type) {
	case *ifc.PropertySingleValue:
		s := FormatValue(p.NominalValue)
		if s != "" && p.Unit != "" {
			s += " " + p.Unit
		}
		return s
	case *ifc.PropertyEnumeratedValue:
		return joinValues(p.EnumerationValues)
	case *ifc.PropertyListValue:
		return joinValues(p.ListValues)
	case *ifc.PropertyBoundedValue:
		return formatBounded(p)
	case *ifc.ComplexProperty:
		return FormatComplexProperty(p)
	}
	return ""
}

// FormatValue renders one scalar or collection value. Null and unknown values
// render as the empty string.
func FormatValue(v cty.Value) string {
	if v.IsNull() || !v.IsKnown() {
		return ""
	}
	ty := v.Type()
	switch {
	case ty.Equals(cty.String):
		return v.AsString()
	case ty.Equals(cty.Number):
		bf := v.AsBigFloat()
		if bf.IsInt() {
			return bf.Text('f', 0)
		}
		f, _ := bf.Float64()
		return strconv.FormatFloat(f, 'g', -1, 64)
	case ty.Equals(cty.Bool):
		if v.True() {
			return "True"
		}
		return "False"
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		return joinValues(v.AsValueSlice())
	case ty.IsMapType() || ty.IsObjectType():
		return joinAttributes(v)
	}
	if s, err := convert.Convert(v, cty.String); err == nil && !s.IsNull() && s.IsKnown() {
		return s.AsString()
	}
	return ""
}

// joinAttributes renders a map or object as "key: value" pairs in key order.
func joinAttributes(v cty.Value) string {
	var parts []string
	for it := v.ElementIterator(); it.Next(); {
		k, e := it.Element()
		parts = append(parts, k.AsString()+": "+FormatValue(e))
	}
	return strings.Join(parts, ", ")
}

// isNil reports whether p is nil or a typed nil pointer.
func isNil(p ifc.Property) bool {
	switch p := p.(type) {
	case nil:
		return true
	case *ifc.PropertySingleValue:
		return p == nil
	case *ifc.PropertyEnumeratedValue:
		return p == nil
	case *ifc.PropertyListValue:
		return p == nil
	case *ifc.PropertyBoundedValue:
		return p == nil
	case *ifc.ComplexProperty:
		return p == nil
	}
	return false
}

func joinValues(values []cty.Value) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if s := FormatValue(v); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

func formatBounded(p *ifc.PropertyBoundedValue) string {
	lower := FormatValue(p.LowerBoundValue)
	upper := FormatValue(p.UpperBoundValue)
	var s string
	switch {
	case lower != "" && upper != "":
		s = lower + " - " + upper
	case lower != "":
		s = ">= " + lower
	case upper != "":
		s = "<= " + upper
	}
	if set := FormatValue(p.SetPointValue); set != "" {
		if s == "" {
			return set
		}
		s += " (" + set + ")"
	}
	return s
}
