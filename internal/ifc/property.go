package ifc

import "github.com/zclconf/go-cty/cty"

// Property is any IfcProperty subtype. Scalar values are held as cty values
// so strings, numbers and booleans keep their original type.
type Property interface {
	Entity
	PropertyName() string
}

// PropertySingleValue is an IfcPropertySingleValue.
type PropertySingleValue struct {
	ID           ID
	Name         string
	NominalValue cty.Value
	Unit         string
}

func (p *PropertySingleValue) EntityID() ID         { return p.ID }
func (p *PropertySingleValue) PropertyName() string { return p.Name }

// PropertyEnumeratedValue is an IfcPropertyEnumeratedValue.
type PropertyEnumeratedValue struct {
	ID                ID
	Name              string
	EnumerationValues []cty.Value
}

func (p *PropertyEnumeratedValue) EntityID() ID         { return p.ID }
func (p *PropertyEnumeratedValue) PropertyName() string { return p.Name }

// PropertyListValue is an IfcPropertyListValue.
type PropertyListValue struct {
	ID         ID
	Name       string
	ListValues []cty.Value
}

func (p *PropertyListValue) EntityID() ID         { return p.ID }
func (p *PropertyListValue) PropertyName() string { return p.Name }

// PropertyBoundedValue is an IfcPropertyBoundedValue. Any bound may be null.
type PropertyBoundedValue struct {
	ID              ID
	Name            string
	UpperBoundValue cty.Value
	LowerBoundValue cty.Value
	SetPointValue   cty.Value
}

func (p *PropertyBoundedValue) EntityID() ID         { return p.ID }
func (p *PropertyBoundedValue) PropertyName() string { return p.Name }

// ComplexProperty is an IfcComplexProperty. HasProperties keeps file order.
type ComplexProperty struct {
	ID            ID
	Name          string
	UsageName     string
	HasProperties []Property
}

func (p *ComplexProperty) EntityID() ID         { return p.ID }
func (p *ComplexProperty) PropertyName() string { return p.Name }
