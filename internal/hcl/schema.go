package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Settings          []*settingsBlock        `hcl:"settings,block"`
	Materials         []*materialBlock        `hcl:"material,block"`
	ConstituentSets   []*constituentSetBlock  `hcl:"constituent_set,block"`
	LayerSets         []*layerSetBlock        `hcl:"layer_set,block"`
	ProfileSets       []*profileSetBlock      `hcl:"profile_set,block"`
	MaterialLists     []*materialListBlock    `hcl:"material_list,block"`
	LayerSetUsages    []*layerSetUsageBlock   `hcl:"layer_set_usage,block"`
	ProfileSetUsages  []*profileSetUsageBlock `hcl:"profile_set_usage,block"`
	Elements          []*elementBlock         `hcl:"element,block"`
	PointLists        []*pointListBlock       `hcl:"point_list,block"`
	Lines             []*lineBlock            `hcl:"line,block"`
	ComplexProperties []*complexPropertyBlock `hcl:"complex_property,block"`
}

// settingsBlock overrides config.DefaultSettings field by field.
type settingsBlock struct {
	ProjectLengthUnit     *string  `hcl:"project_length_unit,optional"`
	HostLengthUnit        *string  `hcl:"host_length_unit,optional"`
	Tolerance             *float64 `hcl:"tolerance,optional"`
	RecordFailedCreations *bool    `hcl:"record_failed_creations,optional"`
}

// --- Materials ---

type materialBlock struct {
	Label       string `hcl:"label,label"`
	ID          int    `hcl:"id,optional"`
	Name        string `hcl:"name,optional"`
	Description string `hcl:"description,optional"`
	Category    string `hcl:"category,optional"`
}

type constituentBlock struct {
	Label    string         `hcl:"label,label"`
	Material hcl.Expression `hcl:"material,optional"`
	Fraction float64        `hcl:"fraction,optional"`
	Category string         `hcl:"category,optional"`
}

type constituentSetBlock struct {
	Label        string              `hcl:"label,label"`
	ID           int                 `hcl:"id,optional"`
	Name         string              `hcl:"name,optional"`
	Constituents []*constituentBlock `hcl:"constituent,block"`
}

type layerBlock struct {
	Name       string         `hcl:"name,optional"`
	Material   hcl.Expression `hcl:"material,optional"`
	Thickness  float64        `hcl:"thickness,optional"`
	Ventilated cty.Value      `hcl:"ventilated,optional"`
	Category   string         `hcl:"category,optional"`
}

type layerSetBlock struct {
	Label  string        `hcl:"label,label"`
	ID     int           `hcl:"id,optional"`
	Name   string        `hcl:"name,optional"`
	Layers []*layerBlock `hcl:"layer,block"`
}

type profileBlock struct {
	Label    string         `hcl:"label,label"`
	Material hcl.Expression `hcl:"material,optional"`
	Profile  string         `hcl:"profile,optional"`
	Category string         `hcl:"category,optional"`
}

type profileSetBlock struct {
	Label    string          `hcl:"label,label"`
	ID       int             `hcl:"id,optional"`
	Name     string          `hcl:"name,optional"`
	Profiles []*profileBlock `hcl:"profile,block"`
}

type materialListBlock struct {
	Label     string         `hcl:"label,label"`
	ID        int            `hcl:"id,optional"`
	Materials hcl.Expression `hcl:"materials,optional"`
}

type layerSetUsageBlock struct {
	Label    string         `hcl:"label,label"`
	ID       int            `hcl:"id,optional"`
	LayerSet hcl.Expression `hcl:"layer_set"`
	Offset   float64        `hcl:"offset,optional"`
}

type profileSetUsageBlock struct {
	Label         string         `hcl:"label,label"`
	ID            int            `hcl:"id,optional"`
	ProfileSet    hcl.Expression `hcl:"profile_set"`
	CardinalPoint int            `hcl:"cardinal_point,optional"`
}

type elementBlock struct {
	Label    string         `hcl:"label,label"`
	ID       int            `hcl:"id,optional"`
	GlobalID string         `hcl:"global_id,optional"`
	Name     string         `hcl:"name,optional"`
	Material hcl.Expression `hcl:"material,optional"`
}

// --- Geometry ---

type pointListBlock struct {
	Label       string    `hcl:"label,label"`
	ID          int       `hcl:"id,optional"`
	Dimensions  int       `hcl:"dimensions,optional"`
	Coordinates cty.Value `hcl:"coordinates"`
	Tags        []string  `hcl:"tags,optional"`
}

type lineBlock struct {
	Label     string    `hcl:"label,label"`
	ID        int       `hcl:"id,optional"`
	Point     []float64 `hcl:"point"`
	Direction []float64 `hcl:"direction"`
	Magnitude *float64  `hcl:"magnitude,optional"`
}

// --- Properties ---

// propertyBlock is a single, enumerated, list or bounded value depending on
// which attributes are set. A property with nested property blocks is a
// complex property; nesting keeps sub-property order.
type propertyBlock struct {
	Label      string           `hcl:"label,label"`
	Value      cty.Value        `hcl:"value,optional"`
	Unit       string           `hcl:"unit,optional"`
	Enum       cty.Value        `hcl:"enum,optional"`
	List       cty.Value        `hcl:"list,optional"`
	Lower      cty.Value        `hcl:"lower,optional"`
	Upper      cty.Value        `hcl:"upper,optional"`
	SetPoint   cty.Value        `hcl:"set_point,optional"`
	Usage      string           `hcl:"usage,optional"`
	Properties []*propertyBlock `hcl:"property,block"`
}

type complexPropertyBlock struct {
	Label      string           `hcl:"label,label"`
	ID         int              `hcl:"id,optional"`
	Name       string           `hcl:"name,optional"`
	Usage      string           `hcl:"usage,optional"`
	Properties []*propertyBlock `hcl:"property,block"`
}
