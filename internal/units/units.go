// Package units converts lengths from IFC project units to host units.
package units

import (
	"fmt"
	"strings"

	"github.com/ungerik/go3d/float64/vec3"
)

// Scaler maps a raw length in project units to host units. Implementations
// must be pure and total for finite input.
type Scaler interface {
	ScaleLength(raw float64) float64
}

// Factor is a Scaler that multiplies by a constant.
type Factor float64

// Identity leaves lengths unchanged.
const Identity Factor = 1

func (f Factor) ScaleLength(raw float64) float64 {
	return raw * float64(f)
}

// ScalerFunc adapts a plain function to Scaler.
type ScalerFunc func(raw float64) float64

func (fn ScalerFunc) ScaleLength(raw float64) float64 {
	return fn(raw)
}

// ScaleVector applies s to every component of v.
func ScaleVector(s Scaler, v vec3.T) vec3.T {
	return vec3.T{s.ScaleLength(v[0]), s.ScaleLength(v[1]), s.ScaleLength(v[2])}
}

// siPrefixes are the IfcSIPrefix values.
var siPrefixes = map[string]float64{
	"EXA":   1e18,
	"PETA":  1e15,
	"TERA":  1e12,
	"GIGA":  1e9,
	"MEGA":  1e6,
	"KILO":  1e3,
	"HECTO": 1e2,
	"DECA":  1e1,
	"":      1,
	"DECI":  1e-1,
	"CENTI": 1e-2,
	"MILLI": 1e-3,
	"MICRO": 1e-6,
	"NANO":  1e-9,
	"PICO":  1e-12,
	"FEMTO": 1e-15,
	"ATTO":  1e-18,
}

// conversionBased are the common IfcConversionBasedUnit length names, in metres.
var conversionBased = map[string]float64{
	"FOOT": 0.3048,
	"INCH": 0.0254,
	"YARD": 0.9144,
	"MILE": 1609.344,
}

// MetresPer returns the length of one named unit in metres. Accepted names
// are SI lengths with an optional prefix ("METRE", "MILLIMETRE", with
// "METER" spellings too) and the conversion-based units FOOT, INCH, YARD
// and MILE. Matching is case-insensitive.
func MetresPer(unit string) (float64, error) {
	name := strings.ToUpper(strings.TrimSpace(unit))
	name = strings.ReplaceAll(name, "METER", "METRE")
	if m, ok := conversionBased[name]; ok {
		return m, nil
	}
	if prefix, ok := strings.CutSuffix(name, "METRE"); ok {
		if f, ok := siPrefixes[prefix]; ok {
			return f, nil
		}
	}
	return 0, fmt.Errorf("units: unsupported length unit %q", unit)
}

// NewLengthScaler returns the factor converting projectUnit lengths into
// hostUnit lengths.
func NewLengthScaler(projectUnit, hostUnit string) (Factor, error) {
	from, err := MetresPer(projectUnit)
	if err != nil {
		return 0, fmt.Errorf("units: project unit: %w", err)
	}
	to, err := MetresPer(hostUnit)
	if err != nil {
		return 0, fmt.Errorf("units: host unit: %w", err)
	}
	return Factor(from / to), nil
}
