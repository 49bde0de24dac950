package config

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/ifcbridge/internal/geometry"
	"github.com/specialistvlad/ifcbridge/internal/ifc"
	"github.com/specialistvlad/ifcbridge/internal/units"
)

// Model is everything one import run needs.
type Model struct {
	Settings Settings
	Graph    *ifc.Graph
	Files    []string
}

// Settings holds the import options.
type Settings struct {
	ProjectLengthUnit     string
	HostLengthUnit        string
	Tolerance             float64
	RecordFailedCreations bool
}

// DefaultSettings matches a millimetre IFC project imported into a metre host.
func DefaultSettings() Settings {
	return Settings{
		ProjectLengthUnit: "MILLIMETRE",
		HostLengthUnit:    "METRE",
		Tolerance:         geometry.DefaultTolerance,
	}
}

// Validate checks the settings for values the resolvers cannot work with.
func (s Settings) Validate() error {
	if s.Tolerance <= 0 {
		return errors.New("config: tolerance must be positive")
	}
	if _, err := s.Scaler(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Scaler returns the project-to-host length scaler.
func (s Settings) Scaler() (units.Factor, error) {
	return units.NewLengthScaler(s.ProjectLengthUnit, s.HostLengthUnit)
}
