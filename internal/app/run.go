package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/specialistvlad/ifcbridge/internal/ctxlog"
	"github.com/specialistvlad/ifcbridge/internal/geometry"
	"github.com/specialistvlad/ifcbridge/internal/ifc"
	"github.com/specialistvlad/ifcbridge/internal/material"
	"github.com/specialistvlad/ifcbridge/internal/property"
	"golang.org/x/sync/errgroup"
)

// Report summarizes one import run.
type Report struct {
	PointSets        int
	SkippedShapes    int
	Curves           int
	DegenerateCurves int
	Elements         int
	Materials        int
	Properties       []PropertyText
}

// PropertyText is the rendered form of one complex property.
type PropertyText struct {
	Source ifc.ID
	Name   string
	Text   string
}

// Run imports the loaded model into the host document. Geometry problems are
// reported to the diagnostics sink and skipped; the first material creation
// failure is returned after every element has been processed.
func (a *App) Run(ctx context.Context) (*Report, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	settings := a.model.Settings
	scaler, err := settings.Scaler()
	if err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	resolver := geometry.NewResolver(scaler, a.sink)
	resolver.Tolerance = settings.Tolerance

	report := &Report{}
	if err := a.importGeometry(ctx, resolver, report); err != nil {
		return report, err
	}
	materialErr := a.importMaterials(ctx, report)
	a.formatProperties(ctx, report)
	report.Materials = len(a.host.Materials())

	a.logger.Info("🏁 Import finished.",
		"point_sets", report.PointSets,
		"skipped_shapes", report.SkippedShapes,
		"curves", report.Curves,
		"degenerate_curves", report.DegenerateCurves,
		"elements", report.Elements,
		"materials", report.Materials,
		"properties", len(report.Properties),
	)
	if materialErr != nil {
		return report, fmt.Errorf("material import failed: %w", materialErr)
	}
	a.logger.Debug("App.Run method finished.")
	return report, nil
}

func (a *App) importGeometry(ctx context.Context, resolver *geometry.Resolver, report *Report) error {
	graph := a.model.Graph

	for _, list := range ifc.Of[ifc.CoordinateList](graph) {
		points, err := resolver.ResolvePoints(list)
		if errors.Is(err, geometry.ErrUnsupportedShape) {
			a.sink.Report(ctx, list.EntityID(), err.Error(), false)
			report.SkippedShapes++
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to resolve points of %s: %w", list.EntityID(), err)
		}
		a.host.AddPoints(list.EntityID(), points)
		report.PointSets++
	}

	for _, line := range ifc.Of[*ifc.Line](graph) {
		l, ok, err := resolver.LineFromEntity(ctx, line)
		if err != nil {
			a.sink.Report(ctx, line.ID, err.Error(), true)
			report.SkippedShapes++
			continue
		}
		if !ok {
			report.DegenerateCurves++
			continue
		}
		a.host.AddCurve(line.ID, *l)
		report.Curves++
	}
	return nil
}

// importMaterials creates the host materials of every element through one
// shared cache, so a material reachable from several elements or composites
// is created once.
func (a *App) importMaterials(ctx context.Context, report *Report) error {
	cache := material.NewCache(material.RecordFailures(a.model.Settings.RecordFailedCreations))
	elements := ifc.Of[*ifc.Element](a.model.Graph)

	g := new(errgroup.Group)
	g.SetLimit(a.config.WorkerCount)
	var processed atomic.Int64
	for _, el := range elements {
		g.Go(func() error {
			elCtx := ctxlog.With(ctx, "element", el.ID.String())
			logger := ctxlog.FromContext(elCtx)
			if el.Material == nil {
				logger.Debug("Element has no material association.")
				return nil
			}
			processed.Add(1)

			leaves := material.Flatten(el.Material)
			logger.Debug("Element material resolved.", "name", el.Name, "leaf_materials", leaves.Len())
			if set := layerSetOf(el.Material); set != nil {
				logger.Debug("Element layer set.",
					"thickness", material.LayerSetThickness(set),
					"air_gaps", len(material.AirGapLayers(set)),
				)
			}

			if err := material.Create(elCtx, el.Material, a.host, cache); err != nil {
				logger.Error("Failed to create element materials.", "error", err)
				return fmt.Errorf("element %s: %w", el.ID, err)
			}
			return nil
		})
	}
	err := g.Wait()
	report.Elements = int(processed.Load())
	return err
}

// layerSetOf returns the layer set behind a layer set or a layer set usage.
func layerSetOf(def ifc.MaterialDefinition) *ifc.MaterialLayerSet {
	switch d := def.(type) {
	case *ifc.MaterialLayerSet:
		return d
	case *ifc.MaterialLayerSetUsage:
		if d == nil {
			return nil
		}
		return d.ForLayerSet
	}
	return nil
}

func (a *App) formatProperties(ctx context.Context, report *Report) {
	logger := ctxlog.FromContext(ctx)
	for _, cp := range ifc.Of[*ifc.ComplexProperty](a.model.Graph) {
		text := property.FormatComplexProperty(cp)
		logger.Info("Complex property.", "entity", cp.ID.String(), "name", cp.Name, "value", text)
		report.Properties = append(report.Properties, PropertyText{Source: cp.ID, Name: cp.Name, Text: text})
	}
}
