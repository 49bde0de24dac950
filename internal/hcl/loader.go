package hcl

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/ifcbridge/internal/config"
	"github.com/specialistvlad/ifcbridge/internal/ctxlog"
	"github.com/specialistvlad/ifcbridge/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL model loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file found under paths, merges all blocks into one
// document and translates it into a config.Model. A path that does not exist
// is skipped; finding no file at all is an error.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	var roots []*fileRoot
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		roots = append(roots, &root)
	}

	settings, err := mergeSettings(roots)
	if err != nil {
		return nil, err
	}

	graph, err := translate(roots)
	if err != nil {
		return nil, fmt.Errorf("failed to build entity graph: %w", err)
	}

	logger.Debug("HCL loading complete.", "files", len(files), "entities", graph.Len())
	return &config.Model{Settings: settings, Graph: graph, Files: files}, nil
}

// mergeSettings applies the single optional settings block over the defaults.
func mergeSettings(roots []*fileRoot) (config.Settings, error) {
	s := config.DefaultSettings()
	var found *settingsBlock
	for _, root := range roots {
		for _, b := range root.Settings {
			if found != nil {
				return s, errors.New("settings block declared more than once")
			}
			found = b
		}
	}
	if found == nil {
		return s, nil
	}
	if found.ProjectLengthUnit != nil {
		s.ProjectLengthUnit = *found.ProjectLengthUnit
	}
	if found.HostLengthUnit != nil {
		s.HostLengthUnit = *found.HostLengthUnit
	}
	if found.Tolerance != nil {
		s.Tolerance = *found.Tolerance
	}
	if found.RecordFailedCreations != nil {
		s.RecordFailedCreations = *found.RecordFailedCreations
	}
	return s, s.Validate()
}

// findAllHCLFiles walks all given paths and returns a flat list of all .hcl files found.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue // It's not an error if a configured path doesn't exist.
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			if strings.EqualFold(filepath.Ext(path), ".hcl") {
				add(path)
			}
			continue
		}
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			add(f)
		}
	}
	return allFiles, nil
}
