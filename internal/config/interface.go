package config

import "context"

// Loader is the interface for a format-specific model loader.
type Loader interface {
	// Load reads every path (files or directories), translates the content
	// into the format-agnostic Model and resolves all entity references.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
