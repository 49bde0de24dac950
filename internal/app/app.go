package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/ifcbridge/internal/config"
	"github.com/specialistvlad/ifcbridge/internal/ctxlog"
	"github.com/specialistvlad/ifcbridge/internal/diagnostics"
	"github.com/specialistvlad/ifcbridge/internal/host"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	model  *config.Model
	host   *host.Memory
	sink   diagnostics.Sink
}

// Option customizes an App at construction time.
type Option func(*App)

// WithHost replaces the default empty host document.
func WithHost(doc *host.Memory) Option {
	return func(a *App) {
		a.host = doc
	}
}

// WithSink adds a diagnostics sink next to the logging one.
func WithSink(sink diagnostics.Sink) Option {
	return func(a *App) {
		a.sink = diagnostics.Tee{diagnostics.SlogSink{}, sink}
	}
}

// NewApp is the constructor for the main application. It builds an isolated
// logger and loads the model; a load failure is returned as a startup error.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, opts ...Option) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Merge all configuration paths into a single collection for the loader.
	configPaths := []string{appConfig.ModelPath}
	if appConfig.SettingsPath != "" {
		// The loader skips missing paths; a settings file named explicitly must exist.
		if _, err := os.Stat(appConfig.SettingsPath); err != nil {
			return nil, fmt.Errorf("failed to read settings: %w", err)
		}
		configPaths = append(configPaths, appConfig.SettingsPath)
	}

	cfgModel, err := loader.Load(ctx, configPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load model: %w", err)
	}
	logger.Debug("Model loaded.", "entities", cfgModel.Graph.Len(), "files", len(cfgModel.Files))

	a := &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		model:  cfgModel,
		host:   host.New(),
		sink:   diagnostics.SlogSink{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Host returns the document the import writes into. This is primarily for testing.
func (a *App) Host() *host.Memory {
	return a.host
}

// Model returns the loaded model.
func (a *App) Model() *config.Model {
	return a.model
}
