// Package app implements the application layer for pharbuild.
package app

import (
	"context"
	"errors"

	"go.trai.ch/pharbuild/internal/core/domain"
	"go.trai.ch/pharbuild/internal/core/ports"
	"go.trai.ch/pharbuild/internal/engine/compiler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	compiler     *compiler.Compiler
	store        ports.BuildRecordStore
	logger       ports.Logger
	telemetry    ports.Telemetry
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	c *compiler.Compiler,
	store ports.BuildRecordStore,
	log ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		compiler:     c,
		store:        store,
		logger:       log,
		telemetry:    telemetry,
	}
}

// Compile loads the configuration and builds one archive.
func (a *App) Compile(ctx context.Context, req domain.BuildRequest) (*compiler.Result, error) {
	settings, err := a.configLoader.Load(req.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	res, err := a.compiler.Compile(ctx, req, settings)
	if err != nil {
		return nil, err
	}

	a.logger.Info("wrote " + res.Archive)
	return res, nil
}

// Records returns the recorded builds. An empty version lists every record.
func (a *App) Records(version string) ([]domain.BuildRecord, error) {
	if version == "" {
		return a.store.List()
	}

	record, err := a.store.Get(version)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errors.Join(domain.ErrRecordNotFound,
			zerr.With(zerr.New("no build recorded for "+version), "version", version))
	}
	return []domain.BuildRecord{*record}, nil
}

// SetJSONLogs switches the logger to JSON output when it supports it.
func (a *App) SetJSONLogs(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}

// Close flushes the progress recording.
func (a *App) Close() error {
	return a.telemetry.Close()
}
