// Package app implements the application layer for hoist.
package app

import (
	"context"

	"go.trai.ch/hoist/internal/core/ports"
	"go.trai.ch/hoist/internal/engine/compat"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader   ports.SnapshotLoader
	prober   ports.EnvironmentProber
	reporter ports.Reporter
	progress ports.ProgressRecorder
}

// New creates a new App instance.
func New(
	loader ports.SnapshotLoader,
	prober ports.EnvironmentProber,
	reporter ports.Reporter,
	progress ports.ProgressRecorder,
) *App {
	return &App{
		loader:   loader,
		prober:   prober,
		reporter: reporter,
		progress: progress,
	}
}

// Check runs the compatibility gate over the resolved manifest snapshot at
// the given path. It returns domain.ErrIncompatibleModule (wrapped with the
// offending package's identity) when a required package fails a check.
func (a *App) Check(ctx context.Context, snapshotPath string) error {
	resolver, err := a.loader.Load(snapshotPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load manifest snapshot")
	}

	env, err := a.prober.Probe(ctx)
	if err != nil {
		return zerr.Wrap(err, "failed to probe host environment")
	}

	checker := compat.NewChecker(env, a.reporter)
	driver := compat.NewDriver(resolver, checker, a.progress)
	return driver.Run(ctx)
}
