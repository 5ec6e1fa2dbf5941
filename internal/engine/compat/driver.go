package compat

import (
	"context"

	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/hoist/internal/core/ports"
	"go.trai.ch/zerr"
)

// Driver runs the compatibility check over a full snapshot of resolved
// manifests.
type Driver struct {
	resolver ports.ManifestResolver
	checker  *Checker
	progress ports.ProgressRecorder
}

// NewDriver creates a Driver over the given resolver snapshot.
func NewDriver(resolver ports.ManifestResolver, checker *Checker, progress ports.ProgressRecorder) *Driver {
	return &Driver{
		resolver: resolver,
		checker:  checker,
		progress: progress,
	}
}

// Run checks every resolved manifest in resolver order. Optional packages
// that fail a check are marked as excluded on their graph reference. The
// first rejected required package aborts the batch immediately, leaving
// later manifests unchecked; partial installation states are not attempted.
func (d *Driver) Run(ctx context.Context) error {
	for _, m := range d.resolver.Manifests() {
		if err := ctx.Err(); err != nil {
			return zerr.Wrap(err, "compatibility check interrupted")
		}

		vertex := d.progress.Begin(m.Human())
		decision, err := d.checker.Check(m)
		vertex.Done(err)
		if err != nil {
			return err
		}

		if decision == domain.DecisionExcludedOptional {
			m.Reference.AddIgnore(true)
		}
	}
	return nil
}
