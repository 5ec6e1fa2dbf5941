package ports

import (
	"context"

	"go.trai.ch/hoist/internal/core/domain"
)

// EnvironmentProber discovers the host environment a package set is about to
// be installed into.
//
//go:generate mockgen -source=prober.go -destination=mocks/mock_prober.go -package=mocks
type EnvironmentProber interface {
	// Probe returns the host platform, architecture, and installed engine
	// versions. The result is immutable for the duration of a run.
	Probe(ctx context.Context) (domain.Environment, error)
}
