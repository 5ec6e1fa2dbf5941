package ports

import "go.trai.ch/hoist/internal/core/domain"

// ManifestResolver provides the snapshot of resolved package manifests that
// are about to be installed. Resolution itself happens upstream; the
// compatibility gate only consumes its output.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ManifestResolver interface {
	// Manifests returns the resolved manifests in resolver order.
	Manifests() []*domain.Manifest
}

// SnapshotLoader materializes a resolver snapshot from a file on disk.
type SnapshotLoader interface {
	// Load reads the snapshot at the given path.
	Load(path string) (ManifestResolver, error)
}
