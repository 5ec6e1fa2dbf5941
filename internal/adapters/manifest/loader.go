// Package manifest provides the manifest snapshot loader for hoist.
package manifest

import (
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/hoist/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileLoader implements ports.SnapshotLoader using a YAML file.
type FileLoader struct{}

// Load reads the snapshot from the given path.
func (l *FileLoader) Load(path string) (ports.ManifestResolver, error) {
	return Load(path)
}

// snapshotFile represents the structure of the hoist.yaml snapshot file.
type snapshotFile struct {
	Version  string       `yaml:"version"`
	Packages []packageDTO `yaml:"packages"`
}

// packageDTO represents one resolved package entry in the snapshot.
type packageDTO struct {
	Name     string            `yaml:"name"`
	Version  string            `yaml:"version"`
	OS       []string          `yaml:"os"`
	CPU      []string          `yaml:"cpu"`
	Engines  map[string]string `yaml:"engines"`
	Optional bool              `yaml:"optional"`
}

// Snapshot is a loaded, immutable set of resolved manifests.
// It implements ports.ManifestResolver.
type Snapshot struct {
	manifests []*domain.Manifest
}

// Manifests returns the resolved manifests in file order.
func (s *Snapshot) Manifests() []*domain.Manifest {
	return s.manifests
}

// Load reads a snapshot file from the given path. Entries with a duplicate
// name@version digest are dropped, keeping the first occurrence.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read manifest snapshot")
	}

	var file snapshotFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse manifest snapshot")
	}

	s := &Snapshot{}
	seen := make(map[uint64]bool)

	for i, dto := range file.Packages {
		if dto.Name == "" || dto.Version == "" {
			err := zerr.New("snapshot entry is missing name or version")
			return nil, zerr.With(err, "entry_index", i)
		}

		digest := xxhash.Sum64String(fmt.Sprintf("%s@%s", dto.Name, dto.Version))
		if seen[digest] {
			continue
		}
		seen[digest] = true

		s.manifests = append(s.manifests, &domain.Manifest{
			Name:      dto.Name,
			Version:   dto.Version,
			OS:        dto.OS,
			CPU:       dto.CPU,
			Engines:   dto.Engines,
			Digest:    digest,
			Reference: &domain.Reference{Optional: dto.Optional},
		})
	}

	return s, nil
}
