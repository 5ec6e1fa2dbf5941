package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hoist/internal/adapters/manifest"
)

func writeSnapshot(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hoist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	path := writeSnapshot(t, `
version: "1"
packages:
  - name: fsevents
    version: 2.3.3
    os: ["darwin"]
    cpu: ["x64", "arm64"]
    engines:
      node: ">=8.16.0"
    optional: true
  - name: left-pad
    version: 1.3.0
`)

	s, err := manifest.Load(path)
	require.NoError(t, err)

	manifests := s.Manifests()
	require.Len(t, manifests, 2)

	fsevents := manifests[0]
	assert.Equal(t, "fsevents", fsevents.Name)
	assert.Equal(t, "2.3.3", fsevents.Version)
	assert.Equal(t, []string{"darwin"}, fsevents.OS)
	assert.Equal(t, []string{"x64", "arm64"}, fsevents.CPU)
	assert.Equal(t, ">=8.16.0", fsevents.Engines["node"])
	require.NotNil(t, fsevents.Reference)
	assert.True(t, fsevents.Reference.Optional)
	assert.NotZero(t, fsevents.Digest)

	leftPad := manifests[1]
	assert.Empty(t, leftPad.OS)
	assert.Empty(t, leftPad.Engines)
	require.NotNil(t, leftPad.Reference)
	assert.False(t, leftPad.Reference.Optional)
}

func TestLoad_DropsDuplicates(t *testing.T) {
	path := writeSnapshot(t, `
version: "1"
packages:
  - name: left-pad
    version: 1.3.0
    optional: true
  - name: left-pad
    version: 1.3.0
  - name: left-pad
    version: 1.2.0
`)

	s, err := manifest.Load(path)
	require.NoError(t, err)

	manifests := s.Manifests()
	require.Len(t, manifests, 2)
	// First occurrence wins.
	assert.True(t, manifests[0].Reference.Optional)
	assert.Equal(t, "1.2.0", manifests[1].Version)
}

func TestLoad_MissingName(t *testing.T) {
	path := writeSnapshot(t, `
version: "1"
packages:
  - version: 1.0.0
`)

	_, err := manifest.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing name or version")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := manifest.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeSnapshot(t, "packages: [:::")
	_, err := manifest.Load(path)
	require.Error(t, err)
}
