// Package domain contains the core domain models for package compatibility checking.
package domain

import "fmt"

// Manifest describes one resolved package as declared by its author.
// It is created by the manifest resolver and read-only during checking.
type Manifest struct {
	// Name is the package name (e.g., "fsevents").
	Name string

	// Version is the resolved semver string (e.g., "2.3.3").
	Version string

	// OS is the declared list of platform tokens. Entries may be prefixed
	// with "!" to deny a platform instead of allowing it. Empty means
	// "no OS restriction declared".
	OS []string

	// CPU is the declared list of architecture tokens, same grammar as OS.
	CPU []string

	// Engines maps an engine name (e.g., "node") to a semver range string.
	Engines map[string]string

	// Digest identifies the manifest within a snapshot (xxhash of
	// name@version). Used by the loader to drop duplicate entries.
	Digest uint64

	// Reference points back to the package's node in the dependency graph.
	// It is nil only for improperly resolved manifests.
	Reference *Reference
}

// Human returns the conventional name@version form used in user-facing messages.
func (m *Manifest) Human() string {
	return fmt.Sprintf("%s@%s", m.Name, m.Version)
}

// Reference is a package's position in the dependency graph. The ignore flag
// is the only piece of graph state the compatibility gate may write.
type Reference struct {
	// Optional marks the package as an optional dependency. Compatibility
	// failures for optional packages exclude the package instead of
	// aborting the installation.
	Optional bool

	ignored bool
}

// AddIgnore marks the reference as excluded from installation.
// Marking an already ignored reference is harmless.
func (r *Reference) AddIgnore(flag bool) {
	if flag {
		r.ignored = true
	}
}

// Ignored reports whether the reference has been excluded from installation.
func (r *Reference) Ignored() bool {
	return r.ignored
}
