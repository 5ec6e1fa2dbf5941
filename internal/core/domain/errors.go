package domain

import "go.trai.ch/zerr"

var (
	// ErrIncompatibleModule is returned when a required package fails a
	// platform, architecture, or engine compatibility check.
	ErrIncompatibleModule = zerr.New("incompatible module")

	// ErrMissingReference is returned when a manifest reaches the
	// compatibility gate without its dependency graph reference. This is an
	// internal consistency fault, not a user-facing compatibility problem.
	ErrMissingReference = zerr.New("manifest has no dependency graph reference")
)
