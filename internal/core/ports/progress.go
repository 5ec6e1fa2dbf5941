package ports

// ProgressRecorder reports per-manifest check progress.
//
//go:generate mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks
type ProgressRecorder interface {
	// Begin starts a progress vertex for the named unit of work.
	Begin(name string) ProgressVertex
	// Close flushes and closes the recording session.
	Close() error
}

// ProgressVertex represents one unit of work in the progress display.
type ProgressVertex interface {
	// Done completes the vertex, recording the error if non-nil.
	Done(err error)
}
