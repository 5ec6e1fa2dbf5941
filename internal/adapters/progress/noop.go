package progress

import "go.trai.ch/hoist/internal/core/ports"

// NoopRecorder is a ProgressRecorder that discards all progress.
// It is used in quiet mode and in tests.
type NoopRecorder struct{}

// NewNoop creates a new NoopRecorder.
func NewNoop() ports.ProgressRecorder {
	return &NoopRecorder{}
}

// Begin returns a vertex that does nothing.
func (*NoopRecorder) Begin(string) ports.ProgressVertex {
	return noopVertex{}
}

// Close does nothing.
func (*NoopRecorder) Close() error {
	return nil
}

type noopVertex struct{}

func (noopVertex) Done(error) {}
