// Package progress provides the Progrock implementation of the progress recorder.
package progress

import (
	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/hoist/internal/core/ports"
)

// Recorder implements ports.ProgressRecorder using the progrock library.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a new Recorder with a default tape.
func New() ports.ProgressRecorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Begin starts a progress vertex for the named unit of work.
func (r *Recorder) Begin(name string) ports.ProgressVertex {
	d := digest.FromString(name)
	return &Vertex{vertex: r.rec.Vertex(d, name)}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// Vertex implements ports.ProgressVertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Done marks the vertex as finished (successfully or with an error).
func (v *Vertex) Done(err error) {
	v.vertex.Done(err)
}
