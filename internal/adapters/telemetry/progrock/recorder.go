// Package progrock records build progress as a progrock status stream.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/modelc/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry on top of a progrock.Recorder.
type Recorder struct {
	w       progrock.Writer
	rec     *progrock.Recorder
	session string
}

// New creates a Recorder writing to an in-memory tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape(), "")
}

// NewRecorder creates a Recorder writing to w. Vertex digests are derived
// from session and the vertex name, so names must be unique per session.
func NewRecorder(w progrock.Writer, session string) *Recorder {
	return &Recorder{
		w:       w,
		rec:     progrock.NewRecorder(w),
		session: session,
	}
}

// Record starts recording a new vertex.
func (r *Recorder) Record(ctx context.Context, name string, opts ...ports.VertexOption) (context.Context, ports.Vertex) {
	var cfg ports.VertexConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var vopts []progrock.VertexOpt
	if cfg.Internal {
		vopts = append(vopts, progrock.Internal())
	}

	v := &Vertex{vertex: r.rec.Vertex(r.Digest(name), name, vopts...)}
	return ports.ContextWithVertex(ctx, v), v
}

// Digest returns the vertex digest used for name.
func (r *Recorder) Digest(name string) digest.Digest {
	return digest.FromString(r.session + "/" + name)
}

// Close flushes and closes the underlying writer.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
