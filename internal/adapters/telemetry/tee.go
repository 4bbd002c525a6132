package telemetry

import (
	"context"
	"errors"
	"io"

	"go.trai.ch/modelc/internal/core/domain"
	"go.trai.ch/modelc/internal/core/ports"
)

// Tee fans every recording out to several telemetry sinks.
type Tee struct {
	sinks []ports.Telemetry
}

// NewTee creates a Tee over sinks.
func NewTee(sinks ...ports.Telemetry) *Tee {
	return &Tee{sinks: sinks}
}

// Record starts a vertex on every sink.
func (t *Tee) Record(ctx context.Context, name string, opts ...ports.VertexOption) (context.Context, ports.Vertex) {
	v := &teeVertex{vertices: make([]ports.Vertex, 0, len(t.sinks))}
	for _, sink := range t.sinks {
		_, sv := sink.Record(ctx, name, opts...)
		v.vertices = append(v.vertices, sv)
	}
	return ports.ContextWithVertex(ctx, v), v
}

// Close closes every sink.
func (t *Tee) Close() error {
	var errs []error
	for _, sink := range t.sinks {
		errs = append(errs, sink.Close())
	}
	return errors.Join(errs...)
}

type teeVertex struct {
	vertices []ports.Vertex
}

func (v *teeVertex) Stdout() io.Writer {
	ws := make([]io.Writer, len(v.vertices))
	for i, sv := range v.vertices {
		ws[i] = sv.Stdout()
	}
	return io.MultiWriter(ws...)
}

func (v *teeVertex) Stderr() io.Writer {
	ws := make([]io.Writer, len(v.vertices))
	for i, sv := range v.vertices {
		ws[i] = sv.Stderr()
	}
	return io.MultiWriter(ws...)
}

func (v *teeVertex) Log(level domain.LogLevel, msg string) {
	for _, sv := range v.vertices {
		sv.Log(level, msg)
	}
}

func (v *teeVertex) Cached() {
	for _, sv := range v.vertices {
		sv.Cached()
	}
}

func (v *teeVertex) Complete(err error) {
	for _, sv := range v.vertices {
		sv.Complete(err)
	}
}
