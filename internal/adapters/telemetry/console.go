package telemetry

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"

	"go.trai.ch/modelc/internal/core/domain"
	"go.trai.ch/modelc/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Telemetry = (*Console)(nil)

// Console reports vertex progress through a ports.Logger.
// Output lines are prefixed with the vertex name.
type Console struct {
	logger ports.Logger
}

// NewConsole creates a Console logging to logger.
func NewConsole(logger ports.Logger) *Console {
	return &Console{logger: logger}
}

// Record starts a vertex. Internal vertices only report failures.
func (c *Console) Record(ctx context.Context, name string, opts ...ports.VertexOption) (context.Context, ports.Vertex) {
	var cfg ports.VertexConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	v := &consoleVertex{logger: c.logger, name: name, internal: cfg.Internal}
	v.stdout = &prefixWriter{emit: func(line string) { c.logger.Info(v.prefix(line)) }}
	v.stderr = &prefixWriter{emit: func(line string) { c.logger.Warn(v.prefix(line)) }}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing; every vertex flushes on completion.
func (c *Console) Close() error { return nil }

type consoleVertex struct {
	logger   ports.Logger
	name     string
	internal bool
	stdout   *prefixWriter
	stderr   *prefixWriter
	once     sync.Once
}

func (v *consoleVertex) prefix(line string) string {
	return "[" + v.name + "] " + line
}

func (v *consoleVertex) Stdout() io.Writer { return v.stdout }

func (v *consoleVertex) Stderr() io.Writer { return v.stderr }

func (v *consoleVertex) Log(level domain.LogLevel, msg string) {
	switch {
	case level >= domain.LogLevelError:
		v.logger.Error(zerr.New(v.prefix(msg)))
	case level >= domain.LogLevelWarn:
		v.logger.Warn(v.prefix(msg))
	case level >= domain.LogLevelInfo && !v.internal:
		v.logger.Info(v.prefix(msg))
	}
}

func (v *consoleVertex) Cached() {
	if !v.internal {
		v.logger.Info(v.prefix("cached"))
	}
}

func (v *consoleVertex) Complete(err error) {
	v.once.Do(func() {
		v.stdout.Flush()
		v.stderr.Flush()
		switch {
		case err != nil:
			v.logger.Warn(v.prefix("failed"))
		case !v.internal:
			v.logger.Info(v.prefix("done"))
		}
	})
}

// prefixWriter emits complete lines. Steps of one vertex may write concurrently.
type prefixWriter struct {
	mu   sync.Mutex
	emit func(string)
	buf  []byte
}

func (w *prefixWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		idx := bytes.IndexByte(w.buf, '\n')
		if idx < 0 {
			break
		}
		w.emit(strings.TrimSuffix(string(w.buf[:idx]), "\r"))
		w.buf = w.buf[idx+1:]
	}
	return len(p), nil
}

func (w *prefixWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.emit(string(w.buf))
		w.buf = nil
	}
}
