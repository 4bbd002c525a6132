// Package shell provides the step executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/modelc/internal/core/domain"
	"go.trai.ch/modelc/internal/core/ports"
	"go.trai.ch/zerr"
)

// stderrTailSize is how much trailing stderr is attached to a failure.
const stderrTailSize = 4 << 10

var _ ports.StepExecutor = (*Executor)(nil)

// Executor implements ports.StepExecutor using os/exec.
type Executor struct {
	logger  ports.Logger
	cleaner ports.DirCleaner
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger, cleaner ports.DirCleaner) *Executor {
	return &Executor{
		logger:  logger,
		cleaner: cleaner,
	}
}

// Execute runs a single step.
// Shell steps inherit os.Environ() overlaid with the step environment.
// When stdout or stderr is nil, the stream is written to the logger line by line.
func (e *Executor) Execute(ctx context.Context, step domain.Step, stdout, stderr io.Writer) error {
	switch step.Kind {
	case domain.StepKindMakeCleanDir:
		if err := e.cleaner.MakeCleanDir(step.Path); err != nil {
			return zerr.With(err, "step", step.ShortName)
		}
		return nil
	case domain.StepKindShell:
		return e.runShell(ctx, step, stdout, stderr)
	default:
		return zerr.With(domain.ErrUnsupportedStep, "kind", step.Kind.String())
	}
}

func (e *Executor) runShell(ctx context.Context, step domain.Step, stdout, stderr io.Writer) error {
	if len(step.Command) == 0 {
		return zerr.With(domain.ErrEmptyCommand, "step", step.ShortName)
	}

	name := step.Command[0]
	args := step.Command[1:]

	cmdEnv := resolveEnvironment(os.Environ(), step.Environment)

	// Resolve the executable on the step's PATH rather than ours.
	executable := name
	if !filepath.IsAbs(name) && !strings.ContainsRune(name, filepath.Separator) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // command comes from the build graph

	// exec.CommandContext sets Args[0] to the executable path; keep the name as invoked.
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}

	if step.WorkingDir != "" {
		cmd.Dir = step.WorkingDir
	}
	cmd.Env = cmdEnv

	var outLog, errLog *lineWriter
	if stdout == nil {
		outLog = newLineWriter(e.logger.Info)
		stdout = outLog
	}
	if stderr == nil {
		errLog = newLineWriter(func(line string) { e.logger.Error(zerr.New(line)) })
		stderr = errLog
	}

	tail := &tailBuffer{limit: stderrTailSize}
	cmd.Stdout = stdout
	cmd.Stderr = io.MultiWriter(stderr, tail)

	err := cmd.Run()

	outLog.Flush()
	errLog.Flush()

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		failure := zerr.Wrap(err, domain.ErrStepFailed.Error())
		failure = zerr.With(failure, "step", step.ShortName)
		failure = zerr.With(failure, "command", step.Description())
		failure = zerr.With(failure, "exit_code", exitCode)
		if s := tail.String(); s != "" {
			failure = zerr.With(failure, "stderr", s)
		}
		return failure
	}

	return nil
}

// lineWriter buffers partial writes and emits complete lines.
type lineWriter struct {
	emit func(string)
	buf  []byte
}

func newLineWriter(emit func(string)) *lineWriter {
	return &lineWriter{emit: emit}
}

func (w *lineWriter) Write(p []byte) (int, error) {
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

// Flush emits a trailing partial line. It is a no-op on a nil writer.
func (w *lineWriter) Flush() {
	if w == nil || len(w.buf) == 0 {
		return
	}
	w.emit(string(w.buf))
	w.buf = nil
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	limit int
	buf   []byte
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.limit; over > 0 {
		t.buf = t.buf[over:]
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	return strings.TrimSpace(string(t.buf))
}

// resolveEnvironment overlays the step environment on the system environment.
// The result is sorted so processes see a stable environment.
func resolveEnvironment(sysEnv []string, stepEnv map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(stepEnv))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	maps.Copy(envMap, stepEnv)

	result := make([]string, 0, len(envMap))
	for _, k := range slices.Sorted(maps.Keys(envMap)) {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if v, ok := strings.CutPrefix(e, "PATH="); ok {
			path = v
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
