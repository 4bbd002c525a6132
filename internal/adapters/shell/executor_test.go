package shell_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modelc/internal/adapters/shell"
	"go.trai.ch/modelc/internal/core/domain"
	"go.trai.ch/modelc/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newExecutor(ctrl *gomock.Controller) (*shell.Executor, *mocks.MockLogger, *mocks.MockDirCleaner) {
	mockLogger := mocks.NewMockLogger(ctrl)
	mockCleaner := mocks.NewMockDirCleaner(ctrl)
	return shell.NewExecutor(mockLogger, mockCleaner), mockLogger, mockCleaner
}

func TestExecutor_Execute_MultiLineOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor, mockLogger, _ := newExecutor(ctrl)

	gomock.InOrder(
		mockLogger.EXPECT().Info("line1"),
		mockLogger.EXPECT().Info("line2"),
	)

	step := domain.NewShellStep("test", t.TempDir(), []string{"sh", "-c", "echo line1; echo line2"}, nil)

	err := executor.Execute(context.Background(), step, nil, io.Discard)
	require.NoError(t, err)
}

func TestExecutor_Execute_FragmentedOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor, mockLogger, _ := newExecutor(ctrl)

	mockLogger.EXPECT().Info("part1part2").Times(1)
	mockLogger.EXPECT().Info("tail").Times(1)

	step := domain.NewShellStep("test", t.TempDir(), []string{"sh", "-c", "printf part1; sleep 0.1; echo part2; printf tail"}, nil)

	err := executor.Execute(context.Background(), step, nil, io.Discard)
	require.NoError(t, err)
}

func TestExecutor_Execute_EnvironmentVariables(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor, _, _ := newExecutor(ctrl)

	step := domain.NewShellStep("test", t.TempDir(),
		[]string{"sh", "-c", "echo $MY_TEST_VAR"},
		map[string]string{"MY_TEST_VAR": "test-value-123"},
	)

	var stdout bytes.Buffer
	err := executor.Execute(context.Background(), step, &stdout, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "test-value-123\n", stdout.String())
}

func TestExecutor_Execute_WorkingDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor, _, _ := newExecutor(ctrl)

	dir := t.TempDir()
	step := domain.NewShellStep("test", dir, []string{"sh", "-c", "pwd -P"}, nil)

	var stdout bytes.Buffer
	require.NoError(t, executor.Execute(context.Background(), step, &stdout, io.Discard))

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, want, strings.TrimSpace(stdout.String()))
}

func TestExecutor_Execute_StepPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor, _, _ := newExecutor(ctrl)

	binDir := t.TempDir()
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "fake-momc"), []byte("#!/bin/sh\necho compiled \"$@\"\n"), 0o700))

	step := domain.NewShellStep("momc", t.TempDir(),
		[]string{"fake-momc", "--module", "Model"},
		map[string]string{"PATH": binDir + string(os.PathListSeparator) + os.Getenv("PATH")},
	)

	var stdout bytes.Buffer
	require.NoError(t, executor.Execute(context.Background(), step, &stdout, io.Discard))
	assert.Equal(t, "compiled --module Model\n", stdout.String())
}

func TestExecutor_Execute_InvalidCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor, mockLogger, _ := newExecutor(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	step := domain.NewShellStep("test", t.TempDir(), []string{"nonexistent-command-xyz123"}, nil)

	err := executor.Execute(context.Background(), step, io.Discard, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStepFailed.Error())
}

func TestExecutor_Execute_CommandFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor, _, _ := newExecutor(ctrl)

	step := domain.NewShellStep("momc", t.TempDir(), []string{"sh", "-c", "echo 'model is invalid' >&2; exit 42"}, nil)

	var stderr bytes.Buffer
	err := executor.Execute(context.Background(), step, io.Discard, &stderr)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStepFailed.Error())
	assert.Equal(t, "model is invalid\n", stderr.String())

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	meta := zErr.Metadata()
	assert.Equal(t, 42, meta["exit_code"])
	assert.Equal(t, "momc", meta["step"])
	assert.Equal(t, "model is invalid", meta["stderr"])
	assert.Equal(t, step.Description(), meta["command"])
}

func TestExecutor_Execute_StderrTail(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor, _, _ := newExecutor(ctrl)

	// 5000 'x' followed by a marker; only the last 4 KiB survive.
	script := "i=0; while [ $i -lt 500 ]; do printf xxxxxxxxxx >&2; i=$((i+1)); done; printf END >&2; exit 1"
	step := domain.NewShellStep("test", t.TempDir(), []string{"sh", "-c", script}, nil)

	err := executor.Execute(context.Background(), step, io.Discard, io.Discard)
	require.Error(t, err)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	tail, ok := zErr.Metadata()["stderr"].(string)
	require.True(t, ok)
	assert.Len(t, tail, 4<<10)
	assert.True(t, strings.HasSuffix(tail, "END"))
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor, _, _ := newExecutor(ctrl)

	step := domain.NewShellStep("test", t.TempDir(), nil, nil)

	err := executor.Execute(context.Background(), step, io.Discard, io.Discard)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrEmptyCommand.Error())
}

func TestExecutor_Execute_MakeCleanDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor, _, mockCleaner := newExecutor(ctrl)

	mockCleaner.EXPECT().MakeCleanDir("/work/out").Return(nil)

	err := executor.Execute(context.Background(), domain.NewMakeCleanDirStep("/work/out"), nil, nil)
	require.NoError(t, err)
}

func TestExecutor_Execute_UnsupportedStep(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor, _, _ := newExecutor(ctrl)

	err := executor.Execute(context.Background(), domain.Step{ShortName: "bogus"}, nil, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnsupportedStep.Error())
}

func TestExecutor_Execute_StreamsOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor, _, _ := newExecutor(ctrl)

	ansiRed := "\033[31m"
	ansiReset := "\033[0m"
	msg := "Hello Red World"
	step := domain.NewShellStep("test", t.TempDir(), []string{"sh", "-c", "printf '" + ansiRed + msg + ansiReset + "'"}, nil)

	var stdout bytes.Buffer
	err := executor.Execute(context.Background(), step, &stdout, io.Discard)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), ansiRed)
	assert.Contains(t, stdout.String(), msg)
}
