// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/modelc/internal/core/domain"
)

// StepExecutor defines the interface for executing a single step.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type StepExecutor interface {
	// Execute runs the given step.
	//
	// Process output is streamed to stdout and stderr. It returns an error if
	// the step fails; a non-zero exit status is always a failure.
	Execute(ctx context.Context, step domain.Step, stdout, stderr io.Writer) error
}

// DirCleaner resets directories for StepKindMakeCleanDir steps.
type DirCleaner interface {
	// MakeCleanDir deletes path if present and recreates it empty.
	MakeCleanDir(path string) error
}
