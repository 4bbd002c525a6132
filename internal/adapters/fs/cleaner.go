package fs

import (
	"os"

	"go.trai.ch/modelc/internal/core/domain"
	"go.trai.ch/modelc/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DirCleaner = (*Cleaner)(nil)

// Cleaner resets output directories.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// MakeCleanDir deletes path if present and recreates it empty.
func (c *Cleaner) MakeCleanDir(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCleanDirFailed.Error()), "path", path)
	}
	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCleanDirFailed.Error()), "path", path)
	}
	return nil
}
