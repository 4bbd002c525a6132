package domain

import (
	"path"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// SourcePath is a slash-separated source file path relative to the project root.
type SourcePath string

// NewSourcePath cleans and validates a project relative source path.
func NewSourcePath(p string) (SourcePath, error) {
	if strings.TrimSpace(p) == "" {
		return "", ErrEmptySourcePath
	}
	clean := path.Clean(filepath.ToSlash(p))
	if path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", zerr.With(zerr.Wrap(ErrInputNotFound, "source path must be inside the project"), "path", p)
	}
	return SourcePath(clean), nil
}

// String returns the path in slash form.
func (p SourcePath) String() string {
	return string(p)
}

// SortedSourcePaths returns a sorted, deduplicated copy of paths.
func SortedSourcePaths(paths []SourcePath) []SourcePath {
	sorted := slices.Clone(paths)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}
