package fs

import (
	"path/filepath"
	"strings"

	"go.trai.ch/modelc/internal/core/domain"
	"go.trai.ch/modelc/internal/core/ports"
	"go.trai.ch/zerr"
)

// bundleExt marks a versioned model bundle. It is a single source and
// its contents are never resolved individually.
const bundleExt = ".xcdatamodeld"

var (
	_ ports.PathResolver  = (*Resolver)(nil)
	_ ports.InputResolver = (*Resolver)(nil)
)

// Resolver resolves project relative paths against a project root.
type Resolver struct {
	root string
}

// NewResolver creates a Resolver rooted at root, which is made absolute.
func NewResolver(root string) (*Resolver, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve project root"), "root", root)
	}
	return &Resolver{root: abs}, nil
}

// Root returns the absolute project root.
func (r *Resolver) Root() string {
	return r.root
}

// AbsolutePath returns the absolute path of a source path.
func (r *Resolver) AbsolutePath(p domain.SourcePath) string {
	return filepath.Join(r.root, filepath.FromSlash(p.String()))
}

// Resolve returns the absolute path of a project relative path.
func (r *Resolver) Resolve(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(r.root, rel)
}

// ResolveInputs resolves glob patterns relative to the root into a sorted,
// deduplicated list of source paths. A pattern without matches is an error.
func (r *Resolver) ResolveInputs(patterns []string) ([]domain.SourcePath, error) {
	var result []domain.SourcePath

	for _, pattern := range patterns {
		path := filepath.Join(r.root, filepath.FromSlash(pattern))

		matches, err := filepath.Glob(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", path)
		}

		if len(matches) == 0 {
			return nil, zerr.With(domain.ErrInputNotFound, "path", path)
		}

		for _, match := range matches {
			rel, err := filepath.Rel(r.root, match)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", match)
			}
			src, err := domain.NewSourcePath(bundleRoot(filepath.ToSlash(rel)))
			if err != nil {
				return nil, err
			}
			result = append(result, src)
		}
	}

	return domain.SortedSourcePaths(result), nil
}

// bundleRoot truncates a slash path at the first model bundle segment.
func bundleRoot(rel string) string {
	segments := strings.Split(rel, "/")
	for i, seg := range segments {
		if strings.HasSuffix(seg, bundleExt) {
			return strings.Join(segments[:i+1], "/")
		}
	}
	return rel
}

