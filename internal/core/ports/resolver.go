package ports

import "go.trai.ch/modelc/internal/core/domain"

// PathResolver turns project relative references into concrete filesystem paths.
//
//go:generate mockgen -destination=mocks/resolver_mock.go -package=mocks -source=resolver.go
type PathResolver interface {
	// Root returns the absolute project root.
	Root() string

	// AbsolutePath returns the absolute path of a source path.
	AbsolutePath(p domain.SourcePath) string

	// Resolve returns the absolute path of a project relative path.
	Resolve(rel string) string
}

// InputResolver expands declared input patterns into concrete source paths.
type InputResolver interface {
	// ResolveInputs resolves the given patterns to a sorted, deduplicated list of source paths.
	ResolveInputs(patterns []string) ([]domain.SourcePath, error)
}
