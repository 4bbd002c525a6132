package ports

import "go.trai.ch/modelc/internal/core/domain"

// BuildInfoStore defines the interface for storing and retrieving build information.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildInfoStore interface {
	// Get retrieves the build info for a fully qualified target of the project at root.
	// Returns nil, nil if not found.
	Get(root, target string) (*domain.BuildInfo, error)

	// Put stores the build info for the project at root.
	Put(root string, info domain.BuildInfo) error
}

// ArtifactCache stores recorded artifacts under the rule key that produced them.
// Artifact paths are relative to the project root.
type ArtifactCache interface {
	// Store copies the artifacts into the cache under key.
	Store(root string, key domain.RuleKey, artifacts []string) error

	// Fetch restores the artifacts for key into the project.
	// It returns domain.ErrCacheMiss when the cache holds nothing for key.
	Fetch(root string, key domain.RuleKey, artifacts []string) error

	// Contains reports whether the cache holds an entry for key.
	Contains(root string, key domain.RuleKey) bool
}
