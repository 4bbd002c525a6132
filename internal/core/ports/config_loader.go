package ports

import "go.trai.ch/modelc/internal/core/domain"

// Project is a loaded build configuration.
type Project struct {
	// Root is the absolute project root, the directory holding the config file.
	Root string
	// Resolver resolves paths relative to Root.
	Resolver PathResolver
	// Graph holds every action of the project.
	Graph *domain.Graph[Buildable]
}

// ConfigLoader defines the interface for loading the build configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration found at or above cwd and builds the
	// project's action graph.
	Load(cwd string) (*Project, error)

	// DiscoverRoot walks up from cwd to find the directory containing the config file.
	DiscoverRoot(cwd string) (string, error)
}
