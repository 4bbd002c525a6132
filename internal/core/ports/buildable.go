package ports

import "go.trai.ch/modelc/internal/core/domain"

// BuildContext carries what an action needs to generate its steps.
type BuildContext struct {
	// Resolver resolves source paths and project relative paths.
	Resolver PathResolver
}

// BuildableContext receives the artifacts an action wants cached.
type BuildableContext interface {
	// RecordArtifact records a project relative path as a durable output.
	RecordArtifact(path string)
}

// Buildable is an action in the build graph.
//
//go:generate mockgen -source=buildable.go -destination=mocks/mock_buildable.go -package=mocks
type Buildable interface {
	domain.Node
	RuleKeyAppendable

	// Type returns the rule type of the action.
	Type() domain.RuleType

	// BuildSteps returns the ordered steps building the action.
	// Calling it repeatedly yields identical steps.
	BuildSteps(ctx BuildContext) []domain.Step

	// RecordArtifacts reports the action's durable outputs.
	// It is called once, after every step succeeded.
	RecordArtifacts(ctx BuildableContext)

	// OutputPath returns the project relative output of the action, if it has one.
	OutputPath() (string, bool)
}

// PlatformDescriptor is a target platform together with the compiler for it.
type PlatformDescriptor struct {
	domain.Platform
	// Momc is the Core Data model compiler for the platform.
	Momc Tool
}
