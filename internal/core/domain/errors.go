package domain

import "go.trai.ch/zerr"

var (
	// ErrTargetAlreadyExists is returned when attempting to add an action whose target is already in the graph.
	ErrTargetAlreadyExists = zerr.New("build target already exists")

	// ErrMissingDependency is returned when an action references a dependency that doesn't exist in the graph.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in the action dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrTargetNotFound is returned when a requested target is not found in the graph.
	ErrTargetNotFound = zerr.New("build target not found")

	// ErrNoTargetsSpecified is returned when no targets are given to a command that needs them.
	ErrNoTargetsSpecified = zerr.New("no targets specified")

	// ErrInvalidBuildTarget is returned when a build target string cannot be parsed.
	ErrInvalidBuildTarget = zerr.New("invalid build target")

	// ErrUnknownFlavor is returned when a flavor does not name a known action flavor.
	ErrUnknownFlavor = zerr.New("unknown action flavor")

	// ErrInvalidModuleName is returned when a module name is empty or not a valid identifier.
	ErrInvalidModuleName = zerr.New("module name must be a non-empty identifier")

	// ErrEmptySourcePath is returned when a declared source path is empty.
	ErrEmptySourcePath = zerr.New("source path is empty")

	// ErrUnsafeOutputPath is returned when a derived output directory would escape the gen directory.
	ErrUnsafeOutputPath = zerr.New("derived output path is unsafe")

	// ErrMissingTool is returned when a platform does not provide a compiler tool.
	ErrMissingTool = zerr.New("platform has no compiler tool")

	// ErrUnknownPlatform is returned when a rule references a platform that is not configured.
	ErrUnknownPlatform = zerr.New("unknown platform")

	// ErrInvalidPlatform is returned when a platform definition is incomplete.
	ErrInvalidPlatform = zerr.New("invalid platform definition")

	// ErrUnknownRuleType is returned when a rule type has no registered description.
	ErrUnknownRuleType = zerr.New("unknown rule type")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no config file is found in the directory tree.
	ErrConfigNotFound = zerr.New("could not find " + ConfigFileName + " or " + TOMLConfigFileName)

	// ErrBuildExecutionFailed is returned when the build execution fails.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrActionFailed is returned when a single action fails.
	ErrActionFailed = zerr.New("action failed")

	// ErrStepFailed is returned when a step of an action fails.
	ErrStepFailed = zerr.New("step failed")

	// ErrUnsupportedStep is returned when an executor is handed a step kind it cannot run.
	ErrUnsupportedStep = zerr.New("unsupported step kind")

	// ErrEmptyCommand is returned when a shell step has no command line.
	ErrEmptyCommand = zerr.New("shell step has an empty command")

	// ErrRuleKeyFailed is returned when a rule key cannot be computed.
	ErrRuleKeyFailed = zerr.New("failed to compute rule key")

	// ErrInputNotFound is returned when a declared input file or directory is not found.
	ErrInputNotFound = zerr.New("input not found")

	// ErrOutputMissing is returned when a recorded artifact does not exist after a build.
	ErrOutputMissing = zerr.New("recorded artifact is missing")

	// ErrOutputHashComputationFailed is returned when output hash computation fails.
	ErrOutputHashComputationFailed = zerr.New("failed to compute output hash")

	// ErrStoreReadFailed is returned when the build info cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build info")

	// ErrStoreWriteFailed is returned when the build info cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build info")

	// ErrArtifactStoreFailed is returned when artifacts cannot be copied into the artifact cache.
	ErrArtifactStoreFailed = zerr.New("failed to store artifacts")

	// ErrArtifactFetchFailed is returned when artifacts cannot be restored from the artifact cache.
	ErrArtifactFetchFailed = zerr.New("failed to restore artifacts")

	// ErrCacheMiss is returned when a requested item is not found in the cache.
	ErrCacheMiss = zerr.New("cache miss")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrCleanDirFailed is returned when an output directory cannot be reset.
	ErrCleanDirFailed = zerr.New("failed to reset directory")
)
