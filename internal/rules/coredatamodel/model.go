// Package coredatamodel implements the action that compiles Core Data model
// sources into a platform specific bundle with momc.
package coredatamodel

import (
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/modelc/internal/core/domain"
	"go.trai.ch/modelc/internal/core/ports"
	"go.trai.ch/zerr"
)

// StepShortName is the short name of every compile step.
const StepShortName = "momc"

var (
	_ ports.Buildable = (*Model)(nil)

	moduleNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Params holds the graph level identity of an action.
type Params struct {
	// Target is the action's build target. The core-data-model flavor is
	// added when missing.
	Target domain.BuildTarget
	// Deps are build order dependencies on other actions.
	Deps []domain.BuildTarget
}

// Model compiles a set of data model sources for one platform.
// It is immutable after construction.
type Model struct {
	target     domain.BuildTarget
	deps       []domain.BuildTarget
	moduleName string
	momc       ports.Tool
	inputs     []domain.SourcePath
	platform   domain.Platform
	outputDir  string
}

// New validates its arguments and creates a Model.
func New(params Params, platform ports.PlatformDescriptor, moduleName string, inputs []domain.SourcePath) (*Model, error) {
	target := params.Target.WithFlavors(domain.ActionFlavorCoreDataModel.String())

	if !moduleNamePattern.MatchString(moduleName) {
		return nil, zerr.With(zerr.With(domain.ErrInvalidModuleName, "module", moduleName), "target", target.String())
	}
	if platform.Momc == nil {
		return nil, zerr.With(zerr.With(domain.ErrMissingTool, "platform", platform.Name), "target", target.String())
	}
	if platform.SDKName == "" || platform.SDKRoot == "" || platform.MinOSVersion == "" {
		return nil, zerr.With(zerr.With(domain.ErrInvalidPlatform, "platform", platform.Name), "target", target.String())
	}
	for _, in := range inputs {
		if strings.TrimSpace(in.String()) == "" {
			return nil, zerr.With(domain.ErrEmptySourcePath, "target", target.String())
		}
	}

	outputDir, err := DeriveOutputDir(target)
	if err != nil {
		return nil, err
	}

	return &Model{
		target:     target,
		deps:       slices.Clone(params.Deps),
		moduleName: moduleName,
		momc:       platform.Momc,
		inputs:     domain.SortedSourcePaths(inputs),
		platform:   platform.Platform,
		outputDir:  outputDir,
	}, nil
}

// DeriveOutputDir returns the project relative output directory of target.
// momc rejects '#' in paths, so flavor separators are replaced with '-'.
func DeriveOutputDir(target domain.BuildTarget) (string, error) {
	dir := strings.ReplaceAll(domain.GenPath(target, "%s"), "#", "-")
	gen := domain.DefaultGenPath()
	if filepath.IsAbs(dir) || filepath.Clean(dir) != dir || !strings.HasPrefix(dir, gen+string(filepath.Separator)) {
		return "", zerr.With(zerr.With(domain.ErrUnsafeOutputPath, "path", dir), "target", target.String())
	}
	return dir, nil
}

// Target returns the flavored build target of the action.
func (m *Model) Target() domain.BuildTarget {
	return m.target
}

// Deps returns the build order dependencies of the action.
func (m *Model) Deps() []domain.BuildTarget {
	return m.deps
}

// Type returns the rule type.
func (m *Model) Type() domain.RuleType {
	return domain.RuleTypeCoreDataModel
}

// ModuleName returns the name of the compiled module.
func (m *Model) ModuleName() string {
	return m.moduleName
}

// Inputs returns the sorted data model sources.
func (m *Model) Inputs() []domain.SourcePath {
	return slices.Clone(m.inputs)
}

// Platform returns the platform the action compiles for.
func (m *Model) Platform() domain.Platform {
	return m.platform
}

// OutputDir returns the project relative output directory.
func (m *Model) OutputDir() string {
	return m.outputDir
}

// OutputPath returns the output directory. It is always present.
func (m *Model) OutputPath() (string, bool) {
	return m.outputDir, true
}

// BuildSteps resets the output directory and then compiles every input.
// The compile steps only depend on the reset step, never on each other.
func (m *Model) BuildSteps(ctx ports.BuildContext) []domain.Step {
	resolver := ctx.Resolver
	outputDir := resolver.Resolve(m.outputDir)
	prefix := m.momc.CommandPrefix(resolver)
	env := m.momc.Environment()

	steps := make([]domain.Step, 0, 1+len(m.inputs))
	steps = append(steps, domain.NewMakeCleanDirStep(outputDir))

	for _, input := range m.inputs {
		command := make([]string, 0, len(prefix)+9)
		command = append(command, prefix...)
		command = append(command,
			"--sdkroot", m.platform.SDKRoot,
			m.platform.DeploymentTargetFlag(), m.platform.MinOSVersion,
			"--module", m.moduleName,
			resolver.AbsolutePath(input),
			outputDir,
		)
		steps = append(steps, domain.NewShellStep(StepShortName, resolver.Root(), command, env))
	}
	return steps
}

// RecordArtifacts records the whole output directory as the only artifact.
func (m *Model) RecordArtifacts(ctx ports.BuildableContext) {
	ctx.RecordArtifact(m.outputDir)
}

// AppendToRuleKey adds the identity relevant fields of the action.
// The SDK root is not part of the key.
func (m *Model) AppendToRuleKey(b ports.RuleKeyBuilder) {
	b.SetString("moduleName", m.moduleName).
		SetAppendable("momc", m.momc).
		SetSourcePaths("dataModelPaths", m.inputs).
		SetString("sdkName", m.platform.SDKName).
		SetString("minOSVersion", m.platform.MinOSVersion)
}
