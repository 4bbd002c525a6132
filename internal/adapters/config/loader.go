// Package config provides the configuration loader for modelc.
package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/modelc/internal/adapters/fs"
	"go.trai.ch/modelc/internal/adapters/tool"
	"go.trai.ch/modelc/internal/core/domain"
	"go.trai.ch/modelc/internal/core/ports"
	"go.trai.ch/modelc/internal/rules/coredatamodel"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the configuration schema version this loader understands.
const SupportedVersion = "1"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML or TOML file.
type Loader struct {
	Logger ports.Logger
	Hasher ports.FileHasher
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger, hasher ports.FileHasher) *Loader {
	return &Loader{Logger: logger, Hasher: hasher}
}

// DiscoverRoot walks up from cwd to the directory containing modelc.yaml
// or modelc.toml.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	root, _, err := discover(cwd)
	return root, err
}

// discover returns the project root and the configuration file found in it.
func discover(cwd string) (string, string, error) {
	dir, err := filepath.Abs(cwd)
	if err != nil {
		return "", "", zerr.With(zerr.Wrap(err, domain.ErrConfigNotFound.Error()), "cwd", cwd)
	}

	for {
		for _, name := range domain.ConfigFileNames() {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return dir, name, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
		}
		dir = parent
	}
}

// Load reads the configuration at or above cwd and builds the action graph.
func (l *Loader) Load(cwd string) (*ports.Project, error) {
	root, name, err := discover(cwd)
	if err != nil {
		return nil, err
	}

	modelfile, err := readModelfile(filepath.Join(root, name))
	if err != nil {
		return nil, err
	}
	if modelfile.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, expected %q", name, modelfile.Version, SupportedVersion))
	}

	resolver, err := fs.NewResolver(root)
	if err != nil {
		return nil, err
	}

	platforms, err := l.buildPlatforms(modelfile.Platforms, resolver)
	if err != nil {
		return nil, err
	}

	g, err := l.buildGraph(modelfile, platforms, resolver)
	if err != nil {
		return nil, err
	}

	return &ports.Project{Root: resolver.Root(), Resolver: resolver, Graph: g}, nil
}

func readModelfile(path string) (*Modelfile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is discovered from the working directory
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	unmarshal := yaml.Unmarshal
	if filepath.Ext(path) == ".toml" {
		unmarshal = toml.Unmarshal
	}

	var modelfile Modelfile
	if err := unmarshal(data, &modelfile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return &modelfile, nil
}

func (l *Loader) buildPlatforms(dtos map[string]PlatformDTO, resolver *fs.Resolver) (map[string]ports.PlatformDescriptor, error) {
	platforms := make(map[string]ports.PlatformDescriptor, len(dtos))

	for _, name := range slices.Sorted(maps.Keys(dtos)) {
		dto := dtos[name]

		sdk := dto.SDK
		if sdk == "" {
			sdk = name
		}
		sdkRoot := os.ExpandEnv(dto.SDKRoot)
		if sdkRoot == "" || dto.MinVersion == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidPlatform, "sdkRoot and minVersion are required"), "platform", name)
		}
		if !filepath.IsAbs(sdkRoot) {
			return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidPlatform, "sdkRoot must be absolute"), "platform", name), "sdk_root", sdkRoot)
		}

		momc, err := l.buildTool(dto.Momc, resolver)
		if err != nil {
			return nil, zerr.With(err, "platform", name)
		}

		platforms[name] = ports.PlatformDescriptor{
			Platform: domain.Platform{
				Name:         name,
				SDKName:      sdk,
				SDKRoot:      sdkRoot,
				MinOSVersion: dto.MinVersion,
			},
			Momc: momc,
		}
	}
	return platforms, nil
}

func (l *Loader) buildTool(dto ToolDTO, resolver *fs.Resolver) (ports.Tool, error) {
	path := os.ExpandEnv(dto.Path)
	if path == "" {
		return nil, domain.ErrMissingTool
	}
	if dto.Version != "" {
		return tool.NewVersionedTool("momc", path, dto.Version, dto.Args, dto.Env)
	}
	return tool.NewHashedFileTool(path, dto.Args, dto.Env, resolver, l.Hasher)
}

func (l *Loader) buildGraph(
	modelfile *Modelfile,
	platforms map[string]ports.PlatformDescriptor,
	resolver *fs.Resolver,
) (*domain.Graph[ports.Buildable], error) {
	description := coredatamodel.NewDescription(platforms)
	allPlatforms := slices.Sorted(maps.Keys(platforms))

	args := make(map[string]coredatamodel.Arg, len(modelfile.Rules))
	for _, name := range slices.Sorted(maps.Keys(modelfile.Rules)) {
		arg, err := buildArg(name, modelfile.Rules[name], allPlatforms, resolver)
		if err != nil {
			return nil, err
		}
		args[arg.Target.FullyQualifiedName()] = arg
	}

	g := domain.NewGraph[ports.Buildable]()
	outputs := make(map[string]string)

	for _, name := range slices.Sorted(maps.Keys(args)) {
		arg := args[name]
		if err := validateDeps(arg, args); err != nil {
			return nil, err
		}

		actions, err := description.CreateActions(arg)
		if err != nil {
			return nil, err
		}

		for _, action := range actions {
			target := action.Target().FullyQualifiedName()
			// '#' to '-' substitution can make two targets share a directory.
			if other, ok := outputs[action.OutputDir()]; ok {
				err := zerr.Wrap(domain.ErrUnsafeOutputPath, "output directory is ambiguous")
				err = zerr.With(err, "target", target)
				return nil, zerr.With(err, "conflicts_with", other)
			}
			outputs[action.OutputDir()] = target

			if err := g.Add(action); err != nil {
				return nil, err
			}
		}
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func buildArg(name string, dto RuleDTO, allPlatforms []string, resolver *fs.Resolver) (coredatamodel.Arg, error) {
	target, err := parseRuleTarget(name)
	if err != nil {
		return coredatamodel.Arg{}, err
	}

	sources, err := resolver.ResolveInputs(dto.Sources)
	if err != nil {
		return coredatamodel.Arg{}, zerr.With(err, "rule", name)
	}

	deps := make([]domain.BuildTarget, 0, len(dto.Deps))
	for _, dep := range dto.Deps {
		depTarget, err := parseRuleTarget(dep)
		if err != nil {
			return coredatamodel.Arg{}, zerr.With(err, "rule", name)
		}
		deps = append(deps, depTarget)
	}

	platforms := dto.Platforms
	if len(platforms) == 0 {
		platforms = allPlatforms
	}

	return coredatamodel.Arg{
		Target:    target,
		Module:    dto.Module,
		Sources:   sources,
		Platforms: canonicalizeStrings(platforms),
		Deps:      deps,
	}, nil
}

// validateDeps checks that every dependency is a declared rule built for
// every platform of arg.
func validateDeps(arg coredatamodel.Arg, args map[string]coredatamodel.Arg) error {
	for _, dep := range arg.Deps {
		depArg, ok := args[dep.FullyQualifiedName()]
		if !ok {
			err := zerr.With(domain.ErrMissingDependency, "missing_dependency", dep.String())
			return zerr.With(err, "rule", arg.Target.String())
		}
		for _, p := range arg.Platforms {
			if !slices.Contains(depArg.Platforms, p) {
				err := zerr.With(domain.ErrMissingDependency, "missing_dependency", dep.String())
				err = zerr.With(err, "platform", p)
				return zerr.With(err, "rule", arg.Target.String())
			}
		}
	}
	return nil
}

// parseRuleTarget parses a rule name, which must not carry flavors.
func parseRuleTarget(name string) (domain.BuildTarget, error) {
	target, err := domain.ParseBuildTarget(name)
	if err != nil {
		return domain.BuildTarget{}, err
	}
	if target.IsFlavored() {
		return domain.BuildTarget{}, zerr.With(zerr.Wrap(domain.ErrInvalidBuildTarget, "rule names cannot carry flavors"), "rule", name)
	}
	return target, nil
}

func canonicalizeStrings(strs []string) []string {
	if len(strs) == 0 {
		return nil
	}
	sorted := slices.Clone(strs)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}
