// Package tool provides the compiler references actions invoke.
package tool

import (
	"maps"
	"os/exec"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/modelc/internal/core/domain"
	"go.trai.ch/modelc/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Tool = (*VersionedTool)(nil)
	_ ports.Tool = (*HashedFileTool)(nil)
)

// VersionedTool is a tool identified by name and version.
// Its location is not part of its identity, so relocating an installation
// of the same version keeps rule keys stable.
type VersionedTool struct {
	name      string
	path      string
	version   string
	extraArgs []string
	env       map[string]string
}

// NewVersionedTool creates a VersionedTool.
func NewVersionedTool(name, path, version string, extraArgs []string, env map[string]string) (*VersionedTool, error) {
	if path == "" || version == "" {
		return nil, zerr.With(zerr.With(domain.ErrMissingTool, "tool", name), "version", version)
	}
	return &VersionedTool{
		name:      name,
		path:      path,
		version:   version,
		extraArgs: slices.Clone(extraArgs),
		env:       maps.Clone(env),
	}, nil
}

// AppendToRuleKey adds the name, version and extra arguments.
func (t *VersionedTool) AppendToRuleKey(b ports.RuleKeyBuilder) {
	b.SetString("name", t.name).
		SetString("version", t.version).
		SetStrings("args", t.extraArgs)
}

// CommandPrefix returns the tool path followed by its extra arguments.
func (t *VersionedTool) CommandPrefix(resolver ports.PathResolver) []string {
	return commandPrefix(resolver, t.path, t.extraArgs)
}

// Environment returns a copy of the tool environment.
func (t *VersionedTool) Environment() map[string]string {
	return maps.Clone(t.env)
}

// HashedFileTool is a tool identified by the content of its binary.
type HashedFileTool struct {
	path      string
	hash      uint64
	extraArgs []string
	env       map[string]string
}

// NewHashedFileTool hashes the binary at path and creates a HashedFileTool.
// A bare name is looked up on PATH; the command keeps the bare name.
// A missing binary is reported here rather than when the first step runs.
func NewHashedFileTool(path string, extraArgs []string, env map[string]string, resolver ports.PathResolver, hasher ports.FileHasher) (*HashedFileTool, error) {
	if path == "" {
		return nil, domain.ErrMissingTool
	}
	binary := resolvePath(resolver, path)
	if isBareName(path) {
		found, err := exec.LookPath(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrMissingTool.Error()), "path", path)
		}
		binary = found
	}
	sum, err := hasher.ComputeFileHash(binary)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMissingTool.Error()), "path", path)
	}
	return &HashedFileTool{
		path:      path,
		hash:      sum,
		extraArgs: slices.Clone(extraArgs),
		env:       maps.Clone(env),
	}, nil
}

// AppendToRuleKey adds the binary hash and the extra arguments.
func (t *HashedFileTool) AppendToRuleKey(b ports.RuleKeyBuilder) {
	b.SetString("hash", strconv.FormatUint(t.hash, 16)).
		SetStrings("args", t.extraArgs)
}

// CommandPrefix returns the tool path followed by its extra arguments.
func (t *HashedFileTool) CommandPrefix(resolver ports.PathResolver) []string {
	return commandPrefix(resolver, t.path, t.extraArgs)
}

// Environment returns a copy of the tool environment.
func (t *HashedFileTool) Environment() map[string]string {
	return maps.Clone(t.env)
}

func commandPrefix(resolver ports.PathResolver, path string, extraArgs []string) []string {
	prefix := make([]string, 0, 1+len(extraArgs))
	prefix = append(prefix, resolvePath(resolver, path))
	return append(prefix, extraArgs...)
}

// resolvePath leaves absolute paths and bare executable names alone and
// resolves project relative paths against the project root.
func resolvePath(resolver ports.PathResolver, path string) string {
	if filepath.IsAbs(path) || isBareName(path) {
		return path
	}
	return resolver.Resolve(filepath.FromSlash(path))
}

func isBareName(path string) bool {
	return !strings.ContainsRune(path, filepath.Separator) && !strings.ContainsRune(path, '/')
}
