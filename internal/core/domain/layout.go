package domain

import (
	"fmt"
	"path/filepath"
)

const (
	// WorkDirName is the name of the internal workspace directory.
	WorkDirName = ".modelc"

	// GenDirName is the name of the directory holding generated action outputs.
	GenDirName = "gen"

	// StoreDirName is the name of the build info store directory.
	StoreDirName = "store"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// ArtifactsDirName is the name of the artifact cache directory.
	ArtifactsDirName = "artifacts"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "modelc.yaml"

	// TOMLConfigFileName is the name of the project configuration file in TOML form.
	TOMLConfigFileName = "modelc.toml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// ConfigFileNames returns the accepted configuration file names in lookup order.
func ConfigFileNames() []string {
	return []string{ConfigFileName, TOMLConfigFileName}
}

// DefaultWorkPath returns the default root directory for modelc metadata.
func DefaultWorkPath() string {
	return WorkDirName
}

// DefaultGenPath returns the default directory for generated outputs.
// It joins .modelc and gen.
func DefaultGenPath() string {
	return filepath.Join(WorkDirName, GenDirName)
}

// DefaultStorePath returns the default path for the build info store directory.
// It joins .modelc and store.
func DefaultStorePath() string {
	return filepath.Join(WorkDirName, StoreDirName)
}

// DefaultArtifactCachePath returns the default path for the artifact cache.
// It joins .modelc, cache, and artifacts.
func DefaultArtifactCachePath() string {
	return filepath.Join(WorkDirName, CacheDirName, ArtifactsDirName)
}

// GenPath returns the project relative generated-files path of a target.
// format must contain a single %s, which is replaced by the target's short
// name and flavor postfix.
func GenPath(target BuildTarget, format string) string {
	return filepath.Join(
		DefaultGenPath(),
		filepath.FromSlash(target.BasePath()),
		fmt.Sprintf(format, target.ShortNameAndFlavorPostfix()),
	)
}
