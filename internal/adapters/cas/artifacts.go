package cas

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/modelc/internal/core/domain"
	"go.trai.ch/modelc/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactCache = (*ArtifactCache)(nil)

// ArtifactCache keeps a copy of every recorded artifact under
// .modelc/cache/artifacts/<rule key>/, mirroring the project layout.
type ArtifactCache struct{}

// NewArtifactCache creates a new ArtifactCache.
func NewArtifactCache() *ArtifactCache {
	return &ArtifactCache{}
}

// Contains reports whether the cache holds an entry for key.
func (c *ArtifactCache) Contains(root string, key domain.RuleKey) bool {
	info, err := os.Stat(c.entryDir(root, key))
	return err == nil && info.IsDir()
}

// Store copies the artifacts into the cache under key, replacing any
// previous entry. The entry is staged and renamed into place.
func (c *ArtifactCache) Store(root string, key domain.RuleKey, artifacts []string) error {
	entry := c.entryDir(root, key)
	parent := filepath.Dir(entry)
	if err := os.MkdirAll(parent, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactStoreFailed.Error()), "path", parent)
	}

	staging, err := os.MkdirTemp(parent, key.String()+".tmp-")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactStoreFailed.Error()), "path", parent)
	}
	defer os.RemoveAll(staging) //nolint:errcheck // Best effort cleanup of a failed stage

	for _, artifact := range artifacts {
		src := filepath.Join(root, artifact)
		if err := copyTree(src, filepath.Join(staging, artifact)); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrArtifactStoreFailed.Error()), "artifact", artifact)
		}
	}

	if err := os.RemoveAll(entry); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactStoreFailed.Error()), "path", entry)
	}
	if err := os.Rename(staging, entry); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactStoreFailed.Error()), "path", entry)
	}
	return nil
}

// Fetch restores the artifacts for key, replacing whatever is currently at
// their location in the project.
func (c *ArtifactCache) Fetch(root string, key domain.RuleKey, artifacts []string) error {
	entry := c.entryDir(root, key)
	if !c.Contains(root, key) {
		return zerr.Wrap(domain.ErrCacheMiss, key.String())
	}

	for _, artifact := range artifacts {
		src := filepath.Join(entry, artifact)
		if _, err := os.Lstat(src); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return zerr.With(zerr.Wrap(domain.ErrCacheMiss, key.String()), "artifact", artifact)
			}
			return zerr.With(zerr.Wrap(err, domain.ErrArtifactFetchFailed.Error()), "artifact", artifact)
		}

		dst := filepath.Join(root, artifact)
		if err := os.RemoveAll(dst); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrArtifactFetchFailed.Error()), "path", dst)
		}
		if err := copyTree(src, dst); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrArtifactFetchFailed.Error()), "artifact", artifact)
		}
	}
	return nil
}

func (c *ArtifactCache) entryDir(root string, key domain.RuleKey) string {
	return filepath.Join(root, domain.DefaultArtifactCachePath(), key.String())
}

// copyTree copies a file, symlink or directory tree from src to dst.
func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			return os.MkdirAll(target, domain.DirPerm)
		case d.Type()&fs.ModeSymlink != 0:
			link, err := os.Readlink(path)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
				return err
			}
			return os.Symlink(link, target)
		default:
			return copyFile(path, target)
		}
	})
}

func copyFile(src, dst string) (err error) {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return err
	}

	in, err := os.Open(src) //nolint:gosec // Path comes from the artifact list
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // Read-only file

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm()) //nolint:gosec // Path comes from the artifact list
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
