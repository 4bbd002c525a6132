package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/modelc/internal/core/domain"
	"go.trai.ch/modelc/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileHasher = (*Hasher)(nil)

// Hasher computes xxhash content hashes of files and directories.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputeDirHash hashes every file below dir together with its slash
// separated path relative to dir. The hash does not depend on where dir lives.
func (h *Hasher) ComputeDirHash(dir string) (uint64, error) {
	hasher := xxhash.New()
	for path, err := range h.walker.WalkFiles(dir, nil) {
		if err != nil {
			return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", dir)
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
		}
		if err := h.hashFile(hasher, filepath.ToSlash(rel), path); err != nil {
			return 0, err
		}
	}
	return hasher.Sum64(), nil
}

// ComputePathHash hashes a file, or a directory such as an .xcdatamodeld bundle.
func (h *Hasher) ComputePathHash(path string) (uint64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
	}
	if info.IsDir() {
		return h.ComputeDirHash(path)
	}
	return h.ComputeFileHash(path)
}

// ComputeOutputHash computes the hash of the given outputs relative to root.
func (h *Hasher) ComputeOutputHash(root string, outputs []string) (string, error) {
	sorted := slices.Clone(outputs)
	slices.Sort(sorted)

	hasher := xxhash.New()
	for _, output := range slices.Compact(sorted) {
		path := filepath.Join(root, output)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return "", zerr.With(domain.ErrOutputMissing, "path", path)
			}
			return "", zerr.With(zerr.Wrap(err, domain.ErrOutputHashComputationFailed.Error()), "path", path)
		}

		sum, err := h.ComputePathHash(path)
		if err != nil {
			return "", zerr.Wrap(err, domain.ErrOutputHashComputationFailed.Error())
		}

		_, _ = hasher.WriteString(filepath.ToSlash(output))
		_, _ = hasher.Write([]byte{0})
		if err := binary.Write(hasher, binary.LittleEndian, sum); err != nil {
			return "", zerr.Wrap(err, "failed to write hash to digest")
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func (h *Hasher) hashFile(w io.Writer, name, path string) error {
	_, _ = w.Write([]byte(name))
	_, _ = w.Write([]byte{0})

	sum, err := h.ComputeFileHash(path)
	if err != nil {
		return err
	}

	if err := binary.Write(w, binary.LittleEndian, sum); err != nil {
		return zerr.Wrap(err, "failed to write hash to digest")
	}
	return nil
}
