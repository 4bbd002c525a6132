package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modelc/internal/adapters/fs"
	"go.trai.ch/modelc/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestWalker_WalkFiles(t *testing.T) {
	// tmp/
	//   .git/config
	//   .modelc/gen/out
	//   ignored/file
	//   App/Model.xcdatamodel/contents
	//   README.md
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".git", "config"), "git config")
	writeFile(t, filepath.Join(tmpDir, ".modelc", "gen", "out"), "generated")
	writeFile(t, filepath.Join(tmpDir, "ignored", "file"), "ignored content")
	writeFile(t, filepath.Join(tmpDir, "App", "Model.xcdatamodel", "contents"), "<model/>")
	writeFile(t, filepath.Join(tmpDir, "README.md"), "# Readme")

	walker := fs.NewWalker()

	var files []string
	for path, err := range walker.WalkFiles(tmpDir, []string{"ignored"}) {
		require.NoError(t, err)
		rel, err := filepath.Rel(tmpDir, path)
		require.NoError(t, err)
		files = append(files, filepath.ToSlash(rel))
	}

	assert.Equal(t, []string{"App/Model.xcdatamodel/contents", "README.md"}, files)
}

func TestWalker_StopsEarly(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "a"), "a")
	writeFile(t, filepath.Join(tmpDir, "b"), "b")

	count := 0
	for range fs.NewWalker().WalkFiles(tmpDir, nil) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestWalker_ReportsWalkError(t *testing.T) {
	var errs []error
	for path, err := range fs.NewWalker().WalkFiles(filepath.Join(t.TempDir(), "missing"), nil) {
		assert.Empty(t, path)
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "failed to walk directory")
}

func TestHasher_ComputeDirHash_WalkErrors(t *testing.T) {
	hasher := fs.NewHasher(fs.NewWalker())

	t.Run("missing directory", func(t *testing.T) {
		_, err := hasher.ComputeDirHash(filepath.Join(t.TempDir(), "Model.xcdatamodeld"))
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrFileHashFailed.Error())
	})

	t.Run("unreadable subdirectory", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("permissions are not enforced for root")
		}
		bundle := filepath.Join(t.TempDir(), "Model.xcdatamodeld")
		writeFile(t, filepath.Join(bundle, "A.xcdatamodel", "contents"), "<a/>")
		writeFile(t, filepath.Join(bundle, "B.xcdatamodel", "contents"), "<b/>")
		locked := filepath.Join(bundle, "B.xcdatamodel")
		require.NoError(t, os.Chmod(locked, 0))
		t.Cleanup(func() { _ = os.Chmod(locked, 0o750) }) //nolint:gosec // restore for TempDir cleanup

		_, err := hasher.ComputeDirHash(bundle)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrFileHashFailed.Error())
	})
}

func TestHasher_ComputeFileHash(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "file")
	writeFile(t, path, "hello world")

	hasher := fs.NewHasher(fs.NewWalker())

	hash1, err := hasher.ComputeFileHash(path)
	require.NoError(t, err)
	assert.NotZero(t, hash1)

	hash2, err := hasher.ComputeFileHash(path)
	require.NoError(t, err)
	assert.Equal(t, hash1, hash2)

	writeFile(t, path, "hello there")
	hash3, err := hasher.ComputeFileHash(path)
	require.NoError(t, err)
	assert.NotEqual(t, hash1, hash3)

	_, err = hasher.ComputeFileHash(filepath.Join(tmpDir, "missing"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFileOpenFailed.Error())
}

func TestHasher_ComputeDirHash(t *testing.T) {
	hasher := fs.NewHasher(fs.NewWalker())

	newBundle := func(files map[string]string) string {
		dir := filepath.Join(t.TempDir(), "Model.xcdatamodeld")
		for name, content := range files {
			writeFile(t, filepath.Join(dir, filepath.FromSlash(name)), content)
		}
		return dir
	}

	base := map[string]string{
		"Model.xcdatamodel/contents":   "v1",
		"Model 2.xcdatamodel/contents": "v2",
	}
	h1, err := hasher.ComputeDirHash(newBundle(base))
	require.NoError(t, err)

	h2, err := hasher.ComputeDirHash(newBundle(base))
	require.NoError(t, err)
	assert.Equal(t, h1, h2, "hash must not depend on the bundle location")

	h3, err := hasher.ComputeDirHash(newBundle(map[string]string{
		"Model.xcdatamodel/contents":   "v1",
		"Model 3.xcdatamodel/contents": "v2",
	}))
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3, "renaming a file changes the hash")

	h4, err := hasher.ComputePathHash(newBundle(base))
	require.NoError(t, err)
	assert.Equal(t, h1, h4)
}

func TestHasher_ComputePathHash_Missing(t *testing.T) {
	hasher := fs.NewHasher(fs.NewWalker())

	_, err := hasher.ComputePathHash(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrPathStatFailed.Error())
}

func TestHasher_ComputeOutputHash(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "out", "Model.mom"), "compiled")

	hasher := fs.NewHasher(fs.NewWalker())

	hash1, err := hasher.ComputeOutputHash(tmpDir, []string{"out"})
	require.NoError(t, err)
	assert.Len(t, hash1, 16)

	writeFile(t, filepath.Join(tmpDir, "out", "Model.mom"), "recompiled")
	hash2, err := hasher.ComputeOutputHash(tmpDir, []string{"out"})
	require.NoError(t, err)
	assert.NotEqual(t, hash1, hash2)

	_, err = hasher.ComputeOutputHash(tmpDir, []string{"missing"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrOutputMissing.Error())
}

func TestCleaner_MakeCleanDir(t *testing.T) {
	tmpDir := t.TempDir()
	dir := filepath.Join(tmpDir, "gen", "Model")
	writeFile(t, filepath.Join(dir, "stale.mom"), "stale")

	cleaner := fs.NewCleaner()
	require.NoError(t, cleaner.MakeCleanDir(dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	fresh := filepath.Join(tmpDir, "fresh", "nested")
	require.NoError(t, cleaner.MakeCleanDir(fresh))
	info, err := os.Stat(fresh)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
