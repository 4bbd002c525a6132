package cas_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modelc/internal/adapters/cas"
	"go.trai.ch/modelc/internal/core/domain"
)

const key = domain.RuleKey("00112233aabbccdd")

func writeArtifact(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestArtifactCache_StoreAndFetch(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(".modelc", "gen", "App", "Model-core-data-model,iphoneos")
	writeArtifact(t, root, filepath.Join(out, "Model.momd", "Model.mom"), "compiled")
	writeArtifact(t, root, filepath.Join(out, "Model.momd", "VersionInfo.plist"), "plist")

	c := cas.NewArtifactCache()
	assert.False(t, c.Contains(root, key))

	require.NoError(t, c.Store(root, key, []string{out}))
	assert.True(t, c.Contains(root, key))

	// Replace the output with stale content, then restore it.
	require.NoError(t, os.RemoveAll(filepath.Join(root, out)))
	writeArtifact(t, root, filepath.Join(out, "stale.mom"), "stale")

	require.NoError(t, c.Fetch(root, key, []string{out}))

	//nolint:gosec // Test file with controlled path
	got, err := os.ReadFile(filepath.Join(root, out, "Model.momd", "Model.mom"))
	require.NoError(t, err)
	assert.Equal(t, "compiled", string(got))
	assert.NoFileExists(t, filepath.Join(root, out, "stale.mom"))
	assert.FileExists(t, filepath.Join(root, out, "Model.momd", "VersionInfo.plist"))
}

func TestArtifactCache_EmptyDirectory(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(".modelc", "gen", "Empty-core-data-model")
	require.NoError(t, os.MkdirAll(filepath.Join(root, out), 0o750))

	c := cas.NewArtifactCache()
	require.NoError(t, c.Store(root, key, []string{out}))
	require.NoError(t, os.RemoveAll(filepath.Join(root, out)))

	require.NoError(t, c.Fetch(root, key, []string{out}))
	assert.DirExists(t, filepath.Join(root, out))
}

func TestArtifactCache_StoreReplacesEntry(t *testing.T) {
	root := t.TempDir()
	writeArtifact(t, root, filepath.Join("out", "a"), "first")

	c := cas.NewArtifactCache()
	require.NoError(t, c.Store(root, key, []string{"out"}))

	require.NoError(t, os.RemoveAll(filepath.Join(root, "out")))
	writeArtifact(t, root, filepath.Join("out", "b"), "second")
	require.NoError(t, c.Store(root, key, []string{"out"}))

	require.NoError(t, os.RemoveAll(filepath.Join(root, "out")))
	require.NoError(t, c.Fetch(root, key, []string{"out"}))

	assert.NoFileExists(t, filepath.Join(root, "out", "a"))
	assert.FileExists(t, filepath.Join(root, "out", "b"))
}

func TestArtifactCache_Miss(t *testing.T) {
	root := t.TempDir()
	c := cas.NewArtifactCache()

	err := c.Fetch(root, key, []string{"out"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	writeArtifact(t, root, filepath.Join("out", "a"), "content")
	require.NoError(t, c.Store(root, key, []string{"out"}))

	err = c.Fetch(root, key, []string{"other"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestArtifactCache_StoreMissingArtifact(t *testing.T) {
	root := t.TempDir()
	c := cas.NewArtifactCache()

	err := c.Store(root, key, []string{"missing"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrArtifactStoreFailed.Error())
	assert.False(t, c.Contains(root, key))
}
