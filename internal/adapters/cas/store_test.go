package cas_test

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modelc/internal/adapters/cas"
	"go.trai.ch/modelc/internal/core/domain"
)

const target = "//App:Model#core-data-model,iphoneos"

func TestStore_PutAndGet(t *testing.T) {
	root := t.TempDir()
	store := cas.NewStore()

	info := domain.BuildInfo{
		Target:     target,
		RuleKey:    "0123456789abcdef",
		OutputHash: "fedcba9876543210",
		Artifacts:  []string{filepath.Join(".modelc", "gen", "App", "Model-core-data-model,iphoneos")},
		BuildID:    "build-1",
		Timestamp:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, store.Put(root, info))

	got, err := store.Get(root, target)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, info, *got)
}

func TestStore_GetMissing(t *testing.T) {
	got, err := cas.NewStore().Get(t.TempDir(), target)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Persistence(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, cas.NewStore().Put(root, domain.BuildInfo{Target: target, RuleKey: "k1"}))
	require.NoError(t, cas.NewStore().Put(root, domain.BuildInfo{Target: target, RuleKey: "k2"}))

	got, err := cas.NewStore().Get(root, target)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.RuleKey("k2"), got.RuleKey)
}

func TestStore_CorruptRecord(t *testing.T) {
	root := t.TempDir()
	store := cas.NewStore()
	require.NoError(t, store.Put(root, domain.BuildInfo{Target: target}))

	hash := sha256.Sum256([]byte(target))
	file := filepath.Join(root, domain.DefaultStorePath(), hex.EncodeToString(hash[:])+".json")
	require.NoError(t, os.WriteFile(file, []byte("{not json"), 0o600))

	_, err := store.Get(root, target)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreReadFailed.Error())
}

func TestStore_OmitZero(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, cas.NewStore().Put(root, domain.BuildInfo{Target: "//App:Zero"}))

	hash := sha256.Sum256([]byte("//App:Zero"))
	//nolint:gosec // Test file with controlled path
	content, err := os.ReadFile(filepath.Join(root, domain.DefaultStorePath(), hex.EncodeToString(hash[:])+".json"))
	require.NoError(t, err)

	jsonStr := string(content)
	for _, field := range []string{"rule_key", "output_hash", "artifacts", "build_id", "timestamp"} {
		assert.False(t, strings.Contains(jsonStr, field), "JSON should not contain %q for zero value", field)
	}
	assert.Contains(t, jsonStr, `"target"`)
}
