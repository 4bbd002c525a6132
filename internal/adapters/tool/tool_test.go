package tool_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modelc/internal/adapters/tool"
	"go.trai.ch/modelc/internal/core/domain"
	"go.trai.ch/modelc/internal/core/ports/mocks"
	"go.trai.ch/modelc/internal/rulekey"
	"go.uber.org/mock/gomock"
)

func newResolver(ctrl *gomock.Controller) *mocks.MockPathResolver {
	resolver := mocks.NewMockPathResolver(ctrl)
	resolver.EXPECT().Resolve(gomock.Any()).DoAndReturn(func(rel string) string {
		return filepath.Join("/work", rel)
	}).AnyTimes()
	return resolver
}

func TestVersionedTool(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := newResolver(ctrl)

	tests := []struct {
		name string
		path string
		want []string
	}{
		{name: "absolute", path: "/usr/bin/momc", want: []string{"/usr/bin/momc", "--verbose"}},
		{name: "bare name", path: "momc", want: []string{"momc", "--verbose"}},
		{name: "project relative", path: "tools/momc", want: []string{filepath.Join("/work", "tools", "momc"), "--verbose"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			momc, err := tool.NewVersionedTool("momc", tt.path, "13.0", []string{"--verbose"}, map[string]string{"A": "1"})
			require.NoError(t, err)

			assert.Equal(t, tt.want, momc.CommandPrefix(resolver))
			assert.Equal(t, map[string]string{"A": "1"}, momc.Environment())
		})
	}
}

func TestVersionedTool_IdentityIgnoresPath(t *testing.T) {
	fields := func(path, version string) []rulekey.Field {
		momc, err := tool.NewVersionedTool("momc", path, version, nil, nil)
		require.NoError(t, err)
		r := rulekey.NewRecorder()
		momc.AppendToRuleKey(r)
		return r.Fields()
	}

	assert.Equal(t, fields("/a/momc", "13.0"), fields("/b/momc", "13.0"))
	assert.NotEqual(t, fields("/a/momc", "13.0"), fields("/a/momc", "14.0"))
}

func TestVersionedTool_RequiresVersion(t *testing.T) {
	_, err := tool.NewVersionedTool("momc", "/usr/bin/momc", "", nil, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMissingTool.Error())
}

func TestHashedFileTool(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := newResolver(ctrl)
	hasher := mocks.NewMockFileHasher(ctrl)
	hasher.EXPECT().ComputeFileHash("/usr/bin/momc").Return(uint64(0xabc), nil)

	momc, err := tool.NewHashedFileTool("/usr/bin/momc", nil, map[string]string{"B": "2"}, resolver, hasher)
	require.NoError(t, err)

	assert.Equal(t, []string{"/usr/bin/momc"}, momc.CommandPrefix(resolver))
	assert.Equal(t, map[string]string{"B": "2"}, momc.Environment())

	r := rulekey.NewRecorder()
	momc.AppendToRuleKey(r)
	assert.Equal(t, []rulekey.Field{
		{Key: "hash", Value: "abc"},
		{Key: "args", Value: "[]"},
	}, r.Fields())
}

func TestHashedFileTool_BareNameOnPath(t *testing.T) {
	bin := t.TempDir()
	onPath := filepath.Join(bin, "momc")
	require.NoError(t, os.WriteFile(onPath, []byte("#!/bin/sh\n"), 0o755)) //nolint:gosec // test binary
	t.Setenv("PATH", bin)

	cwd := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cwd, "momc"), []byte("decoy"), 0o755)) //nolint:gosec // test binary
	t.Chdir(cwd)

	ctrl := gomock.NewController(t)
	resolver := newResolver(ctrl)
	hasher := mocks.NewMockFileHasher(ctrl)
	hasher.EXPECT().ComputeFileHash(onPath).Return(uint64(0xdef), nil)

	momc, err := tool.NewHashedFileTool("momc", []string{"--verbose"}, nil, resolver, hasher)
	require.NoError(t, err)

	assert.Equal(t, []string{"momc", "--verbose"}, momc.CommandPrefix(resolver))
}

func TestHashedFileTool_BareNameNotOnPath(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	ctrl := gomock.NewController(t)

	_, err := tool.NewHashedFileTool("momc", nil, nil, newResolver(ctrl), mocks.NewMockFileHasher(ctrl))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMissingTool.Error())
}

func TestHashedFileTool_MissingBinary(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mocks.NewMockFileHasher(ctrl)
	hasher.EXPECT().ComputeFileHash(gomock.Any()).Return(uint64(0), errors.New("no such file"))

	_, err := tool.NewHashedFileTool("/missing/momc", nil, nil, newResolver(ctrl), hasher)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMissingTool.Error())
	assert.ErrorContains(t, err, "no such file")
}
