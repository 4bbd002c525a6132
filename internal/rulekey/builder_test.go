package rulekey_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modelc/internal/core/domain"
	"go.trai.ch/modelc/internal/core/ports"
	"go.trai.ch/modelc/internal/core/ports/mocks"
	"go.trai.ch/modelc/internal/rulekey"
	"go.uber.org/mock/gomock"
)

type appendableFunc func(b ports.RuleKeyBuilder)

func (f appendableFunc) AppendToRuleKey(b ports.RuleKeyBuilder) { f(b) }

func newBuilder(t *testing.T, hashes map[string]uint64) *rulekey.Builder {
	t.Helper()
	ctrl := gomock.NewController(t)

	resolver := mocks.NewMockPathResolver(ctrl)
	resolver.EXPECT().AbsolutePath(gomock.Any()).DoAndReturn(func(p domain.SourcePath) string {
		return "/root/" + p.String()
	}).AnyTimes()

	hasher := mocks.NewMockFileHasher(ctrl)
	hasher.EXPECT().ComputePathHash(gomock.Any()).DoAndReturn(func(path string) (uint64, error) {
		h, ok := hashes[path]
		if !ok {
			return 0, errors.New("no such file")
		}
		return h, nil
	}).AnyTimes()

	return rulekey.NewBuilder(resolver, hasher)
}

func TestBuilder_Deterministic(t *testing.T) {
	hashes := map[string]uint64{"/root/a.xcdatamodel": 1, "/root/b.xcdatamodel": 2}

	build := func() domain.RuleKey {
		b := newBuilder(t, hashes)
		b.SetString("moduleName", "Model").
			SetStrings("args", []string{"-x", "-y"}).
			SetSourcePaths("dataModelPaths", []domain.SourcePath{"a.xcdatamodel", "b.xcdatamodel"})
		key, err := b.Build()
		require.NoError(t, err)
		return key
	}

	first := build()
	assert.Len(t, first.String(), 16)
	assert.Equal(t, first, build())
}

func TestBuilder_SourcePathOrderIndependent(t *testing.T) {
	hashes := map[string]uint64{"/root/a.xcdatamodel": 1, "/root/b.xcdatamodel": 2}

	b1 := newBuilder(t, hashes)
	b1.SetSourcePaths("srcs", []domain.SourcePath{"a.xcdatamodel", "b.xcdatamodel"})
	k1, err := b1.Build()
	require.NoError(t, err)

	b2 := newBuilder(t, hashes)
	b2.SetSourcePaths("srcs", []domain.SourcePath{"b.xcdatamodel", "a.xcdatamodel", "a.xcdatamodel"})
	k2, err := b2.Build()
	require.NoError(t, err)

	assert.Equal(t, k1, k2)
}

func TestBuilder_ContentChangesKey(t *testing.T) {
	b1 := newBuilder(t, map[string]uint64{"/root/a.xcdatamodel": 1})
	b1.SetSourcePaths("srcs", []domain.SourcePath{"a.xcdatamodel"})
	k1, err := b1.Build()
	require.NoError(t, err)

	b2 := newBuilder(t, map[string]uint64{"/root/a.xcdatamodel": 7})
	b2.SetSourcePaths("srcs", []domain.SourcePath{"a.xcdatamodel"})
	k2, err := b2.Build()
	require.NoError(t, err)

	assert.NotEqual(t, k1, k2)
}

func TestBuilder_FieldFraming(t *testing.T) {
	tests := []struct {
		name string
		a, b func(ports.RuleKeyBuilder)
	}{
		{
			name: "value boundary",
			a:    func(b ports.RuleKeyBuilder) { b.SetString("k", "ab").SetString("c", "") },
			b:    func(b ports.RuleKeyBuilder) { b.SetString("k", "a").SetString("bc", "") },
		},
		{
			name: "string versus list",
			a:    func(b ports.RuleKeyBuilder) { b.SetString("k", "a") },
			b:    func(b ports.RuleKeyBuilder) { b.SetStrings("k", []string{"a"}) },
		},
		{
			name: "field key",
			a:    func(b ports.RuleKeyBuilder) { b.SetString("sdkName", "iphoneos") },
			b:    func(b ports.RuleKeyBuilder) { b.SetString("minOSVersion", "iphoneos") },
		},
		{
			name: "nested versus flat",
			a: func(b ports.RuleKeyBuilder) {
				b.SetAppendable("momc", appendableFunc(func(n ports.RuleKeyBuilder) { n.SetString("v", "1") }))
			},
			b: func(b ports.RuleKeyBuilder) { b.SetString("v", "1") },
		},
		{
			name: "null appendable",
			a:    func(b ports.RuleKeyBuilder) { b.SetAppendable("momc", nil) },
			b:    func(b ports.RuleKeyBuilder) { b.SetAppendable("momc", appendableFunc(func(ports.RuleKeyBuilder) {})) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b1 := newBuilder(t, nil)
			tt.a(b1)
			k1, err := b1.Build()
			require.NoError(t, err)

			b2 := newBuilder(t, nil)
			tt.b(b2)
			k2, err := b2.Build()
			require.NoError(t, err)

			assert.NotEqual(t, k1, k2)
		})
	}
}

func TestBuilder_MissingSource(t *testing.T) {
	b := newBuilder(t, map[string]uint64{"/root/a.xcdatamodel": 1})
	b.SetSourcePaths("srcs", []domain.SourcePath{"a.xcdatamodel", "missing.xcdatamodel"})

	_, err := b.Build()
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrRuleKeyFailed.Error())
	assert.ErrorContains(t, err, "no such file")
}

func TestCompute_SeedsTypeAndTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockPathResolver(ctrl)
	hasher := mocks.NewMockFileHasher(ctrl)

	newAction := func(short string) *mocks.MockBuildable {
		target, err := domain.NewBuildTarget("//App", short)
		require.NoError(t, err)
		action := mocks.NewMockBuildable(ctrl)
		action.EXPECT().Type().Return(domain.RuleTypeCoreDataModel).AnyTimes()
		action.EXPECT().Target().Return(target).AnyTimes()
		action.EXPECT().AppendToRuleKey(gomock.Any()).Do(func(b ports.RuleKeyBuilder) {
			b.SetString("moduleName", "Model")
		}).AnyTimes()
		return action
	}

	k1, err := rulekey.Compute(resolver, hasher, newAction("One"))
	require.NoError(t, err)
	k2, err := rulekey.Compute(resolver, hasher, newAction("Two"))
	require.NoError(t, err)

	assert.NotEqual(t, k1, k2)
}

func TestRecorder_Fields(t *testing.T) {
	r := rulekey.NewRecorder()
	r.SetString("moduleName", "Model").
		SetSourcePaths("dataModelPaths", []domain.SourcePath{"b", "a"}).
		SetAppendable("momc", appendableFunc(func(b ports.RuleKeyBuilder) {
			b.SetString("name", "momc").SetStrings("args", []string{"-x"})
		})).
		SetAppendable("none", nil)

	assert.Equal(t, []rulekey.Field{
		{Key: "moduleName", Value: "Model"},
		{Key: "dataModelPaths", Value: "[a, b]"},
		{Key: "momc.name", Value: "momc"},
		{Key: "momc.args", Value: "[-x]"},
		{Key: "none", Value: "null"},
	}, r.Fields())
}

func TestDescribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	target, err := domain.NewBuildTarget("//App", "Model", "core-data-model", "iphoneos")
	require.NoError(t, err)

	action := mocks.NewMockBuildable(ctrl)
	action.EXPECT().Type().Return(domain.RuleTypeCoreDataModel)
	action.EXPECT().Target().Return(target)
	action.EXPECT().AppendToRuleKey(gomock.Any()).Do(func(b ports.RuleKeyBuilder) {
		b.SetString("moduleName", "Model")
	})

	assert.Equal(t, []rulekey.Field{
		{Key: "rule.type", Value: "core_data_model"},
		{Key: "name", Value: "//App:Model#core-data-model,iphoneos"},
		{Key: "moduleName", Value: "Model"},
	}, rulekey.Describe(action))
}
