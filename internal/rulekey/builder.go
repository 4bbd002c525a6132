// Package rulekey computes rule keys, the content derived fingerprints that
// decide whether a cached action result can be reused.
package rulekey

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/modelc/internal/core/domain"
	"go.trai.ch/modelc/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RuleKeyBuilder = (*Builder)(nil)

// Field type tags written in front of every value.
const (
	tagString     = 's'
	tagStrings    = 'l'
	tagPaths      = 'p'
	tagAppendable = 'a'
	tagNull       = 'n'
	tagEnd        = 'e'
)

// Builder computes a rule key with xxhash.
// Every field is framed with its key and a type tag, and every string is
// length prefixed, so distinct field sets never produce the same stream.
type Builder struct {
	resolver ports.PathResolver
	hasher   ports.FileHasher
	digest   *xxhash.Digest
	err      error
}

// NewBuilder creates a Builder hashing source path contents with hasher.
func NewBuilder(resolver ports.PathResolver, hasher ports.FileHasher) *Builder {
	return &Builder{
		resolver: resolver,
		hasher:   hasher,
		digest:   xxhash.New(),
	}
}

// ForAction returns a builder seeded with the rule type and target of b.
func ForAction(resolver ports.PathResolver, hasher ports.FileHasher, b ports.Buildable) *Builder {
	builder := NewBuilder(resolver, hasher)
	seed(builder, b)
	return builder
}

func seed(builder ports.RuleKeyBuilder, b ports.Buildable) {
	builder.SetString("rule.type", string(b.Type()))
	builder.SetString("name", b.Target().FullyQualifiedName())
}

// Compute returns the rule key of an action.
func Compute(resolver ports.PathResolver, hasher ports.FileHasher, b ports.Buildable) (domain.RuleKey, error) {
	builder := ForAction(resolver, hasher, b)
	b.AppendToRuleKey(builder)
	key, err := builder.Build()
	if err != nil {
		return "", zerr.With(err, "target", b.Target().FullyQualifiedName())
	}
	return key, nil
}

// SetString adds a single string field.
func (b *Builder) SetString(key, value string) ports.RuleKeyBuilder {
	b.field(key, tagString)
	b.writeString(value)
	return b
}

// SetStrings adds an ordered list of strings.
func (b *Builder) SetStrings(key string, values []string) ports.RuleKeyBuilder {
	b.field(key, tagStrings)
	b.writeUint(uint64(len(values)))
	for _, v := range values {
		b.writeString(v)
	}
	return b
}

// SetSourcePaths adds a set of source paths and the hash of their contents.
// The paths are sorted first, so insertion order never changes the key.
func (b *Builder) SetSourcePaths(key string, paths []domain.SourcePath) ports.RuleKeyBuilder {
	sorted := domain.SortedSourcePaths(paths)
	b.field(key, tagPaths)
	b.writeUint(uint64(len(sorted)))
	for _, p := range sorted {
		b.writeString(p.String())

		sum, err := b.hasher.ComputePathHash(b.resolver.AbsolutePath(p))
		if err != nil {
			if b.err == nil {
				b.err = zerr.With(zerr.Wrap(err, domain.ErrRuleKeyFailed.Error()), "path", p.String())
			}
			continue
		}
		b.writeUint(sum)
	}
	return b
}

// SetAppendable adds a nested value under key.
func (b *Builder) SetAppendable(key string, value ports.RuleKeyAppendable) ports.RuleKeyBuilder {
	if value == nil {
		b.field(key, tagNull)
		return b
	}
	b.field(key, tagAppendable)
	value.AppendToRuleKey(b)
	_, _ = b.digest.Write([]byte{tagEnd})
	return b
}

// Build returns the rule key, or the first error seen while hashing.
func (b *Builder) Build() (domain.RuleKey, error) {
	if b.err != nil {
		return "", b.err
	}
	return domain.RuleKey(fmt.Sprintf("%016x", b.digest.Sum64())), nil
}

func (b *Builder) field(key string, tag byte) {
	b.writeString(key)
	_, _ = b.digest.Write([]byte{tag})
}

func (b *Builder) writeString(s string) {
	b.writeUint(uint64(len(s)))
	_, _ = b.digest.WriteString(s)
}

func (b *Builder) writeUint(v uint64) {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], v)
	_, _ = b.digest.Write(buf[:n])
}
