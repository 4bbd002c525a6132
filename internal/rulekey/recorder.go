package rulekey

import (
	"strings"

	"go.trai.ch/modelc/internal/core/domain"
	"go.trai.ch/modelc/internal/core/ports"
)

var _ ports.RuleKeyBuilder = (*Recorder)(nil)

// Field is one recorded rule key field.
type Field struct {
	Key   string
	Value string
}

// Recorder captures rule key fields as text instead of hashing them.
// It backs the rule key diagnostics of the CLI.
type Recorder struct {
	prefix string
	fields *[]Field
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{fields: new([]Field)}
}

// Describe records every field Compute would hash for b.
func Describe(b ports.Buildable) []Field {
	r := NewRecorder()
	seed(r, b)
	b.AppendToRuleKey(r)
	return r.Fields()
}

// Fields returns the recorded fields in the order they were added.
func (r *Recorder) Fields() []Field {
	return *r.fields
}

// SetString records a single string field.
func (r *Recorder) SetString(key, value string) ports.RuleKeyBuilder {
	r.add(key, value)
	return r
}

// SetStrings records an ordered list of strings.
func (r *Recorder) SetStrings(key string, values []string) ports.RuleKeyBuilder {
	r.add(key, "["+strings.Join(values, ", ")+"]")
	return r
}

// SetSourcePaths records the sorted source paths.
func (r *Recorder) SetSourcePaths(key string, paths []domain.SourcePath) ports.RuleKeyBuilder {
	sorted := domain.SortedSourcePaths(paths)
	names := make([]string, len(sorted))
	for i, p := range sorted {
		names[i] = p.String()
	}
	r.add(key, "["+strings.Join(names, ", ")+"]")
	return r
}

// SetAppendable records the nested fields of value under "key.".
func (r *Recorder) SetAppendable(key string, value ports.RuleKeyAppendable) ports.RuleKeyBuilder {
	if value == nil {
		r.add(key, "null")
		return r
	}
	value.AppendToRuleKey(&Recorder{prefix: r.prefix + key + ".", fields: r.fields})
	return r
}

func (r *Recorder) add(key, value string) {
	*r.fields = append(*r.fields, Field{Key: r.prefix + key, Value: value})
}
