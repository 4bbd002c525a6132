package ports

import "go.trai.ch/modelc/internal/core/domain"

// RuleKeyBuilder accumulates the identity relevant fields of an action.
//
//go:generate mockgen -source=rule_key.go -destination=mocks/mock_rule_key.go -package=mocks
type RuleKeyBuilder interface {
	// SetString adds a single string field.
	SetString(key, value string) RuleKeyBuilder
	// SetStrings adds an ordered list of strings.
	SetStrings(key string, values []string) RuleKeyBuilder
	// SetSourcePaths adds a set of source paths; order does not matter and
	// both the paths and the file contents are part of the key.
	SetSourcePaths(key string, paths []domain.SourcePath) RuleKeyBuilder
	// SetAppendable adds a nested value under key.
	SetAppendable(key string, value RuleKeyAppendable) RuleKeyBuilder
}
