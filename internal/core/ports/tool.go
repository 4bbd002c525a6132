package ports

// RuleKeyAppendable is implemented by values that contribute fields to a rule key.
type RuleKeyAppendable interface {
	// AppendToRuleKey adds the value's identity relevant fields to b.
	AppendToRuleKey(b RuleKeyBuilder)
}

// Tool resolves how an external compiler is invoked.
//
//go:generate mockgen -source=tool.go -destination=mocks/mock_tool.go -package=mocks
type Tool interface {
	RuleKeyAppendable

	// CommandPrefix returns the argv prefix invoking the tool.
	CommandPrefix(resolver PathResolver) []string

	// Environment returns the environment variables the tool requires.
	Environment() map[string]string
}
