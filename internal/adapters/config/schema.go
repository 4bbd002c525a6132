package config

// Modelfile represents the structure of the modelc.yaml or modelc.toml configuration file.
type Modelfile struct {
	Version   string                 `yaml:"version" toml:"version"`
	Platforms map[string]PlatformDTO `yaml:"platforms" toml:"platforms"`
	Rules     map[string]RuleDTO     `yaml:"rules" toml:"rules"`
}

// PlatformDTO represents a platform definition in the configuration.
// The map key is the platform flavor.
type PlatformDTO struct {
	SDK        string  `yaml:"sdk" toml:"sdk"`
	SDKRoot    string  `yaml:"sdkRoot" toml:"sdkRoot"`
	MinVersion string  `yaml:"minVersion" toml:"minVersion"`
	Momc       ToolDTO `yaml:"momc" toml:"momc"`
}

// ToolDTO represents a compiler reference.
// Without a version the tool is identified by the hash of its binary.
type ToolDTO struct {
	Path    string            `yaml:"path" toml:"path"`
	Version string            `yaml:"version" toml:"version"`
	Args    []string          `yaml:"args" toml:"args"`
	Env     map[string]string `yaml:"env" toml:"env"`
}

// RuleDTO represents a core_data_model rule. The map key is its build target.
type RuleDTO struct {
	Module    string   `yaml:"module" toml:"module"`
	Sources   []string `yaml:"sources" toml:"sources"`
	Platforms []string `yaml:"platforms" toml:"platforms"`
	Deps      []string `yaml:"deps" toml:"deps"`
}
