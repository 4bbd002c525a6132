package domain

import "time"

// RuleKey is the content derived fingerprint of an action's identity.
type RuleKey string

// String returns the rule key in hex form.
func (k RuleKey) String() string {
	return string(k)
}

// BuildInfo represents the result of the last successful build of an action.
type BuildInfo struct {
	Target     string    `json:"target,omitzero"`
	RuleKey    RuleKey   `json:"rule_key,omitzero"`
	OutputHash string    `json:"output_hash,omitzero"`
	Artifacts  []string  `json:"artifacts,omitzero"`
	BuildID    string    `json:"build_id,omitzero"`
	Timestamp  time.Time `json:"timestamp,omitzero"`
}
