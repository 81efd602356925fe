// Per-family scalar defaults, loaded once per process
package models

// Defaults carries the externally-loaded scalar parameters for every model
// family. Only the per-family request shape lives in code; the values here
// come from configuration.
type Defaults struct {
	ClaudeV3 ClaudeV3Defaults `mapstructure:"claude_v3" json:"claude_v3"`
}

// ClaudeV3Defaults holds the scalar defaults of the Claude 3 messages API.
type ClaudeV3Defaults struct {
	AnthropicVersion   string `mapstructure:"anthropic_version" json:"anthropic_version"`
	MaxTokens          int    `mapstructure:"max_tokens" json:"max_tokens"`
	Role               string `mapstructure:"role" json:"role"`
	DefaultContentType string `mapstructure:"default_content_type" json:"default_content_type"`
}
