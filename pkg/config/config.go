// Package config loads the per-family model defaults from a YAML file.
//
// The file is read once per process and the result injected into the
// Dispatcher; the core never re-reads storage per call.
package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/inercia/go-bedrock/pkg/models"
)

// Fallbacks for keys the file does not set.
const (
	defaultAnthropicVersion = "bedrock-2023-05-31"
	defaultMaxTokens        = 1024
	defaultRole             = "user"
	defaultContentType      = "text"
)

// Load reads the model defaults from the YAML file at path.
func Load(path string) (models.Defaults, error) {
	if path == "" {
		return models.Defaults{}, fmt.Errorf("model defaults path cannot be empty")
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	applyFallbacks(v)

	if err := v.ReadInConfig(); err != nil {
		return models.Defaults{}, fmt.Errorf("reading model defaults (%s): %w", path, err)
	}

	var d models.Defaults
	if err := v.Unmarshal(&d, func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = true
	}); err != nil {
		return models.Defaults{}, fmt.Errorf("parsing model defaults (%s): %w", path, err)
	}

	if err := validate(d); err != nil {
		return models.Defaults{}, fmt.Errorf("invalid model defaults (%s): %w", path, err)
	}
	return d, nil
}

func applyFallbacks(v *viper.Viper) {
	v.SetDefault("claude_v3.anthropic_version", defaultAnthropicVersion)
	v.SetDefault("claude_v3.max_tokens", defaultMaxTokens)
	v.SetDefault("claude_v3.role", defaultRole)
	v.SetDefault("claude_v3.default_content_type", defaultContentType)
}

func validate(d models.Defaults) error {
	c := d.ClaudeV3
	if c.AnthropicVersion == "" {
		return fmt.Errorf("claude_v3.anthropic_version cannot be empty")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("claude_v3.max_tokens must be positive, got %d", c.MaxTokens)
	}
	if c.Role == "" {
		return fmt.Errorf("claude_v3.role cannot be empty")
	}
	if c.DefaultContentType == "" {
		return fmt.Errorf("claude_v3.default_content_type cannot be empty")
	}
	return nil
}
