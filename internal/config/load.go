package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// LoadFile reads and parses the configuration from a YAML file.
//
// Numeric fields accept string-typed YAML scalars (a quoted "4" decodes
// into num_nodes just like a bare 4), matching what operators paste in
// from provider consoles. Credentials missing from the file are filled
// from the environment before validation.
func LoadFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var rawConfig map[string]interface{}
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build config decoder: %w", err)
	}
	if err := decoder.Decode(rawConfig); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	applyEnvCredentials(&cfg)

	// Set defaults
	if cfg.AWS.Region == "" {
		cfg.AWS.Region = DefaultRegion
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// applyEnvCredentials fills empty credential fields from the standard AWS
// environment variables. Values in the file win over the environment.
func applyEnvCredentials(cfg *Config) {
	if cfg.AWS.Key == "" {
		cfg.AWS.Key = os.Getenv("AWS_ACCESS_KEY_ID")
	}
	if cfg.AWS.Secret == "" {
		cfg.AWS.Secret = os.Getenv("AWS_SECRET_ACCESS_KEY")
	}
	if cfg.AWS.Region == "" {
		cfg.AWS.Region = os.Getenv("AWS_REGION")
	}
}

// Save writes the configuration to a YAML file with owner-only permissions,
// since the file may carry credentials and the master password.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
