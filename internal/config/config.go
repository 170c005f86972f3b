package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/prateekn/ecosim/internal/eco"
)

// Chatbot call defaults.
const (
	DefaultChatMaxLength  = 100
	DefaultChatCandidates = 1
	DefaultChatTimeoutSec = 30
)

// Config is the yaml file layout: the simulation parameter set plus the
// settings of the external text-generation endpoint.
type Config struct {
	Params eco.Parameters `yaml:"params"`
	Chat   ChatConfig     `yaml:"chat"`
}

// ChatConfig points at the hosted generation model. Token may be empty
// for endpoints that do not require one.
type ChatConfig struct {
	Endpoint   string `yaml:"endpoint"`
	Model      string `yaml:"model"`
	Token      string `yaml:"token"`
	MaxLength  int    `yaml:"max_length"`
	Candidates int    `yaml:"candidates"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// DefaultConfig returns the baseline configuration.
func DefaultConfig() *Config {
	return &Config{
		Params: eco.Defaults(),
		Chat: ChatConfig{
			Endpoint:   "https://api-inference.huggingface.co/models",
			Model:      "microsoft/DialoGPT-medium",
			MaxLength:  DefaultChatMaxLength,
			Candidates: DefaultChatCandidates,
			TimeoutSec: DefaultChatTimeoutSec,
		},
	}
}

// Load reads a yaml config file over the defaults and validates the
// resulting parameter set.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Params.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as yaml.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
