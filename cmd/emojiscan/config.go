package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/emodetect"
	"github.com/npillmayer/emodetect/emojidata"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of emojiscan.
type Config struct {
	Format   string `yaml:"format"`   // json or yaml
	Aliases  bool   `yaml:"aliases"`  // use alias names instead of the default table
	Prefix   string `yaml:"prefix"`   // placeholder prefix for replace
	Suffix   string `yaml:"suffix"`   // placeholder suffix for replace
	Trace    string `yaml:"trace"`    // trace level: D, I or E
	Names    string `yaml:"names"`    // optional name table file (JSON)
	Patterns string `yaml:"patterns"` // optional pattern source file (JSON), requires Names
}

// DefaultConfig returns the settings used without a configuration file.
func DefaultConfig() *Config {
	return &Config{
		Format: "json",
		Prefix: ":",
		Suffix: ":",
		Trace:  "E",
	}
}

// LoadConfig reads settings from a YAML file. An empty path results in
// the default configuration.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings for consistency.
func (cfg *Config) Validate() error {
	switch cfg.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q", cfg.Format)
	}
	switch cfg.Trace {
	case "D", "I", "E":
	default:
		return fmt.Errorf("unknown trace level %q", cfg.Trace)
	}
	if cfg.Patterns != "" && cfg.Names == "" {
		return fmt.Errorf("pattern source %s given without name table", cfg.Patterns)
	}
	if cfg.Names != "" && cfg.Aliases {
		return fmt.Errorf("name table %s conflicts with alias names", cfg.Names)
	}
	return nil
}

// TraceLevel maps the configured trace level to a schuko level.
func (cfg *Config) TraceLevel() tracing.TraceLevel {
	switch cfg.Trace {
	case "D":
		return tracing.LevelDebug
	case "I":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}

// Detector creates an emoji detector for the configured assets.
func (cfg *Config) Detector() (*emodetect.Detector, error) {
	var assets *emojidata.Assets
	var err error
	switch {
	case cfg.Names != "":
		assets, err = cfg.loadAssets()
	case cfg.Aliases:
		assets, err = emojidata.AliasAssets()
	default:
		assets, err = emojidata.Default()
	}
	if err != nil {
		return nil, err
	}
	return emodetect.NewFromAssets(assets)
}

func (cfg *Config) loadAssets() (*emojidata.Assets, error) {
	nf, err := os.Open(cfg.Names)
	if err != nil {
		return nil, err
	}
	defer nf.Close()
	if cfg.Patterns == "" {
		names, err := emojidata.LoadNames(nf)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.Names, err)
		}
		return emojidata.FromNames(names)
	}
	pf, err := os.Open(cfg.Patterns)
	if err != nil {
		return nil, err
	}
	defer pf.Close()
	return emojidata.Load(nf, pf)
}
