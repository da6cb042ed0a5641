// Package config loads the optional blackjack.hcl configuration file.
// A missing file yields the full default configuration.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete application configuration
type Config struct {
	Rules    *RulesConfig `hcl:"rules,block"`
	UI       *UIConfig    `hcl:"ui,block"`
	SaveFile string       `hcl:"save_file,optional"`
}

// RulesConfig contains table rule settings
type RulesConfig struct {
	StartingStake int   `hcl:"starting_stake,optional"`
	ChipDenoms    []int `hcl:"chip_denominations,optional"`
	TopUpDenoms   []int `hcl:"topup_denominations,optional"`
}

// UIConfig contains user interface settings
type UIConfig struct {
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Rules: &RulesConfig{
			StartingStake: 1000,
			ChipDenoms:    []int{50, 100, 200, 500},
			TopUpDenoms:   []int{500, 1000, 2000},
		},
		UI: &UIConfig{
			LogLevel: "info",
			LogFile:  "blackjack.log",
		},
		SaveFile: "game_state.json",
	}
}

// Load reads configuration from an HCL file, returning defaults when
// the file does not exist
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Rules == nil {
		cfg.Rules = defaults.Rules
	}
	if cfg.Rules.StartingStake == 0 {
		cfg.Rules.StartingStake = defaults.Rules.StartingStake
	}
	if len(cfg.Rules.ChipDenoms) == 0 {
		cfg.Rules.ChipDenoms = defaults.Rules.ChipDenoms
	}
	if len(cfg.Rules.TopUpDenoms) == 0 {
		cfg.Rules.TopUpDenoms = defaults.Rules.TopUpDenoms
	}

	if cfg.UI == nil {
		cfg.UI = defaults.UI
	}
	if cfg.UI.LogLevel == "" {
		cfg.UI.LogLevel = defaults.UI.LogLevel
	}
	if cfg.UI.LogFile == "" {
		cfg.UI.LogFile = defaults.UI.LogFile
	}

	if cfg.SaveFile == "" {
		cfg.SaveFile = defaults.SaveFile
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Rules.StartingStake <= 0 {
		return fmt.Errorf("starting stake must be positive")
	}
	for _, chip := range c.Rules.ChipDenoms {
		if chip <= 0 {
			return fmt.Errorf("chip denominations must be positive")
		}
	}
	for _, amount := range c.Rules.TopUpDenoms {
		if amount <= 0 {
			return fmt.Errorf("topup denominations must be positive")
		}
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}
	return nil
}
