// Package config loads showdown settings from an HCL file with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/showdown/internal/table"
)

// DefaultFilename is looked up in the working directory when no config file
// is given.
const DefaultFilename = "showdown.hcl"

// Config is the complete showdown configuration.
type Config struct {
	LogLevel string       `hcl:"log_level,optional" env:"SHOWDOWN_LOG_LEVEL"`
	Seed     int64        `hcl:"seed,optional" env:"SHOWDOWN_SEED"` // 0 picks a random seed
	Odds     *OddsConfig  `hcl:"odds,block"`
	Table    *TableConfig `hcl:"table,block"`
}

// OddsConfig tunes the equity calculator.
type OddsConfig struct {
	Iterations int `hcl:"iterations,optional" env:"SHOWDOWN_ITERATIONS"`
	Workers    int `hcl:"workers,optional" env:"SHOWDOWN_WORKERS"` // 0 uses the CPU count
}

// TableConfig sets up dealt hands.
type TableConfig struct {
	Players []string `hcl:"players,optional" env:"SHOWDOWN_PLAYERS" envSeparator:","`
	Hands   int      `hcl:"hands,optional" env:"SHOWDOWN_HANDS"`
	History string   `hcl:"history,optional" env:"SHOWDOWN_HISTORY"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	c := &Config{Odds: &OddsConfig{}, Table: &TableConfig{}}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Odds.Iterations == 0 {
		c.Odds.Iterations = 100000
	}
	if len(c.Table.Players) == 0 {
		c.Table.Players = []string{"alice", "bob", "carol", "dave"}
	}
	if c.Table.Hands == 0 {
		c.Table.Hands = 1
	}
}

// Load reads filename, falling back to defaults when it does not exist, then
// applies SHOWDOWN_* environment overrides.
func Load(filename string) (*Config, error) {
	var config Config

	if _, err := os.Stat(filename); err == nil {
		parser := hclparse.NewParser()
		file, diags := parser.ParseHCLFile(filename)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
		}
		if diags := gohcl.DecodeBody(file.Body, nil, &config); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config: %w", err)
	}

	// Blocks are optional in the file but always present afterwards.
	if config.Odds == nil {
		config.Odds = &OddsConfig{}
	}
	if config.Table == nil {
		config.Table = &TableConfig{}
	}
	if err := env.Parse(&config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

// Validate checks the configuration for values the commands cannot run with.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if c.Odds.Iterations < 0 {
		return fmt.Errorf("odds iterations must be positive, got %d", c.Odds.Iterations)
	}
	if c.Odds.Workers < 0 {
		return fmt.Errorf("odds workers must not be negative, got %d", c.Odds.Workers)
	}
	if n := len(c.Table.Players); n < table.MinPlayers || n > table.MaxPlayers {
		return fmt.Errorf("table needs %d-%d players, got %d", table.MinPlayers, table.MaxPlayers, n)
	}
	if c.Table.Hands < 1 {
		return fmt.Errorf("table hands must be at least 1, got %d", c.Table.Hands)
	}
	return nil
}
