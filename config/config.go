// File: config.go
// Role: Config struct and its viper-backed Load, grounded on
// junjiewwang-perf-analysis/pkg/config/config.go's
// setDefaults→ReadInConfig→AutomaticEnv→Unmarshal→Validate pipeline.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/methylgraph/dmrcore/core"
)

// Config is the single configuration struct spec.md §6 names.
type Config struct {
	GeneIDBase                core.NodeID    `mapstructure:"gene_id_base"`
	TimepointOffsets          map[string]int `mapstructure:"timepoint_offsets"`
	Timepoints                []string       `mapstructure:"timepoints"`
	RowFilePattern            string         `mapstructure:"row_file_pattern"`
	BicliqueFilePattern       string         `mapstructure:"biclique_file_pattern"`
	MinimizeDominatingSet     bool           `mapstructure:"minimize_dominating_set"`
	TriconnectedEnabled       bool           `mapstructure:"triconnected_enabled"`
	ValidateCoverAgainstGraph bool           `mapstructure:"validate_cover_against_graph"`
}

// Load reads configuration from configPath, falling back to standard
// search locations when configPath is empty, then to defaults when no
// file is found at all.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("dmrcore")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/dmrcore")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Println("config file not found, using defaults")
		} else if os.IsNotExist(err) {
			fmt.Printf("config file %s not found, using defaults\n", configPath)
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadFromReader loads configuration from raw bytes (useful for
// testing, mirroring the teacher's LoadFromReader).
func LoadFromReader(configType string, content []byte) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("gene_id_base", 100000)
	v.SetDefault("row_file_pattern", "rows_%s.jsonl")
	v.SetDefault("biclique_file_pattern", "bicliques_%s.txt")
	v.SetDefault("minimize_dominating_set", true)
	v.SetDefault("triconnected_enabled", true)
	v.SetDefault("validate_cover_against_graph", true)
}

// Validate checks the invariants Load and LoadFromReader both enforce
// before returning a Config to the caller.
func (c *Config) Validate() error {
	if c.GeneIDBase == 0 {
		return fmt.Errorf("gene_id_base must be positive")
	}
	if c.BicliqueFilePattern == "" {
		return fmt.Errorf("biclique_file_pattern is required")
	}
	if c.RowFilePattern == "" {
		return fmt.Errorf("row_file_pattern is required")
	}
	return nil
}

// OffsetFor returns the configured NodeId offset for timepoint, or 0
// if none is configured (the first timepoint conventionally starts at
// offset 0, per spec.md §4.1).
func (c *Config) OffsetFor(timepoint string) int {
	return c.TimepointOffsets[timepoint]
}
