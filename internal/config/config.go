// Package config loads the generator's configuration from yaml or json with
// optional environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the full CLI configuration.
type Config struct {
	Data    DataConfig    `json:"data"`
	Output  OutputConfig  `json:"output"`
	Engine  EngineConfig  `json:"engine"`
	Metrics MetricsConfig `json:"metrics"`
	Logging LoggingConfig `json:"logging"`
}

// DataConfig names the input files. Only the course catalog is mandatory.
type DataConfig struct {
	Courses  string `json:"courses"`
	Rooms    string `json:"rooms"`
	Batches  string `json:"batches"`
	Reserved string `json:"reserved"`
}

// OutputConfig names the export files.
type OutputConfig struct {
	Schedule    string `json:"schedule"`
	Unscheduled string `json:"unscheduled"`
	SelfStudy   string `json:"self_study"`
}

// EngineConfig holds the allocation knobs.
type EngineConfig struct {
	MaxAttempts int    `json:"max_attempts"`
	Seed        int64  `json:"seed"`
	Delimiter   string `json:"delimiter"`
}

// MetricsConfig controls the optional prometheus listener.
type MetricsConfig struct {
	Enabled bool   `json:"enabled"`
	Address string `json:"address"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `json:"level"`
}

// Default returns the stock configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills in unset fields.
func (c *Config) SetDefaults() {
	if c.Data.Courses == "" {
		c.Data.Courses = "data/combined.csv"
	}
	if c.Data.Rooms == "" {
		c.Data.Rooms = "data/rooms.csv"
	}
	if c.Data.Batches == "" {
		c.Data.Batches = "data/updated_batches.csv"
	}
	if c.Data.Reserved == "" {
		c.Data.Reserved = "data/reserved_slots.csv"
	}
	if c.Output.Schedule == "" {
		c.Output.Schedule = "schedule.csv"
	}
	if c.Output.Unscheduled == "" {
		c.Output.Unscheduled = "unscheduled.csv"
	}
	if c.Output.SelfStudy == "" {
		c.Output.SelfStudy = "self_study.csv"
	}
	if c.Engine.MaxAttempts == 0 {
		c.Engine.MaxAttempts = 1000
	}
	if c.Engine.Delimiter == "" {
		c.Engine.Delimiter = ","
	}
	if c.Metrics.Address == "" {
		c.Metrics.Address = ":9090"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.Engine.MaxAttempts < 0 {
		return fmt.Errorf("engine.max_attempts must not be negative")
	}
	if len([]rune(c.Engine.Delimiter)) != 1 {
		return fmt.Errorf("engine.delimiter must be a single character")
	}
	return nil
}

// DelimiterRune returns the configured CSV delimiter.
func (c *Config) DelimiterRune() rune {
	return []rune(c.Engine.Delimiter)[0]
}

// Load reads a yaml or json configuration file, applies TTG_ environment
// overrides, then defaults and validation.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", path)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := k.Load(env.Provider("TTG_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "ttg_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("load env overrides: %w", err)
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
