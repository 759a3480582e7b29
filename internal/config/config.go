package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

type OutputConfig struct {
	Format string `toml:"format" env:"FORMAT"`
	Header bool   `toml:"header" env:"HEADER"`
	Sort   bool   `toml:"sort" env:"SORT"`
}

type LogConfig struct {
	Mode  string `toml:"mode" env:"MODE"`
	Level string `toml:"level" env:"LEVEL"`
}

type Config struct {
	Separator string       `toml:"separator" env:"SEPARATOR"`
	Encoding  string       `toml:"encoding" env:"ENCODING"`
	Workers   int          `toml:"workers" env:"WORKERS"`
	Output    OutputConfig `toml:"output" envPrefix:"OUTPUT_"`
	Log       LogConfig    `toml:"log" envPrefix:"LOG_"`
}

// EnvPrefix namespaces every environment override (CELLSIGN_WORKERS, ...).
const EnvPrefix = "CELLSIGN_"

func Default() Config {
	return Config{
		Separator: "|",
		Encoding:  "auto",
		Workers:   1,
		Output:    OutputConfig{Format: "text", Header: true},
		Log:       LogConfig{Mode: "development", Level: "info"},
	}
}

// Load layers defaults, the TOML file at path (skipped when path is ""),
// and CELLSIGN_* environment variables, in that order.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that no later layer can repair.
func (c *Config) Validate() error {
	if c.Separator == "" {
		return fmt.Errorf("separator must not be empty")
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be ≥ 0")
	}
	return nil
}
