// Package config loads the service configuration from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gdpscope/core/internal/chart"
)

const DefaultPath = "gdpscope.yaml"

// Config represents the gdpscope.yaml configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	Data   DataConfig   `yaml:"data"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level,omitempty"`

	MainChart    chart.Options `yaml:"main_chart"`
	TooltipChart chart.Options `yaml:"tooltip_chart"`
}

type ServerConfig struct {
	Addr              string `yaml:"addr"`
	CorsAllowedOrigin string `yaml:"cors_allowed_origin"`
}

type DataConfig struct {
	// Path of the CSV, relative to the working directory
	Path           string `yaml:"path"`
	DefaultCountry string `yaml:"default_country"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:              ":8080",
			CorsAllowedOrigin: "*",
		},
		Data: DataConfig{
			Path:           "GDP_pop.csv",
			DefaultCountry: "Albania",
		},
		MainChart:    chart.MainDefaults(),
		TooltipChart: chart.TooltipDefaults(),
	}
}

// Load reads path. A missing file yields the defaults; keys absent from the
// file keep their default values. CORS_ALLOWED_ORIGIN overrides the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := c.MainChart.Validate(); err != nil {
		return fmt.Errorf("main_chart: %w", err)
	}
	if err := c.TooltipChart.Validate(); err != nil {
		return fmt.Errorf("tooltip_chart: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if origin := os.Getenv("CORS_ALLOWED_ORIGIN"); origin != "" {
		cfg.Server.CorsAllowedOrigin = origin
	}
}

// applyDefaults fills values a config file cleared explicitly
func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = defaults.Server.Addr
	}
	if cfg.Server.CorsAllowedOrigin == "" {
		cfg.Server.CorsAllowedOrigin = defaults.Server.CorsAllowedOrigin
	}
	if cfg.Data.Path == "" {
		cfg.Data.Path = defaults.Data.Path
	}
	if cfg.MainChart.Name == "" {
		cfg.MainChart.Name = defaults.MainChart.Name
	}
	if cfg.TooltipChart.Name == "" {
		cfg.TooltipChart.Name = defaults.TooltipChart.Name
	}
}
