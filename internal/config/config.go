package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		Provider string `yaml:"provider"` // "yahoo" or "piquette"
		BaseURL  string `yaml:"base_url"` // override for the Yahoo chart API
	} `yaml:"data_source"`
	Defaults struct {
		Period   string `yaml:"period"`
		Interval string `yaml:"interval"`
	} `yaml:"defaults"`
	Chart struct {
		Mode        string `yaml:"mode"` // "terminal", "html", or "none"
		OutputDir   string `yaml:"output_dir"`
		OpenBrowser bool   `yaml:"open_browser"`
		Width       int    `yaml:"width"`
		Height      int    `yaml:"height"`
	} `yaml:"chart"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("STOCKPILOT_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("STOCKPILOT_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("STOCKPILOT_PERIOD"); v != "" {
		cfg.Defaults.Period = v
	}
	if v := os.Getenv("STOCKPILOT_INTERVAL"); v != "" {
		cfg.Defaults.Interval = v
	}
	if v := os.Getenv("STOCKPILOT_CHART_MODE"); v != "" {
		cfg.Chart.Mode = v
	}
	if v := os.Getenv("STOCKPILOT_CHART_DIR"); v != "" {
		cfg.Chart.OutputDir = v
	}
	if v := os.Getenv("STOCKPILOT_OPEN_BROWSER"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Chart.OpenBrowser = b
		}
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "yahoo"
	}
	if cfg.Defaults.Period == "" {
		cfg.Defaults.Period = "1mo"
	}
	if cfg.Defaults.Interval == "" {
		cfg.Defaults.Interval = "1d"
	}
	if cfg.Chart.Mode == "" {
		cfg.Chart.Mode = "terminal"
	}
	if cfg.Chart.OutputDir == "" {
		cfg.Chart.OutputDir = "charts"
	}
	if cfg.Chart.Width == 0 {
		cfg.Chart.Width = 80
	}
	if cfg.Chart.Height == 0 {
		cfg.Chart.Height = 15
	}

	return cfg, nil
}

// Validate checks that enumerated fields hold known values.
func (c *Config) Validate() error {
	switch c.DataSource.Provider {
	case "yahoo", "piquette":
	default:
		return fmt.Errorf("data_source.provider must be \"yahoo\" or \"piquette\", got %q", c.DataSource.Provider)
	}
	switch c.Chart.Mode {
	case "terminal", "html", "none":
	default:
		return fmt.Errorf("chart.mode must be \"terminal\", \"html\", or \"none\", got %q", c.Chart.Mode)
	}
	return nil
}
