package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"StockAnalysis/internal/model"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		DefaultPeriod  string `yaml:"default_period"`
	} `yaml:"data_source"`
	Output struct {
		ChartDir   string `yaml:"chart_dir"`
		SummaryDir string `yaml:"summary_dir"`
		ChartDPI   int    `yaml:"chart_dpi"`
	} `yaml:"output"`
	Schedule struct {
		WatchCron string `yaml:"watch_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
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
	if v := os.Getenv("YAHOO_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.DataSource.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("DEFAULT_PERIOD"); v != "" {
		cfg.DataSource.DefaultPeriod = v
	}
	if v := os.Getenv("CHART_DIR"); v != "" {
		cfg.Output.ChartDir = v
	}
	if v := os.Getenv("SUMMARY_DIR"); v != "" {
		cfg.Output.SummaryDir = v
	}
	if v := os.Getenv("CHART_DPI"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Output.ChartDPI = n
		}
	}
	if v := os.Getenv("WATCH_CRON"); v != "" {
		cfg.Schedule.WatchCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.DataSource.TimeoutSeconds == 0 {
		cfg.DataSource.TimeoutSeconds = 30
	}
	if cfg.DataSource.DefaultPeriod == "" {
		cfg.DataSource.DefaultPeriod = string(model.DefaultPeriod)
	}
	if cfg.Output.ChartDir == "" {
		cfg.Output.ChartDir = "charts"
	}
	if cfg.Output.SummaryDir == "" {
		cfg.Output.SummaryDir = "output"
	}
	if cfg.Output.ChartDPI == 0 {
		cfg.Output.ChartDPI = 150
	}
	if cfg.Schedule.WatchCron == "" {
		cfg.Schedule.WatchCron = "0 30 16 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/stock_analysis.db"
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if _, err := model.ParsePeriod(c.DataSource.DefaultPeriod); err != nil {
		return fmt.Errorf("data_source.default_period: %w", err)
	}
	if c.DataSource.TimeoutSeconds < 0 {
		return fmt.Errorf("data_source.timeout_seconds must not be negative")
	}
	if c.Output.ChartDPI <= 0 {
		return fmt.Errorf("output.chart_dpi must be positive")
	}
	if c.Output.ChartDir == "" || c.Output.SummaryDir == "" {
		return fmt.Errorf("output.chart_dir and output.summary_dir are required")
	}
	return nil
}

// Timeout returns the HTTP timeout for the data source.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.DataSource.TimeoutSeconds) * time.Second
}
