package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Cache struct {
		Dir string `yaml:"dir"`
	} `yaml:"cache"`
	Provider struct {
		Source string `yaml:"source"` // "yahoo" or "mock"
		Proxy  string `yaml:"proxy"`
	} `yaml:"provider"`
	Analysis struct {
		DefaultPeriod string `yaml:"default_period"`
		SRWindow      int    `yaml:"sr_window"` // trailing bars scanned for support/resistance
		SRLevels      int    `yaml:"sr_levels"` // levels reported on each side
	} `yaml:"analysis"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"` // empty disables snapshot recording
	} `yaml:"database"`
	Watch struct {
		Cron    string   `yaml:"cron"`
		Symbols []string `yaml:"symbols"`
	} `yaml:"watch"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is fine: defaults cover everything except the
// watch list.
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
	if v := os.Getenv("TICKERSCOPE_CACHE_DIR"); v != "" {
		cfg.Cache.Dir = v
	}
	if v := os.Getenv("TICKERSCOPE_SOURCE"); v != "" {
		cfg.Provider.Source = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Provider.Proxy = v
	}
	if v := os.Getenv("TICKERSCOPE_PERIOD"); v != "" {
		cfg.Analysis.DefaultPeriod = v
	}
	if v := os.Getenv("TICKERSCOPE_SR_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Analysis.SRWindow = n
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("TICKERSCOPE_WATCH_CRON"); v != "" {
		cfg.Watch.Cron = v
	}

	// Defaults
	if cfg.Cache.Dir == "" {
		cfg.Cache.Dir = ".cache"
	}
	if cfg.Provider.Source == "" {
		cfg.Provider.Source = "yahoo"
	}
	if cfg.Analysis.DefaultPeriod == "" {
		cfg.Analysis.DefaultPeriod = "1y"
	}
	if cfg.Analysis.SRWindow == 0 {
		cfg.Analysis.SRWindow = 50
	}
	if cfg.Analysis.SRLevels == 0 {
		cfg.Analysis.SRLevels = 3
	}
	if cfg.Watch.Cron == "" {
		// Weekday evenings, after US market close
		cfg.Watch.Cron = "0 30 16 * * 1-5"
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.Provider.Source != "yahoo" && c.Provider.Source != "mock" {
		return fmt.Errorf("provider.source must be yahoo or mock, got %q", c.Provider.Source)
	}
	if c.Analysis.SRWindow <= 0 {
		return fmt.Errorf("analysis.sr_window must be positive")
	}
	if c.Analysis.SRLevels <= 0 {
		return fmt.Errorf("analysis.sr_levels must be positive")
	}
	return nil
}
