package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("load with missing file: %v", err)
	}
	if cfg.Cache.Dir != ".cache" {
		t.Errorf("cache dir = %q, want .cache", cfg.Cache.Dir)
	}
	if cfg.Provider.Source != "yahoo" {
		t.Errorf("source = %q, want yahoo", cfg.Provider.Source)
	}
	if cfg.Analysis.DefaultPeriod != "1y" {
		t.Errorf("period = %q, want 1y", cfg.Analysis.DefaultPeriod)
	}
	if cfg.Analysis.SRWindow != 50 || cfg.Analysis.SRLevels != 3 {
		t.Errorf("support/resistance defaults = %d/%d, want 50/3",
			cfg.Analysis.SRWindow, cfg.Analysis.SRLevels)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
cache:
  dir: /var/cache/tickerscope
provider:
  source: mock
analysis:
  default_period: 6mo
  sr_window: 30
  sr_levels: 5
database:
  sqlite_path: /tmp/snapshots.db
watch:
  cron: "0 0 18 * * 1-5"
  symbols: [AAPL, MSFT]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Cache.Dir != "/var/cache/tickerscope" {
		t.Errorf("cache dir = %q", cfg.Cache.Dir)
	}
	if cfg.Provider.Source != "mock" || cfg.Analysis.DefaultPeriod != "6mo" {
		t.Errorf("source/period = %q/%q", cfg.Provider.Source, cfg.Analysis.DefaultPeriod)
	}
	if cfg.Analysis.SRWindow != 30 || cfg.Analysis.SRLevels != 5 {
		t.Errorf("sr = %d/%d, want 30/5", cfg.Analysis.SRWindow, cfg.Analysis.SRLevels)
	}
	if len(cfg.Watch.Symbols) != 2 || cfg.Watch.Symbols[0] != "AAPL" {
		t.Errorf("watch symbols = %v", cfg.Watch.Symbols)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TICKERSCOPE_CACHE_DIR", "/tmp/override")
	t.Setenv("TICKERSCOPE_PERIOD", "2y")
	t.Setenv("TICKERSCOPE_SR_WINDOW", "25")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Cache.Dir != "/tmp/override" {
		t.Errorf("cache dir = %q, want env override", cfg.Cache.Dir)
	}
	if cfg.Analysis.DefaultPeriod != "2y" {
		t.Errorf("period = %q, want 2y", cfg.Analysis.DefaultPeriod)
	}
	if cfg.Analysis.SRWindow != 25 {
		t.Errorf("sr window = %d, want 25", cfg.Analysis.SRWindow)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("cache: [not: a: mapping"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	cfg, _ := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	cfg.Provider.Source = "bloomberg"
	if err := cfg.Validate(); err == nil {
		t.Error("expected unknown source to fail validation")
	}

	cfg, _ = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	cfg.Analysis.SRWindow = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected negative sr_window to fail validation")
	}
}
