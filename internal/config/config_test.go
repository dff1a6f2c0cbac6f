package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "watcher.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	yaml := `
quote:
  base_url: https://www.google.com/finance/quote
  exchange: NSE
  timeout: 10s
market:
  open: "09:15"
  close: "15:30"
  timezone: Asia/Kolkata
database:
  host: localhost
  port: 5432
  name: stock_market
  user: watcher
  password: secret
poller:
  open_interval: 5s
  closed_interval: 60s
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Quote.Exchange != "NSE" {
		t.Errorf("Quote.Exchange = %q, want NSE", cfg.Quote.Exchange)
	}
	if cfg.Quote.Timeout != 10*time.Second {
		t.Errorf("Quote.Timeout = %v, want 10s", cfg.Quote.Timeout)
	}
	if cfg.Market.Open != "09:15" {
		t.Errorf("Market.Open = %q, want 09:15", cfg.Market.Open)
	}
	if cfg.Database.Host != "localhost" {
		t.Errorf("Database.Host = %q, want localhost", cfg.Database.Host)
	}
	if cfg.Poller.OpenInterval != 5*time.Second {
		t.Errorf("Poller.OpenInterval = %v, want 5s", cfg.Poller.OpenInterval)
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "secret123")

	yaml := `
database:
  host: localhost
  name: stock_market
  user: watcher
  password: ${TEST_DB_PASSWORD}
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.Password != "secret123" {
		t.Errorf("Database.Password = %q, want secret123", cfg.Database.Password)
	}
}

func TestLoadWithDefaults(t *testing.T) {
	yaml := `
database:
  host: localhost
  name: stock_market
  user: watcher
  password: secret
`
	path := writeTempFile(t, yaml)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	if cfg.Quote.BaseURL != DefaultQuoteBaseURL {
		t.Errorf("Quote.BaseURL = %q, want default", cfg.Quote.BaseURL)
	}
	if cfg.Quote.Timeout != DefaultQuoteTimeout {
		t.Errorf("Quote.Timeout = %v, want %v", cfg.Quote.Timeout, DefaultQuoteTimeout)
	}
	if cfg.Market.Open != DefaultMarketOpen || cfg.Market.Close != DefaultMarketClose {
		t.Errorf("Market window = %s-%s, want defaults", cfg.Market.Open, cfg.Market.Close)
	}
	if cfg.Poller.OpenInterval != DefaultOpenInterval {
		t.Errorf("Poller.OpenInterval = %v, want %v", cfg.Poller.OpenInterval, DefaultOpenInterval)
	}
	if cfg.Poller.ClosedInterval != DefaultClosedInterval {
		t.Errorf("Poller.ClosedInterval = %v, want %v", cfg.Poller.ClosedInterval, DefaultClosedInterval)
	}
	if cfg.Database.Port != DefaultDBPort {
		t.Errorf("Database.Port = %d, want %d", cfg.Database.Port, DefaultDBPort)
	}
	if cfg.Metrics.Port != DefaultMetricsPort {
		t.Errorf("Metrics.Port = %d, want %d", cfg.Metrics.Port, DefaultMetricsPort)
	}
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	cfg.Database.Host = "localhost"
	cfg.Database.Name = "stock_market"
	cfg.Database.User = "watcher"
	cfg.Database.Password = "secret"

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on complete config = %v, want nil", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	base := func() *WatcherConfig {
		cfg := Defaults()
		cfg.Database.Host = "localhost"
		cfg.Database.Name = "stock_market"
		cfg.Database.User = "watcher"
		cfg.Database.Password = "secret"
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*WatcherConfig)
	}{
		{"missing db host", func(c *WatcherConfig) { c.Database.Host = "" }},
		{"missing db password", func(c *WatcherConfig) { c.Database.Password = "" }},
		{"bad market open", func(c *WatcherConfig) { c.Market.Open = "9am" }},
		{"open after close", func(c *WatcherConfig) { c.Market.Open = "16:00" }},
		{"bad timezone", func(c *WatcherConfig) { c.Market.Timezone = "Mars/Olympus" }},
		{"zero open interval", func(c *WatcherConfig) { c.Poller.OpenInterval = 0 }},
		{"zero concurrency", func(c *WatcherConfig) { c.Poller.Concurrency = 0 }},
		{"bad metrics port", func(c *WatcherConfig) { c.Metrics.Port = 70000 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestMarketWindow(t *testing.T) {
	cfg := Defaults()

	open, clos, loc, err := cfg.MarketWindow()
	if err != nil {
		t.Fatalf("MarketWindow failed: %v", err)
	}
	if open != 9*60+15 {
		t.Errorf("open = %d, want %d", open, 9*60+15)
	}
	if clos != 15*60+30 {
		t.Errorf("close = %d, want %d", clos, 15*60+30)
	}
	if loc.String() != "Asia/Kolkata" {
		t.Errorf("location = %s, want Asia/Kolkata", loc)
	}
}
