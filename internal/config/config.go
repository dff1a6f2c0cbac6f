package config

import "time"

// WatcherConfig is the root configuration for a watcher instance.
type WatcherConfig struct {
	Quote    QuoteConfig   `yaml:"quote"`
	Market   MarketConfig  `yaml:"market"`
	Database DBConfig      `yaml:"database"`
	Poller   PollerConfig  `yaml:"poller"`
	Metrics  MetricsConfig `yaml:"metrics"`
}

// QuoteConfig holds quote-provider settings.
type QuoteConfig struct {
	BaseURL   string        `yaml:"base_url"`
	Exchange  string        `yaml:"exchange"` // Exchange suffix in the quote URL (e.g., "NSE")
	UserAgent string        `yaml:"user_agent"`
	Timeout   time.Duration `yaml:"timeout"`
}

// MarketConfig holds the trading window of the target exchange.
// Open and Close are local wall-clock times in "HH:MM" form, interpreted
// in Timezone; the window is inclusive on both bounds.
type MarketConfig struct {
	Open     string `yaml:"open"`
	Close    string `yaml:"close"`
	Timezone string `yaml:"timezone"`
}

// DBConfig holds the PostgreSQL connection for snapshot storage.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// PollerConfig holds polling-loop settings.
type PollerConfig struct {
	OpenInterval   time.Duration `yaml:"open_interval"`   // Sleep between cycles while the market is open
	ClosedInterval time.Duration `yaml:"closed_interval"` // Recheck interval while the market is closed
	Concurrency    int           `yaml:"concurrency"`     // Max concurrent fetches per cycle
}

// MetricsConfig holds the health/metrics HTTP server settings.
type MetricsConfig struct {
	Port int    `yaml:"port"`
	Path string `yaml:"path"`
}
