package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultQuoteBaseURL   = "https://www.google.com/finance/quote"
	DefaultQuoteExchange  = "NSE"
	DefaultQuoteUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/115.0.0.0 Safari/537.36"
	DefaultQuoteTimeout = 10 * time.Second

	DefaultMarketOpen     = "09:15"
	DefaultMarketClose    = "15:30"
	DefaultMarketTimezone = "Asia/Kolkata"

	DefaultDBPort    = 5432
	DefaultDBSSLMode = "prefer"
	DefaultMaxConns  = 4
	DefaultMinConns  = 1

	DefaultOpenInterval   = 5 * time.Second
	DefaultClosedInterval = 60 * time.Second
	DefaultConcurrency    = 10

	DefaultMetricsPort = 9090
	DefaultMetricsPath = "/metrics"
)

func (c *WatcherConfig) applyDefaults() {
	// Quote defaults
	if c.Quote.BaseURL == "" {
		c.Quote.BaseURL = DefaultQuoteBaseURL
	}
	if c.Quote.Exchange == "" {
		c.Quote.Exchange = DefaultQuoteExchange
	}
	if c.Quote.UserAgent == "" {
		c.Quote.UserAgent = DefaultQuoteUserAgent
	}
	if c.Quote.Timeout == 0 {
		c.Quote.Timeout = DefaultQuoteTimeout
	}

	// Market defaults
	if c.Market.Open == "" {
		c.Market.Open = DefaultMarketOpen
	}
	if c.Market.Close == "" {
		c.Market.Close = DefaultMarketClose
	}
	if c.Market.Timezone == "" {
		c.Market.Timezone = DefaultMarketTimezone
	}

	// Database defaults
	if c.Database.Port == 0 {
		c.Database.Port = DefaultDBPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultDBSSLMode
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = DefaultMaxConns
	}
	if c.Database.MinConns == 0 {
		c.Database.MinConns = DefaultMinConns
	}

	// Poller defaults
	if c.Poller.OpenInterval == 0 {
		c.Poller.OpenInterval = DefaultOpenInterval
	}
	if c.Poller.ClosedInterval == 0 {
		c.Poller.ClosedInterval = DefaultClosedInterval
	}
	if c.Poller.Concurrency == 0 {
		c.Poller.Concurrency = DefaultConcurrency
	}

	// Metrics defaults
	if c.Metrics.Port == 0 {
		c.Metrics.Port = DefaultMetricsPort
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
}
