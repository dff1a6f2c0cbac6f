package config

import (
	"errors"
	"fmt"
	"time"
)

// Validate checks that all required fields are set and values are valid.
func (c *WatcherConfig) Validate() error {
	if c.Quote.BaseURL == "" {
		return errors.New("quote.base_url is required")
	}
	if c.Quote.Exchange == "" {
		return errors.New("quote.exchange is required")
	}
	if c.Quote.Timeout <= 0 {
		return errors.New("quote.timeout must be positive")
	}

	openMin, err := parseClock(c.Market.Open)
	if err != nil {
		return fmt.Errorf("market.open: %w", err)
	}
	closeMin, err := parseClock(c.Market.Close)
	if err != nil {
		return fmt.Errorf("market.close: %w", err)
	}
	if openMin >= closeMin {
		return fmt.Errorf("market.open (%s) must be before market.close (%s)", c.Market.Open, c.Market.Close)
	}
	if _, err := time.LoadLocation(c.Market.Timezone); err != nil {
		return fmt.Errorf("market.timezone: %w", err)
	}

	if err := c.Database.validate("database"); err != nil {
		return err
	}

	if c.Poller.OpenInterval <= 0 {
		return errors.New("poller.open_interval must be positive")
	}
	if c.Poller.ClosedInterval <= 0 {
		return errors.New("poller.closed_interval must be positive")
	}
	if c.Poller.Concurrency < 1 {
		return errors.New("poller.concurrency must be >= 1")
	}

	if c.Metrics.Port < 1 || c.Metrics.Port > 65535 {
		return fmt.Errorf("metrics.port must be between 1 and 65535, got %d", c.Metrics.Port)
	}

	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}

// parseClock parses an "HH:MM" wall-clock string into minutes past
// midnight.
func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("want HH:MM, got %q", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// MarketWindow returns the configured trading window as minutes past
// midnight plus the exchange's time.Location. Call Validate first; an
// unvalidated config may return an error here instead.
func (c *WatcherConfig) MarketWindow() (openMin, closeMin int, loc *time.Location, err error) {
	openMin, err = parseClock(c.Market.Open)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("market.open: %w", err)
	}
	closeMin, err = parseClock(c.Market.Close)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("market.close: %w", err)
	}
	loc, err = time.LoadLocation(c.Market.Timezone)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("market.timezone: %w", err)
	}
	return openMin, closeMin, loc, nil
}
