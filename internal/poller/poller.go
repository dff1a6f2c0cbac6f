package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/sbdj91/nsewatch/internal/metrics"
	"github.com/sbdj91/nsewatch/internal/model"
)

// QuoteFetcher fetches the current quote for one ticker.
type QuoteFetcher interface {
	Fetch(ctx context.Context, ticker string) model.QuoteResult
}

// Sink accepts one completed cycle batch per call.
type Sink interface {
	InsertBatch(ctx context.Context, batch model.CycleBatch) error
}

// SinkFunc is a function adapter for Sink.
type SinkFunc func(ctx context.Context, batch model.CycleBatch) error

func (f SinkFunc) InsertBatch(ctx context.Context, batch model.CycleBatch) error {
	return f(ctx, batch)
}

// MarketClock reports whether the exchange is open at an instant.
type MarketClock interface {
	IsOpen(now time.Time) bool
}

// Config holds poller configuration.
type Config struct {
	OpenInterval   time.Duration // Sleep between cycles while open (default: 5s)
	ClosedInterval time.Duration // Recheck interval while closed (default: 60s)
	Concurrency    int           // Max concurrent fetches (default: 10)
	FetchTimeout   time.Duration // Per-fetch timeout (default: 10s)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		OpenInterval:   5 * time.Second,
		ClosedInterval: 60 * time.Second,
		Concurrency:    10,
		FetchTimeout:   10 * time.Second,
	}
}

// Poller repeatedly fetches quotes for a fixed ticker set and writes one
// snapshot batch per cycle.
type Poller struct {
	cfg     Config
	tickers []string
	fetcher QuoteFetcher
	sink    Sink
	clock   MarketClock
	logger  *slog.Logger
	metrics *metrics.Recorder

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a new Poller. The metrics recorder may be nil.
func New(cfg Config, tickers []string, fetcher QuoteFetcher, sink Sink, clock MarketClock, logger *slog.Logger, rec *metrics.Recorder) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		cfg:     cfg,
		tickers: tickers,
		fetcher: fetcher,
		sink:    sink,
		clock:   clock,
		logger:  logger,
		metrics: rec,
	}
}

// Start begins the polling loop.
func (p *Poller) Start(ctx context.Context) error {
	p.ctx, p.cancel = context.WithCancel(ctx)

	p.wg.Add(1)
	go p.run()

	p.logger.Info("price poller started",
		"tickers", len(p.tickers),
		"open_interval", p.cfg.OpenInterval,
		"closed_interval", p.cfg.ClosedInterval,
		"market_open", p.clock.IsOpen(time.Now()),
	)

	return nil
}

// Stop gracefully shuts down the poller.
func (p *Poller) Stop(ctx context.Context) error {
	if p.cancel != nil {
		p.cancel()
	}

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Info("price poller stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run is the main polling loop. Each pass re-evaluates the market clock:
// open markets get a fetch cycle and a short sleep, closed markets a
// waiting notice and a long sleep.
func (p *Poller) run() {
	defer p.wg.Done()

	for {
		if p.ctx.Err() != nil {
			return
		}

		if p.clock.IsOpen(time.Now()) {
			batch := p.runCycle()

			// An interrupt mid-cycle discards the partial batch
			// rather than persisting it.
			if p.ctx.Err() != nil {
				return
			}

			if err := p.sink.InsertBatch(p.ctx, batch); err != nil {
				p.logger.Error("batch insert failed",
					"cycle_id", batch.CycleID,
					"count", batch.Len(),
					"err", err,
				)
			}

			if p.metrics != nil {
				p.metrics.RecordCycle()
			}

			if !p.sleep(p.cfg.OpenInterval) {
				return
			}
		} else {
			p.logger.Info("market closed, waiting")
			if !p.sleep(p.cfg.ClosedInterval) {
				return
			}
		}
	}
}

// runCycle fetches every ticker concurrently and assembles the batch. It
// blocks until all fetches complete; the batch always contains exactly
// one record per requested ticker.
func (p *Poller) runCycle() model.CycleBatch {
	start := time.Now()
	cycleID := uuid.New()

	// Each fetch writes its own slot; the merge is the join itself.
	results := make([]model.QuoteResult, len(p.tickers))

	g := new(errgroup.Group)
	g.SetLimit(p.cfg.Concurrency)

	for i, ticker := range p.tickers {
		g.Go(func() error {
			ctx, cancel := context.WithTimeout(p.ctx, p.cfg.FetchTimeout)
			defer cancel()

			fetchStart := time.Now()
			results[i] = p.fetcher.Fetch(ctx, ticker)

			if p.metrics != nil {
				p.metrics.RecordFetch(ticker, results[i].Status.String(), time.Since(fetchStart).Seconds())
			}
			return nil
		})
	}

	g.Wait()

	var fetched, failed int
	records := make([]model.SnapshotRecord, 0, len(results))

	for _, res := range results {
		rec := model.NewSnapshotRecord(cycleID, res)
		records = append(records, rec)

		if res.Status == model.FetchOK {
			fetched++
			if p.metrics != nil {
				p.metrics.RecordLastPrice(res.Ticker, res.Price)
			}
			p.logger.Info("quote",
				"captured_at", rec.FormattedTimestamp(),
				"name", res.CompanyName,
				"ticker", res.Ticker,
				"price", res.Price,
			)
		} else {
			failed++
			p.logger.Warn("quote unavailable",
				"captured_at", rec.FormattedTimestamp(),
				"ticker", res.Ticker,
			)
		}
	}

	p.logger.Info("cycle complete",
		"cycle_id", cycleID,
		"tickers", len(p.tickers),
		"fetched", fetched,
		"failed", failed,
		"duration", time.Since(start),
	)

	return model.CycleBatch{CycleID: cycleID, Records: records}
}

// sleep waits for d or until the poller is cancelled; it returns false on
// cancellation.
func (p *Poller) sleep(d time.Duration) bool {
	select {
	case <-p.ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
