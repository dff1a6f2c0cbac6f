package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sbdj91/nsewatch/internal/config"
	"github.com/sbdj91/nsewatch/internal/database"
	"github.com/sbdj91/nsewatch/internal/market"
	"github.com/sbdj91/nsewatch/internal/metrics"
	"github.com/sbdj91/nsewatch/internal/poller"
	"github.com/sbdj91/nsewatch/internal/quote"
	"github.com/sbdj91/nsewatch/internal/tickers"
	"github.com/sbdj91/nsewatch/internal/version"
	"github.com/sbdj91/nsewatch/internal/writer"
)

func main() {
	configPath := flag.String("config", "configs/watcher.yaml", "path to config file")
	tickerList := flag.String("tickers", "", "comma-separated NSE tickers (e.g. INFY,TCS,RELIANCE)")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting watcher",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Resolve the watched ticker set: flag, then args, then interactive
	// prompt (the input is read once; the set never changes at runtime).
	watched := tickers.ParseList(*tickerList)
	if len(watched) == 0 {
		watched = tickers.FromArgs(flag.Args())
	}
	if len(watched) == 0 {
		watched, err = tickers.Prompt(os.Stdin, os.Stdout)
		if err != nil {
			logger.Error("failed to read ticker list", "error", err)
			os.Exit(1)
		}
	}
	if len(watched) == 0 {
		logger.Error("no tickers provided")
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"tickers", watched,
		"quote_url", cfg.Quote.BaseURL,
		"market_window", cfg.Market.Open+"-"+cfg.Market.Close+" "+cfg.Market.Timezone,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Connect to database
	logger.Info("connecting to database",
		"host", cfg.Database.Host,
		"port", cfg.Database.Port,
		"database", cfg.Database.Name,
	)

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Build components
	rec := metrics.New()

	snapshotWriter := writer.NewSnapshotWriter(pool, logger, rec)

	quoteClient := quote.NewClient(
		cfg.Quote.BaseURL,
		cfg.Quote.Exchange,
		quote.WithUserAgent(cfg.Quote.UserAgent),
		quote.WithTimeout(cfg.Quote.Timeout),
		quote.WithLogger(logger),
	)

	openMin, closeMin, loc, err := cfg.MarketWindow()
	if err != nil {
		logger.Error("failed to resolve market window", "error", err)
		os.Exit(1)
	}
	clock := market.NewHours(openMin, closeMin, loc)

	pollerCfg := poller.Config{
		OpenInterval:   cfg.Poller.OpenInterval,
		ClosedInterval: cfg.Poller.ClosedInterval,
		Concurrency:    cfg.Poller.Concurrency,
		FetchTimeout:   cfg.Quote.Timeout,
	}
	p := poller.New(pollerCfg, watched, quoteClient, snapshotWriter, clock, logger, rec)

	// Health and metrics server
	healthServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Metrics.Port),
		Handler: createHealthHandler(pool, snapshotWriter, cfg.Metrics.Path),
	}

	go func() {
		logger.Info("starting health server", "port", cfg.Metrics.Port)
		if err := healthServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("health server error", "error", err)
		}
	}()

	// Start polling
	if err := p.Start(ctx); err != nil {
		logger.Error("failed to start poller", "error", err)
		os.Exit(1)
	}

	logger.Info("watcher running",
		"tickers", len(watched),
		"health_url", fmt.Sprintf("http://localhost:%d/health", cfg.Metrics.Port),
	)

	// Wait for shutdown
	<-ctx.Done()

	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := p.Stop(shutdownCtx); err != nil {
		logger.Warn("poller stop timed out", "error", err)
	}
	healthServer.Shutdown(shutdownCtx)

	stats := snapshotWriter.Stats()
	logger.Info("watcher stopped",
		"batches_written", stats.Batches,
		"records_written", stats.Inserts,
		"insert_errors", stats.Errors,
	)
}

// createHealthHandler creates the HTTP handler for health checks and
// Prometheus metrics.
func createHealthHandler(pool *pgxpool.Pool, w *writer.SnapshotWriter, metricsPath string) http.Handler {
	mux := http.NewServeMux()

	mux.Handle(metricsPath, promhttp.Handler())

	mux.HandleFunc("/health", func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		health := struct {
			Status     string                 `json:"status"`
			Components map[string]interface{} `json:"components"`
		}{
			Status:     "healthy",
			Components: make(map[string]interface{}),
		}

		// Check database
		if err := pool.Ping(ctx); err != nil {
			health.Status = "unhealthy"
			health.Components["postgres"] = map[string]string{
				"status": "disconnected",
				"error":  err.Error(),
			}
		} else {
			health.Components["postgres"] = "connected"
		}

		stats := w.Stats()
		health.Components["writer"] = map[string]int64{
			"batches": stats.Batches,
			"records": stats.Inserts,
			"errors":  stats.Errors,
		}

		rw.Header().Set("Content-Type", "application/json")
		if health.Status == "unhealthy" {
			rw.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(rw).Encode(health)
	})

	return mux
}
