package writer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sbdj91/nsewatch/internal/metrics"
	"github.com/sbdj91/nsewatch/internal/model"
)

// Stats holds cumulative writer counters.
type Stats struct {
	Batches int64 // Successful batch inserts
	Inserts int64 // Rows written
	Errors  int64 // Failed batch inserts
}

// SnapshotWriter writes one CycleBatch per call to the live_prices table.
type SnapshotWriter struct {
	db      *pgxpool.Pool
	logger  *slog.Logger
	metrics *metrics.Recorder

	mu    sync.Mutex
	stats Stats
}

// NewSnapshotWriter creates a SnapshotWriter. The metrics recorder may be
// nil.
func NewSnapshotWriter(db *pgxpool.Pool, logger *slog.Logger, rec *metrics.Recorder) *SnapshotWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SnapshotWriter{
		db:      db,
		logger:  logger,
		metrics: rec,
	}
}

// snapshotRow is the database shape of one SnapshotRecord. A nil price is
// the stored sentinel for an unavailable price.
type snapshotRow struct {
	CapturedAt  time.Time
	CycleID     uuid.UUID
	Ticker      string
	CompanyName string
	Price       *float64
}

// transform converts a SnapshotRecord to its row form.
func transform(r model.SnapshotRecord) snapshotRow {
	row := snapshotRow{
		CapturedAt:  r.CapturedAt,
		CycleID:     r.CycleID,
		Ticker:      r.Ticker,
		CompanyName: r.CompanyName,
	}
	if r.HasPrice {
		p := r.Price
		row.Price = &p
	}
	return row
}

// InsertBatch writes every record of the batch in a single database
// round-trip. Empty batches are rejected: the poller never produces one,
// so seeing one is a programming fault worth surfacing.
func (w *SnapshotWriter) InsertBatch(ctx context.Context, batch model.CycleBatch) error {
	if batch.Len() == 0 {
		return fmt.Errorf("empty batch for cycle %s", batch.CycleID)
	}

	start := time.Now()

	pgBatch := &pgx.Batch{}
	for _, r := range batch.Records {
		row := transform(r)
		pgBatch.Queue(`
			INSERT INTO live_prices (captured_at, cycle_id, ticker, company_name, price)
			VALUES ($1, $2, $3, $4, $5)
		`, row.CapturedAt, row.CycleID, row.Ticker, row.CompanyName, row.Price)
	}

	results := w.db.SendBatch(ctx, pgBatch)
	defer results.Close()

	for range batch.Records {
		if _, err := results.Exec(); err != nil {
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()
			if w.metrics != nil {
				w.metrics.RecordInsertError()
			}
			return fmt.Errorf("insert batch: %w", err)
		}
	}

	w.mu.Lock()
	w.stats.Batches++
	w.stats.Inserts += int64(batch.Len())
	w.mu.Unlock()
	if w.metrics != nil {
		w.metrics.RecordInsert(batch.Len())
	}

	w.logger.Debug("batch inserted",
		"cycle_id", batch.CycleID,
		"count", batch.Len(),
		"duration", time.Since(start),
	)

	return nil
}

// Stats returns the cumulative counters.
func (w *SnapshotWriter) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}
