// Package writer persists snapshot batches to the live_prices table.
//
// Writes are append-only: one pgx batch insert per polling cycle, never
// per ticker, and never an update. An insert error is reported for the
// whole batch; the poller decides what to do with it.
package writer
