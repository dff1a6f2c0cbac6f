// Package model defines the shared data types for the watcher.
//
// Types:
//   - QuoteResult: outcome of one fetch attempt for one ticker
//   - SnapshotRecord: one persisted price observation
//   - CycleBatch: all records produced by one polling cycle
//
// All types are plain values. A QuoteResult or SnapshotRecord is never
// mutated after it is returned from the layer that produced it.
package model
