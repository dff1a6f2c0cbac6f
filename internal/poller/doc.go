// Package poller drives the polling loop of the watcher.
//
// While the market is open, each cycle fetches every watched ticker
// concurrently, waits for all fetches to finish, and hands the complete
// batch to the sink in a single write. While the market is closed, the
// loop sleeps on a longer interval and rechecks the clock. The loop runs
// until its context is cancelled; cancellation is observed during sleeps
// and by in-flight fetches.
package poller
