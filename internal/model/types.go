package model

import (
	"time"

	"github.com/google/uuid"
)

// Unavailable is the sentinel stored in place of a company name (and
// rendered in place of a price) that could not be fetched. Records keep
// their shape on failure; only the values degrade.
const Unavailable = "N/A"

// TimestampLayout is the fixed local-time format used for capture
// timestamps in logs and stored records (second precision).
const TimestampLayout = "2006-01-02 15:04:05"

// FetchStatus reports whether a fetch attempt produced a usable quote.
type FetchStatus int

const (
	// FetchFailed means the name, the price, or both could not be
	// determined. Sentinel values fill the gaps.
	FetchFailed FetchStatus = iota

	// FetchOK means both company name and price were parsed.
	FetchOK
)

func (s FetchStatus) String() string {
	if s == FetchOK {
		return "ok"
	}
	return "failed"
}

// QuoteResult is the outcome of one fetch attempt for one ticker.
type QuoteResult struct {
	Ticker      string      // Requested symbol (e.g., "INFY")
	CompanyName string      // Display name, or Unavailable
	Price       float64     // Last price; meaningful only when HasPrice
	HasPrice    bool        // false = price sentinel
	Status      FetchStatus // FetchOK only when both fields parsed
	FetchedAt   time.Time   // Capture instant, local time
}

// SnapshotRecord is the persisted unit: one price observation for one
// ticker in one cycle. Failures are recorded with sentinel values, not
// dropped.
type SnapshotRecord struct {
	CapturedAt  time.Time // Second precision, local time
	CycleID     uuid.UUID // Cycle that produced this record
	Ticker      string
	CompanyName string  // Unavailable when the name was not parsed
	Price       float64 // Meaningful only when HasPrice
	HasPrice    bool
}

// NewSnapshotRecord builds the record for one QuoteResult.
func NewSnapshotRecord(cycleID uuid.UUID, q QuoteResult) SnapshotRecord {
	return SnapshotRecord{
		CapturedAt:  q.FetchedAt.Truncate(time.Second),
		CycleID:     cycleID,
		Ticker:      q.Ticker,
		CompanyName: q.CompanyName,
		Price:       q.Price,
		HasPrice:    q.HasPrice,
	}
}

// FormattedTimestamp renders CapturedAt in the fixed local layout.
func (r SnapshotRecord) FormattedTimestamp() string {
	return r.CapturedAt.Format(TimestampLayout)
}

// CycleBatch holds every record produced by one polling cycle. The batch
// is closed only after all fetches for the cycle have completed; its
// length always equals the number of tickers requested that cycle.
// Record order follows the input ticker order, not completion order.
type CycleBatch struct {
	CycleID uuid.UUID
	Records []SnapshotRecord
}

// Len returns the number of records in the batch.
func (b CycleBatch) Len() int { return len(b.Records) }
