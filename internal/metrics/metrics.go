// Package metrics provides Prometheus metrics for monitoring.
//
// Key metrics:
//   - Cycle counts and fetch outcomes per ticker
//   - Fetch latency
//   - Records written and sink write failures
//   - Last observed price per ticker
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder records watcher metrics.
type Recorder struct {
	cyclesTotal     prometheus.Counter
	fetchesTotal    *prometheus.CounterVec
	fetchDuration   prometheus.Histogram
	recordsInserted prometheus.Counter
	insertErrors    prometheus.Counter
	lastPrice       *prometheus.GaugeVec
}

// New creates a Recorder registered on the default registry.
func New() *Recorder {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates a Recorder registered on the given registerer.
func NewWithRegistry(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		cyclesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "nsewatch_cycles_total",
			Help: "Total number of completed polling cycles",
		}),
		fetchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nsewatch_fetches_total",
				Help: "Total number of quote fetch attempts by outcome",
			},
			[]string{"ticker", "status"},
		),
		fetchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "nsewatch_fetch_duration_seconds",
			Help:    "Duration of quote fetches in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		recordsInserted: factory.NewCounter(prometheus.CounterOpts{
			Name: "nsewatch_records_inserted_total",
			Help: "Total number of snapshot records written to storage",
		}),
		insertErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "nsewatch_insert_errors_total",
			Help: "Total number of failed batch inserts",
		}),
		lastPrice: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "nsewatch_last_price",
				Help: "Last successfully fetched price for a ticker",
			},
			[]string{"ticker"},
		),
	}
}

// RecordCycle counts one completed polling cycle.
func (r *Recorder) RecordCycle() {
	r.cyclesTotal.Inc()
}

// RecordFetch counts one fetch attempt and its latency.
func (r *Recorder) RecordFetch(ticker, status string, seconds float64) {
	r.fetchesTotal.WithLabelValues(ticker, status).Inc()
	r.fetchDuration.Observe(seconds)
}

// RecordLastPrice updates the last observed price gauge.
func (r *Recorder) RecordLastPrice(ticker string, price float64) {
	r.lastPrice.WithLabelValues(ticker).Set(price)
}

// RecordInsert counts records written in one successful batch insert.
func (r *Recorder) RecordInsert(count int) {
	r.recordsInserted.Add(float64(count))
}

// RecordInsertError counts one failed batch insert.
func (r *Recorder) RecordInsertError() {
	r.insertErrors.Inc()
}
