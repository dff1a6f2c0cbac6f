// Package quote fetches live quotes from the Google Finance quote page.
//
// A fetch is one HTTP GET per ticker; the company name and last price are
// extracted from the returned HTML. Every failure mode (transport error,
// non-200 status, missing markup, unparseable price) degrades to a failed
// QuoteResult carrying sentinel values — Fetch never returns an error.
// There are no retries: a failed ticker is refetched naturally on the
// next polling cycle.
package quote
