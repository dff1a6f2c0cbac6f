// Package market decides whether the target exchange is open at a given
// instant. The clock is a pure function of wall-clock time: weekends are
// always closed, weekdays are open within a fixed daily window, inclusive
// on both bounds.
package market

import "time"

// Hours describes one exchange's daily trading window.
type Hours struct {
	openMin  int // Minutes past midnight, local exchange time
	closeMin int
	loc      *time.Location
}

// NewHours builds an Hours from a window in minutes past midnight and the
// exchange's location. A nil location means the instant's own location is
// used as-is.
func NewHours(openMin, closeMin int, loc *time.Location) Hours {
	return Hours{openMin: openMin, closeMin: closeMin, loc: loc}
}

// IsOpen reports whether the exchange is open at the given instant.
// Saturday and Sunday are closed regardless of time-of-day; on other days
// the window bounds are inclusive (at exactly the open or close minute the
// market counts as open).
func (h Hours) IsOpen(now time.Time) bool {
	if h.loc != nil {
		now = now.In(h.loc)
	}

	switch now.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}

	minute := now.Hour()*60 + now.Minute()
	if minute < h.openMin || minute > h.closeMin {
		return false
	}
	// The close bound is the top of the minute: 15:30:00 is open,
	// 15:30:01 is not.
	if minute == h.closeMin && (now.Second() > 0 || now.Nanosecond() > 0) {
		return false
	}
	return true
}
