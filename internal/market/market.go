// Package market holds the exchange clock helpers: parsing upstream
// timestamps in exchange time, converting them to the reference zone and
// the coarse open/closed heuristic.
package market

import (
	"fmt"
	"time"

	// Embedded zone database so conversions work in minimal containers.
	_ "time/tzdata"
)

// TimestampLayout is the upstream observation timestamp format.
const TimestampLayout = "2006-01-02 15:04:05"

// DisplayLayout renders reference-zone timestamps with the zone abbreviation.
const DisplayLayout = "2006-01-02 15:04:05 MST"

// Status is the coarse market state attached to every quote.
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// Session hours in the reference zone, inclusive on both ends.
const (
	openHour  = 6
	closeHour = 13
)

var (
	// Exchange is the civil time zone of upstream timestamps.
	Exchange = mustLoad("America/New_York")
	// Reference is the display zone used for the market status heuristic.
	Reference = mustLoad("America/Los_Angeles")
)

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("market: load %s: %v", name, err))
	}
	return loc
}

// ParseExchangeTime interprets s as wall-clock time on the exchange,
// applying that date's daylight-saving rules.
func ParseExchangeTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(TimestampLayout, s, Exchange)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse exchange time %q: %w", s, err)
	}
	return t, nil
}

// ToReference converts t to the reference zone.
func ToReference(t time.Time) time.Time { return t.In(Reference) }

// StatusAt reports the market status for t, evaluated in the reference zone.
// Weekends are closed; on weekdays any hour in [6, 13] counts as open.
// The whole-hour window is deliberate and does not model the 9:30 ET open
// minute or exchange holidays.
func StatusAt(t time.Time) Status {
	rt := t.In(Reference)
	switch rt.Weekday() {
	case time.Saturday, time.Sunday:
		return StatusClosed
	}
	if h := rt.Hour(); h >= openHour && h <= closeHour {
		return StatusOpen
	}
	return StatusClosed
}
