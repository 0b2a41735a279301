package models

import (
	"fmt"
	"time"
)

// ArrivalRecord is one upcoming train arrival at the configured stop,
// with its countdown already computed.
type ArrivalRecord struct {
	Route         string `json:"route"`
	Destination   string `json:"destination"`
	ArrivalTime   string `json:"arrival_time"`
	MinutesAway   int    `json:"minutes_away"`
	SecondsAway   int    `json:"seconds_away"`
	TimeRemaining string `json:"time_remaining"`
}

// arrivalTimeLayouts are tried in order when parsing an upstream arrT value.
// The Train Tracker API currently emits ISO-8601 without an offset, but the
// legacy "YYYYMMDD HH:MM:SS" form and full RFC3339 have both been observed.
var arrivalTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"20060102 15:04:05",
}

// ParseArrivalTime parses an upstream arrival timestamp. Values carrying no
// offset are pinned to loc, the transit system's local zone; the upstream API
// is not known to ever emit UTC-naive timestamps.
func ParseArrivalTime(s string, loc *time.Location) (time.Time, error) {
	var parseErr error
	for _, layout := range arrivalTimeLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t, nil
		}
		parseErr = err
	}
	return time.Time{}, fmt.Errorf("unable to parse arrival time %q: %w", s, parseErr)
}

// SplitCountdown converts a countdown duration into whole minutes and
// seconds, clamping negative durations (arrival already passed) to zero.
func SplitCountdown(d time.Duration) (mins, secs int) {
	total := int(d.Seconds())
	if total < 0 {
		total = 0
	}
	return total / 60, total % 60
}

// NewArrivalRecord builds a record from a parsed arrival time and the current
// time. The countdown is clamped at zero, so minutes_away is never negative
// and seconds_away is always in [0,59].
func NewArrivalRecord(route, destination string, arrival, now time.Time) ArrivalRecord {
	mins, secs := SplitCountdown(arrival.Sub(now))

	return ArrivalRecord{
		Route:         route,
		Destination:   destination,
		ArrivalTime:   arrival.Format("2006-01-02 15:04:05"),
		MinutesAway:   mins,
		SecondsAway:   secs,
		TimeRemaining: fmt.Sprintf("%dm %ds", mins, secs),
	}
}
