package entity

import "time"

// AlertOffset names how long before the event time the alert fires. It is a
// closed set backed by a duration table; no free-form parsing.
type AlertOffset string

const (
	AlertNone     AlertOffset = "none"
	AlertAtTime   AlertOffset = "at_time"
	Alert5Min     AlertOffset = "5min"
	Alert10Min    AlertOffset = "10min"
	Alert15Min    AlertOffset = "15min"
	Alert30Min    AlertOffset = "30min"
	Alert1Hour    AlertOffset = "1hr"
	Alert2Hours   AlertOffset = "2hr"
	Alert1Day     AlertOffset = "1day"
	Alert2Days    AlertOffset = "2day"
	Alert1Week    AlertOffset = "1week"
)

//nolint:gochecknoglobals
var alertOffsetDurations = map[AlertOffset]time.Duration{
	AlertAtTime: 0,
	Alert5Min:   5 * time.Minute,
	Alert10Min:  10 * time.Minute,
	Alert15Min:  15 * time.Minute,
	Alert30Min:  30 * time.Minute,
	Alert1Hour:  time.Hour,
	Alert2Hours: 2 * time.Hour,
	Alert1Day:   24 * time.Hour,
	Alert2Days:  48 * time.Hour,
	Alert1Week:  7 * 24 * time.Hour,
}

// Duration returns the offset's duration before the event time. ok is false
// only for AlertNone, meaning no alert should be scheduled.
func (o AlertOffset) Duration() (time.Duration, bool) {
	d, ok := alertOffsetDurations[o]

	return d, ok
}

// Valid reports whether o is one of the named offsets (AlertNone included).
func (o AlertOffset) Valid() bool {
	if o == AlertNone {
		return true
	}
	_, ok := alertOffsetDurations[o]

	return ok
}
