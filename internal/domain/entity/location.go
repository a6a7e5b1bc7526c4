package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// Location is a user's last reported position. IsVirtual marks positions the
// user typed in rather than ones reported by the device; proximity treats
// both the same, the flag is presentation metadata.
type Location struct {
	Latitude    float64   `json:"latitude" firestore:"latitude"`
	Longitude   float64   `json:"longitude" firestore:"longitude"`
	IsVirtual   bool      `json:"is_virtual" firestore:"isVirtual"`
	LastUpdated time.Time `json:"last_updated" firestore:"lastUpdated"`
}

// Point returns the location as an orb point (lon/lat order).
func (l *Location) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}
