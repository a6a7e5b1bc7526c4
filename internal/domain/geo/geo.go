// Package geo provides the pure distance math used by proximity queries.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

const earthRadiusKm = 6371.0

// DistanceKm calculates the great circle distance between two points in
// kilometers using the haversine formula. Symmetric, and zero exactly when
// the points are equal.
//
// orb's own geo.DistanceHaversine uses the WGS84 equatorial radius; the
// product contract fixes the mean radius of 6371 km, so the formula is
// written out here.
func DistanceKm(a, b orb.Point) float64 {
	if a == b {
		return 0
	}

	lat1Rad := a.Lat() * math.Pi / 180
	lng1Rad := a.Lon() * math.Pi / 180
	lat2Rad := b.Lat() * math.Pi / 180
	lng2Rad := b.Lon() * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// RoundKm1 rounds a distance to one decimal place for display.
func RoundKm1(km float64) float64 {
	return math.Round(km*10) / 10
}
