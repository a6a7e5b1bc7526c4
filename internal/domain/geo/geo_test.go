package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_Symmetric(t *testing.T) {
	a := orb.Point{-123.1207, 49.2827} // Vancouver
	b := orb.Point{121.5654, 25.0330}  // Taipei

	assert.Equal(t, DistanceKm(a, b), DistanceKm(b, a))
}

func TestDistanceKm_ZeroForSamePoint(t *testing.T) {
	p := orb.Point{-123.1207, 49.2827}

	assert.Zero(t, DistanceKm(p, p))
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	vancouver := orb.Point{-123.1207, 49.2827}
	burnaby := orb.Point{-122.9805, 49.2488}

	d := DistanceKm(vancouver, burnaby)
	assert.InDelta(t, 10.9, d, 0.5)
}

func TestDistanceKm_Antipodal(t *testing.T) {
	a := orb.Point{0, 0}
	b := orb.Point{180, 0}

	// Half the Earth's circumference at the 6371 km radius.
	assert.InDelta(t, 20015.1, DistanceKm(a, b), 0.5)
}

func TestRoundKm1(t *testing.T) {
	assert.Equal(t, 1.2, RoundKm1(1.24))
	assert.Equal(t, 1.3, RoundKm1(1.25))
	assert.Equal(t, 0.0, RoundKm1(0.04))
	assert.Equal(t, 15.0, RoundKm1(14.97))
}
