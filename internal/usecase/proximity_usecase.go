package usecase

import (
	"context"

	"flint/internal/domain/entity"

	"github.com/paulmach/orb"
)

// ProximityFilter narrows the candidate set before distance filtering. Nil
// fields mean "no constraint". Filters only exclude; they never reorder.
type ProximityFilter struct {
	Gender *string `json:"gender,omitempty"`
	MinAge *int    `json:"min_age,omitempty"`
	MaxAge *int    `json:"max_age,omitempty"`
}

// NearbyProfile is one proximity result: the profile plus its distance from
// the origin, rounded to one decimal place.
type NearbyProfile struct {
	User       *entity.User `json:"user"`
	DistanceKm float64      `json:"distance_km"`
}

// ProximityUsecase answers distance-bounded candidate queries around a
// reference coordinate. Pure with respect to ordering: results are sorted
// ascending by distance with stable ties; any shuffling for display is the
// caller's concern.
type ProximityUsecase interface {
	// Query returns the candidates within radiusKm of origin, excluding the
	// viewer and every candidate without a location, optionally narrowed by
	// filter. An empty result is a normal outcome, not an error.
	Query(ctx context.Context, viewerID string, origin orb.Point, radiusKm float64, filter ProximityFilter) ([]*NearbyProfile, error)
}
