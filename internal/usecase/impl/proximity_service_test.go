package impl

import (
	"context"
	"testing"
	"time"

	"flint/config"
	"flint/internal/domain/entity"
	"flint/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Downtown Vancouver as the query origin.
var vancouver = orb.Point{-123.1207, 49.2827}

func locatedUser(id string, lat, lon float64) *entity.User {
	return &entity.User{
		ID: id,
		Location: &entity.Location{
			Latitude:  lat,
			Longitude: lon,
		},
	}
}

func newProximityServiceForTest(t *testing.T, f *txFixture, maxRadiusKm float64) *proximityService {
	return NewProximityService(ProximityServiceParams{
		UserRepo: f.User,
		Config: &config.Config{
			Matching: &config.MatchingConfig{
				DefaultRadiusKm: 10,
				MaxRadiusKm:     maxRadiusKm,
			},
		},
		Logger: newDiscardLogger(),
	}).(*proximityService)
}

func TestProximityService_Query_FiltersAndSortsByDistance(t *testing.T) {
	f := newTxFixture(t)
	svc := newProximityServiceForTest(t, f, 0)

	ctx := context.Background()
	burnaby := locatedUser("burnaby", 49.2488, -122.9805)       // ~10.9 km out
	northVan := locatedUser("north-van", 49.3200, -123.0724)    // ~5.3 km out
	downtown := locatedUser("downtown", 49.2820, -123.1171)     // a few hundred meters
	richmond := locatedUser("richmond", 49.1666, -123.1336)     // ~12.9 km out
	nowhere := &entity.User{ID: "nowhere"}                      // no location, never listed

	f.User.EXPECT().
		ListCandidates(ctx, "viewer").
		Return([]*entity.User{burnaby, northVan, downtown, richmond, nowhere}, nil)

	results, err := svc.Query(ctx, "viewer", vancouver, 12, usecase.ProximityFilter{})
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.Equal(t, "downtown", results[0].User.ID)
	assert.Equal(t, "north-van", results[1].User.ID)
	assert.Equal(t, "burnaby", results[2].User.ID)

	// Distances are rounded to one decimal for presentation.
	assert.InDelta(t, 5.3, results[1].DistanceKm, 0.3)
	assert.InDelta(t, 10.9, results[2].DistanceKm, 0.3)
}

func TestProximityService_Query_EmptyResultIsNotAnError(t *testing.T) {
	f := newTxFixture(t)
	svc := newProximityServiceForTest(t, f, 0)

	ctx := context.Background()
	f.User.EXPECT().ListCandidates(ctx, "viewer").Return(nil, nil)

	results, err := svc.Query(ctx, "viewer", vancouver, 5, usecase.ProximityFilter{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestProximityService_Query_DefaultAndMaxRadius(t *testing.T) {
	f := newTxFixture(t)
	svc := newProximityServiceForTest(t, f, 15)

	ctx := context.Background()
	burnaby := locatedUser("burnaby", 49.2488, -122.9805)

	// Zero radius falls back to the configured default of 10 km, which
	// keeps Burnaby (~10.9 km) out.
	f.User.EXPECT().ListCandidates(ctx, "viewer").Return([]*entity.User{burnaby}, nil).Once()
	results, err := svc.Query(ctx, "viewer", vancouver, 0, usecase.ProximityFilter{})
	require.NoError(t, err)
	assert.Empty(t, results)

	// An oversized radius is clamped to the 15 km cap, which still keeps
	// Burnaby in.
	f.User.EXPECT().ListCandidates(ctx, "viewer").Return([]*entity.User{burnaby}, nil).Once()
	results, err = svc.Query(ctx, "viewer", vancouver, 5000, usecase.ProximityFilter{})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestProximityService_Query_AppliesProfileFilter(t *testing.T) {
	f := newTxFixture(t)
	svc := newProximityServiceForTest(t, f, 0)

	now := time.Now()
	young := locatedUser("young", 49.2820, -123.1171)
	young.Gender = "female"
	young.BirthDate = now.AddDate(-22, 0, 0)

	older := locatedUser("older", 49.2820, -123.1171)
	older.Gender = "female"
	older.BirthDate = now.AddDate(-41, 0, 0)

	male := locatedUser("male", 49.2820, -123.1171)
	male.Gender = "male"
	male.BirthDate = now.AddDate(-30, 0, 0)

	ctx := context.Background()
	f.User.EXPECT().
		ListCandidates(ctx, "viewer").
		Return([]*entity.User{young, older, male}, nil)

	gender := "female"
	minAge, maxAge := 20, 35
	results, err := svc.Query(ctx, "viewer", vancouver, 5, usecase.ProximityFilter{
		Gender: &gender,
		MinAge: &minAge,
		MaxAge: &maxAge,
	})
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "young", results[0].User.ID)
}

func TestProximityService_Query_VirtualLocationCounts(t *testing.T) {
	f := newTxFixture(t)
	svc := newProximityServiceForTest(t, f, 0)

	traveler := locatedUser("traveler", 49.2820, -123.1171)
	traveler.Location.IsVirtual = true

	ctx := context.Background()
	f.User.EXPECT().ListCandidates(ctx, "viewer").Return([]*entity.User{traveler}, nil)

	results, err := svc.Query(ctx, "viewer", vancouver, 5, usecase.ProximityFilter{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "traveler", results[0].User.ID)
}

func TestRankByDistance_TiesAreStable(t *testing.T) {
	samePlaceA := locatedUser("first", 49.2820, -123.1171)
	samePlaceB := locatedUser("second", 49.2820, -123.1171)

	results := rankByDistance(vancouver, 5,
		[]*entity.User{samePlaceA, samePlaceB}, usecase.ProximityFilter{}, time.Now())

	require.Len(t, results, 2)
	assert.Equal(t, "first", results[0].User.ID)
	assert.Equal(t, "second", results[1].User.ID)
	assert.Equal(t, results[0].DistanceKm, results[1].DistanceKm)
}
