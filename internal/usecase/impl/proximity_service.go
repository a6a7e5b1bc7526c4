package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"flint/config"
	deliverycontext "flint/internal/delivery/context"
	"flint/internal/domain/entity"
	"flint/internal/domain/geo"
	"flint/internal/domain/repository"
	"flint/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// proximityService implements the ProximityUsecase interface.
type proximityService struct {
	userRepo        repository.UserRepository
	defaultRadiusKm float64
	maxRadiusKm     float64
	logger          *slog.Logger
	now             func() time.Time
}

// ProximityServiceParams holds dependencies for proximityService, injected by Fx.
type ProximityServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewProximityService is the constructor for proximityService.
func NewProximityService(params ProximityServiceParams) usecase.ProximityUsecase {
	defaultRadiusKm := 10.0
	maxRadiusKm := 0.0
	if params.Config != nil && params.Config.Matching != nil {
		if params.Config.Matching.DefaultRadiusKm > 0 {
			defaultRadiusKm = params.Config.Matching.DefaultRadiusKm
		}
		maxRadiusKm = params.Config.Matching.MaxRadiusKm
	}

	return &proximityService{
		userRepo:        params.UserRepo,
		defaultRadiusKm: defaultRadiusKm,
		maxRadiusKm:     maxRadiusKm,
		logger:          params.Logger,
		now:             time.Now,
	}
}

func (srv *proximityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Query returns the candidates within radiusKm of origin, sorted ascending
// by distance. An empty result is a normal outcome.
func (srv *proximityService) Query(
	ctx context.Context,
	viewerID string,
	origin orb.Point,
	radiusKm float64,
	filter usecase.ProximityFilter,
) ([]*usecase.NearbyProfile, error) {
	if radiusKm <= 0 {
		radiusKm = srv.defaultRadiusKm
	}
	if srv.maxRadiusKm > 0 && radiusKm > srv.maxRadiusKm {
		radiusKm = srv.maxRadiusKm
	}

	candidates, err := srv.userRepo.ListCandidates(ctx, viewerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list proximity candidates")
	}

	results := rankByDistance(origin, radiusKm, candidates, filter, srv.now())

	srv.log(ctx).Debug("Proximity query completed",
		slog.String("viewerID", viewerID),
		slog.Float64("radiusKm", radiusKm),
		slog.Int("candidates", len(candidates)),
		slog.Int("results", len(results)))

	return results, nil
}

// rankByDistance filters candidates against the radius and the profile
// filter, then sorts ascending by exact distance with stable ties. Distances
// are rounded for presentation only after the sort, so rounding can never
// reorder results.
func rankByDistance(
	origin orb.Point,
	radiusKm float64,
	candidates []*entity.User,
	filter usecase.ProximityFilter,
	now time.Time,
) []*usecase.NearbyProfile {
	results := make([]*usecase.NearbyProfile, 0, len(candidates))
	for _, candidate := range candidates {
		// A user without a location never appears in results. Virtual
		// locations count the same as real ones.
		if candidate.Location == nil {
			continue
		}
		if !matchesFilter(candidate, filter, now) {
			continue
		}

		distanceKm := geo.DistanceKm(origin, candidate.Location.Point())
		if distanceKm > radiusKm {
			continue
		}

		results = append(results, &usecase.NearbyProfile{
			User:       candidate,
			DistanceKm: distanceKm,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})

	for _, result := range results {
		result.DistanceKm = geo.RoundKm1(result.DistanceKm)
	}

	return results
}

// matchesFilter applies the optional profile constraints. Filters only
// exclude; they never reorder.
func matchesFilter(candidate *entity.User, filter usecase.ProximityFilter, now time.Time) bool {
	if filter.Gender != nil && candidate.Gender != *filter.Gender {
		return false
	}

	if filter.MinAge == nil && filter.MaxAge == nil {
		return true
	}

	age := candidate.Age(now)
	if filter.MinAge != nil && age < *filter.MinAge {
		return false
	}
	if filter.MaxAge != nil && age > *filter.MaxAge {
		return false
	}

	return true
}
