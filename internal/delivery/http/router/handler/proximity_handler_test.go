package handler

import (
	"net/http"
	"testing"

	mockUC "flint/internal/mocks/usecase"
	"flint/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProximityHandler(t *testing.T) (*ProximityHandler, *mockUC.MockProximityUsecase) {
	t.Helper()

	uc := mockUC.NewMockProximityUsecase(t)
	h := NewProximityHandler(ProximityHandlerParams{
		ProximityUC: uc,
		Logger:      testLogger(),
	})

	return h, uc
}

func TestProximityHandler_Nearby(t *testing.T) {
	h, uc := newProximityHandler(t)

	uc.EXPECT().Query(mock.Anything, "alice", orb.Point{139.6917, 35.6895}, 5.0,
		mock.MatchedBy(func(filter usecase.ProximityFilter) bool {
			return filter.Gender != nil && *filter.Gender == "female" &&
				filter.MinAge != nil && *filter.MinAge == 25 &&
				filter.MaxAge == nil
		})).Return(nil, nil).Once()

	c, rec := newTestContext(t, http.MethodGet,
		"/nearby?lat=35.6895&lon=139.6917&radius_km=5&gender=female&min_age=25", "", "alice")

	require.NoError(t, h.Nearby(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProximityHandler_Nearby_DefaultRadius(t *testing.T) {
	h, uc := newProximityHandler(t)

	// A missing radius is passed through as zero; the use case applies the
	// configured default.
	uc.EXPECT().Query(mock.Anything, "alice", orb.Point{139.6917, 35.6895}, 0.0,
		usecase.ProximityFilter{}).Return(nil, nil).Once()

	c, rec := newTestContext(t, http.MethodGet, "/nearby?lat=35.6895&lon=139.6917", "", "alice")

	require.NoError(t, h.Nearby(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProximityHandler_Nearby_InvalidCoordinates(t *testing.T) {
	h, _ := newProximityHandler(t)

	tests := []struct {
		name   string
		target string
	}{
		{name: "missing lat", target: "/nearby?lon=139.0"},
		{name: "lat out of range", target: "/nearby?lat=91&lon=139.0"},
		{name: "lon out of range", target: "/nearby?lat=35.0&lon=181"},
		{name: "negative radius", target: "/nearby?lat=35.0&lon=139.0&radius_km=-1"},
		{name: "bad age filter", target: "/nearby?lat=35.0&lon=139.0&min_age=abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(t, http.MethodGet, tt.target, "", "alice")

			require.NoError(t, h.Nearby(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
		})
	}
}
