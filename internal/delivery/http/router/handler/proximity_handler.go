package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"flint/internal/delivery/http/response"
	"flint/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var errInvalidAge = errors.New("Invalid age filter")

// ProximityHandlerParams holds dependencies for ProximityHandler, injected by Fx.
type ProximityHandlerParams struct {
	fx.In

	ProximityUC usecase.ProximityUsecase
	Logger      *slog.Logger
}

// ProximityHandler holds dependencies for proximity query handlers
type ProximityHandler struct {
	proximityUC usecase.ProximityUsecase
	logger      *slog.Logger
}

// NewProximityHandler is the constructor for ProximityHandler
func NewProximityHandler(params ProximityHandlerParams) *ProximityHandler {
	return &ProximityHandler{
		proximityUC: params.ProximityUC,
		logger:      params.Logger,
	}
}

// Nearby handles the distance-bounded candidate query around a coordinate
func (h *ProximityHandler) Nearby(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid latitude")
	}

	lon, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid longitude")
	}

	var radiusKm float64
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil || radiusKm < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid radius")
		}
	}

	filter, err := parseProximityFilter(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	profiles, err := h.proximityUC.Query(c.Request().Context(), userID, orb.Point{lon, lat}, radiusKm, filter)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profiles, "Nearby profiles retrieved successfully")
}

func parseProximityFilter(c echo.Context) (usecase.ProximityFilter, error) {
	var filter usecase.ProximityFilter

	if gender := c.QueryParam("gender"); gender != "" {
		filter.Gender = &gender
	}

	if raw := c.QueryParam("min_age"); raw != "" {
		minAge, err := strconv.Atoi(raw)
		if err != nil {
			return filter, errInvalidAge
		}
		filter.MinAge = &minAge
	}

	if raw := c.QueryParam("max_age"); raw != "" {
		maxAge, err := strconv.Atoi(raw)
		if err != nil {
			return filter, errInvalidAge
		}
		filter.MaxAge = &maxAge
	}

	return filter, nil
}
