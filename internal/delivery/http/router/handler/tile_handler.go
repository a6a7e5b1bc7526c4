package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"flint/internal/delivery/http/response"
	"flint/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TileHandlerParams holds dependencies for TileHandler, injected by Fx.
type TileHandlerParams struct {
	fx.In

	Basemap service.BasemapService `optional:"true"`
	Logger  *slog.Logger
}

// TileHandler serves basemap vector tiles for the map screen.
type TileHandler struct {
	basemap service.BasemapService
	logger  *slog.Logger
}

// NewTileHandler is the constructor for TileHandler
func NewTileHandler(params TileHandlerParams) *TileHandler {
	return &TileHandler{
		basemap: params.Basemap,
		logger:  params.Logger,
	}
}

// GetTile handles serving one z/x/y vector tile
func (h *TileHandler) GetTile(c echo.Context) error {
	if h.basemap == nil {
		return response.NotFound(c, "BASEMAP_DISABLED", "Basemap is not configured")
	}

	z, errZ := strconv.Atoi(c.Param("z"))
	x, errX := strconv.Atoi(c.Param("x"))
	y, errY := strconv.Atoi(strings.TrimSuffix(c.Param("y"), ".mvt"))
	if errZ != nil || errX != nil || errY != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid tile coordinates")
	}

	data, contentType, found, err := h.basemap.Tile(c.Request().Context(), z, x, y)
	if err != nil {
		return handleAppError(c, err)
	}
	if !found {
		return response.NotFound(c, "TILE_NOT_FOUND", "No tile at these coordinates")
	}

	return c.Blob(http.StatusOK, contentType, data)
}
