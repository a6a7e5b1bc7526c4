// Package tiles serves basemap vector tiles from a PMTiles archive.
package tiles

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"flint/config"
	"flint/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/protomaps/go-pmtiles/pmtiles"
	"go.uber.org/fx"
)

const defaultCacheSize = 64

// pmtilesBasemapService implements service.BasemapService on a PMTiles server.
type pmtilesBasemapService struct {
	server      *pmtiles.Server
	tilesetName string
	logger      *slog.Logger
}

// Params holds dependencies for the basemap service, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates the basemap service, or nothing when the basemap is disabled.
func New(params Params) (service.BasemapService, error) {
	cfg := params.Config.Basemap
	logger := params.Logger

	if cfg == nil || !cfg.Enabled {
		logger.Info("Basemap disabled, map tiles will not be served")

		return nil, nil
	}
	if cfg.Source == "" {
		return nil, errors.New("basemap source is required when enabled")
	}

	cacheSize := cfg.CacheSize
	if cacheSize == 0 {
		cacheSize = defaultCacheSize
	}

	bucketPath, tilesetName := parseSourcePath(cfg.Source)

	// The PMTiles server insists on a *log.Logger; keep it quiet and let
	// errors surface through the tile responses.
	silentLogger := log.New(io.Discard, "", 0)

	server, err := pmtiles.NewServer(bucketPath, "", silentLogger, cacheSize, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PMTiles server")
	}
	server.Start()

	logger.Info("Basemap service initialized",
		slog.String("source", cfg.Source),
		slog.String("tileset", tilesetName),
		slog.Int("cache_size", cacheSize),
	)

	return &pmtilesBasemapService{
		server:      server,
		tilesetName: tilesetName,
		logger:      logger,
	}, nil
}

// Tile returns the tile bytes and content type for z/x/y.
func (s *pmtilesBasemapService) Tile(ctx context.Context, z, x, y int) ([]byte, string, bool, error) {
	tilePath := fmt.Sprintf("/%s/%d/%d/%d.mvt", s.tilesetName, z, x, y)

	statusCode, headers, data := s.server.Get(ctx, tilePath)
	switch {
	case statusCode == http.StatusNotFound:
		return nil, "", false, nil
	case statusCode != http.StatusOK:
		return nil, "", false, errors.Errorf("unexpected tile status: %d", statusCode)
	}

	contentType := headers["Content-Type"]
	if contentType == "" {
		contentType = "application/x-protobuf"
	}

	return data, contentType, true, nil
}

// parseSourcePath extracts the bucket directory and tileset name from a
// source path. The PMTiles server expects a bucket and looks up
// {name}.pmtiles inside it.
func parseSourcePath(source string) (bucketPath, tilesetName string) {
	if strings.HasPrefix(source, "file://") {
		path := strings.TrimPrefix(source, "file://")

		return "file://" + filepath.Dir(path), strings.TrimSuffix(filepath.Base(path), ".pmtiles")
	}

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		lastSlash := strings.LastIndex(source, "/")
		if lastSlash > 0 {
			return source[:lastSlash], strings.TrimSuffix(source[lastSlash+1:], ".pmtiles")
		}
	}

	return "file://" + filepath.Dir(source), strings.TrimSuffix(filepath.Base(source), ".pmtiles")
}
