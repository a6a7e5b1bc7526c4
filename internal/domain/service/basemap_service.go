package service

import "context"

// BasemapService serves vector tiles for the map screen from a PMTiles
// archive.
type BasemapService interface {
	// Tile returns the tile bytes and content type for z/x/y, or
	// found=false when the archive has no tile there.
	Tile(ctx context.Context, z, x, y int) (data []byte, contentType string, found bool, err error)
}
