package tiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSourcePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		source      string
		wantBucket  string
		wantTileset string
	}{
		{
			name:        "file URL",
			source:      "file:///var/lib/flint/basemap.pmtiles",
			wantBucket:  "file:///var/lib/flint",
			wantTileset: "basemap",
		},
		{
			name:        "bare path",
			source:      "/var/lib/flint/basemap.pmtiles",
			wantBucket:  "file:///var/lib/flint",
			wantTileset: "basemap",
		},
		{
			name:        "https URL",
			source:      "https://tiles.example.com/archives/city.pmtiles",
			wantBucket:  "https://tiles.example.com/archives",
			wantTileset: "city",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			bucket, tileset := parseSourcePath(tt.source)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantTileset, tileset)
		})
	}
}
