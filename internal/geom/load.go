package geom

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"geoclip/internal/planar"
)

var loaders = map[string]func(string) (Data, error){
	".geojson": LoadGeoJSON,
	".json":    LoadGeoJSON,
	".csv":     LoadCSV,
	".kml":     LoadKML,
	".wkt":     loadWKT,
}

// Supported reports whether Load understands the file extension of path.
func Supported(path string) bool {
	_, ok := loaders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Load reads path with the loader picked by its extension.
func Load(path string) (Data, error) {
	ext := strings.ToLower(filepath.Ext(path))
	load, ok := loaders[ext]
	if !ok {
		return Data{}, errors.Errorf("unsupported file: %q", ext)
	}
	d, err := load(path)
	if err != nil {
		return Data{}, errors.Wrapf(err, "load %s", filepath.Base(path))
	}
	pts, lines, polys := d.Counts()
	planar.Logger().Debug("dataset loaded",
		zap.String("path", path),
		zap.Int("points", pts),
		zap.Int("lines", lines),
		zap.Int("polygons", polys),
	)
	return d, nil
}

func loadWKT(path string) (Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Data{}, errors.Wrap(err, "read wkt")
	}
	return ParseWKT(string(b))
}
