package geom

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// LoadGeoJSON reads a GeoJSON file. See ParseGeoJSON.
func LoadGeoJSON(path string) (Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Data{}, errors.Wrap(err, "read geojson")
	}
	return ParseGeoJSON(b)
}

// ParseGeoJSON accepts a FeatureCollection, a single Feature or a bare
// geometry. Feature properties are kept in order.
func ParseGeoJSON(b []byte) (Data, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return Data{}, errors.Wrap(err, "invalid geojson")
	}
	var (
		d        Data
		features []*geojson.Feature
	)
	switch head.Type {
	case "":
		return Data{}, errors.New("invalid geojson: missing type")
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(b)
		if err != nil {
			return Data{}, errors.Wrap(err, "geojson feature collection")
		}
		features = fc.Features
	case "Feature":
		f, err := geojson.UnmarshalFeature(b)
		if err != nil {
			return Data{}, errors.Wrap(err, "geojson feature")
		}
		features = []*geojson.Feature{f}
	default:
		g, err := geojson.UnmarshalGeometry(b)
		if err != nil {
			return Data{}, errors.Wrapf(err, "geojson %s", head.Type)
		}
		d.addGeometry(g.Geometry())
	}

	seen := make(map[string]bool)
	for _, f := range features {
		d.addGeometry(f.Geometry)
		props := map[string]any(f.Properties)
		if props == nil {
			props = map[string]any{}
		}
		d.Properties = append(d.Properties, props)
		var keys []string
		for k := range props {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
		// map order is random; new keys of one feature go in sorted
		sort.Strings(keys)
		d.Fields = append(d.Fields, keys...)
	}
	if d.Empty() {
		return Data{}, errors.New("no geometries found")
	}
	return d, nil
}

// MarshalGeoJSON writes every geometry of d as its own feature.
func MarshalGeoJSON(d Data) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, g := range ToOrb(d) {
		fc.Append(geojson.NewFeature(g))
	}
	b, err := fc.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "marshal geojson")
	}
	return b, nil
}
