package geom

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"geoclip/internal/planar"
)

// LoadCSV reads a CSV file. See ParseCSV.
func LoadCSV(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, errors.Wrap(err, "open csv")
	}
	defer f.Close()
	return ParseCSV(f)
}

// ParseCSV reads points from latitude/longitude columns, detected by the
// header names lat|latitude|y and lon|lng|long|longitude|x (any case).
// Every row becomes a property row keyed by the header.
func ParseCSV(r io.Reader) (Data, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return Data{}, errors.Wrap(err, "csv")
	}
	if len(recs) == 0 {
		return Data{}, errors.New("empty csv")
	}
	header := recs[0]
	idxLat, idxLon := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "lat", "latitude", "y":
			if idxLat == -1 {
				idxLat = i
			}
		case "lon", "lng", "long", "longitude", "x":
			if idxLon == -1 {
				idxLon = i
			}
		}
	}
	if idxLat == -1 || idxLon == -1 {
		return Data{}, errors.New("csv: latitude/longitude columns not found")
	}

	d := Data{Fields: header}
	for n, row := range recs[1:] {
		if idxLon >= len(row) || idxLat >= len(row) {
			planar.Logger().Debug("csv: short row", zap.Int("row", n+2))
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(row[idxLon]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(row[idxLat]), 64)
		if err1 != nil || err2 != nil {
			planar.Logger().Debug("csv: unparsable coordinates", zap.Int("row", n+2))
			continue
		}
		d.addPoint(planar.Coordinate{X: lon, Y: lat})
		props := make(map[string]any, len(header))
		for i, h := range header {
			if i < len(row) {
				props[h] = row[i]
			}
		}
		d.Properties = append(d.Properties, props)
	}
	if d.Empty() {
		return Data{}, errors.New("csv: no valid points parsed")
	}
	return d, nil
}
