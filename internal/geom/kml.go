package geom

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"geoclip/internal/planar"
)

type kmlCoordinates struct {
	Coordinates string `xml:"coordinates"`
}

type kmlPolygon struct {
	Outer kmlCoordinates   `xml:"outerBoundaryIs>LinearRing"`
	Inner []kmlCoordinates `xml:"innerBoundaryIs>LinearRing"`
}

type kmlGeometries struct {
	Points      []kmlCoordinates `xml:"Point"`
	LineStrings []kmlCoordinates `xml:"LineString"`
	Polygons    []kmlPolygon     `xml:"Polygon"`
	Multi       []kmlGeometries  `xml:"MultiGeometry"`
}

type kmlPlacemark struct {
	Name        string `xml:"name"`
	Description string `xml:"description"`
	kmlGeometries
}

// LoadKML reads a KML file. See ParseKML.
func LoadKML(path string) (Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Data{}, errors.Wrap(err, "read kml")
	}
	return ParseKML(b)
}

// ParseKML extracts Point, LineString and Polygon geometries from every
// Placemark, at any depth of Document and Folder nesting. KML coordinates
// are "lon,lat[,alt]"; altitude is ignored.
func ParseKML(b []byte) (Data, error) {
	var d Data
	dec := xml.NewDecoder(bytes.NewReader(b))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Data{}, errors.Wrap(err, "kml")
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "Placemark" {
			continue
		}
		var pm kmlPlacemark
		if err := dec.DecodeElement(&pm, &start); err != nil {
			return Data{}, errors.Wrap(err, "kml placemark")
		}
		d.addKMLGeometries(pm.kmlGeometries)
		d.Properties = append(d.Properties, map[string]any{
			"name":        pm.Name,
			"description": strings.TrimSpace(pm.Description),
		})
	}
	if d.Empty() {
		return Data{}, errors.New("kml: no geometries found")
	}
	d.Fields = []string{"name", "description"}
	return d, nil
}

func (d *Data) addKMLGeometries(g kmlGeometries) {
	for _, p := range g.Points {
		for _, c := range parseKMLCoordinates(p.Coordinates) {
			d.addPoint(c)
		}
	}
	for _, l := range g.LineStrings {
		d.addLine(parseKMLCoordinates(l.Coordinates))
	}
	for _, p := range g.Polygons {
		rings := [][]planar.Coordinate{parseKMLCoordinates(p.Outer.Coordinates)}
		for _, in := range p.Inner {
			rings = append(rings, parseKMLCoordinates(in.Coordinates))
		}
		d.addPolygon(rings)
	}
	for _, m := range g.Multi {
		d.addKMLGeometries(m)
	}
}

// parseKMLCoordinates reads whitespace separated tuples, skipping bad ones.
func parseKMLCoordinates(s string) []planar.Coordinate {
	var out []planar.Coordinate
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			planar.Logger().Debug("kml: skipping tuple", zap.String("tuple", tuple))
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			planar.Logger().Debug("kml: skipping tuple", zap.String("tuple", tuple))
			continue
		}
		out = append(out, planar.Coordinate{X: lon, Y: lat})
	}
	return out
}
