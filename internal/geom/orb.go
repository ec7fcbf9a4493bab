package geom

import (
	"github.com/paulmach/orb"

	"geoclip/internal/planar"
)

func fromOrbPoint(p orb.Point) planar.Coordinate {
	return planar.Coordinate{X: p.X(), Y: p.Y()}
}

func fromOrbPoints(ps []orb.Point) []planar.Coordinate {
	out := make([]planar.Coordinate, len(ps))
	for i, p := range ps {
		out[i] = fromOrbPoint(p)
	}
	return out
}

func toOrbPoints(m planar.Multipoint) []orb.Point {
	coords := m.Coordinates()
	out := make([]orb.Point, len(coords))
	for i, c := range coords {
		out[i] = orb.Point{c.X, c.Y}
	}
	return out
}

func fromOrbPolygon(p orb.Polygon) [][]planar.Coordinate {
	rings := make([][]planar.Coordinate, len(p))
	for i, r := range p {
		rings[i] = fromOrbPoints(r)
	}
	return rings
}

// addGeometry flattens an orb geometry into d.
func (d *Data) addGeometry(g orb.Geometry) {
	switch g := g.(type) {
	case nil:
	case orb.Point:
		d.addPoint(fromOrbPoint(g))
	case orb.MultiPoint:
		for _, p := range g {
			d.addPoint(fromOrbPoint(p))
		}
	case orb.LineString:
		d.addLine(fromOrbPoints(g))
	case orb.MultiLineString:
		for _, l := range g {
			d.addLine(fromOrbPoints(l))
		}
	case orb.Ring:
		d.addPolygon([][]planar.Coordinate{fromOrbPoints(g)})
	case orb.Polygon:
		d.addPolygon(fromOrbPolygon(g))
	case orb.MultiPolygon:
		for _, p := range g {
			d.addPolygon(fromOrbPolygon(p))
		}
	case orb.Bound:
		d.addPolygon(fromOrbPolygon(g.ToPolygon()))
	case orb.Collection:
		for _, c := range g {
			d.addGeometry(c)
		}
	}
}

// ToOrb converts d into a collection of one geometry per point, line and
// polygon.
func ToOrb(d Data) orb.Collection {
	var c orb.Collection
	for _, p := range d.Points {
		c = append(c, orb.Point{p.X, p.Y})
	}
	for _, l := range d.Lines {
		c = append(c, orb.LineString(toOrbPoints(l)))
	}
	for _, poly := range d.Polygons {
		c = append(c, toOrbPolygon(poly))
	}
	return c
}

func toOrbPolygon(p Polygon) orb.Polygon {
	out := make(orb.Polygon, len(p.Rings))
	for i, r := range p.Rings {
		out[i] = orb.Ring(toOrbPoints(r))
	}
	return out
}
