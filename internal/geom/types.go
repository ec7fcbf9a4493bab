package geom

import (
	"geoclip/internal/planar"
)

// Polygon is an outer ring followed by its holes. Every ring is closed.
type Polygon struct {
	Rings []planar.Multipoint
}

// Outer returns the first ring.
func (p Polygon) Outer() planar.Multipoint {
	if len(p.Rings) == 0 {
		return planar.Multipoint{}
	}
	return p.Rings[0]
}

func (p Polygon) Holes() []planar.Multipoint {
	if len(p.Rings) < 2 {
		return nil
	}
	return p.Rings[1:]
}

// Data is the geometry container shared by the loaders, the clipper and
// the viewer.
type Data struct {
	Points   []planar.Coordinate
	Lines    []planar.Multipoint
	Polygons []Polygon

	// Fields orders the attribute columns; Properties holds one row per
	// loaded feature. Both are informational: Clip copies them as is, so
	// after clipping row i no longer belongs to geometry i.
	Fields     []string
	Properties []map[string]any
}

func (d Data) Empty() bool {
	return len(d.Points) == 0 && len(d.Lines) == 0 && len(d.Polygons) == 0
}

func (d Data) Counts() (points, lines, polygons int) {
	return len(d.Points), len(d.Lines), len(d.Polygons)
}

// Bounds returns the box around every vertex. It is false for empty data.
func (d Data) Bounds() (planar.BoundingBox, bool) {
	var (
		b  planar.BoundingBox
		ok bool
	)
	add := func(p planar.Coordinate) {
		if !ok {
			b = planar.BoundingBox{LL: p, UR: p}
			ok = true
			return
		}
		b.LL.X = min(b.LL.X, p.X)
		b.LL.Y = min(b.LL.Y, p.Y)
		b.UR.X = max(b.UR.X, p.X)
		b.UR.Y = max(b.UR.Y, p.Y)
	}
	for _, p := range d.Points {
		add(p)
	}
	for _, l := range d.Lines {
		if lb, has := l.BoundingBox(); has {
			add(lb.LL)
			add(lb.UR)
		}
	}
	for _, poly := range d.Polygons {
		if lb, has := poly.Outer().BoundingBox(); has {
			add(lb.LL)
			add(lb.UR)
		}
	}
	return b, ok
}

func (d *Data) addPoint(p planar.Coordinate) {
	d.Points = append(d.Points, p)
}

func (d *Data) addLine(coords []planar.Coordinate) {
	if len(coords) < 2 {
		planar.Logger().Debug("skipping short line")
		return
	}
	d.Lines = append(d.Lines, planar.NewMultipoint(coords))
}

// addPolygon closes open rings. A polygon whose outer ring is too short is
// dropped; so are short holes.
func (d *Data) addPolygon(rings [][]planar.Coordinate) {
	var poly Polygon
	for i, coords := range rings {
		ring, ok := closeRing(coords)
		if !ok {
			planar.Logger().Debug("skipping short ring")
			if i == 0 {
				return
			}
			continue
		}
		poly.Rings = append(poly.Rings, ring)
	}
	if len(poly.Rings) > 0 {
		d.Polygons = append(d.Polygons, poly)
	}
}

func closeRing(coords []planar.Coordinate) (planar.Multipoint, bool) {
	if len(coords) > 0 && coords[0] != coords[len(coords)-1] {
		coords = append(coords[:len(coords):len(coords)], coords[0])
	}
	if len(coords) < 4 {
		return planar.Multipoint{}, false
	}
	return planar.NewMultipoint(coords), true
}

// mapCoordinates applies f to every vertex.
func (d Data) mapCoordinates(f func(planar.Coordinate) planar.Coordinate) Data {
	mapAll := func(m planar.Multipoint) planar.Multipoint {
		coords := m.Coordinates()
		for i := range coords {
			coords[i] = f(coords[i])
		}
		return planar.NewMultipoint(coords)
	}
	out := Data{Fields: d.Fields, Properties: d.Properties}
	for _, p := range d.Points {
		out.Points = append(out.Points, f(p))
	}
	for _, l := range d.Lines {
		out.Lines = append(out.Lines, mapAll(l))
	}
	for _, poly := range d.Polygons {
		var mapped Polygon
		for _, r := range poly.Rings {
			mapped.Rings = append(mapped.Rings, mapAll(r))
		}
		out.Polygons = append(out.Polygons, mapped)
	}
	return out
}
