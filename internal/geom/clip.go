package geom

import (
	"go.uber.org/zap"

	"geoclip/internal/planar"
)

// ClipOptions tunes Clip.
type ClipOptions struct {
	// KeepContained keeps lines and polygons that lie wholly inside the
	// box. The kernel reports those as "nothing clipped" and drops them.
	KeepContained bool
}

// Clip cuts every geometry of d to box. Points are kept when the box
// contains them, lines are split into the runs inside the box, and each
// polygon becomes one polygon per clipped outer piece with the clipped
// holes that fall inside it. Fields and Properties are copied unchanged
// and are not realigned with the surviving geometries.
func Clip(d Data, box planar.BoundingBox, opts ClipOptions) Data {
	out := Data{Fields: d.Fields, Properties: d.Properties}
	for _, p := range d.Points {
		if box.Contains(p) {
			out.Points = append(out.Points, p)
		}
	}
	for _, l := range d.Lines {
		runs := l.ClipPolyline(box)
		if len(runs) == 0 && opts.KeepContained && inside(l, box) {
			runs = []planar.Multipoint{l}
		}
		out.Lines = append(out.Lines, runs...)
	}
	for _, poly := range d.Polygons {
		out.Polygons = append(out.Polygons, clipPolygon(poly, box, opts)...)
	}
	planar.Logger().Debug("dataset clipped",
		zap.Stringer("box", box),
		zap.Int("points", len(out.Points)),
		zap.Int("lines", len(out.Lines)),
		zap.Int("polygons", len(out.Polygons)),
	)
	return out
}

func clipPolygon(poly Polygon, box planar.BoundingBox, opts ClipOptions) []Polygon {
	pieces := clipRing(poly.Outer(), box, opts.KeepContained)
	if len(pieces) == 0 {
		return nil
	}
	out := make([]Polygon, len(pieces))
	for i, p := range pieces {
		out[i].Rings = []planar.Multipoint{p}
	}
	whole := planar.MultipointFromBoundingBox(box)
	for _, hole := range poly.Holes() {
		for _, h := range clipRing(hole, box, true) {
			if sameRing(h, whole) {
				// the box sits inside the hole
				return nil
			}
			first := h.Coordinates()[0]
			for i := range out {
				if out[i].Outer().Contains(first) {
					out[i].Rings = append(out[i].Rings, h)
					break
				}
			}
		}
	}
	return out
}

// clipRing clips one closed ring. Rings wholly inside the box are kept
// only when keep is set.
func clipRing(ring planar.Multipoint, box planar.BoundingBox, keep bool) []planar.Multipoint {
	if rings := ring.ClipPolygon(box); len(rings) > 0 {
		return rings
	}
	if keep && !box.IsDegenerate() && inside(ring, box) {
		return []planar.Multipoint{ring}
	}
	return nil
}

func inside(m planar.Multipoint, box planar.BoundingBox) bool {
	b, ok := m.BoundingBox()
	return ok && box.Contains(b.LL) && box.Contains(b.UR)
}

func sameRing(a, b planar.Multipoint) bool {
	ac, bc := a.Coordinates(), b.Coordinates()
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if ac[i] != bc[i] {
			return false
		}
	}
	return true
}
