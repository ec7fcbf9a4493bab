package tui

import (
	"strings"

	"geoclip/internal/geom"
	"geoclip/internal/planar"
)

// visibleData is the display dataset, clipped to the viewport when
// clipping is on.
func (m Model) visibleData(v viewport) geom.Data {
	if !m.clipView {
		return m.display
	}
	return geom.Clip(m.display, v.visible(), geom.ClipOptions{KeepContained: true})
}

func (m Model) renderMap(w, h int) string {
	v := m.viewport()
	v.w, v.h = w, h
	br := newBrailleBuf(w, h)
	if m.hasBounds && v.valid() {
		drawData(br, v, m.visibleData(v), m.showPoints, m.showLines, m.showPolys)
	}
	lines := br.lines()
	if m.hovering {
		cx, cy := m.hoverMicX/2, m.hoverMicY/4
		if cy >= 0 && cy < len(lines) {
			r := []rune(lines[cy])
			if cx >= 0 && cx < len(r) {
				lines[cy] = string(r[:cx]) + hoverStyle.Render("◯") + string(r[cx+1:])
			}
		}
	}
	return strings.Join(lines, "\n")
}

func drawData(br *brailleBuf, v viewport, d geom.Data, points, lines, polys bool) {
	if polys {
		for _, poly := range d.Polygons {
			var rings [][][2]int
			for _, r := range poly.Rings {
				if mr := microRing(v, r); len(mr) >= 3 {
					rings = append(rings, mr)
				}
			}
			br.fill(rings)
			for _, r := range rings {
				for i := range r {
					p, q := r[i], r[(i+1)%len(r)]
					br.line(p[0], p[1], q[0], q[1])
				}
			}
		}
	}
	if lines {
		for _, l := range d.Lines {
			mr := microRing(v, l)
			for i := 1; i < len(mr); i++ {
				br.line(mr[i-1][0], mr[i-1][1], mr[i][0], mr[i][1])
			}
		}
	}
	if points {
		for _, p := range d.Points {
			br.set(v.toMicro(p))
		}
	}
}

func microRing(v viewport, m planar.Multipoint) [][2]int {
	coords := m.Coordinates()
	out := make([][2]int, 0, len(coords))
	for _, c := range coords {
		x, y := v.toMicro(c)
		out = append(out, [2]int{x, y})
	}
	return out
}

// eachVertex calls f for every point and every line and ring vertex.
func eachVertex(d geom.Data, f func(planar.Coordinate)) {
	for _, p := range d.Points {
		f(p)
	}
	for _, l := range d.Lines {
		for _, c := range l.Coordinates() {
			f(c)
		}
	}
	for _, poly := range d.Polygons {
		for _, r := range poly.Rings {
			for _, c := range r.Coordinates() {
				f(c)
			}
		}
	}
}

// nearestVertex finds the vertex drawn closest to micro pixel (mx, my).
func nearestVertex(d geom.Data, v viewport, mx, my int) (planar.Coordinate, int, int, bool) {
	best := -1
	var (
		at     planar.Coordinate
		bx, by int
	)
	eachVertex(d, func(c planar.Coordinate) {
		x, y := v.toMicro(c)
		dx, dy := x-mx, y-my
		if dd := dx*dx + dy*dy; best < 0 || dd < best {
			best, at, bx, by = dd, c, x, y
		}
	})
	return at, bx, by, best >= 0
}
