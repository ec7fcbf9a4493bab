package tui

import (
	"sort"
	"strings"
)

// brailleBuf is a w x h cell canvas; each cell is one braille rune whose
// eight dots are addressed as a 2x4 micro grid.
type brailleBuf struct {
	w, h int
	dots [][]uint8
}

// dot bits by micro column and row, in Unicode braille order
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

func newBrailleBuf(w, h int) *brailleBuf {
	dots := make([][]uint8, h)
	for i := range dots {
		dots[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, dots: dots}
}

// set lights a micro pixel. Pixels off the canvas are ignored.
func (b *brailleBuf) set(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= b.w || cy >= b.h {
		return
	}
	b.dots[cy][cx] |= dotBits[mx%2][my%4]
}

// line draws with Bresenham.
func (b *brailleBuf) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	e := dx + dy
	for {
		b.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// fill paints the even-odd interior of the closed micro rings, so holes
// stay empty.
func (b *brailleBuf) fill(rings [][][2]int) {
	var xs []int
	for my := 0; my < b.h*4; my++ {
		xs = xs[:0]
		for _, r := range rings {
			for i := range r {
				p, q := r[i], r[(i+1)%len(r)]
				if p[1] == q[1] {
					continue
				}
				if (my >= p[1] && my < q[1]) || (my >= q[1] && my < p[1]) {
					t := float64(my-p[1]) / float64(q[1]-p[1])
					xs = append(xs, p[0]+int(t*float64(q[0]-p[0])))
				}
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for mx := max(0, xs[i]); mx <= min(xs[i+1], b.w*2-1); mx++ {
				b.set(mx, my)
			}
		}
	}
}

func (b *brailleBuf) lines() []string {
	out := make([]string, b.h)
	var sb strings.Builder
	for y, row := range b.dots {
		sb.Reset()
		for _, mask := range row {
			if mask == 0 {
				sb.WriteRune(' ')
				continue
			}
			sb.WriteRune(rune(0x2800 + int(mask)))
		}
		out[y] = sb.String()
	}
	return out
}
