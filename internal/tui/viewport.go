package tui

import "geoclip/internal/planar"

// viewport maps display-space coordinates onto the braille micro grid of a
// w x h cell canvas. Every cell holds 2x4 micro pixels.
type viewport struct {
	world planar.BoundingBox
	zoom  float64
	offX  int // cells
	offY  int // cells
	w, h  int
}

func (v viewport) valid() bool {
	return v.world.Width() > 0 && v.world.Height() > 0 && v.w > 1 && v.h > 1 && v.zoom > 0
}

// toMicro zooms around the world center, then pans.
func (v viewport) toMicro(c planar.Coordinate) (int, int) {
	nx := (c.X - v.world.LL.X) / v.world.Width()
	ny := (c.Y - v.world.LL.Y) / v.world.Height()
	zx := 0.5 + (nx-0.5)*v.zoom
	zy := 0.5 + (ny-0.5)*v.zoom
	mx := int(zx*float64(v.w*2-1)) + v.offX*2
	my := int((1-zy)*float64(v.h*4-1)) + v.offY*4
	return mx, my
}

// fromMicro inverts toMicro, up to truncation.
func (v viewport) fromMicro(mx, my int) planar.Coordinate {
	zx := float64(mx-v.offX*2) / float64(v.w*2-1)
	zy := 1 - float64(my-v.offY*4)/float64(v.h*4-1)
	nx := 0.5 + (zx-0.5)/v.zoom
	ny := 0.5 + (zy-0.5)/v.zoom
	return planar.Coordinate{
		X: v.world.LL.X + nx*v.world.Width(),
		Y: v.world.LL.Y + ny*v.world.Height(),
	}
}

// fromCell returns the world position under the center of a cell.
func (v viewport) fromCell(cx, cy int) planar.Coordinate {
	return v.fromMicro(cx*2, cy*4+1)
}

// visible is the world box shown on the canvas, one micro pixel wider on
// every side so that edges leaving the screen still reach its border.
func (v viewport) visible() planar.BoundingBox {
	return planar.BoundingBox{
		LL: v.fromMicro(-1, v.h*4),
		UR: v.fromMicro(v.w*2, -1),
	}
}

// padBounds widens a box with zero width or height so that it can be
// mapped onto the screen.
func padBounds(b planar.BoundingBox) planar.BoundingBox {
	if b.Width() == 0 {
		b.LL.X -= 0.5
		b.UR.X += 0.5
	}
	if b.Height() == 0 {
		b.LL.Y -= 0.5
		b.UR.Y += 0.5
	}
	return b
}
