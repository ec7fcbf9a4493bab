package tui

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// layout is the screen split shared by View and the mouse handler.
type layout struct {
	contentW int
	contentH int
	sidebarW int
	mapX     int
	mapY     int
	mapW     int
	mapH     int
}

func (m Model) layout() layout {
	l := layout{
		contentW: max(10, m.width),
		contentH: max(4, m.height-headerHeight-footerHeight),
		mapY:     headerHeight,
	}
	if m.showSidebar {
		l.sidebarW = sidebarWidth
		l.mapX = sidebarWidth + 1
	}
	l.mapW = max(10, l.contentW-l.sidebarW-1)
	l.mapH = l.contentH
	return l
}

// inMap reports whether a terminal cell is on the map canvas and returns
// it in canvas cells.
func (l layout) inMap(x, y int) (int, int, bool) {
	cx, cy := x-l.mapX, y-l.mapY
	return cx, cy, cx >= 0 && cx < l.mapW && cy >= 0 && cy < l.mapH
}
