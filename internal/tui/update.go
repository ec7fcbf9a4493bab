package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"geoclip/internal/geom"
	"geoclip/internal/planar"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
		}
	case tea.KeyMsg:
		// an active list filter takes every key
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if quit := m.handleKey(msg.String()); quit {
			return m, tea.Quit
		}
	case tea.MouseMsg:
		m.hover(msg.X, msg.Y)
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	case "enter":
		w := strings.TrimSpace(m.ta.Value())
		if w == "" {
			m.status = "paste: empty"
			return m, nil
		}
		d, err := geom.ParseWKT(w)
		if err != nil {
			m.status = "wkt error: " + err.Error()
			return m, nil
		}
		m.selPath = ""
		m.zoom = 1
		m.setData(d)
		m.status = "rendered WKT  " + countsLabel(d)
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// handleKey applies a view-mode key and reports whether to quit.
func (m *Model) handleKey(key string) bool {
	switch key {
	case "ctrl+c", "q":
		return true
	case "1":
		m.showPoints = !m.showPoints
		m.status = fmt.Sprintf("points: %v", m.showPoints)
	case "2":
		m.showLines = !m.showLines
		m.status = fmt.Sprintf("lines: %v", m.showLines)
	case "3":
		m.showPolys = !m.showPolys
		m.status = fmt.Sprintf("polys: %v", m.showPolys)
	case "l":
		all := m.showPoints && m.showLines && m.showPolys
		m.showPoints, m.showLines, m.showPolys = !all, !all, !all
		m.status = fmt.Sprintf("layers: pts=%v ls=%v poly=%v", m.showPoints, m.showLines, m.showPolys)
	case "+", "=":
		if m.zoom < 64 {
			m.zoom *= 1.2
			m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
		}
	case "-", "_":
		if m.zoom > 0.05 {
			m.zoom /= 1.2
			m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
		}
	case "up":
		m.offsetY--
	case "down":
		m.offsetY++
	case "left":
		m.offsetX -= 2
	case "right":
		m.offsetX += 2
	case "m":
		m.mercator = !m.mercator
		m.refreshDisplay()
		m.status = fmt.Sprintf("mercator: %v", m.mercator)
	case "v":
		m.clipView = !m.clipView
		m.status = fmt.Sprintf("clip to viewport: %v", m.clipView)
	case "c":
		m.clipToViewport()
	case "tab":
		m.showSidebar = !m.showSidebar
		if m.showSidebar {
			m.refreshDir()
			m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
		}
	case "p":
		m.pasteMode = !m.pasteMode
		if m.pasteMode {
			m.ta.SetValue("")
			m.status = "paste mode"
			m.ta.Focus()
		} else {
			m.status = "view mode"
			m.ta.Blur()
		}
	case "h":
		m.helpVisible = !m.helpVisible
	case "a":
		m.showAttrs = !m.showAttrs
		if m.showAttrs {
			m.refreshAttrs()
		}
	case "i":
		m.inspect()
	case "enter":
		if m.showSidebar {
			if it, ok := m.l.SelectedItem().(fileItem); ok {
				m.loadPath(it.path)
			}
		}
	}
	return false
}

// clipToViewport replaces the dataset with its part inside the visible box.
func (m *Model) clipToViewport() {
	v := m.viewport()
	if !m.hasBounds || !v.valid() {
		m.status = "clip: nothing to clip"
		return
	}
	vis := v.visible()
	box := planar.BoundingBox{LL: m.toGeo(vis.LL), UR: m.toGeo(vis.UR)}
	d := geom.Clip(m.data, box, geom.ClipOptions{KeepContained: m.keepContained})
	if d.Empty() {
		m.status = "clip: viewport is empty"
		return
	}
	m.zoom = 1
	m.setData(d)
	m.clipped = true
	m.status = "clipped to " + box.String() + "  " + countsLabel(d)
}

func (m *Model) hover(x, y int) {
	l := m.layout()
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, l.contentH-2)
	}
	cx, cy, ok := l.inMap(x, y)
	if !ok {
		m.hovering = false
		return
	}
	m.hovering = true
	v := m.viewport()
	if !m.hasBounds || !v.valid() {
		m.hoverGeo = false
		return
	}
	m.hoverGeo = true
	m.hoverAt = m.toGeo(v.fromCell(cx, cy))
	m.hoverMicX, m.hoverMicY = cx*2, cy*4
	if _, bx, by, found := nearestVertex(m.visibleData(v), v, cx*2, cy*4); found {
		m.hoverMicX, m.hoverMicY = bx, by
	}
}

// inspect describes the vertex drawn nearest to the map center.
func (m *Model) inspect() {
	v := m.viewport()
	if !m.hasBounds || !v.valid() {
		m.inspectPopup = "no feature nearby"
		m.status = m.inspectPopup
		return
	}
	at, _, _, ok := nearestVertex(m.display, v, v.w, v.h*2)
	if !ok {
		m.inspectPopup = "no feature nearby"
		m.status = m.inspectPopup
		return
	}
	at = m.toGeo(at)
	name := filepath.Base(m.selPath)
	if m.selPath == "" {
		name = "<unsaved>"
	}
	b, _ := m.data.Bounds()
	m.inspectPopup = strings.Join([]string{
		"name: " + name,
		"path: " + m.selPath,
		fmt.Sprintf("bbox: [%.5f, %.5f, %.5f, %.5f]", b.LL.X, b.LL.Y, b.UR.X, b.UR.Y),
		countsLabel(m.data),
		fmt.Sprintf("nearest: lon=%.6f lat=%.6f", at.X, at.Y),
		fmt.Sprintf("projection: %s", projectionName(m.mercator)),
	}, "\n")
	m.status = "inspect popup"
}

func countsLabel(d geom.Data) string {
	p, l, g := d.Counts()
	return fmt.Sprintf("counts: pts=%d ls=%d poly=%d", p, l, g)
}

func projectionName(mercator bool) string {
	if mercator {
		return "spherical mercator"
	}
	return "plate carrée"
}
