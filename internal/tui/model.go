// Package tui is the terminal viewer: a braille map of the loaded dataset,
// clipped to the viewport before it is drawn.
package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"geoclip/internal/config"
	"geoclip/internal/geom"
	"geoclip/internal/planar"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// file explorer
	cwd     string
	l       list.Model
	selPath string

	// data is the dataset as loaded; display is data in screen space,
	// projected when mercator is on.
	data      geom.Data
	clipped   bool
	display   geom.Data
	bounds    planar.BoundingBox
	hasBounds bool

	mercator      bool
	clipView      bool
	keepContained bool

	pasteMode bool
	ta        textarea.Model

	showPoints bool
	showLines  bool
	showPolys  bool

	inspectPopup string

	// hover state, in micro pixels of the map canvas
	hovering  bool
	hoverMicX int
	hoverMicY int
	hoverGeo  bool
	hoverAt   planar.Coordinate

	showAttrs bool
	tbl       table.Model
}

func New(cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	m := Model{
		helpVisible:   true,
		zoom:          cfg.View.Zoom,
		status:        "geoclip ready",
		mercator:      cfg.View.Mercator,
		clipView:      cfg.View.ClipToViewport,
		keepContained: cfg.Clip.KeepContained,
		showPoints:    true,
		showLines:     true,
		showPolys:     true,
	}
	m.cwd, _ = os.Getwd()

	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)

	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here. Enter renders, Esc cancels."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)

	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a file at launch.
func NewWithPath(cfg *config.Config, path string) Model {
	m := New(cfg)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Run starts the full-screen program and blocks until it quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}

// setData replaces the dataset and shows the layers it has, preferring
// polygons.
func (m *Model) setData(d geom.Data) {
	m.data = d
	m.clipped = false
	m.offsetX, m.offsetY = 0, 0
	m.showPolys = len(d.Polygons) > 0
	m.showLines = len(d.Lines) > 0
	m.showPoints = len(d.Points) > 0
	m.inspectPopup = ""
	m.refreshDisplay()
}

func (m *Model) refreshDisplay() {
	m.display = m.data
	if m.mercator {
		m.display = geom.ProjectMercator(m.data)
	}
	b, ok := m.display.Bounds()
	m.bounds, m.hasBounds = padBounds(b), ok
}

// toGeo converts a display-space position back to data coordinates.
func (m Model) toGeo(c planar.Coordinate) planar.Coordinate {
	if m.mercator {
		c.Y = planar.SphericalMercatorLatitudeProjection(c.Y)
	}
	return c
}

func (m Model) viewport() viewport {
	l := m.layout()
	return viewport{world: m.bounds, zoom: m.zoom, offX: m.offsetX, offY: m.offsetY, w: l.mapW, h: l.mapH}
}
