package tui

import (
	"fmt"
	"path/filepath"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"
)

const maxColumnWidth = 24

// refreshAttrs rebuilds the attribute table from the current dataset.
func (m *Model) refreshAttrs() {
	cols, rows := m.attributes()
	if len(cols) == 0 || len(rows) == 0 {
		m.showAttrs = false
		m.status = "no attributes for current dataset"
		return
	}
	tcols := make([]table.Column, 0, len(cols)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 4})
	for _, c := range cols {
		tcols = append(tcols, table.Column{Title: c, Width: min(len(c)+2, maxColumnWidth)})
	}
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		row := make(table.Row, len(tcols))
		row[0] = strconv.Itoa(i + 1)
		copy(row[1:], r)
		trows = append(trows, row)
	}
	// rows first: the table renders on SetColumns
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
	if m.clipped && len(m.data.Properties) > 0 {
		m.status = "attributes as loaded; rows do not follow the clip"
	}
}

// attributes falls back to a one row summary for data without properties.
func (m Model) attributes() ([]string, [][]string) {
	if cols, rows := m.data.Attributes(); len(cols) > 0 {
		return cols, rows
	}
	if m.data.Empty() {
		return nil, nil
	}
	b, _ := m.data.Bounds()
	p, l, g := m.data.Counts()
	name := filepath.Base(m.selPath)
	if m.selPath == "" {
		name = "<unsaved>"
	}
	return []string{"name", "bbox", "points", "lines", "polygons"}, [][]string{{
		name,
		fmt.Sprintf("[%.5f,%.5f,%.5f,%.5f]", b.LL.X, b.LL.Y, b.UR.X, b.UR.Y),
		strconv.Itoa(p), strconv.Itoa(l), strconv.Itoa(g),
	}}
}
