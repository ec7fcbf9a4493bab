package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"geoclip/internal/geom"
)

type fileItem struct {
	title string
	path  string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return strings.ToLower(filepath.Ext(f.path)) }
func (f fileItem) FilterValue() string { return f.title }

// refreshDir lists the loadable files of the working directory.
func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() || !geom.Supported(e.Name()) {
			continue
		}
		items = append(items, fileItem{title: e.Name(), path: filepath.Join(m.cwd, e.Name())})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).title < items[j].(fileItem).title })
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

func (m *Model) loadPath(p string) {
	d, err := geom.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.selPath = p
	m.setData(d)
	m.status = "loaded: " + filepath.Base(p) + "  " + countsLabel(d)
	if m.showAttrs {
		m.refreshAttrs()
	}
}
