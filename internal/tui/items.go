package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/superheroes/internal/ui"
	"github.com/idilsaglam/superheroes/internal/viewstate"
)

// heroItem adapts a view-state row to bubbles/list.Item.
// pos is the row's index in the fetched roster, which survives filtering.
type heroItem struct {
	row viewstate.Row
	pos int
}

func (i heroItem) Title() string       { return i.row.Name }
func (i heroItem) Description() string { return "" }
func (i heroItem) FilterValue() string { return i.row.Name }

func toItems(rows []viewstate.Row) []list.Item {
	items := make([]list.Item, 0, len(rows))
	for i, r := range rows {
		items = append(items, heroItem{row: r, pos: i})
	}
	return items
}

// heroDelegate renders one hero per line: cursor, badge cell, name.
type heroDelegate struct{}

func (d heroDelegate) Height() int                               { return 1 }
func (d heroDelegate) Spacing() int                              { return 0 }
func (d heroDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d heroDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(heroItem)
	if !ok {
		return
	}
	t := ui.Current()
	prefix := "  "
	name := it.row.Name
	if index == m.Index() {
		prefix = t.Selected.Render(t.SymSelected)
		name = t.Title.Render(name)
	}
	fmt.Fprintf(w, "%s%s %s", prefix, ui.BadgeCell(it.row.BadgeVisible), name)
}
