// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/query"
	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
)

const defaultTableHeight = 10

// listModel is the view state of one resource tab.
type listModel struct {
	cols      []column
	table     table.Model
	search    textinput.Model
	spinner   spinner.Model
	searching bool
	loading   bool
	loaded    bool

	state      query.State
	ids        []string
	pagination models.Pagination
	fetchedAt  time.Time
	stale      bool
}

func newListModel(cols []column, state query.State) listModel {
	search := textinput.New()
	search.Placeholder = "search"
	search.CharLimit = 128
	search.Width = 40
	search.SetValue(state.Search)

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := listModel{
		cols:    cols,
		search:  search,
		spinner: s,
		state:   state,
		table: table.New(
			table.WithFocused(true),
			table.WithHeight(defaultTableHeight),
		),
	}
	m.table.SetColumns(m.tableColumns())
	return m
}

// tableColumns numbers the headers for the sort keys and marks the active
// sort column with its direction.
func (m listModel) tableColumns() []table.Column {
	out := make([]table.Column, 0, len(m.cols))
	for i, c := range m.cols {
		title := fmt.Sprintf("%d %s", i+1, c.title)
		if m.state.Sort == c.field {
			if m.state.Order == query.OrderAsc {
				title += " ▲"
			} else {
				title += " ▼"
			}
		}
		out = append(out, table.Column{Title: title, Width: max(c.width, len([]rune(title)))})
	}
	return out
}

// apply shows a loaded page. A failed load without a cached value empties
// the table.
func (m listModel) apply(msg pageLoadedMsg) listModel {
	m.loading = false
	m.loaded = true
	m.state = msg.state
	m.stale = msg.stale
	m.ids = msg.ids
	m.pagination = msg.pagination
	m.fetchedAt = msg.fetchedAt
	m.table.SetRows(msg.rows)
	m.table.SetColumns(m.tableColumns())
	if m.table.Cursor() >= len(msg.rows) {
		m.table.SetCursor(max(len(msg.rows)-1, 0))
	}
	return m
}

// selected returns the id and the first cell of the highlighted row.
func (m listModel) selected() (id, label string, ok bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.ids) {
		return "", "", false
	}
	row := m.table.SelectedRow()
	if len(row) > 0 {
		label = row[0]
	}
	return m.ids[i], label, true
}

// sortField returns the field of the n-th column, counting from 1.
func (m listModel) sortField(n int) (string, bool) {
	if n < 1 || n > len(m.cols) {
		return "", false
	}
	return m.cols[n-1].field, true
}

func (m listModel) summary() string {
	var parts []string

	pages := max(m.pagination.Pages, 1)
	parts = append(parts,
		fmt.Sprintf("page %d/%d", m.state.Page, pages),
		fmt.Sprintf("%d total", m.pagination.Total),
		fmt.Sprintf("limit %d", m.state.Limit),
		fmt.Sprintf("sort %s %s", m.state.Sort, m.state.Order),
	)
	if !m.fetchedAt.IsZero() {
		parts = append(parts, "fetched "+m.fetchedAt.Format(time.TimeOnly))
	}

	out := strings.Join(parts, " · ")
	if m.stale {
		out += "  " + staleStyle.Render("(stale)")
	}
	if m.loading {
		out += "  " + m.spinner.View()
	}
	return out
}

func (m listModel) View() string {
	var b strings.Builder

	b.WriteString("Search: ")
	if m.searching {
		b.WriteString(m.search.View())
	} else {
		b.WriteString(orDash(m.state.Search))
	}
	b.WriteString("\n\n")

	switch {
	case !m.loaded && m.loading:
		b.WriteString("Loading...\n")
	case len(m.ids) == 0:
		b.WriteString(m.table.View())
		b.WriteString("\nNo records\n")
	default:
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.summary())
	return b.String()
}
