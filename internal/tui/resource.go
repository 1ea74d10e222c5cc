// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-inventory-keeper/internal/query"
	"github.com/MKhiriev/go-inventory-keeper/internal/service"
	"github.com/charmbracelet/bubbles/table"
)

// column is one table column. field is the sort parameter it selects.
type column struct {
	title string
	field string
	width int
}

// resourceTab is one list screen of the main window.
type resourceTab interface {
	name() string
	title() string
	columns() []column
	sync() *query.Synchronizer
	location() string
	fetch(ctx context.Context, refetch bool) pageLoadedMsg
	remove(ctx context.Context, id string) error
	close()
}

type listTab[T any] struct {
	resource string
	label    string
	cols     []column
	query    service.ListQuery[T]
	del      func(ctx context.Context, id string) error
	row      func(T) (id string, cells []string)
}

func (t *listTab[T]) name() string { return t.resource }

func (t *listTab[T]) title() string { return t.label }

func (t *listTab[T]) columns() []column { return t.cols }

func (t *listTab[T]) sync() *query.Synchronizer { return t.query.Synchronizer() }

func (t *listTab[T]) location() string { return t.sync().Location().String() }

// fetch loads the page of the current query state. A failed refetch still
// carries the stale rows kept by the cache.
func (t *listTab[T]) fetch(ctx context.Context, refetch bool) pageLoadedMsg {
	load := t.query.Result
	if refetch {
		load = t.query.Refetch
	}
	snap, err := load(ctx)

	msg := pageLoadedMsg{
		resource:   t.resource,
		state:      snap.State,
		pagination: snap.Value.Pagination,
		fetchedAt:  snap.FetchedAt,
		stale:      snap.Stale,
		err:        err,
		ids:        make([]string, 0, len(snap.Value.Items)),
		rows:       make([]table.Row, 0, len(snap.Value.Items)),
	}
	for _, item := range snap.Value.Items {
		id, cells := t.row(item)
		for i := range cells {
			cells[i] = orDash(clean(cells[i]))
		}
		msg.ids = append(msg.ids, id)
		msg.rows = append(msg.rows, cells)
	}
	return msg
}

func (t *listTab[T]) remove(ctx context.Context, id string) error {
	return t.del(ctx, id)
}

func (t *listTab[T]) close() {
	t.query.Close()
}
