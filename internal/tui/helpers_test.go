// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/cache"
	"github.com/MKhiriev/go-inventory-keeper/internal/query"
	"github.com/MKhiriev/go-inventory-keeper/internal/service"
	"github.com/MKhiriev/go-inventory-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

type fakeQuery[T any] struct {
	sync      *query.Synchronizer
	result    models.ListResult[T]
	stale     bool
	err       error
	refetched int
}

func (q *fakeQuery[T]) snapshot() service.ListSnapshot[T] {
	return service.ListSnapshot[T]{
		State: q.sync.State(),
		Entry: cache.Entry[models.ListResult[T]]{Value: q.result, FetchedAt: time.Now(), Stale: q.stale},
	}
}

func (q *fakeQuery[T]) Result(context.Context) (service.ListSnapshot[T], error) {
	return q.snapshot(), q.err
}

func (q *fakeQuery[T]) Refetch(context.Context) (service.ListSnapshot[T], error) {
	q.refetched++
	return q.snapshot(), q.err
}

func (q *fakeQuery[T]) Synchronizer() *query.Synchronizer { return q.sync }

func (q *fakeQuery[T]) Close() { q.sync.Close() }

type fakeAuth struct {
	user     *models.User
	err      error
	email    string
	password string
	logouts  int
}

func (a *fakeAuth) Login(_ context.Context, email, password string) (*models.User, error) {
	a.email, a.password = email, password
	return a.user, a.err
}

func (a *fakeAuth) Logout(context.Context) error {
	a.logouts++
	return nil
}

func (a *fakeAuth) RestoreSession(context.Context) (bool, error) {
	return a.user != nil, nil
}

type fakeStats struct {
	mu          sync.Mutex
	completion  models.ProjectCompletion
	err         error
	ranges      []models.DateRange
	invalidated int
}

func (s *fakeStats) ProjectCompletion(_ context.Context, r models.DateRange) (cache.Entry[models.ProjectCompletion], error) {
	s.mu.Lock()
	s.ranges = append(s.ranges, r)
	s.mu.Unlock()
	return cache.Entry[models.ProjectCompletion]{Value: s.completion}, s.err
}

func (s *fakeStats) Users(context.Context, models.DateRange) (cache.Entry[models.UserStats], error) {
	return cache.Entry[models.UserStats]{Value: models.UserStats{Total: 3, Active: 2, Inactive: 1, ByRole: map[string]int{"admin": 1, "manager": 2}}}, nil
}

func (s *fakeStats) IncompleteProjects(context.Context, models.DateRange) (cache.Entry[models.IncompleteProjects], error) {
	return cache.Entry[models.IncompleteProjects]{Value: models.IncompleteProjects{Projects: []models.Project{{ID: "p1", Name: "Roof <b>repair</b>", Status: models.StatusPending}}}}, nil
}

func (s *fakeStats) ProductManager(context.Context, models.DateRange) (cache.Entry[models.ProductManagerStats], error) {
	return cache.Entry[models.ProductManagerStats]{Value: models.ProductManagerStats{Managers: []models.ManagerProducts{{ManagerID: "u1", ManagerName: "Ann", Products: 2, Quantity: 7}}}}, nil
}

func (s *fakeStats) Invalidate() { s.invalidated++ }

type testEnv struct {
	query   *fakeQuery[models.Client]
	auth    *fakeAuth
	stats   *fakeStats
	deleted []string
	copied  []string
}

var errBoom = errors.New("boom")

func newTestModel(t *testing.T, location string, signedIn bool) (appModel, *testEnv) {
	t.Helper()

	loc, err := query.ParseLocation(location)
	require.NoError(t, err)
	synchronizer := query.NewSynchronizer(loc)
	t.Cleanup(synchronizer.Close)

	env := &testEnv{
		query: &fakeQuery[models.Client]{sync: synchronizer},
		auth:  &fakeAuth{},
		stats: &fakeStats{},
	}
	tab := &listTab[models.Client]{
		resource: "clients",
		label:    "Clients",
		cols:     []column{nameColumn, emailColumn, createdColumn},
		query:    env.query,
		del: func(_ context.Context, id string) error {
			env.deleted = append(env.deleted, id)
			return nil
		},
		row: func(c models.Client) (string, []string) {
			return c.ID, []string{c.Name, c.Email, formatDate(c.CreatedAt)}
		},
	}

	m := newAppModel(context.Background(), modelConfig{
		auth:     env.auth,
		stats:    env.stats,
		tabs:     []resourceTab{tab},
		signedIn: signedIn,
		copy: func(s string) error {
			env.copied = append(env.copied, s)
			return nil
		},
		footer: "test",
	})
	return m, env
}

func clients(n int) []models.Client {
	out := make([]models.Client, 0, n)
	for i := range n {
		out = append(out, models.Client{ID: string(rune('a' + i)), Name: "Client " + string(rune('A'+i))})
	}
	return out
}

// load runs the fetch of the active tab and feeds the result back.
func load(t *testing.T, m appModel) appModel {
	t.Helper()
	msg, ok := m.cmdLoad(m.active, false)().(pageLoadedMsg)
	require.True(t, ok)
	return update(t, m, msg)
}

func update(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(appModel)
	require.True(t, ok)
	return out
}

func press(t *testing.T, m appModel, pressed ...string) appModel {
	t.Helper()
	for _, k := range pressed {
		m = update(t, m, keyMsg(k))
	}
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// messages runs cmd and the commands of a batch. It must only be used with
// commands that return immediately.
func messages(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, messages(c)...)
	}
	return out
}

func drainChanges(m appModel) []string {
	var out []string
	for {
		select {
		case name := <-m.changes:
			out = append(out, name)
		default:
			return out
		}
	}
}
