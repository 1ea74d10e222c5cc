// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSynchronizer(t *testing.T, raw string) (*Synchronizer, *MemoryLocation, *fakeClock) {
	t.Helper()
	loc, err := ParseLocation(raw)
	require.NoError(t, err)
	clock := &fakeClock{}
	s := NewSynchronizer(loc, WithClock(clock))
	t.Cleanup(s.Close)
	return s, loc, clock
}

func TestSynchronizer_SetPage(t *testing.T) {
	s, loc, _ := newTestSynchronizer(t, "/projects?limit=20")

	s.SetPage(4)
	assert.Equal(t, 4, s.State().Page)
	assert.Equal(t, 20, s.State().Limit)

	for _, p := range []int{0, -3} {
		s.SetPage(p)
		assert.Equal(t, 1, s.State().Page)
	}
	assert.Equal(t, "/projects?limit=20&page=1", loc.String())
}

func TestSynchronizer_SetLimitResetsPage(t *testing.T) {
	tests := []struct{ in, want int }{{25, 25}, {0, 1}, {1000, 100}}

	for _, tt := range tests {
		s, _, _ := newTestSynchronizer(t, "/projects?page=5")
		s.SetLimit(tt.in)

		state := s.State()
		assert.Equal(t, tt.want, state.Limit)
		assert.Equal(t, 1, state.Page)
	}
}

func TestSynchronizer_SearchIsDebounced(t *testing.T) {
	s, loc, clock := newTestSynchronizer(t, "/clients?page=3")

	var commits []State
	s.OnChange(func(st State) { commits = append(commits, st) })

	s.Search("a")
	clock.Advance(100 * time.Millisecond)
	s.Search("ac")
	clock.Advance(100 * time.Millisecond)
	s.Search("  acme  ")
	assert.True(t, s.Pending())

	clock.Advance(299 * time.Millisecond)
	assert.Empty(t, commits, "nothing is committed inside the quiet period")
	assert.Equal(t, 3, s.State().Page)

	clock.Advance(time.Millisecond)
	require.Len(t, commits, 1)
	assert.Equal(t, "acme", commits[0].Search)
	assert.Equal(t, 1, commits[0].Page)
	assert.False(t, s.Pending())
	assert.Equal(t, "/clients?page=1&search=acme", loc.String())
}

func TestSynchronizer_EmptySearchRemovesParameter(t *testing.T) {
	s, loc, clock := newTestSynchronizer(t, "/clients?search=acme&page=2")

	s.Search("   ")
	clock.Advance(DefaultSearchDebounce)

	assert.Empty(t, s.State().Search)
	assert.Equal(t, "/clients?page=1", loc.String())
}

func TestSynchronizer_SearchNow(t *testing.T) {
	s, _, clock := newTestSynchronizer(t, "/clients")

	s.Search("slow")
	s.SearchNow("fast")
	assert.Equal(t, "fast", s.State().Search)

	clock.Advance(time.Second)
	assert.Equal(t, "fast", s.State().Search, "the superseded pending search never lands")
}

func TestSynchronizer_CloseCancelsPendingSearch(t *testing.T) {
	s, loc, clock := newTestSynchronizer(t, "/clients?page=2")

	called := false
	s.OnChange(func(State) { called = true })

	s.Search("late")
	s.Close()
	clock.Advance(time.Second)

	assert.False(t, called)
	assert.Equal(t, "/clients?page=2", loc.String())

	s.SetPage(9)
	assert.Equal(t, 2, s.State().Page, "writes after close are ignored")
}

func TestSynchronizer_SetSort(t *testing.T) {
	s, _, _ := newTestSynchronizer(t, "/projects?page=3")

	s.SetSort("name")
	st := s.State()
	assert.Equal(t, "name", st.Sort)
	assert.Equal(t, OrderDesc, st.Order)
	assert.Equal(t, 1, st.Page)

	s.SetPage(2)
	s.SetSort("name")
	st = s.State()
	assert.Equal(t, OrderAsc, st.Order, "re-selecting the field flips the order")
	assert.Equal(t, 1, st.Page)

	s.SetSort("name")
	assert.Equal(t, OrderDesc, s.State().Order)

	s.SetSort("budget")
	st = s.State()
	assert.Equal(t, "budget", st.Sort)
	assert.Equal(t, OrderDesc, st.Order, "a new field starts descending")
}

func TestSynchronizer_SetSortOnDefaultField(t *testing.T) {
	s, _, _ := newTestSynchronizer(t, "/projects")

	s.SetSort(DefaultSort)
	assert.Equal(t, OrderAsc, s.State().Order)
}

func TestSynchronizer_SetSortConcurrent(t *testing.T) {
	s, _, _ := newTestSynchronizer(t, "/projects?sort=name&order=desc")

	var mu sync.Mutex
	var orders []Order
	s.OnChange(func(st State) {
		mu.Lock()
		orders = append(orders, st.Order)
		mu.Unlock()
	})

	const flips = 51
	var wg sync.WaitGroup
	for range flips {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.SetSort("name")
		}()
	}
	wg.Wait()

	assert.Equal(t, OrderAsc, s.State().Order, "every call flips the order exactly once")
	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, orders, flips)
}

func TestSynchronizer_SetFilter(t *testing.T) {
	s, loc, _ := newTestSynchronizer(t, "/users?page=4")

	s.SetFilter("role", "admin")
	st := s.State()
	assert.Equal(t, map[string]string{"role": "admin"}, st.Filters)
	assert.Equal(t, 1, st.Page)

	s.SetFilter("role", "")
	assert.Nil(t, s.State().Filters)

	s.SetFilter("page", "7")
	assert.Equal(t, "/users?page=1", loc.String(), "reserved keys are not filters")
}

func TestSynchronizer_Reset(t *testing.T) {
	s, loc, clock := newTestSynchronizer(t, "/projects")
	s.Update(map[string]string{"page": "2", "limit": "10", "search": "abc", "sort": "name", "order": "asc"})

	var got []State
	s.OnChange(func(st State) { got = append(got, st) })

	s.Search("pending")
	s.Reset()
	clock.Advance(time.Second)

	assert.Equal(t, DefaultState(), s.State())
	assert.Equal(t, "/projects", loc.String())
	assert.Empty(t, loc.Query())
	require.Len(t, got, 1, "reset is a single write and cancels the pending search")
	assert.Equal(t, DefaultState(), got[0])
}

func TestSynchronizer_UpdateMergesAndDeletes(t *testing.T) {
	s, loc, _ := newTestSynchronizer(t, "/projects?sort=name&search=x")

	s.Update(map[string]string{"search": "", "order": "asc"})
	assert.Equal(t, "/projects?order=asc&sort=name", loc.String())
}

func TestSynchronizer_Unsubscribe(t *testing.T) {
	s, _, _ := newTestSynchronizer(t, "/projects")

	calls := 0
	unsubscribe := s.OnChange(func(State) { calls++ })
	s.SetPage(2)
	unsubscribe()
	s.SetPage(3)

	assert.Equal(t, 1, calls)
}

func TestSynchronizer_RealClock(t *testing.T) {
	loc := NewLocation("/projects")
	s := NewSynchronizer(loc, WithDebounce(10*time.Millisecond))
	defer s.Close()

	var wg sync.WaitGroup
	wg.Add(1)
	s.OnChange(func(State) { wg.Done() })

	s.Search("roof")
	wg.Wait()
	assert.Equal(t, "roof", s.State().Search)
}
