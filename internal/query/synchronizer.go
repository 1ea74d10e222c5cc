// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
)

// DefaultSearchDebounce is the quiet period before typed search text is
// committed.
const DefaultSearchDebounce = 300 * time.Millisecond

// Listener is called with the new state after every committed write.
type Listener func(State)

// Synchronizer maps list interactions onto its [Location]. It is safe for
// concurrent use; listeners run outside the lock, on the goroutine that
// committed the write (the debounce timer for search).
type Synchronizer struct {
	mu        sync.Mutex
	location  Location
	clock     Clock
	debounce  time.Duration
	pending   Timer
	listeners map[int]Listener
	nextID    int
	closed    bool

	logger *logger.Logger
}

// Option configures a [Synchronizer].
type Option func(*Synchronizer)

// WithClock replaces the clock used for debouncing.
func WithClock(c Clock) Option {
	return func(s *Synchronizer) { s.clock = c }
}

// WithDebounce sets the search debounce window. Non-positive values keep the
// default.
func WithDebounce(d time.Duration) Option {
	return func(s *Synchronizer) {
		if d > 0 {
			s.debounce = d
		}
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(s *Synchronizer) { s.logger = l }
}

func NewSynchronizer(location Location, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		location:  location,
		clock:     realClock{},
		debounce:  DefaultSearchDebounce,
		listeners: map[int]Listener{},
		logger:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Location returns the synchronized location.
func (s *Synchronizer) Location() Location {
	return s.location
}

// State parses the current location.
func (s *Synchronizer) State() State {
	return StateFromValues(s.location.Query())
}

// OnChange registers l and returns a function that removes it.
func (s *Synchronizer) OnChange(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Update merges patch into the current parameters. An empty value removes
// the parameter. The location query is replaced in one step.
func (s *Synchronizer) Update(patch map[string]string) {
	s.update(func(State) map[string]string { return patch })
}

// update applies the patch built from the current state while holding s.mu,
// so read-modify-write changes see every earlier update.
func (s *Synchronizer) update(build func(current State) map[string]string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	q := s.location.Query()
	for k, v := range build(StateFromValues(q)) {
		if strings.TrimSpace(v) == "" {
			q.Del(k)
			continue
		}
		q.Set(k, v)
	}
	s.location.Replace(q)
	state, listeners := StateFromValues(q), s.snapshotListeners()
	s.mu.Unlock()

	s.logger.Debug().Str("location", s.location.String()).Msg("list query updated")
	for _, l := range listeners {
		l(state)
	}
}

// SetPage moves to page, clamped to at least 1.
func (s *Synchronizer) SetPage(page int) {
	s.Update(map[string]string{ParamPage: strconv.Itoa(ClampPage(page))})
}

// SetLimit changes the page size, clamped to [1,100], and returns to page 1.
func (s *Synchronizer) SetLimit(limit int) {
	s.Update(map[string]string{
		ParamLimit: strconv.Itoa(ClampLimit(limit)),
		ParamPage:  strconv.Itoa(DefaultPage),
	})
}

// Search schedules term to be committed after the debounce window. Each call
// cancels the previously scheduled commit.
func (s *Synchronizer) Search(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if s.pending != nil {
		s.pending.Stop()
	}

	var timer Timer
	timer = s.clock.AfterFunc(s.debounce, func() {
		s.mu.Lock()
		if s.pending != timer || s.closed {
			s.mu.Unlock()
			return
		}
		s.pending = nil
		s.mu.Unlock()

		s.commitSearch(term)
	})
	s.pending = timer
}

// SearchNow cancels any pending search and commits term immediately.
func (s *Synchronizer) SearchNow(term string) {
	s.cancelPending()
	s.commitSearch(term)
}

// Pending reports whether a debounced search is waiting to be committed.
func (s *Synchronizer) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

func (s *Synchronizer) commitSearch(term string) {
	s.Update(map[string]string{
		ParamSearch: strings.TrimSpace(term),
		ParamPage:   strconv.Itoa(DefaultPage),
	})
}

// SetSort sorts by field. Selecting the active field flips the order; a new
// field starts descending. Both return to page 1.
func (s *Synchronizer) SetSort(field string) {
	field = strings.TrimSpace(field)
	if field == "" {
		return
	}

	s.update(func(current State) map[string]string {
		order := DefaultOrder
		if current.Sort == field {
			order = current.Order.Flip()
		}
		return map[string]string{
			ParamSort:  field,
			ParamOrder: string(order),
			ParamPage:  strconv.Itoa(DefaultPage),
		}
	})
}

// SetFilter sets a resource specific parameter such as role and returns to
// page 1. An empty value removes the filter.
func (s *Synchronizer) SetFilter(key, value string) {
	if isReserved(key) || strings.TrimSpace(key) == "" {
		return
	}
	s.Update(map[string]string{
		key:       value,
		ParamPage: strconv.Itoa(DefaultPage),
	})
}

// Reset removes every parameter in one replace and cancels a pending search.
func (s *Synchronizer) Reset() {
	s.cancelPending()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.location.Replace(nil)
	state, listeners := DefaultState(), s.snapshotListeners()
	s.mu.Unlock()

	s.logger.Debug().Str("location", s.location.String()).Msg("list query reset")
	for _, l := range listeners {
		l(state)
	}
}

// Close cancels pending debounced work and stops all further writes. It is
// called when the list screen is torn down.
func (s *Synchronizer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	s.closed = true
	clear(s.listeners)
}

func (s *Synchronizer) cancelPending() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

// snapshotListeners must be called with s.mu held.
func (s *Synchronizer) snapshotListeners() []Listener {
	out := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		out = append(out, l)
	}
	return out
}
