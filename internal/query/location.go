// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
)

// Location is a navigable address whose query holds the list state. Replace
// swaps the query in place without adding a history entry.
type Location interface {
	Path() string
	Query() url.Values
	Replace(q url.Values)
	String() string
}

// MemoryLocation is a [Location] kept in memory. It is safe for concurrent
// use.
type MemoryLocation struct {
	mu    sync.RWMutex
	path  string
	query url.Values
}

// NewLocation returns a location at path with an empty query.
func NewLocation(path string) *MemoryLocation {
	return &MemoryLocation{path: normalizePath(path), query: url.Values{}}
}

// ParseLocation parses a deep link such as "/projects?page=2&search=roof".
// Scheme and host are ignored.
func ParseLocation(raw string) (*MemoryLocation, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("parse location %q: %w", raw, err)
	}
	return &MemoryLocation{path: normalizePath(u.Path), query: u.Query()}, nil
}

func (l *MemoryLocation) Path() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.path
}

// Query returns a copy of the current query.
func (l *MemoryLocation) Query() url.Values {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cloneValues(l.query)
}

func (l *MemoryLocation) Replace(q url.Values) {
	q = cloneValues(q)
	if q == nil {
		q = url.Values{}
	}

	l.mu.Lock()
	l.query = q
	l.mu.Unlock()
}

// String renders the location as path?query with sorted keys.
func (l *MemoryLocation) String() string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.query) == 0 {
		return l.path
	}
	return l.path + "?" + l.query.Encode()
}

func normalizePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

func cloneValues(v url.Values) url.Values {
	if v == nil {
		return nil
	}
	out := make(url.Values, len(v))
	for k, vs := range v {
		out[k] = append([]string(nil), vs...)
	}
	return out
}
