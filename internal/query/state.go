// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"maps"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

// Order is a sort direction.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Flip returns the opposite direction.
func (o Order) Flip() Order {
	if o == OrderAsc {
		return OrderDesc
	}
	return OrderAsc
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MinLimit     = 1
	MaxLimit     = 100
	DefaultSort  = "createdAt"
	DefaultOrder = OrderDesc
)

// Query parameter names.
const (
	ParamPage   = "page"
	ParamLimit  = "limit"
	ParamSearch = "search"
	ParamSort   = "sort"
	ParamOrder  = "order"
)

// State is the pagination, search and sort tuple of a list.
type State struct {
	Page   int
	Limit  int
	Search string
	Sort   string
	Order  Order
	// Filters holds every other non-empty parameter, such as the users list
	// role and isActive.
	Filters map[string]string
}

// DefaultState returns the state of an empty location.
func DefaultState() State {
	return State{
		Page:  DefaultPage,
		Limit: DefaultLimit,
		Sort:  DefaultSort,
		Order: DefaultOrder,
	}
}

// ClampPage returns max(1, page).
func ClampPage(page int) int {
	return max(page, DefaultPage)
}

// ClampLimit returns limit clamped to [MinLimit, MaxLimit].
func ClampLimit(limit int) int {
	return min(max(limit, MinLimit), MaxLimit)
}

// StateFromValues parses q. Missing or invalid values fall back to the
// defaults; numeric values are clamped.
func StateFromValues(q url.Values) State {
	s := DefaultState()

	if raw := q.Get(ParamPage); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			s.Page = ClampPage(page)
		}
	}
	if raw := q.Get(ParamLimit); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			s.Limit = ClampLimit(limit)
		}
	}
	s.Search = strings.TrimSpace(q.Get(ParamSearch))
	if sort := strings.TrimSpace(q.Get(ParamSort)); sort != "" {
		s.Sort = sort
	}
	switch Order(strings.ToLower(q.Get(ParamOrder))) {
	case OrderAsc:
		s.Order = OrderAsc
	case OrderDesc:
		s.Order = OrderDesc
	}

	for key, values := range q {
		if isReserved(key) || len(values) == 0 || values[0] == "" {
			continue
		}
		if s.Filters == nil {
			s.Filters = map[string]string{}
		}
		s.Filters[key] = values[0]
	}
	return s
}

// Params converts the state into list request parameters.
func (s State) Params() models.ListParams {
	return models.ListParams{
		Page:    s.Page,
		Limit:   s.Limit,
		Search:  s.Search,
		Sort:    s.Sort,
		Order:   string(s.Order),
		Filters: maps.Clone(s.Filters),
	}
}

// Key is a canonical encoding of the full tuple, stable across map order.
// Equal states have equal keys.
func (s State) Key() string {
	q := url.Values{}
	q.Set(ParamPage, strconv.Itoa(s.Page))
	q.Set(ParamLimit, strconv.Itoa(s.Limit))
	q.Set(ParamSearch, s.Search)
	q.Set(ParamSort, s.Sort)
	q.Set(ParamOrder, string(s.Order))
	for _, k := range slices.Sorted(maps.Keys(s.Filters)) {
		q.Set("f."+k, s.Filters[k])
	}
	return q.Encode()
}

func isReserved(key string) bool {
	switch key {
	case ParamPage, ParamLimit, ParamSearch, ParamSort, ParamOrder:
		return true
	default:
		return false
	}
}
