// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"net/url"
	"testing"

	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestClampLimit(t *testing.T) {
	for _, tt := range []struct{ in, want int }{
		{-5, 1}, {0, 1}, {1, 1}, {10, 10}, {100, 100}, {101, 100}, {1 << 20, 100},
	} {
		assert.Equal(t, tt.want, ClampLimit(tt.in), "ClampLimit(%d)", tt.in)
	}
}

func TestClampPage(t *testing.T) {
	for _, tt := range []struct{ in, want int }{
		{-1, 1}, {0, 1}, {1, 1}, {7, 7},
	} {
		assert.Equal(t, tt.want, ClampPage(tt.in), "ClampPage(%d)", tt.in)
	}
}

func TestStateFromValues(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  State
	}{
		{
			name:  "empty uses defaults",
			query: "",
			want:  DefaultState(),
		},
		{
			name:  "valid values",
			query: "page=3&limit=25&search=+roof+&sort=name&order=asc",
			want:  State{Page: 3, Limit: 25, Search: "roof", Sort: "name", Order: OrderAsc},
		},
		{
			name:  "invalid values fall back",
			query: "page=abc&limit=x&order=sideways&sort=",
			want:  DefaultState(),
		},
		{
			name:  "out of range values are clamped",
			query: "page=-4&limit=500",
			want:  State{Page: 1, Limit: 100, Sort: DefaultSort, Order: DefaultOrder},
		},
		{
			name:  "extra parameters become filters",
			query: "role=admin&isActive=true&empty=",
			want: State{Page: 1, Limit: 10, Sort: DefaultSort, Order: DefaultOrder,
				Filters: map[string]string{"role": "admin", "isActive": "true"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, StateFromValues(q))
		})
	}
}

func TestState_Params(t *testing.T) {
	s := State{Page: 2, Limit: 20, Search: "x", Sort: "name", Order: OrderAsc, Filters: map[string]string{"role": "user"}}
	params := s.Params()

	assert.Equal(t, models.ListParams{Page: 2, Limit: 20, Search: "x", Sort: "name", Order: "asc",
		Filters: map[string]string{"role": "user"}}, params)

	params.Filters["role"] = "admin"
	assert.Equal(t, "user", s.Filters["role"], "params do not alias the state filters")
}

func TestState_Key(t *testing.T) {
	a := State{Page: 1, Limit: 10, Sort: "name", Order: OrderAsc, Filters: map[string]string{"a": "1", "b": "2"}}
	b := State{Page: 1, Limit: 10, Sort: "name", Order: OrderAsc, Filters: map[string]string{"b": "2", "a": "1"}}
	c := a
	c.Page = 2

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
	assert.NotEqual(t, DefaultState().Key(), State{Page: 1, Limit: 10, Sort: DefaultSort, Order: DefaultOrder, Search: "x"}.Key())
}

func TestOrder_Flip(t *testing.T) {
	assert.Equal(t, OrderDesc, OrderAsc.Flip())
	assert.Equal(t, OrderAsc, OrderDesc.Flip())
}
