// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocation(t *testing.T) {
	loc, err := ParseLocation("projects?page=2&search=roof")
	require.NoError(t, err)
	assert.Equal(t, "/projects", loc.Path())
	assert.Equal(t, "2", loc.Query().Get("page"))
	assert.Equal(t, "/projects?page=2&search=roof", loc.String())

	loc, err = ParseLocation("http://localhost:3000/users?role=admin")
	require.NoError(t, err)
	assert.Equal(t, "/users", loc.Path())
	assert.Equal(t, "admin", loc.Query().Get("role"))

	_, err = ParseLocation("%zz")
	assert.Error(t, err)
}

func TestMemoryLocation_Replace(t *testing.T) {
	loc := NewLocation("clients")
	assert.Equal(t, "/clients", loc.String())

	q := url.Values{"page": {"3"}}
	loc.Replace(q)
	q.Set("page", "9")
	assert.Equal(t, "3", loc.Query().Get("page"), "replace stores a copy")

	got := loc.Query()
	got.Set("page", "7")
	assert.Equal(t, "3", loc.Query().Get("page"), "query returns a copy")

	loc.Replace(nil)
	assert.Equal(t, "/clients", loc.String())
	assert.NotNil(t, loc.Query())
}
