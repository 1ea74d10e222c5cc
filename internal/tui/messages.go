// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/query"
	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/charmbracelet/bubbles/table"
)

type loggedInMsg struct {
	user *models.User
	err  error
}

type loggedOutMsg struct {
	err error
}

// sessionEndedMsg is sent when the session store clears the session. reason
// is nil for a user initiated logout.
type sessionEndedMsg struct {
	reason error
}

// stateChangedMsg reports that the query state of a resource list changed.
type stateChangedMsg struct {
	resource string
}

type pageLoadedMsg struct {
	resource   string
	state      query.State
	ids        []string
	rows       []table.Row
	pagination models.Pagination
	fetchedAt  time.Time
	stale      bool
	err        error
}

type itemDeletedMsg struct {
	resource string
	err      error
}

type statisticsLoadedMsg struct {
	rng   models.DateRange
	stats statistics
	err   error
}

type copiedMsg struct {
	text string
	err  error
}

type clearStatusMsg struct {
	id int
}
