// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DateRange is the optional startDate/endDate filter of the statistics
// endpoints. Zero times are omitted from the request.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// DateLayout is the wire format of startDate and endDate.
const DateLayout = "2006-01-02"

// Key renders the range for use in cache keys.
func (r DateRange) Key() string {
	return format(r.Start) + ".." + format(r.End)
}

func format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// StartString returns the start date in wire format, or "" when unset.
func (r DateRange) StartString() string { return format(r.Start) }

// EndString returns the end date in wire format, or "" when unset.
func (r DateRange) EndString() string { return format(r.End) }

type ProjectCompletion struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	InProgress     int     `json:"inProgress"`
	Pending        int     `json:"pending"`
	CompletionRate float64 `json:"completionRate"`
}

type UserStats struct {
	Total    int            `json:"total"`
	Active   int            `json:"active"`
	Inactive int            `json:"inactive"`
	ByRole   map[string]int `json:"byRole"`
}

type IncompleteProjects struct {
	Projects []Project `json:"projects"`
}

type ManagerProducts struct {
	ManagerID   string `json:"managerId"`
	ManagerName string `json:"managerName"`
	Products    int    `json:"products"`
	Quantity    int    `json:"quantity"`
}

type ProductManagerStats struct {
	Managers []ManagerProducts `json:"managers"`
}
