// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Limit int `json:"limit"`
}

// NewPagination computes the number of pages for total items split into
// pages of limit items.
func NewPagination(total, page, limit int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{Total: total, Page: page, Pages: pages, Limit: limit}
}

// ListResult is one page of entities together with its pagination block.
type ListResult[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// ListParams is the server-side view of a list request: the common query
// state plus resource specific filters.
type ListParams struct {
	Page    int
	Limit   int
	Search  string
	Sort    string
	Order   string
	Filters map[string]string
}

// Offset returns the number of rows to skip for the requested page.
func (p ListParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}
