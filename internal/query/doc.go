// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package query keeps the page, limit, search, sort and order of a list
// screen in its navigable location.
//
// The location is the single source of truth: [Synchronizer.State] parses it
// on every call and every mutation replaces its query in one step. Missing or
// invalid parameters fall back to the defaults (page 1, limit 10, sort
// createdAt, order desc). Search input is debounced before it is committed.
package query
