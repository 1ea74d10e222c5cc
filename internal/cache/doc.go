// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache keeps fetched list and statistics results in memory, keyed
// by resource and full query state.
//
// A value is fresh for the TTL given when it was fetched. Fresh hits never
// reach the network. Failed fetches are retried once; when the retry fails
// too, the last value stored under the key is returned next to the error so
// the UI can keep showing it. Concurrent fetches of one key share a single
// call.
package cache
