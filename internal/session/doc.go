// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the authenticated state of the terminal client.
//
// [Store] is the only owner of the current [models.Session]. It is created
// once in the composition root and injected into the request client and the
// services; nothing reads the session from global state. Every change is
// written through a single [Persister].
package session
