// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the terminal client.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers in a unified way.
package workers

import (
	"context"
	"time"
)

// Worker is a background job with an explicit lifecycle.
//
// Start must not block: implementations spawn their own goroutine, which
// exits when ctx is cancelled or Stop is called. Stop blocks until that
// goroutine has exited and is a no-op when the worker is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Sweeper evicts entries that have been stale for longer than retention.
// It is implemented by *cache.Cache.
type Sweeper interface {
	Sweep(retention time.Duration) int
}
