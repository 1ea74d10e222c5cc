// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
)

const (
	DefaultSweepInterval = time.Minute
	DefaultRetention     = 30 * time.Minute
)

type cacheJanitor struct {
	sweeper   Sweeper
	interval  time.Duration
	retention time.Duration
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCacheJanitor creates a worker that calls sweeper.Sweep(retention) every
// interval. Non-positive durations fall back to the defaults. The worker is
// idle until Start is called.
func NewCacheJanitor(sweeper Sweeper, interval, retention time.Duration, log *logger.Logger) Worker {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &cacheJanitor{
		sweeper:   sweeper,
		interval:  interval,
		retention: retention,
		logger:    log,
	}
}

// Start stops any previously running sweep loop, then launches a goroutine
// that sweeps on a ticker until ctx is cancelled or Stop is called.
func (j *cacheJanitor) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if n := j.sweeper.Sweep(j.retention); n > 0 {
					j.logger.Debug().Int("evicted", n).Msg("cache swept")
				}
			}
		}
	}()
}

// Stop cancels the sweep loop and blocks until it has exited.
func (j *cacheJanitor) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
