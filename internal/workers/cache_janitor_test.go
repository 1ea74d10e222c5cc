// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSweeper struct {
	mu         sync.Mutex
	calls      int
	retentions []time.Duration
}

func (s *countingSweeper) Sweep(retention time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.retentions = append(s.retentions, retention)
	return 1
}

func (s *countingSweeper) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestCacheJanitor_SweepsOnTicker(t *testing.T) {
	sweeper := &countingSweeper{}
	j := NewCacheJanitor(sweeper, 5*time.Millisecond, time.Hour, logger.Nop())

	j.Start(context.Background())
	require.Eventually(t, func() bool { return sweeper.Calls() >= 2 }, time.Second, time.Millisecond)
	j.Stop()

	calls := sweeper.Calls()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, calls, sweeper.Calls(), "no sweeps after Stop")
	assert.Equal(t, time.Hour, sweeper.retentions[0])
}

func TestCacheJanitor_StopsOnContextCancel(t *testing.T) {
	sweeper := &countingSweeper{}
	j := NewCacheJanitor(sweeper, 5*time.Millisecond, time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	j.Start(ctx)
	require.Eventually(t, func() bool { return sweeper.Calls() >= 1 }, time.Second, time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		j.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after context cancellation")
	}
}

func TestCacheJanitor_Defaults(t *testing.T) {
	j := NewCacheJanitor(&countingSweeper{}, 0, -1, logger.Nop()).(*cacheJanitor)

	assert.Equal(t, DefaultSweepInterval, j.interval)
	assert.Equal(t, DefaultRetention, j.retention)
}

func TestCacheJanitor_StopWithoutStart(t *testing.T) {
	j := NewCacheJanitor(&countingSweeper{}, time.Second, time.Hour, logger.Nop())
	j.Stop()
	j.Stop()
}

func TestCacheJanitor_RestartReplacesLoop(t *testing.T) {
	sweeper := &countingSweeper{}
	j := NewCacheJanitor(sweeper, 5*time.Millisecond, time.Hour, logger.Nop())

	j.Start(context.Background())
	j.Start(context.Background())
	require.Eventually(t, func() bool { return sweeper.Calls() >= 1 }, time.Second, time.Millisecond)
	j.Stop()
}
