// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spySessions считает вызовы Refresh.
type spySessions struct {
	calls    atomic.Int64
	signedIn atomic.Bool
	err      error
}

func newSpySessions() *spySessions {
	s := &spySessions{}
	s.signedIn.Store(true)
	return s
}

func (s *spySessions) Current() (models.Session, bool) {
	if !s.signedIn.Load() {
		return models.Session{}, false
	}
	return testSession, true
}

func (s *spySessions) Refresh(_ context.Context) error {
	s.calls.Add(1)
	return s.err
}

func newTestJob(spy *spySessions) SessionRefreshJob {
	return NewSessionRefreshJob(spy, logger.Nop())
}

func TestNewSessionRefreshJob_ReturnsInterface(t *testing.T) {
	job := newTestJob(newSpySessions())
	require.NotNil(t, job)
}

func TestSessionRefreshJob_Start_CallsRefresh(t *testing.T) {
	spy := newSpySessions()
	job := newTestJob(spy)

	// Интервал 10ms, за 55ms должно быть ~5 тиков
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Refresh должен быть вызван несколько раз, вызвано: %d", got)
}

func TestSessionRefreshJob_SkipsWhenSignedOut(t *testing.T) {
	spy := newSpySessions()
	spy.signedIn.Store(false)
	job := newTestJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(40 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestSessionRefreshJob_Stop_StopsGoroutine(t *testing.T) {
	spy := newSpySessions()
	job := newTestJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "после Stop новых вызовов быть не должно")
}

func TestSessionRefreshJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := newTestJob(newSpySessions())
	assert.NotPanics(t, func() { job.Stop() })
}

func TestSessionRefreshJob_DoubleStop_NoPanic(t *testing.T) {
	job := newTestJob(newSpySessions())

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestSessionRefreshJob_Start_DefaultInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		spy := newSpySessions()
		job := newTestJob(spy)

		// interval <= 0 → дефолт 5 минут, за 20ms вызовов быть не должно
		job.Start(context.Background(), interval)
		time.Sleep(20 * time.Millisecond)
		job.Stop()

		assert.Equal(t, int64(0), spy.calls.Load())
	}
}

func TestSessionRefreshJob_Restart_StopsPrevious(t *testing.T) {
	spy := newSpySessions()
	job := newTestJob(spy)
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	callsBefore := spy.calls.Load()
	assert.Greater(t, callsBefore, int64(0))

	// Start повторно на том же job: внутри вызовет Stop()
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.calls.Load(), callsBefore)
}

func TestSessionRefreshJob_ContextCancel_StopsJob(t *testing.T) {
	job := newTestJob(newSpySessions())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop завис после отмены контекста")
	}
}

func TestSessionRefreshJob_RefreshError_DoesNotStopJob(t *testing.T) {
	spy := newSpySessions()
	spy.err = ErrUnavailable
	job := newTestJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}
