// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/models"
)

const defaultSessionRefreshInterval = 5 * time.Minute

// sessionRefresher is the part of [ClientSessionService] the job needs.
type sessionRefresher interface {
	Current() (models.Session, bool)
	Refresh(ctx context.Context) error
}

type sessionRefreshJob struct {
	sessions sessionRefresher
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionRefreshJob creates a job that calls sessions.Refresh on a ticker
// while somebody is signed in. The job is idle until Start is called.
func NewSessionRefreshJob(sessions sessionRefresher, logger *logger.Logger) SessionRefreshJob {
	return &sessionRefreshJob{sessions: sessions, logger: logger.WithComponent("session-refresh")}
}

// Start implements SessionRefreshJob. It stops any previously running job,
// then launches a goroutine that refreshes the session every interval. If
// interval is zero or negative it defaults to 5 minutes. The goroutine exits
// when ctx is cancelled or Stop is called.
func (j *sessionRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSessionRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *sessionRefreshJob) tick(ctx context.Context) {
	if _, ok := j.sessions.Current(); !ok {
		return
	}
	if err := j.sessions.Refresh(ctx); err != nil {
		j.logger.Warn().Err(err).Msg("session refresh failed")
	}
}

// Stop implements SessionRefreshJob. It cancels the goroutine's context and
// blocks until the goroutine has exited. Safe to call when the job is not
// running.
func (j *sessionRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
