package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-study-shelf/internal/config"
	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/internal/service"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers returns the client's background workers: for now only the
// periodic session refresh.
func NewWorkers(services *service.ClientServices, cfg config.ClientWorkers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewSessionRefreshWorker(services.RefreshJob, cfg.SessionRefreshInterval),
		},
		logger: logger,
	}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
	if w.logger != nil {
		w.logger.Info().Int("count", len(w.workers)).Msg("background workers started")
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

type sessionRefreshWorker struct {
	job      service.SessionRefreshJob
	interval time.Duration
}

// NewSessionRefreshWorker adapts a [service.SessionRefreshJob] to [Worker].
func NewSessionRefreshWorker(job service.SessionRefreshJob, interval time.Duration) Worker {
	return &sessionRefreshWorker{job: job, interval: interval}
}

func (s *sessionRefreshWorker) Run(ctx context.Context) {
	s.job.Start(ctx, s.interval)
}

func (s *sessionRefreshWorker) Stop() {
	s.job.Stop()
}
