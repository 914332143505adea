package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the client's workers. History sync only runs when a
// server address is configured, so syncJob may be nil.
func NewWorkers(ctx context.Context, syncJob service.ClientSyncJob, syncInterval time.Duration, logger *logger.Logger) *Workers {
	w := &Workers{}
	if syncJob != nil {
		w.workers = append(w.workers, NewSyncWorker(ctx, syncJob, syncInterval, logger))
	}
	return w
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// Len reports how many workers are configured.
func (w *Workers) Len() int {
	return len(w.workers)
}

// SyncWorker runs the history sync job on a fixed interval.
type SyncWorker struct {
	ctx      context.Context
	job      service.ClientSyncJob
	interval time.Duration
	logger   *logger.Logger
}

func NewSyncWorker(ctx context.Context, job service.ClientSyncJob, interval time.Duration, logger *logger.Logger) *SyncWorker {
	return &SyncWorker{ctx: ctx, job: job, interval: interval, logger: logger}
}

func (s *SyncWorker) Run() {
	s.logger.Info().Dur("interval", s.interval).Msg("starting history sync worker")
	s.job.Start(s.ctx, s.interval)
}

func (s *SyncWorker) Stop() {
	s.job.Stop()
	s.logger.Info().Msg("history sync worker stopped")
}
