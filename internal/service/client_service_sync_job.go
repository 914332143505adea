package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-qr-forge/internal/logger"
)

const defaultSyncInterval = time.Minute

// clientSyncJob pushes the device history on a ticker. Each push is bounded
// by the interval so a hanging server never delays the next tick.
type clientSyncJob struct {
	sync   ClientSyncService
	logger *logger.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	running sync.WaitGroup
}

// NewClientSyncJob returns an idle job; nothing is pushed until Start.
func NewClientSyncJob(syncService ClientSyncService, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{sync: syncService, logger: logger}
}

func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.running.Add(1)
	j.mu.Unlock()

	go j.loop(jobCtx, interval)
}

func (j *clientSyncJob) loop(ctx context.Context, interval time.Duration) {
	defer j.running.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log := j.logger.With().Str("func", "clientSyncJob.loop").Logger()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pushCtx, cancel := context.WithTimeout(ctx, interval)
			err := j.sync.Push(pushCtx)
			cancel()
			if err != nil {
				log.Warn().Err(err).Msg("history push failed")
				continue
			}
			log.Debug().Msg("history pushed")
		}
	}
}

// Stop is a no-op when the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.running.Wait()
}
