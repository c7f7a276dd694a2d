package jobs

import (
	"fmt"
	"log/slog"

	"baleconnect/internal/transport"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	remoteHealthJob *RemoteHealthJob
}

// NewJobManager creates a job manager with all required jobs. prober may be
// nil when the application runs purely locally; the health job is skipped.
func NewJobManager(prober HealthProber, adapter *transport.Adapter, logger *slog.Logger) *JobManager {
	jm := &JobManager{}
	if prober != nil {
		jm.remoteHealthJob = NewRemoteHealthJob(prober, adapter, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if jm.remoteHealthJob == nil {
		return nil
	}
	if err := jm.remoteHealthJob.Start(); err != nil {
		return fmt.Errorf("failed to start remote health job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.remoteHealthJob != nil {
		jm.remoteHealthJob.Stop()
	}
}
