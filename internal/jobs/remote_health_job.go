package jobs

import (
	"context"
	"log/slog"

	"baleconnect/internal/transport"

	"github.com/robfig/cron/v3"
)

// HealthProber checks whether the upstream server is reachable.
type HealthProber interface {
	Health(ctx context.Context) error
}

// RemoteHealthJob periodically probes the upstream server while the
// transport adapter is in remote mode. The probe is observational: the
// adapter switches modes on its own when a real operation fails, this job
// only surfaces upstream outages in the logs before users hit them.
type RemoteHealthJob struct {
	prober  HealthProber
	adapter *transport.Adapter
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRemoteHealthJob creates a job probing the upstream every 30 seconds.
func NewRemoteHealthJob(prober HealthProber, adapter *transport.Adapter, logger *slog.Logger) *RemoteHealthJob {
	return &RemoteHealthJob{
		prober:  prober,
		adapter: adapter,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "remote_health_job"),
	}
}

// Start begins the probe schedule.
func (j *RemoteHealthJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		if j.adapter.Mode() != transport.ModeRemote {
			return
		}

		if err := j.prober.Health(ctx); err != nil {
			j.logger.WarnContext(ctx, "Upstream server health probe failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Remote health job started (probing every 30 seconds)")
	return nil
}

// Stop stops the probe schedule.
func (j *RemoteHealthJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Remote health job stopped")
}
