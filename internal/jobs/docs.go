// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. RemoteHealthJob - Probes the upstream server every 30 seconds while the
// transport adapter runs in remote mode, surfacing outages in the logs.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(remoteClient, adapter, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The health probe never changes transport mode itself; the adapter's
// fallback latch trips only on a real operation failing. Probe failures are
// logged at Warn level.
package jobs
