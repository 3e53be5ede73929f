// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the realtime dashboard.
//
// # Available Jobs
//
// 1. StatisticsBroadcastJob - Runs every 10 seconds to push refreshed order
// statistics to connected admin clients
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(statisticsHandler, notifier, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The statistics job uses the cron expression "*/10 * * * * *", firing every
// ten seconds. Mutating endpoints broadcast statistics immediately on change;
// the job keeps dashboards fresh between mutations and after missed pushes.
//
// # Error Handling
//
// Query failures are logged and the tick is skipped; the next tick retries.
package jobs
