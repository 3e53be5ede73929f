package jobs

import (
	"fmt"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	statisticsBroadcastJob *StatisticsBroadcastJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the statistics query handler and the realtime notifier as
// dependencies to wire up the job execution.
func NewJobManager(
	statisticsHandler queries.GetOrderStatisticsQueryHandler,
	notifier ports.RealtimeNotifier,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		statisticsBroadcastJob: NewStatisticsBroadcastJob(statisticsHandler, notifier, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statisticsBroadcastJob.Start(); err != nil {
		return fmt.Errorf("failed to start statistics broadcast job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statisticsBroadcastJob.Stop()
}
