package jobs

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StatisticsBroadcastJob periodically recomputes order statistics and pushes
// them to admin clients over the realtime channel. Complements the
// per-mutation broadcasts so dashboards converge even if a push was missed.
type StatisticsBroadcastJob struct {
	handler  queries.GetOrderStatisticsQueryHandler
	notifier ports.RealtimeNotifier
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatisticsBroadcastJob creates a job that broadcasts statistics every ten seconds.
func NewStatisticsBroadcastJob(
	handler queries.GetOrderStatisticsQueryHandler,
	notifier ports.RealtimeNotifier,
	logger *slog.Logger,
) *StatisticsBroadcastJob {
	return &StatisticsBroadcastJob{
		handler:  handler,
		notifier: notifier,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "statistics_broadcast_job"),
	}
}

// Start begins the statistics broadcast job.
func (j *StatisticsBroadcastJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()

		stats, handleErr := j.handler.Handle(ctx, queries.NewGetOrderStatisticsQuery())
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Statistics broadcast job failed", "error", handleErr)
			return
		}

		j.notifier.BroadcastStatisticsUpdate(stats)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Statistics broadcast job started (running every 10 seconds)")
	return nil
}

// Stop stops the statistics broadcast job.
func (j *StatisticsBroadcastJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Statistics broadcast job stopped")
}
