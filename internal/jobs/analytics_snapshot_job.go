package jobs

import (
	"context"
	"log/slog"

	"darkstore/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// AnalyticsSnapshotJob periodically logs the business rollup so operators can
// follow order volume and revenue from the logs without polling the API.
type AnalyticsSnapshotJob struct {
	handler queries.GetAnalyticsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAnalyticsSnapshotJob creates a new job for analytics snapshots.
// Uses GetAnalyticsQueryHandler to compute the rollup every five minutes.
func NewAnalyticsSnapshotJob(handler queries.GetAnalyticsQueryHandler, logger *slog.Logger) *AnalyticsSnapshotJob {
	return &AnalyticsSnapshotJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "analytics_snapshot_job"),
	}
}

// Start begins the analytics snapshot job to run every five minutes.
func (j *AnalyticsSnapshotJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * *", func() {
		ctx := context.Background()

		rollup, err := j.handler.Handle(ctx, queries.NewGetAnalyticsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Analytics snapshot job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Analytics snapshot",
			"totalOrders", rollup.TotalOrders,
			"totalRevenue", rollup.TotalRevenue,
			"pending", rollup.PendingOrders,
			"onTheWay", rollup.OnTheWayOrders,
			"delivered", rollup.DeliveredOrders,
			"cancelled", rollup.CancelledOrders,
			"totalCustomers", rollup.TotalCustomers,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Analytics snapshot job started (running every five minutes)")
	return nil
}

// Stop stops the analytics snapshot job.
func (j *AnalyticsSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Analytics snapshot job stopped")
}
