package jobs

import (
	"context"
	"log/slog"
	"time"

	"darkstore/internal/core/application/usecases/queries"
	"darkstore/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// staleGracePeriod is added on top of the promised window before an order is
// considered stuck, to avoid flagging hand-offs that are merely running late.
const staleGracePeriod = 10 * time.Minute

// StaleOrderWatchJob flags orders that sit undelivered past their promised
// window. Runs every minute and only logs; the lifecycle stays untouched.
type StaleOrderWatchJob struct {
	handler queries.GetAllOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderWatchJob creates a new job for watching stuck orders.
// Uses GetAllOrdersQueryHandler to scan the backlog every minute.
func NewStaleOrderWatchJob(handler queries.GetAllOrdersQueryHandler, logger *slog.Logger) *StaleOrderWatchJob {
	return &StaleOrderWatchJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "stale_order_watch_job"),
	}
}

// Start begins the stale order watch job to run every minute.
func (j *StaleOrderWatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		orders, err := j.handler.Handle(ctx, queries.NewGetAllOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order watch job failed", "error", err)
			return
		}

		for _, stale := range overdueOrders(orders, time.Now().UTC()) {
			j.logger.WarnContext(ctx, "Order overdue",
				"orderId", stale.ID.String(),
				"status", stale.Status.String(),
				"etaMinutes", stale.EtaMinutes,
				"ageMinutes", int(time.Since(stale.CreatedAt).Minutes()),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order watch job started (running every minute)")
	return nil
}

// Stop stops the stale order watch job.
func (j *StaleOrderWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order watch job stopped")
}

// overdueOrders returns the orders still in flight past their promised window
// plus the grace period.
func overdueOrders(orders []queries.OrderResponse, now time.Time) []queries.OrderResponse {
	var overdue []queries.OrderResponse
	for _, candidate := range orders {
		if candidate.Status != order.Pending && candidate.Status != order.OnTheWay {
			continue
		}

		deadline := candidate.CreatedAt.
			Add(time.Duration(candidate.EtaMinutes) * time.Minute).
			Add(staleGracePeriod)
		if now.After(deadline) {
			overdue = append(overdue, candidate)
		}
	}
	return overdue
}
