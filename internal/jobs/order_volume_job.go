package jobs

import (
	"context"
	"log/slog"

	"foodorder/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// orderVolumeSchedule runs the report at the top of every minute.
const orderVolumeSchedule = "0 * * * * *"

// OrderVolumeJob periodically logs how many orders each area has accumulated.
// The report gives operators a cheap view of load distribution across areas
// without querying the database by hand.
type OrderVolumeJob struct {
	handler queries.GetOrderVolumeQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderVolumeJob creates a new job for order volume reporting.
// Uses GetOrderVolumeQueryHandler to count stored orders per area.
func NewOrderVolumeJob(handler queries.GetOrderVolumeQueryHandler, logger *slog.Logger) *OrderVolumeJob {
	return &OrderVolumeJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_volume_job"),
	}
}

// Start begins the order volume job on its minute schedule.
func (j *OrderVolumeJob) Start() error {
	_, err := j.cron.AddFunc(orderVolumeSchedule, func() {
		ctx := context.Background()
		query := queries.NewGetOrderVolumeQuery()

		volumes, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order volume job failed", "error", err)
			return
		}

		for _, v := range volumes {
			j.logger.InfoContext(ctx, "Order volume", "area", v.Area, "orders", v.Orders)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order volume job started (running every minute)")
	return nil
}

// Stop stops the order volume job.
func (j *OrderVolumeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order volume job stopped")
}
