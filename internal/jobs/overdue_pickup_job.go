package jobs

import (
	"context"
	"log/slog"
	"time"

	"signhero/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// overduePickupSchedule runs the sweep every morning at 07:00 so the day's
// pickup route can include everything that slipped.
const overduePickupSchedule = "0 0 7 * * *"

// OverduePickupJob sweeps deployed orders whose scheduled pickup date has
// passed and surfaces them for the operations crew.
type OverduePickupJob struct {
	handler queries.GetOverduePickupsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
	now     func() time.Time
}

// NewOverduePickupJob creates the daily overdue-pickup sweep.
func NewOverduePickupJob(
	handler queries.GetOverduePickupsQueryHandler,
	logger *slog.Logger,
	now func() time.Time,
) *OverduePickupJob {
	return &OverduePickupJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_pickup_job"),
		now:     now,
	}
}

// Start schedules the daily sweep.
func (j *OverduePickupJob) Start() error {
	_, err := j.cron.AddFunc(overduePickupSchedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue pickup job started (running daily at 07:00)")
	return nil
}

// Stop stops the overdue pickup job.
func (j *OverduePickupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue pickup job stopped")
}

func (j *OverduePickupJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetOverduePickupsQuery(j.now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue pickup sweep failed to build query", "error", err)
		return
	}

	overdue, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue pickup sweep failed", "error", err)
		return
	}

	if len(overdue) == 0 {
		j.logger.InfoContext(ctx, "Overdue pickup sweep found nothing outstanding")
		return
	}

	for _, pickup := range overdue {
		j.logger.WarnContext(ctx, "Order pickup overdue",
			"orderId", pickup.OrderID.String(),
			"customer", pickup.CustomerName,
			"scheduledPickup", pickup.ScheduledPickup.Format("2006-01-02"),
			"daysOverdue", pickup.DaysOverdue,
		)
	}
}
