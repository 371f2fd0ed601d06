package queries

import (
	"context"
	"time"

	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOverduePickupsQueryHandler scans for deployed orders past their
// scheduled pickup date. The pickup date is derived in SQL from the stored
// event date, the package's teardown offset, and the late-pickup flag,
// mirroring the aggregate's schedule math.
type GetOverduePickupsQueryHandler struct {
	db *gorm.DB
}

// NewGetOverduePickupsQueryHandler creates a handler for the overdue scan.
func NewGetOverduePickupsQueryHandler(db *gorm.DB) GetOverduePickupsQueryHandler {
	return GetOverduePickupsQueryHandler{db: db}
}

// Handle executes the scan against the reference date.
func (h GetOverduePickupsQueryHandler) Handle(
	ctx context.Context,
	query GetOverduePickupsQuery,
) ([]OverduePickupQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	overdue := make([]OverduePickupQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_info->>'name',
			event_for_name,
			event_date + make_interval(days =>
				(package_info->>'teardown_days_after')::int +
				CASE WHEN (options->>'late_pickup')::boolean THEN 1 ELSE 0 END
			) AS scheduled_pickup
		FROM orders
		WHERE status = ?
		  AND event_date + make_interval(days =>
				(package_info->>'teardown_days_after')::int +
				CASE WHEN (options->>'late_pickup')::boolean THEN 1 ELSE 0 END
			) < ?
		ORDER BY scheduled_pickup
	`, order.Deployed.String(), query.AsOf()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp OverduePickupQueryResponse
			id   uuid.UUID
		)

		if err = rows.Scan(
			&id,
			&resp.CustomerName,
			&resp.EventForName,
			&resp.ScheduledPickup,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = orderID
		resp.DaysOverdue = calendarDaysOverdue(resp.ScheduledPickup, query.AsOf())

		overdue = append(overdue, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overdue, nil
}

// calendarDaysOverdue counts whole calendar days from the scheduled pickup
// date to the reference date, each taken in its own location. Time of day
// and timezone offsets do not shift the count.
func calendarDaysOverdue(scheduled, asOf time.Time) int {
	s := time.Date(scheduled.Year(), scheduled.Month(), scheduled.Day(), 0, 0, 0, 0, time.UTC)
	a := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)
	return int(a.Sub(s).Hours() / 24)
}
