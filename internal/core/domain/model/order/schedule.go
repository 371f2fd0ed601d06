package order

import (
	"time"

	"signhero/internal/core/domain/model/kernel"
)

// ScheduleRow is one dated action in an order's deployment schedule.
type ScheduleRow struct {
	Action string
	Date   time.Time
	Note   string
}

// Schedule action names as they appear on printed order summaries. These feed
// documents that other systems consume, so the wording is fixed.
const (
	ActionEarlySetup       = "Early Setup"
	ActionStandardSetup    = "Standard Setup"
	ActionEventDay         = "Event Day"
	ActionStandardTeardown = "Standard Teardown"
	ActionLateTeardown     = "Late Teardown"
)

// addDays performs calendar-day arithmetic on the stored date. No timezone
// normalization happens beyond the date's own location.
func addDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// Schedule derives the dated setup/teardown rows for the order from its event
// date, package offsets, and extra-day options.
//
// Rows, in order:
//   - Early Setup at event − (setupDaysBefore+1), only when earlyDelivery
//   - Standard Setup at event − setupDaysBefore
//   - Event Day at the event date
//   - Standard Teardown at event + teardownDaysAfter
//   - Late Teardown at event + teardownDaysAfter + 1, only when latePickup
func (o *Order) Schedule() []ScheduleRow {
	rows := make([]ScheduleRow, 0, 5)

	if o.options.EarlyDelivery {
		rows = append(rows, ScheduleRow{
			Action: ActionEarlySetup,
			Date:   addDays(o.eventDate, -(o.packageInfo.SetupDaysBefore + 1)),
			Note:   "Extra day before requested",
		})
	}

	rows = append(rows,
		ScheduleRow{
			Action: ActionStandardSetup,
			Date:   addDays(o.eventDate, -o.packageInfo.SetupDaysBefore),
			Note:   "Regular setup day",
		},
		ScheduleRow{
			Action: ActionEventDay,
			Date:   o.eventDate,
			Note:   "Day of the event",
		},
		ScheduleRow{
			Action: ActionStandardTeardown,
			Date:   addDays(o.eventDate, o.packageInfo.TeardownDaysAfter),
			Note:   "Regular teardown day",
		},
	)

	if o.options.LatePickup {
		rows = append(rows, ScheduleRow{
			Action: ActionLateTeardown,
			Date:   addDays(o.eventDate, o.packageInfo.TeardownDaysAfter+1),
			Note:   "Extra day after requested",
		})
	}

	return rows
}

// ScheduledPickupDate is the date the signs are due back:
// event + teardownDaysAfter, plus one day when latePickup is set.
func (o *Order) ScheduledPickupDate() time.Time {
	extra := 0
	if o.options.LatePickup {
		extra = 1
	}
	return addDays(o.eventDate, o.packageInfo.TeardownDaysAfter+extra)
}

// DaysLate counts calendar days between the scheduled pickup date and the
// actual one, floored at zero. Only the dates matter: a pickup late in the
// evening, or recorded in another timezone, is still the same calendar day.
func (o *Order) DaysLate(actualPickup time.Time) int {
	days := calendarDaysBetween(o.ScheduledPickupDate(), actualPickup)
	if days < 0 {
		return 0
	}
	return days
}

// calendarDaysBetween counts whole calendar days from one date to another,
// each date taken in its own location.
func calendarDaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// LateFee computes the charge for a late pickup: days late multiplied by the
// package's extra-day-after price.
func (o *Order) LateFee(actualPickup time.Time) kernel.Money {
	return o.packageInfo.ExtraDayAfterPrice.MulInt(o.DaysLate(actualPickup))
}
