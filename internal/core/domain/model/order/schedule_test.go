package order_test

import (
	"testing"
	"time"

	"signhero/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func rowByAction(t *testing.T, rows []order.ScheduleRow, action string) order.ScheduleRow {
	t.Helper()
	for _, r := range rows {
		if r.Action == action {
			return r
		}
	}
	t.Fatalf("schedule has no %q row", action)
	return order.ScheduleRow{}
}

func TestOrderSchedule(t *testing.T) {
	t.Run("standard_order", func(t *testing.T) {
		o := newTestOrder(t, order.Options{})
		rows := o.Schedule()

		require.Len(t, rows, 3)
		assert.Equal(t, day(2024, 6, 9), rowByAction(t, rows, order.ActionStandardSetup).Date)
		assert.Equal(t, day(2024, 6, 10), rowByAction(t, rows, order.ActionEventDay).Date)
		assert.Equal(t, day(2024, 6, 11), rowByAction(t, rows, order.ActionStandardTeardown).Date)
	})

	t.Run("early_delivery_adds_a_day_before_standard_setup", func(t *testing.T) {
		o := newTestOrder(t, order.Options{EarlyDelivery: true})
		rows := o.Schedule()

		require.Len(t, rows, 4)
		assert.Equal(t, day(2024, 6, 8), rowByAction(t, rows, order.ActionEarlySetup).Date)
		assert.Equal(t, day(2024, 6, 9), rowByAction(t, rows, order.ActionStandardSetup).Date)
	})

	t.Run("late_pickup_adds_a_day_after_standard_teardown", func(t *testing.T) {
		o := newTestOrder(t, order.Options{LatePickup: true})
		rows := o.Schedule()

		require.Len(t, rows, 4)
		assert.Equal(t, day(2024, 6, 11), rowByAction(t, rows, order.ActionStandardTeardown).Date)
		assert.Equal(t, day(2024, 6, 12), rowByAction(t, rows, order.ActionLateTeardown).Date)
	})

	t.Run("rows_are_in_chronological_order", func(t *testing.T) {
		o := newTestOrder(t, order.Options{EarlyDelivery: true, LatePickup: true})
		rows := o.Schedule()

		require.Len(t, rows, 5)
		for i := 1; i < len(rows); i++ {
			assert.True(t, rows[i-1].Date.Before(rows[i].Date),
				"row %d (%s) should precede row %d (%s)", i-1, rows[i-1].Action, i, rows[i].Action)
		}
	})
}

func TestOrderScheduledPickupDate(t *testing.T) {
	t.Run("standard", func(t *testing.T) {
		o := newTestOrder(t, order.Options{})
		assert.Equal(t, day(2024, 6, 11), o.ScheduledPickupDate())
	})

	t.Run("late_pickup_shifts_one_day", func(t *testing.T) {
		o := newTestOrder(t, order.Options{LatePickup: true})
		assert.Equal(t, day(2024, 6, 12), o.ScheduledPickupDate())
	})
}

func TestOrderLateFee(t *testing.T) {
	perDay := testPackage().ExtraDayAfterPrice

	t.Run("on_time_pickup_is_free", func(t *testing.T) {
		o := newTestOrder(t, order.Options{})
		fee := o.LateFee(o.ScheduledPickupDate())
		assert.True(t, fee.IsZero())
	})

	t.Run("two_days_late_charges_two_extra_days", func(t *testing.T) {
		o := newTestOrder(t, order.Options{})
		actual := o.ScheduledPickupDate().AddDate(0, 0, 2)

		assert.Equal(t, 2, o.DaysLate(actual))
		assert.True(t, o.LateFee(actual).IsEqual(perDay.MulInt(2)))
	})

	t.Run("late_evening_pickup_in_another_zone_counts_calendar_days", func(t *testing.T) {
		o := newTestOrder(t, order.Options{})
		scheduled := o.ScheduledPickupDate()
		pacific := time.FixedZone("PDT", -7*60*60)
		actual := time.Date(scheduled.Year(), scheduled.Month(), scheduled.Day()+2,
			23, 0, 0, 0, pacific)

		assert.Equal(t, 2, o.DaysLate(actual))
		assert.True(t, o.LateFee(actual).IsEqual(perDay.MulInt(2)))
	})

	t.Run("early_pickup_never_goes_negative", func(t *testing.T) {
		o := newTestOrder(t, order.Options{})
		actual := o.ScheduledPickupDate().AddDate(0, 0, -3)

		assert.Equal(t, 0, o.DaysLate(actual))
		assert.True(t, o.LateFee(actual).IsZero())
	})
}
