package report_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/core/domain/model/report"
	"signhero/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generatedAt = time.Date(2024, 6, 5, 9, 30, 0, 0, time.UTC)

func TestKindFromString(t *testing.T) {
	tests := []struct {
		value string
		want  report.Kind
	}{
		{"pickTicket", report.PickTicket},
		{"orderSummary", report.OrderSummary},
		{"pickupChecklist", report.PickupChecklist},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := report.KindFromString(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.value, got.String())
		})
	}

	t.Run("invalid_values_are_rejected", func(t *testing.T) {
		for _, value := range []string{"", "unknown", "PickTicket", "pick_ticket"} {
			_, err := report.KindFromString(value)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "value %q", value)
		}
	})
}

func TestNewReport(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("derives_the_archive_filename", func(t *testing.T) {
		r, err := report.NewReport(
			kernel.NewUUID(), orderID, report.PickTicket,
			"PICK TICKET", "admin-1", generatedAt,
		)
		require.NoError(t, err)

		prefix := fmt.Sprintf("pickTicket_%s_", orderID.ShortString())
		assert.True(t, strings.HasPrefix(r.Filename(), prefix), "got %q", r.Filename())
		assert.True(t, strings.HasSuffix(r.Filename(), ".html"))
		assert.Equal(t, generatedAt, r.GeneratedAt())
	})

	t.Run("repeated_generations_get_distinct_filenames", func(t *testing.T) {
		first, err := report.NewReport(
			kernel.NewUUID(), orderID, report.OrderSummary, "SUMMARY", "admin-1", generatedAt,
		)
		require.NoError(t, err)
		second, err := report.NewReport(
			kernel.NewUUID(), orderID, report.OrderSummary, "SUMMARY", "admin-1", generatedAt,
		)
		require.NoError(t, err)

		assert.NotEqual(t, first.Filename(), second.Filename())
	})

	t.Run("requires_content_and_actor", func(t *testing.T) {
		_, err := report.NewReport(kernel.NewUUID(), orderID, report.PickTicket, "", "admin-1", generatedAt)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = report.NewReport(kernel.NewUUID(), orderID, report.PickTicket, "PICK TICKET", "", generatedAt)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_invalid_kind", func(t *testing.T) {
		_, err := report.NewReport(kernel.NewUUID(), orderID, report.UnknownKind, "X", "admin-1", generatedAt)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreReport(t *testing.T) {
	t.Run("keeps_the_stored_filename", func(t *testing.T) {
		r, err := report.RestoreReport(
			kernel.NewUUID(), kernel.NewUUID(), report.PickupChecklist,
			"pickupChecklist_12ab34cd_99ff00aa.html", "CHECKLIST", "admin-2", generatedAt,
		)
		require.NoError(t, err)
		assert.Equal(t, "pickupChecklist_12ab34cd_99ff00aa.html", r.Filename())
	})

	t.Run("zero_value_report_is_rejected", func(t *testing.T) {
		var r report.Report
		require.ErrorIs(t, r.Validate(), report.ErrReportIsNotConstructed)
	})
}
