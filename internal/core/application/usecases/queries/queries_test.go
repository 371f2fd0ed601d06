package queries_test

import (
	"testing"
	"time"

	"signhero/internal/core/application/usecases/queries"
	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/core/domain/model/order"
	"signhero/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestGetOrderQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()
		q, err := queries.NewGetOrderQuery(id)
		require.NoError(t, err)
		require.NoError(t, q.Validate())
		require.True(t, id.IsEqual(q.OrderID()))
	})

	t.Run("invalid_id", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("unconstructed", func(t *testing.T) {
		q := queries.GetOrderQuery{}
		require.ErrorIs(t, q.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	})
}

func TestGetOrdersByStatusQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		q, err := queries.NewGetOrdersByStatusQuery(order.Deployed)
		require.NoError(t, err)
		require.Equal(t, order.Deployed, q.Status())
	})

	t.Run("invalid_status", func(t *testing.T) {
		_, err := queries.NewGetOrdersByStatusQuery(order.Unknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestGetReportsByOrderQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		q, err := queries.NewGetReportsByOrderQuery(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, q.Validate())
	})

	t.Run("invalid_id", func(t *testing.T) {
		_, err := queries.NewGetReportsByOrderQuery(kernel.UUID{})
		require.Error(t, err)
	})
}

func TestGetOverduePickupsQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		asOf := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
		q, err := queries.NewGetOverduePickupsQuery(asOf)
		require.NoError(t, err)
		require.Equal(t, asOf, q.AsOf())
	})

	t.Run("zero_reference_date", func(t *testing.T) {
		_, err := queries.NewGetOverduePickupsQuery(time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
