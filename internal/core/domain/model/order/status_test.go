package order_test

import (
	"testing"

	"signhero/internal/core/domain/model/order"
	"signhero/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	t.Run("parses_all_valid_values", func(t *testing.T) {
		cases := map[string]order.Status{
			"pending":    order.Pending,
			"processing": order.Processing,
			"deployed":   order.Deployed,
			"checkin":    order.CheckIn,
			"completed":  order.Completed,
			"cancelled":  order.Cancelled,
		}

		for raw, expected := range cases {
			parsed, err := order.StatusFromString(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, expected, parsed)
		}
	})

	t.Run("rejects_unknown_values", func(t *testing.T) {
		for _, raw := range []string{"", "Pending", "shipped", "check-in", "done"} {
			_, err := order.StatusFromString(raw)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, raw)
		}
	})
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "pending", order.Pending.String())
	assert.Equal(t, "checkin", order.CheckIn.String())
	assert.Equal(t, "unknown", order.Unknown.String())
	assert.Equal(t, "unknown", order.Status(42).String())
}

func TestStatusValidate(t *testing.T) {
	for _, s := range []order.Status{
		order.Pending, order.Processing, order.Deployed,
		order.CheckIn, order.Completed, order.Cancelled,
	} {
		require.NoError(t, s.Validate(), s.String())
	}

	require.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.Status(99).Validate(), errs.ErrValueIsInvalid)
}

func TestStatusTransitionTable(t *testing.T) {
	t.Run("forward_path", func(t *testing.T) {
		assert.True(t, order.Pending.CanTransitionTo(order.Processing))
		assert.True(t, order.Processing.CanTransitionTo(order.Deployed))
		assert.True(t, order.Deployed.CanTransitionTo(order.CheckIn))
		assert.True(t, order.CheckIn.CanTransitionTo(order.Completed))
	})

	t.Run("cancellation_is_reachable_before_checkin_only", func(t *testing.T) {
		assert.True(t, order.Pending.CanTransitionTo(order.Cancelled))
		assert.True(t, order.Processing.CanTransitionTo(order.Cancelled))
		assert.True(t, order.Deployed.CanTransitionTo(order.Cancelled))
		assert.False(t, order.CheckIn.CanTransitionTo(order.Cancelled))
		assert.False(t, order.Completed.CanTransitionTo(order.Cancelled))
	})

	t.Run("no_skipping_stages", func(t *testing.T) {
		assert.False(t, order.Pending.CanTransitionTo(order.Deployed))
		assert.False(t, order.Pending.CanTransitionTo(order.Completed))
		assert.False(t, order.Processing.CanTransitionTo(order.CheckIn))
	})

	t.Run("no_backward_moves", func(t *testing.T) {
		assert.False(t, order.Processing.CanTransitionTo(order.Pending))
		assert.False(t, order.Deployed.CanTransitionTo(order.Processing))
		assert.False(t, order.Completed.CanTransitionTo(order.CheckIn))
	})

	t.Run("terminal_states", func(t *testing.T) {
		assert.True(t, order.Completed.IsTerminal())
		assert.True(t, order.Cancelled.IsTerminal())
		assert.False(t, order.Deployed.IsTerminal())
	})
}

func TestStatusTransitionTo(t *testing.T) {
	t.Run("legal_move_returns_target", func(t *testing.T) {
		next, err := order.Pending.TransitionTo(order.Processing)
		require.NoError(t, err)
		assert.Equal(t, order.Processing, next)
	})

	t.Run("illegal_move_is_rejected", func(t *testing.T) {
		_, err := order.Cancelled.TransitionTo(order.Pending)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid_target_is_rejected", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Unknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
