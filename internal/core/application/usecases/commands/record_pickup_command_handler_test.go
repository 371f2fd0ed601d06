package commands_test

import (
	"testing"
	"time"

	"signhero/internal/core/application/usecases/commands"
	"signhero/internal/core/domain/model/order"
	"signhero/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pickupConditions() []order.SignCondition {
	return []order.SignCondition{
		{SignID: "sign-1", Condition: order.ConditionGood},
	}
}

func TestRecordPickupCommandHandler_Handle_OnTime(t *testing.T) {
	ctx := t.Context()
	aggregate := orderFixture(order.CheckIn)
	// scheduled pickup is event (06-10) + 1 teardown day
	pickupDate := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewRecordPickupCommand(aggregate.ID(), pickupDate, pickupConditions(), "", "admin-1")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordPickupCommandHandler(factory, fixedClock)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	info := updated.PickupInfo()
	require.NotNil(t, info)
	require.True(t, info.PickedUpOnTime)
	require.True(t, info.LateFee.IsZero())
	require.Equal(t, "admin-1", info.CheckedBy)
}

func TestRecordPickupCommandHandler_Handle_LatePickupDerivesFee(t *testing.T) {
	ctx := t.Context()
	aggregate := orderFixture(order.CheckIn)
	// two days past the scheduled 06-11 pickup
	pickupDate := time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewRecordPickupCommand(aggregate.ID(), pickupDate, pickupConditions(), "left at curb", "admin-1")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordPickupCommandHandler(factory, fixedClock)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	info := updated.PickupInfo()
	require.NotNil(t, info)
	require.False(t, info.PickedUpOnTime)
	expected := aggregate.PackageInfo().ExtraDayAfterPrice.MulInt(2)
	require.True(t, info.LateFee.IsEqual(expected))
}

func TestRecordPickupCommandHandler_Handle_WrongStatus(t *testing.T) {
	ctx := t.Context()
	aggregate := orderFixture(order.Deployed)
	cmd, err := commands.NewRecordPickupCommand(
		aggregate.ID(), time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC), pickupConditions(), "", "admin-1",
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordPickupCommandHandler(factory, fixedClock)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
