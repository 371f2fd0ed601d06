package commands_test

import (
	"errors"
	"testing"
	"time"

	"signhero/internal/core/application/usecases/commands"
	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/core/domain/model/order"
	"signhero/internal/core/domain/model/report"
	"signhero/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGenerateReportCommandHandler_Handle_AdvancesStatus(t *testing.T) {
	ctx := t.Context()
	aggregate := orderFixture(order.Pending)
	cmd, err := commands.NewGenerateReportCommand(aggregate.ID(), report.PickTicket, "admin-1")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	reportRepo := new(MockReportRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("ReportRepository").Return(reportRepo).Once(),
		reportRepo.On("Add", mock.Anything, mock.AnythingOfType("*report.Report")).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderReportUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewGenerateReportCommandHandler(factory, fixedClock)
	archived, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Equal(t, order.Processing, aggregate.Status())
	require.Equal(t, report.PickTicket, archived.Kind())
	require.Equal(t, "admin-1", archived.GeneratedBy())
	orderRepo.AssertExpectations(t)
	reportRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestGenerateReportCommandHandler_Handle_NoAdvanceWhenStatusDoesNotMatch(t *testing.T) {
	ctx := t.Context()
	// already processing: a second pick ticket archives but does not advance
	aggregate := orderFixture(order.Processing)
	cmd, err := commands.NewGenerateReportCommand(aggregate.ID(), report.PickTicket, "admin-1")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	reportRepo := new(MockReportRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("ReportRepository").Return(reportRepo).Once(),
		reportRepo.On("Add", mock.Anything, mock.AnythingOfType("*report.Report")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderReportUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewGenerateReportCommandHandler(factory, fixedClock)
	_, err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Equal(t, order.Processing, aggregate.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	reportRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestGenerateReportCommandHandler_Handle_MissingOrderDataPersistsNothing(t *testing.T) {
	ctx := t.Context()
	incomplete, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), order.Pending,
		order.CustomerInfo{}, time.Time{}, "", order.PackageInfo{}, nil,
		order.Options{}, nil, kernel.ZeroMoney(), testNow, testNow,
	)
	require.NoError(t, err)

	cmd, err := commands.NewGenerateReportCommand(incomplete.ID(), report.PickTicket, "admin-1")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, incomplete.ID()).Return(incomplete, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderReportUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewGenerateReportCommandHandler(factory, fixedClock)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	uow.AssertNotCalled(t, "ReportRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestGenerateReportCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewGenerateReportCommand(id, report.OrderSummary, "admin-1")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("orderId", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderReportUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewGenerateReportCommandHandler(factory, fixedClock)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGenerateReportCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	aggregate := orderFixture(order.Deployed)
	cmd, err := commands.NewGenerateReportCommand(aggregate.ID(), report.PickupChecklist, "admin-1")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	reportRepo := new(MockReportRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("ReportRepository").Return(reportRepo).Once(),
		reportRepo.On("Add", mock.Anything, mock.AnythingOfType("*report.Report")).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderReportUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewGenerateReportCommandHandler(factory, fixedClock)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestGenerateReportCommand_Validation(t *testing.T) {
	t.Run("unconstructed_command_is_rejected", func(t *testing.T) {
		h := commands.NewGenerateReportCommandHandler(new(MockOrderReportUoWFactory), fixedClock)
		_, err := h.Handle(t.Context(), commands.GenerateReportCommand{})
		require.ErrorIs(t, err, commands.ErrGenerateReportCommandIsNotConstructed)
	})

	t.Run("invalid_kind_is_rejected", func(t *testing.T) {
		_, err := commands.NewGenerateReportCommand(kernel.NewUUID(), report.UnknownKind, "admin-1")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("actor_is_required", func(t *testing.T) {
		_, err := commands.NewGenerateReportCommand(kernel.NewUUID(), report.PickTicket, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
