package commands

import (
	"context"
	"time"

	"signhero/internal/core/domain/model/order"
)

// RecordPickupCommandHandler handles check-in form submissions. The handler
// derives lateness and the late fee from the order's own schedule so the
// client can never fabricate either.
type RecordPickupCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewRecordPickupCommandHandler creates a handler for check-in recording.
func NewRecordPickupCommandHandler(uowFactory OrderUoWFactory, now func() time.Time) RecordPickupCommandHandler {
	return RecordPickupCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle computes the late fee from the scheduled pickup date, attaches the
// pickup info to the order, and persists it. The aggregate enforces that the
// order is in checkin status and that pickup info is recorded only once.
// Returns the updated aggregate.
func (h *RecordPickupCommandHandler) Handle(ctx context.Context, cmd RecordPickupCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	daysLate := aggregate.DaysLate(cmd.PickupDate())
	info := order.PickupInfo{
		PickupDate:     cmd.PickupDate(),
		SignConditions: cmd.SignConditions(),
		Notes:          cmd.Notes(),
		PickedUpOnTime: daysLate == 0,
		LateFee:        aggregate.LateFee(cmd.PickupDate()),
		CheckedBy:      cmd.CheckedBy(),
	}

	if err = aggregate.RecordPickup(info, h.now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
