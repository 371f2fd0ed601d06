package commands

import (
	"context"
	"time"

	"signhero/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler handles explicit status transitions.
// Returns the updated aggregate so the HTTP layer can echo the new record
// without a follow-up read.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewChangeOrderStatusCommandHandler creates a handler for explicit status
// transitions.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, now func() time.Time) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle loads the order, applies the transition through the aggregate, and
// persists the result. A rejected transition leaves the stored record
// untouched; store errors surface unchanged with no retry.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
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

	if err = aggregate.ChangeStatus(cmd.TargetStatus(), h.now()); err != nil {
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
