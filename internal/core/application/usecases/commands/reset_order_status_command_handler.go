package commands

import (
	"context"
	"time"

	"signhero/internal/core/domain/model/order"
)

// ResetOrderStatusCommandHandler handles the admin-gated reset to pending.
type ResetOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewResetOrderStatusCommandHandler creates a handler for the administrative
// reset.
func NewResetOrderStatusCommandHandler(uowFactory OrderUoWFactory, now func() time.Time) ResetOrderStatusCommandHandler {
	return ResetOrderStatusCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle rejects non-admin actors before touching storage, then resets the
// order to pending and persists it. Returns the updated aggregate.
func (h *ResetOrderStatusCommandHandler) Handle(ctx context.Context, cmd ResetOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if cmd.ActorRole() != AdminRole {
		return nil, ErrResetRequiresAdmin
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

	aggregate.ResetToPending(h.now())

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
