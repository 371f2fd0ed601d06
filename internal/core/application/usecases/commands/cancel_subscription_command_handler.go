package commands

import (
	"context"
	"errors"
	"time"

	"signhero/internal/pkg/errs"
)

// CancelSubscriptionCommandHandler applies provider subscription-deleted
// events by marking the local record cancelled.
type CancelSubscriptionCommandHandler struct {
	uowFactory SubscriptionUoWFactory
	now        func() time.Time
}

// NewCancelSubscriptionCommandHandler creates a handler for subscription
// deletion events.
func NewCancelSubscriptionCommandHandler(uowFactory SubscriptionUoWFactory, now func() time.Time) CancelSubscriptionCommandHandler {
	return CancelSubscriptionCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle cancels the record tied to the provider subscription id. Unknown
// subscriptions are ignored, matching the update handler.
func (h *CancelSubscriptionCommandHandler) Handle(ctx context.Context, cmd CancelSubscriptionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	subscriptionRepo := uow.SubscriptionRepository()
	record, err := subscriptionRepo.GetByProviderSubscriptionID(ctx, cmd.ProviderSubscriptionID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	record.Cancel(h.now())

	if err = subscriptionRepo.Update(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
