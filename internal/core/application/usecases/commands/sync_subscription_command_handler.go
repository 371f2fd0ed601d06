package commands

import (
	"context"
	"errors"
	"time"

	"signhero/internal/pkg/errs"
)

// SyncSubscriptionCommandHandler applies provider subscription-updated
// events to the local record.
type SyncSubscriptionCommandHandler struct {
	uowFactory SubscriptionUoWFactory
	now        func() time.Time
}

// NewSyncSubscriptionCommandHandler creates a handler for subscription
// update events.
func NewSyncSubscriptionCommandHandler(uowFactory SubscriptionUoWFactory, now func() time.Time) SyncSubscriptionCommandHandler {
	return SyncSubscriptionCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle updates the record tied to the provider subscription id. An event
// for a subscription this system never stored is ignored: the provider
// sends events for all subscriptions under the account, not just ours.
func (h *SyncSubscriptionCommandHandler) Handle(ctx context.Context, cmd SyncSubscriptionCommand) error {
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

	if err = record.SyncPeriod(cmd.Status(), cmd.PeriodStart(), cmd.PeriodEnd(), h.now()); err != nil {
		return err
	}

	if err = subscriptionRepo.Update(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
