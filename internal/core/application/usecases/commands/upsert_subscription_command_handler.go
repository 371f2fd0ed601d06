package commands

import (
	"context"
	"time"

	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/core/domain/model/subscription"
	"signhero/internal/core/ports"
)

// UpsertSubscriptionCommandHandler applies a completed checkout: it loads
// the live subscription from the billing provider and upserts the local
// record keyed by user id.
type UpsertSubscriptionCommandHandler struct {
	uowFactory SubscriptionUoWFactory
	billing    ports.BillingProvider
	now        func() time.Time
}

// NewUpsertSubscriptionCommandHandler creates a handler for checkout
// completion events.
func NewUpsertSubscriptionCommandHandler(
	uowFactory SubscriptionUoWFactory,
	billing ports.BillingProvider,
	now func() time.Time,
) UpsertSubscriptionCommandHandler {
	return UpsertSubscriptionCommandHandler{
		uowFactory: uowFactory,
		billing:    billing,
		now:        now,
	}
}

// Handle fetches the provider subscription for its current status and
// billing period, then writes the record. A provider failure surfaces as an
// external-service error before anything is stored.
func (h *UpsertSubscriptionCommandHandler) Handle(ctx context.Context, cmd UpsertSubscriptionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	provided, err := h.billing.GetSubscription(ctx, cmd.ProviderSubscriptionID())
	if err != nil {
		return err
	}

	record, err := subscription.NewSubscription(
		kernel.NewUUID(),
		cmd.UserID(),
		provided.Status,
		cmd.PlanID(),
		cmd.PlanName(),
		cmd.ProviderCustomerID(),
		provided.ID,
		provided.PeriodStart,
		provided.PeriodEnd,
		h.now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.SubscriptionRepository().Upsert(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
