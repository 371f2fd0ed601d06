package commands

import (
	"errors"
	"time"

	"signhero/internal/pkg/errs"
	"signhero/internal/pkg/guard"
)

var ErrSyncSubscriptionCommandIsNotConstructed = errors.New(
	"SyncSubscriptionCommand must be created via NewSyncSubscriptionCommand constructor",
)

// SyncSubscriptionCommand applies a provider subscription-updated event:
// the local record mirrors the provider's status and billing period.
type SyncSubscriptionCommand struct { //nolint:recvcheck //using for validation
	providerSubscriptionID string
	status                 string
	periodStart            time.Time
	periodEnd              time.Time

	guard guard.ConstructorGuard
}

// NewSyncSubscriptionCommand creates the subscription-updated command.
func NewSyncSubscriptionCommand(
	providerSubscriptionID string,
	status string,
	periodStart time.Time,
	periodEnd time.Time,
) (SyncSubscriptionCommand, error) {
	cmd := SyncSubscriptionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProviderSubscriptionID(providerSubscriptionID),
		cmd.setStatus(status),
	); err != nil {
		return SyncSubscriptionCommand{}, err
	}

	cmd.periodStart = periodStart
	cmd.periodEnd = periodEnd

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SyncSubscriptionCommand) Validate() error {
	return c.guard.Validate(ErrSyncSubscriptionCommandIsNotConstructed)
}

// ProviderSubscriptionID returns the provider's subscription identifier.
func (c SyncSubscriptionCommand) ProviderSubscriptionID() string {
	return c.providerSubscriptionID
}

// Status returns the provider's current subscription status.
func (c SyncSubscriptionCommand) Status() string {
	return c.status
}

// PeriodStart returns the start of the current billing period.
func (c SyncSubscriptionCommand) PeriodStart() time.Time {
	return c.periodStart
}

// PeriodEnd returns the end of the current billing period.
func (c SyncSubscriptionCommand) PeriodEnd() time.Time {
	return c.periodEnd
}

func (c *SyncSubscriptionCommand) setProviderSubscriptionID(providerSubscriptionID string) error {
	if providerSubscriptionID == "" {
		return errs.NewValueIsRequiredError("providerSubscriptionId")
	}

	c.providerSubscriptionID = providerSubscriptionID
	return nil
}

func (c *SyncSubscriptionCommand) setStatus(status string) error {
	if status == "" {
		return errs.NewValueIsRequiredError("status")
	}

	c.status = status
	return nil
}
