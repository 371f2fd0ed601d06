package commands

import (
	"errors"

	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/pkg/errs"
	"signhero/internal/pkg/guard"
)

var ErrUpsertSubscriptionCommandIsNotConstructed = errors.New(
	"UpsertSubscriptionCommand must be created via NewUpsertSubscriptionCommand constructor",
)

// UpsertSubscriptionCommand is the consequence of a completed checkout: the
// session metadata plus the provider's object ids. The handler pulls the
// subscription's live status and billing period from the provider.
type UpsertSubscriptionCommand struct { //nolint:recvcheck //using for validation
	userID                 kernel.UUID
	planID                 string
	planName               string
	providerCustomerID     string
	providerSubscriptionID string

	guard guard.ConstructorGuard
}

// NewUpsertSubscriptionCommand creates the checkout-completion command.
func NewUpsertSubscriptionCommand(
	userID kernel.UUID,
	planID string,
	planName string,
	providerCustomerID string,
	providerSubscriptionID string,
) (UpsertSubscriptionCommand, error) {
	cmd := UpsertSubscriptionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setPlanID(planID),
		cmd.setProviderSubscriptionID(providerSubscriptionID),
	); err != nil {
		return UpsertSubscriptionCommand{}, err
	}

	cmd.planName = planName
	cmd.providerCustomerID = providerCustomerID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpsertSubscriptionCommand) Validate() error {
	return c.guard.Validate(ErrUpsertSubscriptionCommandIsNotConstructed)
}

// UserID returns the subscribing user.
func (c UpsertSubscriptionCommand) UserID() kernel.UUID {
	return c.userID
}

// PlanID returns the purchased plan identifier.
func (c UpsertSubscriptionCommand) PlanID() string {
	return c.planID
}

// PlanName returns the purchased plan's display name.
func (c UpsertSubscriptionCommand) PlanName() string {
	return c.planName
}

// ProviderCustomerID returns the provider's customer identifier.
func (c UpsertSubscriptionCommand) ProviderCustomerID() string {
	return c.providerCustomerID
}

// ProviderSubscriptionID returns the provider's subscription identifier.
func (c UpsertSubscriptionCommand) ProviderSubscriptionID() string {
	return c.providerSubscriptionID
}

func (c *UpsertSubscriptionCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *UpsertSubscriptionCommand) setPlanID(planID string) error {
	if planID == "" {
		return errs.NewValueIsRequiredError("planId")
	}

	c.planID = planID
	return nil
}

func (c *UpsertSubscriptionCommand) setProviderSubscriptionID(providerSubscriptionID string) error {
	if providerSubscriptionID == "" {
		return errs.NewValueIsRequiredError("providerSubscriptionId")
	}

	c.providerSubscriptionID = providerSubscriptionID
	return nil
}
