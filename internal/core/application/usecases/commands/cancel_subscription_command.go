package commands

import (
	"errors"

	"signhero/internal/pkg/errs"
	"signhero/internal/pkg/guard"
)

var ErrCancelSubscriptionCommandIsNotConstructed = errors.New(
	"CancelSubscriptionCommand must be created via NewCancelSubscriptionCommand constructor",
)

// CancelSubscriptionCommand applies a provider subscription-deleted event.
type CancelSubscriptionCommand struct { //nolint:recvcheck //using for validation
	providerSubscriptionID string

	guard guard.ConstructorGuard
}

// NewCancelSubscriptionCommand creates the subscription-deleted command.
func NewCancelSubscriptionCommand(providerSubscriptionID string) (CancelSubscriptionCommand, error) {
	cmd := CancelSubscriptionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setProviderSubscriptionID(providerSubscriptionID); err != nil {
		return CancelSubscriptionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelSubscriptionCommand) Validate() error {
	return c.guard.Validate(ErrCancelSubscriptionCommandIsNotConstructed)
}

// ProviderSubscriptionID returns the provider's subscription identifier.
func (c CancelSubscriptionCommand) ProviderSubscriptionID() string {
	return c.providerSubscriptionID
}

func (c *CancelSubscriptionCommand) setProviderSubscriptionID(providerSubscriptionID string) error {
	if providerSubscriptionID == "" {
		return errs.NewValueIsRequiredError("providerSubscriptionId")
	}

	c.providerSubscriptionID = providerSubscriptionID
	return nil
}
