package commands

import (
	"errors"

	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/pkg/errs"
	"signhero/internal/pkg/guard"
)

var (
	ErrResetOrderStatusCommandIsNotConstructed = errors.New(
		"ResetOrderStatusCommand must be created via NewResetOrderStatusCommand constructor",
	)

	// ErrResetRequiresAdmin is returned when a non-admin actor attempts the
	// administrative reset.
	ErrResetRequiresAdmin = errors.New("resetting an order to pending requires the admin role")
)

// AdminRole is the role string that unlocks administrative operations.
const AdminRole = "admin"

// ResetOrderStatusCommand is the administrative support tool that returns an
// order to pending from any state, bypassing the transition table. It is
// deliberately separate from ChangeOrderStatusCommand and gated on the
// actor's role.
type ResetOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorRole string

	guard guard.ConstructorGuard
}

// NewResetOrderStatusCommand creates a reset command for the given order.
// actorRole is the requesting user's resolved role; the handler rejects
// anything but AdminRole.
func NewResetOrderStatusCommand(orderID kernel.UUID, actorRole string) (ResetOrderStatusCommand, error) {
	cmd := ResetOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorRole(actorRole),
	); err != nil {
		return ResetOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResetOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrResetOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to reset.
func (c ResetOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorRole returns the requesting user's role.
func (c ResetOrderStatusCommand) ActorRole() string {
	return c.actorRole
}

func (c *ResetOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ResetOrderStatusCommand) setActorRole(actorRole string) error {
	if actorRole == "" {
		return errs.NewValueIsRequiredError("actorRole")
	}

	c.actorRole = actorRole
	return nil
}
