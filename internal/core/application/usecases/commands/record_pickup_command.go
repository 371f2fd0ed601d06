package commands

import (
	"errors"
	"time"

	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/core/domain/model/order"
	"signhero/internal/pkg/errs"
	"signhero/internal/pkg/guard"
)

var ErrRecordPickupCommandIsNotConstructed = errors.New(
	"RecordPickupCommand must be created via NewRecordPickupCommand constructor",
)

// RecordPickupCommand represents the check-in form submission: per-sign
// conditions, the actual pickup date, and who performed the check.
type RecordPickupCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	pickupDate     time.Time
	signConditions []order.SignCondition
	notes          string
	checkedBy      string

	guard guard.ConstructorGuard
}

// NewRecordPickupCommand creates a check-in command. The late-fee math is
// derived by the handler from the order's own schedule, not supplied here.
func NewRecordPickupCommand(
	orderID kernel.UUID,
	pickupDate time.Time,
	signConditions []order.SignCondition,
	notes string,
	checkedBy string,
) (RecordPickupCommand, error) {
	cmd := RecordPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPickupDate(pickupDate),
		cmd.setCheckedBy(checkedBy),
	); err != nil {
		return RecordPickupCommand{}, err
	}

	cmd.signConditions = signConditions
	cmd.notes = notes

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPickupCommand) Validate() error {
	return c.guard.Validate(ErrRecordPickupCommandIsNotConstructed)
}

// OrderID returns the order being checked in.
func (c RecordPickupCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PickupDate returns the actual pickup date.
func (c RecordPickupCommand) PickupDate() time.Time {
	return c.pickupDate
}

// SignConditions returns the per-sign condition assessments.
func (c RecordPickupCommand) SignConditions() []order.SignCondition {
	return c.signConditions
}

// Notes returns the free-form check-in notes.
func (c RecordPickupCommand) Notes() string {
	return c.notes
}

// CheckedBy returns the acting user.
func (c RecordPickupCommand) CheckedBy() string {
	return c.checkedBy
}

func (c *RecordPickupCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordPickupCommand) setPickupDate(pickupDate time.Time) error {
	if pickupDate.IsZero() {
		return errs.NewValueIsRequiredError("pickupDate")
	}

	c.pickupDate = pickupDate
	return nil
}

func (c *RecordPickupCommand) setCheckedBy(checkedBy string) error {
	if checkedBy == "" {
		return errs.NewValueIsRequiredError("checkedBy")
	}

	c.checkedBy = checkedBy
	return nil
}
