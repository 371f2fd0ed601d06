package commands

import (
	"errors"
	"time"

	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/core/domain/model/order"
	"signhero/internal/pkg/errs"
	"signhero/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a configurator submission: a priced sign
// rental with customer contact, layout, and extra-day options.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	userID       kernel.UUID
	customer     order.CustomerInfo
	eventDate    time.Time
	eventForName string
	packageInfo  order.PackageInfo
	slots        []order.Slot
	options      order.Options
	totalAmount  kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new rental order.
// Field-level rules live in the order aggregate; the command only checks
// the identifiers and the event date it carries.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	customer order.CustomerInfo,
	eventDate time.Time,
	eventForName string,
	packageInfo order.PackageInfo,
	slots []order.Slot,
	options order.Options,
	totalAmount kernel.Money,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setEventDate(eventDate),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.customer = customer
	cmd.eventForName = eventForName
	cmd.packageInfo = packageInfo
	cmd.slots = slots
	cmd.options = options
	cmd.totalAmount = totalAmount

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the customer's identifier.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// Customer returns the contact snapshot.
func (c CreateOrderCommand) Customer() order.CustomerInfo {
	return c.customer
}

// EventDate returns the deployment day.
func (c CreateOrderCommand) EventDate() time.Time {
	return c.eventDate
}

// EventForName returns the celebrated name.
func (c CreateOrderCommand) EventForName() string {
	return c.eventForName
}

// PackageInfo returns the purchased package snapshot.
func (c CreateOrderCommand) PackageInfo() order.PackageInfo {
	return c.packageInfo
}

// Slots returns the configured sign layout.
func (c CreateOrderCommand) Slots() []order.Slot {
	return c.slots
}

// Options returns the extra-day flags.
func (c CreateOrderCommand) Options() order.Options {
	return c.options
}

// TotalAmount returns the price quoted at configuration time.
func (c CreateOrderCommand) TotalAmount() kernel.Money {
	return c.totalAmount
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setEventDate(eventDate time.Time) error {
	if eventDate.IsZero() {
		return errs.NewValueIsRequiredError("eventDate")
	}

	c.eventDate = eventDate
	return nil
}
