package order

import (
	"errors"
	"time"

	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrPickupInfoAlreadyRecorded is returned when check-in is attempted on an
	// order that already carries pickup info. PickupInfo is write-once.
	ErrPickupInfoAlreadyRecorded = errors.New("pickup info has already been recorded for this order")
)

// Options are the boolean extra-day flags a customer can select.
type Options struct {
	// EarlyDelivery adds one priced setup day before the standard setup day.
	EarlyDelivery bool

	// LatePickup adds one priced teardown day after the standard teardown day.
	LatePickup bool
}

// Order represents one yard-sign rental transaction. It is the aggregate root
// that manages the order lifecycle from pending through deployment and
// check-in to completion.
//
// Order follows these invariants:
//   - Must have valid order and user identifiers
//   - Status transitions follow the workflow table in Status
//   - CheckIn -> Completed requires recorded pickup info
//   - Package info and customer info are value snapshots, not live references
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID is the customer who placed the order
	userID kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// totalAmount is the price fixed at creation; never recomputed here
	totalAmount kernel.Money

	// eventDate is the day the signs are deployed; required for reports
	eventDate time.Time

	// eventForName is the celebrated name rendered on the custom name sign
	eventForName string

	// customer is the contact snapshot from the configurator
	customer CustomerInfo

	// packageInfo is the purchased package snapshot
	packageInfo PackageInfo

	// slots is the ordered sign layout defining what to pull from inventory
	slots []Slot

	// options are the extra-day flags
	options Options

	// pickupInfo is nil until check-in records it, exactly once
	pickupInfo *PickupInfo

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation. This is the
// only way to create a fresh order, ensuring all business invariants hold.
//
// Parameters:
//   - id, userID: valid UUIDs
//   - customer: contact snapshot (validated)
//   - eventDate: deployment day; required
//   - eventForName: celebrated name; required when a slot is a name slot
//   - packageInfo: purchased package snapshot (validated)
//   - slots: sign layout; every slot is validated, at most one name slot
//   - options: extra-day flags
//   - totalAmount: price fixed by the caller at creation time
//   - now: creation timestamp
//
// Returns the created order, or a joined validation error naming every
// violated field.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	customer CustomerInfo,
	eventDate time.Time,
	eventForName string,
	packageInfo PackageInfo,
	slots []Slot,
	options Options,
	totalAmount kernel.Money,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setCustomer(customer),
		o.setEventDate(eventDate),
		o.setPackageInfo(packageInfo),
		o.setSlots(slots, eventForName),
	); err != nil {
		return nil, err
	}

	o.eventForName = eventForName
	o.options = options
	o.totalAmount = totalAmount

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without applying the
// creation-time rules. The stored status must still be a valid enum member.
//
// This function is intended for repository implementations only.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	status Status,
	customer CustomerInfo,
	eventDate time.Time,
	eventForName string,
	packageInfo PackageInfo,
	slots []Slot,
	options Options,
	pickupInfo *PickupInfo,
	totalAmount kernel.Money,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(id.Validate(), userID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		userID:        userID,
		status:        status,
		totalAmount:   totalAmount,
		eventDate:     eventDate,
		eventForName:  eventForName,
		customer:      customer,
		packageInfo:   packageInfo,
		slots:         slots,
		options:       options,
		pickupInfo:    pickupInfo,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the customer's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the price fixed at creation.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// EventDate returns the deployment day.
func (o *Order) EventDate() time.Time {
	return o.eventDate
}

// EventForName returns the celebrated name for the custom name sign.
func (o *Order) EventForName() string {
	return o.eventForName
}

// Customer returns the contact snapshot.
func (o *Order) Customer() CustomerInfo {
	return o.customer
}

// PackageInfo returns the purchased package snapshot.
func (o *Order) PackageInfo() PackageInfo {
	return o.packageInfo
}

// Slots returns a copy of the ordered sign layout.
func (o *Order) Slots() []Slot {
	slots := make([]Slot, len(o.slots))
	copy(slots, o.slots)
	return slots
}

// Options returns the extra-day flags.
func (o *Order) Options() Options {
	return o.options
}

// PickupInfo returns the recorded check-in outcome, or nil before check-in.
func (o *Order) PickupInfo() *PickupInfo {
	return o.pickupInfo
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// HasNameSlot reports whether the layout reserves the custom name-sign slot.
func (o *Order) HasNameSlot() bool {
	for _, s := range o.slots {
		if s.IsNameSlot {
			return true
		}
	}
	return false
}

// SignSlots returns only the slots bound to concrete signs, in layout order.
func (o *Order) SignSlots() []Slot {
	slots := make([]Slot, 0, len(o.slots))
	for _, s := range o.slots {
		if s.HasSign() {
			slots = append(slots, s)
		}
	}
	return slots
}

// MissingReportData names the fields report generation requires but the order
// lacks. An empty result means reports can be generated.
func (o *Order) MissingReportData() []string {
	var missing []string
	if len(o.slots) == 0 {
		missing = append(missing, "previewSlots")
	}
	if o.eventDate.IsZero() {
		missing = append(missing, "eventDate")
	}
	return missing
}

// ChangeStatus transitions the order to target along the workflow table.
//
// Business rules enforced here, server-side:
//   - target must be a valid status (ErrValueIsInvalid otherwise)
//   - the move must be in the transition table
//   - CheckIn -> Completed additionally requires recorded pickup info
//
// On success the status and updatedAt are changed in memory; persistence is
// the caller's concern.
func (o *Order) ChangeStatus(target Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	if newStatus == Completed && o.pickupInfo == nil {
		return errs.NewValueIsRequiredError("pickupInfo must be recorded before completing the order")
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// ResetToPending performs the administrative reset from any state back to
// Pending. It bypasses the transition table on purpose and must only be
// reachable through the admin-gated reset operation.
func (o *Order) ResetToPending(now time.Time) {
	o.status = Pending
	o.updatedAt = now
}

// RecordPickup attaches the check-in outcome to the order.
//
// Rules:
//   - the order must be in CheckIn status
//   - pickup info can be recorded exactly once
//   - the info itself must validate
func (o *Order) RecordPickup(info PickupInfo, now time.Time) error {
	if o.status != CheckIn {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			errors.New(o.status.String()+" is not a valid status to record a pickup"),
		)
	}
	if o.pickupInfo != nil {
		return ErrPickupInfoAlreadyRecorded
	}
	if err := info.Validate(); err != nil {
		return err
	}

	o.pickupInfo = &info
	o.updatedAt = now
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setUserID validates and sets the customer identifier.
func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

// setCustomer validates and sets the contact snapshot.
func (o *Order) setCustomer(customer CustomerInfo) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

// setEventDate requires a non-zero deployment day.
func (o *Order) setEventDate(eventDate time.Time) error {
	if eventDate.IsZero() {
		return errs.NewValueIsRequiredError("eventDate")
	}
	o.eventDate = eventDate
	return nil
}

// setPackageInfo validates and sets the package snapshot.
func (o *Order) setPackageInfo(packageInfo PackageInfo) error {
	if err := packageInfo.Validate(); err != nil {
		return err
	}
	o.packageInfo = packageInfo
	return nil
}

// setSlots validates the layout: at least one slot, each slot valid, at most
// one name slot, and a name slot requires eventForName to render from.
func (o *Order) setSlots(slots []Slot, eventForName string) error {
	if len(slots) == 0 {
		return errs.NewValueIsRequiredError("previewSlots")
	}

	var violations []error
	nameSlots := 0
	for _, s := range slots {
		if err := s.Validate(); err != nil {
			violations = append(violations, err)
		}
		if s.IsNameSlot {
			nameSlots++
		}
	}
	if nameSlots > 1 {
		violations = append(violations, errs.NewValueIsInvalidError("previewSlots contain more than one name slot"))
	}
	if nameSlots == 1 && eventForName == "" {
		violations = append(violations, errs.NewValueIsRequiredError("eventForName"))
	}
	if err := errors.Join(violations...); err != nil {
		return err
	}

	o.slots = make([]Slot, len(slots))
	copy(o.slots, slots)
	return nil
}
