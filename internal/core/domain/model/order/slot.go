package order

import (
	"fmt"

	"signhero/internal/pkg/errs"
)

// SignRef is a reference to a catalog sign bound to a slot. The descriptor
// fields are snapshotted at order time because reports printed months later
// must describe the sign as it was rented.
type SignRef struct {
	ID        string
	Name      string
	EventType string
	Style     string
	Color     string
}

// Slot is one position in an order's sign layout: either bound to a concrete
// sign or reserved as the single custom name-sign placeholder.
type Slot struct {
	// Position is the 1-based slot index in the layout.
	Position int

	// Sign is the bound catalog sign; nil for a name slot or an empty slot.
	Sign *SignRef

	// IsNameSlot marks the placeholder rendered from the order's
	// eventForName rather than a sign lookup.
	IsNameSlot bool
}

// Validate checks the slot is internally consistent: a positive position, and
// a name slot carries no sign reference.
func (s Slot) Validate() error {
	if s.Position <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"slot position is invalid",
			fmt.Errorf("%d is not greater than 0", s.Position),
		)
	}
	if s.IsNameSlot && s.Sign != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"slot is invalid",
			fmt.Errorf("name slot %d must not reference a sign", s.Position),
		)
	}
	return nil
}

// HasSign reports whether the slot is bound to a concrete sign.
func (s Slot) HasSign() bool {
	return s.Sign != nil && !s.IsNameSlot
}
