package order

import (
	"errors"
	"fmt"
	"time"

	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/pkg/errs"
)

// SignConditionValue is the assessed condition of one sign at pickup.
type SignConditionValue string

const (
	// ConditionGood marks a sign returned undamaged.
	ConditionGood SignConditionValue = "good"

	// ConditionDamaged marks a sign returned with damage.
	ConditionDamaged SignConditionValue = "damaged"
)

// Validate checks the condition is one of the two assessable values.
func (c SignConditionValue) Validate() error {
	if c != ConditionGood && c != ConditionDamaged {
		return errs.NewValueIsInvalidErrorWithCause(
			"condition is invalid",
			fmt.Errorf("%q is not a valid sign condition", string(c)),
		)
	}
	return nil
}

// SignCondition records the per-sign assessment taken during check-in.
type SignCondition struct {
	SignID    string
	Condition SignConditionValue
	Notes     string
}

// PickupInfo captures the outcome of the check-in: when the signs were
// actually picked up, their condition, the computed late fee, and who did the
// checking. It is created exactly once per order and is not editable
// afterwards; there is no update path by design.
type PickupInfo struct {
	// PickupDate is the actual pickup date (calendar day).
	PickupDate time.Time

	// SignConditions holds one assessment per concrete sign slot.
	SignConditions []SignCondition

	// Notes is free-form commentary recorded by the checking actor.
	Notes string

	// PickedUpOnTime is true when the actual pickup was on or before the
	// scheduled pickup date.
	PickedUpOnTime bool

	// LateFee is days-late times the package's extra-day-after price; zero
	// when picked up on time.
	LateFee kernel.Money

	// CheckedBy identifies the actor who performed the check-in.
	CheckedBy string
}

// Validate checks the info is complete: a pickup date, a known condition per
// sign, and a checking actor.
func (p PickupInfo) Validate() error {
	var violations []error

	if p.PickupDate.IsZero() {
		violations = append(violations, errs.NewValueIsRequiredError("pickupDate"))
	}
	if p.CheckedBy == "" {
		violations = append(violations, errs.NewValueIsRequiredError("checkedBy"))
	}
	for _, sc := range p.SignConditions {
		if sc.SignID == "" {
			violations = append(violations, errs.NewValueIsRequiredError("signId"))
			continue
		}
		if err := sc.Condition.Validate(); err != nil {
			violations = append(violations, err)
		}
	}

	return errors.Join(violations...)
}
