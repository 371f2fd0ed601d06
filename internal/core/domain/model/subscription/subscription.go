// Package subscription holds the billing-subscription record maintained by
// payment-provider webhook events. It is a thin mirror of the provider's
// state, not an aggregate with its own lifecycle rules.
package subscription

import (
	"errors"
	"time"

	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/pkg/errs"
)

// StatusCancelled is the local status written when the provider reports a
// subscription as deleted. Other status values are stored verbatim from the
// provider.
const StatusCancelled = "canceled"

// ErrSubscriptionIsNotConstructed is returned when a Subscription instance
// was not created through a factory method.
var ErrSubscriptionIsNotConstructed = errors.New("Subscription must be created via NewSubscription or RestoreSubscription constructor")

// Subscription is one user's billing subscription, keyed by user id. A user
// holds at most one record; checkout completion upserts it.
type Subscription struct {
	id kernel.UUID

	userID kernel.UUID

	// status is the provider's subscription status string stored verbatim
	status string

	planID   string
	planName string

	// providerCustomerID and providerSubscriptionID tie the record back to
	// the billing provider's objects
	providerCustomerID     string
	providerSubscriptionID string

	currentPeriodStart time.Time
	currentPeriodEnd   time.Time

	updatedAt time.Time

	isConstructed bool
}

// NewSubscription creates a subscription record from a completed checkout.
func NewSubscription(
	id kernel.UUID,
	userID kernel.UUID,
	status string,
	planID string,
	planName string,
	providerCustomerID string,
	providerSubscriptionID string,
	currentPeriodStart time.Time,
	currentPeriodEnd time.Time,
	now time.Time,
) (*Subscription, error) {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}
	if status == "" {
		return nil, errs.NewValueIsRequiredError("status")
	}
	if planID == "" {
		return nil, errs.NewValueIsRequiredError("planId")
	}
	if providerSubscriptionID == "" {
		return nil, errs.NewValueIsRequiredError("providerSubscriptionId")
	}

	return &Subscription{
		id:                     id,
		userID:                 userID,
		status:                 status,
		planID:                 planID,
		planName:               planName,
		providerCustomerID:     providerCustomerID,
		providerSubscriptionID: providerSubscriptionID,
		currentPeriodStart:     currentPeriodStart,
		currentPeriodEnd:       currentPeriodEnd,
		updatedAt:              now,
		isConstructed:          true,
	}, nil
}

// RestoreSubscription reconstructs a Subscription from persistence.
//
// This function is intended for repository implementations only.
func RestoreSubscription(
	id kernel.UUID,
	userID kernel.UUID,
	status string,
	planID string,
	planName string,
	providerCustomerID string,
	providerSubscriptionID string,
	currentPeriodStart time.Time,
	currentPeriodEnd time.Time,
	updatedAt time.Time,
) (*Subscription, error) {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}

	return &Subscription{
		id:                     id,
		userID:                 userID,
		status:                 status,
		planID:                 planID,
		planName:               planName,
		providerCustomerID:     providerCustomerID,
		providerSubscriptionID: providerSubscriptionID,
		currentPeriodStart:     currentPeriodStart,
		currentPeriodEnd:       currentPeriodEnd,
		updatedAt:              updatedAt,
		isConstructed:          true,
	}, nil
}

// Validate ensures the Subscription was properly constructed through a
// factory method.
func (s *Subscription) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSubscriptionIsNotConstructed
	}

	return nil
}

// ID returns the record's unique identifier.
func (s *Subscription) ID() kernel.UUID {
	return s.id
}

// UserID returns the owning user's identifier.
func (s *Subscription) UserID() kernel.UUID {
	return s.userID
}

// Status returns the provider's subscription status string.
func (s *Subscription) Status() string {
	return s.status
}

// PlanID returns the purchased plan identifier.
func (s *Subscription) PlanID() string {
	return s.planID
}

// PlanName returns the display name of the purchased plan.
func (s *Subscription) PlanName() string {
	return s.planName
}

// ProviderCustomerID returns the billing provider's customer identifier.
func (s *Subscription) ProviderCustomerID() string {
	return s.providerCustomerID
}

// ProviderSubscriptionID returns the billing provider's subscription
// identifier.
func (s *Subscription) ProviderSubscriptionID() string {
	return s.providerSubscriptionID
}

// CurrentPeriodStart returns the start of the current billing period.
func (s *Subscription) CurrentPeriodStart() time.Time {
	return s.currentPeriodStart
}

// CurrentPeriodEnd returns the end of the current billing period.
func (s *Subscription) CurrentPeriodEnd() time.Time {
	return s.currentPeriodEnd
}

// UpdatedAt returns the last modification timestamp.
func (s *Subscription) UpdatedAt() time.Time {
	return s.updatedAt
}

// SyncPeriod applies a provider subscription-updated event: the status and
// billing period mirror the provider's values.
func (s *Subscription) SyncPeriod(status string, periodStart, periodEnd time.Time, now time.Time) error {
	if status == "" {
		return errs.NewValueIsRequiredError("status")
	}

	s.status = status
	s.currentPeriodStart = periodStart
	s.currentPeriodEnd = periodEnd
	s.updatedAt = now
	return nil
}

// Cancel applies a provider subscription-deleted event.
func (s *Subscription) Cancel(now time.Time) {
	s.status = StatusCancelled
	s.updatedAt = now
}
