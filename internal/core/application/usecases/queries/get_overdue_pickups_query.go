package queries

import (
	"errors"
	"time"

	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/pkg/errs"
	"signhero/internal/pkg/guard"
)

var ErrGetOverduePickupsQueryIsNotConstructed = errors.New(
	"GetOverduePickupsQuery must be created via NewGetOverduePickupsQuery constructor",
)

// GetOverduePickupsQuery retrieves deployed orders whose scheduled pickup
// date has passed the given reference date. Feeds the overdue-pickup job.
type GetOverduePickupsQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetOverduePickupsQuery creates an overdue-pickup scan for the given
// reference date, usually today.
func NewGetOverduePickupsQuery(asOf time.Time) (GetOverduePickupsQuery, error) {
	if asOf.IsZero() {
		return GetOverduePickupsQuery{}, errs.NewValueIsRequiredError("asOf")
	}

	return GetOverduePickupsQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOverduePickupsQuery) Validate() error {
	return q.guard.Validate(ErrGetOverduePickupsQueryIsNotConstructed)
}

// AsOf returns the reference date of the scan.
func (q GetOverduePickupsQuery) AsOf() time.Time {
	return q.asOf
}

// OverduePickupQueryResponse is one deployed order past its pickup date.
type OverduePickupQueryResponse struct {
	OrderID         kernel.UUID
	CustomerName    string
	EventForName    string
	ScheduledPickup time.Time
	DaysOverdue     int
}
