package order

import (
	"errors"
	"fmt"

	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/pkg/errs"
)

// PackageInfo is the snapshot of a bundle package embedded in an order at the
// time of purchase. It is copied by value so that later edits to the package
// catalog do not retroactively alter historical orders.
type PackageInfo struct {
	// Name is the catalog name of the package, e.g. "Letter Sign Package".
	Name string

	// Price is the base rental price of the package.
	Price kernel.Money

	// SignCount is the number of signs included.
	SignCount int

	// SetupDaysBefore is how many calendar days before the event the signs
	// are set up.
	SetupDaysBefore int

	// TeardownDaysAfter is how many calendar days after the event the signs
	// are taken down.
	TeardownDaysAfter int

	// ExtraDayBeforePrice is the charge for the optional early-delivery day.
	ExtraDayBeforePrice kernel.Money

	// ExtraDayAfterPrice is the charge for the optional late-pickup day, and
	// the per-day rate for late fees.
	ExtraDayAfterPrice kernel.Money
}

// Validate checks the snapshot holds sensible catalog values.
//
// A name is required; the sign count must be positive; day offsets must not be
// negative. Prices are Money values and therefore already non-negative.
func (p PackageInfo) Validate() error {
	var violations []error

	if p.Name == "" {
		violations = append(violations, errs.NewValueIsRequiredError("package name"))
	}
	if p.SignCount <= 0 {
		violations = append(violations, errs.NewValueIsInvalidErrorWithCause(
			"signCount is invalid",
			fmt.Errorf("%d is not greater than 0", p.SignCount),
		))
	}
	if p.SetupDaysBefore < 0 {
		violations = append(violations, errs.NewValueIsInvalidErrorWithCause(
			"setupDaysBefore is invalid",
			fmt.Errorf("%d is negative", p.SetupDaysBefore),
		))
	}
	if p.TeardownDaysAfter < 0 {
		violations = append(violations, errs.NewValueIsInvalidErrorWithCause(
			"teardownDaysAfter is invalid",
			fmt.Errorf("%d is negative", p.TeardownDaysAfter),
		))
	}

	return errors.Join(violations...)
}
