package order

import (
	"errors"

	"signhero/internal/pkg/errs"
)

// Address is a postal address within the service area.
type Address struct {
	Street    string
	Apartment string
	City      string
	State     string
	Zip       string
}

// Validate checks the minimally required address fields are present.
func (a Address) Validate() error {
	var violations []error

	if a.Street == "" {
		violations = append(violations, errs.NewValueIsRequiredError("street"))
	}
	if a.City == "" {
		violations = append(violations, errs.NewValueIsRequiredError("city"))
	}
	if a.State == "" {
		violations = append(violations, errs.NewValueIsRequiredError("state"))
	}
	if a.Zip == "" {
		violations = append(violations, errs.NewValueIsRequiredError("zip"))
	}

	return errors.Join(violations...)
}

// CustomerInfo is the contact snapshot captured from the configurator. Like
// the package snapshot it is copied by value into the order.
type CustomerInfo struct {
	Name         string
	Email        string
	Phone        string
	EventAddress Address
}

// Validate checks the contact fields required by deployment crews and the
// printed reports.
func (c CustomerInfo) Validate() error {
	var violations []error

	if c.Name == "" {
		violations = append(violations, errs.NewValueIsRequiredError("customer name"))
	}
	if c.Email == "" {
		violations = append(violations, errs.NewValueIsRequiredError("customer email"))
	}
	if err := c.EventAddress.Validate(); err != nil {
		violations = append(violations, err)
	}

	return errors.Join(violations...)
}
