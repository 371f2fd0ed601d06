package reportgen

import (
	"fmt"
	"strconv"
	"strings"

	"signhero/internal/core/domain/model/order"
	"signhero/internal/core/domain/model/report"
	"signhero/internal/pkg/errs"
)

const dateLayout = "01/02/2006"

// Render produces the document for one report kind from an order. It is a
// pure function of the order's current state.
//
// Precondition: the order must carry the data reports are built from
// (non-empty slots and an event date). When it does not, Render returns a
// value-required error naming every missing field and produces nothing.
func Render(o *order.Order, kind report.Kind) (*Document, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if missing := o.MissingReportData(); len(missing) > 0 {
		return nil, errs.NewValueIsRequiredError(strings.Join(missing, ", "))
	}
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	switch kind {
	case report.PickTicket:
		return buildPickTicket(o), nil
	case report.OrderSummary:
		return buildOrderSummary(o), nil
	case report.PickupChecklist:
		return buildPickupChecklist(o), nil
	default:
		return nil, errs.NewValueIsInvalidError(fmt.Sprintf("report kind is invalid: %s", kind))
	}
}

// buildPickTicket lists the signs the crew pulls from inventory, plus the
// setup/teardown dates they need on the route sheet.
func buildPickTicket(o *order.Order) *Document {
	signsToPull := &Table{
		Headers: []string{"Slot", "Sign Name", "Type", "Style", "Color"},
	}
	for _, slot := range o.SignSlots() {
		signsToPull.Rows = append(signsToPull.Rows, []string{
			strconv.Itoa(slot.Position),
			slot.Sign.Name,
			slot.Sign.EventType,
			slot.Sign.Style,
			slot.Sign.Color,
		})
	}
	if o.HasNameSlot() {
		signsToPull.Rows = append(signsToPull.Rows, []string{
			"", fmt.Sprintf("Name Sign Required: create custom name sign for %q", o.EventForName()),
			"", "", "",
		})
	}

	pkg := o.PackageInfo()
	packageSection := Section{
		Title: "Package Information",
		Lines: []Line{
			{Label: "Package", Value: pkg.Name},
			{Label: "Setup", Value: fmt.Sprintf("%d day(s) before event (%s)",
				pkg.SetupDaysBefore, o.EventDate().AddDate(0, 0, -pkg.SetupDaysBefore).Format(dateLayout))},
			{Label: "Teardown", Value: fmt.Sprintf("%d day(s) after event (%s)",
				pkg.TeardownDaysAfter, o.EventDate().AddDate(0, 0, pkg.TeardownDaysAfter).Format(dateLayout))},
		},
	}
	if o.Options().EarlyDelivery {
		packageSection.Lines = append(packageSection.Lines, Line{Label: "Extra Day Before", Value: "Yes"})
	}
	if o.Options().LatePickup {
		packageSection.Lines = append(packageSection.Lines, Line{Label: "Extra Day After", Value: "Yes"})
	}

	return &Document{
		Title: "Pick Ticket",
		Sections: []Section{
			customerSection(o),
			eventSection(o),
			{Title: "Signs to Pull", Table: signsToPull},
			packageSection,
		},
	}
}

// buildOrderSummary is the customer-facing document: layout, pricing
// breakdown, and the full deployment schedule.
func buildOrderSummary(o *order.Order) *Document {
	signDetails := &Table{
		Headers: []string{"Slot", "Sign", "Details"},
	}
	for _, slot := range o.Slots() {
		switch {
		case slot.IsNameSlot:
			signDetails.Rows = append(signDetails.Rows, []string{
				strconv.Itoa(slot.Position),
				"Name Sign",
				"Custom name sign for: " + o.EventForName(),
			})
		case slot.HasSign():
			signDetails.Rows = append(signDetails.Rows, []string{
				strconv.Itoa(slot.Position),
				slot.Sign.Name,
				fmt.Sprintf("%s, %s, %s", slot.Sign.EventType, slot.Sign.Style, slot.Sign.Color),
			})
		}
	}

	pkg := o.PackageInfo()
	pricing := []Line{
		{Label: "Base Price", Value: "$" + pkg.Price.String()},
	}
	if o.Options().EarlyDelivery {
		pricing = append(pricing, Line{Label: "Extra Day Before", Value: "$" + pkg.ExtraDayBeforePrice.String()})
	}
	if o.Options().LatePickup {
		pricing = append(pricing, Line{Label: "Extra Day After", Value: "$" + pkg.ExtraDayAfterPrice.String()})
	}
	pricing = append(pricing, Line{Label: "Total", Value: "$" + o.TotalAmount().String()})

	schedule := &Table{
		Headers: []string{"Action", "Date", "Notes"},
	}
	for _, row := range o.Schedule() {
		schedule.Rows = append(schedule.Rows, []string{
			row.Action, row.Date.Format(dateLayout), row.Note,
		})
	}

	packageSection := Section{
		Title: "Package & Pricing",
		Lines: append([]Line{
			{Label: "Package", Value: pkg.Name},
			{Label: "Signs", Value: strconv.Itoa(pkg.SignCount)},
			{Label: "Setup", Value: fmt.Sprintf("%d day(s) before", pkg.SetupDaysBefore)},
			{Label: "Teardown", Value: fmt.Sprintf("%d day(s) after", pkg.TeardownDaysAfter)},
		}, pricing...),
	}

	return &Document{
		Title: "Order Summary",
		Sections: []Section{
			customerSection(o),
			eventSection(o),
			{Title: "Sign Details", Table: signDetails},
			packageSection,
			{Title: "Schedule", Table: schedule},
		},
	}
}

// buildPickupChecklist is the blank per-sign condition form the crew fills in
// at check-in.
func buildPickupChecklist(o *order.Order) *Document {
	conditions := &Table{
		Headers: []string{"Sign", "Condition", "Notes"},
	}
	for _, slot := range o.SignSlots() {
		conditions.Rows = append(conditions.Rows, []string{
			slot.Sign.Name, "[ ] Good  [ ] Damaged", "",
		})
	}
	if o.HasNameSlot() {
		conditions.Rows = append(conditions.Rows, []string{
			fmt.Sprintf("Custom Name Sign (%s)", o.EventForName()), "[ ] Good  [ ] Damaged", "",
		})
	}

	return &Document{
		Title: "Pickup Checklist",
		Sections: []Section{
			customerSection(o),
			eventSection(o),
			{
				Title: "Pickup Checklist",
				Lines: []Line{
					{Label: "Scheduled Pickup Date", Value: o.ScheduledPickupDate().Format(dateLayout)},
				},
				Table: conditions,
			},
			{
				Title: "Pickup Verification",
				Lines: []Line{
					{Value: "Picked up on scheduled date: [ ] Yes  [ ] No"},
					{Value: "If no, actual pickup date: _____________________"},
				},
			},
			{
				Title: "Sign-off",
				Lines: []Line{
					{Value: "Checked by: _____________________  Date: _____________________"},
					{Value: "Customer Signature: _____________________  Date: _____________________"},
				},
			},
		},
	}
}

func customerSection(o *order.Order) Section {
	c := o.Customer()
	return Section{
		Title: "Customer Information",
		Lines: []Line{
			{Label: "Name", Value: c.Name},
			{Label: "Phone", Value: formatPhoneNumber(c.Phone)},
			{Label: "Email", Value: c.Email},
		},
	}
}

func eventSection(o *order.Order) Section {
	addr := o.Customer().EventAddress
	return Section{
		Title: "Event Details",
		Lines: []Line{
			{Label: "Event Date", Value: o.EventDate().Format(dateLayout)},
			{Label: "Event For", Value: o.EventForName()},
			{Label: "Address", Value: fmt.Sprintf("%s, %s, %s %s", addr.Street, addr.City, addr.State, addr.Zip)},
		},
	}
}

// formatPhoneNumber renders a 10-digit US number as (xxx) xxx-xxxx. Anything
// else is returned as typed.
func formatPhoneNumber(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	cleaned := digits.String()
	if len(cleaned) != 10 {
		return phone
	}
	return fmt.Sprintf("(%s) %s-%s", cleaned[0:3], cleaned[3:6], cleaned[6:10])
}
