package report

import (
	"fmt"

	"signhero/internal/pkg/errs"
)

// Kind identifies which printable document a report holds.
type Kind int

const (
	// UnknownKind is the zero value and never valid.
	UnknownKind Kind = iota

	// PickTicket lists the signs to pull from inventory for deployment.
	PickTicket

	// OrderSummary is the customer-facing document with schedule and pricing.
	OrderSummary

	// PickupChecklist is the blank per-sign condition form used at check-in.
	PickupChecklist
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind:     "unknown",
		PickTicket:      "pickTicket",
		OrderSummary:    "orderSummary",
		PickupChecklist: "pickupChecklist",
	}
}

func getValidKindStrings() map[string]Kind {
	return map[string]Kind{
		"pickTicket":      PickTicket,
		"orderSummary":    OrderSummary,
		"pickupChecklist": PickupChecklist,
	}
}

// KindFromString parses the wire representation of a report kind.
//
// Returns:
//   - the parsed Kind on success
//   - an error wrapping ErrValueIsInvalid for anything else
func KindFromString(value string) (Kind, error) {
	if kind, ok := getValidKindStrings()[value]; ok {
		return kind, nil
	}

	return UnknownKind, errs.NewValueIsInvalidError(
		fmt.Sprintf("report kind is invalid: %s", value),
	)
}

// Validate ensures the kind is a defined non-zero member.
func (k Kind) Validate() error {
	if _, ok := getKindStrings()[k]; !ok || k == UnknownKind {
		return errs.NewValueIsInvalidError(fmt.Sprintf("report kind is invalid: %d", int(k)))
	}

	return nil
}

// String returns the wire representation used in the API and in filenames.
func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}
