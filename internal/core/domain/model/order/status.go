package order

import (
	"fmt"

	"signhero/internal/pkg/errs"
)

// Status represents the lifecycle state of a rental order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Processing ──> Deployed ──> CheckIn ──> Completed
//	   │            │             │
//	   └────────────┴─────────────┴──> Cancelled
//
// Completed and Cancelled are terminal. The lowercase string form of each
// status is the wire and persistence representation.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting for a pick ticket to be generated.
	Pending

	// Processing indicates a pick ticket was generated and the signs are
	// being pulled from inventory.
	Processing

	// Deployed indicates the signs have been set up at the event address.
	Deployed

	// CheckIn indicates the signs are being retrieved and their condition
	// recorded.
	CheckIn

	// Completed indicates the rental finished and the signs were returned.
	// This is a final state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was cancelled before completion.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Processing: "processing",
		Deployed:   "deployed",
		CheckIn:    "checkin",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Deployed:   "deployed",
		CheckIn:    "checkin",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// legalTransitions is the transition table of the order workflow, kept as
// first-class data so the allowed paths can be inspected independently of any
// particular trigger (explicit command or report generation).
func legalTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Processing, Cancelled},
		Processing: {Deployed, Cancelled},
		Deployed:   {CheckIn, Cancelled},
		CheckIn:    {Completed},
		Completed:  {},
		Cancelled:  {},
	}
}

// StatusFromString parses the lowercase wire representation of a status.
//
// Returns:
//   - the matching Status for one of the six valid values
//   - an error wrapping ErrValueIsInvalid for anything else
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Processing, Deployed, CheckIn, Completed,
// Cancelled. Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status.
//
// Returns "unknown" for invalid status values. This method implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	targets, ok := legalTransitions()[s]
	return ok && len(targets) == 0
}

// CanTransitionTo reports whether the transition table allows moving from the
// current status to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range legalTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a transition along the workflow table.
//
// Returns:
//   - (target, nil) when the transition is legal
//   - (0, error) when target is not a valid status or the move is not in the
//     transition table
//
// The administrative reset to Pending is deliberately not expressible through
// this method; see Order.ResetToPending.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("cannot transition from %s to %s", s.String(), target.String()),
		)
	}

	return target, nil
}
