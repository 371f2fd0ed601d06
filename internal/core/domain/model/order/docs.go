// Package order contains the rental order aggregate: the status state machine
// with its legal-transition table, the sign layout and package snapshots,
// check-in outcomes, and the deployment schedule math derived from the event
// date.
package order
