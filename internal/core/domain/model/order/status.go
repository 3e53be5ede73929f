package order

import (
	"errors"
	"fmt"

	"restaurant/internal/pkg/errs"
)

// ErrInvalidStatusTransition is returned when a requested status change is not
// permitted by the order workflow. Use errors.Is to detect it at the boundary.
var ErrInvalidStatusTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the kitchen workflow.
//
// State transitions:
//
//	New ──> Confirmed ──> Preparing ──> Ready ──> Completed
//	 │          │             │           │
//	 └──────────┴─────────────┴───────────┴──> Cancelled
//
// Completed and Cancelled are terminal: no outgoing transitions.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and the wire.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status assigned when an order is created.
	New

	// Confirmed indicates the restaurant has accepted the order.
	Confirmed

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// Ready indicates the order is ready for pickup or delivery.
	Ready

	// Completed indicates the order has been handed over. Terminal.
	Completed

	// Cancelled indicates the order was cancelled before completion. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire identifiers.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		New:       "new",
		Confirmed: "confirmed",
		Preparing: "preparing",
		Ready:     "ready",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:       "new",
		Confirmed: "confirmed",
		Preparing: "preparing",
		Ready:     "ready",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// allowedTransitions returns the full transition table of the order workflow.
// Every valid status is present as a key; terminal statuses map to an empty set.
// Keeping the policy as a static table makes it trivially exhaustive-checkable.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		New:       {Confirmed, Cancelled},
		Confirmed: {Preparing, Cancelled},
		Preparing: {Ready, Cancelled},
		Ready:     {Completed, Cancelled},
		Completed: {},
		Cancelled: {},
	}
}

// Statuses returns every valid status in workflow order.
// Used by the statistics query to zero-fill counters for statuses with no orders.
func Statuses() []Status {
	return []Status{New, Confirmed, Preparing, Ready, Completed, Cancelled}
}

// ParseStatus converts a wire identifier ("new", "confirmed", ...) into a Status.
// Returns an error for unrecognized identifiers.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: New, Confirmed, Preparing, Ready, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire identifier of the status.
//
// Returns "new", "confirmed", "preparing", "ready", "completed", or "cancelled"
// for valid statuses and "unknown" for anything else.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status accepts no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether the workflow permits moving from s to target.
//
// This is a pure, deterministic, total function over all status pairs:
// it never errors and returns false for any pair not in the transition table,
// including pairs involving Unknown.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range allowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo moves the status to target if the workflow permits it.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, error wrapping ErrInvalidStatusTransition) otherwise
//
// This method is used by Order.ChangeStatus to enforce the workflow.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, s, target)
	}

	return target, nil
}
