package order

import (
	"fmt"

	"entregas/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Assigned ──> InProgress ──> Completed
//
// No state is re-enterable and there is no cancelled state: deletion
// substitutes for cancellation, and only while the order is Pending.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting to be assigned to a driver,
	// and it is the only status from which an order may be deleted.
	Pending

	// Assigned indicates the order has been handed to a driver but the
	// delivery run has not started yet.
	Assigned

	// InProgress indicates the driver is out on the delivery run.
	// Trip costs are incurred while Assigned or InProgress.
	InProgress

	// Completed indicates the order has been delivered and settled.
	// This is a final state with no further transitions allowed.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Assigned:   "assigned",
		InProgress: "in_progress",
		Completed:  "completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Assigned:   "assigned",
		InProgress: "in_progress",
		Completed:  "completed",
	}
}

// StatusFromString parses the persisted string form of a status.
// Returns an error for anything outside the valid set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Assigned, InProgress, Completed.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("pending", "assigned",
// "in_progress", "completed"), or "unknown" for invalid values.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Pending -> Assigned
//
// Returns (0, error) with an InvalidTransitionError if the order is in any
// other status. Reassignment of an already-assigned order is not allowed.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError("assign", s.String())
	}
	return Assigned, nil
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Assigned -> InProgress
func (s Status) Start() (Status, error) {
	if s != Assigned {
		return 0, errs.NewInvalidTransitionError("start", s.String())
	}
	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed
//
// Completing from Pending or Assigned fails: the delivery run must have been
// started first. Completed is a final state.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewInvalidTransitionError("complete", s.String())
	}
	return Completed, nil
}

// ValidateTripCostMutation checks that trip costs may be mutated in the
// current status. Costs are incurred during active delivery, so only
// Assigned and InProgress orders accept trip-cost changes.
func (s Status) ValidateTripCostMutation() error {
	if s != Assigned && s != InProgress {
		return errs.NewInvalidTransitionError("change trip costs", s.String())
	}
	return nil
}

// ValidateDelete checks that the order may be physically deleted.
// Deletion is only permitted while Pending; any later status has already
// entered the ledgers and must be kept.
func (s Status) ValidateDelete() error {
	if s != Pending {
		return errs.NewInvalidTransitionError("delete", s.String())
	}
	return nil
}
